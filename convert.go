// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package remotedata

// Conversions between RemoteData and the two payload-compatible external
// shapes: Option (present/absent) and Either (two-sided result).
//
// The onNone/onInitial/onPending/onElse thunks are the only points where
// caller code can synthesize a new value on demand; they are evaluated
// lazily, only when their branch is taken.

// GetOrElse returns the data payload for Success or Refetching values;
// otherwise it evaluates and returns onElse(). onElse is a thunk so a
// side-effecting fallback is not evaluated unless needed.
func GetOrElse[E, A any](r RemoteData[E, A], onElse func() A) A {
	if r.hasData {
		return r.data
	}
	return onElse()
}

// ToPtr returns a pointer to the data payload for Success or Refetching
// values, or nil otherwise. The nil pointer is the absence sentinel;
// returning the zero value instead would conflate Success of a zero value
// with absence.
func ToPtr[E, A any](r RemoteData[E, A]) *A {
	if r.hasData {
		data := r.data
		return &data
	}
	return nil
}

// FromOption converts an Option to RemoteData: Some becomes Success, None
// becomes Failure of onNone().
func FromOption[E, A any](opt Option[A], onNone func() E) RemoteData[E, A] {
	if a, ok := opt.Get(); ok {
		return Success[E](a)
	}
	return Failure[E, A](onNone())
}

// ToOption returns Some of the data payload for Success or Refetching
// values, or None otherwise.
func ToOption[E, A any](r RemoteData[E, A]) Option[A] {
	if r.hasData {
		return Some(r.data)
	}
	return None[A]()
}

// FromEither converts an Either to RemoteData: Left becomes Failure, Right
// becomes Success.
func FromEither[E, A any](e Either[E, A]) RemoteData[E, A] {
	if a, ok := e.GetRight(); ok {
		return Success[E](a)
	}
	err, _ := e.GetLeft()
	return Failure[E, A](err)
}

// ToEither converts RemoteData to an Either. Success maps to Right and
// Failure to Left of its error. The two payload-less non-failure cases
// synthesize a Left on demand: Initial via onInitial, bare Pending via
// onPending. Refetching maps to Right of the stale payload.
func ToEither[E, A any](r RemoteData[E, A], onInitial func() E, onPending func() E) Either[E, A] {
	switch r.tag {
	case variantSuccess:
		return Right[E](r.data)
	case variantFailure:
		return Left[E, A](r.err)
	case variantPending:
		if r.hasData {
			return Right[E](r.data)
		}
		return Left[E, A](onPending())
	default:
		return Left[E, A](onInitial())
	}
}
