// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package remotedata

// Combinators over RemoteData.
//
// Go methods cannot introduce type parameters, so transformations that
// change the payload or error type are package-level functions, with the
// state as the first argument.

// Map applies a pure function to the data payload where one is present:
// on Success, and on Refetching (the stale payload must remain
// transformable — a refetch consumer still needs the mapped stale value).
// Initial, Failure, and bare Pending pass through unchanged. Map never
// changes the variant.
func Map[E, A, B any](r RemoteData[E, A], f func(A) B) RemoteData[E, B] {
	switch r.tag {
	case variantSuccess:
		return Success[E](f(r.data))
	case variantPending:
		if r.hasData {
			return Refetching[E](f(r.data))
		}
		return Pending[E, B]()
	case variantFailure:
		return Failure[E, B](r.err)
	default:
		return Initial[E, B]()
	}
}

// MapLeft applies a pure function to the error payload of a Failure.
// All other variants pass through unchanged.
func MapLeft[E, F, A any](r RemoteData[E, A], f func(E) F) RemoteData[F, A] {
	switch r.tag {
	case variantFailure:
		return Failure[F, A](f(r.err))
	case variantSuccess:
		return Success[F](r.data)
	case variantPending:
		if r.hasData {
			return Refetching[F](r.data)
		}
		return Pending[F, A]()
	default:
		return Initial[F, A]()
	}
}

// FlatMap sequences two RemoteData computations (monadic bind).
//
// On Success or Refetching, f is applied to the payload and its result is
// returned directly — unlike [Map], this can change the variant (binding a
// Refetching value through a function that returns Success yields Success).
// Initial, Failure, and bare Pending pass through re-typed; no payload of
// the old type is retained, so the coercion is vacuous.
func FlatMap[E, A, B any](r RemoteData[E, A], f func(A) RemoteData[E, B]) RemoteData[E, B] {
	switch r.tag {
	case variantSuccess:
		return f(r.data)
	case variantPending:
		if r.hasData {
			return f(r.data)
		}
		return Pending[E, B]()
	case variantFailure:
		return Failure[E, B](r.err)
	default:
		return Initial[E, B]()
	}
}

// Match is the total eliminator: one callback per variant, no callback
// optional. The pending callback receives the possibly-absent stale payload
// as an explicit [Option] so both refetch sub-cases are handled. Match never
// panics for any constructed value.
func Match[E, A, T any](
	r RemoteData[E, A],
	onInitial func() T,
	onPending func(Option[A]) T,
	onFailure func(E) T,
	onSuccess func(A) T,
) T {
	switch r.tag {
	case variantSuccess:
		return onSuccess(r.data)
	case variantFailure:
		return onFailure(r.err)
	case variantPending:
		if r.hasData {
			return onPending(Some(r.data))
		}
		return onPending(None[A]())
	default:
		return onInitial()
	}
}
