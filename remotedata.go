// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package remotedata

// variant is the RemoteData tag. It is the single source of truth for
// branching: payload fields are meaningful only under the variant that
// owns them, and all construction goes through the four constructors,
// so no other field combination is reachable.
type variant uint8

const (
	variantInitial variant = iota
	variantPending
	variantFailure
	variantSuccess
)

// RemoteData classifies the progress of an asynchronous fetch whose
// result type is A and whose failure type is E.
//
// Exactly one of four variants is active at any time:
//
//   - Initial: no request has been made. No payload.
//   - Pending: a request is in flight. May carry a stale payload from a
//     previous success (the refetching case, see [Refetching]) or none.
//   - Failure: the last request failed. Carries the error payload only.
//   - Success: the last request succeeded. Carries the data payload only.
//
// RemoteData has value semantics: values are immutable once constructed,
// every combinator returns a new value, and copying is safe. The library
// performs no I/O, scheduling, caching, or retries — it only classifies
// and transforms state values produced by an external fetching mechanism.
type RemoteData[E, A any] struct {
	tag     variant
	hasData bool
	data    A
	err     E
}

// Initial returns the not-yet-requested state.
func Initial[E, A any]() RemoteData[E, A] {
	return RemoteData[E, A]{tag: variantInitial}
}

// Pending returns the in-flight state with no stale payload.
func Pending[E, A any]() RemoteData[E, A] {
	return RemoteData[E, A]{tag: variantPending}
}

// Refetching returns the in-flight state carrying a stale payload from a
// previous success. It is still a pending state: [RemoteData.IsPending]
// reports true for it, and [Match] routes it to the pending branch with
// the payload present.
func Refetching[E, A any](data A) RemoteData[E, A] {
	return RemoteData[E, A]{tag: variantPending, hasData: true, data: data}
}

// Failure returns the failed state carrying err.
func Failure[E, A any](err E) RemoteData[E, A] {
	return RemoteData[E, A]{tag: variantFailure, err: err}
}

// Success returns the succeeded state carrying data.
func Success[E, A any](data A) RemoteData[E, A] {
	return RemoteData[E, A]{tag: variantSuccess, hasData: true, data: data}
}

// IsInitial returns true if no request has been made.
func (r RemoteData[E, A]) IsInitial() bool {
	return r.tag == variantInitial
}

// IsPending returns true if a request is in flight, with or without a
// stale payload.
func (r RemoteData[E, A]) IsPending() bool {
	return r.tag == variantPending
}

// IsRefetching returns true if a request is in flight and a stale payload
// from a previous success is retained.
func (r RemoteData[E, A]) IsRefetching() bool {
	return r.tag == variantPending && r.hasData
}

// IsFailure returns true if the last request failed.
func (r RemoteData[E, A]) IsFailure() bool {
	return r.tag == variantFailure
}

// IsSuccess returns true if the last request succeeded.
func (r RemoteData[E, A]) IsSuccess() bool {
	return r.tag == variantSuccess
}

// GetData returns the data payload and true for Success and Refetching
// values, or zero and false otherwise.
func (r RemoteData[E, A]) GetData() (A, bool) {
	if r.hasData {
		return r.data, true
	}
	var zero A
	return zero, false
}

// GetError returns the error payload and true for Failure values, or zero
// and false otherwise.
func (r RemoteData[E, A]) GetError() (E, bool) {
	if r.tag == variantFailure {
		return r.err, true
	}
	var zero E
	return zero, false
}
