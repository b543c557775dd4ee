// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package remotedata models the lifecycle of an asynchronous remote value
// as a closed four-variant sum type, with a pure combinator algebra over it.
//
// The core type [RemoteData] classifies a fetch as not-yet-requested,
// in-flight, failed, or succeeded. The in-flight state may retain a stale
// payload from a previous success — the refetching case — and the whole
// algebra is built to keep that stale payload transformable and combinable.
//
// The package performs no I/O, scheduling, caching, or retries. An external
// fetching mechanism produces RemoteData values; this package only
// classifies and transforms them. Every function is a pure transformation
// of an immutable input to a new immutable output, total over all
// constructed values, and safe for concurrent use without coordination.
//
// # Construction and Inspection
//
// Constructors, one per variant (plus the refetching sub-case):
//
//   - [Initial]: no request has been made
//   - [Pending]: a request is in flight, no stale payload
//   - [Refetching]: a request is in flight, stale payload retained
//   - [Failure]: the last request failed
//   - [Success]: the last request succeeded
//
// Predicates and comma-ok accessors:
//
//   - [RemoteData.IsInitial], [RemoteData.IsPending],
//     [RemoteData.IsRefetching], [RemoteData.IsFailure],
//     [RemoteData.IsSuccess]
//   - [RemoteData.GetData]: payload for Success and Refetching
//   - [RemoteData.GetError]: payload for Failure
//
// Exactly one predicate of the four variants holds for any value; illegal
// combinations (a Success carrying an error, a Failure carrying data) are
// unrepresentable because all construction goes through the constructors.
//
// # Combinators
//
//   - [Map]: transform the payload where present — on Success and on
//     Refetching. Never changes the variant.
//   - [MapLeft]: transform the Failure error.
//   - [FlatMap]: monadic bind; may change the variant.
//   - [Match]: total eliminator, one callback per variant. The pending
//     callback receives the stale payload as an explicit [Option].
//
// # Extraction and Conversions
//
//   - [GetOrElse]: payload or lazily-computed fallback
//   - [ToPtr]: payload pointer or nil
//   - [FromOption], [ToOption]: bridge to the present/absent shape
//   - [FromEither], [ToEither]: bridge to the two-sided result shape
//
// [Option] and [Either] are the two payload-compatible external shapes,
// with their own small algebras ([MatchOption], [MapOption],
// [MatchEither], [MapEither], [FlatMapEither], [MapLeftEither]).
//
// # Combination
//
// Several independent RemoteData values combine into one describing their
// joint progress, under a fixed outcome priority: all-success wins, then
// the first failure in input order, then refetching when every input has a
// payload, then bare pending, then initial.
//
//   - [Combine2] … [Combine6]: heterogeneous payloads into [Tuple2] …
//     [Tuple6]
//   - [Sequence]: homogeneous slice form
//   - [SequenceMap]: keyed form; inputs scanned in sorted key order so the
//     first-failure rule is deterministic
//
// # Rendering
//
// [Render] eliminates a RemoteData into one renderable value via
// per-variant callbacks: the success callback is required, the rest are
// optional [RenderSpec] fields defaulting to the zero renderable, with the
// refetching callback falling back to the pending one. The renderable type
// is a free type parameter, so any host UI composition mechanism works.
//
// # Errors
//
// There is no internal error kind. The error type E is caller-supplied and
// opaque to the algebra; failures are data, carried in the Failure variant
// and in [Either]'s Left side, never returned as error values or panics.
// The thunk parameters of [FromOption], [ToEither], and [GetOrElse] are the
// only places caller code synthesizes new values, and they are evaluated
// only when their branch is taken.
//
// # Example
//
//	user := remotedata.Refetching[string](User{Name: "ada"})
//	posts := remotedata.Success[string]([]Post{{Title: "hello"}})
//
//	page := remotedata.Combine2(user, posts)
//
//	out := remotedata.Render(page,
//		func(t remotedata.Tuple2[User, []Post]) string {
//			return renderPage(t.V1, t.V2)
//		},
//		remotedata.RenderSpec[string, remotedata.Tuple2[User, []Post], string]{
//			Pending: func() string { return "loading…" },
//			Refetching: func(t remotedata.Tuple2[User, []Post]) string {
//				return renderPage(t.V1, t.V2) + " (refreshing)"
//			},
//			Failure: func(err string) string { return "error: " + err },
//		},
//	)
//	// page is Refetching (both payloads present, one fetch in flight),
//	// so out is the page rendered from the stale user, marked refreshing.
package remotedata
