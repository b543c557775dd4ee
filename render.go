// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package remotedata

// RenderSpec holds the optional per-variant callbacks for [Render].
// R is the renderable type of the host UI mechanism — a string, an HTML
// node, a widget, anything. A nil callback renders the zero value of R.
// A nil Refetching callback falls back to the Pending callback, dropping
// the stale payload.
type RenderSpec[E, A, R any] struct {
	Initial    func() R
	Pending    func() R
	Refetching func(A) R
	Failure    func(E) R
}

// Render eliminates a RemoteData into a single renderable value, selecting
// one callback per variant. The success callback is a required parameter
// rather than a RenderSpec field: rendering the success case is the whole
// point of the call, so it has no sensible default.
//
// Render is stateless and side-effect-free; it is [Match] with the
// optional callbacks defaulted.
func Render[E, A, R any](r RemoteData[E, A], success func(A) R, spec RenderSpec[E, A, R]) R {
	return Match(r,
		func() R {
			return renderConst(spec.Initial)
		},
		func(stale Option[A]) R {
			return MatchOption(stale,
				func() R {
					return renderConst(spec.Pending)
				},
				func(a A) R {
					if spec.Refetching != nil {
						return spec.Refetching(a)
					}
					return renderConst(spec.Pending)
				},
			)
		},
		func(err E) R {
			if spec.Failure != nil {
				return spec.Failure(err)
			}
			var zero R
			return zero
		},
		success,
	)
}

func renderConst[R any](f func() R) R {
	if f != nil {
		return f()
	}
	var zero R
	return zero
}
