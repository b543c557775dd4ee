// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package remotedata

import (
	"slices"
)

// Combination of several independent RemoteData values into one value
// describing their joint progress.
//
// The outcome priority, applied in order:
//
//  1. All inputs Success — Success of the payloads, in input order.
//  2. Any input Failure — the first Failure in input order; later
//     failures are discarded. Failure dominates bare pending so errors
//     surface promptly.
//  3. Every input has a payload (Success or Refetching) — Refetching of
//     the payloads: all data is available but at least one fetch is still
//     in flight. Data-carrying pending dominates bare pending so stale
//     data survives recombination.
//  4. Any input Pending — bare Pending.
//  5. Otherwise — Initial, the weakest state; it wins only when nothing
//     more informative is present.
//
// The priority logic lives in one untyped resolver; the typed arities and
// the slice/map forms are thin wrappers over it, so the tie-break rules
// cannot drift between surfaces.

// probe is the type-erased view of one input that the resolver consumes.
type probe struct {
	tag     variant
	hasData bool
	data    any
	err     any
}

func (r RemoteData[E, A]) probe() probe {
	return probe{tag: r.tag, hasData: r.hasData, data: r.data, err: r.err}
}

// combined is the resolver's verdict: the result variant, whether a
// payload tuple should be built, and the winning error for Failure.
type combined struct {
	tag     variant
	hasData bool
	data    []any
	err     any
}

// resolveCombined applies the outcome priority to a list of probes.
// An empty input list counts as "all Success" vacuously, yielding a
// Success with an empty payload list.
func resolveCombined(probes []probe) combined {
	allSuccess := true
	allData := true
	anyPending := false
	for _, p := range probes {
		if p.tag == variantFailure {
			return combined{tag: variantFailure, err: p.err}
		}
		if p.tag == variantPending {
			anyPending = true
		}
		if p.tag != variantSuccess {
			allSuccess = false
		}
		if !p.hasData {
			allData = false
		}
	}
	switch {
	case allSuccess, allData:
		data := make([]any, len(probes))
		for i, p := range probes {
			data[i] = p.data
		}
		if allSuccess {
			return combined{tag: variantSuccess, hasData: true, data: data}
		}
		return combined{tag: variantPending, hasData: true, data: data}
	case anyPending:
		return combined{tag: variantPending}
	default:
		return combined{tag: variantInitial}
	}
}

// unbox recovers a typed value from an erased payload. The comma-ok form
// matters: when E or A is an interface type, a constructed value may carry
// a nil payload, and a single-value assertion on nil would panic. The
// zero value of an interface type is nil, so the round trip is exact.
func unbox[T any](x any) T {
	v, _ := x.(T)
	return v
}

// rebuild converts the resolver's verdict back into a typed RemoteData.
// fromData is called only when a payload is carried (Success/Refetching).
func rebuild[E, T any](c combined, fromData func([]any) T) RemoteData[E, T] {
	switch c.tag {
	case variantSuccess:
		return Success[E](fromData(c.data))
	case variantFailure:
		return Failure[E, T](unbox[E](c.err))
	case variantPending:
		if c.hasData {
			return Refetching[E](fromData(c.data))
		}
		return Pending[E, T]()
	default:
		return Initial[E, T]()
	}
}

// Combine2 combines two RemoteData values into one carrying both payloads.
func Combine2[E, A, B any](ra RemoteData[E, A], rb RemoteData[E, B]) RemoteData[E, Tuple2[A, B]] {
	return rebuild[E](resolveCombined([]probe{ra.probe(), rb.probe()}), func(xs []any) Tuple2[A, B] {
		return Tuple2[A, B]{V1: unbox[A](xs[0]), V2: unbox[B](xs[1])}
	})
}

// Combine3 combines three RemoteData values.
func Combine3[E, A, B, C any](ra RemoteData[E, A], rb RemoteData[E, B], rc RemoteData[E, C]) RemoteData[E, Tuple3[A, B, C]] {
	return rebuild[E](resolveCombined([]probe{ra.probe(), rb.probe(), rc.probe()}), func(xs []any) Tuple3[A, B, C] {
		return Tuple3[A, B, C]{V1: unbox[A](xs[0]), V2: unbox[B](xs[1]), V3: unbox[C](xs[2])}
	})
}

// Combine4 combines four RemoteData values.
func Combine4[E, A, B, C, D any](ra RemoteData[E, A], rb RemoteData[E, B], rc RemoteData[E, C], rd RemoteData[E, D]) RemoteData[E, Tuple4[A, B, C, D]] {
	return rebuild[E](resolveCombined([]probe{ra.probe(), rb.probe(), rc.probe(), rd.probe()}), func(xs []any) Tuple4[A, B, C, D] {
		return Tuple4[A, B, C, D]{V1: unbox[A](xs[0]), V2: unbox[B](xs[1]), V3: unbox[C](xs[2]), V4: unbox[D](xs[3])}
	})
}

// Combine5 combines five RemoteData values.
func Combine5[Err, A, B, C, D, E any](ra RemoteData[Err, A], rb RemoteData[Err, B], rc RemoteData[Err, C], rd RemoteData[Err, D], re RemoteData[Err, E]) RemoteData[Err, Tuple5[A, B, C, D, E]] {
	return rebuild[Err](resolveCombined([]probe{ra.probe(), rb.probe(), rc.probe(), rd.probe(), re.probe()}), func(xs []any) Tuple5[A, B, C, D, E] {
		return Tuple5[A, B, C, D, E]{V1: unbox[A](xs[0]), V2: unbox[B](xs[1]), V3: unbox[C](xs[2]), V4: unbox[D](xs[3]), V5: unbox[E](xs[4])}
	})
}

// Combine6 combines six RemoteData values.
func Combine6[Err, A, B, C, D, E, F any](ra RemoteData[Err, A], rb RemoteData[Err, B], rc RemoteData[Err, C], rd RemoteData[Err, D], re RemoteData[Err, E], rf RemoteData[Err, F]) RemoteData[Err, Tuple6[A, B, C, D, E, F]] {
	return rebuild[Err](resolveCombined([]probe{ra.probe(), rb.probe(), rc.probe(), rd.probe(), re.probe(), rf.probe()}), func(xs []any) Tuple6[A, B, C, D, E, F] {
		return Tuple6[A, B, C, D, E, F]{V1: unbox[A](xs[0]), V2: unbox[B](xs[1]), V3: unbox[C](xs[2]), V4: unbox[D](xs[3]), V5: unbox[E](xs[4]), V6: unbox[F](xs[5])}
	})
}

// Sequence combines a slice of RemoteData values of one payload type into
// a RemoteData of a slice, under the same outcome priority as [Combine2].
// Payload order matches input order. An empty input yields Success of an
// empty slice.
func Sequence[E, A any](rs []RemoteData[E, A]) RemoteData[E, []A] {
	probes := make([]probe, len(rs))
	for i, r := range rs {
		probes[i] = r.probe()
	}
	return rebuild[E](resolveCombined(probes), func(xs []any) []A {
		out := make([]A, len(xs))
		for i, x := range xs {
			out[i] = unbox[A](x)
		}
		return out
	})
}

// SequenceMap combines a map of RemoteData values into a RemoteData of a
// map with the same keys, under the same outcome priority as [Combine2].
//
// Go map iteration order is randomized, so the inputs are scanned in
// sorted key order; "first Failure in input order" therefore means the
// Failure under the smallest key, deterministically. An empty input
// yields Success of an empty map.
func SequenceMap[E, A any](m map[string]RemoteData[E, A]) RemoteData[E, map[string]A] {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	probes := make([]probe, len(keys))
	for i, k := range keys {
		probes[i] = m[k].probe()
	}
	return rebuild[E](resolveCombined(probes), func(xs []any) map[string]A {
		out := make(map[string]A, len(keys))
		for i, k := range keys {
			out[k] = unbox[A](xs[i])
		}
		return out
	})
}
