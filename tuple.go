// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package remotedata

// Positional product types for the fixed-arity Combine functions.
// Go has no variadic type parameters, so each arity gets its own tuple,
// matching the practical arities of the combination surface (2 through 6).

// Tuple2 is an ordered pair.
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

// Tuple3 is an ordered triple.
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// Tuple4 is an ordered quadruple.
type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// Tuple5 is an ordered quintuple.
type Tuple5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

// Tuple6 is an ordered sextuple.
type Tuple6[A, B, C, D, E, F any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
}
