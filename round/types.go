// Copyright 2025 go-roundmult Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package round rounds integers down or up to a multiple of a divisor.
//
// Two multiplier representations are provided. NonZero works for any
// non-zero divisor and uses division and modulo. NonZeroPow2 carries the
// guarantee that the divisor is an exact power of two, and rounds with a
// single mask instead. The Down and Up functions accept either one and the
// compiler picks the body at instantiation time:
//
//	import "github.com/ajroetker/go-roundmult/round"
//
//	round.Down(109, round.MustNonZero(10))   // 100
//	round.Up(109, round.MustNonZero(10))     // 110, true
//
//	m, _ := round.New[uint8](32)
//	round.Down[uint8](109, m)                // 96
//	round.Up[uint8](250, round.V16[uint8]()) // 0, false (overflow)
//
// Up reports overflow with a false second result instead of wrapping.
package round

import "golang.org/x/exp/constraints"

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	constraints.Signed
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	constraints.Unsigned
}

// Integers is a constraint for all integer types that can be rounded.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all element types that can be stored in SIMD
// lanes. It is only used to size vectors, never to round.
type Lanes interface {
	Floats | Integers
}
