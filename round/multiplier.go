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

package round

// Multiplier is a value that other numbers of type T can be rounded to a
// multiple of.
//
// NonZero implements it for every integer type; NonZeroPow2 implements it
// for unsigned types with a faster, mask based body.
type Multiplier[T Integers] interface {
	// Get returns the multiplier as a plain T.
	Get() T

	// Down rounds v down to a multiple of the multiplier.
	Down(v T) T

	// Up rounds v up to a multiple of the multiplier.
	// It returns false if the result does not fit in T.
	Up(v T) (T, bool)
}

var (
	_ Multiplier[int8]    = NonZero[int8]{}
	_ Multiplier[uint64]  = NonZero[uint64]{}
	_ Multiplier[uint8]   = NonZeroPow2[uint8]{}
	_ Multiplier[uintptr] = NonZeroPow2[uintptr]{}
)

// Down rounds v down to a multiple of n using integer division.
//
// Division truncates toward zero, so negative values that are not an
// exact multiple move toward zero as well.
func (n NonZero[T]) Down(v T) T {
	m := n.Get()
	if v%m != 0 {
		return v / m * m
	}
	return v
}

// Up rounds v up to a multiple of n: the multiple returned by Down plus n.
// An exact multiple is returned unchanged without any addition.
func (n NonZero[T]) Up(v T) (T, bool) {
	m := n.Get()
	r := v % m
	if r == 0 {
		return v, true
	}
	// v-r equals Down(v) and cannot overflow, unlike m-r for signed T.
	return CheckedAdd(v-r, m)
}

// Down rounds v down to a multiple of p by clearing its low bits.
func (p NonZeroPow2[T]) Down(v T) T {
	return v &^ (p.Get() - One[T]())
}

// Up rounds v up to a multiple of p.
func (p NonZeroPow2[T]) Up(v T) (T, bool) {
	downed := p.Down(v)
	if downed == v {
		return v, true
	}
	return CheckedAdd(downed, p.Get())
}
