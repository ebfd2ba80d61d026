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

import (
	"cmp"
	"math/bits"
)

// NonZeroPow2 is an unsigned integer that is non-zero and a power of two.
//
// Used as a Multiplier it rounds with a bit mask instead of division.
// Values are immutable and compare equal iff their integers are equal, so
// they can be used as map keys.
//
// Only unsigned types are supported. Signed multipliers use NonZero.
type NonZeroPow2[T UnsignedInts] struct {
	nz NonZero[T]
}

// New returns v as a NonZeroPow2, or false if v is zero or not a power of two.
//
//	New[uint](0)  // false
//	New[uint](4)  // true
//	New[uint](6)  // false
func New[T UnsignedInts](v T) (NonZeroPow2[T], bool) {
	if IsZero(v) || !IsPowerOfTwo(v) {
		return NonZeroPow2[T]{}, false
	}
	return NewUnchecked(v), true
}

// NewUnchecked wraps v without validating it.
//
// The caller must guarantee v is non-zero and a power of two, for example
// because v is a constant. Rounding results are meaningless otherwise.
func NewUnchecked[T UnsignedInts](v T) NonZeroPow2[T] {
	return NonZeroPow2[T]{nz: NewNonZeroUnchecked(v)}
}

// FromNonZeroUnchecked wraps an already non-zero value.
//
// The caller must guarantee nz is a power of two.
func FromNonZeroUnchecked[T UnsignedInts](nz NonZero[T]) NonZeroPow2[T] {
	return NonZeroPow2[T]{nz: nz}
}

// Get returns the plain value.
func (p NonZeroPow2[T]) Get() T {
	return p.nz.Get()
}

// GetNonZero returns the value as a NonZero, dropping the power-of-two
// guarantee. Rounding with the result goes through division and modulo.
func (p NonZeroPow2[T]) GetNonZero() NonZero[T] {
	return p.nz
}

// Log2 returns k such that p == 1<<k.
func (p NonZeroPow2[T]) Log2() uint {
	return uint(bits.TrailingZeros64(uint64(p.Get())))
}

// Compare returns -1, 0 or +1 depending on whether p is less than, equal to
// or greater than o.
func (p NonZeroPow2[T]) Compare(o NonZeroPow2[T]) int {
	return cmp.Compare(p.Get(), o.Get())
}

// String implements fmt.Stringer.
func (p NonZeroPow2[T]) String() string {
	return p.nz.String()
}

// V2 returns the multiplier 2.
func V2[T UnsignedInts]() NonZeroPow2[T] {
	return NewUnchecked(One[T]() << 1)
}

// V4 returns the multiplier 4.
func V4[T UnsignedInts]() NonZeroPow2[T] {
	return NewUnchecked(V2[T]().Get() << 1)
}

// V8 returns the multiplier 8.
func V8[T UnsignedInts]() NonZeroPow2[T] {
	return NewUnchecked(V4[T]().Get() << 1)
}

// V16 returns the multiplier 16.
func V16[T UnsignedInts]() NonZeroPow2[T] {
	return NewUnchecked(V8[T]().Get() << 1)
}

// V32 returns the multiplier 32.
func V32[T UnsignedInts]() NonZeroPow2[T] {
	return NewUnchecked(V16[T]().Get() << 1)
}

// V64 returns the multiplier 64.
func V64[T UnsignedInts]() NonZeroPow2[T] {
	return NewUnchecked(V32[T]().Get() << 1)
}

// V128 returns the multiplier 128.
func V128[T UnsignedInts]() NonZeroPow2[T] {
	return NewUnchecked(V64[T]().Get() << 1)
}
