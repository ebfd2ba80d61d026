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

import "strconv"

// IsZero reports whether v is zero.
func IsZero[T Integers](v T) bool {
	return v == 0
}

// IsPowerOfTwo reports whether v equals 2^k for some k >= 0.
// Zero and negative values are never powers of two.
func IsPowerOfTwo[T Integers](v T) bool {
	return v > 0 && v&(v-1) == 0
}

// NonZero is an integer that is guaranteed not to be zero.
//
// The zero value of NonZero is not valid; obtain one from NewNonZero,
// MustNonZero or NewNonZeroUnchecked. A NonZero used as a Multiplier rounds
// with division and modulo and never divides by zero.
type NonZero[T Integers] struct {
	v T
}

// NewNonZero returns v as a NonZero, or false if v is zero.
func NewNonZero[T Integers](v T) (NonZero[T], bool) {
	if IsZero(v) {
		return NonZero[T]{}, false
	}
	return NonZero[T]{v: v}, true
}

// MustNonZero is like NewNonZero but panics if v is zero.
// It is meant for literal multipliers.
func MustNonZero[T Integers](v T) NonZero[T] {
	nz, ok := NewNonZero(v)
	if !ok {
		panic("round: MustNonZero called with zero")
	}
	return nz
}

// NewNonZeroUnchecked wraps v without checking it.
//
// The caller must guarantee v != 0. Rounding with a zero NonZero panics with
// an integer divide by zero.
func NewNonZeroUnchecked[T Integers](v T) NonZero[T] {
	return NonZero[T]{v: v}
}

// Get returns the plain value.
func (n NonZero[T]) Get() T {
	return n.v
}

// String implements fmt.Stringer.
func (n NonZero[T]) String() string {
	if IsSigned[T]() {
		return strconv.FormatInt(int64(n.v), 10)
	}
	return strconv.FormatUint(uint64(n.v), 10)
}
