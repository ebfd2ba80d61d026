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
	"math/bits"
	"unsafe"
)

// This file provides the per-type numeric facts the rounding code relies on.
// CheckedAdd is the only place where overflow is detected.

// One returns the multiplicative identity of T.
func One[T Integers]() T {
	return 1
}

// Bits returns the width of T in bits.
func Bits[T Integers]() uint {
	var dummy T
	return uint(unsafe.Sizeof(dummy)) * 8
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T Integers]() bool {
	var zero T
	return ^zero < 0
}

// MaxValue returns the largest value representable by T.
func MaxValue[T Integers]() T {
	var zero T
	if IsSigned[T]() {
		// 1 << (n-1) is the minimum signed value; its complement is the maximum.
		return ^(One[T]() << (Bits[T]() - 1))
	}
	return ^zero
}

// CheckedAdd returns a+b and true, or zero and false if the sum is not
// representable by T.
//
// For example, uint8: 250 + 5 = 255, true; 250 + 6 = 0, false.
func CheckedAdd[T Integers](a, b T) (T, bool) {
	if IsSigned[T]() {
		sum := a + b
		if (a >= 0) == (b >= 0) && (sum >= 0) != (a >= 0) {
			return 0, false
		}
		return sum, true
	}
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 || sum > uint64(MaxValue[T]()) {
		return 0, false
	}
	return T(sum), true
}
