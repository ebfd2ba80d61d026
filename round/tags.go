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

import "unsafe"

// Tag describes a vector of a fixed element type and register width.
// It is what LanesMultOf turns into a rounding multiplier.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag.
	Name() string

	// MaxLanes returns how many elements fit in one vector.
	MaxLanes() int
}

func lanesIn[T Lanes](width int) int {
	var dummy T
	return width / int(unsafe.Sizeof(dummy))
}

// ScalableTag adapts to the widest SIMD available at runtime.
//
// Usage:
//
//	tag := round.ScalableTag[float32]{}
//	n, _ := round.AlignedSize(tag, 1000)
type ScalableTag[T Lanes] struct{}

// Width returns the current runtime SIMD width in bytes.
func (ScalableTag[T]) Width() int {
	return currentWidth
}

// Name returns the current runtime SIMD target name.
func (ScalableTag[T]) Name() string {
	return currentLevel.String()
}

// MaxLanes returns the number of T values in a vector of the current width.
func (ScalableTag[T]) MaxLanes() int {
	return lanesIn[T](currentWidth)
}

// FixedTag128 describes a 128-bit vector (SSE, NEON).
type FixedTag128[T Lanes] struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128[T]) Width() int {
	return 16
}

// Name returns "128bit".
func (FixedTag128[T]) Name() string {
	return "128bit"
}

// MaxLanes returns the number of T values that fit in 128 bits.
func (FixedTag128[T]) MaxLanes() int {
	return lanesIn[T](16)
}

// FixedTag256 describes a 256-bit vector (AVX2).
type FixedTag256[T Lanes] struct{}

// Width returns 32 bytes (256 bits).
func (FixedTag256[T]) Width() int {
	return 32
}

// Name returns "256bit".
func (FixedTag256[T]) Name() string {
	return "256bit"
}

// MaxLanes returns the number of T values that fit in 256 bits.
func (FixedTag256[T]) MaxLanes() int {
	return lanesIn[T](32)
}

// FixedTag512 describes a 512-bit vector (AVX-512, SME on M4).
type FixedTag512[T Lanes] struct{}

// Width returns 64 bytes (512 bits).
func (FixedTag512[T]) Width() int {
	return 64
}

// Name returns "512bit".
func (FixedTag512[T]) Name() string {
	return "512bit"
}

// MaxLanes returns the number of T values that fit in 512 bits.
func (FixedTag512[T]) MaxLanes() int {
	return lanesIn[T](64)
}
