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

//go:build amd64 && goexperiment.simd

package round

import "simd/archsimd"

// This file is only built with GOEXPERIMENT=simd. Without it LanesOf does not
// exist and nothing else in the package changes.

// Vector is the closed set of archsimd vector and mask types LanesOf knows.
type Vector interface {
	// 2 lanes
	archsimd.Float64x2 | archsimd.Int64x2 | archsimd.Uint64x2 | archsimd.Mask64x2 |
		// 4 lanes
		archsimd.Float32x4 | archsimd.Int32x4 | archsimd.Uint32x4 | archsimd.Mask32x4 |
		archsimd.Float64x4 | archsimd.Int64x4 | archsimd.Uint64x4 | archsimd.Mask64x4 |
		// 8 lanes
		archsimd.Int16x8 | archsimd.Uint16x8 | archsimd.Mask16x8 |
		archsimd.Float32x8 | archsimd.Int32x8 | archsimd.Uint32x8 | archsimd.Mask32x8 |
		archsimd.Float64x8 | archsimd.Int64x8 | archsimd.Uint64x8 | archsimd.Mask64x8 |
		// 16 lanes
		archsimd.Int8x16 | archsimd.Uint8x16 | archsimd.Mask8x16 |
		archsimd.Int16x16 | archsimd.Uint16x16 | archsimd.Mask16x16 |
		archsimd.Float32x16 | archsimd.Int32x16 | archsimd.Uint32x16 | archsimd.Mask32x16 |
		// 32 lanes
		archsimd.Int8x32 | archsimd.Uint8x32 | archsimd.Mask8x32 |
		archsimd.Int16x32 | archsimd.Uint16x32 | archsimd.Mask16x32 |
		// 64 lanes
		archsimd.Int8x64 | archsimd.Uint8x64 | archsimd.Mask8x64
}

// LanesOf returns the multiplier matching the lane count of the vector type V.
//
//	m := round.LanesOf[archsimd.Float32x8, uint]() // 8
//	n := round.Down(uint(len(data)), m)            // full vectors only
func LanesOf[V Vector, N UnsignedInts]() NonZeroPow2[N] {
	var v V
	switch any(v).(type) {
	case archsimd.Float64x2, archsimd.Int64x2, archsimd.Uint64x2, archsimd.Mask64x2:
		return V2[N]()
	case archsimd.Float32x4, archsimd.Int32x4, archsimd.Uint32x4, archsimd.Mask32x4,
		archsimd.Float64x4, archsimd.Int64x4, archsimd.Uint64x4, archsimd.Mask64x4:
		return V4[N]()
	case archsimd.Int16x8, archsimd.Uint16x8, archsimd.Mask16x8,
		archsimd.Float32x8, archsimd.Int32x8, archsimd.Uint32x8, archsimd.Mask32x8,
		archsimd.Float64x8, archsimd.Int64x8, archsimd.Uint64x8, archsimd.Mask64x8:
		return V8[N]()
	case archsimd.Int8x16, archsimd.Uint8x16, archsimd.Mask8x16,
		archsimd.Int16x16, archsimd.Uint16x16, archsimd.Mask16x16,
		archsimd.Float32x16, archsimd.Int32x16, archsimd.Uint32x16, archsimd.Mask32x16:
		return V16[N]()
	case archsimd.Int8x32, archsimd.Uint8x32, archsimd.Mask8x32,
		archsimd.Int16x32, archsimd.Uint16x32, archsimd.Mask16x32:
		return V32[N]()
	case archsimd.Int8x64, archsimd.Uint8x64, archsimd.Mask8x64:
		return V64[N]()
	}
	panic("unreachable: Vector is a closed set")
}
