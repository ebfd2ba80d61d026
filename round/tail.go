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

import "math"

// This file provides buffer helpers for SIMD loops: sizes are rounded to a
// whole number of vectors described by a Tag.

// VectorMultiplier returns the multiplier for one vector of tag.
//
// Tags with 2..64 lanes get the mask based NonZeroPow2. Anything else
// (a custom Tag with an odd lane count) falls back to NonZero, and a tag
// whose element does not fit in one vector counts as a single lane.
func VectorMultiplier(tag Tag) Multiplier[uint] {
	if m, ok := LanesMultOf[uint](tag); ok {
		return m
	}
	return NewNonZeroUnchecked(uint(max(tag.MaxLanes(), 1)))
}

// AlignedSize rounds size up to the next multiple of the vector width.
// This is useful for allocating buffers that will be processed with SIMD.
//
// Returns false if size is negative or the rounded size does not fit in an int.
func AlignedSize(tag Tag, size int) (int, bool) {
	if size < 0 {
		return 0, false
	}
	up, ok := Up(uint(size), VectorMultiplier(tag))
	if !ok || up > math.MaxInt {
		return 0, false
	}
	return int(up), true
}

// IsAligned returns true if size is a multiple of the vector width.
func IsAligned(tag Tag, size int) bool {
	if size < 0 {
		return false
	}
	return Down(uint(size), VectorMultiplier(tag)) == uint(size)
}

// ProcessWithTail is a helper for processing arrays with SIMD that handles
// both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of vector width
//
// Example:
//
//	round.ProcessWithTail(round.ScalableTag[float32]{}, len(data),
//	    func(offset int) {
//	        // whole vector at data[offset:]
//	    },
//	    func(offset, count int) {
//	        // count < lanes elements at data[offset:]
//	    },
//	)
func ProcessWithTail(tag Tag, size int, fullFn func(offset int), tailFn func(offset, count int)) {
	if size <= 0 {
		return
	}
	m := VectorMultiplier(tag)
	lanes := int(m.Get())

	full := int(Down(uint(size), m))
	for offset := 0; offset < full; offset += lanes {
		fullFn(offset)
	}

	if full < size {
		tailFn(full, size-full)
	}
}

// ProcessWithTailNoMask is similar to ProcessWithTail but doesn't require
// a tail function. Instead, it processes overlapping vectors for the tail.
// This is simpler but may do redundant work for the last few elements.
func ProcessWithTailNoMask(tag Tag, size int, fullFn func(offset int)) {
	if size <= 0 {
		return
	}
	m := VectorMultiplier(tag)
	lanes := int(m.Get())

	if size < lanes {
		// Single partial vector
		fullFn(0)
		return
	}

	full := int(Down(uint(size), m))
	for offset := 0; offset < full; offset += lanes {
		fullFn(offset)
	}

	// Process tail with overlapping vector if needed
	if full < size {
		fullFn(size - lanes)
	}
}
