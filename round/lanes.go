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

// LanesMult returns the multiplier matching a vector of the given lane
// count. Only 2, 4, 8, 16, 32 and 64 lanes exist; any other count
// returns false.
//
// The result is built from the V* constants, so no validation happens at
// runtime.
func LanesMult[N UnsignedInts](lanes int) (NonZeroPow2[N], bool) {
	switch lanes {
	case 2:
		return V2[N](), true
	case 4:
		return V4[N](), true
	case 8:
		return V8[N](), true
	case 16:
		return V16[N](), true
	case 32:
		return V32[N](), true
	case 64:
		return V64[N](), true
	}
	return NonZeroPow2[N]{}, false
}

// LanesMultOf returns the multiplier matching the lane count of tag.
//
// Buffer sizes rounded with it are whole numbers of vectors:
//
//	m, _ := round.LanesMultOf[uint](round.FixedTag256[float32]{}) // 8
//	round.Up(uint(1001), m)                                      // 1008, true
func LanesMultOf[N UnsignedInts](tag Tag) (NonZeroPow2[N], bool) {
	return LanesMult[N](tag.MaxLanes())
}
