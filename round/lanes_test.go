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

import "testing"

func TestLanesMultTable(t *testing.T) {
	for _, lanes := range []int{2, 4, 8, 16, 32, 64} {
		m, ok := LanesMult[uint32](lanes)
		if !ok {
			t.Errorf("LanesMult(%d) failed", lanes)
			continue
		}
		if int(m.Get()) != lanes {
			t.Errorf("LanesMult(%d) = %d", lanes, m.Get())
		}
		// The table agrees with checked construction.
		if p, _ := New(uint32(lanes)); p != m {
			t.Errorf("LanesMult(%d) = %v, New = %v", lanes, m, p)
		}
	}
	for _, lanes := range []int{-1, 0, 1, 3, 12, 128} {
		if _, ok := LanesMult[uint32](lanes); ok {
			t.Errorf("LanesMult(%d) should fail", lanes)
		}
	}
}

func TestLanesMultOfFixedTags(t *testing.T) {
	tests := []struct {
		tag  Tag
		want uint
	}{
		{FixedTag128[uint8]{}, 16},
		{FixedTag128[float32]{}, 4},
		{FixedTag128[float64]{}, 2},
		{FixedTag256[float32]{}, 8},
		{FixedTag256[int16]{}, 16},
		{FixedTag512[uint8]{}, 64},
		{FixedTag512[float64]{}, 8},
	}
	for _, tt := range tests {
		m, ok := LanesMultOf[uint](tt.tag)
		if !ok || m.Get() != tt.want {
			t.Errorf("LanesMultOf(%s, %d lanes) = %v, %v, want %d", tt.tag.Name(), tt.tag.MaxLanes(), m, ok, tt.want)
		}
	}
}

func TestLanesMultOfScalableTag(t *testing.T) {
	tag := ScalableTag[float32]{}
	m, ok := LanesMultOf[uint64](tag)
	if !ok {
		t.Fatalf("LanesMultOf(ScalableTag, width %d) failed", tag.Width())
	}
	if int(m.Get())*4 != CurrentWidth() {
		t.Errorf("ScalableTag[float32] multiplier %d does not match width %d", m.Get(), CurrentWidth())
	}
}

func TestLanesMultRounding(t *testing.T) {
	m, _ := LanesMultOf[uint](FixedTag256[float32]{})
	if got, ok := Up(uint(1001), m); !ok || got != 1008 {
		t.Errorf("Up(1001, 8 lanes) = %d, %v, want 1008, true", got, ok)
	}
	if got := Down(uint(1001), m); got != 1000 {
		t.Errorf("Down(1001, 8 lanes) = %d, want 1000", got)
	}
}
