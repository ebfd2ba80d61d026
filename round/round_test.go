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
	"math"
	"testing"
	"testing/quick"
)

func TestScenarios(t *testing.T) {
	// Generic multiplier 10.
	if got := Down(109, MustNonZero(10)); got != 100 {
		t.Errorf("Down(109, 10) = %d, want 100", got)
	}
	if got, ok := Up(109, MustNonZero(10)); !ok || got != 110 {
		t.Errorf("Up(109, 10) = %d, %v, want 110, true", got, ok)
	}

	// Power of two 32 and plain non-zero 32 agree.
	m, ok := New[uint8](32)
	if !ok {
		t.Fatal("New(32) failed")
	}
	if got := Down[uint8](109, m); got != 96 {
		t.Errorf("Down(109, pow2 32) = %d, want 96", got)
	}
	if got := Down[uint8](109, m.GetNonZero()); got != 96 {
		t.Errorf("Down(109, nonzero 32) = %d, want 96", got)
	}

	// Exact multiple is returned unchanged.
	four, _ := New[uint](4)
	if got, ok := Up[uint](12, four); !ok || got != 12 {
		t.Errorf("Up(12, 4) = %d, %v, want 12, true", got, ok)
	}

	// 240 + 16 = 256 overflows uint8.
	if got := Down[uint8](250, V16[uint8]()); got != 240 {
		t.Errorf("Down(250, 16) = %d, want 240", got)
	}
	if got, ok := Up[uint8](250, V16[uint8]()); ok {
		t.Errorf("Up(250, 16) = %d, true, want overflow", got)
	}
	if got, ok := Up[uint8](250, MustNonZero[uint8](16)); ok {
		t.Errorf("Up(250, nonzero 16) = %d, true, want overflow", got)
	}

	if _, ok := New[uint32](6); ok {
		t.Error("New(6) should fail")
	}
	if p, ok := New[uint32](64); !ok || p.Get() != 64 {
		t.Errorf("New(64) = %v, %v, want 64, true", p, ok)
	}
}

func TestUpAtMaxMultiple(t *testing.T) {
	// 255 is a multiple of 5 and 17; no addition may happen.
	for _, m := range []uint8{1, 3, 5, 15, 17, 51, 85, 255} {
		if got, ok := Up(uint8(255), MustNonZero(m)); !ok || got != 255 {
			t.Errorf("Up(255, %d) = %d, %v, want 255, true", m, got, ok)
		}
	}
	if got, ok := Up(uint8(128), V128[uint8]()); !ok || got != 128 {
		t.Errorf("Up(128, 128) = %d, %v, want 128, true", got, ok)
	}
	if got, ok := Up(uint8(129), V128[uint8]()); ok {
		t.Errorf("Up(129, 128) = %d, true, want overflow", got)
	}
}

func TestGenericUint8Exhaustive(t *testing.T) {
	for mi := 1; mi <= math.MaxUint8; mi++ {
		m := MustNonZero(uint8(mi))
		for vi := 0; vi <= math.MaxUint8; vi++ {
			v := uint8(vi)
			down := Down(v, m)
			if want := v / m.Get() * m.Get(); down != want {
				t.Fatalf("Down(%d, %d) = %d, want %d", v, mi, down, want)
			}

			up, ok := Up(v, m)
			switch {
			case vi%mi == 0:
				if !ok || up != v {
					t.Fatalf("Up(%d, %d) = %d, %v, want identity", v, mi, up, ok)
				}
			case int(down)+mi > math.MaxUint8:
				if ok {
					t.Fatalf("Up(%d, %d) = %d, want overflow", v, mi, up)
				}
			default:
				if !ok || int(up) != int(down)+mi {
					t.Fatalf("Up(%d, %d) = %d, %v, want %d", v, mi, up, ok, int(down)+mi)
				}
			}
		}
	}
}

func TestPow2Uint8Exhaustive(t *testing.T) {
	for k := uint(0); k < 8; k++ {
		p := NewUnchecked(uint8(1) << k)
		for vi := 0; vi <= math.MaxUint8; vi++ {
			v := uint8(vi)
			if got, want := Down(v, p), v/p.Get()*p.Get(); got != want {
				t.Fatalf("Down(%d, %d) = %d, want %d", v, p.Get(), got, want)
			}
			gotUp, gotOK := Up(v, p)
			wantUp, wantOK := Up(v, p.GetNonZero())
			if gotUp != wantUp || gotOK != wantOK {
				t.Fatalf("Up(%d, %d): pow2 = %d, %v; generic = %d, %v", v, p.Get(), gotUp, gotOK, wantUp, wantOK)
			}
		}
	}
}

func TestRoundTripIdentity(t *testing.T) {
	for k := uint(0); k < 64; k++ {
		p := NewUnchecked(uint64(1) << k)
		if got := Down(p.Get(), p); got != p.Get() {
			t.Errorf("Down(%d, %d) = %d", p.Get(), p.Get(), got)
		}
		if got, ok := Up(p.Get(), p); !ok || got != p.Get() {
			t.Errorf("Up(%d, %d) = %d, %v", p.Get(), p.Get(), got, ok)
		}
	}
	f := func(m uint32) bool {
		nz, ok := NewNonZero(m)
		if !ok {
			return true
		}
		up, ok := Up(m, nz)
		return Down(m, nz) == m && ok && up == m
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// pow2Of maps an arbitrary uint to a power of two below 1<<bits.
func pow2Of[T UnsignedInts](k uint) NonZeroPow2[T] {
	return NewUnchecked(One[T]() << (k % Bits[T]()))
}

func checkEquivalence[T UnsignedInts](t *testing.T, name string) {
	t.Helper()
	f := func(v uint64, k uint) bool {
		value := T(v)
		p := pow2Of[T](k)
		nz := p.GetNonZero()
		upP, okP := Up(value, p)
		upG, okG := Up(value, nz)
		return Down(value, p) == Down(value, nz) && upP == upG && okP == okG
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 2000}); err != nil {
		t.Errorf("%s: %v", name, err)
	}

	// Values at and around every power of two, including the top of the range.
	for k := uint(0); k < Bits[T](); k++ {
		p := pow2Of[T](k)
		for _, value := range []T{0, 1, p.Get() - 1, p.Get(), p.Get() + 1, p.Get() * 2, p.Get()*3 + 1, MaxValue[T](), MaxValue[T]() - p.Get()} {
			upP, okP := Up(value, p)
			upG, okG := Up(value, p.GetNonZero())
			if Down(value, p) != Down(value, p.GetNonZero()) || upP != upG || okP != okG {
				t.Errorf("%s: value %d, multiplier %d: pow2 and generic disagree", name, value, p.Get())
			}
		}
	}
}

func TestGenericPow2Equivalence(t *testing.T) {
	checkEquivalence[uint8](t, "uint8")
	checkEquivalence[uint16](t, "uint16")
	checkEquivalence[uint32](t, "uint32")
	checkEquivalence[uint64](t, "uint64")
	checkEquivalence[uint](t, "uint")
	checkEquivalence[uintptr](t, "uintptr")
}

func TestDownCorrectnessUint64(t *testing.T) {
	f := func(v, m uint64) bool {
		nz, ok := NewNonZero(m)
		if !ok {
			return true
		}
		return Down(v, nz) == v/m*m
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestUpCorrectnessUint16(t *testing.T) {
	f := func(v, m uint16) bool {
		nz, ok := NewNonZero(m)
		if !ok {
			return true
		}
		up, ok := Up(v, nz)
		if v%m == 0 {
			return ok && up == v
		}
		next := uint64(v/m*m) + uint64(m)
		if next > math.MaxUint16 {
			return !ok
		}
		return ok && uint64(up) == next
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 5000}); err != nil {
		t.Error(err)
	}
}

func TestUpOverflowIsReported(t *testing.T) {
	f := func(v uint32, k uint) bool {
		p := pow2Of[uint32](k)
		m := p.Get()
		if v%m == 0 || math.MaxUint32-(v/m)*m >= m {
			return true
		}
		_, okP := Up(v, p)
		_, okG := Up(v, p.GetNonZero())
		return !okP && !okG
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
	if _, ok := Up[uint64](math.MaxUint64, MustNonZero[uint64](10)); ok {
		t.Error("Up(MaxUint64, 10) should overflow")
	}
}

func TestSignedGeneric(t *testing.T) {
	tests := []struct {
		v, m     int8
		down, up int8
		upOK     bool
	}{
		{109, 10, 100, 110, true},
		{100, 10, 100, 100, true},
		{0, 7, 0, 0, true},
		{-7, 5, -5, 0, true},
		{-10, 5, -10, -10, true},
		{7, -5, 5, 0, true},
		{-7, -5, -5, -10, true},
		{125, 10, 120, 0, false},
		{127, 2, 126, 0, false},
		{-125, 10, -120, -110, true},
		{-125, -10, -120, 0, false},
		{-127, 5, -125, -120, true},
		{-128, 3, -126, -123, true},
		{-128, -1, -128, -128, true},
		{-128, 127, -127, 0, true},
		{127, -128, 0, -128, true},
		{7, -128, 0, -128, true},
	}
	for _, tt := range tests {
		m := MustNonZero(tt.m)
		if got := Down(tt.v, m); got != tt.down {
			t.Errorf("Down(%d, %d) = %d, want %d", tt.v, tt.m, got, tt.down)
		}
		got, ok := Up(tt.v, m)
		if ok != tt.upOK || (ok && got != tt.up) {
			t.Errorf("Up(%d, %d) = %d, %v, want %d, %v", tt.v, tt.m, got, ok, tt.up, tt.upOK)
		}
	}
}

func TestSignedDownMatchesDivision(t *testing.T) {
	for vi := math.MinInt8; vi <= math.MaxInt8; vi++ {
		for mi := math.MinInt8; mi <= math.MaxInt8; mi++ {
			if mi == 0 {
				continue
			}
			v, m := int8(vi), int8(mi)
			if got, want := Down(v, MustNonZero(m)), v/m*m; got != want {
				t.Fatalf("Down(%d, %d) = %d, want %d", v, m, got, want)
			}
			up, ok := Up(v, MustNonZero(m))
			if ok && up%m != 0 {
				t.Fatalf("Up(%d, %d) = %d is not a multiple", v, m, up)
			}
		}
	}
}

func TestSignedUpInt8Exhaustive(t *testing.T) {
	for vi := math.MinInt8; vi <= math.MaxInt8; vi++ {
		for mi := math.MinInt8; mi <= math.MaxInt8; mi++ {
			if mi == 0 {
				continue
			}
			v, m := int8(vi), int8(mi)
			down := Down(v, MustNonZero(m))

			want, wantOK := vi, true
			if down != v {
				want = int(down) + mi
				wantOK = want >= math.MinInt8 && want <= math.MaxInt8
			}
			got, ok := Up(v, MustNonZero(m))
			if ok != wantOK || (ok && int(got) != want) {
				t.Fatalf("Up(%d, %d) = %d, %v, want %d, %v", v, m, got, ok, want, wantOK)
			}
			if !ok && got != 0 {
				t.Fatalf("Up(%d, %d) overflowed but returned %d", v, m, got)
			}
		}
	}
}
