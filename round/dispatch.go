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
	"os"
	"strconv"
)

// DispatchLevel is the SIMD instruction set detected at startup. Its vector
// width is what ScalableTag reports, and so what LanesMultOf rounds to.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchAVX2
	DispatchAVX512
	DispatchNEON
)

// levelInfo holds the name and vector width in bytes of each level.
// Scalar uses 16 bytes so lane multipliers match SSE2 and NEON.
var levelInfo = [...]struct {
	name  string
	width int
}{
	DispatchScalar: {"scalar", 16},
	DispatchSSE2:   {"sse2", 16},
	DispatchAVX2:   {"avx2", 32},
	DispatchAVX512: {"avx512", 64},
	DispatchNEON:   {"neon", 16},
}

func (d DispatchLevel) valid() bool {
	return d >= 0 && int(d) < len(levelInfo)
}

// String returns the lower-case name of the level, or "unknown".
func (d DispatchLevel) String() string {
	if !d.valid() {
		return "unknown"
	}
	return levelInfo[d].name
}

// Width returns the vector width of the level in bytes, or 0 for an
// unknown level.
func (d DispatchLevel) Width() int {
	if !d.valid() {
		return 0
	}
	return levelInfo[d].width
}

// Set once by init() in dispatch_*.go.
var (
	currentLevel DispatchLevel
	currentWidth int
)

func setLevel(d DispatchLevel) {
	currentLevel = d
	currentWidth = d.Width()
}

// CurrentLevel returns the SIMD instruction set detected at startup.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector width in bytes ScalableTag uses.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the name of CurrentLevel.
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv reports whether ROUNDMULT_NO_SIMD asks for the scalar level.
// Values strconv.ParseBool understands are honoured; anything else that is
// non-empty counts as true.
func NoSimdEnv() bool {
	val := os.Getenv("ROUNDMULT_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
