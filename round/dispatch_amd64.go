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

//go:build amd64 && !goexperiment.simd

package round

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setLevel(DispatchScalar)
		return
	}
	detectCPUFeatures()
}

// Without GOEXPERIMENT=simd the width is only used to size buffers, so
// x/sys/cpu is enough to pick it.
func detectCPUFeatures() {
	switch {
	case cpu.X86.HasAVX512F:
		setLevel(DispatchAVX512)
	case cpu.X86.HasAVX2:
		setLevel(DispatchAVX2)
	case cpu.X86.HasSSE2:
		setLevel(DispatchSSE2)
	default:
		setLevel(DispatchScalar)
	}
}
