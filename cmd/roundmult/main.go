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

// Command roundmult rounds integers to multiples from the command line.
//
// Usage:
//
//	roundmult down 109 10                      # 100
//	roundmult up 250 16 --type uint8           # error: overflow
//	roundmult down 109 32 --type uint8 --path pow2
//	roundmult lanes --tag 256 --elem float32   # lane multiplier of an AVX2 float32 vector
//	roundmult plan --config plan.yaml --format table
//
// Set ROUNDMULT_NO_SIMD=1 to make the scalable tag report the scalar width.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
