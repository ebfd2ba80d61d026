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

// Down rounds value down to a multiple of m.
//
// M is a type parameter rather than an interface argument so each
// multiplier representation gets its own instantiation.
func Down[T Integers, M Multiplier[T]](value T, m M) T {
	return m.Down(value)
}

// Up rounds value up to a multiple of m.
//
// Returns false if the result overflows T.
func Up[T Integers, M Multiplier[T]](value T, m M) (T, bool) {
	return m.Up(value)
}
