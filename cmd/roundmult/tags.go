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

package main

import (
	"fmt"

	"github.com/ajroetker/go-roundmult/round"
)

// LaneSpec names a vector: a register width and an element type.
type LaneSpec struct {
	// Tag is "scalable" (runtime width), "128", "256" or "512".
	Tag string `yaml:"tag"`

	// Elem is the element type, e.g. "float32" or "uint8".
	Elem string `yaml:"elem"`
}

// ResolveTag returns the round.Tag described by spec.
func ResolveTag(spec LaneSpec) (round.Tag, error) {
	switch spec.Elem {
	case "float32":
		return tagFor[float32](spec.Tag)
	case "float64":
		return tagFor[float64](spec.Tag)
	case "int8":
		return tagFor[int8](spec.Tag)
	case "int16":
		return tagFor[int16](spec.Tag)
	case "int32":
		return tagFor[int32](spec.Tag)
	case "int64":
		return tagFor[int64](spec.Tag)
	case "uint8":
		return tagFor[uint8](spec.Tag)
	case "uint16":
		return tagFor[uint16](spec.Tag)
	case "uint32":
		return tagFor[uint32](spec.Tag)
	case "uint64":
		return tagFor[uint64](spec.Tag)
	}
	return nil, fmt.Errorf("unknown element type %q", spec.Elem)
}

func tagFor[T round.Lanes](name string) (round.Tag, error) {
	switch name {
	case "", "scalable":
		return round.ScalableTag[T]{}, nil
	case "128":
		return round.FixedTag128[T]{}, nil
	case "256":
		return round.FixedTag256[T]{}, nil
	case "512":
		return round.FixedTag512[T]{}, nil
	}
	return nil, fmt.Errorf("unknown tag %q: must be scalable, 128, 256 or 512", name)
}
