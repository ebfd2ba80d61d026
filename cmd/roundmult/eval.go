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
	"errors"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/ajroetker/go-roundmult/round"
)

var (
	// ErrOverflow is returned when rounding up does not fit the subject type.
	ErrOverflow = errors.New("overflow")

	// ErrZeroMultiplier is returned for a multiplier of 0.
	ErrZeroMultiplier = errors.New("multiplier must not be zero")

	// ErrNotPowerOfTwo is returned when --path pow2 is given a multiplier
	// that is not a power of two.
	ErrNotPowerOfTwo = errors.New("multiplier is not a power of two")

	// ErrSignedPow2 is returned when --path pow2 is used with a signed type.
	ErrSignedPow2 = errors.New("power-of-two path requires an unsigned type")

	// ErrUnknownType is returned for a subject type name that is not supported.
	ErrUnknownType = errors.New("unknown integer type")

	// ErrUnknownPath is returned for a --path value that is not supported.
	ErrUnknownPath = errors.New("unknown path")
)

// Op selects the rounding direction.
type Op string

const (
	OpDown Op = "down"
	OpUp   Op = "up"
)

// Path selects the multiplier representation.
type Path string

const (
	// PathAuto uses the power-of-two path when the type is unsigned and the
	// multiplier allows it, and the generic path otherwise.
	PathAuto    Path = "auto"
	PathGeneric Path = "generic"
	PathPow2    Path = "pow2"
)

// Result is one evaluated rounding.
type Result struct {
	Type       string `yaml:"type"`
	Op         Op     `yaml:"op"`
	Value      string `yaml:"value"`
	Multiplier string `yaml:"multiplier"`
	Path       Path   `yaml:"path"`
	Result     string `yaml:"result"`
}

// Request is the input of Evaluate.
type Request struct {
	Type       string
	Op         Op
	Value      string
	Multiplier string
	Path       Path
}

// Evaluate parses the request in its subject type and rounds it.
func Evaluate(req Request) (*Result, error) {
	switch req.Path {
	case PathAuto, PathGeneric, PathPow2:
	default:
		return nil, fmt.Errorf("%w %q: must be auto, generic or pow2", ErrUnknownPath, req.Path)
	}

	switch canonicalType(req.Type) {
	case "uint8":
		return evalUnsigned[uint8](req)
	case "uint16":
		return evalUnsigned[uint16](req)
	case "uint32":
		return evalUnsigned[uint32](req)
	case "uint64":
		return evalUnsigned[uint64](req)
	case "uint":
		return evalUnsigned[uint](req)
	case "uintptr":
		return evalUnsigned[uintptr](req)
	case "int8":
		return evalSigned[int8](req)
	case "int16":
		return evalSigned[int16](req)
	case "int32":
		return evalSigned[int32](req)
	case "int64":
		return evalSigned[int64](req)
	case "int":
		return evalSigned[int](req)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownType, req.Type)
}

// canonicalType accepts Go names and the short u8/i8 spellings.
func canonicalType(name string) string {
	switch name {
	case "u8":
		return "uint8"
	case "u16":
		return "uint16"
	case "u32":
		return "uint32"
	case "u64":
		return "uint64"
	case "usize":
		return "uint"
	case "i8":
		return "int8"
	case "i16":
		return "int16"
	case "i32":
		return "int32"
	case "i64":
		return "int64"
	case "isize":
		return "int"
	}
	return name
}

func parseUnsigned[T round.UnsignedInts](field, s string) (T, error) {
	v, err := strconv.ParseUint(s, 0, int(round.Bits[T]()))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	return T(v), nil
}

func parseSigned[T round.SignedInts](field, s string) (T, error) {
	v, err := strconv.ParseInt(s, 0, int(round.Bits[T]()))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	return T(v), nil
}

func evalUnsigned[T round.UnsignedInts](req Request) (*Result, error) {
	v, err := parseUnsigned[T]("value", req.Value)
	if err != nil {
		return nil, err
	}
	m, err := parseUnsigned[T]("multiplier", req.Multiplier)
	if err != nil {
		return nil, err
	}

	if req.Path != PathGeneric {
		if p, ok := round.New(m); ok {
			return apply(req, PathPow2, v, p)
		}
		if req.Path == PathPow2 {
			if round.IsZero(m) {
				return nil, ErrZeroMultiplier
			}
			return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, m)
		}
	}
	nz, ok := round.NewNonZero(m)
	if !ok {
		return nil, ErrZeroMultiplier
	}
	return apply(req, PathGeneric, v, nz)
}

func evalSigned[T round.SignedInts](req Request) (*Result, error) {
	if req.Path == PathPow2 {
		return nil, fmt.Errorf("%w, got %s", ErrSignedPow2, canonicalType(req.Type))
	}
	v, err := parseSigned[T]("value", req.Value)
	if err != nil {
		return nil, err
	}
	m, err := parseSigned[T]("multiplier", req.Multiplier)
	if err != nil {
		return nil, err
	}
	nz, ok := round.NewNonZero(m)
	if !ok {
		return nil, ErrZeroMultiplier
	}
	return apply(req, PathGeneric, v, nz)
}

func apply[T round.Integers, M round.Multiplier[T]](req Request, path Path, v T, m M) (*Result, error) {
	log.WithFields(log.Fields{
		"type":       canonicalType(req.Type),
		"op":         req.Op,
		"path":       path,
		"multiplier": m.Get(),
	}).Debug("rounding")

	var out T
	switch req.Op {
	case OpDown:
		out = round.Down(v, m)
	case OpUp:
		var ok bool
		if out, ok = round.Up(v, m); !ok {
			return nil, fmt.Errorf("%w: rounding %d up to a multiple of %d does not fit in %s",
				ErrOverflow, v, m.Get(), canonicalType(req.Type))
		}
	default:
		return nil, fmt.Errorf("unknown operation %q", req.Op)
	}

	return &Result{
		Type:       canonicalType(req.Type),
		Op:         req.Op,
		Value:      fmt.Sprint(v),
		Multiplier: fmt.Sprint(m.Get()),
		Path:       path,
		Result:     fmt.Sprint(out),
	}, nil
}
