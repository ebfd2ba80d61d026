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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-roundmult/round"
)

// Plan is a YAML description of buffers to align.
//
//	type: uint32
//	lanes: {tag: "256", elem: float32}
//	buffers:
//	  - {name: weights, size: 1000}
type Plan struct {
	// Type is the unsigned type sizes are computed in. Defaults to uint64.
	Type string `yaml:"type"`

	// Multiplier is an explicit multiplier. Exactly one of Multiplier and
	// Lanes must be set.
	Multiplier uint64 `yaml:"multiplier,omitempty"`

	// Lanes derives the multiplier from a vector.
	Lanes *LaneSpec `yaml:"lanes,omitempty"`

	Buffers []Buffer `yaml:"buffers"`
}

// Buffer is one named size.
type Buffer struct {
	Name string `yaml:"name"`
	Size uint64 `yaml:"size"`
}

// PlanResult is an evaluated Plan.
type PlanResult struct {
	Type       string      `yaml:"type"`
	Multiplier string      `yaml:"multiplier"`
	Path       Path        `yaml:"path"`
	Buffers    []BufferRow `yaml:"buffers"`
}

// BufferRow is one evaluated buffer. Up is "overflow" when the rounded size
// does not fit the plan type.
type BufferRow struct {
	Name string `yaml:"name"`
	Size string `yaml:"size"`
	Down string `yaml:"down"`
	Up   string `yaml:"up"`
}

const overflowCell = "overflow"

// LoadPlan reads and validates a plan file.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}
	plan, err := ParsePlan(data)
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", path, err)
	}
	return plan, nil
}

// ParsePlan decodes and validates a plan. Unknown keys are rejected.
func ParsePlan(data []byte) (*Plan, error) {
	plan := &Plan{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(plan); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

// Validate checks the plan and fills in defaults.
func (p *Plan) Validate() error {
	if p.Type == "" {
		p.Type = "uint64"
	}
	p.Type = canonicalType(p.Type)
	switch p.Type {
	case "uint8", "uint16", "uint32", "uint64", "uint", "uintptr":
	default:
		return fmt.Errorf("type: %w %q: plans need an unsigned type", ErrUnknownType, p.Type)
	}

	if (p.Multiplier == 0) == (p.Lanes == nil) {
		return errors.New("exactly one of multiplier and lanes must be set")
	}
	if len(p.Buffers) == 0 {
		return errors.New("buffers: at least one buffer is required")
	}
	for i, b := range p.Buffers {
		if b.Name == "" {
			return fmt.Errorf("buffers[%d]: name is required", i)
		}
	}
	return nil
}

// Evaluate rounds every buffer of the plan.
func (p *Plan) Evaluate() (*PlanResult, error) {
	switch p.Type {
	case "uint8":
		return evalPlan[uint8](p)
	case "uint16":
		return evalPlan[uint16](p)
	case "uint32":
		return evalPlan[uint32](p)
	case "uint64":
		return evalPlan[uint64](p)
	case "uint":
		return evalPlan[uint](p)
	case "uintptr":
		return evalPlan[uintptr](p)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownType, p.Type)
}

func fits[T round.UnsignedInts](v uint64) bool {
	return v <= uint64(round.MaxValue[T]())
}

func evalPlan[T round.UnsignedInts](p *Plan) (*PlanResult, error) {
	for i, b := range p.Buffers {
		if !fits[T](b.Size) {
			return nil, fmt.Errorf("buffers[%d] %s: size %d does not fit in %s", i, b.Name, b.Size, p.Type)
		}
	}

	if p.Lanes != nil {
		tag, err := ResolveTag(*p.Lanes)
		if err != nil {
			return nil, fmt.Errorf("lanes: %w", err)
		}
		m, ok := round.LanesMultOf[T](tag)
		if !ok {
			return nil, fmt.Errorf("lanes: %s vector of %s has %d lanes", tag.Name(), p.Lanes.Elem, tag.MaxLanes())
		}
		return planRows[T](p, PathPow2, m), nil
	}

	if !fits[T](p.Multiplier) {
		return nil, fmt.Errorf("multiplier %d does not fit in %s", p.Multiplier, p.Type)
	}
	if m, ok := round.New(T(p.Multiplier)); ok {
		return planRows[T](p, PathPow2, m), nil
	}
	return planRows[T](p, PathGeneric, round.NewNonZeroUnchecked(T(p.Multiplier))), nil
}

func planRows[T round.UnsignedInts, M round.Multiplier[T]](p *Plan, path Path, m M) *PlanResult {
	log.WithFields(log.Fields{"type": p.Type, "path": path, "multiplier": m.Get()}).Debug("evaluating plan")

	res := &PlanResult{
		Type:       p.Type,
		Multiplier: fmt.Sprint(m.Get()),
		Path:       path,
	}
	for _, b := range p.Buffers {
		size := T(b.Size)
		row := BufferRow{
			Name: b.Name,
			Size: fmt.Sprint(size),
			Down: fmt.Sprint(round.Down(size, m)),
			Up:   overflowCell,
		}
		if up, ok := round.Up(size, m); ok {
			row.Up = fmt.Sprint(up)
		}
		res.Buffers = append(res.Buffers, row)
	}
	return res
}

// NewPlanCommand creates the plan command.
func NewPlanCommand(rootOpts *RootOptions) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Align a list of buffer sizes described in a YAML file",
		Long: `Align a list of buffer sizes described in a YAML file.

Example plan:
  type: uint32
  lanes: {tag: "256", elem: float32}
  buffers:
    - {name: weights, size: 1000}
    - {name: bias, size: 10}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := LoadPlan(configPath)
			if err != nil {
				return err
			}
			res, err := plan.Evaluate()
			if err != nil {
				return err
			}
			return writePlan(cmd.OutOrStdout(), rootOpts.Format, res)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the plan YAML file")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
