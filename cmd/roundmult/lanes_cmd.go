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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-roundmult/round"
)

// LanesInfo describes the lane multiplier of a vector.
type LanesInfo struct {
	Target string `yaml:"target"`
	Width  int    `yaml:"width"`
	Tag    string `yaml:"tag"`
	Elem   string `yaml:"elem"`
	Lanes  uint64 `yaml:"lanes"`
}

// NewLanesCommand creates the lanes command.
func NewLanesCommand(rootOpts *RootOptions) *cobra.Command {
	spec := LaneSpec{}

	cmd := &cobra.Command{
		Use:   "lanes",
		Short: "Show the lane multiplier of a vector",
		Long: `Show the lane multiplier of a vector.

The scalable tag uses the SIMD width detected on this machine; set
ROUNDMULT_NO_SIMD=1 to force the 16-byte scalar width.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := Lanes(spec)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch rootOpts.Format {
			case "yaml":
				return writeYAML(w, info)
			case "table":
				table := newTable(w, []string{"target", "width", "tag", "elem", "lanes"})
				table.Append([]string{info.Target, fmt.Sprint(info.Width), info.Tag, info.Elem, fmt.Sprint(info.Lanes)})
				table.Render()
				return nil
			default:
				_, err := fmt.Fprintf(w, "target=%s width=%d tag=%s elem=%s lanes=%d\n",
					info.Target, info.Width, info.Tag, info.Elem, info.Lanes)
				return err
			}
		},
	}

	cmd.Flags().StringVar(&spec.Tag, "tag", "scalable", "vector tag (scalable|128|256|512)")
	cmd.Flags().StringVar(&spec.Elem, "elem", "float32", "element type")

	return cmd
}

// Lanes returns the lane multiplier of the vector a LaneSpec names.
func Lanes(spec LaneSpec) (*LanesInfo, error) {
	tag, err := ResolveTag(spec)
	if err != nil {
		return nil, err
	}
	m, ok := round.LanesMultOf[uint64](tag)
	if !ok {
		return nil, fmt.Errorf("%s vector of %s has %d lanes, not a supported lane count", tag.Name(), spec.Elem, tag.MaxLanes())
	}
	log.WithFields(log.Fields{"tag": tag.Name(), "width": tag.Width()}).Debug("resolved vector tag")

	return &LanesInfo{
		Target: round.CurrentName(),
		Width:  tag.Width(),
		Tag:    tag.Name(),
		Elem:   spec.Elem,
		Lanes:  m.Get(),
	}, nil
}
