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
	"github.com/spf13/cobra"
)

// RoundOptions holds flags for the down and up commands.
type RoundOptions struct {
	*RootOptions
	Type string
	Path string
}

// NewDownCommand creates the down command.
func NewDownCommand(rootOpts *RootOptions) *cobra.Command {
	return newRoundCommand(rootOpts, OpDown, "Round a value down to a multiple",
		`Round a value down to a multiple.

Example:
  roundmult down 109 10                   # 100
  roundmult down 109 32 --type u8         # 96, power-of-two path`)
}

// NewUpCommand creates the up command.
func NewUpCommand(rootOpts *RootOptions) *cobra.Command {
	return newRoundCommand(rootOpts, OpUp, "Round a value up to a multiple",
		`Round a value up to a multiple.

Fails with an overflow error when the result does not fit the type.

Example:
  roundmult up 109 10                     # 110
  roundmult up 250 16 --type u8           # error: overflow`)
}

func newRoundCommand(rootOpts *RootOptions, op Op, short, long string) *cobra.Command {
	opts := &RoundOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   string(op) + " <value> <multiplier>",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := Evaluate(Request{
				Type:       opts.Type,
				Op:         op,
				Value:      args[0],
				Multiplier: args[1],
				Path:       Path(opts.Path),
			})
			if err != nil {
				return err
			}
			return writeResults(cmd.OutOrStdout(), opts.Format, []*Result{res})
		},
	}

	cmd.Flags().StringVarP(&opts.Type, "type", "t", "uint64", "subject integer type (uint8..uint64, int8..int64, uint, int, uintptr)")
	cmd.Flags().StringVar(&opts.Path, "path", string(PathAuto), "multiplier path (auto|generic|pow2)")

	return cmd
}
