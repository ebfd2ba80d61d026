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
	"slices"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "yaml" | "table"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "yaml", "table"}

// NewRootCommand creates the root command for the roundmult CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "roundmult",
		Short: "Round integers down or up to a multiple",
		Long: `Round integers down or up to a multiple of a divisor.

Power-of-two multipliers on unsigned types are rounded with a bit mask;
anything else goes through division and modulo.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			log.SetOutput(cmd.ErrOrStderr())
			if opts.Verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|yaml|table)")

	cmd.AddCommand(NewDownCommand(opts))
	cmd.AddCommand(NewUpCommand(opts))
	cmd.AddCommand(NewLanesCommand(opts))
	cmd.AddCommand(NewPlanCommand(opts))

	return cmd
}
