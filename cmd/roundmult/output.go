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
	"io"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	return table
}

// writeResults prints down/up results. The text format is just the rounded
// value, one per line, so it can be used from scripts.
func writeResults(w io.Writer, format string, results []*Result) error {
	switch format {
	case "yaml":
		if len(results) == 1 {
			return writeYAML(w, results[0])
		}
		return writeYAML(w, results)
	case "table":
		table := newTable(w, []string{"type", "op", "value", "multiplier", "path", "result"})
		for _, r := range results {
			table.Append([]string{r.Type, string(r.Op), r.Value, r.Multiplier, string(r.Path), r.Result})
		}
		table.Render()
		return nil
	default:
		for _, r := range results {
			if _, err := fmt.Fprintln(w, r.Result); err != nil {
				return err
			}
		}
		return nil
	}
}

// writePlan prints an evaluated plan.
func writePlan(w io.Writer, format string, res *PlanResult) error {
	switch format {
	case "yaml":
		return writeYAML(w, res)
	case "table":
		table := newTable(w, []string{"buffer", "size", "down", "up"})
		for _, r := range res.Buffers {
			table.Append([]string{r.Name, r.Size, r.Down, r.Up})
		}
		table.SetCaption(true, fmt.Sprintf("%s, multiplier %s (%s)", res.Type, res.Multiplier, res.Path))
		table.Render()
		return nil
	default:
		if _, err := fmt.Fprintf(w, "type=%s multiplier=%s path=%s\n", res.Type, res.Multiplier, res.Path); err != nil {
			return err
		}
		for _, r := range res.Buffers {
			if _, err := fmt.Fprintf(w, "%s size=%s down=%s up=%s\n", r.Name, r.Size, r.Down, r.Up); err != nil {
				return err
			}
		}
		return nil
	}
}
