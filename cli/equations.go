// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rowreduce/config"
	"github.com/katalvlaran/rowreduce/equation"
)

// EquationsOptions holds the "equations" inputs.
type EquationsOptions struct {
	*Context

	File  string
	Lines []string

	parsed *equation.System
}

// NewEquationsCommand builds "rowreduce equations".
func NewEquationsCommand(cxt *Context) *cobra.Command {
	o := &EquationsOptions{Context: cxt}
	cmd := &cobra.Command{
		Use:     "equations [EQUATION...]",
		Aliases: []string{"eq"},
		Short:   "Parse linear equations and solve them",
		Long: `Parse one linear equation per argument (or per line of --file, or of stdin
when no argument is given), order the variables lexicographically, and solve.`,
		Example: `
  rowreduce equations "3x + 2y = 5" "y - z = 3" "x + z = 2"
  rowreduce equations -f system.txt -o latex
  printf 'x + y = 3\nx - y = 1\n' | rowreduce equations -m ref
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(args); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}

			return o.Run()
		},
	}
	cmd.Flags().StringVarP(&o.File, "file", "f", "", `File with one equation per line; "-" reads stdin`)

	return cmd
}

// Complete gathers the equation lines.
func (o *EquationsOptions) Complete(args []string) error {
	if len(args) > 0 {
		if o.File != "" {
			return ErrConflictingInput
		}
		o.Lines = args

		return nil
	}

	var (
		r    io.Reader = o.In
		name           = "stdin"
	)
	if o.File != "" && o.File != "-" {
		f, err := os.Open(o.File)
		if err != nil {
			return fmt.Errorf("cli: %w", err)
		}
		defer f.Close()
		r, name = f, o.File
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("cli: read %s: %w", name, err)
	}
	o.Lines = strings.Split(string(data), "\n")

	return nil
}

// Validate parses the lines.
func (o *EquationsOptions) Validate() error {
	sys, err := equation.Parse(o.Lines)
	if err != nil {
		return fmt.Errorf("cli: %w", err)
	}
	o.parsed = sys

	return nil
}

// Run prints the parsed form (text output only) and solves.
func (o *EquationsOptions) Run() error {
	o.Log.WithField("variables", strings.Join(o.parsed.Variables, ",")).Debug("equations parsed")
	if o.Config.Output == config.OutputText {
		var sb strings.Builder
		sb.WriteString("Variables found: " + strings.Join(o.parsed.Variables, ", ") + "\n\n")
		sb.WriteString("Standard form:\n")
		for _, line := range o.parsed.StandardForm() {
			sb.WriteString("  " + line + "\n")
		}
		sb.WriteString("\n")
		if _, err := io.WriteString(o.Out, sb.String()); err != nil {
			return fmt.Errorf("cli: write standard form: %w", err)
		}
	}
	_, err := o.solve(system{A: o.parsed.A, B: o.parsed.B, Variables: o.parsed.Variables})

	return err
}
