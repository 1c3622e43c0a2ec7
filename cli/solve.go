// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var (
	// ErrNoSystem is returned when neither --file nor --a/--b were given.
	ErrNoSystem = errors.New("cli: no system given")
	// ErrConflictingInput is returned when --file is combined with --a/--b.
	ErrConflictingInput = errors.New("cli: --file cannot be combined with --a/--b")
)

// SystemFile is the on-disk form accepted by "solve --file", in YAML or JSON.
type SystemFile struct {
	A         [][]float64 `json:"a"`
	B         []float64   `json:"b"`
	Variables []string    `json:"variables,omitempty"`
}

// SolveOptions holds the "solve" flags and the system they describe.
type SolveOptions struct {
	*Context

	Matrix string
	RHS    string
	Vars   string
	File   string

	system system
}

// NewSolveCommand builds "rowreduce solve".
func NewSolveCommand(cxt *Context) *cobra.Command {
	o := &SolveOptions{Context: cxt}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve A·x = b given as a matrix and a right-hand side",
		Example: `
  rowreduce solve --a "2 1; 1 -1" --b "5 1"
  rowreduce solve --a "1 1 1; 0 2 5; 2 5 -1" --b "6,-4,27" --vars x,y,z -m rref
  rowreduce solve -f system.yaml -o json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}

			return o.Run()
		},
	}
	cmd.Flags().StringVar(&o.Matrix, "a", "", `Coefficient matrix, rows separated by ";" (e.g. "2 1; 1 -1")`)
	cmd.Flags().StringVar(&o.RHS, "b", "", `Right-hand side vector (e.g. "5 1")`)
	cmd.Flags().StringVar(&o.Vars, "vars", "", "Comma-separated variable names (default x1..xm)")
	cmd.Flags().StringVarP(&o.File, "file", "f", "", `YAML or JSON file with keys a, b and optional variables; "-" reads stdin`)

	return cmd
}

// Complete reads the system from --file or parses --a/--b/--vars.
func (o *SolveOptions) Complete() error {
	if o.File != "" {
		if o.Matrix != "" || o.RHS != "" {
			return ErrConflictingInput
		}
		data, err := o.readFile()
		if err != nil {
			return err
		}
		var f SystemFile
		if err = yaml.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("cli: decode %s: %w", o.File, err)
		}
		o.system = system{A: f.A, B: f.B, Variables: f.Variables}
	} else {
		a, err := ParseMatrix(o.Matrix)
		if err != nil {
			return fmt.Errorf("--a: %w", err)
		}
		b, err := ParseVector(o.RHS)
		if err != nil {
			return fmt.Errorf("--b: %w", err)
		}
		o.system = system{A: a, B: b}
	}
	if o.Vars != "" {
		o.system.Variables = splitFields(o.Vars)
	}

	return nil
}

// Validate rejects an empty system; shape checks are left to the engine.
func (o *SolveOptions) Validate() error {
	if len(o.system.A) == 0 && len(o.system.B) == 0 {
		return ErrNoSystem
	}

	return nil
}

// Run solves the system.
func (o *SolveOptions) Run() error {
	_, err := o.solve(o.system)

	return err
}

func (o *SolveOptions) readFile() ([]byte, error) {
	if o.File == "-" {
		data, err := io.ReadAll(o.In)
		if err != nil {
			return nil, fmt.Errorf("cli: read stdin: %w", err)
		}

		return data, nil
	}
	data, err := os.ReadFile(o.File)
	if err != nil {
		return nil, fmt.Errorf("cli: %w", err)
	}

	return data, nil
}

// ParseMatrix parses rows separated by ';' or newlines, entries separated by
// spaces or commas. An empty string yields nil.
func ParseMatrix(s string) ([][]float64, error) {
	var rows [][]float64
	for i, line := range strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' }) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := ParseVector(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ParseVector parses numbers separated by spaces or commas.
func ParseVector(s string) ([]float64, error) {
	fields := splitFields(s)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", f)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, nil
	}

	return out, nil
}

func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
}
