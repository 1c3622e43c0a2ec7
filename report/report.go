// SPDX-License-Identifier: MIT

// Package report turns a solve Result plus its recorded trace into a plain
// data document and encodes it as JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/rowreduce/elimination"
	"github.com/katalvlaran/rowreduce/numfmt"
	"github.com/katalvlaran/rowreduce/trace"
)

// ErrUnknownFormat is returned for an output format other than json or yaml.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the encoding used by Encode.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Report is the serializable outcome of one solve.
type Report struct {
	Mode           elimination.Mode           `json:"mode"`
	Classification elimination.Classification `json:"classification"`
	Variables      []string                   `json:"variables"`
	Rank           int                        `json:"rank"`
	AugmentedRank  int                        `json:"augmentedRank"`
	Solution       []Assignment               `json:"solution,omitempty"`
	FreeVariables  []string                   `json:"freeVariables,omitempty"`
	Residual       *float64                   `json:"residual,omitempty"`
	Steps          []Step                     `json:"steps,omitempty"`
	Substitutions  []string                   `json:"substitutions,omitempty"`
	Final          [][]float64                `json:"final"`
}

// Assignment is one solved variable.
type Assignment struct {
	Variable string  `json:"variable"`
	Value    float64 `json:"value"`
}

// Step is one recorded snapshot.
type Step struct {
	Seq       int         `json:"seq"`
	Kind      string      `json:"kind"`
	Label     string      `json:"label"`
	Operation *Operation  `json:"operation,omitempty"`
	Matrix    [][]float64 `json:"matrix"`
}

// Operation describes the structural step behind a step snapshot.
// Rows and Column are 1-based, matching the "R<n>" labels.
type Operation struct {
	Kind   string   `json:"kind"`
	Rows   []int    `json:"rows"`
	Column int      `json:"column"`
	Factor *float64 `json:"factor,omitempty"`
}

// Build assembles a Report. rec may be nil, in which case Steps is empty;
// values are cleaned at digits decimals.
func Build(res *elimination.Result, rec *trace.Recorder, digits int) *Report {
	r := &Report{
		Mode:           res.Mode,
		Classification: res.Classification,
		Variables:      append([]string(nil), res.Variables...),
		Rank:           res.Rank,
		AugmentedRank:  res.AugmentedRank,
		FreeVariables:  res.FreeVariables(),
		Final:          cleanRows(res.Final, digits),
	}
	for j, v := range res.Solution {
		r.Solution = append(r.Solution, Assignment{Variable: res.Variables[j], Value: numfmt.Clean(v, digits)})
	}
	for _, s := range res.Substitutions {
		r.Substitutions = append(r.Substitutions, s.Format(digits))
	}
	if rec == nil {
		return r
	}
	for _, s := range rec.Snapshots() {
		r.Steps = append(r.Steps, Step{
			Seq:       s.Seq,
			Kind:      s.Kind.String(),
			Label:     s.Label,
			Operation: operation(s.Step, digits),
			Matrix:    cleanRows(s.Rows(), digits),
		})
	}

	return r
}

// WithResidual records ‖A·x − b‖∞ for a unique solution.
func (r *Report) WithResidual(v float64) *Report {
	r.Residual = &v

	return r
}

func operation(step trace.Step, digits int) *Operation {
	if step == nil {
		return nil
	}
	op := &Operation{Kind: step.Kind().String(), Column: step.Column() + 1}
	switch s := step.(type) {
	case trace.RowSwap:
		op.Rows = []int{s.RowA + 1, s.RowB + 1}
	case trace.PivotNormalize:
		op.Rows = []int{s.Row + 1}
		f := numfmt.Clean(s.Divisor, digits)
		op.Factor = &f
	case trace.RowEliminate:
		op.Rows = []int{s.SourceRow + 1, s.TargetRow + 1}
		f := numfmt.Clean(s.Factor, digits)
		op.Factor = &f
	}

	return op
}

func cleanRows(rows [][]float64, digits int) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = numfmt.Clean(v, digits)
		}
	}

	return out
}

// Encode writes r to w in format f.
func Encode(w io.Writer, r *Report, f Format) error {
	var (
		data []byte
		err  error
	)
	switch f {
	case JSON:
		data, err = json.MarshalIndent(r, "", "  ")
		data = append(data, '\n')
	case YAML:
		data, err = yaml.Marshal(r)
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("report: encode %s: %w", f, err)
	}
	_, err = w.Write(data)

	return err
}
