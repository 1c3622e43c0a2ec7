// SPDX-License-Identifier: MIT

package trace

import (
	"fmt"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/numfmt"
)

// StepKind enumerates the structural operations of the forward pass.
type StepKind int

const (
	// KindSwap exchanges two rows to bring a pivot into place.
	KindSwap StepKind = iota
	// KindNormalize divides the pivot row by its pivot value.
	KindNormalize
	// KindEliminate subtracts a multiple of the pivot row from another row.
	KindEliminate
)

// String returns a stable lower-case name for the kind.
func (k StepKind) String() string {
	switch k {
	case KindSwap:
		return "swap"
	case KindNormalize:
		return "normalize"
	case KindEliminate:
		return "eliminate"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// Step is one elementary row operation. Row and column indices are 0-based;
// descriptions use 1-based "R<n>" row references.
type Step interface {
	// Kind identifies the operation.
	Kind() StepKind
	// Column is the elimination column the step serves.
	Column() int
	// Apply performs the operation on m in place.
	Apply(m *matrix.Dense) error
	// Describe renders a sentence for the step; variable names Column().
	Describe(variable string) string
}

// RowSwap exchanges RowA and RowB so that a nonzero pivot lands in TargetColumn.
type RowSwap struct {
	RowA, RowB   int
	TargetColumn int
}

// Kind implements Step.
func (s RowSwap) Kind() StepKind { return KindSwap }

// Column implements Step.
func (s RowSwap) Column() int { return s.TargetColumn }

// Apply implements Step.
func (s RowSwap) Apply(m *matrix.Dense) error { return m.SwapRows(s.RowA, s.RowB) }

// Describe implements Step.
func (s RowSwap) Describe(variable string) string {
	return fmt.Sprintf("Swap R%d and R%d (to get a pivot in %s)", s.RowA+1, s.RowB+1, variable)
}

// PivotNormalize divides Row by Divisor, turning the pivot at (Row, Column) into 1.
type PivotNormalize struct {
	Row, Col int
	Divisor  float64
}

// Kind implements Step.
func (s PivotNormalize) Kind() StepKind { return KindNormalize }

// Column implements Step.
func (s PivotNormalize) Column() int { return s.Col }

// Apply implements Step.
func (s PivotNormalize) Apply(m *matrix.Dense) error { return m.DivRow(s.Row, s.Divisor) }

// Describe implements Step.
func (s PivotNormalize) Describe(variable string) string {
	return fmt.Sprintf("Make the pivot in %s equal to 1 by multiplying R%d by %s (1/%s)",
		variable, s.Row+1,
		numfmt.Format(1/s.Divisor, numfmt.SnapshotDigits),
		numfmt.Format(s.Divisor, numfmt.SnapshotDigits))
}

// RowEliminate performs R[TargetRow] -= Factor · R[SourceRow], clearing Column in TargetRow.
type RowEliminate struct {
	SourceRow, TargetRow int
	Col                  int
	Factor               float64
}

// Kind implements Step.
func (s RowEliminate) Kind() StepKind { return KindEliminate }

// Column implements Step.
func (s RowEliminate) Column() int { return s.Col }

// Apply implements Step.
func (s RowEliminate) Apply(m *matrix.Dense) error {
	return m.SubScaledRow(s.TargetRow, s.SourceRow, s.Factor)
}

// Describe implements Step.
func (s RowEliminate) Describe(variable string) string {
	return fmt.Sprintf("Eliminate %s from R%d: R%d = R%d - %s·R%d",
		variable, s.TargetRow+1, s.TargetRow+1, s.TargetRow+1,
		numfmt.Parenthesized(s.Factor, numfmt.DefaultDigits), s.SourceRow+1)
}
