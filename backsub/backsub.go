// SPDX-License-Identifier: MIT

package backsub

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/trace"
)

var (
	// ErrNilMatrix is returned for a nil input matrix.
	ErrNilMatrix = errors.New("backsub: nil matrix")

	// ErrNoCoefficients is returned when the augmented matrix has no coefficient column.
	ErrNoCoefficients = errors.New("backsub: augmented matrix needs at least two columns")

	// ErrVariableCount is returned when len(names) differs from the coefficient column count.
	ErrVariableCount = errors.New("backsub: variable count does not match coefficient columns")

	// ErrNotEchelon is returned by WithEchelonCheck when the input is not in row-echelon form.
	ErrNotEchelon = errors.New("backsub: matrix is not in row-echelon form")
)

// Heading is the note emitted before the first substitution step.
const Heading = "Back substitution:"

const panicEpsilonInvalid = "backsub: WithEpsilon: eps must be finite, non-negative"

type options struct {
	eps          float64
	checkEchelon bool
}

// Option configures Solve.
type Option func(*options)

// WithEpsilon sets the tolerance used to find pivots and skip zero coefficients.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithEchelonCheck verifies the row-echelon precondition before solving.
func WithEchelonCheck() Option {
	return func(o *options) { o.checkEchelon = true }
}

// Solution is the result of back substitution.
type Solution struct {
	Values []float64            // index-aligned with the variable names
	Steps  []trace.Substitution // bottom-up order, as emitted
}

// Solve runs back substitution on ref (n×(m+1), REF) and emits a heading note
// followed by one substitution note per pivot row to sink. A nil names slice
// selects "x1".."xm"; a nil sink discards events.
//
// For row i (last to first) with pivot column p:
//
//	x[p] = (rhs − Σ_{j>p} ref[i][j]·x[j]) / ref[i][p]
//
// Results with |v| < eps are stored as exactly 0.
func Solve(ref *matrix.Dense, names []string, sink trace.Sink, opts ...Option) (*Solution, error) {
	o := options{eps: matrix.DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if ref == nil {
		return nil, ErrNilMatrix
	}
	m := ref.Cols() - 1
	if m < 1 {
		return nil, ErrNoCoefficients
	}
	if names == nil {
		names = trace.VariableNames(m)
	}
	if len(names) != m {
		return nil, fmt.Errorf("got %d names for %d columns: %w", len(names), m, ErrVariableCount)
	}
	if o.checkEchelon && !matrix.IsRowEchelon(ref, m, o.eps) {
		return nil, ErrNotEchelon
	}
	sink = trace.OrDiscard(sink)

	x := make([]float64, m)
	sol := &Solution{Values: x}
	sink.OnNote(trace.NewHeadingNote(Heading))

	for i := ref.Rows() - 1; i >= 0; i-- {
		pivot := matrix.LeadingColumn(ref, i, m, o.eps)
		if pivot < 0 {
			continue // zero coefficient row
		}
		row, err := ref.Row(i)
		if err != nil {
			return nil, err
		}

		var (
			terms []trace.Term
			sum   float64
		)
		for j := pivot + 1; j < m; j++ {
			if math.Abs(row[j]) <= o.eps {
				continue
			}
			terms = append(terms, trace.Term{Column: j, Variable: names[j], Coefficient: row[j], Value: x[j]})
			sum += row[j] * x[j]
		}

		v := (row[m] - sum) / row[pivot]
		if math.Abs(v) < o.eps {
			v = 0
		}
		x[pivot] = v

		step := trace.Substitution{
			Row:         i,
			PivotColumn: pivot,
			Variable:    names[pivot],
			RHS:         row[m],
			Terms:       terms,
			Divisor:     row[pivot],
			Value:       v,
		}
		sol.Steps = append(sol.Steps, step)
		sink.OnNote(trace.NewSubstitutionNote(step))
	}

	return sol, nil
}
