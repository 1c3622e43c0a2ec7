// SPDX-License-Identifier: MIT

package elimination

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rowreduce/backsub"
	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/trace"
)

// LabelInitial labels the snapshot taken right after augmentation.
const LabelInitial = "Initial augmented matrix"

// FinalLabel labels the terminal snapshot for mode.
func FinalLabel(mode Mode) string {
	return fmt.Sprintf("Final matrix (%s)", mode)
}

// Solve reduces [A|b] to REF or RREF, classifies the system and, when the
// solution is unique, computes it. Every event goes to sink (nil discards).
//
// Implementation:
//   - Stage 1: Validate inputs; on failure return the error and emit nothing.
//   - Stage 2: Augment, emit the equation note and the initial snapshot.
//   - Stage 3: Forward sweep over columns (swap → normalize → eliminate).
//   - Stage 4: Final snapshot, ranks, classification note.
//   - Stage 5: Unique solution via direct read (RREF) or backsub (REF), then one
//     assignment note per variable.
//
// Errors:
//   - ErrUnknownMode, ErrEmptySystem, ErrRaggedRows, ErrRHSLength, ErrNonFinite,
//     ErrVariableCount, ErrEmptyVariable, ErrDuplicateVariable.
//
// Determinism:
//   - Fixed column-major sweep; ties in pivot search resolve to the topmost row.
func Solve(a [][]float64, b []float64, mode Mode, sink trace.Sink, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if mode != REF && mode != RREF {
		return nil, fmt.Errorf("elimination: Solve: %w", ErrUnknownMode)
	}
	if err := Validate(a, b, o.names); err != nil {
		return nil, fmt.Errorf("elimination: Solve: %w", err)
	}

	aug, err := matrix.Augment(a, b)
	if err != nil {
		return nil, fmt.Errorf("elimination: Solve: %w", err)
	}
	names := o.names
	if names == nil {
		names = trace.VariableNames(len(a[0]))
	}

	e := &engine{
		aug:   aug,
		mode:  mode,
		names: names,
		eps:   o.eps,
		sink:  trace.OrDiscard(sink),
		n:     aug.Rows(),
		m:     aug.Cols() - 1,
	}
	e.sink.OnNote(trace.NewEquationNote(a, b, names))

	return e.run()
}

// engine owns one augmented matrix for the duration of a single solve.
type engine struct {
	aug   *matrix.Dense
	mode  Mode
	names []string
	eps   float64
	sink  trace.Sink
	n, m  int

	seq    int // snapshots emitted
	steps  int // structural steps applied
	pivots []PivotPosition
}

func (e *engine) run() (*Result, error) {
	if err := e.flush(); err != nil {
		return nil, err
	}
	e.snapshot(trace.SnapshotInitial, LabelInitial, nil)

	row := 0
	for col := 0; col < e.m; col++ {
		if row >= e.n {
			break // every row holds a pivot; remaining columns are free
		}
		pivotRow := e.findPivot(row, col)
		if pivotRow < 0 {
			continue // no pivot: free variable, row stays put
		}
		if pivotRow != row {
			if err := e.apply(trace.RowSwap{RowA: row, RowB: pivotRow, TargetColumn: col}); err != nil {
				return nil, err
			}
		}
		if p := e.at(row, col); math.Abs(p-1) > e.eps {
			if err := e.apply(trace.PivotNormalize{Row: row, Col: col, Divisor: p}); err != nil {
				return nil, err
			}
		}

		first := row + 1
		if e.mode == RREF {
			first = 0
		}
		for r := first; r < e.n; r++ {
			if r == row {
				continue
			}
			factor := e.at(r, col)
			if math.Abs(factor) <= e.eps {
				continue
			}
			if err := e.apply(trace.RowEliminate{SourceRow: row, TargetRow: r, Col: col, Factor: factor}); err != nil {
				return nil, err
			}
		}

		e.pivots = append(e.pivots, PivotPosition{Row: row, Column: col})
		row++
	}

	e.snapshot(trace.SnapshotFinal, FinalLabel(e.mode), nil)

	return e.finish()
}

// flush zeroes every entry below eps in magnitude, so input noise never
// reaches a pivot decision, an elimination or Result.Final.
func (e *engine) flush() error {
	for i := 0; i < e.n; i++ {
		if err := e.aug.FlushRow(i, e.eps); err != nil {
			return fmt.Errorf("elimination: flush: %w", err)
		}
	}

	return nil
}

// findPivot returns the first row r >= from with |aug[r][col]| > eps, or -1.
func (e *engine) findPivot(from, col int) int {
	for r := from; r < e.n; r++ {
		if math.Abs(e.at(r, col)) > e.eps {
			return r
		}
	}

	return -1
}

// apply performs step, flushes near-zero noise in the touched rows and emits
// the step snapshot.
func (e *engine) apply(step trace.Step) error {
	if err := step.Apply(e.aug); err != nil {
		return fmt.Errorf("elimination: %s: %w", step.Kind(), err)
	}
	touched := -1
	switch s := step.(type) {
	case trace.PivotNormalize:
		touched = s.Row
	case trace.RowEliminate:
		touched = s.TargetRow
	}
	if touched >= 0 {
		if err := e.aug.FlushRow(touched, e.eps); err != nil {
			return fmt.Errorf("elimination: %s: %w", step.Kind(), err)
		}
	}

	e.steps++
	label := fmt.Sprintf("Step %d: %s", e.steps, step.Describe(e.names[step.Column()]))
	e.snapshot(trace.SnapshotStep, label, step)

	return nil
}

func (e *engine) snapshot(kind trace.SnapshotKind, label string, step trace.Step) {
	number := 0
	if step != nil {
		number = e.steps
	}
	e.sink.OnSnapshot(trace.NewSnapshot(e.seq, kind, label, number, step, e.aug))
	e.seq++
}

// at reads an in-range entry; indices are guaranteed by the loops above.
func (e *engine) at(i, j int) float64 {
	v, _ := e.aug.At(i, j)

	return v
}

// finish classifies the terminal matrix and extracts a unique solution.
func (e *engine) finish() (*Result, error) {
	res := &Result{
		Mode:          e.mode,
		Variables:     append([]string(nil), e.names...),
		Rank:          matrix.RowRank(e.aug, e.m, e.eps),
		AugmentedRank: matrix.RowRank(e.aug, e.m+1, e.eps),
		Pivots:        e.pivots,
		Final:         e.aug.ToRows(),
		Steps:         e.steps,
	}
	res.Classification = classify(res.Rank, res.AugmentedRank, e.m)
	e.sink.OnNote(trace.NewClassificationNote(res.Classification.Sentence()))

	if res.Classification != UniqueSolution {
		return res, nil
	}

	if e.mode == RREF {
		res.Solution = e.readReduced()
	} else {
		sol, err := backsub.Solve(e.aug, e.names, e.sink, backsub.WithEpsilon(e.eps))
		if err != nil {
			return nil, fmt.Errorf("elimination: back substitution: %w", err)
		}
		res.Solution = sol.Values
		res.Substitutions = sol.Steps
	}

	for j, v := range res.Solution {
		e.sink.OnNote(trace.NewAssignmentNote(e.names[j], v))
	}

	return res, nil
}

// readReduced reads x off an RREF matrix: a row whose leading coefficient is
// 1 within eps assigns its right-hand side to that column.
func (e *engine) readReduced() []float64 {
	x := make([]float64, e.m)
	for i := 0; i < e.n; i++ {
		lead := matrix.LeadingColumn(e.aug, i, e.m, e.eps)
		if lead < 0 || math.Abs(e.at(i, lead)-1) >= e.eps {
			continue
		}
		v := e.at(i, e.m)
		if math.Abs(v) < e.eps {
			v = 0
		}
		x[lead] = v
	}

	return x
}
