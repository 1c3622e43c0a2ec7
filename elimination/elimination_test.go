// SPDX-License-Identifier: MIT

// Package elimination_test exercises Solve end to end: the worked scenarios,
// agreement between REF and RREF, agreement with an independent solver, the
// exact trace emitted, and the validation failures that must emit nothing.
package elimination_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rowreduce/elimination"
	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/matrix/ops"
	"github.com/katalvlaran/rowreduce/trace"
)

const agreeTol = 1e-6

// ------------------------------------------------------------------------
// 1. Worked scenarios
// ------------------------------------------------------------------------

func TestSolve_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		a     [][]float64
		b     []float64
		class elimination.Classification
		want  []float64
		rank  int
		aug   int
		free  []string
	}{
		{
			name:  "A unique 2x2",
			a:     [][]float64{{2, 1}, {1, -1}},
			b:     []float64{5, 1},
			class: elimination.UniqueSolution,
			want:  []float64{2, 1},
			rank:  2,
			aug:   2,
		},
		{
			name:  "B parallel inconsistent",
			a:     [][]float64{{1, 1}, {2, 2}},
			b:     []float64{2, 5},
			class: elimination.NoSolution,
			rank:  1,
			aug:   2,
			free:  []string{"x2"},
		},
		{
			name:  "C parallel consistent",
			a:     [][]float64{{1, 1}, {2, 2}},
			b:     []float64{2, 4},
			class: elimination.InfiniteSolutions,
			rank:  1,
			aug:   1,
			free:  []string{"x2"},
		},
		{
			name:  "D dependent 3x3",
			a:     [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
			b:     []float64{6, 15, 24},
			class: elimination.InfiniteSolutions,
			rank:  2,
			aug:   2,
			free:  []string{"x3"},
		},
	}

	for _, tc := range tests {
		for _, mode := range []elimination.Mode{elimination.REF, elimination.RREF} {
			t.Run(tc.name+"/"+mode.String(), func(t *testing.T) {
				res, err := elimination.Solve(tc.a, tc.b, mode, nil)
				require.NoError(t, err)
				assert.Equal(t, tc.class, res.Classification)
				assert.Equal(t, tc.rank, res.Rank)
				assert.Equal(t, tc.aug, res.AugmentedRank)
				assert.Equal(t, mode, res.Mode)
				if tc.want == nil {
					assert.Nil(t, res.Solution)
				} else {
					require.Len(t, res.Solution, len(tc.want))
					for j := range tc.want {
						assert.InDelta(t, tc.want[j], res.Solution[j], agreeTol)
					}
				}
				if tc.class != elimination.UniqueSolution {
					assert.Equal(t, tc.free, res.FreeVariables())
				} else {
					assert.Empty(t, res.FreeVariables())
				}
			})
		}
	}
}

func TestSolve_TerminalForm(t *testing.T) {
	a := [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}
	b := []float64{1, 2, 3}

	ref, err := elimination.Solve(a, b, elimination.REF, nil)
	require.NoError(t, err)
	refDense, err := matrix.NewDenseFromRows(ref.Final)
	require.NoError(t, err)
	assert.True(t, matrix.IsRowEchelon(refDense, 3, matrix.DefaultEpsilon))

	rref, err := elimination.Solve(a, b, elimination.RREF, nil)
	require.NoError(t, err)
	rrefDense, err := matrix.NewDenseFromRows(rref.Final)
	require.NoError(t, err)
	assert.True(t, matrix.IsReducedRowEchelon(rrefDense, 3, 1e-9))
}

// ------------------------------------------------------------------------
// 2. Trace shape
// ------------------------------------------------------------------------

func TestSolve_ScenarioA_TraceREF(t *testing.T) {
	rec := trace.NewRecorder()
	res, err := elimination.Solve([][]float64{{2, 1}, {1, -1}}, []float64{5, 1}, elimination.REF, rec)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Steps)

	snaps := rec.Snapshots()
	require.Len(t, snaps, 5)
	assert.Equal(t, "Initial augmented matrix", snaps[0].Label)
	assert.Equal(t, trace.SnapshotInitial, snaps[0].Kind)
	assert.Equal(t, "Step 1: Make the pivot in x1 equal to 1 by multiplying R1 by 0.5 (1/2)", snaps[1].Label)
	assert.Equal(t, "Step 2: Eliminate x1 from R2: R2 = R2 - 1·R1", snaps[2].Label)
	assert.Equal(t, "Step 3: Make the pivot in x2 equal to 1 by multiplying R2 by -0.666667 (1/-1.5)", snaps[3].Label)
	assert.Equal(t, "Final matrix (REF)", snaps[4].Label)
	assert.Equal(t, trace.SnapshotFinal, snaps[4].Kind)
	for i, s := range snaps {
		assert.Equal(t, i, s.Seq)
	}
	assert.Equal(t, [][]float64{{1, 0.5, 2.5}, {0, 1, 1}}, snaps[4].Rows())

	notes := rec.Notes()
	kinds := make([]trace.NoteKind, len(notes))
	for i, n := range notes {
		kinds[i] = n.Kind
	}
	assert.Equal(t, []trace.NoteKind{
		trace.NoteEquation,
		trace.NoteClassification,
		trace.NoteHeading,
		trace.NoteSubstitution,
		trace.NoteSubstitution,
		trace.NoteSolution,
		trace.NoteSolution,
	}, kinds)
	assert.Equal(t, "The system has a UNIQUE solution:", notes[1].Text)
	assert.Equal(t, "Back substitution:", notes[2].Text)
	assert.Equal(t, "x2 = 1", notes[3].Text)
	assert.Equal(t, "x1 = 2.5 - 0.5 * x2 = 2.5 - 0.5 * 1 = 2", notes[4].Text)
	assert.Equal(t, "x1 = 2", notes[5].Text)
	assert.Equal(t, "x2 = 1", notes[6].Text)

	// The equation note precedes every snapshot.
	events := rec.Events()
	require.NotNil(t, events[0].Note)
	require.NotNil(t, events[1].Snapshot)
	assert.Len(t, res.Substitutions, 2)
}

func TestSolve_ScenarioA_TraceRREF(t *testing.T) {
	rec := trace.NewRecorder()
	res, err := elimination.Solve([][]float64{{2, 1}, {1, -1}}, []float64{5, 1}, elimination.RREF, rec)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Steps)
	assert.Equal(t, 2, rec.CountSteps(trace.KindNormalize))
	assert.Equal(t, 2, rec.CountSteps(trace.KindEliminate))
	assert.Equal(t, 0, rec.CountSteps(trace.KindSwap))
	assert.Empty(t, rec.Substitutions())
	assert.Nil(t, res.Substitutions)
	assert.Equal(t, [][]float64{{1, 0, 2}, {0, 1, 1}}, res.Final)
	assert.Equal(t, []elimination.PivotPosition{{Row: 0, Column: 0}, {Row: 1, Column: 1}}, res.Pivots)

	snaps := rec.Snapshots()
	assert.Equal(t, "Final matrix (RREF)", snaps[len(snaps)-1].Label)
}

func TestSolve_SwapWhenLeadingZero(t *testing.T) {
	rec := trace.NewRecorder()
	res, err := elimination.Solve([][]float64{{0, 1}, {1, 0}}, []float64{2, 3}, elimination.REF, rec,
		elimination.WithVariableNames("a", "b"))
	require.NoError(t, err)

	require.Equal(t, 1, rec.CountSteps(trace.KindSwap))
	snaps := rec.Snapshots()
	assert.Equal(t, "Step 1: Swap R1 and R2 (to get a pivot in a)", snaps[1].Label)
	assert.Equal(t, trace.RowSwap{RowA: 0, RowB: 1, TargetColumn: 0}, snaps[1].Step)
	assert.Equal(t, []float64{3, 2}, res.Solution)

	v, ok := res.Value("b")
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)
	_, ok = res.Value("c")
	assert.False(t, ok)
}

func TestSolve_NoSwapsWithNonzeroNaturalPivots(t *testing.T) {
	a := [][]float64{{4, -2, 1}, {-2, 4, -2}, {1, -2, 4}}
	b := []float64{11, -16, 17}
	for _, mode := range []elimination.Mode{elimination.REF, elimination.RREF} {
		rec := trace.NewRecorder()
		_, err := elimination.Solve(a, b, mode, rec)
		require.NoError(t, err)
		assert.Zero(t, rec.CountSteps(trace.KindSwap), mode.String())
	}
}

func TestSolve_IdempotentOnReducedMatrix(t *testing.T) {
	systems := []struct {
		a [][]float64
		b []float64
	}{
		{a: [][]float64{{1, 0}, {0, 1}}, b: []float64{4, 5}},
		{a: [][]float64{{1, 2, 0}, {0, 0, 1}}, b: []float64{3, 4}},
	}
	for _, s := range systems {
		first, err := elimination.Solve(s.a, s.b, elimination.RREF, nil)
		require.NoError(t, err)

		// Feed the reduced matrix back in: nothing is left to do.
		m := len(s.a[0])
		a2 := make([][]float64, len(first.Final))
		b2 := make([]float64, len(first.Final))
		for i, row := range first.Final {
			a2[i] = row[:m]
			b2[i] = row[m]
		}
		rec := trace.NewRecorder()
		second, err := elimination.Solve(a2, b2, elimination.RREF, rec)
		require.NoError(t, err)
		assert.Zero(t, second.Steps)
		assert.Empty(t, rec.Steps())
		assert.Len(t, rec.Snapshots(), 2) // initial and final only
		assert.Equal(t, first.Final, second.Final)
	}
}

// Every step recorded in a snapshot, replayed on the previous snapshot,
// reproduces the next one.
func TestSolve_StepsReplay(t *testing.T) {
	rec := trace.NewRecorder()
	_, err := elimination.Solve(
		[][]float64{{0, 2, 1}, {3, 1, -1}, {1, 1, 1}},
		[]float64{3, 2, 6},
		elimination.RREF, rec)
	require.NoError(t, err)

	snaps := rec.Snapshots()
	for k := 1; k < len(snaps)-1; k++ {
		prev, err := snaps[k-1].Dense()
		require.NoError(t, err)
		require.NoError(t, snaps[k].Step.Apply(prev))
		want := snaps[k].Rows()
		got := prev.ToRows()
		for i := range want {
			for j := range want[i] {
				assert.InDelta(t, want[i][j], got[i][j], 1e-12, "step %d (%d,%d)", k, i, j)
			}
		}
	}
}

// ------------------------------------------------------------------------
// 3. Numerical agreement
// ------------------------------------------------------------------------

func randomSystem(rng *rand.Rand, n int) ([][]float64, []float64) {
	a := make([][]float64, n)
	b := make([]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		rowSum := 0.0
		for j := range a[i] {
			a[i][j] = math.Round((rng.Float64()*20-10)*100) / 100
			rowSum += math.Abs(a[i][j])
		}
		a[i][i] = rowSum + 1 // strictly diagonally dominant: nonsingular
		b[i] = math.Round((rng.Float64()*40-20)*100) / 100
	}

	return a, b
}

func TestSolve_AgreesWithGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 25; trial++ {
		n := 2 + trial%5
		a, b := randomSystem(rng, n)

		ref, err := elimination.Solve(a, b, elimination.REF, nil)
		require.NoError(t, err)
		rref, err := elimination.Solve(a, b, elimination.RREF, nil)
		require.NoError(t, err)
		require.Equal(t, elimination.UniqueSolution, ref.Classification)
		require.Equal(t, elimination.UniqueSolution, rref.Classification)

		flat := make([]float64, 0, n*n)
		for _, row := range a {
			flat = append(flat, row...)
		}
		var x mat.VecDense
		require.NoError(t, x.SolveVec(mat.NewDense(n, n, flat), mat.NewVecDense(n, append([]float64(nil), b...))))

		for j := 0; j < n; j++ {
			assert.InDelta(t, x.AtVec(j), ref.Solution[j], agreeTol, "trial %d REF x%d", trial, j+1)
			assert.InDelta(t, x.AtVec(j), rref.Solution[j], agreeTol, "trial %d RREF x%d", trial, j+1)
			assert.InDelta(t, ref.Solution[j], rref.Solution[j], agreeTol)
		}
	}
}

func TestSolve_AgreesWithInverse(t *testing.T) {
	a := [][]float64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}}
	b := []float64{1, 0, 1}

	res, err := elimination.Solve(a, b, elimination.REF, nil)
	require.NoError(t, err)

	var inv mat.Dense
	require.NoError(t, inv.Inverse(mat.NewDense(3, 3, []float64{2, -1, 0, -1, 2, -1, 0, -1, 2})))
	var want mat.VecDense
	want.MulVec(&inv, mat.NewVecDense(3, append([]float64(nil), b...)))
	for j := range b {
		assert.InDelta(t, want.AtVec(j), res.Solution[j], agreeTol)
	}

	m, err := matrix.NewDenseFromRows(a)
	require.NoError(t, err)
	r, err := ops.Residual(m, res.Solution, b)
	require.NoError(t, err)
	assert.Less(t, r, 1e-9)
}

func TestSolve_InconsistentRHSFlipsClassification(t *testing.T) {
	tests := []struct {
		name     string
		a        [][]float64
		good     []float64
		bad      []float64
		goodWant elimination.Classification
	}{
		{
			name:     "overdetermined unique",
			a:        [][]float64{{1, 0}, {0, 1}, {1, 1}},
			good:     []float64{1, 2, 3},
			bad:      []float64{1, 2, 4},
			goodWant: elimination.UniqueSolution,
		},
		{
			name:     "dependent rows",
			a:        [][]float64{{1, 2}, {2, 4}},
			good:     []float64{3, 6},
			bad:      []float64{3, 7},
			goodWant: elimination.InfiniteSolutions,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			good, err := elimination.Solve(tc.a, tc.good, elimination.REF, nil)
			require.NoError(t, err)
			bad, err := elimination.Solve(tc.a, tc.bad, elimination.REF, nil)
			require.NoError(t, err)

			assert.Equal(t, tc.goodWant, good.Classification)
			assert.Equal(t, elimination.NoSolution, bad.Classification)
			assert.Equal(t, good.Rank, bad.Rank)
			assert.Greater(t, bad.AugmentedRank, bad.Rank)
		})
	}
}

func TestSolve_NoNegativeZeroOrNoise(t *testing.T) {
	a := [][]float64{{0.1, 0.2, 0.3}, {0.4, 0.5, 0.6}, {0.7, 0.8, 0.9}}
	b := []float64{0.6, 1.5, 2.4}
	for _, mode := range []elimination.Mode{elimination.REF, elimination.RREF} {
		rec := trace.NewRecorder()
		_, err := elimination.Solve(a, b, mode, rec)
		require.NoError(t, err)
		for _, s := range rec.Snapshots() {
			for _, row := range s.Rows() {
				for _, v := range row {
					if v == 0 {
						assert.False(t, math.Signbit(v), "negative zero in %q", s.Label)
					} else {
						assert.GreaterOrEqual(t, math.Abs(v), matrix.DefaultEpsilon, "noise in %q", s.Label)
					}
				}
			}
		}
	}
}

func TestSolve_SubEpsilonInputIsZero(t *testing.T) {
	a := [][]float64{{1e-13, 1}, {1, 1}}
	b := []float64{1, 2}
	for _, mode := range []elimination.Mode{elimination.REF, elimination.RREF} {
		rec := trace.NewRecorder()
		res, err := elimination.Solve(a, b, mode, rec)
		require.NoError(t, err)

		initial := rec.Snapshots()[0]
		assert.Equal(t, 0.0, initial.At(0, 0), mode.String())
		assert.Equal(t, trace.KindSwap, rec.Steps()[0].Kind(), mode.String())
		assert.Equal(t, []float64{1, 1}, res.Solution, mode.String())
	}

	res, err := elimination.Solve(a, b, elimination.RREF, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0, 1}, {0, 1, 1}}, res.Final)
}

// ------------------------------------------------------------------------
// 4. Validation
// ------------------------------------------------------------------------

func TestSolve_ValidationEmitsNothing(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name string
		a    [][]float64
		b    []float64
		mode elimination.Mode
		opts []elimination.Option
		want error
	}{
		{name: "no rows", a: nil, b: nil, want: elimination.ErrEmptySystem},
		{name: "no columns", a: [][]float64{{}}, b: []float64{1}, want: elimination.ErrEmptySystem},
		{name: "ragged", a: [][]float64{{1, 2}, {3}}, b: []float64{1, 2}, want: elimination.ErrRaggedRows},
		{name: "short b", a: [][]float64{{1, 2}, {3, 4}}, b: []float64{1}, want: elimination.ErrRHSLength},
		{name: "NaN in A", a: [][]float64{{1, nan}}, b: []float64{1}, want: elimination.ErrNonFinite},
		{name: "Inf in b", a: [][]float64{{1}}, b: []float64{math.Inf(1)}, want: elimination.ErrNonFinite},
		{
			name: "name count", a: [][]float64{{1, 2}}, b: []float64{1},
			opts: []elimination.Option{elimination.WithVariableNames("x")},
			want: elimination.ErrVariableCount,
		},
		{
			name: "blank name", a: [][]float64{{1, 2}}, b: []float64{1},
			opts: []elimination.Option{elimination.WithVariableNames("x", " ")},
			want: elimination.ErrEmptyVariable,
		},
		{
			name: "duplicate name", a: [][]float64{{1, 2}}, b: []float64{1},
			opts: []elimination.Option{elimination.WithVariableNames("x", "x")},
			want: elimination.ErrDuplicateVariable,
		},
		{name: "unknown mode", a: [][]float64{{1}}, b: []float64{1}, mode: elimination.Mode(7), want: elimination.ErrUnknownMode},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := trace.NewRecorder()
			res, err := elimination.Solve(tc.a, tc.b, tc.mode, rec, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, res)
			assert.Empty(t, rec.Events())
		})
	}
}

func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { elimination.WithEpsilon(-1) })
	assert.Panics(t, func() { elimination.WithEpsilon(math.NaN()) })
	assert.Panics(t, func() { elimination.WithEpsilon(math.Inf(1)) })
	assert.NotPanics(t, func() { elimination.WithEpsilon(0) })
}

func TestWithEpsilon_CoarseToleranceTreatsSmallAsZero(t *testing.T) {
	a := [][]float64{{1, 1}, {1, 1 + 1e-8}}
	b := []float64{2, 2}

	fine, err := elimination.Solve(a, b, elimination.RREF, nil)
	require.NoError(t, err)
	assert.Equal(t, elimination.UniqueSolution, fine.Classification)

	coarse, err := elimination.Solve(a, b, elimination.RREF, nil, elimination.WithEpsilon(1e-6))
	require.NoError(t, err)
	assert.Equal(t, elimination.InfiniteSolutions, coarse.Classification)
}

// ------------------------------------------------------------------------
// 5. Mode and Classification text forms
// ------------------------------------------------------------------------

func TestParseMode(t *testing.T) {
	for in, want := range map[string]elimination.Mode{
		"ref": elimination.REF, "REF": elimination.REF, " echelon ": elimination.REF,
		"rref": elimination.RREF, "Reduced": elimination.RREF,
	} {
		got, err := elimination.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := elimination.ParseMode("lu")
	assert.ErrorIs(t, err, elimination.ErrUnknownMode)
}

func TestMode_TextRoundTrip(t *testing.T) {
	var m elimination.Mode
	require.NoError(t, m.UnmarshalText([]byte("rref")))
	assert.Equal(t, elimination.RREF, m)

	text, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "RREF", string(text))

	_, err = elimination.Mode(9).MarshalText()
	assert.ErrorIs(t, err, elimination.ErrUnknownMode)
}

func TestClassification_Text(t *testing.T) {
	assert.Equal(t, "NO_SOLUTION", elimination.NoSolution.String())
	assert.Equal(t, "INFINITE_SOLUTIONS", elimination.InfiniteSolutions.String())
	assert.Equal(t, "UNIQUE_SOLUTION", elimination.UniqueSolution.String())
	assert.Equal(t, "The system has NO solution (inconsistent).", elimination.NoSolution.Sentence())
	assert.Equal(t, "The system has INFINITELY many solutions.", elimination.InfiniteSolutions.Sentence())
}
