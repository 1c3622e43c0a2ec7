// SPDX-License-Identifier: MIT

package trace

import (
	"fmt"

	"github.com/katalvlaran/rowreduce/matrix"
)

// SnapshotKind tells where in the run a snapshot was taken.
type SnapshotKind int

const (
	// SnapshotInitial is the freshly augmented matrix.
	SnapshotInitial SnapshotKind = iota
	// SnapshotStep follows a structural Step.
	SnapshotStep
	// SnapshotFinal is the terminal REF/RREF matrix.
	SnapshotFinal
)

// String returns a stable lower-case name for the kind.
func (k SnapshotKind) String() string {
	switch k {
	case SnapshotInitial:
		return "initial"
	case SnapshotStep:
		return "step"
	case SnapshotFinal:
		return "final"
	default:
		return fmt.Sprintf("SnapshotKind(%d)", int(k))
	}
}

// Snapshot is an immutable labeled copy of the augmented matrix.
// The matrix is reachable only through copying accessors.
type Snapshot struct {
	Seq        int          // 0-based emission order among snapshots
	Kind       SnapshotKind // initial, step or final
	Label      string       // human-readable description
	StepNumber int          // 1-based for SnapshotStep, 0 otherwise
	Step       Step         // nil unless Kind == SnapshotStep

	rows [][]float64
}

// NewSnapshot copies m and wraps it with the given metadata.
func NewSnapshot(seq int, kind SnapshotKind, label string, number int, step Step, m *matrix.Dense) Snapshot {
	return Snapshot{
		Seq:        seq,
		Kind:       kind,
		Label:      label,
		StepNumber: number,
		Step:       step,
		rows:       m.ToRows(),
	}
}

// Rows returns a deep copy of the captured matrix.
func (s Snapshot) Rows() [][]float64 {
	out := make([][]float64, len(s.rows))
	for i, r := range s.rows {
		out[i] = append([]float64(nil), r...)
	}

	return out
}

// Dims returns (rows, cols) of the captured augmented matrix.
func (s Snapshot) Dims() (int, int) {
	if len(s.rows) == 0 {
		return 0, 0
	}

	return len(s.rows), len(s.rows[0])
}

// At returns the captured entry (i, j). It panics on out-of-range indices,
// like slice indexing.
func (s Snapshot) At(i, j int) float64 { return s.rows[i][j] }

// Dense rebuilds a mutable matrix from the snapshot (used for step replay).
func (s Snapshot) Dense() (*matrix.Dense, error) {
	return matrix.NewDenseFromRows(s.rows, matrix.WithNoValidateNaNInf())
}
