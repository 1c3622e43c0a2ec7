// SPDX-License-Identifier: MIT

package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/rowreduce/numfmt"
)

// FormatRow renders "[2, 1, 5]" with values cleaned at digits.
func FormatRow(row []float64, digits int) string {
	parts := make([]string, len(row))
	for j, v := range row {
		parts[j] = numfmt.Format(v, digits)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Writer renders events as a line-oriented text transcript, one block per
// event with blocks separated by a blank line:
//
//	Matrix form (A·x = b):
//
//	[    2     1]   [x1]   =   [    5]
//	[    1    -1]   [x2]   =   [    1]
//
//	Step 1: Make the pivot in x1 equal to 1 by multiplying R1 by 0.5 (1/2):
//	[1, 0.5, 2.5]
//	[1, -1, 1]
//
//	x1 = 2
//
// Matrix rows start with "[" and are comma separated, labels end with ":" and
// assignments use " = ", which is what downstream typesetting keys on.
// The first write error is kept and later writes become no-ops.
type Writer struct {
	w      io.Writer
	digits int
	err    error
	last   NoteKind
}

// NewWriter returns a Writer using numfmt.SnapshotDigits for matrices.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, digits: numfmt.SnapshotDigits, last: -1}
}

// SetDigits changes the precision of matrix rows (negative values are ignored).
func (tw *Writer) SetDigits(d int) {
	if d >= 0 {
		tw.digits = d
	}
}

// Err returns the first write error, if any.
func (tw *Writer) Err() error { return tw.err }

func (tw *Writer) printf(format string, args ...interface{}) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

// OnSnapshot implements Sink.
func (tw *Writer) OnSnapshot(s Snapshot) {
	tw.printf("%s:\n", s.Label)
	for _, r := range s.rows {
		tw.printf("%s\n", FormatRow(r, tw.digits))
	}
	tw.printf("\n")
	tw.last = -1
}

// OnNote implements Sink.
func (tw *Writer) OnNote(n Note) {
	switch n.Kind {
	case NoteEquation:
		tw.printf("%s\n\n", n.Text)
		if n.Equation != nil {
			for _, line := range n.Equation.Lines() {
				tw.printf("%s\n", line)
			}
		}
		tw.printf("\n")
	case NoteClassification:
		tw.printf("%s\n\n", n.Text)
	case NoteSolution:
		if tw.last == NoteSubstitution {
			tw.printf("\n")
		}
		tw.printf("%s\n", n.Text)
	default:
		tw.printf("%s\n", n.Text)
	}
	tw.last = n.Kind
}
