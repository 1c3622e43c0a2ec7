// SPDX-License-Identifier: MIT

package trace

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rowreduce/numfmt"
)

// NoteKind classifies non-matrix trace entries.
type NoteKind int

const (
	// NoteEquation carries the "A·x = b" preamble in Note.Equation.
	NoteEquation NoteKind = iota
	// NoteHeading introduces a section, e.g. back substitution.
	NoteHeading
	// NoteClassification states whether the system has none, one or infinitely many solutions.
	NoteClassification
	// NoteSubstitution carries one back-substitution step in Note.Substitution.
	NoteSubstitution
	// NoteSolution carries a final variable assignment in Note.Assignment.
	NoteSolution
	// NoteText is free text.
	NoteText
)

// String returns a stable lower-case name for the kind.
func (k NoteKind) String() string {
	switch k {
	case NoteEquation:
		return "equation"
	case NoteHeading:
		return "heading"
	case NoteClassification:
		return "classification"
	case NoteSubstitution:
		return "substitution"
	case NoteSolution:
		return "solution"
	case NoteText:
		return "text"
	default:
		return fmt.Sprintf("NoteKind(%d)", int(k))
	}
}

// Note is a non-matrix trace entry. Text is always set; the structured payload
// matching Kind is set as well.
type Note struct {
	Kind         NoteKind
	Text         string
	Equation     *Equation
	Substitution *Substitution
	Assignment   *Assignment
}

// Equation is the system A·x = b as supplied by the caller.
type Equation struct {
	A         [][]float64
	B         []float64
	Variables []string
}

// NewEquationNote copies a, b and names into an equation note.
func NewEquationNote(a [][]float64, b []float64, names []string) Note {
	eq := &Equation{
		A:         make([][]float64, len(a)),
		B:         append([]float64(nil), b...),
		Variables: append([]string(nil), names...),
	}
	for i, r := range a {
		eq.A[i] = append([]float64(nil), r...)
	}

	return Note{Kind: NoteEquation, Text: "Matrix form (A·x = b):", Equation: eq}
}

// equationDigits is the precision of the "A·x = b" preamble.
const equationDigits = 2

// Lines renders one line per row: "[    2     1]   [x1]   =   [    5]".
// When there are more variables than rows the remaining variables get their
// own line so that the x column is complete.
func (e Equation) Lines() []string {
	n := len(e.A)
	if len(e.Variables) > n {
		n = len(e.Variables)
	}
	width := 0
	for _, v := range e.Variables {
		if len(v) > width {
			width = len(v)
		}
	}
	rowWidth := 0
	if len(e.A) > 0 {
		rowWidth = len(e.A[0])*6 + 1
	}

	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var sb strings.Builder
		if i < len(e.A) {
			sb.WriteByte('[')
			for j, v := range e.A[i] {
				if j > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(fmt.Sprintf("%5s", numfmt.Format(v, equationDigits)))
			}
			sb.WriteByte(']')
		} else {
			sb.WriteString(strings.Repeat(" ", rowWidth))
		}
		sb.WriteString("   ")
		if i < len(e.Variables) {
			sb.WriteString(fmt.Sprintf("[%-*s]", width, e.Variables[i]))
		} else {
			sb.WriteString(strings.Repeat(" ", width+2))
		}
		if i < len(e.B) {
			sb.WriteString(fmt.Sprintf("   =   [%5s]", numfmt.Format(e.B[i], equationDigits)))
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}

	return lines
}

// Assignment is a final "variable = value" result line.
type Assignment struct {
	Variable string
	Value    float64
}

// String renders "x1 = 2" with DefaultDigits.
func (a Assignment) String() string {
	return a.Variable + " = " + numfmt.Format(a.Value, numfmt.DefaultDigits)
}

// NewAssignmentNote wraps a final assignment.
func NewAssignmentNote(variable string, value float64) Note {
	a := &Assignment{Variable: variable, Value: value}

	return Note{Kind: NoteSolution, Text: a.String(), Assignment: a}
}

// NewHeadingNote wraps a heading line.
func NewHeadingNote(text string) Note { return Note{Kind: NoteHeading, Text: text} }

// NewClassificationNote wraps the solvability verdict.
func NewClassificationNote(text string) Note { return Note{Kind: NoteClassification, Text: text} }

// VariableNames synthesizes the default labels "x1".."xm".
func VariableNames(m int) []string {
	names := make([]string, m)
	for j := range names {
		names[j] = fmt.Sprintf("x%d", j+1)
	}

	return names
}
