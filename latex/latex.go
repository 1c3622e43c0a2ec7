// SPDX-License-Identifier: MIT

// Package latex renders a solve trace as LaTeX in the dialect understood by
// Word's equation editor: \matrix{a & b \\ c & d} inside \left[ \right],
// \text{...} for prose and x_{1} subscripts for variables.
//
// Renderer is a trace.Sink: it consumes the structured snapshots and notes
// directly, so nothing is recovered from rendered text.
package latex

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/katalvlaran/rowreduce/numfmt"
	"github.com/katalvlaran/rowreduce/trace"
)

const panicDigitsInvalid = "latex: WithDigits: digits must be non-negative"

// Option configures a Renderer.
type Option func(*Renderer)

// WithDigits sets the precision of snapshot matrices (default numfmt.SnapshotDigits).
// Panics when d < 0.
func WithDigits(d int) Option {
	if d < 0 {
		panic(panicDigitsInvalid)
	}

	return func(r *Renderer) { r.digits = d }
}

// Renderer accumulates one LaTeX line per event.
type Renderer struct {
	digits int
	lines  []string
}

// NewRenderer returns an empty Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{digits: numfmt.SnapshotDigits}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

// Notation is the trace.Notation used for back-substitution chains.
var Notation = trace.Notation{Var: Variable, Times: ` \cdot `}

// OnSnapshot implements trace.Sink.
func (r *Renderer) OnSnapshot(s trace.Snapshot) {
	r.lines = append(r.lines, Text(s.Label+":"), Matrix(s.Rows(), r.digits, false))
}

// OnNote implements trace.Sink.
func (r *Renderer) OnNote(n trace.Note) {
	switch {
	case n.Kind == trace.NoteEquation && n.Equation != nil:
		r.lines = append(r.lines, Text(n.Text), equation(*n.Equation))
	case n.Kind == trace.NoteSubstitution && n.Substitution != nil:
		r.lines = append(r.lines, n.Substitution.Chain(numfmt.DefaultDigits, Notation))
	case n.Kind == trace.NoteSolution && n.Assignment != nil:
		r.lines = append(r.lines,
			Variable(n.Assignment.Variable)+" = "+numfmt.Format(n.Assignment.Value, numfmt.DefaultDigits))
	default:
		r.lines = append(r.lines, Text(n.Text))
	}
}

// Lines returns the rendered lines so far.
func (r *Renderer) Lines() []string { return append([]string(nil), r.lines...) }

// String joins the lines with newlines.
func (r *Renderer) String() string { return strings.Join(r.lines, "\n") }

// WriteTo writes String() followed by a newline.
func (r *Renderer) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintln(w, r.String())

	return int64(n), err
}

// equation renders [A] × [x] = [b]; the vectors keep a trailing row separator
// as the equation editor expects for column vectors.
func equation(e trace.Equation) string {
	x := make([][]string, len(e.Variables))
	for i, v := range e.Variables {
		x[i] = []string{Variable(v)}
	}
	b := make([][]float64, len(e.B))
	for i, v := range e.B {
		b[i] = []float64{v}
	}

	return Matrix(e.A, numfmt.DefaultDigits, true) +
		` \times ` + bracket(x, true) +
		` = ` + Matrix(b, numfmt.DefaultDigits, true)
}

// Matrix renders rows as \left[\matrix{...}\right]. With trailing set, the last
// row is also terminated by \\.
func Matrix(rows [][]float64, digits int, trailing bool) string {
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = numfmt.Format(v, digits)
		}
	}

	return bracket(cells, trailing)
}

func bracket(cells [][]string, trailing bool) string {
	rows := make([]string, len(cells))
	for i, r := range cells {
		rows[i] = strings.Join(r, " & ")
	}
	body := strings.Join(rows, ` \\ `)
	if trailing {
		body += ` \\`
	}

	return `\left[\matrix{` + body + `}\right]`
}

var textEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`_`, `\_`,
	`%`, `\%`,
	`#`, `\#`,
	`&`, `\&`,
	`$`, `\$`,
)

// Text wraps prose in \text{...}, escaping LaTeX specials.
func Text(s string) string {
	return `\text{` + textEscaper.Replace(strings.TrimSpace(s)) + `}`
}

// Variable subscripts a name: "x1" → "x_{1}", "rate_in" → "rate_{in}".
// Names without a digit suffix or underscore are returned unchanged.
func Variable(name string) string {
	if i := strings.IndexByte(name, '_'); i > 0 && i < len(name)-1 {
		return name[:i] + "_{" + name[i+1:] + "}"
	}
	i := len(name)
	for i > 0 && unicode.IsDigit(rune(name[i-1])) {
		i--
	}
	if i == 0 || i == len(name) {
		return name
	}

	return name[:i] + "_{" + name[i:] + "}"
}
