// SPDX-License-Identifier: MIT

package trace

import (
	"math"
	"strings"

	"github.com/katalvlaran/rowreduce/numfmt"
)

// unitTol decides whether a divisor is displayed as 1 (no division shown).
const unitTol = 1e-12

// Term is one already-solved variable subtracted while solving a pivot row.
type Term struct {
	Column      int
	Variable    string
	Coefficient float64 // entry of the REF row in Column
	Value       float64 // previously computed value of Variable
}

// Substitution is one back-substitution step:
//
//	Value = (RHS − Σ Coefficient·Value) / Divisor
type Substitution struct {
	Row         int
	PivotColumn int
	Variable    string
	RHS         float64
	Terms       []Term
	Divisor     float64
	Value       float64
}

// visibleTerms drops terms whose coefficient rounds to 0 at digits.
func (s Substitution) visibleTerms(digits int) []Term {
	out := make([]Term, 0, len(s.Terms))
	for _, t := range s.Terms {
		if numfmt.Clean(t.Coefficient, digits) != 0 {
			out = append(out, t)
		}
	}

	return out
}

// Notation spells variable names and the product sign in rendered chains.
type Notation struct {
	Var   func(name string) string
	Times string
}

// Plain is the transcript notation: names as given, " * " between factors.
var Plain = Notation{Var: func(name string) string { return name }, Times: " * "}

func (s Substitution) render(digits int, n Notation, operand func(Term) string) string {
	var sb strings.Builder
	sb.WriteString(numfmt.Format(s.RHS, digits))
	for _, t := range s.visibleTerms(digits) {
		// Subtracting c·x: a positive coefficient shows as "-", a negative one as "+".
		op, mag := numfmt.Signed(-t.Coefficient, digits)
		sb.WriteString(" " + op + " " + mag + n.Times + operand(t))
	}

	return sb.String()
}

// Symbolic renders "RHS - c * name ..." with variable names.
func (s Substitution) Symbolic(digits int) string { return s.symbolic(digits, Plain) }

// Numeric renders the same expression with solved values substituted.
func (s Substitution) Numeric(digits int) string { return s.numeric(digits, Plain) }

func (s Substitution) symbolic(digits int, n Notation) string {
	return s.render(digits, n, func(t Term) string { return n.Var(t.Variable) })
}

func (s Substitution) numeric(digits int, n Notation) string {
	return s.render(digits, n, func(t Term) string { return numfmt.Format(t.Value, digits) })
}

// UnitDivisor reports whether the pivot coefficient is 1 within tolerance.
func (s Substitution) UnitDivisor() bool { return math.Abs(s.Divisor-1) < unitTol }

// Format renders the equality chain in Plain notation, e.g.
//
//	x2 = 1
//	x1 = 3 - 0.5 * x2 = 3 - 0.5 * 1 = 2.5
//	x1 = (5 - 1 * x2) / 2 = (5 - 1 * 1) / 2 = 2
//
// The chain collapses to a single assignment when the divisor is 1 and there
// are no other terms.
func (s Substitution) Format(digits int) string { return s.Chain(digits, Plain) }

// Chain renders the equality chain in notation n.
func (s Substitution) Chain(digits int, n Notation) string {
	name := n.Var(s.Variable)
	value := numfmt.Format(s.Value, digits)
	terms := s.visibleTerms(digits)
	sym, num := s.symbolic(digits, n), s.numeric(digits, n)
	div := numfmt.Format(s.Divisor, digits)

	switch {
	case s.UnitDivisor() && len(terms) == 0:
		return name + " = " + value
	case s.UnitDivisor() && sym == num:
		return name + " = " + num + " = " + value
	case s.UnitDivisor():
		return name + " = " + sym + " = " + num + " = " + value
	case len(terms) == 0:
		return name + " = " + num + " / " + div + " = " + value
	default:
		return name + " = (" + sym + ") / " + div + " = (" + num + ") / " + div + " = " + value
	}
}

// String renders Format(DefaultDigits).
func (s Substitution) String() string { return s.Format(numfmt.DefaultDigits) }

// NewSubstitutionNote wraps a back-substitution step.
func NewSubstitutionNote(s Substitution) Note {
	cp := s
	cp.Terms = append([]Term(nil), s.Terms...)

	return Note{Kind: NoteSubstitution, Text: cp.String(), Substitution: &cp}
}
