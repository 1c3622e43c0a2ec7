// SPDX-License-Identifier: MIT

package elimination

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rowreduce/trace"
)

// Mode selects the terminal form of the forward pass.
type Mode int

const (
	// REF stops at row-echelon form; a unique solution is found by back substitution.
	REF Mode = iota
	// RREF continues to reduced row-echelon form; a unique solution is read off directly.
	RREF
)

// String returns "REF" or "RREF".
func (m Mode) String() string {
	switch m {
	case REF:
		return "REF"
	case RREF:
		return "RREF"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "ref"/"rref" in any case, plus "echelon" and "reduced".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ref", "echelon":
		return REF, nil
	case "rref", "reduced":
		return RREF, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMode)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m != REF && m != RREF {
		return nil, fmt.Errorf("%d: %w", int(m), ErrUnknownMode)
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// Classification is the solvability verdict derived from the ranks.
type Classification int

const (
	// NoSolution means rank([A|b]) > rank(A): the system is inconsistent.
	NoSolution Classification = iota
	// InfiniteSolutions means consistent with rank(A) < m: at least one free variable.
	InfiniteSolutions
	// UniqueSolution means consistent with rank(A) == m.
	UniqueSolution
)

// String returns NO_SOLUTION, INFINITE_SOLUTIONS or UNIQUE_SOLUTION.
func (c Classification) String() string {
	switch c {
	case NoSolution:
		return "NO_SOLUTION"
	case InfiniteSolutions:
		return "INFINITE_SOLUTIONS"
	case UniqueSolution:
		return "UNIQUE_SOLUTION"
	default:
		return fmt.Sprintf("Classification(%d)", int(c))
	}
}

// Sentence is the transcript line announcing the verdict.
func (c Classification) Sentence() string {
	switch c {
	case NoSolution:
		return "The system has NO solution (inconsistent)."
	case InfiniteSolutions:
		return "The system has INFINITELY many solutions."
	default:
		return "The system has a UNIQUE solution:"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Classification) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// classify applies the rank rule.
func classify(rank, augmentedRank, m int) Classification {
	switch {
	case augmentedRank > rank:
		return NoSolution
	case rank < m:
		return InfiniteSolutions
	default:
		return UniqueSolution
	}
}

// PivotPosition is where a leading 1 was established for an elimination column.
type PivotPosition struct {
	Row    int
	Column int
}

// Result is the outcome of Solve.
type Result struct {
	Mode           Mode
	Classification Classification
	// Solution is index-aligned with Variables; nil unless Classification == UniqueSolution.
	Solution      []float64
	Variables     []string
	Rank          int // rank(A)
	AugmentedRank int // rank([A|b])
	Pivots        []PivotPosition
	// Final is a copy of the terminal REF/RREF augmented matrix.
	Final [][]float64
	// Substitutions holds the back-substitution steps (REF with a unique solution only).
	Substitutions []trace.Substitution
	// Steps is the number of structural operations performed.
	Steps int
}

// Value returns the solved value of the named variable.
func (r *Result) Value(name string) (float64, bool) {
	if r.Solution == nil {
		return 0, false
	}
	for j, v := range r.Variables {
		if v == name {
			return r.Solution[j], true
		}
	}

	return 0, false
}

// FreeVariables lists the variables whose column never received a pivot.
func (r *Result) FreeVariables() []string {
	pivoted := make(map[int]bool, len(r.Pivots))
	for _, p := range r.Pivots {
		pivoted[p.Column] = true
	}
	var free []string
	for j, v := range r.Variables {
		if !pivoted[j] {
			free = append(free, v)
		}
	}

	return free
}
