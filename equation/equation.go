// SPDX-License-Identifier: MIT

package equation

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/numfmt"
)

// System is a parsed set of linear equations in matrix form A·x = b.
type System struct {
	A         [][]float64
	B         []float64
	Variables []string // lexicographic, index-aligned with A's columns
	Lines     []int    // 1-based input line of each row
}

// Parse converts raw equation lines into matrix form. Blank lines are skipped;
// errors carry the 1-based line and column of the offending token.
//
// Implementation:
//   - Stage 1: Lex and parse every line into left − right (a linear form).
//   - Stage 2: Collect variables with a nonzero coefficient, sort them.
//   - Stage 3: Fill A with coefficients and b with the negated constants.
//
// Coefficients below matrix.DefaultEpsilon in magnitude are treated as 0,
// so "0.1x + 0.2x - 0.3x" does not introduce x.
func Parse(lines []string) (*System, error) {
	var (
		forms []linear
		rows  []int
	)
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		form, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		forms = append(forms, form)
		rows = append(rows, i+1)
	}
	if len(forms) == 0 {
		return nil, ErrNoEquations
	}

	seen := make(map[string]bool)
	for _, f := range forms {
		for v, c := range f.coef {
			if math.Abs(c) > matrix.DefaultEpsilon {
				seen[v] = true
			}
		}
	}
	if len(seen) == 0 {
		return nil, ErrNoVariables
	}
	vars := make([]string, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Strings(vars)

	sys := &System{
		A:         make([][]float64, len(forms)),
		B:         make([]float64, len(forms)),
		Variables: vars,
		Lines:     rows,
	}
	for i, f := range forms {
		sys.A[i] = make([]float64, len(vars))
		for j, v := range vars {
			if c := f.coef[v]; math.Abs(c) > matrix.DefaultEpsilon {
				sys.A[i][j] = c
			}
		}
		if b := -f.konst; math.Abs(b) > matrix.DefaultEpsilon {
			sys.B[i] = b
		}
	}

	return sys, nil
}

// ParseReader reads one equation per line from r and calls Parse.
func ParseReader(r io.Reader) (*System, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("equation: read: %w", err)
	}

	return Parse(lines)
}

func parseLine(line string) (linear, error) {
	toks, err := lex(line)
	if err != nil {
		return linear{}, err
	}
	p := &parser{toks: toks}

	return p.equation()
}

// StandardForm renders each row as "3 x + 2 y = 5"; zero coefficients are
// omitted and a row without any term shows "0".
func (s *System) StandardForm() []string {
	out := make([]string, len(s.A))
	for i, row := range s.A {
		var sb strings.Builder
		for j, c := range row {
			if numfmt.Clean(c, numfmt.DefaultDigits) == 0 {
				continue
			}
			op, mag := numfmt.Signed(c, numfmt.DefaultDigits)
			switch {
			case sb.Len() > 0:
				sb.WriteString(" " + op + " ")
			case op == "-":
				sb.WriteString("-")
			}
			sb.WriteString(mag + " " + s.Variables[j])
		}
		if sb.Len() == 0 {
			sb.WriteString("0")
		}
		sb.WriteString(" = " + numfmt.Format(s.B[i], numfmt.DefaultDigits))
		out[i] = sb.String()
	}

	return out
}
