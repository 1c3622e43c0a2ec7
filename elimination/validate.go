// SPDX-License-Identifier: MIT

package elimination

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rowreduce/matrix"
)

// Validate performs the caller-side checks Solve runs before the engine starts:
//
//  1. A has at least one row and one column (ErrEmptySystem).
//  2. Every row of A has the same width (ErrRaggedRows).
//  3. len(b) == rows(A) (ErrRHSLength).
//  4. A and b are finite (ErrNonFinite).
//  5. names, when non-nil, has one non-blank, distinct entry per column
//     (ErrVariableCount, ErrEmptyVariable, ErrDuplicateVariable).
//
// The first violation is returned, wrapped with its location.
func Validate(a [][]float64, b []float64, names []string) error {
	if err := matrix.ValidateRows(a, true); err != nil {
		return err
	}
	if len(b) != len(a) {
		return fmt.Errorf("b has %d entries for %d rows: %w", len(b), len(a), ErrRHSLength)
	}
	if err := matrix.ValidateFinite(b); err != nil {
		return err
	}
	if names == nil {
		return nil
	}

	m := len(a[0])
	if len(names) != m {
		return fmt.Errorf("%d names for %d columns: %w", len(names), m, ErrVariableCount)
	}
	seen := make(map[string]int, m)
	for j, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("column %d: %w", j+1, ErrEmptyVariable)
		}
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%q in columns %d and %d: %w", name, prev+1, j+1, ErrDuplicateVariable)
		}
		seen[name] = j
	}

	return nil
}
