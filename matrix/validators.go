// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    still match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrBadShape)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRows checks a [][]float64 input: at least one row, at least one
// column, every row the same width and, when finite is true, no NaN/±Inf.
//
// Errors: ErrBadShape, ErrRaggedRows, ErrNaNInf (wrapped with the row/column).
// Complexity: O(r*c).
func ValidateRows(rows [][]float64, finite bool) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return validatorErrorf("ValidateRows", ErrBadShape)
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d has %d entries, want %d", i, len(row), width), ErrRaggedRows)
		}
		if !finite {
			continue
		}
		for j, v := range row {
			if isNonFinite(v) {
				return validatorErrorf(fmt.Sprintf("ValidateRows: (%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateFinite rejects NaN/±Inf entries of a vector.
func ValidateFinite(x []float64) error {
	for i, v := range x {
		if isNonFinite(v) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite: [%d]", i), ErrNaNInf)
		}
	}

	return nil
}
