// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Augment builds the augmented matrix [A|b] of shape n×(m+1): the first m
// columns hold A, the last column holds b. Inputs are copied, never aliased.
//
// Errors:
//   - ErrBadShape, ErrRaggedRows, ErrNaNInf from ValidateRows on a.
//   - ErrDimensionMismatch when len(b) != len(a).
//   - ErrNaNInf when b carries a non-finite value (unless validation is disabled).
//
// Complexity: O(n*m).
func Augment(a [][]float64, b []float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateRows(a, o.validateNaNInf); err != nil {
		return nil, fmt.Errorf("Augment: %w", err)
	}
	if err := ValidateVecLen(b, len(a)); err != nil {
		return nil, fmt.Errorf("Augment: %w", err)
	}
	if o.validateNaNInf {
		if err := ValidateFinite(b); err != nil {
			return nil, fmt.Errorf("Augment: %w", err)
		}
	}

	n, m := len(a), len(a[0])
	aug, err := NewDense(n, m+1)
	if err != nil {
		return nil, fmt.Errorf("Augment: %w", err)
	}
	for i := 0; i < n; i++ {
		r := aug.row(i)
		copy(r[:m], a[i])
		r[m] = b[i]
	}

	return aug, nil
}
