// SPDX-License-Identifier: MIT

package matrix

import "math"

// RowRank counts the rows of m holding at least one entry with |v| > eps among
// the first cols columns. With cols = m.Cols()-1 on an echelon-form augmented
// matrix this is rank(A); with cols = m.Cols() it is rank([A|b]).
// cols is clamped to [0, m.Cols()].
// Complexity: O(r*cols).
func RowRank(m *Dense, cols int, eps float64) int {
	if cols > m.c {
		cols = m.c
	}
	rank := 0
	for i := 0; i < m.r; i++ {
		if LeadingColumn(m, i, cols, eps) >= 0 {
			rank++
		}
	}

	return rank
}

// LeadingColumn returns the first column j < cols of row i with |v| > eps,
// or -1 when the row is zero within eps over those columns.
func LeadingColumn(m *Dense, i, cols int, eps float64) int {
	if i < 0 || i >= m.r {
		return -1
	}
	if cols > m.c {
		cols = m.c
	}
	r := m.row(i)
	for j := 0; j < cols; j++ {
		if math.Abs(r[j]) > eps {
			return j
		}
	}

	return -1
}

// IsRowEchelon reports whether the first cols columns of m are in row-echelon
// form: each nonzero row's leading entry lies strictly right of the previous
// one's, and zero rows sit below all nonzero rows.
func IsRowEchelon(m *Dense, cols int, eps float64) bool {
	prev := -1
	seenZero := false
	for i := 0; i < m.r; i++ {
		lead := LeadingColumn(m, i, cols, eps)
		if lead < 0 {
			seenZero = true
			continue
		}
		if seenZero || lead <= prev {
			return false
		}
		prev = lead
	}

	return true
}

// IsReducedRowEchelon reports whether m is in reduced row-echelon form over its
// first cols columns: row-echelon, every leading entry within eps of 1, and
// each leading entry the only nonzero in its column.
func IsReducedRowEchelon(m *Dense, cols int, eps float64) bool {
	if !IsRowEchelon(m, cols, eps) {
		return false
	}
	for i := 0; i < m.r; i++ {
		lead := LeadingColumn(m, i, cols, eps)
		if lead < 0 {
			continue
		}
		if math.Abs(m.row(i)[lead]-1) > eps {
			return false
		}
		for k := 0; k < m.r; k++ {
			if k != i && math.Abs(m.row(k)[lead]) > eps {
				return false
			}
		}
	}

	return true
}
