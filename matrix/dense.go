// SPDX-License-Identifier: MIT

// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows copies a rectangular [][]float64 into a fresh Dense.
// Stage 1 (Validate): ValidateRows (non-empty, rectangular, finite unless disabled).
// Stage 2 (Execute): copy row by row into the flat slice.
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateRows(rows, o.validateNaNInf); err != nil {
		return nil, err
	}

	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows returns a deep [][]float64 copy of the matrix.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// row is an unchecked view of row i; callers guarantee 0 <= i < r.
func (m *Dense) row(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c]
}

// ---------- Elementary row operations (in place) ----------

// SwapRows exchanges rows i and j in place. Swapping a row with itself is a no-op.
// Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r {
		return denseErrorf("SwapRows", i, j, ErrOutOfRange)
	}
	if j < 0 || j >= m.r {
		return denseErrorf("SwapRows", i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	ri, rj := m.row(i), m.row(j)
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// DivRow divides every entry of row i (including the right-hand side) by d.
// Dividing (rather than multiplying by 1/d) keeps exact results for exact quotients.
// Complexity: O(c).
func (m *Dense) DivRow(i int, d float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf("DivRow", i, 0, ErrOutOfRange)
	}
	if d == 0 {
		return denseErrorf("DivRow", i, 0, ErrZeroDivisor)
	}
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return denseErrorf("DivRow", i, 0, ErrNaNInf)
	}
	r := m.row(i)
	for k := range r {
		r[k] /= d
	}

	return nil
}

// SubScaledRow performs row[dst] -= factor * row[src] across all columns.
// Complexity: O(c).
func (m *Dense) SubScaledRow(dst, src int, factor float64) error {
	if dst < 0 || dst >= m.r {
		return denseErrorf("SubScaledRow", dst, src, ErrOutOfRange)
	}
	if src < 0 || src >= m.r {
		return denseErrorf("SubScaledRow", dst, src, ErrOutOfRange)
	}
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return denseErrorf("SubScaledRow", dst, src, ErrNaNInf)
	}
	rd, rs := m.row(dst), m.row(src)
	for k := range rd {
		rd[k] -= factor * rs[k]
	}

	return nil
}

// FlushRow replaces every entry of row i with |v| < eps by exactly 0,
// which also clears negative zeros.
func (m *Dense) FlushRow(i int, eps float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf("FlushRow", i, 0, ErrOutOfRange)
	}
	r := m.row(i)
	for k, v := range r {
		if math.Abs(v) < eps {
			r[k] = 0
		}
	}

	return nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
