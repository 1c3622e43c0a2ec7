// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read/write view the reference kernels in matrix/ops accept.
// Dense is the only implementation; row operations live on *Dense because the
// elimination engine needs them in place.
type Matrix interface {
	// Rows and Cols report the shape.
	Rows() int
	Cols() int

	// At reads entry (i, j); ErrOutOfRange outside the shape.
	At(i, j int) (float64, error)

	// Set writes entry (i, j); ErrOutOfRange outside the shape.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
