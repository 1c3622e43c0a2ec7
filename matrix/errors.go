// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. DO NOT %w wrap
// these sentinels when returning directly from a validator; if context is
// essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the outer boundary.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0)
	// or when an input slice is empty.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRaggedRows indicates that the rows of a [][]float64 input differ in length.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. len(b) != rows(A) when augmenting, or MatVec with a short vector.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrZeroDivisor is returned by DivRow when asked to divide by an exact zero.
	ErrZeroDivisor = errors.New("matrix: division by zero")
)
