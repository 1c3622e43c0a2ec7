// SPDX-License-Identifier: MIT

// Package matrix offers the dense, row-major float64 matrix used to hold an
// augmented linear system [A|b] while it is transformed in place.
//
// The matrix package provides:
//
//   - Dense, a flat-slice implementation of the Matrix interface.
//   - Augment, which builds the n×(m+1) augmented matrix from A and b with
//     strict shape and finiteness validation.
//   - Elementary row operations (SwapRows, DivRow, SubScaledRow) and FlushRow,
//     which snaps near-zero noise to exactly 0.
//   - Structural queries: RowRank, IsRowEchelon, IsReducedRowEchelon.
//
// All public entry points return sentinel errors from errors.go; callers match
// them with errors.Is. Panics are reserved for nonsensical option values.
//
// See matrix/ops for MatVec and Residual.
package matrix
