// SPDX-License-Identifier: MIT

package elimination

import (
	"errors"

	"github.com/katalvlaran/rowreduce/matrix"
)

var (
	// ErrEmptySystem is returned when A has no rows or no columns.
	ErrEmptySystem = matrix.ErrBadShape

	// ErrRaggedRows is returned when the rows of A differ in length.
	ErrRaggedRows = matrix.ErrRaggedRows

	// ErrRHSLength is returned when len(b) != rows(A).
	ErrRHSLength = matrix.ErrDimensionMismatch

	// ErrNonFinite is returned when A or b contains NaN or ±Inf.
	ErrNonFinite = matrix.ErrNaNInf

	// ErrVariableCount is returned when the number of variable names differs from cols(A).
	ErrVariableCount = errors.New("elimination: variable name count does not match column count")

	// ErrEmptyVariable is returned for a blank variable name.
	ErrEmptyVariable = errors.New("elimination: empty variable name")

	// ErrDuplicateVariable is returned when a variable name appears twice.
	ErrDuplicateVariable = errors.New("elimination: duplicate variable name")

	// ErrUnknownMode is returned for a Mode other than REF or RREF.
	ErrUnknownMode = errors.New("elimination: unknown mode")
)
