// SPDX-License-Identifier: MIT

package equation

import "errors"

var (
	// ErrSyntax is returned for an unexpected character or token.
	ErrSyntax = errors.New("equation: syntax error")

	// ErrNonLinear is returned for products of variables or division by a variable.
	ErrNonLinear = errors.New("equation: expression is not linear")

	// ErrDivisionByZero is returned when a constant divisor evaluates to 0.
	ErrDivisionByZero = errors.New("equation: division by zero")

	// ErrEquals is returned when a line does not contain exactly one '='.
	ErrEquals = errors.New("equation: each line needs exactly one '='")

	// ErrNoEquations is returned when every input line is blank.
	ErrNoEquations = errors.New("equation: no equations")

	// ErrNoVariables is returned when no variable survives with a nonzero coefficient.
	ErrNoVariables = errors.New("equation: no variables")
)
