// SPDX-License-Identifier: MIT

// Package equation turns free-text linear equations into the (A, b, names)
// triple consumed by package elimination.
//
// Each line holds exactly one '='. Both sides are parsed by a small
// recursive-descent evaluator into a linear form, a map from variable name to
// coefficient plus a constant, and the line becomes
//
//	Σ (left[v] − right[v])·v = right.const − left.const
//
// Supported syntax:
//
//	numbers      3   0.25   1e-3
//	identifiers  x   y2   rate_in   (a letter or '_' then letters, digits, '_')
//	operators    + - * /   unary ±   parentheses
//	implicit ·   3x   2(x + y)   (a + 1)(2)   x y
//
// Products of two non-constant operands and division by a non-constant are
// rejected with ErrNonLinear. Variables are ordered lexicographically;
// a variable whose coefficients cancel on every line is dropped.
//
// Example:
//
//	sys, err := equation.Parse([]string{"3x + 2y = 5", "y - z = 3"})
//	// sys.Variables == [x y z]
//	// sys.A == [[3 2 0] [0 1 -1]], sys.B == [5 3]
package equation
