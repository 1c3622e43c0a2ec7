// SPDX-License-Identifier: MIT

// Package backsub solves an augmented matrix that is already in row-echelon
// form, bottom-up, and records every step both symbolically (in terms of the
// named variables) and numerically (with solved values substituted).
//
// Usage:
//
//	sol, err := backsub.Solve(ref, []string{"x", "y"}, sink)
//	// sol.Values[j] is the value of variable j; sol.Steps mirror the notes sent to sink.
//
// Rows without a pivot among the coefficient columns are skipped. Variables
// that never receive a pivot keep the value 0; callers only invoke the solver
// on systems classified as having a unique solution.
//
// Complexity: O(n·m) for an n×(m+1) matrix.
package backsub
