// SPDX-License-Identifier: MIT

// Package numfmt holds the display rule shared by every transcript renderer:
// round to a fixed number of decimals and never show signed near-zero noise.
package numfmt

import (
	"math"
	"strconv"
)

const (
	// DefaultDigits is used for factors, coefficients and solution values.
	DefaultDigits = 4

	// SnapshotDigits is used for full-matrix snapshots.
	SnapshotDigits = 6

	// ZeroTol is the magnitude below which a rounded value is shown as exactly 0.
	ZeroTol = 1e-12
)

// Clean rounds v to digits decimals (half away from zero) and returns exactly 0
// when the rounded magnitude is below ZeroTol, so "-0" never survives.
// Negative digits are treated as 0. NaN and ±Inf are returned unchanged.
func Clean(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	if digits < 0 {
		digits = 0
	}
	scale := math.Pow(10, float64(digits))
	r := math.Round(v*scale) / scale
	if math.IsInf(r, 0) || math.IsNaN(r) {
		// v*scale overflowed; v is already far beyond the requested precision.
		r = v
	}
	if math.Abs(r) < ZeroTol {
		return 0
	}

	return r
}

// Format renders Clean(v, digits) with the shortest decimal representation:
// 2 → "2", 1/3 → "0.3333", -1e-15 → "0".
func Format(v float64, digits int) string {
	return strconv.FormatFloat(Clean(v, digits), 'f', -1, 64)
}

// Signed renders v for use after a binary operator: the magnitude plus the
// operator that should precede it ("+" or "-").
func Signed(v float64, digits int) (op string, magnitude string) {
	c := Clean(v, digits)
	if c < 0 {
		return "-", Format(-c, digits)
	}

	return "+", Format(c, digits)
}

// Parenthesized renders negative values inside parentheses: -2 → "(-2)".
// Used where a value follows a minus sign, e.g. "R2 = R2 - (-2)·R1".
func Parenthesized(v float64, digits int) string {
	c := Clean(v, digits)
	if c < 0 {
		return "(" + Format(c, digits) + ")"
	}

	return Format(c, digits)
}
