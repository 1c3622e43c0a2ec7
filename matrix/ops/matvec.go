// SPDX-License-Identifier: MIT

// Package ops holds the kernels used to verify a solution against its system.
package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rowreduce/matrix"
)

// MatVec computes y = A·x for an r×c matrix A and a length-c vector x.
// Errors: ErrNilMatrix, ErrBadShape (nil x), ErrDimensionMismatch.
// Complexity: O(r*c).
func MatVec(a matrix.Matrix, x []float64) ([]float64, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("MatVec: %w", err)
	}
	if err := matrix.ValidateVecLen(x, a.Cols()); err != nil {
		return nil, fmt.Errorf("MatVec: %w", err)
	}

	y := make([]float64, a.Rows())
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < a.Rows(); i++ {
		sum := 0.0
		for j = 0; j < a.Cols(); j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("MatVec: %w", err)
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Residual returns max_i |(A·x − b)_i|, the infinity norm of the residual.
// A small residual confirms that x satisfies the system within floating-point noise.
func Residual(a matrix.Matrix, x, b []float64) (float64, error) {
	ax, err := MatVec(a, x)
	if err != nil {
		return 0, fmt.Errorf("Residual: %w", err)
	}
	if err = matrix.ValidateVecLen(b, len(ax)); err != nil {
		return 0, fmt.Errorf("Residual: %w", err)
	}

	worst := 0.0
	for i := range ax {
		worst = math.Max(worst, math.Abs(ax[i]-b[i]))
	}

	return worst, nil
}
