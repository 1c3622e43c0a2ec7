// SPDX-License-Identifier: MIT

package elimination

import (
	"math"

	"github.com/katalvlaran/rowreduce/matrix"
)

const panicEpsilonInvalid = "elimination: WithEpsilon: eps must be finite, non-negative"

// Option configures Solve.
type Option func(*options)

type options struct {
	names []string // nil → "x1".."xm"
	eps   float64  // matrix.DefaultEpsilon
}

// WithVariableNames sets the display labels, one per column of A, in column order.
// The slice is copied. Validation (count, blanks, duplicates) happens in Solve.
func WithVariableNames(names ...string) Option {
	cp := append([]string(nil), names...)

	return func(o *options) { o.names = cp }
}

// WithEpsilon overrides the nonzero tolerance (default 1e-12).
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

func gatherOptions(opts ...Option) options {
	o := options{eps: matrix.DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
