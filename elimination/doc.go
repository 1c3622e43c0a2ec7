// SPDX-License-Identifier: MIT

// Package elimination solves linear systems A·x = b by Gaussian elimination and
// narrates every transformation through a trace.Sink.
//
// 🚀 What it does
//
//	Solve augments A with b, sweeps the columns left to right and, per column:
//	  • finds the first row (from the current pivot row down) whose entry
//	    exceeds ε = 1e-12 in magnitude; a column without one is skipped and
//	    its variable becomes free;
//	  • swaps that row up (RowSwap), divides it by its pivot (PivotNormalize);
//	  • clears the column below the pivot (REF) or above and below it (RREF)
//	    with RowEliminate steps.
//	It then counts rank(A) and rank([A|b]) and classifies the system:
//	  rank([A|b]) > rank(A)  → NoSolution
//	  rank(A) < m            → InfiniteSolutions
//	  otherwise              → UniqueSolution
//	A unique solution is read off the RREF matrix directly, or computed with
//	package backsub from the REF matrix.
//
// ⚠️ Pivoting
//
//	The pivot is the first entry above ε, not the largest in magnitude. This
//	avoids zero pivots only; ill-conditioned inputs can accumulate more
//	rounding error than magnitude-based partial pivoting would.
//
// ⚙️ Usage
//
//	rec := trace.NewRecorder()
//	res, err := elimination.Solve(
//		[][]float64{{2, 1}, {1, -1}}, []float64{5, 1},
//		elimination.REF, rec,
//		elimination.WithVariableNames("x", "y"),
//	)
//	// res.Classification == elimination.UniqueSolution, res.Solution == [2 1]
//
// Input validation (Validate) runs before anything is emitted; a rejected
// system produces no trace at all.
//
// Complexity: O(n·m·(m+1)) time, O(n·(m+1)) per emitted snapshot.
package elimination
