// Package rowreduce solves systems of linear equations by Gaussian elimination
// and shows its work: every row swap, pivot normalization and elimination is
// captured as an immutable snapshot of the augmented matrix.
//
// 🚀 What is rowreduce?
//
//	A small, deterministic toolkit that brings together:
//		• Elimination to REF or RREF with rank-based classification
//		• Back substitution with symbolic and numeric substitution chains
//		• A structured trace (snapshots + notes) consumed by pluggable sinks
//		• A linear-equation parser ("3x + 2y = 5", "2(x + y) = 4")
//		• Exports: plain transcript, LaTeX, YAML and JSON
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/      — dense augmented matrix, row operations, echelon predicates
//	matrix/ops/  — MatVec and the residual check of a solution
//	numfmt/      — the shared rounding and -0 suppression rule
//	trace/       — Step, Snapshot, Note and the Sink implementations
//	elimination/ — the engine: Solve(a, b, mode, sink, opts...)
//	backsub/     — back substitution over a row-echelon matrix
//	equation/    — raw equation lines to A, b and sorted variable names
//	latex/       — LaTeX rendering sink
//	report/      — structured JSON / YAML report
//	config/      — viper-backed CLI configuration
//	cli/         — the cobra command tree behind cmd/rowreduce
//
// Quick example:
//
//	res, err := elimination.Solve(
//		[][]float64{{2, 1}, {1, -1}}, []float64{5, 1},
//		elimination.REF, trace.NewWriter(os.Stdout),
//	)
//
// prints the augmented matrix after each of the three row operations, then
// "x1 = 2" and "x2 = 1".
//
//	go install github.com/katalvlaran/rowreduce/cmd/rowreduce@latest
package rowreduce
