// SPDX-License-Identifier: MIT

// Package trace defines the structured step-trace produced while a linear
// system is reduced, and the Sink capability that consumes it.
//
// What is emitted:
//
//   - Snapshot: an immutable copy of the augmented matrix with a label; the
//     engine emits one after augmentation, one per structural Step (RowSwap,
//     PivotNormalize, RowEliminate) and one at termination.
//   - Note: everything that is not a matrix: the "A·x = b" preamble, headings,
//     the solvability verdict, back-substitution steps and final assignments.
//     Notes carry structured payloads (Equation, Substitution, Assignment) so an
//     export layer never has to re-parse rendered text.
//
// Sinks are driven by a single synchronous producer, in chronological order.
// Provided sinks:
//
//	Recorder — in-memory ordered log (tests, report export)
//	Writer   — line-oriented text transcript on an io.Writer
//	LogSink  — debug-level structured logging via logrus
//	Multi    — fan-out to several sinks
//	Discard  — drops everything
package trace
