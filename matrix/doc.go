// Package matrix provides elementary row operations and Reduced Row
// Echelon Form (RREF) computation over dense float64 matrices.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix with strict bounds checking and an element
//     precision tag (single-precision inputs stay single-precision).
//   - Normalize, which coerces any rectangular numeric input — an existing
//     Matrix, [][]float64, or arbitrary nested numeric slices — into an
//     owned, independent Dense value.
//   - RowSwap, RowScale and RowReplace, the three primitive row mutators.
//     Each copies its input before mutating, so no returned matrix ever
//     aliases caller storage.
//   - RREF, Gauss–Jordan elimination with partial pivoting, expressed
//     entirely in terms of the three elementary operations.
//   - YAML converters for ingesting and exporting matrices as plain
//     nested sequences.
//
// Every operation has value semantics: the input is read-only and the
// result is a brand-new matrix. This trades extra copies for the complete
// absence of aliasing bugs, which is the right trade for the modest matrix
// sizes this package targets.
//
// See the examples in this package for usage patterns.
package matrix
