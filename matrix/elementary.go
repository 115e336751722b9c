// SPDX-License-Identifier: MIT
// Package matrix: the three elementary row operations — swap, scale,
// replacement. These are the only primitive mutators in the package; every
// higher-level transformation (notably RREF) is expressed purely in terms
// of them.
//
// All three operations accept anything Normalize accepts — an existing
// Matrix or a rectangular numeric array-like value — normalize it into an
// owned copy first (see normalize.go), mutate the copy, and return it. The
// input is never touched, and the returned matrix never aliases caller
// storage. The copy inherits the input's element precision.

package matrix

// RowSwap returns a new matrix with rows i and j exchanged in full.
// Implementation:
//   - Stage 1: Normalize m into an owned copy; validate both row indices.
//   - Stage 2: Swap the two rows in a single flat pass over the copy.
//
// Behavior highlights:
//   - i == j is a legal no-op: the result is simply an independent copy.
//   - Deterministic column order within the swap.
//
// Inputs:
//   - m   : source matrix or raw array-like input (read-only; anything Normalize accepts).
//   - i, j: row indices, each in [0, Rows).
//
// Returns:
//   - *Dense: fresh matrix with rows i and j exchanged.
//
// Errors:
//   - ErrNilMatrix / ErrBadShape / ErrNonNumeric (from normalization).
//   - ErrOutOfRange (either index outside [0, Rows)).
//
// Complexity:
//   - Time O(r*c) for the copy, O(c) for the swap itself. Space O(r*c).
func RowSwap(m any, i, j int) (*Dense, error) {
	// Normalize: copy-on-write guarantee starts here.
	out, err := Normalize(m)
	if err != nil {
		return nil, matrixErrorf(opRowSwap, err)
	}
	// Validate both indices against the copy's shape.
	if err = ValidateRowIndex(out, i); err != nil {
		return nil, matrixErrorf(opRowSwap, err)
	}
	if err = ValidateRowIndex(out, j); err != nil {
		return nil, matrixErrorf(opRowSwap, err)
	}

	// Swap element-by-element over the flat backing slice.
	baseI, baseJ := i*out.c, j*out.c
	for k := 0; k < out.c; k++ {
		out.data[baseI+k], out.data[baseJ+k] = out.data[baseJ+k], out.data[baseI+k]
	}

	return out, nil
}

// RowScale returns a new matrix with row i replaced by factor * row_i.
// Implementation:
//   - Stage 1: Normalize m into an owned copy; validate the row index.
//   - Stage 2: Multiply the row in place on the copy, quantizing each
//     product to the matrix precision.
//
// Behavior highlights:
//   - factor may be any float64, including zero or negative; scaling by
//     zero destroys information and is the caller's responsibility (the
//     RREF engine never does it). NaN/Inf factors propagate.
//
// Inputs:
//   - m     : source matrix or raw array-like input (read-only).
//   - i     : row index in [0, Rows).
//   - factor: per-element multiplier.
//
// Returns:
//   - *Dense: fresh matrix with row i scaled.
//
// Errors:
//   - ErrNilMatrix / ErrBadShape / ErrNonNumeric (from normalization).
//   - ErrOutOfRange (i outside [0, Rows)).
//
// Complexity:
//   - Time O(r*c) copy + O(c) scale. Space O(r*c).
func RowScale(m any, i int, factor float64) (*Dense, error) {
	// Normalize: copy-on-write guarantee starts here.
	out, err := Normalize(m)
	if err != nil {
		return nil, matrixErrorf(opRowScale, err)
	}
	// Validate the row index against the copy's shape.
	if err = ValidateRowIndex(out, i); err != nil {
		return nil, matrixErrorf(opRowScale, err)
	}

	// Scale the row over the flat backing slice.
	base := i * out.c
	for k := 0; k < out.c; k++ {
		out.data[base+k] = out.prec.quantize(factor * out.data[base+k])
	}

	return out, nil
}

// RowReplace returns a new matrix with row i replaced by
// jScale*row_i + kScale*row_j; row j is read but left unchanged.
// The classic Gauss–Jordan elimination step uses jScale=1 and
// kScale=-factor.
// Implementation:
//   - Stage 1: Normalize m into an owned copy; validate both row indices.
//   - Stage 2: Combine the two rows into row i on the copy, quantizing
//     each sum to the matrix precision.
//
// Behavior highlights:
//   - i == j yields (jScale+kScale)*row_i. This is well-defined but
//     unusual; it mirrors the plain formula with no special-casing and
//     callers should not rely on it.
//
// Inputs:
//   - m             : source matrix or raw array-like input (read-only).
//   - i             : target row index in [0, Rows).
//   - j             : source row index in [0, Rows).
//   - jScale, kScale: coefficients for row_i and row_j respectively
//     (the identity combination is jScale=1, kScale=1).
//
// Returns:
//   - *Dense: fresh matrix with row i updated.
//
// Errors:
//   - ErrNilMatrix / ErrBadShape / ErrNonNumeric (from normalization).
//   - ErrOutOfRange (either index outside [0, Rows)).
//
// Complexity:
//   - Time O(r*c) copy + O(c) combine. Space O(r*c).
func RowReplace(m any, i, j int, jScale, kScale float64) (*Dense, error) {
	// Normalize: copy-on-write guarantee starts here.
	out, err := Normalize(m)
	if err != nil {
		return nil, matrixErrorf(opRowReplace, err)
	}
	// Validate both indices against the copy's shape.
	if err = ValidateRowIndex(out, i); err != nil {
		return nil, matrixErrorf(opRowReplace, err)
	}
	if err = ValidateRowIndex(out, j); err != nil {
		return nil, matrixErrorf(opRowReplace, err)
	}

	// Combine rows over the flat backing slice. Reading out.data[baseJ+k]
	// before writing row i is safe even when i == j because each element is
	// consumed before its slot is reassigned.
	baseI, baseJ := i*out.c, j*out.c
	for k := 0; k < out.c; k++ {
		out.data[baseI+k] = out.prec.quantize(jScale*out.data[baseI+k] + kScale*out.data[baseJ+k])
	}

	return out, nil
}
