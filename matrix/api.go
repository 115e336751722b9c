// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation happens in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Use NewZeros/NewIdentity to build matrices with explicit shape and neutral elements.
//   - Use FromRows for literal test fixtures; it rejects ragged input up front.
//   - Use AllClose to compare reduction results under a tolerance instead of ==.

package matrix

import "math"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init by the runtime.
//
// Note: Returns (*Dense, error) to surface ErrBadShape on negative dims.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n²) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: RREF of any full-rank square matrix equals NewIdentity(n).
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0 // bounds-safe by construction
	}

	// Return the identity matrix.
	return I, nil
}

// FromRows builds a *Dense from a nested float64 slice.
// Ragged rows yield ErrBadShape; the input is copied, never aliased.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	out, err := Normalize(rows)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	return out, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	// Delegate to polymorphic clone on the concrete implementation.
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(r*c) zeroing. Handy to preallocate staging buffers.
func ZerosLike(m Matrix) (*Dense, error) {
	// Read shape once and call NewDense with the same dimensions.
	return NewDense(m.Rows(), m.Cols()) // errors (if any) bubble up
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n²). Validates square via central validator.
func IdentityLike(m Matrix) (*Dense, error) {
	// Ensure the input is square using the centralized validator.
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err) // wrap with call-site tag
	}
	// Construct the identity of matching dimension.
	return NewIdentity(m.Rows())
}

// ---------- Comparison ----------

// AllClose reports whether a and b have the same shape and agree element-wise
// within tolerance eps: |a[i,j] - b[i,j]| ≤ eps for all (i, j).
// Implementation:
//   - Stage 1: validate both operands non-nil and eps finite; normalize a
//     negative eps to its absolute value.
//   - Stage 2: shape mismatch is simply "not close" (false, nil); otherwise
//     scan in fixed i→j order with early exit on the first violation.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrNaNInf (NaN/Inf tolerance).
//
// Determinism: fixed scan order; short-circuits on the first mismatch.
// Complexity: O(r*c), Space O(1).
//
// AI-Hints:
//   - Use the same eps you handed to RREF when asserting reduction results;
//     a NaN element makes every comparison fail, which is the desired signal.
func AllClose(a, b Matrix, eps float64) (bool, error) {
	// Validate operands.
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	// Normalize tolerance to a non-negative finite value.
	if isNonFinite(eps) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if eps < 0 {
		eps = -eps
	}

	// Different shapes are not an error — they are simply not close.
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}

	rows, cols := a.Rows(), a.Cols()
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ { // fixed i→j order
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			bv, err = b.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			// NaN never compares close; the explicit check keeps the
			// contract obvious instead of relying on NaN comparison quirks.
			if math.IsNaN(av) || math.IsNaN(bv) || math.Abs(av-bv) > eps {
				return false, nil
			}
		}
	}

	return true, nil
}
