// SPDX-License-Identifier: MIT
// Package matrix: the RREF engine — Gauss–Jordan elimination with partial
// pivoting, built strictly on top of the three elementary row operations.

package matrix

import "math"

// RREF returns the Reduced Row Echelon Form of m.
// Implementation:
//   - Stage 1: Normalize m into an owned working copy (precision inherited).
//   - Stage 2: Column-major sweep with a pivot-row cursor r:
//     a. stop scanning columns once r reaches Rows;
//     b. among rows r..Rows-1 pick the row with the strictly largest
//     |entry| in the current column (partial pivoting; ties resolve to
//     the earliest row because the comparison is a strict greater-than);
//     c. if that maximum does not exceed eps the column has no usable
//     pivot and stays free — move on with r unchanged;
//     d. swap the selected row into position r (RowSwap);
//     e. scale row r so the pivot becomes exactly 1 (RowScale by the
//     reciprocal of the pre-scaling pivot);
//     f. eliminate the column from every other row, above and below,
//     via RowReplace with jScale=1, kScale=-(that row's entry);
//     g. advance r.
//   - Stage 3: zero out every element with |v| ≤ eps to clean residual
//     rounding noise.
//
// Behavior highlights:
//   - eps serves two roles — pivot admissibility and final cleanup — and
//     both use the single configured value; splitting them would let the
//     two phases disagree about what "zero" means.
//   - Partial pivoting by maximal magnitude improves numerical stability
//     over naive top-to-bottom pivot selection at negligible cost for the
//     matrix sizes this package targets.
//   - Non-square input is fully supported: with more columns than rows the
//     surplus columns stay free (and may hold nonzero entries in the final
//     form); with more rows than columns the sweep exits early once every
//     row carries a pivot.
//   - An all-zero matrix never finds a pivot and is returned unchanged.
//
// Inputs:
//   - m   : source matrix or raw array-like input (read-only; anything Normalize accepts).
//   - opts: WithEpsilon to override DefaultEpsilon (1e-12).
//
// Returns:
//   - *Dense: fresh matrix in reduced row echelon form, same shape as m.
//
// Errors:
//   - ErrNilMatrix / ErrBadShape / ErrNonNumeric / ErrNaNInf (from the
//     initial normalization). The engine introduces no error kinds of its
//     own: every row index it generates is bounded by construction, so the
//     elementary operations it calls cannot fail after normalization.
//
// Determinism:
//   - Fixed column order, fixed pivot-scan order, strict > tie rule, fixed
//     elimination order (rows 0..Rows-1, pivot row skipped). Identical
//     input yields identical output bit for bit.
//
// Complexity:
//   - Time O(r²*c) elimination work; each elementary call copies the
//     working matrix, adding an O(r²*c) copying term per pivot column —
//     acceptable for the modest sizes this package targets, and the price
//     of the no-aliasing guarantee. Space O(r*c).
//
// AI-Hints:
//   - The number of pivots equals the rank of m, observable as the count
//     of leading-1 rows in the result.
//   - RREF is idempotent: RREF(RREF(m)) == RREF(m).
//   - For single-precision matrices pair with WithEpsilon(~1e-6); the
//     default 1e-12 sits below float32 resolution.
func RREF(m any, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	// Stage 1: owned working copy; the only place user errors can arise.
	M, err := Normalize(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opRREF, err)
	}

	rows, cols := M.r, M.c
	r := 0 // next pivot row

	// Stage 2: column-major sweep.
	var (
		c, rr, pivotRow int
		maxVal, val     float64
		pivot, factor   float64
	)
	for c = 0; c < cols; c++ {
		// 2a. Every row already carries a pivot: the form is final.
		if r >= rows {
			break
		}

		// 2b. Partial pivoting: strictly largest |entry| among rows r..rows-1.
		// Seeding the running maximum with eps folds admissibility (2c) into
		// the same strict > comparison used for tie-breaking.
		pivotRow = -1
		maxVal = o.eps
		for rr = r; rr < rows; rr++ {
			val = math.Abs(M.data[rr*cols+c])
			if val > maxVal {
				maxVal = val
				pivotRow = rr
			}
		}
		// 2c. No usable pivot: the column stays free, r stays put.
		if pivotRow < 0 {
			continue
		}

		// 2d. Move the pivot row into position r.
		if pivotRow != r {
			if M, err = RowSwap(M, r, pivotRow); err != nil {
				return nil, matrixErrorf(opRREF, err)
			}
		}

		// 2e. Scale row r so the pivot element becomes exactly 1.
		pivot = M.data[r*cols+c]
		if math.Abs(pivot) > o.eps {
			if M, err = RowScale(M, r, 1.0/pivot); err != nil {
				return nil, matrixErrorf(opRREF, err)
			}
		}

		// 2f. Eliminate column c from every other row, above and below r.
		for rr = 0; rr < rows; rr++ {
			if rr == r {
				continue
			}
			factor = M.data[rr*cols+c]
			if math.Abs(factor) > o.eps {
				if M, err = RowReplace(M, rr, r, 1.0, -factor); err != nil {
					return nil, matrixErrorf(opRREF, err)
				}
			}
		}

		// 2g. Advance the pivot cursor.
		r++
	}

	// Stage 3: cleanup — zero everything at or under the tolerance, so the
	// final form agrees with the pivot phase about what counts as zero.
	for idx := range M.data {
		if math.Abs(M.data[idx]) <= o.eps {
			M.data[idx] = 0.0
		}
	}

	return M, nil
}
