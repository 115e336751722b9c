// SPDX-License-Identifier: MIT
// Package matrix: numeric normalization — the single ingestion point that
// turns arbitrary rectangular numeric input into an owned *Dense value.
//
// Purpose:
//   - Accept an existing Matrix, a [][]float64, or any rectangular nested
//     slice/array of Go numeric values, and produce an independent copy.
//   - Preserve single precision when (and only when) the input is already a
//     single-precision Dense; widen everything else to double precision.
//   - Reject ragged input (ErrBadShape) and non-numeric elements
//     (ErrNonNumeric) before any matrix value is ever constructed.
//
// Every elementary row operation and the RREF engine funnel their input
// through Normalize, which is what guarantees the package-wide invariant:
// a returned matrix never aliases caller storage.

package matrix

import "reflect"

// Normalize converts input into a freshly allocated *Dense.
// Implementation:
//   - Stage 1: nil guard; dispatch on concrete type (*Dense, Matrix,
//     [][]float64) with copy fast-paths.
//   - Stage 2: otherwise walk the value reflectively as a rectangular
//     two-level container of numeric elements.
//
// Behavior highlights:
//   - Always copies, even when handed a *Dense of the target precision;
//     the result never shares storage with the input.
//   - A single-precision *Dense stays single-precision; every other input
//     lands in Float64.
//   - Deterministic row-major ingestion order (i→j).
//
// Inputs:
//   - input: Matrix value or rectangular array-like numeric data.
//   - opts : numeric policy; WithValidateNaNInf rejects non-finite elements.
//
// Returns:
//   - *Dense: independent matrix of the same shape as the input.
//
// Errors:
//   - ErrNilMatrix  (nil input or nil *Dense).
//   - ErrBadShape   (not 2-D, ragged rows).
//   - ErrNonNumeric (element not convertible to float64).
//   - ErrNaNInf     (non-finite element under WithValidateNaNInf).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new matrix.
//
// AI-Hints:
//   - Pass *Dense or [][]float64 to skip reflection entirely.
//   - Use FromRows when the input is statically [][]float64; it shares this
//     code path with a clearer signature.
func Normalize(input any, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	// Stage 1: nil guard and typed fast-paths.
	if input == nil {
		return nil, matrixErrorf(opNormalize, ErrNilMatrix)
	}
	switch src := input.(type) {
	case *Dense:
		return cloneDense(src, o)
	case Matrix:
		return copyMatrix(src, o)
	case [][]float64:
		return copyFloat64Rows(src, o)
	}

	// Stage 2: generic reflective ingestion.
	return reflectRows(input, o)
}

// cloneDense produces an independent copy of src, preserving its precision.
// Complexity: O(r*c).
func cloneDense(src *Dense, o Options) (*Dense, error) {
	// Guard typed-nil pointers hidden behind the any parameter.
	if src == nil {
		return nil, matrixErrorf(opNormalize, ErrNilMatrix)
	}
	out, err := NewDenseOf(src.r, src.c, src.prec)
	if err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}
	// Flat copy; values are already quantized to src's precision.
	copy(out.data, src.data)

	// Optional numeric policy scan.
	if o.validateNaNInf {
		for idx := range out.data {
			if isNonFinite(out.data[idx]) {
				return nil, matrixErrorf(opNormalize, ErrNaNInf)
			}
		}
	}

	return out, nil
}

// copyMatrix copies a foreign Matrix implementation element by element.
// The interface carries no precision information, so the result is Float64.
// Complexity: O(r*c) At calls.
func copyMatrix(src Matrix, o Options) (*Dense, error) {
	rows, cols := src.Rows(), src.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ { // fixed i→j order
		for j = 0; j < cols; j++ {
			v, err = src.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opNormalize, err)
			}
			if o.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf(opNormalize, ErrNaNInf)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// copyFloat64Rows ingests the common [][]float64 shape without reflection.
// Ragged rows are rejected before any element is copied.
// Complexity: O(r*c).
func copyFloat64Rows(rows [][]float64, o Options) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	// Reject ragged input up front so no partial matrix is ever visible.
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opNormalize, ErrBadShape)
		}
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if o.validateNaNInf && isNonFinite(rows[i][j]) {
				return nil, matrixErrorf(opNormalize, ErrNaNInf)
			}
			out.data[i*c+j] = rows[i][j]
		}
	}

	return out, nil
}

// reflectRows walks an arbitrary two-level slice/array structure.
// Stage 1 (Validate): outer value must be a slice or array; every row must
// be a slice or array of identical length.
// Stage 2 (Execute): convert each element through asFloat in fixed i→j order.
// Complexity: O(r*c) reflective accesses.
func reflectRows(input any, o Options) (*Dense, error) {
	outer := reflect.ValueOf(input)
	if outer.Kind() != reflect.Slice && outer.Kind() != reflect.Array {
		return nil, matrixErrorf(opNormalize, ErrBadShape)
	}

	rows := outer.Len()
	cols := 0
	if rows > 0 {
		first := unwrap(outer.Index(0))
		if first.Kind() != reflect.Slice && first.Kind() != reflect.Array {
			return nil, matrixErrorf(opNormalize, ErrBadShape)
		}
		cols = first.Len()
	}
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}

	var i, j int
	var row, elem reflect.Value
	var v float64
	var ok bool
	for i = 0; i < rows; i++ {
		row = unwrap(outer.Index(i))
		// Every row must be a container of exactly cols elements.
		if row.Kind() != reflect.Slice && row.Kind() != reflect.Array {
			return nil, matrixErrorf(opNormalize, ErrBadShape)
		}
		if row.Len() != cols {
			return nil, matrixErrorf(opNormalize, ErrBadShape)
		}
		for j = 0; j < cols; j++ {
			elem = unwrap(row.Index(j))
			v, ok = asFloat(elem)
			if !ok {
				return nil, matrixErrorf(opNormalize, ErrNonNumeric)
			}
			if o.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf(opNormalize, ErrNaNInf)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// unwrap peels interface indirection so []any rows and elements resolve to
// their dynamic values. Complexity: O(1).
func unwrap(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}

	return v
}

// asFloat converts any Go numeric kind to float64.
// Returns ok=false for every non-numeric kind (string, bool, struct, ...).
// Complexity: O(1).
func asFloat(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}
