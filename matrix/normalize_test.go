// Package matrix_test contains unit tests for numeric normalization — the
// ingestion step every operation in the package funnels its input through.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/stretchr/testify/require"
)

// stubMatrix is a minimal foreign Matrix implementation used to exercise
// the generic (non-*Dense) normalization path.
type stubMatrix struct {
	rows [][]float64
}

func (s *stubMatrix) Rows() int { return len(s.rows) }
func (s *stubMatrix) Cols() int {
	if len(s.rows) == 0 {
		return 0
	}
	return len(s.rows[0])
}
func (s *stubMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= s.Rows() || j < 0 || j >= s.Cols() {
		return 0, fmt.Errorf("stub: %w", matrix.ErrOutOfRange)
	}
	return s.rows[i][j], nil
}
func (s *stubMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= s.Rows() || j < 0 || j >= s.Cols() {
		return fmt.Errorf("stub: %w", matrix.ErrOutOfRange)
	}
	s.rows[i][j] = v
	return nil
}
func (s *stubMatrix) Clone() matrix.Matrix {
	out := make([][]float64, len(s.rows))
	for i := range s.rows {
		out[i] = append([]float64(nil), s.rows[i]...)
	}
	return &stubMatrix{rows: out}
}

// TestNormalizeFloat64Rows verifies the [][]float64 fast path copies values faithfully.
func TestNormalizeFloat64Rows(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}} // plain rectangular input
	m, err := matrix.Normalize(src)    // normalize through the fast path
	require.NoError(t, err)            // ingestion must succeed

	require.Equal(t, 2, m.Rows()) // shape preserved: rows
	require.Equal(t, 2, m.Cols()) // shape preserved: cols
	v, err := m.At(1, 0)          // spot-check one element
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

// TestNormalizeNeverAliases ensures the result owns its storage: mutating
// the source after normalization must not be observable through the result.
func TestNormalizeNeverAliases(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}} // caller-owned input
	m, err := matrix.Normalize(src)    // take an owned copy
	require.NoError(t, err)

	src[0][0] = 99 // mutate the caller's storage after the fact

	v, err := m.At(0, 0)     // read the normalized copy
	require.NoError(t, err)  // read must succeed
	require.Equal(t, 1.0, v) // copy is unaffected by the source mutation
}

// TestNormalizeMixedNumericKinds verifies reflective ingestion widens every
// Go numeric kind to float64.
func TestNormalizeMixedNumericKinds(t *testing.T) {
	src := [][]any{
		{int(1), int8(2), uint16(3)},        // assorted integer kinds
		{float32(4.5), float64(5.5), int64(-6)}, // floats and a negative int64
	}
	m, err := matrix.Normalize(src) // reflective path
	require.NoError(t, err)         // all elements are numeric

	want, err := matrix.FromRows([][]float64{{1, 2, 3}, {4.5, 5.5, -6}})
	require.NoError(t, err)
	ok, err := matrix.AllClose(m, want, 0) // exact match expected
	require.NoError(t, err)
	require.True(t, ok)
}

// TestNormalizeIntRows verifies plain [][]int input converts without loss.
func TestNormalizeIntRows(t *testing.T) {
	m, err := matrix.Normalize([][]int{{7, 8}, {9, 10}}) // integer rows
	require.NoError(t, err)                              // ingestion succeeds

	v, err := m.At(1, 1) // spot-check conversion
	require.NoError(t, err)
	require.Equal(t, 10.0, v)
}

// TestNormalizeRaggedRows ensures inconsistent row lengths fail with ErrBadShape
// before any matrix value is constructed.
func TestNormalizeRaggedRows(t *testing.T) {
	_, err := matrix.Normalize([][]float64{{1, 2}, {3}}) // ragged fast path
	require.ErrorIs(t, err, matrix.ErrBadShape)          // expect ErrBadShape

	_, err = matrix.Normalize([][]any{{1, 2}, {3}}) // ragged reflective path
	require.ErrorIs(t, err, matrix.ErrBadShape)     // expect ErrBadShape
}

// TestNormalizeNonNumeric ensures non-numeric elements fail with ErrNonNumeric.
func TestNormalizeNonNumeric(t *testing.T) {
	_, err := matrix.Normalize([][]any{{1, "two"}})  // a string element
	require.ErrorIs(t, err, matrix.ErrNonNumeric)    // expect ErrNonNumeric

	_, err = matrix.Normalize([][]any{{true, false}}) // bool is not numeric here
	require.ErrorIs(t, err, matrix.ErrNonNumeric)     // expect ErrNonNumeric
}

// TestNormalizeNotTwoDimensional ensures scalars and flat slices are rejected.
func TestNormalizeNotTwoDimensional(t *testing.T) {
	_, err := matrix.Normalize(42)              // scalar input
	require.ErrorIs(t, err, matrix.ErrBadShape) // not a 2-D container

	_, err = matrix.Normalize([]float64{1, 2, 3}) // flat vector input
	require.ErrorIs(t, err, matrix.ErrBadShape)   // rows must themselves be sequences
}

// TestNormalizeNil ensures a nil input fails with ErrNilMatrix.
func TestNormalizeNil(t *testing.T) {
	_, err := matrix.Normalize(nil)              // untyped nil
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // expect ErrNilMatrix

	var d *matrix.Dense                          // typed nil *Dense behind any
	_, err = matrix.Normalize(d)                 // must not panic
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // expect ErrNilMatrix
}

// TestNormalizeEmpty ensures degenerate inputs produce legal empty matrices.
func TestNormalizeEmpty(t *testing.T) {
	m, err := matrix.Normalize([][]float64{}) // zero rows
	require.NoError(t, err)                   // empty is legal
	require.Equal(t, 0, m.Rows())             // 0x0 result
	require.Equal(t, 0, m.Cols())

	m, err = matrix.Normalize([][]float64{{}, {}}) // two empty rows
	require.NoError(t, err)                        // 2x0 is legal
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 0, m.Cols())
}

// TestNormalizeDensePreservesPrecision verifies the one case that stays
// single-precision: an existing Float32 Dense input.
func TestNormalizeDensePreservesPrecision(t *testing.T) {
	src, err := matrix.NewDenseOf(1, 2, matrix.Float32) // single-precision source
	require.NoError(t, err)
	require.NoError(t, src.Set(0, 0, 1.5)) // populate a value

	m, err := matrix.Normalize(src) // normalize the Dense itself
	require.NoError(t, err)
	require.Equal(t, matrix.Float32, m.Precision()) // precision preserved

	// Still an independent copy even at matching precision.
	require.NoError(t, src.Set(0, 0, -3))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.5, v) // result unaffected by source mutation
}

// TestNormalizeForeignMatrix verifies the generic Matrix path copies via At
// and lands in double precision.
func TestNormalizeForeignMatrix(t *testing.T) {
	stub := &stubMatrix{rows: [][]float64{{1, 2}, {3, 4}}} // foreign implementation
	m, err := matrix.Normalize(stub)                       // generic copy path
	require.NoError(t, err)
	require.Equal(t, matrix.Float64, m.Precision()) // interface carries no precision

	v, err := m.At(0, 1) // element copied faithfully
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
}

// TestNormalizeValidateNaNInf exercises the opt-in finite-value policy.
func TestNormalizeValidateNaNInf(t *testing.T) {
	src := [][]float64{{1, math.NaN()}} // a NaN element

	// Default policy: NaN passes through like any float.
	m, err := matrix.Normalize(src)
	require.NoError(t, err)
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v)) // NaN preserved verbatim

	// Strict policy: ingestion is rejected with ErrNaNInf.
	_, err = matrix.Normalize(src, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// Same policy on the reflective path with +Inf.
	_, err = matrix.Normalize([][]any{{math.Inf(1)}}, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
