// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseNegativeDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseNegativeDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)              // attempt to create with negative rows
	require.ErrorIs(t, err, matrix.ErrBadShape)   // expect ErrBadShape

	_, err = matrix.NewDense(5, -2)               // attempt to create with negative columns
	require.ErrorIs(t, err, matrix.ErrBadShape)   // expect ErrBadShape
}

// TestNewDenseEmptyShapes verifies that degenerate empty matrices are legal values.
func TestNewDenseEmptyShapes(t *testing.T) {
	for _, shape := range [][2]int{{0, 0}, {0, 3}, {3, 0}} {
		m, err := matrix.NewDense(shape[0], shape[1]) // build each degenerate shape
		require.NoError(t, err)                       // empty matrices must construct
		require.Equal(t, shape[0], m.Rows())          // rows reported faithfully
		require.Equal(t, shape[1], m.Cols())          // cols reported faithfully
	}
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4                    // define expected row and column counts
	m, err := matrix.NewDense(rows, cols) // create a Dense matrix of size 3x4
	require.NoError(t, err)               // assert no error on valid dimensions

	require.Equal(t, rows, m.Rows()) // assert Rows() equals expected rows
	require.Equal(t, cols, m.Cols()) // assert Cols() equals expected cols
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // create a 2x2 Dense matrix
	require.NoError(t, err)         // assert matrix creation succeeded

	_, err = m.At(-1, 0)                          // attempt At() with negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // attempt At() with column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23)                       // attempt Set() with row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(0, -1, 4.56)                      // attempt Set() with negative column index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3) // create a 2x3 Dense matrix
	require.NoError(t, err)         // ensure valid creation

	err = m.Set(1, 2, 7.89) // set element at row 1, column 2
	require.NoError(t, err) // assert Set() succeeded

	val, err := m.At(1, 2)      // retrieve the set element
	require.NoError(t, err)     // assert At() succeeded
	require.Equal(t, 7.89, val) // assert retrieved value matches set value
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // create a 2x2 Dense matrix
	require.NoError(t, err)         // validate creation

	// initialize matrix elements to distinct values
	_ = m.Set(0, 0, 1.0)
	_ = m.Set(1, 1, 2.0)

	clone := m.Clone() // clone the matrix

	// modify the clone, but not the original
	_ = clone.Set(0, 0, 3.0)

	origVal, err := m.At(0, 0)     // retrieve original matrix element
	require.NoError(t, err)        // assert At() succeeded on original
	require.Equal(t, 1.0, origVal) // expect original remains unchanged

	cloneVal, err := clone.At(0, 0) // retrieve clone's element
	require.NoError(t, err)         // assert At() succeeded on clone
	require.Equal(t, 3.0, cloneVal) // expect clone reflects new value
}

// TestPrecisionQuantization verifies that single-precision matrices quantize
// every stored value through float32, and that Clone preserves the tag.
func TestPrecisionQuantization(t *testing.T) {
	m, err := matrix.NewDenseOf(1, 1, matrix.Float32) // single-precision 1x1
	require.NoError(t, err)                           // construction must succeed
	require.Equal(t, matrix.Float32, m.Precision())   // tag reported faithfully

	const v = 0.1                                       // not representable exactly in float32
	require.NoError(t, m.Set(0, 0, v))                  // store through the precision policy
	got, err := m.At(0, 0)                              // read the stored value
	require.NoError(t, err)                             // read must succeed
	require.Equal(t, float64(float32(v)), got)          // stored value is the float32 rounding
	require.NotEqual(t, v, got)                         // and differs from the double value

	clone := m.Clone().(*matrix.Dense)                // clone keeps the concrete type
	require.Equal(t, matrix.Float32, clone.Precision()) // and the precision tag
}

// TestPrecisionString checks the stable names of the precision tags.
func TestPrecisionString(t *testing.T) {
	require.Equal(t, "float64", matrix.Float64.String()) // default width name
	require.Equal(t, "float32", matrix.Float32.String()) // single width name
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // create a 2x2 matrix for formatting test
	require.NoError(t, err)         // ensure valid creation

	// populate matrix with sample values
	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 1, 2)
	_ = m.Set(1, 0, 3)
	_ = m.Set(1, 1, 4)

	expected := "[1, 2]\n[3, 4]\n"         // define expected string output
	require.Equal(t, expected, m.String()) // assert String() output matches expected format
}
