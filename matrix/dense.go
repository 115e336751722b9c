// SPDX-License-Identifier: MIT
// Package matrix: Dense is the concrete, row-major implementation of the
// Matrix interface, storing elements in a flat slice for cache friendliness.

package matrix

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// prec is the element-width tag inherited by every derived matrix; when it
// is Float32, every write is quantized through a float32 conversion.
//
// Degenerate shapes (0×n, n×0, 0×0) are legal values: they hold no elements
// and produce no pivots, but participate in the API like any other matrix.
type Dense struct {
	r, c int       // number of rows and columns, both ≥ 0
	prec Precision // element width, fixed for the value's lifetime
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix of double precision, initialized to
// zeros.
// Stage 1 (Validate): ensure rows and cols ≥ 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	return NewDenseOf(rows, cols, Float64)
}

// NewDenseOf creates an r×c zero Dense matrix with an explicit element
// precision. Negative dimensions are rejected with ErrBadShape; zero
// dimensions build a legal empty matrix.
// Complexity: O(r*c) time and memory.
func NewDenseOf(rows, cols int, prec Precision) (*Dense, error) {
	// Validate dimensions: empty is fine, negative is not.
	if rows < 0 || cols < 0 {
		return nil, denseErrorf("New", rows, cols, ErrBadShape)
	}
	// Allocate flat slice (length 0 for degenerate shapes).
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, prec: prec, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// Precision returns the element-width tag of the matrix.
// Complexity: O(1).
func (m *Dense) Precision() Precision {
	return m.prec
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col), quantized to the matrix precision.
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): quantize and write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value through the precision policy
	m.data[idx] = m.prec.quantize(v)

	return nil
}

// Clone returns a deep copy of the Dense matrix, precision included.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, prec: m.prec, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
