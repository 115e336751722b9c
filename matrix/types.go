// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage and the
// row-operation kernels. This file intentionally contains ONLY the public
// Matrix interface and the element-precision tag. Errors and options live
// in dedicated files (errors.go, options.go) per the package conventions.
package matrix

// Precision identifies the element width of a matrix value. It is fixed for
// the lifetime of a given matrix and inherited by every matrix derived from
// an operation, so single-precision inputs stay single-precision end to end.
type Precision uint8

const (
	// Float64 is the default element width: IEEE-754 double precision.
	Float64 Precision = iota

	// Float32 marks a matrix whose elements carry only single precision.
	// Values are still held in float64 storage, but every write is passed
	// through float32 so the representable set matches true float32 data.
	Float32
)

// String returns a stable human-readable name for the precision tag.
// Complexity: O(1).
func (p Precision) String() string {
	if p == Float32 {
		return "float32"
	}

	return "float64"
}

// quantize rounds v to the representable set of the precision p.
// Float64 is the identity; Float32 routes through a float32 conversion.
// Complexity: O(1).
func (p Precision) quantize(v float64) float64 {
	if p == Float32 {
		return float64(float32(v))
	}

	return v
}

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns clear errors on misuse.
// Users can implement this interface to provide custom storage layouts;
// all package operations accept any implementation and return *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
