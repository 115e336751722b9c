// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package, plus the canonical wrapping helper. All operations MUST return
// these sentinels and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions; panics are reserved for
// programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with matrixErrorf at the outer
// boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil argument -> shape -> element type -> numeric policy -> index bounds.

var (
	// ErrBadShape is returned when input rows have inconsistent lengths,
	// when a requested dimension is negative, or when a value that is not
	// a two-dimensional rectangular container is offered for normalization.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonNumeric indicates an input element that cannot be interpreted
	// as a numeric value during normalization (e.g., a string or struct).
	ErrNonNumeric = errors.New("matrix: element is not numeric")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) and the elementary row operations
	// MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands where equal or square shapes are required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) or a
	// nil normalization input was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (opt-in, see options.go).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNormalize  = "Normalize"
	opRowSwap    = "RowSwap"
	opRowScale   = "RowScale"
	opRowReplace = "RowReplace"
	opRREF       = "RREF"
	opAllClose   = "AllClose"
	opFromRows   = "FromRows"
	opFromYAML   = "FromYAML"
	opToYAML     = "ToYAML"
	opToRows     = "ToRows"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/errors.As keep matching the underlying sentinel.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
