// Package matrix: converters between Dense matrices and external
// representations. YAML is the interchange format of choice here: a matrix
// is simply a sequence of equal-length numeric sequences, which makes
// fixtures trivially hand-editable.

package matrix

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML parses data as a nested YAML sequence and normalizes it into a
// *Dense. Decoding errors are wrapped verbatim; shape and element problems
// surface as the usual normalization sentinels, so a ragged document yields
// ErrBadShape and a non-numeric scalar yields ErrNonNumeric.
//
// Example document:
//
//	- [0, 3, -6]
//	- [3, -7, 8]
//
// Complexity: O(r*c) after decoding.
func FromYAML(data []byte, opts ...Option) (*Dense, error) {
	// Decode into a loose structure; element typing is resolved by Normalize.
	var raw [][]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", opFromYAML, err)
	}
	out, err := Normalize(raw, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromYAML, err)
	}

	return out, nil
}

// ToYAML renders m as a YAML sequence of rows, the inverse of FromYAML.
// Complexity: O(r*c).
func ToYAML(m Matrix) ([]byte, error) {
	rows, err := ToRows(m)
	if err != nil {
		return nil, matrixErrorf(opToYAML, err)
	}
	data, err := yaml.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opToYAML, err)
	}

	return data, nil
}

// ToRows exports m as a freshly allocated [][]float64 that shares no
// storage with m. Empty matrices export as an empty (but non-nil) slice.
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToRows, err)
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([][]float64, rows)
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opToRows, err)
			}
			out[i][j] = v
		}
	}

	return out, nil
}
