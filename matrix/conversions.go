// SPDX-License-Identifier: MIT
// Package matrix: flat-slice conversions (row-major) used as the data
// interchange boundary with code that does not use *Matrix.

package matrix

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// ToSlice returns a row-major copy of all elements.
func (m *Matrix) ToSlice() []int32 {
	out := slices.Clone(m.data)
	if out == nil {
		out = []int32{}
	}

	return out
}

// Load overwrites the matrix, row-major, with values.
//
// Errors:
//   - ErrInvalidArgument when len(values) != Rows()*Cols() (matrix left untouched).
//
// Complexity: O(r*c).
func (m *Matrix) Load(values ...int32) error {
	if len(values) != len(m.data) {
		return matrixErrorf("Load", fmt.Errorf("got %d values for %dx%d: %w", len(values), m.r, m.c, ErrInvalidArgument))
	}
	copy(m.data, values)

	return nil
}
