// SPDX-License-Identifier: MIT
// Package: matrix
//
// Row-level and corner accessors, plus whole-buffer import/export as 2D slices.
// Every accessor copies: no caller ever receives a slice aliasing m.data.

package matrix

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/exp/slices"
)

const (
	ctxSetRow     = "SetRow"
	ctxRow        = "Row"
	ctxFirst      = "FirstElement"
	ctxLast       = "LastElement"
	ctxFirstOfRow = "FirstOfRow"
	ctxLastOfRow  = "LastOfRow"
	ctxSetData    = "SetData"
)

// SetRow overwrites row `row` with values.
//
// Behavior highlights:
//   - len(values) must equal Cols(). The column count is never changed by a
//     single-row write; a length mismatch is rejected instead.
//
// Errors:
//   - ErrNilArgument (values nil), ErrIndexOutOfRange (bad row),
//     ErrInvalidDimension (length mismatch).
//
// Complexity: O(c).
func (m *Matrix) SetRow(row int, values []int32) error {
	if values == nil {
		return matrixErrorf(ctxSetRow, ErrNilArgument)
	}
	if err := ValidateRowIndex(row, m.r); err != nil {
		return denseErrorf(ctxSetRow, row, 0, err)
	}
	if len(values) != m.c {
		return matrixErrorf(ctxSetRow, ErrInvalidDimension)
	}
	copy(m.data[row*m.c:(row+1)*m.c], values)

	return nil
}

// Row returns a copy of row `row`.
// Errors with ErrIndexOutOfRange for a bad row.
func (m *Matrix) Row(row int) ([]int32, error) {
	if err := ValidateRowIndex(row, m.r); err != nil {
		return nil, denseErrorf(ctxRow, row, 0, err)
	}

	return slices.Clone(m.data[row*m.c : (row+1)*m.c]), nil
}

// FirstElement returns the element at (0, 0).
// An empty matrix yields ErrIndexOutOfRange.
func (m *Matrix) FirstElement() (int32, error) {
	off, err := m.indexOf(0, 0)
	if err != nil {
		return 0, denseErrorf(ctxFirst, 0, 0, err)
	}

	return m.data[off], nil
}

// LastElement returns the element at (Rows()-1, Cols()-1).
// An empty matrix yields ErrIndexOutOfRange.
func (m *Matrix) LastElement() (int32, error) {
	off, err := m.indexOf(m.r-1, m.c-1)
	if err != nil {
		return 0, denseErrorf(ctxLast, m.r-1, m.c-1, err)
	}

	return m.data[off], nil
}

// FirstOfRow returns the first element of row `row`.
func (m *Matrix) FirstOfRow(row int) (int32, error) {
	off, err := m.indexOf(row, 0)
	if err != nil {
		return 0, denseErrorf(ctxFirstOfRow, row, 0, err)
	}

	return m.data[off], nil
}

// LastOfRow returns the last element of row `row`.
func (m *Matrix) LastOfRow(row int) (int32, error) {
	off, err := m.indexOf(row, m.c-1)
	if err != nil {
		return 0, denseErrorf(ctxLastOfRow, row, m.c-1, err)
	}

	return m.data[off], nil
}

// Data returns the contents as a freshly allocated [][]int32 (rows × cols).
// Complexity: O(r*c).
func (m *Matrix) Data() [][]int32 {
	out := make([][]int32, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = slices.Clone(m.data[i*m.c : (i+1)*m.c])
		if out[i] == nil {
			out[i] = []int32{} // keep zero-column rows non-nil
		}
	}

	return out
}

// SetData replaces every element with the values of data, which must have
// exactly the current shape. Values are copied.
//
// Errors:
//   - ErrNilArgument (nil data), ErrInvalidDimension (ragged data),
//     ErrDimensionMismatch (shape differs from Rows()×Cols()).
func (m *Matrix) SetData(data [][]int32) error {
	r, c, err := ValidateRectangular(data)
	if err != nil {
		return matrixErrorf(ctxSetData, err)
	}
	if r != m.r || (r > 0 && c != m.c) {
		return matrixErrorf(ctxSetData, ErrDimensionMismatch)
	}
	for i := 0; i < r; i++ {
		copy(m.data[i*m.c:(i+1)*m.c], data[i])
	}

	return nil
}

// SameShape reports whether data is a rectangular 2D slice of shape Rows()×Cols().
// For a matrix with zero rows only the row count is compared.
func (m *Matrix) SameShape(data [][]int32) bool {
	r, c, err := ValidateRectangular(data)
	if err != nil {
		return false
	}

	return r == m.r && (r == 0 || c == m.c)
}

// Equal reports whether m and other have the same shape and elements.
// Two nil matrices are equal.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}

	return m.r == other.r && m.c == other.c && cmp.Equal(m.data, other.data, cmpopts.EquateEmpty())
}
