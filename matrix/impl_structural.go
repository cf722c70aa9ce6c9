// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - In-place structural mutation: clear/fill/randomize, row & column append,
//     destructive reshape, and sort.
//
// Atomicity:
//   - Every operation that changes the shape validates first, builds the new
//     buffer completely, then swaps buffer and dimensions together. A failed
//     call leaves the matrix untouched.
//
// Complexity quicksheet:
//   - Clear/Fill/Randomize/AddRow/AddColumn/reshape: O(r*c); Sort: O(n log n), n = r*c.

package matrix

import (
	"math"

	"golang.org/x/exp/slices"
)

const (
	opRandomize       = "Randomize"
	opAddColumn       = "AddColumn"
	opAddRow          = "AddRow"
	opSetRowsAndClear = "SetRowsAndClear"
	opSetColsAndClear = "SetColsAndClear"
)

// Clear replaces the buffer with a fresh Rows()×Cols() zero buffer.
// Prior contents are discarded.
func (m *Matrix) Clear() {
	m.data = make([]int32, m.r*m.c)
}

// Fill reallocates the buffer and sets every element to v.
func (m *Matrix) Fill(v int32) {
	buf := make([]int32, m.r*m.c)
	for i := range buf {
		buf[i] = v
	}
	m.data = buf
}

// Randomize sets every element, in place and in row-major order, to a value
// drawn uniformly from [0, maxValue] using the matrix's random source.
//
// Errors:
//   - ErrInvalidArgument when maxValue < 0 or maxValue > math.MaxInt32.
func (m *Matrix) Randomize(maxValue int) error {
	if maxValue < 0 || maxValue > math.MaxInt32 {
		return matrixErrorf(opRandomize, ErrInvalidArgument)
	}
	if m.rng == nil {
		m.rng = newTimeRNG() // zero-value Matrix{} has no source yet
	}
	fillUniform(m.data, m.rng, maxValue)

	return nil
}

// AddColumn appends one column; values[i] lands at (i, Cols()).
// MAIN DESCRIPTION:
//   - Physically reshapes every row: a new (r)×(c+1) buffer is built and swapped in.
//
// Behavior highlights:
//   - At least Rows() values are required. Values beyond Rows() are ignored.
//   - Appending to a 0-row matrix only bumps the column count.
//
// Errors:
//   - ErrInvalidDimension when len(values) < Rows() or the grown shape
//     cannot be addressed.
//
// Complexity:
//   - Time O(r*c), Space O(r*(c+1)).
func (m *Matrix) AddColumn(values ...int32) error {
	if err := ValidateShape(m.r, m.c+1); err != nil {
		return matrixErrorf(opAddColumn, err)
	}
	if len(values) < m.r {
		return matrixErrorf(opAddColumn, ErrInvalidDimension)
	}
	nc := m.c + 1
	buf := make([]int32, m.r*nc)
	var i, src, dst int
	for i = 0; i < m.r; i++ {
		src = i * m.c
		dst = i * nc
		copy(buf[dst:dst+m.c], m.data[src:src+m.c])
		buf[dst+m.c] = values[i]
	}
	m.data, m.c = buf, nc
	log.Debugw("column appended", "rows", m.r, "cols", m.c)

	return nil
}

// AddRow appends one row holding a copy of values.
//
// Errors:
//   - ErrInvalidDimension when len(values) != Cols() or the grown shape
//     cannot be addressed.
//
// Complexity:
//   - Time O(r*c), Space O((r+1)*c).
func (m *Matrix) AddRow(values ...int32) error {
	if err := ValidateShape(m.r+1, m.c); err != nil {
		return matrixErrorf(opAddRow, err)
	}
	if len(values) != m.c {
		return matrixErrorf(opAddRow, ErrInvalidDimension)
	}
	buf := make([]int32, (m.r+1)*m.c)
	copy(buf, m.data)
	copy(buf[m.r*m.c:], values)
	m.data, m.r = buf, m.r+1
	log.Debugw("row appended", "rows", m.r, "cols", m.c)

	return nil
}

// SetRowsAndClear changes the row count to n and RESETS THE WHOLE BUFFER TO
// ZERO. This is a reshape-and-clear, not a resize: no prior value survives.
//
// Errors:
//   - ErrInvalidDimension when n < 0 (matrix left untouched).
func (m *Matrix) SetRowsAndClear(n int) error {
	if err := ValidateShape(n, m.c); err != nil {
		return matrixErrorf(opSetRowsAndClear, err)
	}
	log.Debugw("reshape clears all elements", "fromRows", m.r, "toRows", n, "cols", m.c)
	m.data, m.r = make([]int32, n*m.c), n

	return nil
}

// SetColsAndClear changes the column count to n and RESETS THE WHOLE BUFFER
// TO ZERO. See SetRowsAndClear.
//
// Errors:
//   - ErrInvalidDimension when n < 0 (matrix left untouched).
func (m *Matrix) SetColsAndClear(n int) error {
	if err := ValidateShape(m.r, n); err != nil {
		return matrixErrorf(opSetColsAndClear, err)
	}
	log.Debugw("reshape clears all elements", "rows", m.r, "fromCols", m.c, "toCols", n)
	m.data, m.c = make([]int32, m.r*n), n

	return nil
}

// Sort orders all elements ascending and re-packs them row-major into the
// same shape.
func (m *Matrix) Sort() {
	slices.Sort(m.data)
}
