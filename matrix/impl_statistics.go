// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide aggregate queries (Min, Max, Sum, Average, CountOccurrences) and
//     row-major search (IndexOf, IndexFrom) over the flat buffer.
//
// Determinism & Performance:
//   - Single flat pass 0..r*c-1 for every aggregate; no allocations.
//   - Sum accumulates into int64. An int32 matrix needs more than 2^32
//     elements before the accumulator can overflow.

package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMin       = "Min"
	opMax       = "Max"
	opAverage   = "Average"
	opIndexFrom = "IndexFrom"
)

// notFound is the (row, col) sentinel reported when a search has no match.
const notFound = -1

// Min returns the smallest element.
// The scan is seeded with element (0,0); an empty matrix yields ErrIndexOutOfRange.
// Complexity: O(r*c).
func (m *Matrix) Min() (int32, error) {
	if m.IsEmpty() {
		return 0, matrixErrorf(opMin, ErrIndexOutOfRange)
	}
	lo := m.data[0]
	for _, v := range m.data[1:] {
		if v < lo {
			lo = v
		}
	}

	return lo, nil
}

// Max returns the largest element.
// The scan is seeded with element (0,0); an empty matrix yields ErrIndexOutOfRange.
// Complexity: O(r*c).
func (m *Matrix) Max() (int32, error) {
	if m.IsEmpty() {
		return 0, matrixErrorf(opMax, ErrIndexOutOfRange)
	}
	hi := m.data[0]
	for _, v := range m.data[1:] {
		if v > hi {
			hi = v
		}
	}

	return hi, nil
}

// Sum returns the total of all elements (0 for an empty matrix).
// Complexity: O(r*c).
func (m *Matrix) Sum() int64 {
	var s int64
	for _, v := range m.data {
		s += int64(v)
	}

	return s
}

// Average returns Sum()/(Rows()*Cols()) using truncating integer division.
//
// Behavior highlights:
//   - Truncation is toward zero: the average of {-1, -2} is -1.
//   - The mean of int32 values always fits in int32.
//
// Errors:
//   - ErrDivideByZero when the matrix has no elements.
//
// Complexity: O(r*c).
func (m *Matrix) Average() (int32, error) {
	n := int64(len(m.data))
	if n == 0 {
		return 0, matrixErrorf(opAverage, ErrDivideByZero)
	}

	return int32(m.Sum() / n), nil
}

// CountOccurrences returns how many elements equal v.
// Complexity: O(r*c).
func (m *Matrix) CountOccurrences(v int32) int {
	var n int
	for _, x := range m.data {
		if x == v {
			n++
		}
	}

	return n
}

// IndexOf returns the (row, col) of the first element equal to v in
// row-major order, or (-1, -1) when absent (including on an empty matrix).
// Complexity: O(r*c).
func (m *Matrix) IndexOf(v int32) (row, col int) {
	if m.IsEmpty() {
		return notFound, notFound
	}
	row, col, _ = m.IndexFrom(0, 0, v)

	return row, col
}

// IndexFrom scans in row-major order starting at (rowStart, colStart) and
// returns the first (row, col) holding v, or (-1, -1) when absent.
//
// Implementation:
//   - Stage 1: validate the start offset (OR-combined range check per axis).
//   - Stage 2: walk the flat buffer from rowStart*c+colStart to the end, so
//     rows after rowStart are scanned from column 0.
//
// Errors:
//   - ErrIndexOutOfRange when rowStart ∉ [0,Rows()) or colStart ∉ [0,Cols()).
//
// Complexity:
//   - Time O(r*c) worst case, Space O(1).
func (m *Matrix) IndexFrom(rowStart, colStart int, v int32) (row, col int, err error) {
	start, err := m.indexOf(rowStart, colStart)
	if err != nil {
		return notFound, notFound, denseErrorf(opIndexFrom, rowStart, colStart, err)
	}
	for off := start; off < len(m.data); off++ {
		if m.data[off] == v {
			return off / m.c, off % m.c, nil
		}
	}

	return notFound, notFound, nil
}
