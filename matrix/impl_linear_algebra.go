// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic surface of *Matrix: elementwise sum
// and product, matrix multiplication, scalar multiplication, transpose and
// horizontal flip.
//
// Purpose:
//   - Every operation returns a NEW, independently owned result; operands are
//     never mutated and never aliased into the result.
//   - Binary elementwise operations fail with ErrDimensionMismatch when the
//     shapes differ. Mul fails when a.Cols != b.Rows.
//
// Notes:
//   - The [][]int32 variants (AddData, HadamardData, MulData) serve callers
//     that keep their data in native 2D slices; they validate the slice shape,
//     run the same kernels and return freshly allocated slices.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd          = "Add"
	opHadamard     = "Hadamard"
	opMul          = "Mul"
	opAddData      = "AddData"
	opHadamardData = "HadamardData"
	opMulData      = "MulData"
	opMultiply     = "Multiply"
)

// Add computes the element-wise sum C = A + B and returns a fresh result.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(m, other).
//   - Stage 2: single flat loop via ewBinary.
//
// Errors:
//   - ErrNilArgument (other nil), ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return ewBinary(m, other, ewAdd), nil
}

// Hadamard computes the element-wise product C = A ∘ B.
//
// Errors:
//   - ErrNilArgument (other nil), ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) Hadamard(other *Matrix) (*Matrix, error) {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return ewBinary(m, other, ewMul), nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: validate other (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j over row-major strides, skipping zero A[i,k].
//
// Behavior highlights:
//   - Deterministic triple loop; one allocation for C (shape A.Rows × B.Cols).
//
// Errors:
//   - ErrNilArgument (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := m.r, m.c, other.c
	res := m.derive(aRows, bCols)

	var (
		i, j, k                            int
		av                                 int32
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = m.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * other.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are k * m[i,j].
// Complexity: O(r*c).
func (m *Matrix) Scale(k int32) *Matrix {
	return ewUnary(m, func(x int32) int32 { return x * k })
}

// Transpose returns a new Cols()×Rows() matrix with result[j][i] = m[i][j].
// Complexity: O(r*c).
func (m *Matrix) Transpose() *Matrix {
	rows, cols := m.r, m.c
	res := m.derive(cols, rows)
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res
}

// FlipHorizontal returns a new matrix with every row reversed:
// result[i][j] = m[i][Cols()-1-j].
// Complexity: O(r*c).
func (m *Matrix) FlipHorizontal() *Matrix {
	res := m.derive(m.r, m.c)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[base+m.c-1-j] = m.data[base+j]
		}
	}

	return res
}

// fromData wraps a rectangular 2D slice as a matrix sharing m's config.
// The data is copied. An empty outer slice carries no column count, so it
// takes m's, matching SameShape.
func (m *Matrix) fromData(data [][]int32) (*Matrix, error) {
	r, c, err := ValidateRectangular(data)
	if err != nil {
		return nil, err
	}
	if r == 0 {
		c = m.c
	}
	out := m.derive(r, c)
	for i := 0; i < r; i++ {
		copy(out.data[i*c:(i+1)*c], data[i])
	}

	return out, nil
}

// AddData is Add over a raw 2D operand, returning a raw 2D result.
// Errors: ErrNilArgument, ErrInvalidDimension (ragged), ErrDimensionMismatch.
func (m *Matrix) AddData(other [][]int32) ([][]int32, error) {
	b, err := m.fromData(other)
	if err != nil {
		return nil, matrixErrorf(opAddData, err)
	}
	res, err := m.Add(b)
	if err != nil {
		return nil, matrixErrorf(opAddData, err)
	}

	return res.Data(), nil
}

// HadamardData is Hadamard over a raw 2D operand, returning a raw 2D result.
func (m *Matrix) HadamardData(other [][]int32) ([][]int32, error) {
	b, err := m.fromData(other)
	if err != nil {
		return nil, matrixErrorf(opHadamardData, err)
	}
	res, err := m.Hadamard(b)
	if err != nil {
		return nil, matrixErrorf(opHadamardData, err)
	}

	return res.Data(), nil
}

// MulData is Mul over a raw 2D operand, returning a raw 2D result.
//
// Behavior highlights:
//   - An empty outer slice is a 0-row operand with the receiver's column
//     count; it is compatible only with a 0-column receiver, and the product
//     then has zero columns.
func (m *Matrix) MulData(other [][]int32) ([][]int32, error) {
	b, err := m.fromData(other)
	if err != nil {
		return nil, matrixErrorf(opMulData, err)
	}
	res, err := m.Mul(b)
	if err != nil {
		return nil, matrixErrorf(opMulData, err)
	}

	return res.Data(), nil
}

// Multiply is the free-standing product of two raw 2D slices.
//
// Errors:
//   - ErrNilArgument, ErrInvalidDimension (ragged input),
//     ErrDimensionMismatch (len(a[0]) != len(b)).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Multiply(a, b [][]int32) ([][]int32, error) {
	left, err := NewFromRows(a)
	if err != nil {
		return nil, matrixErrorf(opMultiply, fmt.Errorf("left: %w", err))
	}
	res, err := left.MulData(b)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	return res, nil
}
