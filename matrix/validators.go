// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for guard checks.
//  - Keep operations minimal by delegating nil/shape/range checks here.
//  - Return plain or tag-wrapped sentinels so call sites can wrap uniformly.
//
// Note:
//  - Every range check is OR-combined: an index is invalid when it is below
//    zero OR at/above the limit.
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilArgument)
	}

	return nil
}

// ValidateShape ensures rows and cols are both non-negative and that
// rows*cols fits in an int.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateShape", ErrInvalidDimension)
	}
	if cols > 0 && rows > math.MaxInt/cols {
		return validatorErrorf("ValidateShape: element count overflows int", ErrInvalidDimension)
	}

	return nil
}

// ValidateSameShape ensures a and b have identical dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
// Errors: ErrNilArgument, ErrDimensionMismatch.
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
// Errors: ErrNilArgument, ErrDimensionMismatch.
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRectangular checks that data is non-nil and that every row has the
// same length as the first one. It returns the inferred (rows, cols).
//
// Behavior highlights:
//   - len(data)==0 is a legal 0×0 shape.
//   - A nil row inside data counts as a zero-length row.
//
// Errors:
//   - ErrNilArgument for nil data, ErrInvalidDimension for ragged rows.
//
// Complexity: O(rows).
func ValidateRectangular(data [][]int32) (rows, cols int, err error) {
	if data == nil {
		return 0, 0, validatorErrorf("ValidateRectangular", ErrNilArgument)
	}
	rows = len(data)
	if rows == 0 {
		return 0, 0, nil
	}
	cols = len(data[0])
	for i := 1; i < rows; i++ {
		if len(data[i]) != cols {
			return 0, 0, validatorErrorf(fmt.Sprintf("ValidateRectangular: row %d", i), ErrInvalidDimension)
		}
	}

	return rows, cols, nil
}

// ValidateRowIndex ensures 0 ≤ row < rows.
// Complexity: O(1).
func ValidateRowIndex(row, rows int) error {
	if row < 0 || row >= rows {
		return validatorErrorf("ValidateRowIndex", ErrIndexOutOfRange)
	}

	return nil
}
