// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package plus the two wrappers that attach operation context to them.
// All operations MUST return these sentinels (possibly wrapped) and tests MUST
// check them via errors.Is. No operation panics on caller-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Sentinels are
// wrapped with fmt.Errorf("<Op>: %w", ErrX) at the detection site; callers
// still match them with errors.Is.
//
// ERROR PRIORITY (checked in this order by every operation):
// nil argument -> invalid dimension/argument -> index -> dimension mismatch.

var (
	// ErrInvalidDimension is returned when a requested row/column count is
	// negative, or when a row/column supplied for insertion has the wrong length.
	ErrInvalidDimension = errors.New("matrix: invalid dimension")

	// ErrIndexOutOfRange indicates that a row or column index (or a scan start
	// offset) lies outside the current shape. Empty matrices report it for
	// corner accessors and Min/Max.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add on
	// different shapes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrDivideByZero is returned by Average on a matrix without elements.
	ErrDivideByZero = errors.New("matrix: divide by zero")

	// ErrNilArgument indicates that a required slice or matrix argument is nil.
	ErrNilArgument = errors.New("matrix: nil argument")

	// ErrInvalidArgument indicates a non-shape argument violation, e.g. a flat
	// slice whose length differs from Rows()*Cols(), or a negative random bound.
	ErrInvalidArgument = errors.New("matrix: invalid argument")
)

// ErrInvalidIndex names the same condition as ErrIndexOutOfRange.
var ErrInvalidIndex = ErrIndexOutOfRange

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps err with the method tag and the offending coordinates.
// Shape: "Matrix.<method>(row,col): <sentinel>".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
