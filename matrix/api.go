// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing package-level entry points next to the
//     methods on *Matrix, for callers that prefer the functional form.
//   - Each facade delegates to the canonical method; no logic is duplicated.
//
// Determinism & Policy:
//   - Facades add only a nil check on the receiver operand; validation of the
//     rest is performed by the methods.

package matrix

import (
	"fmt"
	"math"
	"math/rand"
)

const opRandomData = "RandomData"

// Sum is an alias for a.Add(b).
func Sum(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return a.Add(b)
}

// HadamardProd is an alias for a.Hadamard(b).
func HadamardProd(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return a.Hadamard(b)
}

// Product is an alias for a.Mul(b).
func Product(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return a.Mul(b)
}

// T is an alias for m.Transpose().
func T(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Transpose", err)
	}

	return m.Transpose(), nil
}

// ScaleBy is an alias for m.Scale(k).
func ScaleBy(m *Matrix, k int32) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Scale", err)
	}

	return m.Scale(k), nil
}

// RandomData returns a fresh rows×cols 2D slice with values drawn uniformly
// from [0, maxValue], row-major, from rng. A nil rng uses the default seed.
//
// Errors:
//   - ErrInvalidDimension (rows<0 or cols<0),
//     ErrInvalidArgument (maxValue outside [0, MaxInt32]).
//
// Complexity: O(rows*cols).
func RandomData(rows, cols, maxValue int, rng *rand.Rand) ([][]int32, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opRandomData, err)
	}
	if maxValue < 0 || maxValue > math.MaxInt32 {
		return nil, matrixErrorf(opRandomData, fmt.Errorf("maxValue %d: %w", maxValue, ErrInvalidArgument))
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	out := make([][]int32, rows)
	for i := range out {
		out[i] = make([]int32, cols)
		fillUniform(out[i], rng, maxValue)
	}

	return out, nil
}
