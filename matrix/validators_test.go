// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/imatrix/matrix"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilArgument)
	require.NoError(t, matrix.ValidateNotNil(MustZeros(t, 1, 1)))
}

func TestValidateShape(t *testing.T) {
	require.NoError(t, matrix.ValidateShape(0, 0))
	require.NoError(t, matrix.ValidateShape(3, 0))
	require.ErrorIs(t, matrix.ValidateShape(-1, 2), matrix.ErrInvalidDimension)
	require.ErrorIs(t, matrix.ValidateShape(2, -1), matrix.ErrInvalidDimension)
}

// TestValidateShapeElementOverflow checks that a shape whose element count
// does not fit in an int is rejected.
func TestValidateShapeElementOverflow(t *testing.T) {
	half := math.MaxInt/2 + 1
	require.ErrorIs(t, matrix.ValidateShape(half, 2), matrix.ErrInvalidDimension)
	require.ErrorIs(t, matrix.ValidateShape(2, half), matrix.ErrInvalidDimension)
	require.ErrorIs(t, matrix.ValidateShape(math.MaxInt, math.MaxInt), matrix.ErrInvalidDimension)

	require.NoError(t, matrix.ValidateShape(math.MaxInt, 1))
	require.NoError(t, matrix.ValidateShape(math.MaxInt, 0))
	require.NoError(t, matrix.ValidateShape(0, math.MaxInt))
}

func TestValidateSameShape(t *testing.T) {
	a := MustZeros(t, 2, 3)
	require.NoError(t, matrix.ValidateSameShape(a, MustZeros(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustZeros(t, 3, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustZeros(t, 2, 2)), matrix.ErrDimensionMismatch)
}

func TestValidateBinarySameShape(t *testing.T) {
	a := MustZeros(t, 2, 2)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(nil, a), matrix.ErrNilArgument)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilArgument)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, MustZeros(t, 2, 1)), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateBinarySameShape(a, MustZeros(t, 2, 2)))
}

func TestValidateMulCompatible(t *testing.T) {
	a := MustZeros(t, 2, 3)
	require.NoError(t, matrix.ValidateMulCompatible(a, MustZeros(t, 3, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, MustZeros(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, a), matrix.ErrNilArgument)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilArgument)
}

func TestValidateRectangular(t *testing.T) {
	cases := []struct {
		name       string
		in         [][]int32
		rows, cols int
		err        error
	}{
		{"nil", nil, 0, 0, matrix.ErrNilArgument},
		{"empty", [][]int32{}, 0, 0, nil},
		{"zero-width rows", [][]int32{{}, {}}, 2, 0, nil},
		{"nil row counts as empty", [][]int32{nil, {}}, 2, 0, nil},
		{"rectangular", [][]int32{{1, 2}, {3, 4}, {5, 6}}, 3, 2, nil},
		{"ragged", [][]int32{{1, 2}, {3, 4}, {5}}, 0, 0, matrix.ErrInvalidDimension},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, c, err := matrix.ValidateRectangular(tc.in)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.rows, r)
			require.Equal(t, tc.cols, c)
		})
	}
}

func TestValidateRowIndex(t *testing.T) {
	require.NoError(t, matrix.ValidateRowIndex(0, 1))
	require.ErrorIs(t, matrix.ValidateRowIndex(1, 1), matrix.ErrIndexOutOfRange)
	require.ErrorIs(t, matrix.ValidateRowIndex(-1, 1), matrix.ErrIndexOutOfRange)
	require.ErrorIs(t, matrix.ValidateRowIndex(0, 0), matrix.ErrIndexOutOfRange)
}
