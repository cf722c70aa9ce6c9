// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/imatrix/matrix"
)

func TestToSliceRowMajor(t *testing.T) {
	m := MustRows(t, [][]int32{{1, 2, 3}, {4, 5, 6}})
	flat := m.ToSlice()
	require.Equal(t, []int32{1, 2, 3, 4, 5, 6}, flat)

	flat[0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int32(1), v, "ToSlice must copy")

	require.NotNil(t, MustZeros(t, 0, 0).ToSlice())
}

// TestLoadRestoresToSlice checks that Load(ToSlice()) into a same-shaped
// matrix reproduces the source.
func TestLoadRestoresToSlice(t *testing.T) {
	src := MustRandom(t, 3, 4, testSeed, 1000)
	dst := MustZeros(t, 3, 4)

	require.NoError(t, dst.Load(src.ToSlice()...))
	require.True(t, dst.Equal(src))
}

func TestLoadWrongLength(t *testing.T) {
	m := MustRows(t, [][]int32{{1, 2}, {3, 4}})
	require.ErrorIs(t, m.Load(1, 2, 3), matrix.ErrInvalidArgument)
	require.ErrorIs(t, m.Load(1, 2, 3, 4, 5), matrix.ErrInvalidArgument)
	requireData(t, [][]int32{{1, 2}, {3, 4}}, m)

	require.NoError(t, MustZeros(t, 0, 3).Load())
}
