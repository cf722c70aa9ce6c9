// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/imatrix/matrix"
)

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithMaxValue(-1) })
	require.Panics(t, func() {
		big := math.MaxInt32
		big++
		matrix.WithMaxValue(big)
	})
	require.Panics(t, func() { matrix.WithMaxDim(0) })
	require.Panics(t, func() { matrix.WithRand(nil) })

	require.NotPanics(t, func() { matrix.WithMaxValue(0) })
	require.NotPanics(t, func() { matrix.WithMaxDim(1) })
}

// TestWithRandMatchesWithSeed checks that an injected source seeded with s
// behaves exactly like WithSeed(s).
func TestWithRandMatchesWithSeed(t *testing.T) {
	a, err := matrix.NewShaped(4, 4, true, matrix.WithSeed(77))
	require.NoError(t, err)
	b, err := matrix.NewShaped(4, 4, true, matrix.WithRand(rand.New(rand.NewSource(77))))
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}

// TestSharedRandAdvances checks that matrices built from one source draw
// consecutive, not repeated, values.
func TestSharedRandAdvances(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	a, err := matrix.NewShaped(8, 8, true, matrix.WithRand(r))
	require.NoError(t, err)
	b, err := matrix.NewShaped(8, 8, true, matrix.WithRand(r))
	require.NoError(t, err)
	require.False(t, a.Equal(b))
}

func TestLaterOptionWins(t *testing.T) {
	m, err := matrix.NewShaped(6, 6, true, matrix.WithMaxValue(1000), matrix.WithMaxValue(1), matrix.WithSeed(3))
	require.NoError(t, err)
	requireInRange(t, m, 1)
}

// TestDerivedSharesRandomSource checks that results of arithmetic draw from
// the receiver's seeded source.
func TestDerivedSharesRandomSource(t *testing.T) {
	a, err := matrix.NewZeros(3, 3, matrix.WithSeed(2))
	require.NoError(t, err)
	b, err := matrix.NewZeros(3, 3, matrix.WithSeed(2))
	require.NoError(t, err)

	ta, tb := a.Transpose(), b.Transpose()
	require.NoError(t, ta.Randomize(4))
	require.NoError(t, tb.Randomize(4))
	requireInRange(t, ta, 4)
	require.True(t, ta.Equal(tb))
}
