package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diogodcarvalho/osiris-utils/utils"
)

func TestLongitudinalProfile(t *testing.T) {
	F, err := utils.NewArray2D([][]float64{
		{1, 3},
		{2, 6},
		{5, 3},
		{0, 8},
	})
	require.NoError(t, err)
	dx := 0.2

	// Identical to composing the two stages by hand
	got, err := LongitudinalProfile(F, dx)
	require.NoError(t, err)
	P, err := TransverseAverage(F)
	require.NoError(t, err)
	want, err := Integrate(P, dx)
	require.NoError(t, err)
	assert.Equal(t, want.Data(), got.Data())
	assert.Equal(t, []int{4}, got.Shape())
	assert.Equal(t, 0., got.At(3))
}

func TestLongitudinalProfileErrorPropagation(t *testing.T) {
	// Stage one failure passes through unchanged
	{
		P, err := utils.NewArray1D([]float64{1, 2, 3})
		require.NoError(t, err)
		_, err = LongitudinalProfile(P, 0.1)
		assert.ErrorIs(t, err, utils.ErrShape)
	}
	// Stage two failure passes through unchanged
	{
		F, err := utils.NewArray2D([][]float64{{1, 2}, {3, 4}})
		require.NoError(t, err)
		_, err = LongitudinalProfile(F, -1)
		assert.ErrorIs(t, err, utils.ErrInvalidArgument)
	}
}
