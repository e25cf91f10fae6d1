package estimate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diogodcarvalho/osiris-utils/utils"
)

func TestCourantLimit2D(t *testing.T) {
	// Equal spacings collapse to dx/sqrt(2)
	{
		dt, err := CourantLimit2D(0.1, 0.1)
		require.NoError(t, err)
		assert.InDelta(t, 0.1/math.Sqrt2, dt, 1e-15)
	}
	// Always positive, bounded by the smaller spacing
	{
		dt, err := CourantLimit2D(0.05, 2.0)
		require.NoError(t, err)
		assert.Greater(t, dt, 0.)
		assert.Less(t, dt, 0.05)
	}
	// Degenerate spacings rejected before any arithmetic
	{
		_, err := CourantLimit2D(0, 0.1)
		assert.ErrorIs(t, err, utils.ErrInvalidArgument)
		_, err = CourantLimit2D(0.1, -1)
		assert.ErrorIs(t, err, utils.ErrInvalidArgument)
	}
}

func TestRuntime(t *testing.T) {
	// 100 cells * 10 ppc * 1ms push * 1000 steps on one CPU = 1000 s
	{
		s, err := Runtime(100, 10, 0.001, 1000, 1)
		require.NoError(t, err)
		assert.Equal(t, 1000., s)
		h, err := RuntimeHours(100, 10, 0.001, 1000, 1)
		require.NoError(t, err)
		assert.Equal(t, 1000./3600, h)
	}
	// Perfect scaling over processors
	{
		s, err := Runtime(1e6, 100, 1e-8, 1000, 100)
		require.NoError(t, err)
		assert.InDelta(t, 1e6*100*1e-8*1000/100, s, 1e-9)
	}
	// Zero processors is a guarded division
	{
		_, err := Runtime(1e6, 100, 1e-8, 1000, 0)
		assert.ErrorIs(t, err, utils.ErrInvalidArgument)
		_, err = RuntimeHours(1e6, 100, 1e-8, 1000, -4)
		assert.ErrorIs(t, err, utils.ErrInvalidArgument)
	}
}

func TestFileSize(t *testing.T) {
	// 1 Mi points at 4 bytes each is 4 MiB
	{
		mib, err := FileSize(1024 * 1024)
		require.NoError(t, err)
		assert.Equal(t, 4., mib)
	}
	{
		mib, err := FileSize(0)
		require.NoError(t, err)
		assert.Equal(t, 0., mib)
	}
	{
		_, err := FileSize(-1)
		assert.ErrorIs(t, err, utils.ErrInvalidArgument)
	}
}
