package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diogodcarvalho/osiris-utils/utils"
)

const deck = `
Title: "LWFA scan 03"
Dx: 0.2
Dy: 0.2
NCells: 1e6
PPC: 16
PushTime: 1e-8
TSteps: 20000
NCPU: 512
GridPoints: 1048576
`

func TestRunParametersParse(t *testing.T) {
	rp := &RunParameters{}
	require.NoError(t, rp.Parse([]byte(deck)))
	assert.Equal(t, "LWFA scan 03", rp.Title)
	assert.Equal(t, 0.2, rp.Dx)
	assert.Equal(t, 1e6, rp.NCells)
	assert.Equal(t, 16., rp.PPC)
	assert.Equal(t, 20000, rp.TSteps)
	assert.Equal(t, 512, rp.NCPU)
	assert.Equal(t, 1048576, rp.GridPoints)
	assert.NoError(t, rp.Validate())
}

func TestRunParametersValidate(t *testing.T) {
	base := func() *RunParameters {
		rp := &RunParameters{}
		require.NoError(t, rp.Parse([]byte(deck)))
		return rp
	}
	{
		rp := base()
		rp.Dx = 0
		assert.ErrorIs(t, rp.Validate(), utils.ErrInvalidArgument)
	}
	{
		rp := base()
		rp.NCPU = -1
		assert.ErrorIs(t, rp.Validate(), utils.ErrInvalidArgument)
	}
	{
		rp := base()
		rp.GridPoints = -1
		assert.ErrorIs(t, rp.Validate(), utils.ErrInvalidArgument)
	}
	{
		rp := base()
		rp.GridPoints = 0 // no grid dumps is fine
		assert.NoError(t, rp.Validate())
	}
}

func TestRunParametersParseError(t *testing.T) {
	rp := &RunParameters{}
	assert.Error(t, rp.Parse([]byte("Dx: [not a number")))
}
