package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/diogodcarvalho/osiris-utils/dataio"
	"github.com/diogodcarvalho/osiris-utils/diagnostics"
	"github.com/diogodcarvalho/osiris-utils/utils"
)

func TestRunReduce(t *testing.T) {
	var (
		err error
		dir = t.TempDir()
	)
	F, err := utils.NewArray2D([][]float64{
		{1, 3},
		{2, 6},
		{5, 3},
		{0, 8},
	})
	if err != nil {
		panic(err)
	}
	fieldFile := filepath.Join(dir, "e2-000080.txt")
	if err = dataio.Save(F, fieldFile, dataio.FormatNumpy); err != nil {
		panic(err)
	}
	outFile := filepath.Join(dir, "psi.csv")
	RunReduce(&ReduceJob{
		FieldFile: fieldFile,
		OutFile:   outFile,
		InFormat:  dataio.FormatNumpy,
		OutFormat: dataio.FormatPandas,
		Dx:        0.2,
	})
	got, err := dataio.Load(outFile, dataio.FormatPandas)
	if err != nil {
		panic(err)
	}
	want, err := diagnostics.LongitudinalProfile(F, 0.2)
	if err != nil {
		panic(err)
	}
	assert.Equal(t, got.Shape(), want.Shape())
	if !want.EqualsTol(got, 1e-12) {
		t.Errorf("reduce output %v does not match pipeline %v", got.Data(), want.Data())
	}
}

func TestRunEstimate(t *testing.T) {
	var (
		err error
		dir = t.TempDir()
	)
	deck := []byte(`
Title: Test Case
Dx: 0.2
Dy: 0.2
NCells: 100
PPC: 10
PushTime: 0.001
TSteps: 1000
NCPU: 1
GridPoints: 1048576
`)
	deckFile := filepath.Join(dir, "run.yaml")
	if err = os.WriteFile(deckFile, deck, 0644); err != nil {
		panic(err)
	}
	rp := processDeck(deckFile)
	assert.Equal(t, rp.Title, "Test Case")
	assert.Equal(t, rp.NCells, 100.)
	assert.Equal(t, rp.NCPU, 1)
	RunEstimate(rp)
}
