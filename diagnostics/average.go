// Package diagnostics reduces OSIRIS field snapshots to 1D line-integrated
// quantities. All functions are pure: they validate their preconditions,
// allocate their outputs and never touch caller-supplied buffers.
package diagnostics

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/diogodcarvalho/osiris-utils/utils"
)

// TransverseAverage reduces a 2D field snapshot to a 1D profile by taking
// the arithmetic mean along axis 1, the transverse axis. The output length
// equals the snapshot's first-axis extent.
func TransverseAverage(field utils.Array) (profile utils.Array, err error) {
	if field.Rank() != 2 {
		err = &utils.ShapeError{Op: "TransverseAverage", WantRank: 2, GotShape: field.Shape()}
		return
	}
	var M *mat.Dense
	if M, err = field.Matrix(); err != nil {
		return
	}
	nr, _ := M.Dims()
	means := make([]float64, nr)
	for i := 0; i < nr; i++ {
		means[i] = stat.Mean(M.RawRowView(i), nil)
	}
	return utils.NewArray1D(means)
}
