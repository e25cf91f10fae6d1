package estimate

import (
	"fmt"

	"github.com/diogodcarvalho/osiris-utils/utils"
)

const (
	secondsPerHour = 3600
	bytesPerPoint  = 4 // single-precision OSIRIS grid output
)

// Runtime projects the wall-clock time of a run in seconds:
// cells * particles-per-cell * per-particle push cost * steps, divided over
// the processors. nCPU must be positive.
func Runtime(nCells, ppc, pushTime float64, tSteps int, nCPU int) (seconds float64, err error) {
	if nCPU <= 0 {
		err = fmt.Errorf("%w: processor count %d must be positive", utils.ErrInvalidArgument, nCPU)
		return
	}
	seconds = nCells * ppc * pushTime * float64(tSteps) / float64(nCPU)
	return
}

// RuntimeHours is Runtime reported in hours.
func RuntimeHours(nCells, ppc, pushTime float64, tSteps int, nCPU int) (hours float64, err error) {
	var seconds float64
	if seconds, err = Runtime(nCells, ppc, pushTime, tSteps, nCPU); err != nil {
		return
	}
	hours = seconds / secondsPerHour
	return
}

// FileSize projects the on-disk size in MiB of a grid diagnostic with
// nGridpoints points at 4 bytes per point.
func FileSize(nGridpoints int) (mib float64, err error) {
	if nGridpoints < 0 {
		err = fmt.Errorf("%w: grid point count %d must be non-negative", utils.ErrInvalidArgument, nGridpoints)
		return
	}
	mib = float64(nGridpoints) * bytesPerPoint / (1024 * 1024)
	return
}
