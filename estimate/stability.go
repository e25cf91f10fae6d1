// Package estimate holds the closed-form sizing formulas used before
// launching an OSIRIS run: the Courant time-step bound, projected wall-clock
// time and output footprint.
package estimate

import (
	"fmt"
	"math"

	"github.com/diogodcarvalho/osiris-utils/utils"
)

// CourantLimit2D returns the maximum stable time step for a 2D explicit
// finite-difference scheme on a uniform grid with spacings dx, dy:
//
//	dt_max = 1 / sqrt(1/dx^2 + 1/dy^2)
//
// Both spacings must be strictly positive.
func CourantLimit2D(dx, dy float64) (dt float64, err error) {
	if dx <= 0 {
		err = fmt.Errorf("%w: grid spacing dx = %v must be positive", utils.ErrInvalidArgument, dx)
		return
	}
	if dy <= 0 {
		err = fmt.Errorf("%w: grid spacing dy = %v must be positive", utils.ErrInvalidArgument, dy)
		return
	}
	dt = 1 / math.Sqrt(1/(dx*dx)+1/(dy*dy))
	return
}
