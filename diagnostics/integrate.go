package diagnostics

import (
	"fmt"

	"github.com/diogodcarvalho/osiris-utils/utils"
)

// Integrate computes the cumulative line integral of a uniformly sampled 1D
// profile, referenced to a zero boundary condition at the RIGHT edge. For
// counter-propagating-field diagnostics the integrated quantity must vanish
// at the downstream boundary, so the accumulation runs right-to-left:
//
//	reverse the profile, cumulatively integrate from 0 at the first
//	(rightmost-original) sample, negate, reverse back.
//
// Position i of the output holds -1 times the integral of the input from
// x_i to the right boundary; the last element is always 0. The order of the
// four steps is load-bearing: this is not a left-to-right cumulative
// integral read backwards.
//
// Accumulation uses the cumulative composite Simpson rule (see
// cumulativeSimpson). Profiles of length 1 return [0]; length 2 falls back
// to the trapezoidal rule for the single interval.
func Integrate(profile utils.Array, dx float64) (out utils.Array, err error) {
	if profile.Rank() != 1 {
		err = &utils.ShapeError{Op: "Integrate", WantRank: 1, GotShape: profile.Shape()}
		return
	}
	if dx <= 0 {
		err = fmt.Errorf("%w: spacing dx = %v must be positive", utils.ErrInvalidArgument, dx)
		return
	}
	y := profile.Data()
	reverse(y)
	cum := cumulativeSimpson(y, dx)
	for i := range cum {
		cum[i] = -cum[i]
	}
	reverse(cum)
	return utils.NewArray1D(cum)
}

// cumulativeSimpson returns the running integral of uniformly spaced samples,
// starting the accumulator at 0 at the first sample. Each interval integral
// comes from the quadratic through the nearest sample triple:
//
//	interval 0:        h/12 * (5*y0 + 8*y1 - y2)       (left half of triple 0,1,2)
//	interval i >= 1:   h/12 * (-y[i-1] + 8*y[i] + 5*y[i+1])
//
// Consecutive interval pairs sum to the classic h/3*(y0+4*y1+y2) composite
// Simpson value, so the scheme is exact for piecewise-quadratic data.
// A single interval degrades to the trapezoidal rule.
func cumulativeSimpson(y []float64, h float64) (cum []float64) {
	n := len(y)
	cum = make([]float64, n)
	switch n {
	case 0, 1:
		return
	case 2:
		cum[1] = 0.5 * h * (y[0] + y[1])
		return
	}
	cum[1] = h / 12 * (5*y[0] + 8*y[1] - y[2])
	for i := 1; i < n-1; i++ {
		cum[i+1] = cum[i] + h/12*(-y[i-1]+8*y[i]+5*y[i+1])
	}
	return
}

func reverse(v []float64) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}
