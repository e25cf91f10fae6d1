package diagnostics

import "github.com/diogodcarvalho/osiris-utils/utils"

// LongitudinalProfile is the canonical two-stage reduction: transverse
// average of a 2D snapshot followed by right-to-left cumulative integration
// along the remaining axis with spacing dx. The first failing stage's error
// is returned unchanged.
func LongitudinalProfile(field utils.Array, dx float64) (out utils.Array, err error) {
	var profile utils.Array
	if profile, err = TransverseAverage(field); err != nil {
		return
	}
	return Integrate(profile, dx)
}
