package filter

import (
	"math"

	"github.com/ikcgroup/ptmvalidate/pkg/core"
)

// DefaultIsobaricTol is the mass tolerance, in Da, for matching reporter
// ion reference masses.
const DefaultIsobaricTol = 0.1

// ITraqMasses lists the iTRAQ reporter ions (113-121) and tag fragment
// masses whose peaks carry no fragment information and are removed before
// annotation.
var ITraqMasses = []float64{
	113.1078,
	114.1112,
	115.1082,
	116.1116,
	117.1149,
	118.1120,
	119.1153,
	121.1220,
	144.1021,
	144.0922,
	144.1059,
	145.1069,
}

// RemoveIsobaric drops, in place, every peak whose m/z lies within tol of
// any reference mass. A nil refs slice selects ITraqMasses; a non-positive
// tol selects DefaultIsobaricTol. A retained peak differs from every
// reference by strictly more than tol.
func RemoveIsobaric(s *core.Spectrum, refs []float64, tol float64) {
	if refs == nil {
		refs = ITraqMasses
	}
	if tol <= 0 {
		tol = DefaultIsobaricTol
	}

	peaks := s.Peaks()
	kept := peaks[:0]
	for _, p := range peaks {
		matched := false
		for _, ref := range refs {
			if math.Abs(p.MZ-ref) <= tol {
				matched = true
				break
			}
		}
		if !matched {
			kept = append(kept, p)
		}
	}
	s.SetPeaks(kept)
}
