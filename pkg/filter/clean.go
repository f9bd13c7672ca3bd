package filter

import (
	"github.com/ikcgroup/ptmvalidate/pkg/core"
)

// CleanConfig bundles the annotation-independent cleaning steps applied to
// every spectrum before peak matching.
type CleanConfig struct {
	CentroidTol  float64   // 0 = DefaultCentroidTol
	IsobaricRefs []float64 // nil = ITraqMasses
	IsobaricTol  float64   // 0 = DefaultIsobaricTol
	SkipIsobaric bool      // for label-free data
	Normalize    bool      // scale intensities to the base peak
}

// Apply runs centroiding, isobaric removal and normalization in order,
// mutating the spectrum in place.
func (c *CleanConfig) Apply(s *core.Spectrum) error {
	if s.Len() == 0 {
		return core.ErrEmptySpectrum
	}

	Centroid(s, c.CentroidTol)

	if !c.SkipIsobaric {
		RemoveIsobaric(s, c.IsobaricRefs, c.IsobaricTol)
	}

	if c.Normalize {
		return s.Normalize()
	}
	return nil
}
