// Package filter provides peak cleaning operations on spectra: centroiding,
// isobaric reporter removal and annotation-guided window denoising.
package filter

import (
	"gonum.org/v1/gonum/floats"

	"github.com/ikcgroup/ptmvalidate/pkg/core"
)

// DefaultCentroidTol is the adjacency threshold, in Da, below which
// neighbouring peaks are merged.
const DefaultCentroidTol = 0.1

// Centroid merges near-duplicate peaks in place. Every maximal run of
// consecutive m/z gaps at most tol collapses to a single peak: the mean m/z
// when all intensities in the run are identical, otherwise the first peak
// carrying the maximum intensity. Peaks outside any run pass through. No-op
// on spectra with at most one peak.
func Centroid(s *core.Spectrum, tol float64) {
	if tol <= 0 {
		tol = DefaultCentroidTol
	}
	peaks := s.Peaks()
	if len(peaks) <= 1 {
		return
	}

	out := make([]core.Peak, 0, len(peaks))
	for i := 0; i < len(peaks); {
		j := i
		for j+1 < len(peaks) && peaks[j+1].MZ-peaks[j].MZ <= tol {
			j++
		}
		if j == i {
			out = append(out, peaks[i])
		} else {
			out = append(out, collapseCluster(peaks[i:j+1]))
		}
		i = j + 1
	}
	s.SetPeaks(out)
}

// collapseCluster reduces a run of adjacent peaks to its representative.
func collapseCluster(cluster []core.Peak) core.Peak {
	uniform := true
	for _, p := range cluster[1:] {
		if p.Intensity != cluster[0].Intensity {
			uniform = false
			break
		}
	}

	if uniform {
		mz := make([]float64, len(cluster))
		for i, p := range cluster {
			mz[i] = p.MZ
		}
		return core.Peak{
			MZ:        floats.Sum(mz) / float64(len(cluster)),
			Intensity: cluster[0].Intensity,
		}
	}

	// Ties on intensity keep the first peak in m/z order.
	best := cluster[0]
	for _, p := range cluster[1:] {
		if p.Intensity > best.Intensity {
			best = p
		}
	}
	return best
}
