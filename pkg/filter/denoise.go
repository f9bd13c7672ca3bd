package filter

import (
	"fmt"
	"sort"

	"github.com/ikcgroup/ptmvalidate/pkg/core"
)

// DefaultMaxPeaksPerWindow bounds how many peaks each 100 Da window may
// contribute to a denoised spectrum.
const DefaultMaxPeaksPerWindow = 8

// denoiseWindowWidth is the fixed denoising window width in Da.
const denoiseWindowWidth = 100.0

// Denoise selects a bounded, annotation-preferring subset of peaks. The
// spectrum's m/z range is split into consecutive 100 Da windows starting at
// the lowest observed m/z. Within each window, peaks are ranked by
// descending intensity and the shortest prefix maximising the number of
// annotated peaks is retained, capped at maxPeaksPerWindow. A window whose
// candidate range has not advanced keeps its single peak only when that
// peak lies inside the window and is annotated.
//
// assigned must hold one flag per peak, in peak order. Returns the retained
// peak indices and a new spectrum rebuilt from exactly those peaks; the
// receiver is not modified.
func Denoise(s *core.Spectrum, assigned []bool, maxPeaksPerWindow int) ([]int, *core.Spectrum, error) {
	peaks := s.Peaks()
	n := len(peaks)
	if n == 0 {
		return nil, nil, core.ErrEmptySpectrum
	}
	if len(assigned) != n {
		return nil, nil, fmt.Errorf("denoise: %d assignment flags for %d peaks", len(assigned), n)
	}
	if maxPeaksPerWindow <= 0 {
		maxPeaksPerWindow = DefaultMaxPeaksPerWindow
	}

	nWindows := int((peaks[n-1].MZ-peaks[0].MZ)/denoiseWindowWidth) + 1
	startIdx := 0
	var retained []int

	for window := 0; window < nWindows; window++ {
		maxMass := peaks[0].MZ + float64(window+1)*denoiseWindowWidth

		// Advance to the first peak beyond the window. endIdx lands on
		// that peak, or on the final peak when none exceeds the bound.
		endIdx := startIdx
		for i := startIdx; i < n; i++ {
			endIdx = i
			if peaks[i].MZ > maxMass {
				break
			}
		}

		if endIdx == startIdx {
			// Sparse window: a lone candidate survives only when it is
			// in bounds and annotated.
			if peaks[endIdx].MZ <= maxMass && assigned[endIdx] {
				retained = append(retained, endIdx)
			}
			continue
		}

		windowPeaks := make([]int, 0, endIdx-startIdx)
		for i := startIdx; i < endIdx; i++ {
			windowPeaks = append(windowPeaks, i)
		}
		sort.SliceStable(windowPeaks, func(a, b int) bool {
			return peaks[windowPeaks[a]].Intensity > peaks[windowPeaks[b]].Intensity
		})

		// Annotated counts over intensity-ranked prefixes are
		// non-decreasing, so the k of the last increment is the shortest
		// prefix achieving the maximum count.
		limit := len(windowPeaks)
		if limit > maxPeaksPerWindow {
			limit = maxPeaksPerWindow
		}
		bestK, bestCount, count := 1, -1, 0
		for k := 1; k <= limit; k++ {
			if assigned[windowPeaks[k-1]] {
				count++
			}
			if count > bestCount {
				bestCount = count
				bestK = k
			}
		}
		retained = append(retained, windowPeaks[:bestK]...)

		startIdx = endIdx
	}

	denoised := core.FromPeaks(s.Select(retained), s.PrecursorMZ, s.Charge, nil)
	return retained, denoised, nil
}
