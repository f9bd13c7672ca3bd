// Package core provides the spectrum model and peptide chemistry shared by
// the PTM validation pipeline.
package core

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ErrEmptySpectrum is returned by operations that require at least one peak.
var ErrEmptySpectrum = errors.New("spectrum has no peaks")

// Peak represents a single m/z, intensity pair.
type Peak struct {
	MZ        float64
	Intensity float64
}

// Spectrum represents a tandem mass spectrum: an ordered peak list plus
// precursor metadata. Peaks are kept sorted by m/z in ascending order after
// construction and after every mutating operation.
type Spectrum struct {
	peaks []Peak

	PrecursorMZ   float64
	Charge        *int     // precursor charge state, nil if unknown
	RetentionTime *float64 // seconds, nil if unknown
}

// New constructs a Spectrum from a numeric peak list. The list may be laid
// out as n rows of (mz, intensity) pairs or as two rows (all m/z values,
// all intensities); the latter orientation is detected when the outer
// length is 2 and the inner length is not, and transposed. A 2x2 input is
// taken as already row-oriented.
func New(peakList [][]float64, precMZ float64, charge *int, retentionTime *float64) (*Spectrum, error) {
	peaks, err := toPeaks(peakList)
	if err != nil {
		return nil, err
	}
	s := &Spectrum{
		peaks:         peaks,
		PrecursorMZ:   precMZ,
		Charge:        charge,
		RetentionTime: retentionTime,
	}
	s.sortPeaks()
	return s, nil
}

// FromPeaks constructs a Spectrum directly from peaks, taking ownership of
// the slice. Used when rebuilding a spectrum from a filtered peak subset.
func FromPeaks(peaks []Peak, precMZ float64, charge *int, retentionTime *float64) *Spectrum {
	s := &Spectrum{
		peaks:         peaks,
		PrecursorMZ:   precMZ,
		Charge:        charge,
		RetentionTime: retentionTime,
	}
	s.sortPeaks()
	return s
}

// toPeaks normalizes the input layout to rows of (mz, intensity).
func toPeaks(peakList [][]float64) ([]Peak, error) {
	if len(peakList) == 2 && len(peakList[0]) != 2 {
		// Column orientation: first row m/z values, second row intensities.
		if len(peakList[0]) != len(peakList[1]) {
			return nil, fmt.Errorf("mismatched peak columns: %d m/z values, %d intensities",
				len(peakList[0]), len(peakList[1]))
		}
		peaks := make([]Peak, len(peakList[0]))
		for i := range peakList[0] {
			peaks[i] = Peak{MZ: peakList[0][i], Intensity: peakList[1][i]}
		}
		return peaks, nil
	}

	peaks := make([]Peak, len(peakList))
	for i, row := range peakList {
		if len(row) != 2 {
			return nil, fmt.Errorf("peak %d: expected 2 values, got %d", i, len(row))
		}
		peaks[i] = Peak{MZ: row[0], Intensity: row[1]}
	}
	return peaks, nil
}

// sortPeaks restores the ascending m/z invariant.
func (s *Spectrum) sortPeaks() {
	sort.SliceStable(s.peaks, func(i, j int) bool {
		return s.peaks[i].MZ < s.peaks[j].MZ
	})
}

// Len returns the number of peaks.
func (s *Spectrum) Len() int {
	return len(s.peaks)
}

// Peaks returns the underlying peak slice. Callers must not reorder it.
func (s *Spectrum) Peaks() []Peak {
	return s.peaks
}

// SetPeaks replaces the peak list, restoring the sort invariant.
func (s *Spectrum) SetPeaks(peaks []Peak) {
	s.peaks = peaks
	s.sortPeaks()
}

// MZ returns the m/z values of all peaks as a new slice.
func (s *Spectrum) MZ() []float64 {
	mz := make([]float64, len(s.peaks))
	for i, p := range s.peaks {
		mz[i] = p.MZ
	}
	return mz
}

// Intensity returns the intensities of all peaks as a new slice.
func (s *Spectrum) Intensity() []float64 {
	in := make([]float64, len(s.peaks))
	for i, p := range s.peaks {
		in[i] = p.Intensity
	}
	return in
}

// Select extracts the peaks at the given indices, in the given order.
func (s *Spectrum) Select(indices []int) []Peak {
	sel := make([]Peak, len(indices))
	for i, idx := range indices {
		sel[i] = s.peaks[idx]
	}
	return sel
}

// SelectMZ extracts the m/z values of the peaks at the given indices.
func (s *Spectrum) SelectMZ(indices []int) []float64 {
	sel := make([]float64, len(indices))
	for i, idx := range indices {
		sel[i] = s.peaks[idx].MZ
	}
	return sel
}

// SelectIntensity extracts the intensities of the peaks at the given indices.
func (s *Spectrum) SelectIntensity(indices []int) []float64 {
	sel := make([]float64, len(indices))
	for i, idx := range indices {
		sel[i] = s.peaks[idx].Intensity
	}
	return sel
}

// MaxIntensity returns the base peak intensity. Calling it on an empty
// spectrum is a caller error.
func (s *Spectrum) MaxIntensity() (float64, error) {
	if len(s.peaks) == 0 {
		return 0, ErrEmptySpectrum
	}
	return floats.Max(s.Intensity()), nil
}

// Normalize scales all intensities in place so that the base peak is 1.
func (s *Spectrum) Normalize() error {
	max, err := s.MaxIntensity()
	if err != nil {
		return err
	}
	for i := range s.peaks {
		s.peaks[i].Intensity /= max
	}
	return nil
}

// Equal reports whether two spectra have identical peak content, precursor
// m/z and charge. Retention time is excluded from equality.
func (s *Spectrum) Equal(other *Spectrum) bool {
	if other == nil {
		return false
	}
	if s.PrecursorMZ != other.PrecursorMZ {
		return false
	}
	if (s.Charge == nil) != (other.Charge == nil) {
		return false
	}
	if s.Charge != nil && *s.Charge != *other.Charge {
		return false
	}
	if len(s.peaks) != len(other.peaks) {
		return false
	}
	for i := range s.peaks {
		if s.peaks[i] != other.peaks[i] {
			return false
		}
	}
	return true
}

func (s *Spectrum) String() string {
	charge := "?"
	if s.Charge != nil {
		charge = fmt.Sprintf("%d", *s.Charge)
	}
	return fmt.Sprintf("<Spectrum peaks=%d prec_mz=%g charge=%s>", len(s.peaks), s.PrecursorMZ, charge)
}
