// Package annotate adapts an external peak matching engine to the
// annotation records consumed by denoising and feature extraction.
package annotate

import (
	"github.com/ikcgroup/ptmvalidate/pkg/core"
)

// DefaultTol is the mass tolerance, in Da, for matching observed peaks to
// theoretical ions.
const DefaultTol = 0.2

// Ion describes a theoretical fragment ion to be matched against observed
// peaks.
type Ion struct {
	Label string  // e.g. "y3", "b2"
	Mass  float64 // expected singly protonated m/z
	Pos   int     // fragment position within the peptide
}

// Match is the raw triple produced by a Matcher for one ion label.
type Match struct {
	PeakIndex int
	MassDiff  float64
	IonPos    int
}

// Annotation links a theoretical ion to the observed peak it matched.
type Annotation struct {
	PeakIndex int     // index into the owning spectrum's peak list
	MassDiff  float64 // observed minus expected mass
	IonPos    int     // fragment position of the matched ion
}

// Matcher is the external matching engine contract. Implementations must be
// deterministic for fixed inputs; resolving competing ion/peak matches is
// the implementation's responsibility.
type Matcher interface {
	Match(mz []float64, ions []Ion, tol float64) map[string]Match
}

// MatcherFunc adapts a function to the Matcher interface.
type MatcherFunc func(mz []float64, ions []Ion, tol float64) map[string]Match

// Match calls f.
func (f MatcherFunc) Match(mz []float64, ions []Ion, tol float64) map[string]Match {
	return f(mz, ions, tol)
}

// Annotate matches the spectrum's peaks against the theoretical ions and
// returns the annotations keyed by ion label, at most one per label. A
// non-positive tol selects DefaultTol.
func Annotate(s *core.Spectrum, ions []Ion, tol float64, m Matcher) map[string]Annotation {
	if tol <= 0 {
		tol = DefaultTol
	}
	raw := m.Match(s.MZ(), ions, tol)
	anns := make(map[string]Annotation, len(raw))
	for label, match := range raw {
		anns[label] = Annotation{
			PeakIndex: match.PeakIndex,
			MassDiff:  match.MassDiff,
			IonPos:    match.IonPos,
		}
	}
	return anns
}

// Assigned builds the per-peak annotation flag vector of length n used by
// the window denoiser. Annotations referencing out-of-range peak indices
// are ignored.
func Assigned(n int, anns map[string]Annotation) []bool {
	flags := make([]bool, n)
	for _, ann := range anns {
		if ann.PeakIndex >= 0 && ann.PeakIndex < n {
			flags[ann.PeakIndex] = true
		}
	}
	return flags
}
