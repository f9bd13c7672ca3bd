// Package fragment generates theoretical b and y fragment ions for a
// candidate peptide, for matching against observed spectra.
package fragment

import (
	"fmt"

	"github.com/ikcgroup/ptmvalidate/pkg/annotate"
	"github.com/ikcgroup/ptmvalidate/pkg/core"
)

// ModMass is a modification mass shift located on a peptide.
type ModMass struct {
	Mass float64
	Pos  int // 0-based residue position; -1 for N-term, len(sequence) for C-term
}

// BY generates the singly charged b and y ion series for the sequence,
// shifted by any modifications covered by each fragment. Fragment lengths
// run from 1 to len(sequence)-1; labels follow the "b2"/"y3" convention
// and Pos carries the fragment length.
func BY(sequence string, mods []ModMass) ([]annotate.Ion, error) {
	residues := []rune(sequence)
	n := len(residues)
	if n < 2 {
		return nil, fmt.Errorf("fragment: sequence %q too short", sequence)
	}

	masses := make([]float64, n)
	for i, aa := range residues {
		m, ok := core.ResidueMass(aa)
		if !ok {
			return nil, fmt.Errorf("fragment: unknown residue %q in %q", aa, sequence)
		}
		masses[i] = m
	}

	water := 2*core.ElementMasses["H"].Mono + core.ElementMasses["O"].Mono

	ions := make([]annotate.Ion, 0, 2*(n-1))

	// b ions cover residues [0, k); y ions cover residues [n-k, n).
	prefix := 0.0
	for k := 1; k < n; k++ {
		prefix += masses[k-1]
		b := prefix + core.ProtonMass
		for _, mod := range mods {
			if mod.Pos < k {
				b += mod.Mass
			}
		}
		ions = append(ions, annotate.Ion{Label: fmt.Sprintf("b%d", k), Mass: b, Pos: k})
	}

	suffix := 0.0
	for k := 1; k < n; k++ {
		suffix += masses[n-k]
		y := suffix + water + core.ProtonMass
		for _, mod := range mods {
			if mod.Pos >= n-k {
				y += mod.Mass
			}
		}
		ions = append(ions, annotate.Ion{Label: fmt.Sprintf("y%d", k), Mass: y, Pos: k})
	}

	return ions, nil
}
