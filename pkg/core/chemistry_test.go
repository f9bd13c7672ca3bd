package core

import (
	"math"
	"testing"
)

func TestNeutralPeptideMass(t *testing.T) {
	tests := []struct {
		name      string
		sequence  string
		modMasses []float64
		wantMass  float64
		tolerance float64
	}{
		{
			name:      "simple tripeptide",
			sequence:  "AAA",
			wantMass:  231.121,
			tolerance: 0.001,
		},
		{
			name:      "with modification",
			sequence:  "AAA",
			modMasses: []float64{57.021464},
			wantMass:  288.143,
			tolerance: 0.001,
		},
		{
			name:      "unknown residues skipped",
			sequence:  "AXA",
			wantMass:  160.085,
			tolerance: 0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NeutralPeptideMass(tt.sequence, tt.modMasses...)
			if math.Abs(got-tt.wantMass) > tt.tolerance {
				t.Errorf("NeutralPeptideMass() = %.4f, want %.4f (within %.4f)",
					got, tt.wantMass, tt.tolerance)
			}
		})
	}
}

func TestPrecursorMZ(t *testing.T) {
	mass := NeutralPeptideMass("AAA")

	mz1 := PrecursorMZ(mass, 1)
	if math.Abs(mz1-232.129) > 0.001 {
		t.Errorf("PrecursorMZ(charge 1) = %.4f, want 232.129", mz1)
	}

	mz2 := PrecursorMZ(mass, 2)
	if math.Abs(mz2-116.568) > 0.001 {
		t.Errorf("PrecursorMZ(charge 2) = %.4f, want 116.568", mz2)
	}
}

func TestCompositionMass(t *testing.T) {
	// CH2O: formaldehyde.
	comp := Composition{C: 1, H: 2, O: 1}

	mono := comp.Mass(MonoMass)
	if math.Abs(mono-30.010565) > 1e-5 {
		t.Errorf("Mass(MonoMass) = %.6f, want 30.010565", mono)
	}

	avg := comp.Mass(AvgMass)
	if math.Abs(avg-30.02598) > 1e-3 {
		t.Errorf("Mass(AvgMass) = %.5f, want about 30.026", avg)
	}
}

func TestElementMassesIsotopes(t *testing.T) {
	// Isotope tokens must resolve to the single-isotope mass under both
	// conventions.
	for _, token := range []string{"2H", "13C", "15N", "18O"} {
		elem, ok := ElementMasses[token]
		if !ok {
			t.Fatalf("element table missing isotope token %q", token)
		}
		if elem.Mono != elem.Avg {
			t.Errorf("isotope %q: mono %v != avg %v", token, elem.Mono, elem.Avg)
		}
	}
}
