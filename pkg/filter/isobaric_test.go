package filter

import (
	"math"
	"testing"
)

func TestRemoveIsobaric(t *testing.T) {
	tests := []struct {
		name   string
		peaks  [][]float64
		refs   []float64
		tol    float64
		wantMZ []float64
	}{
		{
			name: "reporter region stripped",
			peaks: [][]float64{
				{114.05, 100.0}, // within 0.1 of 114.1112
				{116.15, 80.0},  // within 0.1 of 116.1116
				{250.00, 50.0},
				{400.00, 20.0},
			},
			wantMZ: []float64{250.00, 400.00},
		},
		{
			name: "boundary peak retained",
			peaks: [][]float64{
				{114.2113, 10.0}, // 0.1001 beyond 114.1112
				{300.00, 5.0},
			},
			wantMZ: []float64{114.2113, 300.00},
		},
		{
			name:   "custom references",
			peaks:  [][]float64{{126.13, 1.0}, {127.12, 1.0}, {500.00, 1.0}},
			refs:   []float64{126.1277, 127.1248},
			tol:    0.05,
			wantMZ: []float64{500.00},
		},
		{
			name:   "empty spectrum",
			peaks:  [][]float64{},
			wantMZ: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustSpectrum(t, tt.peaks)
			RemoveIsobaric(s, tt.refs, tt.tol)

			got := s.MZ()
			if len(got) != len(tt.wantMZ) {
				t.Fatalf("retained %d peaks %v, want %d %v", len(got), got, len(tt.wantMZ), tt.wantMZ)
			}
			for i := range got {
				if math.Abs(got[i]-tt.wantMZ[i]) > 1e-9 {
					t.Errorf("peak %d: mz %v, want %v", i, got[i], tt.wantMZ[i])
				}
			}
		})
	}
}

func TestRemoveIsobaricProperties(t *testing.T) {
	peaks := [][]float64{
		{113.15, 1.0}, {114.05, 1.0}, {121.10, 1.0},
		{144.15, 1.0}, {145.20, 1.0},
		{200.00, 1.0}, {300.00, 1.0},
	}

	s := mustSpectrum(t, peaks)
	original := s.MZ()
	RemoveIsobaric(s, nil, 0)

	retained := make(map[float64]bool)
	for _, mz := range s.MZ() {
		retained[mz] = true
		// Every retained peak differs from all references by more than tol.
		for _, ref := range ITraqMasses {
			if math.Abs(mz-ref) <= DefaultIsobaricTol {
				t.Errorf("retained peak %v within tolerance of reference %v", mz, ref)
			}
		}
	}

	// Every removed peak had at least one reference within tolerance.
	for _, mz := range original {
		if retained[mz] {
			continue
		}
		close := false
		for _, ref := range ITraqMasses {
			if math.Abs(mz-ref) <= DefaultIsobaricTol {
				close = true
				break
			}
		}
		if !close {
			t.Errorf("removed peak %v has no reference within tolerance", mz)
		}
	}
}
