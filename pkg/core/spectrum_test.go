package core

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewOrientation(t *testing.T) {
	tests := []struct {
		name     string
		peakList [][]float64
		want     []Peak
		wantErr  bool
	}{
		{
			name:     "row oriented",
			peakList: [][]float64{{100.0, 10.0}, {200.0, 5.0}, {300.0, 8.0}},
			want: []Peak{
				{MZ: 100.0, Intensity: 10.0},
				{MZ: 200.0, Intensity: 5.0},
				{MZ: 300.0, Intensity: 8.0},
			},
		},
		{
			name:     "column oriented",
			peakList: [][]float64{{100.0, 200.0, 300.0}, {10.0, 5.0, 8.0}},
			want: []Peak{
				{MZ: 100.0, Intensity: 10.0},
				{MZ: 200.0, Intensity: 5.0},
				{MZ: 300.0, Intensity: 8.0},
			},
		},
		{
			name:     "2x2 treated as rows",
			peakList: [][]float64{{100.0, 10.0}, {200.0, 5.0}},
			want: []Peak{
				{MZ: 100.0, Intensity: 10.0},
				{MZ: 200.0, Intensity: 5.0},
			},
		},
		{
			name:     "unsorted input is sorted",
			peakList: [][]float64{{300.0, 8.0}, {100.0, 10.0}, {200.0, 5.0}},
			want: []Peak{
				{MZ: 100.0, Intensity: 10.0},
				{MZ: 200.0, Intensity: 5.0},
				{MZ: 300.0, Intensity: 8.0},
			},
		},
		{
			name:     "ragged row",
			peakList: [][]float64{{100.0, 10.0}, {200.0}},
			wantErr:  true,
		},
		{
			name:     "mismatched columns",
			peakList: [][]float64{{100.0, 200.0, 300.0}, {10.0, 5.0}},
			wantErr:  true,
		},
		{
			name:     "empty",
			peakList: [][]float64{},
			want:     []Peak{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.peakList, 500.0, nil, nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(tt.want, s.Peaks()); diff != "" {
				t.Errorf("New() peaks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProjections(t *testing.T) {
	s, err := New([][]float64{{100.0, 10.0}, {200.0, 5.0}, {300.0, 8.0}}, 500.0, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if diff := cmp.Diff([]float64{100.0, 200.0, 300.0}, s.MZ()); diff != "" {
		t.Errorf("MZ() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{10.0, 5.0, 8.0}, s.Intensity()); diff != "" {
		t.Errorf("Intensity() mismatch (-want +got):\n%s", diff)
	}

	sel := s.Select([]int{2, 0})
	want := []Peak{{MZ: 300.0, Intensity: 8.0}, {MZ: 100.0, Intensity: 10.0}}
	if diff := cmp.Diff(want, sel); diff != "" {
		t.Errorf("Select() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]float64{200.0, 300.0}, s.SelectMZ([]int{1, 2})); diff != "" {
		t.Errorf("SelectMZ() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{5.0, 8.0}, s.SelectIntensity([]int{1, 2})); diff != "" {
		t.Errorf("SelectIntensity() mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize(t *testing.T) {
	s, err := New([][]float64{{100.0, 10.0}, {200.0, 5.0}, {300.0, 8.0}}, 500.0, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := s.Normalize(); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	max, err := s.MaxIntensity()
	if err != nil {
		t.Fatalf("MaxIntensity() error = %v", err)
	}
	if math.Abs(max-1.0) > 1e-12 {
		t.Errorf("max intensity after normalize = %v, want 1.0", max)
	}

	// Pairwise ratios are preserved.
	in := s.Intensity()
	if math.Abs(in[0]/in[1]-2.0) > 1e-12 {
		t.Errorf("intensity ratio peak0/peak1 = %v, want 2.0", in[0]/in[1])
	}
	if math.Abs(in[2]/in[1]-1.6) > 1e-12 {
		t.Errorf("intensity ratio peak2/peak1 = %v, want 1.6", in[2]/in[1])
	}
}

func TestNormalizeEmpty(t *testing.T) {
	s, err := New([][]float64{}, 500.0, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := s.Normalize(); !errors.Is(err, ErrEmptySpectrum) {
		t.Errorf("Normalize() on empty spectrum error = %v, want ErrEmptySpectrum", err)
	}
	if _, err := s.MaxIntensity(); !errors.Is(err, ErrEmptySpectrum) {
		t.Errorf("MaxIntensity() on empty spectrum error = %v, want ErrEmptySpectrum", err)
	}
}

func TestSpectrumEqual(t *testing.T) {
	charge2 := 2
	charge3 := 3
	rt := 60.0

	base, _ := New([][]float64{{100.0, 10.0}, {200.0, 5.0}}, 500.0, &charge2, nil)

	tests := []struct {
		name  string
		other *Spectrum
		want  bool
	}{
		{
			name: "identical",
			other: func() *Spectrum {
				s, _ := New([][]float64{{100.0, 10.0}, {200.0, 5.0}}, 500.0, &charge2, nil)
				return s
			}(),
			want: true,
		},
		{
			name: "retention time ignored",
			other: func() *Spectrum {
				s, _ := New([][]float64{{100.0, 10.0}, {200.0, 5.0}}, 500.0, &charge2, &rt)
				return s
			}(),
			want: true,
		},
		{
			name: "different charge",
			other: func() *Spectrum {
				s, _ := New([][]float64{{100.0, 10.0}, {200.0, 5.0}}, 500.0, &charge3, nil)
				return s
			}(),
			want: false,
		},
		{
			name: "different peaks",
			other: func() *Spectrum {
				s, _ := New([][]float64{{100.0, 10.0}, {200.0, 6.0}}, 500.0, &charge2, nil)
				return s
			}(),
			want: false,
		},
		{
			name: "different precursor",
			other: func() *Spectrum {
				s, _ := New([][]float64{{100.0, 10.0}, {200.0, 5.0}}, 501.0, &charge2, nil)
				return s
			}(),
			want: false,
		},
		{
			name:  "nil",
			other: nil,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetPeaksRestoresOrder(t *testing.T) {
	s, _ := New([][]float64{{100.0, 10.0}}, 500.0, nil, nil)
	s.SetPeaks([]Peak{{MZ: 300.0, Intensity: 1.0}, {MZ: 100.0, Intensity: 2.0}})

	if diff := cmp.Diff([]float64{100.0, 300.0}, s.MZ()); diff != "" {
		t.Errorf("SetPeaks did not restore sort order (-want +got):\n%s", diff)
	}
}
