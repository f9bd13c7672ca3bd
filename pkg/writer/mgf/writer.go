// Package mgf serializes spectra to Mascot generic format peak list blocks
// for interchange with external spectrum viewers.
package mgf

import (
	"fmt"
	"io"
	"strings"

	"github.com/ikcgroup/ptmvalidate/pkg/core"
)

// Block renders the BEGIN IONS / END IONS block for a spectrum. The layout
// is fixed: downstream tools parse it byte for byte. Charge and retention
// time lines appear only when the spectrum carries them; the retention time
// is truncated to whole seconds and every peak line ends with a constant
// charge field of 1.
func Block(s *core.Spectrum, specID string) string {
	var b strings.Builder

	b.WriteString("BEGIN IONS\n")
	fmt.Fprintf(&b, "TITLE=Locus:%s\n", specID)
	if s.Charge != nil {
		fmt.Fprintf(&b, "CHARGE=%d+\n", *s.Charge)
	}
	fmt.Fprintf(&b, "PEPMASS=%.5f\n", s.PrecursorMZ)
	if s.RetentionTime != nil {
		fmt.Fprintf(&b, "RTINSECONDS=%d\n", int(*s.RetentionTime))
	}
	for i, p := range s.Peaks() {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%.4f %.4f 1", p.MZ, p.Intensity)
	}
	b.WriteString("\nEND IONS\n")

	return b.String()
}

// Writer writes successive spectra to an underlying stream.
type Writer struct {
	w io.Writer
}

// NewWriter creates a Writer on top of w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteSpectrum appends one spectrum block.
func (w *Writer) WriteSpectrum(s *core.Spectrum, specID string) error {
	if _, err := io.WriteString(w.w, Block(s, specID)); err != nil {
		return fmt.Errorf("failed to write spectrum %s: %w", specID, err)
	}
	return nil
}
