// Package mgf provides a streaming reader for Mascot generic format peak
// lists.
package mgf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ikcgroup/ptmvalidate/pkg/core"
)

// Reader provides streaming access to MGF files.
type Reader struct {
	scanner     *bufio.Scanner
	lineNum     int
	currentSpec *core.Spectrum
	currentID   string
	err         error
}

// NewReader creates a new MGF reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(r),
	}
}

// Next advances to the next spectrum. Returns false when no more spectra or
// on error.
func (r *Reader) Next() bool {
	r.currentSpec = nil
	r.currentID = ""

	spec, id, err := r.readSpectrum()
	if err != nil {
		if err != io.EOF {
			r.err = err
		}
		return false
	}

	r.currentSpec = spec
	r.currentID = id
	return true
}

// Spectrum returns the current spectrum.
func (r *Reader) Spectrum() *core.Spectrum {
	return r.currentSpec
}

// ID returns the identifier of the current spectrum.
func (r *Reader) ID() string {
	return r.currentID
}

// Err returns any error encountered during reading.
func (r *Reader) Err() error {
	return r.err
}

// readSpectrum reads a single BEGIN IONS / END IONS block.
func (r *Reader) readSpectrum() (*core.Spectrum, string, error) {
	var (
		peaks   []core.Peak
		precMZ  float64
		charge  *int
		rt      *float64
		id      string
		inBlock bool
	)

	for r.scanner.Scan() {
		r.lineNum++
		line := strings.TrimSpace(r.scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !inBlock {
			if line == "BEGIN IONS" {
				inBlock = true
			}
			continue
		}

		if line == "END IONS" {
			return core.FromPeaks(peaks, precMZ, charge, rt), id, nil
		}

		if key, value, found := strings.Cut(line, "="); found && !isPeakLine(line) {
			switch key {
			case "TITLE":
				id = strings.TrimPrefix(value, "Locus:")
			case "PEPMASS":
				// PEPMASS may carry a second, intensity column.
				mzField := strings.Fields(value)[0]
				mz, err := strconv.ParseFloat(mzField, 64)
				if err != nil {
					return nil, "", fmt.Errorf("line %d: invalid PEPMASS %q: %w", r.lineNum, value, err)
				}
				precMZ = mz
			case "CHARGE":
				c, err := parseCharge(value)
				if err != nil {
					return nil, "", fmt.Errorf("line %d: %w", r.lineNum, err)
				}
				charge = &c
			case "RTINSECONDS":
				secs, err := strconv.ParseFloat(value, 64)
				if err != nil {
					return nil, "", fmt.Errorf("line %d: invalid RTINSECONDS %q: %w", r.lineNum, value, err)
				}
				rt = &secs
			}
			continue
		}

		peak, err := parsePeak(line)
		if err != nil {
			return nil, "", fmt.Errorf("line %d: %w", r.lineNum, err)
		}
		peaks = append(peaks, peak)
	}

	if err := r.scanner.Err(); err != nil {
		return nil, "", err
	}
	if inBlock {
		return nil, "", fmt.Errorf("line %d: unterminated BEGIN IONS block", r.lineNum)
	}
	return nil, "", io.EOF
}

// isPeakLine distinguishes peak rows from KEY=value headers: a peak row
// starts with a digit.
func isPeakLine(line string) bool {
	return line != "" && line[0] >= '0' && line[0] <= '9'
}

// parseCharge parses charge fields like "2+", "3-" or "2".
func parseCharge(value string) (int, error) {
	sign := 1
	if strings.HasSuffix(value, "-") {
		sign = -1
	}
	value = strings.TrimRight(value, "+-")
	c, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid CHARGE %q: %w", value, err)
	}
	return sign * c, nil
}

// parsePeak parses an "mz intensity [...]" row; extra columns are ignored.
func parsePeak(line string) (core.Peak, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return core.Peak{}, fmt.Errorf("invalid peak line %q: expected m/z and intensity", line)
	}

	mz, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return core.Peak{}, fmt.Errorf("invalid m/z %q: %w", fields[0], err)
	}
	intensity, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return core.Peak{}, fmt.Errorf("invalid intensity %q: %w", fields[1], err)
	}

	return core.Peak{MZ: mz, Intensity: intensity}, nil
}
