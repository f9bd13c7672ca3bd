package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ikcgroup/ptmvalidate/pkg/filter"
	readmgf "github.com/ikcgroup/ptmvalidate/pkg/reader/mgf"
	writemgf "github.com/ikcgroup/ptmvalidate/pkg/writer/mgf"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Centroid, deisotope-filter and normalize spectra",
	Long: `Clean reads spectra from an MGF file, merges near-duplicate peaks,
removes iTRAQ reporter ion peaks and optionally normalizes intensities,
then writes the cleaned spectra back out as MGF.

Examples:
  # Clean with default thresholds
  ptmvalidate clean --in raw.mgf --out clean.mgf

  # Label-free data, keep reporter region, normalize intensities
  ptmvalidate clean --in raw.mgf --out clean.mgf --keep-isobaric --normalize`,
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	inFile, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer inFile.Close()

	outFile, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	buf := bufio.NewWriter(outFile)
	reader := readmgf.NewReader(inFile)
	writer := writemgf.NewWriter(buf)

	cfg := &filter.CleanConfig{
		CentroidTol:  centroidTol,
		IsobaricTol:  isobaricTol,
		SkipIsobaric: keepIsobaric,
		Normalize:    normalize,
	}

	count := 0
	skipped := 0
	for reader.Next() {
		spec := reader.Spectrum()

		if err := cfg.Apply(spec); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping spectrum %s: %v\n", reader.ID(), err)
			skipped++
			continue
		}
		if spec.Len() == 0 {
			skipped++
			continue
		}

		if err := writer.WriteSpectrum(spec, reader.ID()); err != nil {
			return err
		}
		count++
	}
	if err := reader.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", inputFile, err)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	fmt.Printf("Cleaned %d spectra (%d skipped)\n", count, skipped)
	return nil
}
