// Package cmd provides CLI command implementations
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Flags for clean command
	inputFile    string
	outputFile   string
	centroidTol  float64
	isobaricTol  float64
	keepIsobaric bool
	normalize    bool

	// Flags for unimod commands
	xmlFile   string
	dbFile    string
	modName   string
	modID     int
	modMass   float64
	massTol   float64
	avgMasses bool
)

var rootCmd = &cobra.Command{
	Use:   "ptmvalidate",
	Short: "ptmvalidate - PTM identification validation toolkit",
	Long: `ptmvalidate prepares tandem mass spectra and modification knowledge for
validating post-translational modification identifications.

The clean command centroids spectra, strips isobaric reporter peaks and
normalizes intensities; the unimod commands build and query a fast lookup
index over the Unimod modification catalog.`,
	Version: "1.0.0",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(unimodCmd)

	cleanCmd.Flags().StringVarP(&inputFile, "in", "i", "", "Input MGF file (required)")
	cleanCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Output MGF file (required)")
	cleanCmd.Flags().Float64Var(&centroidTol, "centroid-tol", 0.1, "Adjacency threshold in Da for merging peaks")
	cleanCmd.Flags().Float64Var(&isobaricTol, "isobaric-tol", 0.1, "Tolerance in Da for reporter ion removal")
	cleanCmd.Flags().BoolVar(&keepIsobaric, "keep-isobaric", false, "Do not remove iTRAQ reporter ion peaks")
	cleanCmd.Flags().BoolVar(&normalize, "normalize", false, "Normalize intensities to the base peak")

	cleanCmd.MarkFlagRequired("in")
	cleanCmd.MarkFlagRequired("out")

	unimodCmd.AddCommand(unimodBuildCmd)
	unimodCmd.AddCommand(unimodLookupCmd)

	unimodBuildCmd.Flags().StringVar(&xmlFile, "xml", "", "Unimod XML catalog file (required)")
	unimodBuildCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Output SQLite snapshot (required)")
	unimodBuildCmd.MarkFlagRequired("xml")
	unimodBuildCmd.MarkFlagRequired("out")

	unimodLookupCmd.Flags().StringVar(&xmlFile, "xml", "", "Unimod XML catalog file")
	unimodLookupCmd.Flags().StringVar(&dbFile, "db", "", "SQLite snapshot built by 'unimod build'")
	unimodLookupCmd.Flags().StringVar(&modName, "name", "", "Look up a modification by name")
	unimodLookupCmd.Flags().IntVar(&modID, "id", 0, "Look up a modification by record id")
	unimodLookupCmd.Flags().Float64Var(&modMass, "mass", 0, "Look up a modification name by mass")
	unimodLookupCmd.Flags().Float64Var(&massTol, "tol", 0.001, "Mass tolerance in Da for --mass lookups")
	unimodLookupCmd.Flags().BoolVar(&avgMasses, "avg", false, "Report average instead of monoisotopic masses")
}

var unimodCmd = &cobra.Command{
	Use:   "unimod",
	Short: "Build and query the Unimod modification index",
}
