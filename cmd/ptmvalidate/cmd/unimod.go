package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ikcgroup/ptmvalidate/pkg/core"
	"github.com/ikcgroup/ptmvalidate/pkg/unimod"
	"github.com/ikcgroup/ptmvalidate/pkg/writer/sqlite"
)

var unimodBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build an SQLite snapshot from a Unimod XML catalog",
	Long: `Build parses the Unimod XML catalog once and stores the resulting
modification and site tables in an SQLite snapshot, which later commands
and processes can load without reparsing the XML.`,
	RunE: runUnimodBuild,
}

var unimodLookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Query the modification index",
	Long: `Lookup queries the modification index by name, record id or mass.
The index is loaded from an SQLite snapshot (--db) or built on the fly
from a Unimod XML catalog (--xml).

Examples:
  ptmvalidate unimod lookup --db unimod.db --name Oxidation
  ptmvalidate unimod lookup --db unimod.db --id 35 --avg
  ptmvalidate unimod lookup --xml unimod.xml --mass 79.96633 --tol 0.001`,
	RunE: runUnimodLookup,
}

func runUnimodBuild(cmd *cobra.Command, args []string) error {
	f, err := os.Open(xmlFile)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	idx, err := unimod.ParseXML(f)
	if err != nil {
		return fmt.Errorf("failed to build index from %s: %w", xmlFile, err)
	}

	if err := sqlite.Write(outputFile, idx); err != nil {
		return err
	}

	fmt.Printf("Indexed %d modifications, %d sites to %s\n",
		len(idx.Modifications()), len(idx.Sites()), outputFile)
	return nil
}

func loadIndex() (*unimod.Index, error) {
	switch {
	case dbFile != "":
		return sqlite.Load(dbFile)
	case xmlFile != "":
		f, err := os.Open(xmlFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog: %w", err)
		}
		defer f.Close()
		return unimod.ParseXML(f)
	default:
		return nil, fmt.Errorf("either --db or --xml is required")
	}
}

func runUnimodLookup(cmd *cobra.Command, args []string) error {
	idx, err := loadIndex()
	if err != nil {
		return err
	}

	massType := core.MonoMass
	if avgMasses {
		massType = core.AvgMass
	}

	switch {
	case modName != "":
		mass, err := idx.MassOf(modName, massType)
		if err != nil {
			return err
		}
		formula, err := idx.FormulaOf(modName)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%.6f\t%s\n", modName, mass, formatFormula(formula))

	case modID != 0:
		name, mass, err := idx.EntryByID(modID, massType)
		if err != nil {
			return err
		}
		fmt.Printf("%d\t%s\t%.6f\n", modID, name, mass)

	case modMass != 0:
		name, err := idx.NameOf(modMass, massType, massTol)
		if err != nil {
			return err
		}
		fmt.Printf("%.6f\t%s\n", modMass, name)

	default:
		return fmt.Errorf("one of --name, --id or --mass is required")
	}

	return nil
}

func formatFormula(formula map[string]int) string {
	elems := make([]string, 0, len(formula))
	for elem := range formula {
		elems = append(elems, elem)
	}
	sort.Strings(elems)

	parts := make([]string, 0, len(elems))
	for _, elem := range elems {
		parts = append(parts, fmt.Sprintf("%s(%d)", elem, formula[elem]))
	}
	return strings.Join(parts, " ")
}
