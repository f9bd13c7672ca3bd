package unimod

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/ikcgroup/ptmvalidate/pkg/core"
)

// compositionRegex tokenizes catalog composition strings: an element or
// isotope token with an optional signed count, e.g. "H(2) C(1) 13C O(-1)".
var compositionRegex = regexp.MustCompile(`(\w+)\(?(-?[0-9]+)?\)?`)

// formulaRegex tokenizes ad hoc formulas, where the count is mandatory.
var formulaRegex = regexp.MustCompile(`(\w+)\(([0-9]+)\)`)

// ParseComposition parses a catalog composition string into a map of
// element token to count. Tokens without a count default to 1. Substrings
// that do not match the grammar are dropped rather than reported; the
// catalog mixes notations and strictness here would reject valid entries.
func ParseComposition(composition string) map[string]int {
	formula := make(map[string]int)
	for _, m := range compositionRegex.FindAllStringSubmatch(composition, -1) {
		count := 1
		if m[2] != "" {
			n, err := strconv.Atoi(m[2])
			if err != nil {
				continue
			}
			count = n
		}
		formula[m[1]] = count
	}
	return formula
}

// MassFromFormula computes the mass of a formula string such as
// "H(2) C(1) O(1)" directly against the element mass table, without
// consulting the catalog. Every token must carry an explicit count.
// Unknown element tokens are an error.
func MassFromFormula(formula string, mt core.MassType) (float64, error) {
	mass := 0.0
	for _, m := range formulaRegex.FindAllStringSubmatch(formula, -1) {
		elem, ok := core.ElementMasses[m[1]]
		if !ok {
			return 0, fmt.Errorf("unknown element %q in formula %q", m[1], formula)
		}
		count, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, fmt.Errorf("invalid count %q in formula %q: %w", m[2], formula, err)
		}
		mass += float64(count) * elem.Mass(mt)
	}
	return mass, nil
}
