// Chemistry constants and peptide mass calculations.
package core

// MassType selects between the two mass conventions.
type MassType int

const (
	// MonoMass is the monoisotopic mass convention.
	MonoMass MassType = iota
	// AvgMass is the isotope-weighted average mass convention.
	AvgMass
)

func (mt MassType) String() string {
	if mt == AvgMass {
		return "avg"
	}
	return "mono"
}

// ElementMass holds the monoisotopic and average mass of an element.
type ElementMass struct {
	Mono float64
	Avg  float64
}

// Mass returns the mass for the given convention.
func (e ElementMass) Mass(mt MassType) float64 {
	if mt == AvgMass {
		return e.Avg
	}
	return e.Mono
}

// ProtonMass is used for m/z calculations from neutral masses.
const ProtonMass = 1.00727646688

// ElementMasses maps element symbols, including the isotope tokens used in
// Unimod composition strings (2H, 13C, 15N, 18O), to their masses.
var ElementMasses = map[string]ElementMass{
	"H":   {1.0078250321, 1.00794},
	"2H":  {2.0141017780, 2.0141017780},
	"Li":  {7.0160030000, 6.941},
	"B":   {11.0093055000, 10.811},
	"C":   {12.0000000000, 12.0107},
	"13C": {13.0033548378, 13.0033548378},
	"N":   {14.0030740052, 14.0067},
	"15N": {15.0001088984, 15.0001088984},
	"O":   {15.9949146221, 15.9994},
	"18O": {17.9991603000, 17.9991603000},
	"F":   {18.9984032200, 18.9984032},
	"Na":  {22.9897692800, 22.98977},
	"Mg":  {23.9850423000, 24.305},
	"Al":  {26.9815386000, 26.9815386},
	"P":   {30.9737615100, 30.973761},
	"S":   {31.9720706900, 32.065},
	"Cl":  {34.9688527100, 35.453},
	"K":   {38.9637069000, 39.0983},
	"Ca":  {39.9625912000, 40.078},
	"Cr":  {51.9405098000, 51.9961},
	"Mn":  {54.9380471000, 54.938045},
	"Fe":  {55.9349393000, 55.845},
	"Ni":  {57.9353462000, 58.6934},
	"Co":  {58.9331976000, 58.933195},
	"Cu":  {62.9295989000, 63.546},
	"Zn":  {63.9291448000, 65.409},
	"As":  {74.9215942000, 74.9215942},
	"Se":  {79.9165196000, 78.96},
	"Br":  {78.9183361000, 79.904},
	"Mo":  {97.9054073000, 95.94},
	"Ag":  {106.9050920000, 107.8682},
	"Cd":  {113.9033570000, 112.411},
	"I":   {126.9044730000, 126.90447},
	"Hg":  {201.9706170000, 200.59},
	"Au":  {196.9665430000, 196.96655},
}

// Composition stores the elemental composition of an amino acid residue.
type Composition struct {
	C, H, N, O, S int
}

// Mass computes the composition's mass under the given convention.
func (c Composition) Mass(mt MassType) float64 {
	return float64(c.C)*ElementMasses["C"].Mass(mt) +
		float64(c.H)*ElementMasses["H"].Mass(mt) +
		float64(c.N)*ElementMasses["N"].Mass(mt) +
		float64(c.O)*ElementMasses["O"].Mass(mt) +
		float64(c.S)*ElementMasses["S"].Mass(mt)
}

// ResidueCompositions maps amino acid one-letter codes to residue
// (dehydrated) elemental compositions.
var ResidueCompositions = map[rune]Composition{
	'A': {C: 3, H: 5, N: 1, O: 1, S: 0},
	'R': {C: 6, H: 12, N: 4, O: 1, S: 0},
	'N': {C: 4, H: 6, N: 2, O: 2, S: 0},
	'D': {C: 4, H: 5, N: 1, O: 3, S: 0},
	'C': {C: 3, H: 5, N: 1, O: 1, S: 1},
	'E': {C: 5, H: 7, N: 1, O: 3, S: 0},
	'Q': {C: 5, H: 8, N: 2, O: 2, S: 0},
	'G': {C: 2, H: 3, N: 1, O: 1, S: 0},
	'H': {C: 6, H: 7, N: 3, O: 1, S: 0},
	'I': {C: 6, H: 11, N: 1, O: 1, S: 0},
	'L': {C: 6, H: 11, N: 1, O: 1, S: 0},
	'K': {C: 6, H: 12, N: 2, O: 1, S: 0},
	'M': {C: 5, H: 9, N: 1, O: 1, S: 1},
	'F': {C: 9, H: 9, N: 1, O: 1, S: 0},
	'P': {C: 5, H: 7, N: 1, O: 1, S: 0},
	'S': {C: 3, H: 5, N: 1, O: 2, S: 0},
	'T': {C: 4, H: 7, N: 1, O: 2, S: 0},
	'W': {C: 11, H: 10, N: 2, O: 1, S: 0},
	'Y': {C: 9, H: 9, N: 1, O: 2, S: 0},
	'V': {C: 5, H: 9, N: 1, O: 1, S: 0},
}

// ResidueMass returns the monoisotopic residue mass for an amino acid
// one-letter code.
func ResidueMass(aa rune) (float64, bool) {
	comp, ok := ResidueCompositions[aa]
	if !ok {
		return 0, false
	}
	return comp.Mass(MonoMass), true
}

// waterMass is the mono mass of H2O, added once per intact peptide.
func waterMass() float64 {
	return 2*ElementMasses["H"].Mono + ElementMasses["O"].Mono
}

// NeutralPeptideMass computes the neutral monoisotopic mass of a peptide
// sequence plus any modification mass shifts. Unknown residue codes are
// skipped, matching lenient sequence handling elsewhere in the pipeline.
func NeutralPeptideMass(sequence string, modMasses ...float64) float64 {
	mass := waterMass()
	for _, aa := range sequence {
		if m, ok := ResidueMass(aa); ok {
			mass += m
		}
	}
	for _, m := range modMasses {
		mass += m
	}
	return mass
}

// PrecursorMZ converts a neutral mass to the m/z observed at the given
// positive charge state.
func PrecursorMZ(neutralMass float64, charge int) float64 {
	return (neutralMass + float64(charge)*ProtonMass) / float64(charge)
}
