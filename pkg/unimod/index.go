// Package unimod builds a fast, tolerance-aware lookup index over the
// Unimod modification catalog.
package unimod

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ikcgroup/ptmvalidate/pkg/core"
)

// DefaultMassTol is the mass tolerance, in Da, for looking up a
// modification name by mass.
const DefaultMassTol = 0.001

// Modification is one catalog entry. FullName is stored normalized
// (lowercase, spaces stripped) and serves as a secondary lookup key.
type Modification struct {
	RecordID    int
	Name        string
	FullName    string
	MonoMass    float64
	AvgMass     float64
	Composition string
}

// Mass returns the modification mass for the given convention.
func (m Modification) Mass(mt core.MassType) float64 {
	if mt == core.AvgMass {
		return m.AvgMass
	}
	return m.MonoMass
}

// Site relates a modification to a residue where it is observed, with the
// catalog's classification label.
type Site struct {
	RecordID       int
	Site           string
	Classification string
}

// Entry keys the result of a site join: a modification name with its mass
// under the requested convention.
type Entry struct {
	Name string
	Mass float64
}

// massEntry pairs a mass with the table ordinal of its modification.
type massEntry struct {
	mass float64
	ord  int
}

// Index is the built modification catalog: the tables in document order
// plus precomputed secondary indices. It is immutable after construction
// and safe for concurrent reads.
type Index struct {
	mods  []Modification
	sites []Site

	byID       map[int]int
	byName     map[string]int
	byFullName map[string]int
	byMono     []massEntry
	byAvg      []massEntry
	sitesByOrd [][]int

	nameByMass *lruCache[nameQuery, nameResult]
}

type nameQuery struct {
	mass float64
	mt   core.MassType
	tol  float64
}

type nameResult struct {
	name string
	err  error
}

// NormalizeFullName reduces a full name to its stored lookup form.
func NormalizeFullName(fullName string) string {
	return strings.ToLower(strings.ReplaceAll(fullName, " ", ""))
}

// NewIndex builds an Index from catalog rows. Record ids must be unique and
// every name and normalized full name must resolve to a single entry; a
// violation aborts the build.
func NewIndex(mods []Modification, sites []Site) (*Index, error) {
	idx := &Index{
		mods:       mods,
		sites:      sites,
		byID:       make(map[int]int, len(mods)),
		byName:     make(map[string]int, len(mods)),
		byFullName: make(map[string]int, len(mods)),
		byMono:     make([]massEntry, len(mods)),
		byAvg:      make([]massEntry, len(mods)),
		sitesByOrd: make([][]int, len(mods)),
		nameByMass: newLRUCache[nameQuery, nameResult](1024),
	}

	for i, mod := range mods {
		if _, dup := idx.byID[mod.RecordID]; dup {
			return nil, fmt.Errorf("duplicate record id %d", mod.RecordID)
		}
		if _, dup := idx.byName[mod.Name]; dup {
			return nil, fmt.Errorf("duplicate modification name %q", mod.Name)
		}
		if _, dup := idx.byFullName[mod.FullName]; dup {
			return nil, fmt.Errorf("duplicate modification full name %q", mod.FullName)
		}
		idx.byID[mod.RecordID] = i
		idx.byName[mod.Name] = i
		idx.byFullName[mod.FullName] = i
		idx.byMono[i] = massEntry{mass: mod.MonoMass, ord: i}
		idx.byAvg[i] = massEntry{mass: mod.AvgMass, ord: i}
	}

	sortByMass := func(entries []massEntry) {
		sort.Slice(entries, func(a, b int) bool {
			if entries[a].mass != entries[b].mass {
				return entries[a].mass < entries[b].mass
			}
			return entries[a].ord < entries[b].ord
		})
	}
	sortByMass(idx.byMono)
	sortByMass(idx.byAvg)

	for i, site := range sites {
		ord, ok := idx.byID[site.RecordID]
		if !ok {
			return nil, fmt.Errorf("site %d references unknown record id %d", i, site.RecordID)
		}
		idx.sitesByOrd[ord] = append(idx.sitesByOrd[ord], i)
	}

	return idx, nil
}

// Modifications returns the modification table in document order.
func (idx *Index) Modifications() []Modification {
	return idx.mods
}

// Sites returns the site table in document order.
func (idx *Index) Sites() []Site {
	return idx.sites
}

// rowByName resolves a modification by its name, falling back to the
// normalized full name.
func (idx *Index) rowByName(name string) (Modification, error) {
	if ord, ok := idx.byName[name]; ok {
		return idx.mods[ord], nil
	}
	if ord, ok := idx.byFullName[NormalizeFullName(name)]; ok {
		return idx.mods[ord], nil
	}
	return Modification{}, &NotFoundError{Kind: "name", Query: name}
}

// MassOf retrieves the mass of the named modification.
func (idx *Index) MassOf(name string, mt core.MassType) (float64, error) {
	mod, err := idx.rowByName(name)
	if err != nil {
		return 0, err
	}
	return mod.Mass(mt), nil
}

// EntryByID retrieves the name and mass of a modification by record id.
func (idx *Index) EntryByID(id int, mt core.MassType) (string, float64, error) {
	ord, ok := idx.byID[id]
	if !ok {
		return "", 0, &NotFoundError{Kind: "record id", Query: fmt.Sprintf("%d", id)}
	}
	mod := idx.mods[ord]
	return mod.Name, mod.Mass(mt), nil
}

// FormulaOf resolves the named modification's composition string into a
// map of element token to count.
func (idx *Index) FormulaOf(name string) (map[string]int, error) {
	mod, err := idx.rowByName(name)
	if err != nil {
		return nil, err
	}
	return ParseComposition(mod.Composition), nil
}

// NameOf retrieves the name of the modification whose mass lies within
// [mass-tol, mass+tol], taking the qualifying entry earliest in table order
// when several do. A non-positive tol selects DefaultMassTol. Results are
// memoized in a bounded cache since the argument domain is continuous.
func (idx *Index) NameOf(mass float64, mt core.MassType, tol float64) (string, error) {
	if tol <= 0 {
		tol = DefaultMassTol
	}

	q := nameQuery{mass: mass, mt: mt, tol: tol}
	if res, ok := idx.nameByMass.get(q); ok {
		return res.name, res.err
	}

	name, err := idx.nameOf(mass, mt, tol)
	idx.nameByMass.put(q, nameResult{name: name, err: err})
	return name, err
}

func (idx *Index) nameOf(mass float64, mt core.MassType, tol float64) (string, error) {
	entries := idx.byMono
	if mt == core.AvgMass {
		entries = idx.byAvg
	}

	lo, hi := mass-tol, mass+tol
	first := sort.Search(len(entries), func(i int) bool {
		return entries[i].mass >= lo
	})

	best := -1
	for i := first; i < len(entries) && entries[i].mass <= hi; i++ {
		if best == -1 || entries[i].ord < best {
			best = entries[i].ord
		}
	}
	if best == -1 {
		return "", &NotFoundError{
			Kind:  "mass",
			Query: fmt.Sprintf("%g within %g", mass, tol),
		}
	}
	return idx.mods[best].Name, nil
}

// Mods joins the modification and site tables, mapping each (name, mass)
// entry to the sites where the modification is observed. A non-empty
// classification restricts the join to sites carrying that label.
func (idx *Index) Mods(mt core.MassType, classification string) map[Entry][]string {
	out := make(map[Entry][]string)
	for ord, mod := range idx.mods {
		for _, si := range idx.sitesByOrd[ord] {
			site := idx.sites[si]
			if classification != "" && site.Classification != classification {
				continue
			}
			key := Entry{Name: mod.Name, Mass: mod.Mass(mt)}
			out[key] = append(out[key], site.Site)
		}
	}
	return out
}

// PTMs returns the modifications classified as post-translational, mapped
// to their sites.
func (idx *Index) PTMs(mt core.MassType) map[Entry][]string {
	return idx.Mods(mt, "Post-translational")
}
