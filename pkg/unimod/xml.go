package unimod

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html/charset"
)

// Namespace is the schema namespace of the Unimod XML catalog.
const Namespace = "http://www.unimod.org/xmlns/schema/unimod_2"

type modElement struct {
	RecordID    string               `xml:"record_id,attr"`
	Title       string               `xml:"title,attr"`
	FullName    string               `xml:"full_name,attr"`
	Delta       deltaElement         `xml:"delta"`
	Specificity []specificityElement `xml:"specificity"`
}

type deltaElement struct {
	MonoMass    string `xml:"mono_mass,attr"`
	AvgeMass    string `xml:"avge_mass,attr"`
	Composition string `xml:"composition,attr"`
}

type specificityElement struct {
	Site           string `xml:"site,attr"`
	Classification string `xml:"classification,attr"`
}

// ParseXML streams a Unimod XML catalog and builds the lookup index. The
// build is fail-fast: the first malformed record aborts with an error and
// no partial index is returned.
func ParseXML(r io.Reader) (*Index, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel

	var (
		mods  []Modification
		sites []Site
	)

	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "mod" || start.Name.Space != Namespace {
			continue
		}

		var elem modElement
		if err := d.DecodeElement(&elem, &start); err != nil {
			return nil, fmt.Errorf("failed to decode mod element: %w", err)
		}

		mod, err := elem.toModification()
		if err != nil {
			return nil, err
		}
		mods = append(mods, mod)

		for _, spec := range elem.Specificity {
			sites = append(sites, Site{
				RecordID:       mod.RecordID,
				Site:           spec.Site,
				Classification: spec.Classification,
			})
		}
	}

	return NewIndex(mods, sites)
}

// toModification validates and converts one parsed mod element.
func (e modElement) toModification() (Modification, error) {
	if e.Title == "" {
		return Modification{}, fmt.Errorf("mod record %q has no title", e.RecordID)
	}

	id, err := strconv.Atoi(e.RecordID)
	if err != nil {
		return Modification{}, fmt.Errorf("mod %q: invalid record id %q: %w", e.Title, e.RecordID, err)
	}
	mono, err := strconv.ParseFloat(e.Delta.MonoMass, 64)
	if err != nil {
		return Modification{}, fmt.Errorf("mod %q: invalid mono mass %q: %w", e.Title, e.Delta.MonoMass, err)
	}
	avg, err := strconv.ParseFloat(e.Delta.AvgeMass, 64)
	if err != nil {
		return Modification{}, fmt.Errorf("mod %q: invalid average mass %q: %w", e.Title, e.Delta.AvgeMass, err)
	}

	return Modification{
		RecordID:    id,
		Name:        e.Title,
		FullName:    NormalizeFullName(e.FullName),
		MonoMass:    mono,
		AvgMass:     avg,
		Composition: e.Delta.Composition,
	}, nil
}
