package rtf

import (
	"sort"

	"github.com/xavi-mat/simplertf/core/errors"
	"github.com/xavi-mat/simplertf/core/twips"
)

// Geometry is the page geometry: paper size and the four margins,
// all in twips.
type Geometry struct {
	Height       int
	Width        int
	MarginTop    int
	MarginBottom int
	MarginLeft   int
	MarginRight  int
}

// LayoutOverrides carry explicit geometry values for SetLayout, each a
// length literal per twips.ParseLength. An empty field keeps the
// preset value (or the document's current value when no preset is
// named).
type LayoutOverrides struct {
	Height       string
	Width        string
	MarginTop    string
	MarginBottom string
	MarginLeft   string
	MarginRight  string
}

// presetGeometry returns the fixed geometry of a named layout preset.
func presetGeometry(name string) (Geometry, bool) {
	switch name {
	case "A4": // A4, margins 2cm
		return Geometry{16838, 11906, 1134, 1134, 1134, 1134}, true
	case "B5": // B5, margins 3cm, 2.5cm, 2cm, 2cm
		return Geometry{14173, 9978, 1701, 1417, 1134, 1134}, true
	case "A5":
		return Geometry{11906, 8391, 1151, 720, 567, 862}, true
	case "royal": // 15.57cm x 23.39cm
		return Geometry{13262, 8827, 1152, 720, 864, 864}, true
	case "digest": // 5.5in x 8.5in
		return Geometry{12240, 7920, 1151, 720, 567, 862}, true
	case "LAS": // 17cm x 24cm
		return Geometry{
			Height:       mustLength("24cm"),
			Width:        mustLength("17cm"),
			MarginTop:    mustLength("2.8cm"),
			MarginBottom: mustLength("2.5cm"),
			MarginLeft:   mustLength("2cm"),
			MarginRight:  mustLength("2cm"),
		}, true
	}
	return Geometry{}, false
}

// PresetNames lists the known layout preset names, sorted.
func PresetNames() []string {
	names := []string{"A4", "B5", "A5", "royal", "digest", "LAS"}
	sort.Strings(names)
	return names
}

func mustLength(s string) int {
	tw, err := twips.ParseLength(s)
	if err != nil {
		panic(err)
	}
	return tw
}

// SetLayout sets the page geometry. A preset name selects one of the
// fixed layouts (unknown names are a ConfigError); explicit overrides
// take precedence over the preset, and unset values retain the
// document's current geometry. After a successful call all six fields
// are fully determined; on error the geometry is unchanged.
func (d *Document) SetLayout(preset string, o LayoutOverrides) error {
	g := d.geometry
	if preset != "" {
		pg, ok := presetGeometry(preset)
		if !ok {
			return errors.NewConfig(preset, "unknown layout preset")
		}
		g = pg
	}

	fields := []struct {
		literal string
		dst     *int
	}{
		{o.Height, &g.Height},
		{o.Width, &g.Width},
		{o.MarginTop, &g.MarginTop},
		{o.MarginBottom, &g.MarginBottom},
		{o.MarginLeft, &g.MarginLeft},
		{o.MarginRight, &g.MarginRight},
	}
	for _, f := range fields {
		tw, err := twips.ParseLength(f.literal)
		if err != nil {
			return err
		}
		if tw != twips.Unset {
			*f.dst = tw
		}
	}

	d.geometry = g
	if preset != "" {
		d.log.Debug("layout set", "preset", preset)
	} else {
		d.log.Debug("layout set")
	}
	return nil
}

// Layout returns the current page geometry.
func (d *Document) Layout() Geometry {
	return d.geometry
}
