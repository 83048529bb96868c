package rtf

import (
	"testing"

	"github.com/xavi-mat/simplertf/core/errors"
)

// TestSetLayoutA4 verifies the A4 preset geometry end to end.
func TestSetLayoutA4(t *testing.T) {
	d := newTestDocument(t)
	if err := d.SetLayout("A4", LayoutOverrides{}); err != nil {
		t.Fatalf("SetLayout failed: %v", err)
	}

	want := Geometry{Height: 16838, Width: 11906,
		MarginTop: 1134, MarginBottom: 1134, MarginLeft: 1134, MarginRight: 1134}
	if got := d.Layout(); got != want {
		t.Errorf("Layout() = %+v, want %+v", got, want)
	}
}

// TestSetLayoutPresets verifies every named preset is accepted and
// fully determines the geometry.
func TestSetLayoutPresets(t *testing.T) {
	tests := []struct {
		name string
		want Geometry
	}{
		{"A4", Geometry{16838, 11906, 1134, 1134, 1134, 1134}},
		{"B5", Geometry{14173, 9978, 1701, 1417, 1134, 1134}},
		{"A5", Geometry{11906, 8391, 1151, 720, 567, 862}},
		{"royal", Geometry{13262, 8827, 1152, 720, 864, 864}},
		{"digest", Geometry{12240, 7920, 1151, 720, 567, 862}},
		{"LAS", Geometry{13606, 9638, 1587, 1417, 1134, 1134}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDocument(t)
			if err := d.SetLayout(tt.name, LayoutOverrides{}); err != nil {
				t.Fatalf("SetLayout(%q) failed: %v", tt.name, err)
			}
			if got := d.Layout(); got != tt.want {
				t.Errorf("Layout() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestSetLayoutUnknownPreset verifies the ConfigError and that the
// geometry is untouched on failure.
func TestSetLayoutUnknownPreset(t *testing.T) {
	d := newTestDocument(t)
	before := d.Layout()

	err := d.SetLayout("tabloid", LayoutOverrides{})
	if err == nil {
		t.Fatal("SetLayout should fail for unknown preset")
	}
	if !errors.Is(err, errors.ErrConfig) {
		t.Errorf("error = %v, want ErrConfig", err)
	}
	if d.Layout() != before {
		t.Error("geometry must be unchanged after a failed call")
	}
}

// TestSetLayoutOverrides verifies explicit values take precedence over
// the preset while unset fields keep preset values.
func TestSetLayoutOverrides(t *testing.T) {
	d := newTestDocument(t)
	err := d.SetLayout("A4", LayoutOverrides{MarginTop: "2.8cm", Width: "7920"})
	if err != nil {
		t.Fatalf("SetLayout failed: %v", err)
	}

	g := d.Layout()
	if g.MarginTop != 1587 {
		t.Errorf("MarginTop = %d, want 1587 (2.8cm override)", g.MarginTop)
	}
	if g.Width != 7920 {
		t.Errorf("Width = %d, want 7920 (twips override)", g.Width)
	}
	if g.Height != 16838 || g.MarginBottom != 1134 {
		t.Errorf("unset fields must keep preset values: %+v", g)
	}
}

// TestSetLayoutNoPreset verifies overrides against the current
// geometry when no preset is named.
func TestSetLayoutNoPreset(t *testing.T) {
	d := newTestDocument(t)
	if err := d.SetLayout("", LayoutOverrides{MarginLeft: "1in"}); err != nil {
		t.Fatalf("SetLayout failed: %v", err)
	}

	g := d.Layout()
	if g.MarginLeft != 1440 {
		t.Errorf("MarginLeft = %d, want 1440", g.MarginLeft)
	}
	if g.Height != 16838 {
		t.Errorf("Height = %d, want initial 16838 retained", g.Height)
	}
}

// TestSetLayoutBadLiteral verifies ParseError propagation and that the
// geometry stays unchanged.
func TestSetLayoutBadLiteral(t *testing.T) {
	d := newTestDocument(t)
	before := d.Layout()

	err := d.SetLayout("", LayoutOverrides{Height: "12furlongs"})
	if err == nil {
		t.Fatal("SetLayout should fail for a bad length literal")
	}
	if !errors.Is(err, errors.ErrParse) {
		t.Errorf("error = %v, want ErrParse", err)
	}
	if d.Layout() != before {
		t.Error("geometry must be unchanged after a failed call")
	}
}

// TestPresetNames verifies the advertised preset list.
func TestPresetNames(t *testing.T) {
	names := PresetNames()
	if len(names) != 6 {
		t.Fatalf("PresetNames = %v, want 6 entries", names)
	}
	for _, n := range names {
		if _, ok := presetGeometry(n); !ok {
			t.Errorf("advertised preset %q not resolvable", n)
		}
	}
}
