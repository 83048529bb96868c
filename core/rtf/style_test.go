package rtf

import (
	"strings"
	"testing"
)

// TestFontTableEntry verifies font table markup.
func TestFontTableEntry(t *testing.T) {
	tests := []struct {
		name string
		font Font
		want string
	}{
		{
			name: "minimal",
			font: Font{ID: "f0", Name: "Times New Roman", Family: FamilyNil},
			want: `{\f0\fnil Times New Roman;}`,
		},
		{
			name: "swiss",
			font: Font{ID: "f3", Name: "Linux Biolinum", Family: FamilySwiss},
			want: `{\f3\fswiss Linux Biolinum;}`,
		},
		{
			name: "pitch and charset",
			font: Font{ID: "f1", Name: "Courier", Family: FamilyModern, Pitch: "1", Charset: "0"},
			want: `{\f1\fmodern\fprq1\fcharset0 Courier;}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.font.TableEntry(); got != tt.want {
				t.Errorf("TableEntry() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestColorTableEntry verifies color table markup.
func TestColorTableEntry(t *testing.T) {
	c := Color{ID: "2", Red: 128, Green: 64, Blue: 0}
	want := `\red128\green64\blue0;`
	if got := c.TableEntry(); got != want {
		t.Errorf("TableEntry() = %q, want %q", got, want)
	}
}

// TestStyleApplyCanonicalOrder verifies every set attribute is emitted
// in the fixed canonical sequence.
func TestStyleApplyCanonicalOrder(t *testing.T) {
	s := Style{ID: "s9", Name: "Everything", Attr: StyleAttrs{
		Align:          AlignCenter,
		FontID:         "f2",
		Size:           28,
		LineSpacing:    276,
		SpaceBefore:    1132,
		SpaceAfter:     566,
		KeepWithNext:   true,
		Bold:           true,
		Italic:         true,
		SmallCaps:      true,
		AllCaps:        true,
		WidowControl:   true,
		NoWidowControl: true,
		Hyphenate:      true,
		RTL:            true,
		LTR:            true,
		ColorID:        "3",
		FirstIndent:    -227,
		LeftIndent:     227,
		RightIndent:    113,
		Lang:           1027,
	}}

	want := `\s9\qc\f2\fs28\sl276\slmult1\sb1132\sa566\keepn\b\i\scaps\caps` +
		`\widctlpar\nowidctlpar\hyphpar\rtlpar\ltrpar\cf3\fi-227\li227\ri113\lang1027 `
	if got := s.Apply(); got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
}

// TestStyleApplyUnsetAttributes verifies unset attributes emit nothing.
func TestStyleApplyUnsetAttributes(t *testing.T) {
	s := Style{ID: "s0", Name: "Default"}
	if got := s.Apply(); got != `\s0 ` {
		t.Errorf("Apply() = %q, want %q", got, `\s0 `)
	}
}

// TestStyleApplyTrailingSpace verifies the single trailing space.
func TestStyleApplyTrailingSpace(t *testing.T) {
	s := Style{ID: "s21", Attr: StyleAttrs{Bold: true}}
	got := s.Apply()
	if !strings.HasSuffix(got, " ") {
		t.Errorf("Apply() = %q, want trailing space", got)
	}
	if strings.HasSuffix(got, "  ") {
		t.Errorf("Apply() = %q, want exactly one trailing space", got)
	}
}

// TestStyleTableEntry verifies the stylesheet entry with numeric
// base/next references.
func TestStyleTableEntry(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{
			name: "based on another style",
			style: Style{ID: "s21", Name: "Normal", BasedOn: "s0",
				Attr: StyleAttrs{Align: AlignJustify, FontID: "f1", Size: 24, Lang: 1024}},
			want: `{\s21\sbasedon0\snext21\s21\qj\f1\fs24\lang1024 Normal;}`,
		},
		{
			name:  "self-referencing defaults",
			style: Style{ID: "s0", Name: "Default", Attr: StyleAttrs{Align: AlignJustify}},
			want:  `{\s0\sbasedon0\snext0\s0\qj Default;}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.TableEntry(); got != tt.want {
				t.Errorf("TableEntry() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestStyleNumber verifies identifier prefix stripping.
func TestStyleNumber(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"s21", "21"},
		{"s0", "0"},
		{"heading3", "3"},
		{"nonumber", "0"},
	}

	for _, tt := range tests {
		if got := styleNumber(tt.id); got != tt.want {
			t.Errorf("styleNumber(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
