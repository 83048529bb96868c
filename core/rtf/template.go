package rtf

import (
	"github.com/xavi-mat/simplertf/core/errors"
)

// Template owns the font, color, and style tables plus the document
// defaults merged into every Document built from it. Populate it once
// at startup, then share it read-only: concurrent reads from multiple
// Documents are safe, concurrent registration is not.
type Template struct {
	Fonts  []*Font
	Colors []*Color
	Styles []*Style

	// DefLang and ADefLang are the document default language codes
	// (\deflang, \adeflang).
	DefLang  int
	ADefLang int

	// Author is the default document author.
	Author string

	// DefaultParStyle and DefaultNoteStyle are the style IDs resolved
	// when an authoring call names no style or an unknown one.
	DefaultParStyle  string
	DefaultNoteStyle string

	// Footnotes are the document-wide footnote options.
	Footnotes FootnoteOptions
}

// AddFont registers a font. Registering an ID twice overwrites the
// earlier entry in place (last write wins, no error).
func (t *Template) AddFont(f Font) {
	for i, old := range t.Fonts {
		if old.ID == f.ID {
			t.Fonts[i] = &f
			return
		}
	}
	t.Fonts = append(t.Fonts, &f)
}

// AddColor registers a color. Duplicate IDs overwrite.
func (t *Template) AddColor(c Color) {
	for i, old := range t.Colors {
		if old.ID == c.ID {
			t.Colors[i] = &c
			return
		}
	}
	t.Colors = append(t.Colors, &c)
}

// AddStyle registers a style. Duplicate IDs overwrite.
func (t *Template) AddStyle(s Style) {
	for i, old := range t.Styles {
		if old.ID == s.ID {
			t.Styles[i] = &s
			return
		}
	}
	t.Styles = append(t.Styles, &s)
}

// StyleByID returns the registered style with the given ID.
func (t *Template) StyleByID(id string) (*Style, bool) {
	for _, s := range t.Styles {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// Validate checks the style table: every BasedOn/Next reference must
// resolve to a registered style or to the style itself, and BasedOn
// chains must not cycle except through self-reference.
func (t *Template) Validate() error {
	for _, s := range t.Styles {
		for _, ref := range []string{s.BasedOn, s.Next} {
			if ref == "" || ref == s.ID {
				continue
			}
			if _, ok := t.StyleByID(ref); !ok {
				return errors.NewConfig(s.ID, "style references unregistered style "+ref)
			}
		}
	}

	// Walk BasedOn chains; a chain longer than the table must loop.
	for _, s := range t.Styles {
		seen := map[string]bool{s.ID: true}
		cur := s
		for cur.BasedOn != "" && cur.BasedOn != cur.ID {
			next, ok := t.StyleByID(cur.BasedOn)
			if !ok {
				break
			}
			if seen[next.ID] {
				return errors.NewConfig(s.ID, "style base chain cycles through "+next.ID)
			}
			seen[next.ID] = true
			cur = next
		}
	}

	if t.DefaultParStyle != "" {
		if _, ok := t.StyleByID(t.DefaultParStyle); !ok {
			return errors.NewConfig(t.DefaultParStyle, "default paragraph style not registered")
		}
	}
	if t.DefaultNoteStyle != "" {
		if _, ok := t.StyleByID(t.DefaultNoteStyle); !ok {
			return errors.NewConfig(t.DefaultNoteStyle, "default footnote style not registered")
		}
	}
	return nil
}

// DefaultTemplate builds the built-in template: four fonts, three
// colors, and the s0/s21-s29 stylesheet, with Catalan/Hebrew default
// languages. The values are static configuration, not core contract.
func DefaultTemplate() *Template {
	t := &Template{
		DefLang:          1027, // Catalan
		ADefLang:         1037, // Hebrew
		Author:           "author",
		DefaultParStyle:  "s0",
		DefaultNoteStyle: "s23",
		Footnotes: FootnoteOptions{
			Position:  FootnoteBottomOfPage,
			Numbering: FootnoteNumArabic,
		},
	}

	t.AddFont(Font{ID: "f0", Name: "Times New Roman", Family: FamilyNil})
	t.AddFont(Font{ID: "f1", Name: "Linux Libertine", Family: FamilyNil})
	t.AddFont(Font{ID: "f2", Name: "SBL BibLit", Family: FamilyNil})
	t.AddFont(Font{ID: "f3", Name: "Linux Biolinum", Family: FamilySwiss})

	t.AddColor(Color{ID: "1", Red: 128, Green: 128, Blue: 128}) // grey
	t.AddColor(Color{ID: "2", Red: 128, Green: 64, Blue: 0})    // orange
	t.AddColor(Color{ID: "3", Red: 255, Green: 255, Blue: 255}) // white

	t.AddStyle(Style{ID: "s0", Name: "Default",
		Attr: StyleAttrs{Align: AlignJustify}})
	t.AddStyle(Style{ID: "s21", Name: "Normal", BasedOn: "s0",
		Attr: StyleAttrs{Align: AlignJustify, FontID: "f1", Size: 24, Lang: 1024}})
	t.AddStyle(Style{ID: "s22", Name: "Normal hebreu", BasedOn: "s21",
		Attr: StyleAttrs{Align: AlignJustify, FontID: "f2", Size: 24, RTL: true, Lang: 1037}})
	t.AddStyle(Style{ID: "s23", Name: "Nota", BasedOn: "s21",
		Attr: StyleAttrs{Align: AlignJustify, FontID: "f1", Size: 18, LeftIndent: 227, FirstIndent: -227}})
	t.AddStyle(Style{ID: "s24", Name: "Nota hebreu", BasedOn: "s23",
		Attr: StyleAttrs{Align: AlignJustify, FontID: "f2", Size: 22, Lang: 1307}})
	t.AddStyle(Style{ID: "s25", Name: "Estil_Titols", BasedOn: "s21",
		Attr: StyleAttrs{Align: AlignCenter, KeepWithNext: true, Bold: true, FontID: "f1",
			Size: 28, SpaceBefore: 1132, SpaceAfter: 566, Lang: 1609}})
	t.AddStyle(Style{ID: "s26", Name: "Nota normal", BasedOn: "s23",
		Attr: StyleAttrs{Align: AlignJustify, FontID: "f1", Size: 20, LeftIndent: 227,
			FirstIndent: -227, Lang: 1027}}) // Catalan
	t.AddStyle(Style{ID: "s27", Name: "Normal grec", BasedOn: "s21",
		Attr: StyleAttrs{Align: AlignJustify, FontID: "f1", Size: 24, LineSpacing: 276,
			Hyphenate: true, Lang: 1609}}) // Ancient Greek
	t.AddStyle(Style{ID: "s28", Name: "Estil_Titols_Amagats", BasedOn: "s0",
		Attr: StyleAttrs{Align: AlignLeft, KeepWithNext: true, FontID: "f1", Size: 4,
			ColorID: "3", Lang: 1609}})
	t.AddStyle(Style{ID: "s29", Name: "Nota italia", BasedOn: "s23",
		Attr: StyleAttrs{Align: AlignJustify, FontID: "f1", Size: 20, LeftIndent: 227,
			FirstIndent: -227, Hyphenate: true, Lang: 1040}}) // Italian

	return t
}
