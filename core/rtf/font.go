package rtf

import "strings"

// FontFamily classifies a font for the \fonttbl group.
type FontFamily int

const (
	// FamilyNil is the unknown/default font family.
	FamilyNil FontFamily = iota
	// FamilyRoman is a serif, proportionally spaced family.
	FamilyRoman
	// FamilySwiss is a sans-serif, proportionally spaced family.
	FamilySwiss
	// FamilyModern is a fixed-pitch family.
	FamilyModern
	// FamilyScript is a script family.
	FamilyScript
	// FamilyDecor is a decorative family.
	FamilyDecor
	// FamilyTech is a technical/symbol family.
	FamilyTech
	// FamilyBidi is a bidirectional (Arabic/Hebrew) family.
	FamilyBidi
)

// controlWord returns the font-family control word.
func (f FontFamily) controlWord() string {
	switch f {
	case FamilyRoman:
		return "froman"
	case FamilySwiss:
		return "fswiss"
	case FamilyModern:
		return "fmodern"
	case FamilyScript:
		return "fscript"
	case FamilyDecor:
		return "fdecor"
	case FamilyTech:
		return "ftech"
	case FamilyBidi:
		return "fbidi"
	default:
		return "fnil"
	}
}

// Font is one entry of the font table. Fonts are immutable once
// registered on a Template and are referenced from styles by ID.
type Font struct {
	ID      string     // stable key, e.g. "f0"
	Family  FontFamily // family classification
	Name    string     // display name, e.g. "Times New Roman"
	Pitch   string     // optional \fprq value ("0", "1", "2"); empty omits
	Charset string     // optional \fcharset value; empty omits
}

// TableEntry renders the font's \fonttbl line.
func (f *Font) TableEntry() string {
	var b strings.Builder
	b.WriteString("{\\")
	b.WriteString(f.ID)
	b.WriteString("\\")
	b.WriteString(f.Family.controlWord())
	if f.Pitch != "" {
		b.WriteString("\\fprq")
		b.WriteString(f.Pitch)
	}
	if f.Charset != "" {
		b.WriteString("\\fcharset")
		b.WriteString(f.Charset)
	}
	b.WriteString(" ")
	b.WriteString(f.Name)
	b.WriteString(";}")
	return b.String()
}
