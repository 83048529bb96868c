package rtf

import (
	"strconv"
	"strings"
)

// Alignment is a paragraph alignment attribute.
type Alignment int

const (
	// AlignUnset emits nothing (inherit/default).
	AlignUnset Alignment = iota
	// AlignLeft is left-aligned (\ql).
	AlignLeft
	// AlignRight is right-aligned (\qr).
	AlignRight
	// AlignCenter is centered (\qc).
	AlignCenter
	// AlignJustify is justified (\qj).
	AlignJustify
)

func (a Alignment) controlWord() string {
	switch a {
	case AlignLeft:
		return "ql"
	case AlignRight:
		return "qr"
	case AlignCenter:
		return "qc"
	case AlignJustify:
		return "qj"
	default:
		return ""
	}
}

// StyleAttrs is the open set of optional formatting attributes a style
// may carry. The zero value of each field means "unset": nothing is
// emitted for it and the reader's default/inherited value applies.
// Integer twip fields treat 0 as unset; negative values (hanging
// first-line indents) are meaningful and emitted.
type StyleAttrs struct {
	Align       Alignment
	FontID      string // font table reference, e.g. "f1"
	Size        int    // font size in half-points (\fsN)
	LineSpacing int    // line spacing (\slN\slmult1)
	SpaceBefore int    // twips (\sbN)
	SpaceAfter  int    // twips (\saN)

	KeepWithNext   bool // \keepn
	Bold           bool // \b
	Italic         bool // \i
	SmallCaps      bool // \scaps
	AllCaps        bool // \caps
	WidowControl   bool // \widctlpar
	NoWidowControl bool // \nowidctlpar
	Hyphenate      bool // \hyphpar
	RTL            bool // \rtlpar
	LTR            bool // \ltrpar

	ColorID     string // color table reference (\cfN)
	FirstIndent int    // first-line indent in twips (\fiN), may be negative
	LeftIndent  int    // left indent in twips (\liN)
	RightIndent int    // right indent in twips (\riN)
	Lang        int    // language code (\langN)
}

// Style is one entry of the stylesheet. BasedOn and Next reference
// other styles by ID and default to the style itself; they must
// resolve within the owning Template (see Template.Validate).
type Style struct {
	ID      string // stable key, e.g. "s21"
	Name    string // human-readable name shown in the stylesheet
	BasedOn string // \sbasedon reference; empty means self
	Next    string // \snext reference; empty means self
	Attr    StyleAttrs
}

// Apply renders the formatting commands emitted each time the style is
// invoked on a paragraph or footnote. Set attributes are emitted in a
// fixed canonical order so output is reproducible and diffable; unset
// attributes emit nothing. The fragment ends with a single space.
func (s *Style) Apply() string {
	var b strings.Builder
	b.WriteString("\\")
	b.WriteString(s.ID)

	if w := s.Attr.Align.controlWord(); w != "" {
		b.WriteString("\\")
		b.WriteString(w)
	}
	if s.Attr.FontID != "" {
		b.WriteString("\\")
		b.WriteString(s.Attr.FontID)
	}
	if s.Attr.Size != 0 {
		b.WriteString("\\fs")
		b.WriteString(strconv.Itoa(s.Attr.Size))
	}
	if s.Attr.LineSpacing != 0 {
		b.WriteString("\\sl")
		b.WriteString(strconv.Itoa(s.Attr.LineSpacing))
		b.WriteString("\\slmult1")
	}
	if s.Attr.SpaceBefore != 0 {
		b.WriteString("\\sb")
		b.WriteString(strconv.Itoa(s.Attr.SpaceBefore))
	}
	if s.Attr.SpaceAfter != 0 {
		b.WriteString("\\sa")
		b.WriteString(strconv.Itoa(s.Attr.SpaceAfter))
	}
	if s.Attr.KeepWithNext {
		b.WriteString("\\keepn")
	}
	if s.Attr.Bold {
		b.WriteString("\\b")
	}
	if s.Attr.Italic {
		b.WriteString("\\i")
	}
	if s.Attr.SmallCaps {
		b.WriteString("\\scaps")
	}
	if s.Attr.AllCaps {
		b.WriteString("\\caps")
	}
	if s.Attr.WidowControl {
		b.WriteString("\\widctlpar")
	}
	if s.Attr.NoWidowControl {
		b.WriteString("\\nowidctlpar")
	}
	if s.Attr.Hyphenate {
		b.WriteString("\\hyphpar")
	}
	if s.Attr.RTL {
		b.WriteString("\\rtlpar")
	}
	if s.Attr.LTR {
		b.WriteString("\\ltrpar")
	}
	if s.Attr.ColorID != "" {
		b.WriteString("\\cf")
		b.WriteString(s.Attr.ColorID)
	}
	if s.Attr.FirstIndent != 0 {
		b.WriteString("\\fi")
		b.WriteString(strconv.Itoa(s.Attr.FirstIndent))
	}
	if s.Attr.LeftIndent != 0 {
		b.WriteString("\\li")
		b.WriteString(strconv.Itoa(s.Attr.LeftIndent))
	}
	if s.Attr.RightIndent != 0 {
		b.WriteString("\\ri")
		b.WriteString(strconv.Itoa(s.Attr.RightIndent))
	}
	if s.Attr.Lang != 0 {
		b.WriteString("\\lang")
		b.WriteString(strconv.Itoa(s.Attr.Lang))
	}

	b.WriteString(" ")
	return b.String()
}

// TableEntry renders the style's \stylesheet entry: numeric base/next
// references, the apply fragment, and the style name.
func (s *Style) TableEntry() string {
	basedOn := s.BasedOn
	if basedOn == "" {
		basedOn = s.ID
	}
	next := s.Next
	if next == "" {
		next = s.ID
	}

	var b strings.Builder
	b.WriteString("{\\")
	b.WriteString(s.ID)
	b.WriteString("\\sbasedon")
	b.WriteString(styleNumber(basedOn))
	b.WriteString("\\snext")
	b.WriteString(styleNumber(next))
	b.WriteString(s.Apply())
	b.WriteString(s.Name)
	b.WriteString(";}")
	return b.String()
}

// styleNumber strips the non-numeric prefix of a style identifier,
// turning "s21" into "21".
func styleNumber(id string) string {
	i := 0
	for i < len(id) && (id[i] < '0' || id[i] > '9') {
		i++
	}
	if i == len(id) {
		return "0"
	}
	return id[i:]
}
