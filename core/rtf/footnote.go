package rtf

// FootnotePosition controls where footnotes are placed on the page.
type FootnotePosition int

const (
	// FootnoteBottomOfPage places footnotes at the bottom of the page (\ftnbj).
	FootnoteBottomOfPage FootnotePosition = iota
	// FootnoteBelowText places footnotes directly beneath the text (\ftntj).
	FootnoteBelowText
)

func (p FootnotePosition) controlWord() string {
	if p == FootnoteBelowText {
		return "ftntj"
	}
	return "ftnbj"
}

// FootnoteNumbering selects the footnote numbering style.
type FootnoteNumbering int

const (
	// FootnoteNumArabic numbers footnotes 1, 2, 3, ... (\ftnnar).
	FootnoteNumArabic FootnoteNumbering = iota
	// FootnoteNumAlphaLower numbers footnotes a, b, c, ... (\ftnnalc).
	FootnoteNumAlphaLower
	// FootnoteNumAlphaUpper numbers footnotes A, B, C, ... (\ftnnauc).
	FootnoteNumAlphaUpper
	// FootnoteNumRomanLower numbers footnotes i, ii, iii, ... (\ftnnrlc).
	FootnoteNumRomanLower
	// FootnoteNumRomanUpper numbers footnotes I, II, III, ... (\ftnnruc).
	FootnoteNumRomanUpper
)

func (n FootnoteNumbering) controlWord() string {
	switch n {
	case FootnoteNumAlphaLower:
		return "ftnnalc"
	case FootnoteNumAlphaUpper:
		return "ftnnauc"
	case FootnoteNumRomanLower:
		return "ftnnrlc"
	case FootnoteNumRomanUpper:
		return "ftnnruc"
	default:
		return "ftnnar"
	}
}

// FootnoteOptions are the document-wide footnote formatting options
// emitted with the document formatting properties.
type FootnoteOptions struct {
	Position           FootnotePosition
	RestartEachPage    bool // \ftnrstpg
	RestartEachSection bool // \ftnrestart
	Numbering          FootnoteNumbering
}
