package rtf

import (
	"log/slog"
	"time"

	"github.com/xavi-mat/simplertf/core/encoding"
	"github.com/xavi-mat/simplertf/internal/logging"
)

// DefaultAnchor is the footnote anchor marker emitted when the caller
// supplies none: the auto-numbered footnote reference.
const DefaultAnchor = "\\chftn"

// Document accumulates body markup through the authoring API and is
// serialized once by Render. It tracks whether a paragraph and/or
// footnote is currently open; an open footnote always lives inside an
// open paragraph except when the caller deliberately opens one without
// a paragraph (permitted, but the output is the caller's problem).
//
// A Document is single-threaded: no concurrent use.
type Document struct {
	Title    string
	Filename string
	Author   string

	tpl       *Template
	geometry  Geometry
	footnotes FootnoteOptions
	defLang   int
	adefLang  int

	parStyle  *Style
	noteStyle *Style

	parOpen  bool
	noteOpen bool
	body     []string

	log *slog.Logger
	now func() time.Time
}

// Option configures a Document at construction.
type Option func(*Document)

// WithAuthor sets the document author.
func WithAuthor(author string) Option {
	return func(d *Document) { d.Author = author }
}

// WithFilename sets the output filename (without extension).
func WithFilename(name string) Option {
	return func(d *Document) { d.Filename = name }
}

// WithLanguages sets the default and Asian default language codes.
func WithLanguages(defLang, adefLang int) Option {
	return func(d *Document) {
		d.defLang = defLang
		d.adefLang = adefLang
	}
}

// WithFootnoteOptions sets the document-wide footnote options.
func WithFootnoteOptions(o FootnoteOptions) Option {
	return func(d *Document) { d.footnotes = o }
}

// WithLogger sets the logger used for authoring diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(d *Document) { d.log = l }
}

// WithClock sets the clock used for the \creatim metadata stamp.
// Tests use it to pin the creation time.
func WithClock(now func() time.Time) Option {
	return func(d *Document) { d.now = now }
}

// New builds a Document from a template. The template supplies the
// resource tables and defaults (languages, author, footnote options,
// default styles); options override per-document values. The geometry
// starts as A4 with 2cm margins.
func New(tpl *Template, title string, opts ...Option) *Document {
	d := &Document{
		Title:     title,
		Filename:  title,
		Author:    tpl.Author,
		tpl:       tpl,
		geometry:  Geometry{16838, 11906, 1134, 1134, 1134, 1134},
		footnotes: tpl.Footnotes,
		defLang:   tpl.DefLang,
		adefLang:  tpl.ADefLang,
		log:       logging.GetLogger(),
		now:       time.Now,
	}

	d.parStyle = d.resolveStyle(tpl.DefaultParStyle, StyleKindParagraph)
	d.noteStyle = d.resolveStyle(tpl.DefaultNoteStyle, StyleKindFootnote)

	for _, opt := range opts {
		opt(d)
	}

	d.log.Debug("document created", "title", title)
	return d
}

// StyleKind selects which default style a lookup falls back to.
type StyleKind int

const (
	// StyleKindParagraph falls back to the default paragraph style.
	StyleKindParagraph StyleKind = iota
	// StyleKindFootnote falls back to the default footnote style.
	StyleKindFootnote
)

// resolveStyle looks up a style by ID in the template, falling back to
// the contextual default when the ID is empty or unknown. It never
// fails; an unknown non-empty ID logs a fallback notice.
func (d *Document) resolveStyle(id string, kind StyleKind) *Style {
	if s, ok := d.tpl.StyleByID(id); ok {
		return s
	}

	var def *Style
	if kind == StyleKindFootnote {
		def = d.noteStyle
	} else {
		def = d.parStyle
	}
	if def == nil {
		// Template defaults resolve before any per-document default
		// exists; fall back to the first registered style.
		if len(d.tpl.Styles) > 0 {
			def = d.tpl.Styles[0]
		} else {
			def = &Style{ID: "s0", Name: "Default"}
		}
	}

	if id != "" {
		d.log.Warn("style not found, using default", "style", id, "default", def.ID)
	}
	return def
}

// SetStyle sets the default style for the given kind. Unknown IDs fall
// back to the current default with a logged notice.
func (d *Document) SetStyle(id string, kind StyleKind) {
	s := d.resolveStyle(id, kind)
	if kind == StyleKindFootnote {
		d.noteStyle = s
	} else {
		d.parStyle = s
	}
	d.log.Debug("default style set", "kind", int(kind), "style", s.ID)
}

// ParStyle returns the current default paragraph style ID.
func (d *Document) ParStyle() string { return d.parStyle.ID }

// NoteStyle returns the current default footnote style ID.
func (d *Document) NoteStyle() string { return d.noteStyle.ID }

// ParagraphOpen reports whether a paragraph is currently open.
func (d *Document) ParagraphOpen() bool { return d.parOpen }

// FootnoteOpen reports whether a footnote is currently open.
func (d *Document) FootnoteOpen() bool { return d.noteOpen }

func (d *Document) emit(s string)     { d.body = append(d.body, s) }
func (d *Document) emitText(s string) { d.body = append(d.body, encoding.EscapeRTF(s)) }

// OpenParagraph closes any open paragraph (and its footnote) and opens
// a new one with the given style, appending the initial text if any.
// An empty or unknown style ID resolves to the default paragraph style.
func (d *Document) OpenParagraph(text, styleID string) {
	d.CloseParagraph()

	style := d.resolveStyle(styleID, StyleKindParagraph)
	d.parOpen = true
	d.emit("{\\pard " + style.Apply())
	if text != "" {
		d.emitText(text)
	}
	d.log.Debug("paragraph opened", "style", style.ID)
}

// CloseParagraph closes the open paragraph, first closing any open
// footnote. Calling it with no open paragraph is a no-op.
func (d *Document) CloseParagraph() {
	d.CloseFootnote()

	if d.parOpen {
		d.emit("\\par}\n")
		d.parOpen = false
		d.log.Debug("paragraph closed")
	}
}

// AddText appends text to the open paragraph (or footnote), optionally
// wrapped in an inline format group: "b", "i", "sub", "super", "scaps",
// the combined "bi"/"ib", or any other formatting keyword passed
// through verbatim. No open-paragraph check is made; calling this with
// nothing open produces markup outside any paragraph, which is the
// caller's responsibility.
func (d *Document) AddText(text, format string) {
	switch format {
	case "":
	case "bi", "ib":
		d.emit("{\\i\\b ")
	default:
		d.emit("{\\" + format + " ")
	}

	d.emitText(text)

	if format != "" {
		d.emit("}")
	}
}

// Bold appends bold text to the open paragraph.
func (d *Document) Bold(text string) { d.AddText(text, "b") }

// Italic appends italic text to the open paragraph.
func (d *Document) Italic(text string) { d.AddText(text, "i") }

// Sub appends subscript text to the open paragraph.
func (d *Document) Sub(text string) { d.AddText(text, "sub") }

// Super appends superscript text to the open paragraph.
func (d *Document) Super(text string) { d.AddText(text, "super") }

// SmallCaps appends small-caps text to the open paragraph.
func (d *Document) SmallCaps(text string) { d.AddText(text, "scaps") }

// OpenFootnote closes any open footnote (the paragraph stays open) and
// opens a new one: anchor marker, footnote group, style apply markup,
// and the escaped text. An empty anchor uses DefaultAnchor. An empty
// or unknown style ID resolves to the default footnote style. Opening
// a footnote with no open paragraph is permitted but produces
// structurally invalid output.
func (d *Document) OpenFootnote(text, styleID, anchor string) {
	d.CloseFootnote()

	if !d.parOpen {
		d.log.Debug("footnote opened outside a paragraph")
	}
	if anchor == "" {
		anchor = DefaultAnchor
	}

	style := d.resolveStyle(styleID, StyleKindFootnote)
	d.noteOpen = true
	d.emit("{\\super " + anchor + "{\\footnote " + anchor + "\\pard\\plain ")
	d.emit(style.Apply())
	d.emitText(text)
	d.log.Debug("footnote opened", "style", style.ID)
}

// CloseFootnote closes the open footnote. Calling it with no open
// footnote is a no-op.
func (d *Document) CloseFootnote() {
	if d.noteOpen {
		d.emit("}}\n")
		d.noteOpen = false
		d.log.Debug("footnote closed")
	}
}

// Body returns the accumulated body markup. Useful for inspection and
// tests; Render is the real consumer.
func (d *Document) Body() string {
	var n int
	for _, s := range d.body {
		n += len(s)
	}
	buf := make([]byte, 0, n)
	for _, s := range d.body {
		buf = append(buf, s...)
	}
	return string(buf)
}
