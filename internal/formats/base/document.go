// Package base defines the document description shared by the input
// converters: a declarative tree of paragraphs, runs, and footnotes
// that replays onto a Document through the authoring API.
package base

import (
	"github.com/xavi-mat/simplertf/core/rtf"
)

// DocumentSpec describes a whole document.
type DocumentSpec struct {
	Title     string      `json:"title"`
	Author    string      `json:"author,omitempty"`
	Layout    string      `json:"layout,omitempty"`
	ParStyle  string      `json:"par_style,omitempty"`
	NoteStyle string      `json:"note_style,omitempty"`
	Body      []Paragraph `json:"paragraphs"`
}

// Paragraph is one paragraph with its ordered runs.
type Paragraph struct {
	Style string `json:"style,omitempty"`
	Runs  []Run  `json:"runs"`
}

// Run is either a text run (with an optional inline format) or a
// footnote, never both.
type Run struct {
	Text     string    `json:"text,omitempty"`
	Format   string    `json:"format,omitempty"`
	Footnote *Footnote `json:"footnote,omitempty"`
}

// Footnote is a footnote attached at the run's position.
type Footnote struct {
	Text   string `json:"text"`
	Style  string `json:"style,omitempty"`
	Anchor string `json:"anchor,omitempty"`
}

// Apply replays the description onto a fresh document built from the
// template. Layout errors propagate; unknown styles fall back per the
// document's resolution rules.
func (spec *DocumentSpec) Apply(tpl *rtf.Template, opts ...rtf.Option) (*rtf.Document, error) {
	title := spec.Title
	if title == "" {
		title = "Document Title"
	}

	d := rtf.New(tpl, title, opts...)
	if spec.Author != "" {
		d.Author = spec.Author
	}
	if spec.Layout != "" {
		if err := d.SetLayout(spec.Layout, rtf.LayoutOverrides{}); err != nil {
			return nil, err
		}
	}
	if spec.ParStyle != "" {
		d.SetStyle(spec.ParStyle, rtf.StyleKindParagraph)
	}
	if spec.NoteStyle != "" {
		d.SetStyle(spec.NoteStyle, rtf.StyleKindFootnote)
	}

	for _, p := range spec.Body {
		d.OpenParagraph("", p.Style)
		for _, r := range p.Runs {
			if r.Footnote != nil {
				d.OpenFootnote(r.Footnote.Text, r.Footnote.Style, r.Footnote.Anchor)
				d.CloseFootnote()
				continue
			}
			d.AddText(r.Text, r.Format)
		}
	}
	d.CloseParagraph()

	return d, nil
}
