// Package script parses the .rtfs authoring script, a line-oriented
// format whose directives map one to one onto the document API:
//
//	title "My Document"
//	author "Myself"
//	layout A4
//	par s21 "This text starts a paragraph."
//	text " This continues it."
//	text b "Bold run."
//	note "The text of a footnote." anchor "*"
//	closenote
//	closepar
//
// Lines starting with # are comments. Style and format arguments are
// bare identifiers; text arguments are quoted strings.
package script

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/xavi-mat/simplertf/core/errors"
	"github.com/xavi-mat/simplertf/core/rtf"
)

// Script is a parsed authoring script.
type Script struct {
	Statements []*Statement `parser:"(@@ | Newline)*"`
}

// Statement is a single script directive.
type Statement struct {
	Title     *string   `parser:"  \"title\" @String"`
	Author    *string   `parser:"| \"author\" @String"`
	Layout    *string   `parser:"| \"layout\" @Ident"`
	ParStyle  *string   `parser:"| \"parstyle\" @Ident"`
	NoteStyle *string   `parser:"| \"notestyle\" @Ident"`
	Par       *ParStmt  `parser:"| \"par\" @@"`
	Text      *TextStmt `parser:"| \"text\" @@"`
	Note      *NoteStmt `parser:"| \"note\" @@"`
	CloseNote bool      `parser:"| @\"closenote\""`
	ClosePar  bool      `parser:"| @\"closepar\""`
}

// ParStmt opens a paragraph with an optional style and initial text.
type ParStmt struct {
	Style string `parser:"@Ident?"`
	Text  string `parser:"@String?"`
}

// TextStmt appends a text run with an optional inline format keyword.
type TextStmt struct {
	Format string `parser:"@Ident?"`
	Text   string `parser:"@String"`
}

// NoteStmt opens a footnote with an optional style and anchor marker.
type NoteStmt struct {
	Style  string `parser:"@Ident?"`
	Text   string `parser:"@String"`
	Anchor string `parser:"(\"anchor\" @String)?"`
}

// scriptLexer tokenizes the line-oriented script. Newlines are real
// tokens so that optional identifiers cannot swallow the next line's
// directive keyword.
var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\r\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_-]*`},
	{Name: "Newline", Pattern: `[\r\n]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var scriptParser = participle.MustBuild[Script](
	participle.Lexer(scriptLexer),
	participle.Unquote("String"),
	participle.Elide("Whitespace", "Comment"),
)

// Parse parses script source. Malformed input is a ParseError.
func Parse(name string, src []byte) (*Script, error) {
	s, err := scriptParser.ParseBytes(name, src)
	if err != nil {
		return nil, &errors.ParseError{Input: name, Message: "invalid script", Err: err}
	}
	return s, nil
}

// Apply replays the script's directives onto a document. Layout errors
// (unknown preset names) propagate; style fallbacks follow the
// document's own resolution rules.
func (s *Script) Apply(d *rtf.Document) error {
	for _, st := range s.Statements {
		switch {
		case st.Title != nil:
			d.Title = *st.Title
			d.Filename = *st.Title
		case st.Author != nil:
			d.Author = *st.Author
		case st.Layout != nil:
			if err := d.SetLayout(*st.Layout, rtf.LayoutOverrides{}); err != nil {
				return err
			}
		case st.ParStyle != nil:
			d.SetStyle(*st.ParStyle, rtf.StyleKindParagraph)
		case st.NoteStyle != nil:
			d.SetStyle(*st.NoteStyle, rtf.StyleKindFootnote)
		case st.Par != nil:
			d.OpenParagraph(st.Par.Text, st.Par.Style)
		case st.Text != nil:
			d.AddText(st.Text.Text, st.Text.Format)
		case st.Note != nil:
			d.OpenFootnote(st.Note.Text, st.Note.Style, st.Note.Anchor)
		case st.CloseNote:
			d.CloseFootnote()
		case st.ClosePar:
			d.CloseParagraph()
		}
	}
	return nil
}

// Build parses src and replays it onto a fresh document built from the
// template.
func Build(name string, src []byte, tpl *rtf.Template, opts ...rtf.Option) (*rtf.Document, error) {
	s, err := Parse(name, src)
	if err != nil {
		return nil, err
	}
	d := rtf.New(tpl, "Document Title", opts...)
	if err := s.Apply(d); err != nil {
		return nil, err
	}
	return d, nil
}
