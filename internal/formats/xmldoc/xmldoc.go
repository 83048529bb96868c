// Package xmldoc converts an XML document description into an RTF
// document. The expected shape mirrors the JSON description:
//
//	<document title="T" author="A" layout="A4">
//	  <paragraph style="s21">
//	    <run>plain text</run>
//	    <run format="b">bold text</run>
//	    <footnote style="s26" anchor="*">note text</footnote>
//	  </paragraph>
//	</document>
package xmldoc

import (
	"bytes"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/xavi-mat/simplertf/core/errors"
	"github.com/xavi-mat/simplertf/core/rtf"
	"github.com/xavi-mat/simplertf/internal/formats/base"
)

var (
	documentQuery  = xpath.MustCompile("//document")
	paragraphQuery = xpath.MustCompile("./paragraph")
)

// Decode parses an XML document description.
func Decode(data []byte) (*base.DocumentSpec, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &errors.ParseError{Input: "xml document", Message: "invalid XML", Err: err}
	}

	doc := xmlquery.QuerySelector(root, documentQuery)
	if doc == nil {
		return nil, errors.NewParse("xml document", "missing <document> element")
	}

	spec := &base.DocumentSpec{
		Title:     doc.SelectAttr("title"),
		Author:    doc.SelectAttr("author"),
		Layout:    doc.SelectAttr("layout"),
		ParStyle:  doc.SelectAttr("par-style"),
		NoteStyle: doc.SelectAttr("note-style"),
	}

	for _, p := range xmlquery.QuerySelectorAll(doc, paragraphQuery) {
		para := base.Paragraph{Style: p.SelectAttr("style")}
		for child := p.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != xmlquery.ElementNode {
				continue
			}
			switch child.Data {
			case "run":
				para.Runs = append(para.Runs, base.Run{
					Text:   child.InnerText(),
					Format: child.SelectAttr("format"),
				})
			case "footnote":
				para.Runs = append(para.Runs, base.Run{
					Footnote: &base.Footnote{
						Text:   child.InnerText(),
						Style:  child.SelectAttr("style"),
						Anchor: child.SelectAttr("anchor"),
					},
				})
			}
		}
		spec.Body = append(spec.Body, para)
	}

	return spec, nil
}

// Build decodes data and replays it onto a fresh document.
func Build(data []byte, tpl *rtf.Template, opts ...rtf.Option) (*rtf.Document, error) {
	spec, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return spec.Apply(tpl, opts...)
}
