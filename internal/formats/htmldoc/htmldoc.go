// Package htmldoc converts simple HTML into an RTF document. It
// understands p and h1-h3 blocks, the b/strong, i/em, sub, and sup
// inline elements, and footnotes written as
// <span class="footnote">note text</span>.
package htmldoc

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"github.com/xavi-mat/simplertf/core/errors"
	"github.com/xavi-mat/simplertf/core/rtf"
	"github.com/xavi-mat/simplertf/internal/formats/base"
)

// HeadingStyle is the style applied to h1-h3 blocks; paragraph blocks
// use the document default.
const HeadingStyle = "s25"

// Decode parses HTML into a document description. The page title
// becomes the document title.
func Decode(data []byte) (*base.DocumentSpec, error) {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &errors.ParseError{Input: "html document", Message: "invalid HTML", Err: err}
	}

	spec := &base.DocumentSpec{}
	walkBlocks(root, spec)
	return spec, nil
}

// walkBlocks finds title and block-level elements in document order.
func walkBlocks(n *html.Node, spec *base.DocumentSpec) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "title":
			spec.Title = strings.TrimSpace(textContent(n))
			return
		case "p":
			spec.Body = append(spec.Body, parseBlock(n, ""))
			return
		case "h1", "h2", "h3":
			spec.Body = append(spec.Body, parseBlock(n, HeadingStyle))
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkBlocks(c, spec)
	}
}

// parseBlock flattens one block element into runs.
func parseBlock(n *html.Node, style string) base.Paragraph {
	p := base.Paragraph{Style: style}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		parseInline(c, "", &p)
	}
	return p
}

// parseInline walks inline content carrying the active format keyword.
func parseInline(n *html.Node, format string, p *base.Paragraph) {
	switch n.Type {
	case html.TextNode:
		if text := collapseSpace(n.Data); text != "" {
			p.Runs = append(p.Runs, base.Run{Text: text, Format: format})
		}
		return
	case html.ElementNode:
		switch n.Data {
		case "b", "strong":
			format = combineFormat(format, "b")
		case "i", "em":
			format = combineFormat(format, "i")
		case "sub":
			format = "sub"
		case "sup":
			format = "super"
		case "span":
			if hasClass(n, "footnote") {
				p.Runs = append(p.Runs, base.Run{
					Footnote: &base.Footnote{Text: strings.TrimSpace(textContent(n))},
				})
				return
			}
		case "br":
			p.Runs = append(p.Runs, base.Run{Text: "\n"})
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		parseInline(c, format, p)
	}
}

// combineFormat merges nested bold and italic into the combined
// keyword; other combinations keep the innermost format.
func combineFormat(outer, inner string) string {
	if (outer == "b" && inner == "i") || (outer == "i" && inner == "b") {
		return "bi"
	}
	return inner
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// collapseSpace folds runs of whitespace into single spaces, keeping
// one leading/trailing space so adjacent runs stay separated.
func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	out := strings.Join(fields, " ")
	if s[0] == ' ' || s[0] == '\t' || s[0] == '\n' || s[0] == '\r' {
		out = " " + out
	}
	last := s[len(s)-1]
	if last == ' ' || last == '\t' || last == '\n' || last == '\r' {
		out += " "
	}
	return out
}

// Build decodes data and replays it onto a fresh document.
func Build(data []byte, tpl *rtf.Template, opts ...rtf.Option) (*rtf.Document, error) {
	spec, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return spec.Apply(tpl, opts...)
}
