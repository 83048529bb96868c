package rtf

import (
	"fmt"
	"strings"

	"github.com/xavi-mat/simplertf/core/encoding"
	"github.com/xavi-mat/simplertf/internal/fileutil"
)

// Version is the generator version written into the document header.
const Version = "0.1.0"

// Extension is the file extension of the persisted artifact.
const Extension = ".rtf"

// Render serializes the document to its final RTF byte stream. It
// force-closes any open paragraph (cascading a footnote close), then
// emits header, resource tables, metadata, page geometry, footnote
// options, the accumulated body, and the document terminator, in that
// fixed order. The content is deterministic for a fixed clock; calling
// Render twice without reopening state yields the same bytes again.
func (d *Document) Render() []byte {
	d.CloseParagraph()

	d.log.Debug("rendering document", "title", d.Title)

	var b strings.Builder

	// RTF prolog
	b.WriteString("{\\rtf1\\ansi\\deff0")
	fmt.Fprintf(&b, "\\deflang%d\\adeflang%d\n", d.defLang, d.adefLang)

	// Font table
	b.WriteString("{\\fonttbl\n")
	for _, f := range d.tpl.Fonts {
		b.WriteString(f.TableEntry())
		b.WriteString("\n")
	}
	b.WriteString("}\n")

	// Color table, with the leading default (empty) entry
	b.WriteString("{\\colortbl\n")
	b.WriteString(";\n")
	for _, c := range d.tpl.Colors {
		b.WriteString(c.TableEntry())
		b.WriteString("\n")
	}
	b.WriteString("}\n")

	// Style sheet
	b.WriteString("{\\stylesheet\n")
	for _, s := range d.tpl.Styles {
		b.WriteString(s.TableEntry())
		b.WriteString("\n")
	}
	b.WriteString("}\n")

	// Generator
	b.WriteString("{\\*\\generator simplertf_go_" + Version + "}\n")

	// Info group
	b.WriteString("{\\info\n")
	b.WriteString("{\\title ")
	b.WriteString(encoding.EscapeRTF(d.Title))
	b.WriteString("}\n")
	b.WriteString("{\\author ")
	b.WriteString(encoding.EscapeRTF(d.Author))
	b.WriteString("}\n")
	t := d.now()
	fmt.Fprintf(&b, "{\\creatim\\yr%d\\mo%02d\\dy%02d\\hr%02d\\min%02d}\n",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
	b.WriteString("}\n")

	// Page geometry
	fmt.Fprintf(&b, "\\paperh%d\\paperw%d\\margl%d\\margr%d\\margt%d\\margb%d\n",
		d.geometry.Height, d.geometry.Width,
		d.geometry.MarginLeft, d.geometry.MarginRight,
		d.geometry.MarginTop, d.geometry.MarginBottom)

	// Footnote options
	b.WriteString("\\" + d.footnotes.Position.controlWord())
	if d.footnotes.RestartEachPage {
		b.WriteString("\\ftnrstpg")
	}
	if d.footnotes.RestartEachSection {
		b.WriteString("\\ftnrestart")
	}
	b.WriteString("\\" + d.footnotes.Numbering.controlWord())
	b.WriteString("\n")

	// Body
	for _, s := range d.body {
		b.WriteString(s)
	}

	// Closing
	b.WriteString("\\par }")

	return []byte(b.String())
}

// Save renders the document and writes it to path in one bulk write.
// An empty path writes Filename plus the .rtf extension in the current
// directory. Write failures come from the I/O collaborator.
func (d *Document) Save(path string) error {
	if path == "" {
		path = d.Filename + Extension
	}
	data := d.Render()
	d.log.Debug("writing document", "path", path, "bytes", len(data))
	return fileutil.WriteFile(path, data)
}
