package htmldoc

import (
	"strings"
	"testing"

	"github.com/xavi-mat/simplertf/core/rtf"
)

const exampleHTML = `<!DOCTYPE html>
<html>
<head><title>HTML Doc</title></head>
<body>
<h1>A Heading</h1>
<p>Hello <b>World</b> and <i>friends</i>.</p>
<p>With a note<span class="footnote">the note text</span> inline.</p>
<p>Nested <b>bold <i>both</i></b> here.</p>
</body>
</html>`

// TestDecode verifies block and inline extraction.
func TestDecode(t *testing.T) {
	spec, err := Decode([]byte(exampleHTML))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if spec.Title != "HTML Doc" {
		t.Errorf("Title = %q", spec.Title)
	}
	if len(spec.Body) != 4 {
		t.Fatalf("paragraphs = %d, want 4", len(spec.Body))
	}
	if spec.Body[0].Style != HeadingStyle {
		t.Errorf("heading style = %q, want %q", spec.Body[0].Style, HeadingStyle)
	}
}

// TestDecodeInlineFormats verifies format keyword mapping.
func TestDecodeInlineFormats(t *testing.T) {
	spec, err := Decode([]byte(exampleHTML))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	runs := spec.Body[1].Runs
	var bold, italic bool
	for _, r := range runs {
		if r.Format == "b" && r.Text == "World" {
			bold = true
		}
		if r.Format == "i" && r.Text == "friends" {
			italic = true
		}
	}
	if !bold || !italic {
		t.Errorf("inline formats missing: %+v", runs)
	}

	// nested bold+italic combines
	var combined bool
	for _, r := range spec.Body[3].Runs {
		if r.Format == "bi" && r.Text == "both" {
			combined = true
		}
	}
	if !combined {
		t.Errorf("nested bold italic not combined: %+v", spec.Body[3].Runs)
	}
}

// TestDecodeFootnote verifies footnote span extraction.
func TestDecodeFootnote(t *testing.T) {
	spec, err := Decode([]byte(exampleHTML))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	var found bool
	for _, r := range spec.Body[2].Runs {
		if r.Footnote != nil && r.Footnote.Text == "the note text" {
			found = true
		}
	}
	if !found {
		t.Errorf("footnote missing: %+v", spec.Body[2].Runs)
	}
}

// TestBuild verifies the end-to-end HTML to RTF path.
func TestBuild(t *testing.T) {
	d, err := Build([]byte(exampleHTML), rtf.DefaultTemplate())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if d.Title != "HTML Doc" {
		t.Errorf("Title = %q", d.Title)
	}
	body := d.Body()
	if !strings.Contains(body, `{\b World}`) {
		t.Errorf("body = %q, want bold run", body)
	}
	if !strings.Contains(body, `{\footnote `) {
		t.Errorf("body = %q, want footnote group", body)
	}
	if !strings.Contains(body, `\s25`) {
		t.Errorf("body = %q, want heading style", body)
	}
}
