package encoding

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf16"
)

// TestEscapeRTFPassthrough verifies printable ASCII is untouched.
func TestEscapeRTFPassthrough(t *testing.T) {
	tests := []string{
		"Hello World",
		"plain text, punctuation: ; ! ? ( ) [ ]",
		"digits 0123456789",
		"",
	}

	for _, s := range tests {
		if got := EscapeRTF(s); got != s {
			t.Errorf("EscapeRTF(%q) = %q, want unchanged", s, got)
		}
	}
}

// TestEscapeRTFReserved verifies backslash and braces are escaped.
func TestEscapeRTFReserved(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"backslash", `a\b`, `a\u92?b`},
		{"open brace", "a{b", `a\u123?b`},
		{"close brace", "a}b", `a\u125?b`},
		{"newline", "a\nb", `a\u10?b`},
		{"tab", "a\tb", `a\u9?b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeRTF(tt.input); got != tt.want {
				t.Errorf("EscapeRTF(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestEscapeRTFNonASCII verifies numeric escapes for non-ASCII text.
func TestEscapeRTFNonASCII(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"accented", "camió", `cami\u243?`},
		{"hebrew", "א", `\u1488?`},
		{"greek", "αβ", `\u945?\u946?`},
		{"above signed range", "", `\u-2560?`},
		{"mixed", "aéz", `a\u233?z`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeRTF(tt.input); got != tt.want {
				t.Errorf("EscapeRTF(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestEscapeRTFSurrogatePair verifies astral code points become two
// signed escapes that decode back to the original rune.
func TestEscapeRTFSurrogatePair(t *testing.T) {
	input := string(rune(0x1D11E)) // musical G clef
	got := EscapeRTF(input)

	parts := strings.Split(strings.TrimSuffix(got, "?"), "?")
	if len(parts) != 2 {
		t.Fatalf("EscapeRTF(%q) = %q, want two escapes", input, got)
	}

	var units []uint16
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimPrefix(p, "\\u"))
		if err != nil {
			t.Fatalf("bad escape %q in %q: %v", p, got, err)
		}
		if v < 0 {
			v += 0x10000
		}
		units = append(units, uint16(v))
	}

	decoded := utf16.Decode(units)
	if len(decoded) != 1 || decoded[0] != 0x1D11E {
		t.Errorf("decoded %q = %v, want U+1D11E", got, decoded)
	}
}

// TestEscapeRTFRecoverable verifies the offset rule is reversible for
// every escaped BMP code point.
func TestEscapeRTFRecoverable(t *testing.T) {
	for _, r := range []rune{0x80, 0x7FFF, 0x8000, 0xFFFD} {
		got := EscapeRTF(string(r))
		v, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(got, "\\u"), "?"))
		if err != nil {
			t.Fatalf("EscapeRTF(U+%04X) = %q, not a numeric escape", r, got)
		}
		if v < 0 {
			v += 0x10000
		}
		if rune(v) != r {
			t.Errorf("EscapeRTF(U+%04X) decodes to U+%04X", r, v)
		}
	}
}

// TestEscapeHTML verifies HTML entity escaping.
func TestEscapeHTML(t *testing.T) {
	if got := EscapeHTML(`<b>"A&B"</b>`); got != "&lt;b&gt;&quot;A&amp;B&quot;&lt;/b&gt;" {
		t.Errorf("EscapeHTML = %q", got)
	}
}

// TestEscapeXMLText verifies the lightweight XML escape.
func TestEscapeXMLText(t *testing.T) {
	if got := EscapeXMLText("a<b>&c"); got != "a&lt;b&gt;&amp;c" {
		t.Errorf("EscapeXMLText = %q", got)
	}
}
