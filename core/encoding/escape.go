// Package encoding provides shared text encoding and escaping utilities.
package encoding

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

// EscapeRTF converts text to its RTF-escaped form. Backslash, braces,
// and anything outside printable ASCII (below 0x20 or above 0x7F) become
// numeric `\u<n>?` escapes; code points at or above 0x8000 are emitted in
// signed 16-bit form (value minus 0x10000), and code points above 0xFFFF
// are split into a UTF-16 surrogate pair first. Readers that honor the
// escape grammar recover the original text byte for byte.
func EscapeRTF(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\\' || r == '{' || r == '}':
			writeUnitEscape(&b, uint16(r))
		case r < 0x20 || r > 0x7F:
			if r > 0xFFFF {
				hi, lo := utf16.EncodeRune(r)
				writeUnitEscape(&b, uint16(hi))
				writeUnitEscape(&b, uint16(lo))
			} else {
				writeUnitEscape(&b, uint16(r))
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// writeUnitEscape emits one \u<n>? escape for a single UTF-16 code unit,
// applying the signed 16-bit offset for units at or above 0x8000.
func writeUnitEscape(b *strings.Builder, unit uint16) {
	n := int(unit)
	if n >= 0x8000 {
		n -= 0x10000
	}
	b.WriteString("\\u")
	b.WriteString(strconv.Itoa(n))
	b.WriteString("?")
}

// EscapeXMLText escapes only the basic XML entities for text content.
func EscapeXMLText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// EscapeHTML escapes special characters for HTML content.
// Escapes: & < > "
func EscapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}
