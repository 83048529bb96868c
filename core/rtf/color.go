package rtf

import (
	"strconv"
	"strings"
)

// Color is one entry of the color table. Colors are immutable once
// registered on a Template and are referenced from styles by ID.
type Color struct {
	ID    string // stable key, e.g. "3"; also the \cfN reference
	Red   uint8
	Green uint8
	Blue  uint8
}

// TableEntry renders the color's \colortbl entry.
func (c *Color) TableEntry() string {
	var b strings.Builder
	b.WriteString("\\red")
	b.WriteString(strconv.Itoa(int(c.Red)))
	b.WriteString("\\green")
	b.WriteString(strconv.Itoa(int(c.Green)))
	b.WriteString("\\blue")
	b.WriteString(strconv.Itoa(int(c.Blue)))
	b.WriteString(";")
	return b.String()
}
