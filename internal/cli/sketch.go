package cli

import (
	"strings"

	"github.com/dominopress/dominopress/pkg/domino"
)

const (
	pipOn  = "●"
	pipOff = "·"
)

// sketchRows renders a code as eight two-pip text rows, top to bottom,
// the way the physical tile reads.
func sketchRows(c domino.Code) []string {
	rows := make([]string, 0, 8)
	for row := 0; row < 8; row++ {
		var b strings.Builder
		for col := 0; col < 2; col++ {
			if col > 0 {
				b.WriteString(" ")
			}
			if c.Bit(col*8 + row) {
				b.WriteString(pipOn)
			} else {
				b.WriteString(pipOff)
			}
		}
		rows = append(rows, b.String())
	}
	return rows
}

// sketchLine renders a code as a single line, both columns read top to
// bottom and separated by a bar.
func sketchLine(c domino.Code) string {
	var b strings.Builder
	for col := 0; col < 2; col++ {
		if col > 0 {
			b.WriteString(" | ")
		}
		for row := 0; row < 8; row++ {
			if c.Bit(col*8 + row) {
				b.WriteString(pipOn)
			} else {
				b.WriteString(pipOff)
			}
		}
	}
	return b.String()
}
