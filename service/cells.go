package service

import (
	"strings"
	"unicode"
)

// Courier advances 600/1000 em per glyph regardless of the glyph.
const courierAdvance = 0.6

const maxFreeTextLen = 60

// fillCharBoxes writes text one uppercase character per grid cell,
// truncated to maxChars. Space characters leave their cell empty; each glyph
// is centered inside its fixed-pitch cell. Empty input draws nothing.
func fillCharBoxes(c Canvas, pos fieldPos, text string) {
	chars := []rune(strings.ToUpper(text))
	if len(chars) > pos.maxChars {
		chars = chars[:pos.maxChars]
	}

	glyphWidth := cellFontSize * courierAdvance
	for i, r := range chars {
		if unicode.IsSpace(r) {
			continue
		}
		x := pos.x + float64(i)*cellPitch + (cellPitch-glyphWidth)/2
		c.Text(x, pos.y, string(r), FontCells, cellFontSize)
	}
}

// fillCheck stamps a checkbox mark slightly inside the box at pos.
func fillCheck(c Canvas, pos fieldPos) {
	c.Text(pos.x+2, pos.y, "X", FontMark, cellFontSize)
}

// fillText draws a left-anchored free-text run, cut at maxFreeTextLen so an
// overlong value never overruns the neighbouring field. No wrapping; empty
// input draws nothing.
func fillText(c Canvas, pos fieldPos, text string, size float64) {
	if text == "" {
		return
	}
	runes := []rune(text)
	if len(runes) > maxFreeTextLen {
		runes = runes[:maxFreeTextLen]
	}
	c.Text(pos.x, pos.y, string(runes), FontFree, size)
}
