package frame

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// widthCondition measures with East Asian ambiguous width off, so box and block glyphs are one column
var widthCondition = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// RuneWidth returns the terminal columns of r
// Private-use glyphs are weather icons rendered one column wide by the patched fonts they target
func RuneWidth(r rune) int {
	if isPrivateUse(r) {
		return 1
	}
	return widthCondition.RuneWidth(r)
}

// DisplayWidth returns the terminal columns s occupies
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		n += RuneWidth(r)
	}
	return n
}

// DisplayWidthDelta returns display width minus rune count
// Padding helpers that count runes offset their target by this value
func DisplayWidthDelta(s string) int {
	return DisplayWidth(s) - utf8.RuneCountInString(s)
}

func isPrivateUse(r rune) bool {
	return (r >= 0xE000 && r <= 0xF8FF) ||
		(r >= 0xF0000 && r <= 0xFFFFD) ||
		(r >= 0x100000 && r <= 0x10FFFD)
}
