package frame

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Ellipsis marks truncated text
const Ellipsis = '…'

// Align positions text inside a fixed-width field
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// PadRight pads string with spaces to width runes
func PadRight(s string, width int) string {
	n := RuneLen(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// PadLeft left-pads string with spaces to width runes
func PadLeft(s string, width int) string {
	n := RuneLen(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

// PadCenter centers string within width runes, extra space goes right
func PadCenter(s string, width int) string {
	n := RuneLen(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// PadRightWidth pads s to width terminal columns
func PadRightWidth(s string, width int) string {
	return PadRight(s, width-DisplayWidthDelta(s))
}

// PadLeftWidth left-pads s to width terminal columns
func PadLeftWidth(s string, width int) string {
	return PadLeft(s, width-DisplayWidthDelta(s))
}

// PadCenterWidth centers s within width terminal columns
func PadCenterWidth(s string, width int) string {
	return PadCenter(s, width-DisplayWidthDelta(s))
}

// Fit truncates s to width columns and pads it per align
func Fit(s string, width int, align Align) string {
	s = TruncateWidth(s, width)
	switch align {
	case AlignCenter:
		return PadCenterWidth(s, width)
	case AlignRight:
		return PadLeftWidth(s, width)
	default:
		return PadRightWidth(s, width)
	}
}

// TruncateWidth shortens s to at most maxWidth columns, cutting between grapheme clusters
// and ending with … when anything was dropped
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if DisplayWidth(s) <= maxWidth {
		return s
	}

	budget := maxWidth - 1 // room for the ellipsis
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := DisplayWidth(cluster)
		if used+w > budget {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	b.WriteRune(Ellipsis)
	return b.String()
}

// RuneLen returns rune count, not byte count
func RuneLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// RepeatRune returns a string of n repeated runes
func RepeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(r), n)
}
