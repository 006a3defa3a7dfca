package graph

import (
	"fmt"

	"github.com/lixenwraith/wthr/frame"
)

// StyleKind selects the glyph family of a chart
type StyleKind uint8

const (
	StyleLines  StyleKind = iota // one of the LineVariant sets
	StyleDotted                  // braille area chart ⣀⣤⣶⣿
	StyleCustom                  // caller supplied 8-glyph set
)

// LineVariant selects the glyph set of StyleLines
type LineVariant uint8

const (
	LineSolid  LineVariant = iota // ▁▂▃▄▅▆▇█
	LineSlim                      // ⎽⎼⎻⎺
	LineDotted                    // ⣀⠤⠒⠉
)

// RowMode specifies how many text rows a chart occupies
type RowMode uint8

const (
	RowsSingle RowMode = iota
	RowsDouble
)

// CustomGlyphCount is the exact number of glyphs a custom style must carry
const CustomGlyphCount = 8

// FillGlyph is drawn on the idle row of a double-row dotted chart
const FillGlyph = '⣿'

// lineGlyphs contains glyph sets indexed by LineVariant, lowest level first
var lineGlyphs = [...][]rune{
	LineSolid:  {'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'},
	LineSlim:   {'⎽', '⎼', '⎻', '⎺'},
	LineDotted: {'⣀', '⠤', '⠒', '⠉'},
}

var dottedGlyphs = []rune{'⣀', '⣤', '⣶', FillGlyph}

// Style is the closed set {Lines(variant), Dotted, Custom(glyphs)}
// Zero value is Lines(LineSolid)
type Style struct {
	Kind   StyleKind
	Line   LineVariant
	Glyphs []rune // StyleCustom only
}

// Lines returns a line style of the given variant
func Lines(v LineVariant) Style {
	return Style{Kind: StyleLines, Line: v}
}

// Dotted returns the braille area style
func Dotted() Style {
	return Style{Kind: StyleDotted}
}

// Custom returns a style drawing with the given glyphs, the slice is copied
func Custom(glyphs []rune) Style {
	g := make([]rune, len(glyphs))
	copy(g, glyphs)
	return Style{Kind: StyleCustom, Glyphs: g}
}

func (s Style) String() string {
	switch s.Kind {
	case StyleLines:
		return "lines(" + s.Line.String() + ")"
	case StyleDotted:
		return "dotted"
	case StyleCustom:
		return "custom"
	default:
		return "unknown"
	}
}

func (v LineVariant) String() string {
	switch v {
	case LineSolid:
		return "solid"
	case LineSlim:
		return "slim"
	case LineDotted:
		return "dotted"
	default:
		return "unknown"
	}
}

func (m RowMode) String() string {
	switch m {
	case RowsSingle:
		return "single"
	case RowsDouble:
		return "double"
	default:
		return "unknown"
	}
}

// Palette is the ordered glyph array a quantized level indexes into
type Palette struct {
	Glyphs []rune
	fill   rune
}

// Len returns the number of levels
func (p Palette) Len() int {
	return len(p.Glyphs)
}

// Mid returns the midpoint level, the last index of the lower half
func (p Palette) Mid() int {
	return (len(p.Glyphs) - 1) / 2
}

// Fill returns the glyph used for the idle row in double-row mode, if the style has one
func (p Palette) Fill() (rune, bool) {
	return p.fill, p.fill != 0
}

// Glyph returns the glyph for a level, clamped into palette bounds
func (p Palette) Glyph(level int) rune {
	return p.Glyphs[clampLevel(level, 0, len(p.Glyphs)-1)]
}

// ResolvePalette derives the glyph array for a style and row mode
// Double-row palettes are the base set concatenated with itself
func ResolvePalette(style Style, rows RowMode) (Palette, error) {
	var base []rune
	var fill rune

	switch style.Kind {
	case StyleLines:
		if int(style.Line) >= len(lineGlyphs) {
			return Palette{}, fmt.Errorf("%w: unknown line variant %d", ErrInvalidConfiguration, style.Line)
		}
		base = lineGlyphs[style.Line]
	case StyleDotted:
		base = dottedGlyphs
		fill = FillGlyph
	case StyleCustom:
		if len(style.Glyphs) != CustomGlyphCount {
			return Palette{}, fmt.Errorf("%w: custom style needs %d glyphs, got %d",
				ErrInvalidConfiguration, CustomGlyphCount, len(style.Glyphs))
		}
		for i, r := range style.Glyphs {
			if w := frame.RuneWidth(r); w != 1 {
				return Palette{}, fmt.Errorf("%w: custom glyph %d %q is %d columns wide, need 1",
					ErrInvalidConfiguration, i, r, w)
			}
		}
		base = style.Glyphs
	default:
		return Palette{}, fmt.Errorf("%w: unknown style kind %d", ErrInvalidConfiguration, style.Kind)
	}

	var glyphs []rune
	switch rows {
	case RowsSingle:
		glyphs = make([]rune, len(base))
		copy(glyphs, base)
	case RowsDouble:
		glyphs = make([]rune, 0, 2*len(base))
		glyphs = append(glyphs, base...)
		glyphs = append(glyphs, base...)
	default:
		return Palette{}, fmt.Errorf("%w: unknown row mode %d", ErrInvalidConfiguration, rows)
	}

	return Palette{Glyphs: glyphs, fill: fill}, nil
}
