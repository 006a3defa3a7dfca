package graph

import (
	"fmt"
	"strings"
)

const (
	// ChartPoints is the number of hourly points drawn per chart
	ChartPoints = 24
	// MinSeries is ChartPoints plus one lookahead sample
	MinSeries = ChartPoints + 1
	// GlyphsPerPoint is the number of characters emitted per point and row
	GlyphsPerPoint = 3
	// ChartWidth is the rune length of every chart row
	ChartWidth = ChartPoints * GlyphsPerPoint
)

// Chart is a composed sparkline
// Rows holds one row for RowsSingle, upper then lower row for RowsDouble
type Chart struct {
	Rows    []string
	Levels  []int
	Palette Palette
}

// Compose renders the first ChartPoints samples of series
// series must hold at least MinSeries finite samples
func Compose(series []float64, style Style, rows RowMode) (Chart, error) {
	if len(series) < MinSeries {
		return Chart{}, fmt.Errorf("%w: series has %d samples, need %d", ErrInvalidInput, len(series), MinSeries)
	}
	palette, err := ResolvePalette(style, rows)
	if err != nil {
		return Chart{}, err
	}
	levels, err := Quantize(series, palette.Len())
	if err != nil {
		return Chart{}, err
	}

	chart := Chart{Levels: levels, Palette: palette}
	if rows == RowsDouble {
		upper, lower := composeDouble(levels, palette)
		chart.Rows = []string{upper, lower}
	} else {
		chart.Rows = []string{composeSingle(levels, palette)}
	}
	return chart, nil
}

func composeSingle(levels []int, p Palette) string {
	var b strings.Builder
	b.Grow(ChartWidth * 3)

	top := p.Len() - 1
	prev := levels[0]
	for i := 0; i < ChartPoints; i++ {
		cur, next := levels[i], levels[i+1]
		b.WriteRune(p.Glyphs[nudge(prev, cur, 0, top)])
		b.WriteRune(p.Glyphs[cur])
		b.WriteRune(p.Glyphs[nudge(next, cur, 0, top)])
		prev = carrySingle(cur, next, 0, top)
	}
	return b.String()
}

// composeDouble draws each point on the row owning its palette half
// Transitions are clamped into that half, the other row gets blank or fill
func composeDouble(levels []int, p Palette) (string, string) {
	var upper, lower strings.Builder
	upper.Grow(ChartWidth * 3)
	lower.Grow(ChartWidth * 3)

	idle := ' '
	if fill, ok := p.Fill(); ok {
		idle = fill
	}

	mid, top := p.Mid(), p.Len()-1
	prev := levels[0]
	for i := 0; i < ChartPoints; i++ {
		cur, next := levels[i], levels[i+1]

		lo, hi := 0, mid
		drawn, blank := &lower, &upper
		if cur > mid {
			lo, hi = mid+1, top
			drawn, blank = &upper, &lower
		}

		for _, idx := range [GlyphsPerPoint]int{nudge(prev, cur, lo, hi), cur, nudge(next, cur, lo, hi)} {
			drawn.WriteRune(p.Glyphs[idx])
			blank.WriteRune(idle)
		}
		prev = carryDouble(cur, next)
	}
	return upper.String(), lower.String()
}

// nudge returns the transition level shown next to cur when its neighbor sits at another level
// Jumps over one level step twice when that stays inside [lo, hi], otherwise once, otherwise not at all
func nudge(neighbor, cur, lo, hi int) int {
	if neighbor == cur {
		return cur
	}
	step := 1
	if neighbor < cur {
		step = -1
	}
	if abs(neighbor-cur) > 1 {
		if idx := cur + 2*step; idx >= lo && idx <= hi {
			return idx
		}
	}
	if idx := cur + step; idx >= lo && idx <= hi {
		return idx
	}
	return cur
}

// carrySingle returns the level the next point compares its transition-in against
func carrySingle(cur, next, lo, hi int) int {
	if abs(next-cur) <= 1 {
		return next
	}
	step := 2
	if next < cur {
		step = -2
	}
	if idx := cur + step; idx >= lo && idx <= hi {
		return idx
	}
	return next
}

// carryDouble is the double-row counterpart of carrySingle, it does not consult row bounds
func carryDouble(cur, next int) int {
	switch {
	case next-cur > 1:
		return cur + 2
	case cur-next > 1:
		return cur - 2
	default:
		return next
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
