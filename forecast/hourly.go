package forecast

import (
	"fmt"
	"math"

	"github.com/lixenwraith/wthr/frame"
	"github.com/lixenwraith/wthr/graph"
)

const (
	// axisStep is the hour spacing of axis labels
	axisStep = 3
	// HourlyMinWidth is the narrowest hourly block, borders included
	HourlyMinWidth = graph.ChartWidth + 2*frame.Padding + 2
)

// Options carries the display configuration of one render
type Options struct {
	Style  graph.Style
	Rows   graph.RowMode
	Border frame.BorderVariant
	Width  int // total columns including borders, 0 picks the minimum
	Lang   string
}

// HourlyInput is the data of an hourly forecast block
// Temperature needs graph.MinSeries samples, Precipitation is optional
type HourlyInput struct {
	Temperature   []float64
	Precipitation []float64
	StartHour     int
	Date          string // empty shows the Today label
	Labels        Labels
}

// Window returns the graph.MinSeries samples starting at start
func Window(series []float64, start int) ([]float64, error) {
	if start < 0 || start+graph.MinSeries > len(series) {
		return nil, fmt.Errorf("%w: window at %d needs %d of %d samples",
			graph.ErrInvalidInput, start, graph.MinSeries, len(series))
	}
	return series[start : start+graph.MinSeries], nil
}

// Hourly renders the temperature sparkline with axis labels and precipitation inside a frame
func Hourly(in HourlyInput, opts Options) ([]string, error) {
	chart, err := graph.Compose(in.Temperature, opts.Style, opts.Rows)
	if err != nil {
		return nil, err
	}

	var precip string
	if len(in.Precipitation) > 0 {
		if precip, err = precipitationRow(in.Precipitation); err != nil {
			return nil, err
		}
	}

	width := opts.Width
	if width < HourlyMinWidth {
		width = HourlyMinWidth
	}
	b := frame.NewBlock(frame.Dimensions{
		Width:     width - 2,
		CellWidth: (width - 2 - 2*frame.Padding) / 2,
	}, opts.Border)

	b.Top()
	date := in.Date
	if date == "" {
		date = in.Labels.Get(LabelToday)
	}
	b.Pair(Heading(opts.Lang, in.Labels.Get(LabelHourly)), date)
	b.Separator(frame.SeparatorDashed)
	b.Line(temperatureAxis(in.Temperature), frame.AlignLeft)
	for _, row := range chart.Rows {
		b.Line(row, frame.AlignLeft)
	}
	if precip != "" {
		b.Line(precip, frame.AlignLeft)
	}
	b.Line(hourAxis(in.StartHour), frame.AlignLeft)
	b.Bottom()

	return b.Lines(), nil
}

// temperatureAxis places superscript readings above every axisStep-th point's middle glyph
func temperatureAxis(series []float64) string {
	canvas := []rune(frame.RepeatRune(' ', graph.ChartWidth))
	for i := 0; i < graph.ChartPoints; i += axisStep {
		label := frame.StyleNumber(int(math.Round(series[i])), false) + "°"
		stamp(canvas, i*graph.GlyphsPerPoint+1, label)
	}
	return string(canvas)
}

// hourAxis places subscript hour labels under every axisStep-th point
func hourAxis(start int) string {
	canvas := []rune(frame.RepeatRune(' ', graph.ChartWidth))
	for i := 0; i < graph.ChartPoints; i += axisStep {
		stamp(canvas, i*graph.GlyphsPerPoint, frame.StyleHour(start+i, true))
	}
	return string(canvas)
}

// precipitationRow draws one level glyph per wet hour, dry hours stay blank
func precipitationRow(series []float64) (string, error) {
	if len(series) < graph.ChartPoints {
		return "", fmt.Errorf("%w: precipitation has %d samples, need %d",
			graph.ErrInvalidInput, len(series), graph.ChartPoints)
	}
	series = series[:graph.ChartPoints]

	wet := false
	for i, v := range series {
		if v < 0 {
			return "", fmt.Errorf("%w: negative precipitation %v at hour %d", graph.ErrInvalidInput, v, i)
		}
		if v > 0 {
			wet = true
		}
	}

	palette, err := graph.ResolvePalette(graph.Lines(graph.LineSolid), graph.RowsSingle)
	if err != nil {
		return "", err
	}
	levels, err := graph.Quantize(series, palette.Len())
	if err != nil {
		return "", err
	}
	if !wet {
		return "", nil
	}

	canvas := []rune(frame.RepeatRune(' ', graph.ChartWidth))
	for i, v := range series {
		if v > 0 {
			canvas[i*graph.GlyphsPerPoint+1] = palette.Glyph(levels[i])
		}
	}
	return string(canvas), nil
}

// stamp writes label into canvas at col, clipping at the right edge
// Axis glyphs are all one column wide so rune index equals column
func stamp(canvas []rune, col int, label string) {
	for _, r := range label {
		if col >= len(canvas) {
			return
		}
		canvas[col] = r
		col++
	}
}
