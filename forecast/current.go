package forecast

import (
	"fmt"
	"math"

	"github.com/lixenwraith/wthr/frame"
	"github.com/lixenwraith/wthr/graph"
)

// cellGap separates the label field from its value in pair rows
const cellGap = 2

// CurrentInput is the data of a current-conditions block
type CurrentInput struct {
	Place         string
	Icon          string // usually a private-use weather glyph
	Description   string
	Temperature   float64
	FeelsLike     float64
	Unit          string // temperature unit suffix, e.g. °C
	Humidity      int    // percent
	WindSpeed     float64
	WindUnit      string
	WindDirection string
	Pressure      float64 // hPa
	DewPoint      float64
	Precipitation float64 // last hour
	PrecipUnit    string  // empty omits the precipitation row
	Sunrise       string
	Sunset        string
	Labels        Labels
}

// Current renders the current conditions as a headline followed by label/value rows
// One Dimensions value sizes every row so value columns line up whatever the label language
func Current(in CurrentInput, opts Options) ([]string, error) {
	readings := []struct {
		name string
		v    float64
	}{
		{"temperature", in.Temperature},
		{"feels like", in.FeelsLike},
		{"wind speed", in.WindSpeed},
		{"pressure", in.Pressure},
		{"dew point", in.DewPoint},
		{"precipitation", in.Precipitation},
	}
	for _, r := range readings {
		if math.IsNaN(r.v) || math.IsInf(r.v, 0) {
			return nil, fmt.Errorf("%w: %s is %v", graph.ErrInvalidInput, r.name, r.v)
		}
	}
	if in.Precipitation < 0 {
		return nil, fmt.Errorf("%w: negative precipitation %v", graph.ErrInvalidInput, in.Precipitation)
	}
	if in.Humidity < 0 || in.Humidity > 100 {
		return nil, fmt.Errorf("%w: humidity %d%% outside 0-100", graph.ErrInvalidInput, in.Humidity)
	}

	headline := in.Place
	summary := fmt.Sprintf("%d%s", int(math.Round(in.Temperature)), in.Unit)
	if in.Description != "" {
		summary = in.Description + "  " + summary
	}
	if in.Icon != "" {
		summary = in.Icon + " " + summary
	}

	wind := fmt.Sprintf("%.1f %s", in.WindSpeed, in.WindUnit)
	if in.WindDirection != "" {
		wind += " " + in.WindDirection
	}
	rows := [][2]string{
		{in.Labels.Get(LabelFeelsLike), fmt.Sprintf("%d%s", int(math.Round(in.FeelsLike)), in.Unit)},
		{in.Labels.Get(LabelHumidity), fmt.Sprintf("%d%%", in.Humidity)},
		{in.Labels.Get(LabelWind), wind},
		{in.Labels.Get(LabelPressure), fmt.Sprintf("%d hPa", int(math.Round(in.Pressure)))},
		{in.Labels.Get(LabelDewPoint), fmt.Sprintf("%d%s", int(math.Round(in.DewPoint)), in.Unit)},
	}
	if in.PrecipUnit != "" {
		rows = append(rows, [2]string{in.Labels.Get(LabelPrecipitation), fmt.Sprintf("%.1f %s", in.Precipitation, in.PrecipUnit)})
	}
	if in.Sunrise != "" {
		rows = append(rows, [2]string{in.Labels.Get(LabelSunrise), in.Sunrise})
	}
	if in.Sunset != "" {
		rows = append(rows, [2]string{in.Labels.Get(LabelSunset), in.Sunset})
	}

	dims := currentDimensions(headline, summary, rows, opts.Width)
	b := frame.NewBlock(dims, opts.Border)
	b.Top()
	b.Line(headline, frame.AlignCenter)
	b.Separator(frame.MatchingSeparator(opts.Border))
	b.Line(summary, frame.AlignCenter)
	b.Separator(frame.SeparatorBlank)
	for _, r := range rows {
		b.Pair(r[0], r[1])
	}
	b.Bottom()

	return b.Lines(), nil
}

// currentDimensions sizes the block to its widest row, never below the requested total width
func currentDimensions(headline, summary string, rows [][2]string, total int) frame.Dimensions {
	cell, value := 0, 0
	for _, r := range rows {
		cell = max(cell, frame.DisplayWidth(r[0])+cellGap)
		value = max(value, frame.DisplayWidth(r[1]))
	}

	inner := max(cell+value, frame.DisplayWidth(headline), frame.DisplayWidth(summary), total-2-2*frame.Padding)
	return frame.Dimensions{Width: inner + 2*frame.Padding, CellWidth: cell}
}
