package forecast

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/lixenwraith/wthr/graph"
)

// LabelKey identifies one translatable label
type LabelKey uint8

const (
	LabelHourly LabelKey = iota
	LabelToday
	LabelFeelsLike
	LabelHumidity
	LabelWind
	LabelPressure
	LabelDewPoint
	LabelSunrise
	LabelSunset
	LabelPrecipitation
	labelCount
)

var labelNames = [labelCount]string{
	LabelHourly:        "hourly",
	LabelToday:         "today",
	LabelFeelsLike:     "feels_like",
	LabelHumidity:      "humidity",
	LabelWind:          "wind",
	LabelPressure:      "pressure",
	LabelDewPoint:      "dew_point",
	LabelSunrise:       "sunrise",
	LabelSunset:        "sunset",
	LabelPrecipitation: "precipitation",
}

var defaultLabels = Labels{
	LabelHourly:        "Hourly forecast",
	LabelToday:         "Today",
	LabelFeelsLike:     "Feels like",
	LabelHumidity:      "Humidity",
	LabelWind:          "Wind",
	LabelPressure:      "Pressure",
	LabelDewPoint:      "Dew point",
	LabelSunrise:       "Sunrise",
	LabelSunset:        "Sunset",
	LabelPrecipitation: "Precipitation",
}

func (k LabelKey) String() string {
	if k < labelCount {
		return labelNames[k]
	}
	return "unknown"
}

// ParseLabelKey maps a label name back to its key
func ParseLabelKey(name string) (LabelKey, bool) {
	for k, n := range labelNames {
		if n == name {
			return LabelKey(k), true
		}
	}
	return 0, false
}

// Keys returns every label key in translation order
func Keys() []LabelKey {
	keys := make([]LabelKey, labelCount)
	for i := range keys {
		keys[i] = LabelKey(i)
	}
	return keys
}

// Labels holds the display text of every label, indexed by LabelKey
type Labels [labelCount]string

// DefaultLabels returns the English label set
func DefaultLabels() Labels {
	return defaultLabels
}

// Get returns the label text, falling back to English when empty
func (l Labels) Get(k LabelKey) string {
	if k >= labelCount {
		return ""
	}
	if l[k] == "" {
		return defaultLabels[k]
	}
	return l[k]
}

// Translator converts English label texts into another language
// Implementations return one result per input, in input order
type Translator interface {
	Translate(ctx context.Context, lang string, texts []string) ([]string, error)
}

// Localize translates the default label set into lang with a single Translator call
// English or a nil translator returns the defaults unchanged
func Localize(ctx context.Context, tr Translator, lang string) (Labels, error) {
	labels := DefaultLabels()
	if tr == nil || isEnglish(lang) {
		return labels, nil
	}

	keys := Keys()
	texts := make([]string, len(keys))
	for i, k := range keys {
		texts[i] = labels[k]
	}

	out, err := tr.Translate(ctx, lang, texts)
	if err != nil {
		return labels, fmt.Errorf("translate labels to %s: %w", lang, err)
	}
	if len(out) != len(texts) {
		return labels, fmt.Errorf("%w: translator returned %d labels, want %d", graph.ErrInvalidInput, len(out), len(texts))
	}

	for i, k := range keys {
		if t := strings.TrimSpace(out[i]); t != "" {
			labels[k] = norm.NFC.String(t)
		}
	}
	return labels, nil
}

// Heading title-cases a label using the casing rules of lang
func Heading(lang, text string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Und
	}
	return cases.Title(tag, cases.NoLower).String(text)
}

// Dictionary is a Translator backed by a fixed English-to-target lookup
// Texts without an entry pass through unchanged
type Dictionary map[string]string

// Translate implements Translator
func (d Dictionary) Translate(_ context.Context, _ string, texts []string) ([]string, error) {
	out := make([]string, len(texts))
	for i, t := range texts {
		if v, ok := d[t]; ok {
			out[i] = v
		} else {
			out[i] = t
		}
	}
	return out, nil
}

func isEnglish(lang string) bool {
	if lang == "" {
		return true
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	en, _ := language.English.Base()
	return base == en
}
