package forecast

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/wthr/graph"
)

type spyTranslator struct {
	calls int
	lang  string
	texts []string
	reply func([]string) ([]string, error)
}

func (s *spyTranslator) Translate(_ context.Context, lang string, texts []string) ([]string, error) {
	s.calls++
	s.lang = lang
	s.texts = append([]string(nil), texts...)
	return s.reply(texts)
}

func TestKeys_OrderAndNames(t *testing.T) {
	keys := Keys()
	require.Len(t, keys, int(labelCount))
	for i, k := range keys {
		assert.Equal(t, LabelKey(i), k)
		parsed, ok := ParseLabelKey(k.String())
		require.True(t, ok, "name %q must parse", k.String())
		assert.Equal(t, k, parsed)
	}
	_, ok := ParseLabelKey("nope")
	assert.False(t, ok)
	assert.Equal(t, "unknown", LabelKey(200).String())
}

func TestLocalize_TranslatesInKeyOrder(t *testing.T) {
	tr := &spyTranslator{reply: func(texts []string) ([]string, error) {
		out := make([]string, len(texts))
		for i, s := range texts {
			out[i] = "  de:" + s + " "
		}
		// Decomposed ü must come back composed
		out[LabelFeelsLike] = "Gefühlt"
		return out, nil
	}}

	labels, err := Localize(context.Background(), tr, "de")
	require.NoError(t, err)
	require.Equal(t, 1, tr.calls, "one translator call per localization")
	assert.Equal(t, "de", tr.lang)

	defaults := DefaultLabels()
	for i, k := range Keys() {
		assert.Equal(t, defaults[k], tr.texts[i], "text %d sent out of order", i)
	}
	assert.Equal(t, "Gefühlt", labels.Get(LabelFeelsLike))
	assert.Equal(t, "de:Humidity", labels.Get(LabelHumidity))
}

func TestLocalize_EnglishSkipsTranslator(t *testing.T) {
	for _, lang := range []string{"", "en", "en-GB", "EN-us"} {
		tr := &spyTranslator{reply: func(texts []string) ([]string, error) { return texts, nil }}
		labels, err := Localize(context.Background(), tr, lang)
		require.NoError(t, err)
		assert.Zero(t, tr.calls, "lang %q must not call translator", lang)
		assert.Equal(t, DefaultLabels(), labels)
	}

	labels, err := Localize(context.Background(), nil, "ja")
	require.NoError(t, err)
	assert.Equal(t, DefaultLabels(), labels)
}

func TestLocalize_Errors(t *testing.T) {
	boom := errors.New("service down")
	tr := &spyTranslator{reply: func([]string) ([]string, error) { return nil, boom }}
	labels, err := Localize(context.Background(), tr, "fr")
	require.ErrorIs(t, err, boom)
	assert.Equal(t, DefaultLabels(), labels, "defaults survive a failed translation")

	tr = &spyTranslator{reply: func(texts []string) ([]string, error) { return texts[:2], nil }}
	_, err = Localize(context.Background(), tr, "fr")
	require.ErrorIs(t, err, graph.ErrInvalidInput)
}

func TestLocalize_BlankResultKeepsDefault(t *testing.T) {
	tr := &spyTranslator{reply: func(texts []string) ([]string, error) {
		return make([]string, len(texts)), nil
	}}
	labels, err := Localize(context.Background(), tr, "fr")
	require.NoError(t, err)
	assert.Equal(t, "Wind", labels.Get(LabelWind))
}

func TestDictionary(t *testing.T) {
	d := Dictionary{"Humidity": "湿度", "Wind": "風"}
	labels, err := Localize(context.Background(), d, "ja")
	require.NoError(t, err)
	assert.Equal(t, "湿度", labels.Get(LabelHumidity))
	assert.Equal(t, "風", labels.Get(LabelWind))
	assert.Equal(t, "Sunset", labels.Get(LabelSunset))
}

func TestLabels_GetFallback(t *testing.T) {
	var l Labels
	assert.Equal(t, "Pressure", l.Get(LabelPressure))
	assert.Empty(t, l.Get(labelCount))
}

func TestHeading(t *testing.T) {
	assert.Equal(t, "Hourly Forecast", Heading("en", "hourly forecast"))
	assert.Equal(t, "Stündliche Vorhersage", Heading("de", "stündliche vorhersage"))
	assert.Equal(t, "Some Text", Heading("not a tag!", "some text"))
}
