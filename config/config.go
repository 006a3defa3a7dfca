// Package config holds the display choices handed to the rendering engine.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/lixenwraith/wthr/forecast"
	"github.com/lixenwraith/wthr/frame"
	"github.com/lixenwraith/wthr/graph"
)

// Environment variables read by LoadEnv
const (
	EnvGraphStyle  = "WTHR_GRAPH_STYLE"
	EnvGraphCustom = "WTHR_GRAPH_CUSTOM"
	EnvGraphRows   = "WTHR_GRAPH_ROWS"
	EnvBorder      = "WTHR_BORDER"
	EnvWidth       = "WTHR_WIDTH"
	EnvLanguage    = "WTHR_LANGUAGE"
	EnvDebug       = "WTHR_DEBUG"
)

// Config is the explicit display configuration of one invocation
type Config struct {
	GraphStyle graph.Style
	GraphRows  graph.RowMode
	Border     frame.BorderVariant
	Width      int // total columns, 0 = detect
	Language   string
	Debug      bool
}

// Default returns solid double-row graphs in a rounded frame
func Default() *Config {
	return &Config{
		GraphStyle: graph.Lines(graph.LineSolid),
		GraphRows:  graph.RowsDouble,
		Border:     frame.BorderRounded,
		Language:   "en",
	}
}

// LoadEnv overlays environment variables on Default
// Malformed numbers and booleans are ignored, unknown style names are errors
func LoadEnv() (*Config, error) {
	cfg := Default()

	if name := os.Getenv(EnvGraphStyle); name != "" {
		style, err := ParseStyle(name, os.Getenv(EnvGraphCustom))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvGraphStyle, err)
		}
		cfg.GraphStyle = style
	}

	if name := os.Getenv(EnvGraphRows); name != "" {
		rows, err := ParseRows(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvGraphRows, err)
		}
		cfg.GraphRows = rows
	}

	if name := os.Getenv(EnvBorder); name != "" {
		border, err := ParseBorder(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvBorder, err)
		}
		cfg.Border = border
	}

	if width := os.Getenv(EnvWidth); width != "" {
		if val, err := strconv.Atoi(width); err == nil && val >= 0 {
			cfg.Width = val
		}
	}

	if lang := os.Getenv(EnvLanguage); lang != "" {
		cfg.Language = lang
	}

	if debug := os.Getenv(EnvDebug); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil {
			cfg.Debug = val
		}
	}

	return cfg, nil
}

// Validate checks the combination resolves to a palette and the remaining fields are usable
func (c *Config) Validate() error {
	if _, err := graph.ResolvePalette(c.GraphStyle, c.GraphRows); err != nil {
		return err
	}
	if c.Border.String() == "unknown" {
		return fmt.Errorf("%w: unknown border variant %d", graph.ErrInvalidConfiguration, c.Border)
	}
	if c.Width < 0 {
		return fmt.Errorf("%w: negative width %d", graph.ErrInvalidConfiguration, c.Width)
	}
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("%w: language %q: %v", graph.ErrInvalidConfiguration, c.Language, err)
	}
	return nil
}

// Options converts the configuration into render options
func (c *Config) Options() forecast.Options {
	return forecast.Options{
		Style:  c.GraphStyle,
		Rows:   c.GraphRows,
		Border: c.Border,
		Width:  c.Width,
		Lang:   c.Language,
	}
}

// ParseStyle maps lines(solid|slim|dotted), solid, slim, dotted or custom to a graph style
// custom reads its glyphs from the second argument
func ParseStyle(name, custom string) (graph.Style, error) {
	switch normalize(name) {
	case "lines(solid)", "lines", "solid":
		return graph.Lines(graph.LineSolid), nil
	case "lines(slim)", "slim":
		return graph.Lines(graph.LineSlim), nil
	case "lines(dotted)":
		return graph.Lines(graph.LineDotted), nil
	case "dotted":
		return graph.Dotted(), nil
	case "custom":
		glyphs := []rune(custom)
		if len(glyphs) != graph.CustomGlyphCount {
			return graph.Style{}, fmt.Errorf("%w: custom style needs %d glyphs, got %d",
				graph.ErrInvalidConfiguration, graph.CustomGlyphCount, len(glyphs))
		}
		return graph.Custom(glyphs), nil
	default:
		return graph.Style{}, fmt.Errorf("%w: unknown graph style %q", graph.ErrInvalidConfiguration, name)
	}
}

// ParseRows maps single or double to a row mode
func ParseRows(name string) (graph.RowMode, error) {
	switch normalize(name) {
	case "single":
		return graph.RowsSingle, nil
	case "double":
		return graph.RowsDouble, nil
	default:
		return 0, fmt.Errorf("%w: unknown row mode %q", graph.ErrInvalidConfiguration, name)
	}
}

// ParseBorder maps square, square_heavy, double or rounded to a border variant
func ParseBorder(name string) (frame.BorderVariant, error) {
	switch normalize(name) {
	case "rounded":
		return frame.BorderRounded, nil
	case "square", "single":
		return frame.BorderSquare, nil
	case "square_heavy", "heavy", "solid":
		return frame.BorderSquareHeavy, nil
	case "double":
		return frame.BorderDouble, nil
	default:
		return 0, fmt.Errorf("%w: unknown border %q", graph.ErrInvalidConfiguration, name)
	}
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "")
	return strings.ReplaceAll(name, "-", "_")
}
