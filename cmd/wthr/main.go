package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/wthr/config"
	"github.com/lixenwraith/wthr/forecast"
	"github.com/lixenwraith/wthr/preview"
)

// flags holds command-line overrides, empty values keep the environment configuration
type flags struct {
	style   string
	custom  string
	rows    string
	border  string
	width   int
	lang    string
	show    bool
	debug   bool
	current bool
}

func main() {
	// Panic Recovery: print the crash before exiting non-zero
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nWTHR CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "wthr [payload.json]",
		Short: "Render weather readings as framed terminal sparklines",
		Long: `wthr reads hourly readings as JSON (from a file or stdin) and prints
an hourly sparkline block and, optionally, a current conditions block.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	cmd.Flags().StringVar(&f.style, "style", "", "Graph style: lines(solid), lines(slim), lines(dotted), dotted, custom")
	cmd.Flags().StringVar(&f.custom, "glyphs", "", "Eight glyphs for the custom style, lowest first")
	cmd.Flags().StringVar(&f.rows, "rows", "", "Graph rows: single, double")
	cmd.Flags().StringVar(&f.border, "border", "", "Border: rounded, square, square_heavy, double")
	cmd.Flags().IntVarP(&f.width, "width", "w", 0, "Total width in columns (default: terminal width)")
	cmd.Flags().StringVar(&f.lang, "lang", "", "Label language tag")
	cmd.Flags().BoolVar(&f.show, "preview", false, "Show the result full-screen instead of printing")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "Write debug log to "+logDir+"/"+logFileName)
	cmd.Flags().BoolVar(&f.current, "current", false, "Also render the current conditions block")

	return cmd
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	var in io.Reader = cmd.InOrStdin()
	source := "stdin"
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open payload: %w", err)
		}
		defer file.Close()
		in, source = file, args[0]
	}

	p, err := decodePayload(in)
	if err != nil {
		return fmt.Errorf("read payload from %s: %w", source, err)
	}
	log.Printf("Payload from %s: %d temperature, %d precipitation samples", source, len(p.Temperature), len(p.Precipitation))

	if cfg.Width == 0 {
		cfg.Width = terminalWidth(cmd.OutOrStdout())
	}

	lines, err := render(cmd.Context(), p, cfg, f.current)
	if err != nil {
		return err
	}
	log.Printf("Rendered %d lines, style=%v rows=%v border=%v width=%d", len(lines), cfg.GraphStyle, cfg.GraphRows, cfg.Border, cfg.Width)

	if f.show {
		return preview.Show(lines)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
	return err
}

// resolveConfig overlays explicitly set flags on the environment configuration
func resolveConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}

	set := cmd.Flags().Changed
	if set("style") || set("glyphs") {
		name := f.style
		if name == "" {
			name = "custom"
		}
		if cfg.GraphStyle, err = config.ParseStyle(name, f.custom); err != nil {
			return nil, err
		}
	}
	if set("rows") {
		if cfg.GraphRows, err = config.ParseRows(f.rows); err != nil {
			return nil, err
		}
	}
	if set("border") {
		if cfg.Border, err = config.ParseBorder(f.border); err != nil {
			return nil, err
		}
	}
	if set("width") {
		cfg.Width = f.width
	}
	if set("lang") {
		cfg.Language = f.lang
	}
	if set("debug") {
		cfg.Debug = f.debug
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// render builds the output blocks, the current block first when requested and present
func render(ctx context.Context, p *payload, cfg *config.Config, withCurrent bool) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	labels, err := forecast.Localize(ctx, forecast.Dictionary(p.Translations), cfg.Language)
	if err != nil {
		return nil, err
	}
	opts := cfg.Options()

	var lines []string
	if withCurrent && p.Current != nil {
		current, err := forecast.Current(p.Current.input(labels), opts)
		if err != nil {
			return nil, fmt.Errorf("current conditions: %w", err)
		}
		lines = append(lines, current...)
	}

	temps, err := forecast.Window(p.Temperature, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("temperature: %w", err)
	}
	hourly, err := forecast.Hourly(forecast.HourlyInput{
		Temperature:   temps,
		Precipitation: precipitationWindow(p.Precipitation, p.Offset),
		StartHour:     p.StartHour + p.Offset,
		Date:          p.Date,
		Labels:        labels,
	}, opts)
	if err != nil {
		return nil, fmt.Errorf("hourly forecast: %w", err)
	}
	return append(lines, hourly...), nil
}

func precipitationWindow(series []float64, offset int) []float64 {
	if offset >= len(series) {
		return nil
	}
	return series[offset:]
}

// terminalWidth returns the column count of w when it is a terminal, 0 otherwise
func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func decodePayload(r io.Reader) (*payload, error) {
	var p payload
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
