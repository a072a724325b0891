package config

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

const (
	DEFAULT_WIDTH  = 1000
	DEFAULT_HEIGHT = 700
	DEFAULT_ADDR   = ":8080"
)

// SeriesEntry is one -series flag value. An empty label means "derive it
// from the file name".
type SeriesEntry struct {
	Label string
	Path  string
}

type ChartFlags struct {
	Series         []SeriesEntry
	Title          string
	XLabel         string
	YLabel         string
	XScale         string
	YScale         string
	LegendPosition string
	Width          int
	Height         int
	Grid           bool
	Style          string
	LegendFontSize float64
	SkipMalformed  bool
	Output         string
}

type ServeFlags struct {
	Addr     string
	Debounce time.Duration
}

type SweepFlags struct {
	ResultsDir    string
	OutDir        string
	Chart         string
	SpecPath      string
	SkipMalformed bool
	Overwrite     bool
}

// seriesList gathers repeated -series label=path flags in order.
type seriesList []SeriesEntry

func (l *seriesList) String() string {
	entries := make([]string, len(*l))
	for i, entry := range *l {
		entries[i] = entry.Label + "=" + entry.Path
	}
	return strings.Join(entries, ",")
}

func (l *seriesList) Set(value string) error {
	label, path, found := strings.Cut(value, "=")
	if !found {
		// A bare path is allowed; the label comes from the file name.
		label, path = "", value
	}
	if path == "" {
		return fmt.Errorf("expected label=path, got %q", value)
	}
	*l = append(*l, SeriesEntry{label, path})
	return nil
}

func GetFlags(args []string) (*ChartFlags, *ServeFlags, error) {
	fs := flag.NewFlagSet("fuzzplot", flag.ContinueOnError)

	chart := &ChartFlags{}
	var series seriesList
	fs.Var(&series, "series", "series to plot as label=path, repeatable")
	fs.StringVar(&chart.Title, "title", "", "chart title")
	fs.StringVar(&chart.XLabel, "xlabel", "", "x axis label")
	fs.StringVar(&chart.YLabel, "ylabel", "", "y axis label")
	fs.StringVar(&chart.XScale, "xscale", "linear", "x axis scale, 'linear' or 'log'")
	fs.StringVar(&chart.YScale, "yscale", "linear", "y axis scale, 'linear' or 'log'")
	fs.StringVar(&chart.LegendPosition, "legend-position", "right", "legend placement: left, right, top, bottom or none")
	fs.IntVar(&chart.Width, "width", DEFAULT_WIDTH, "canvas width in pixels")
	fs.IntVar(&chart.Height, "height", DEFAULT_HEIGHT, "canvas height in pixels")
	fs.BoolVar(&chart.Grid, "grid", true, "draw background grid lines")
	fs.StringVar(&chart.Style, "style", "line+points", "series style, 'line' or 'line+points'")
	fs.Float64Var(&chart.LegendFontSize, "legend-font-size", 0, "legend text size in points, 0 for default")
	fs.BoolVar(&chart.SkipMalformed, "skip-malformed", false, "skip malformed data rows instead of aborting")
	fs.StringVar(&chart.Output, "output", "", "image path to write (.png, .svg or .pdf); omit to serve the chart")

	serve := &ServeFlags{}
	fs.StringVar(&serve.Addr, "addr", DEFAULT_ADDR, "http listen address for the live chart")
	fs.DurationVar(&serve.Debounce, "debounce", 250*time.Millisecond, "delay before re-rendering after a data file change")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	chart.Series = series

	return chart, serve, nil
}

func GetSweepFlags(args []string) (*SweepFlags, error) {
	fs := flag.NewFlagSet("sweepplot", flag.ContinueOnError)

	sweep := &SweepFlags{}
	fs.StringVar(&sweep.ResultsDir, "results", ".", "directory holding the harness result files")
	fs.StringVar(&sweep.OutDir, "out", ".", "directory to write chart images into")
	fs.StringVar(&sweep.Chart, "chart", "all", "preset chart to render, or 'all'")
	fs.StringVar(&sweep.SpecPath, "spec", "", "YAML plot spec to render instead of the presets")
	fs.BoolVar(&sweep.SkipMalformed, "skip-malformed", false, "skip malformed data rows instead of aborting")
	fs.BoolVar(&sweep.Overwrite, "overwrite", false, "overwrite existing images instead of numbering them")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return sweep, nil
}
