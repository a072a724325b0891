// Package plotspec reads YAML documents describing a batch of charts to
// render, used by sweepplot when the built-in presets don't fit.
package plotspec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"fuzzplot/dataset"
	"fuzzplot/models"
)

type SeriesSpec struct {
	// Label is optional; an empty label is derived from the file name.
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

type ChartSpec struct {
	Title  string `yaml:"title"`
	XLabel string `yaml:"xlabel"`
	YLabel string `yaml:"ylabel"`
	// XScale and YScale default to linear.
	XScale string `yaml:"xscale"`
	YScale string `yaml:"yscale"`
	Legend string `yaml:"legend"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Grid   *bool  `yaml:"grid"`
	Style  string `yaml:"style"`
	// Output is the image path to write, relative to the spec file.
	Output string       `yaml:"output"`
	Series []SeriesSpec `yaml:"series"`
}

type File struct {
	Charts []ChartSpec `yaml:"charts"`
}

func Load(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read plot spec %s: %w", path, err)
	}

	var file File
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, &models.ConfigError{Field: "spec", Value: path, Reason: err.Error()}
	}
	if len(file.Charts) == 0 {
		return nil, &models.ConfigError{Field: "spec", Value: path, Reason: "no charts declared"}
	}
	return &file, nil
}

// Chart resolves the spec against baseDir (the spec file's directory) and
// loads its series. Omitted fields fall back to the same defaults the
// command line flags use.
func (cs *ChartSpec) Chart(baseDir string, policy dataset.Policy) (*models.Chart, error) {
	xScale, err := models.ParseScaleMode(orDefault(cs.XScale, string(models.ScaleLinear)))
	if err != nil {
		return nil, err
	}
	yScale, err := models.ParseScaleMode(orDefault(cs.YScale, string(models.ScaleLinear)))
	if err != nil {
		return nil, err
	}
	legend, err := models.ParseLegendPosition(orDefault(cs.Legend, string(models.LegendRight)))
	if err != nil {
		return nil, err
	}
	style, err := models.ParseLineStyle(orDefault(cs.Style, string(models.StyleLinePoints)))
	if err != nil {
		return nil, err
	}

	if len(cs.Series) == 0 {
		return nil, &models.ConfigError{Field: "series", Value: cs.Title, Reason: "at least one series is required"}
	}

	series := make([]*models.Series, 0, len(cs.Series))
	for _, spec := range cs.Series {
		path := spec.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		label := spec.Label
		if label == "" {
			label = dataset.LabelFromPath(path)
		}
		s, err := dataset.Load(path, label, policy)
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}

	width := cs.Width
	if width == 0 {
		width = 1000
	}
	height := cs.Height
	if height == 0 {
		height = 700
	}
	grid := true
	if cs.Grid != nil {
		grid = *cs.Grid
	}

	return models.NewChart(
		cs.Title,
		cs.XLabel,
		cs.YLabel,
		xScale,
		yScale,
		legend,
		width,
		height,
		grid,
		style,
		0,
		series,
	), nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
