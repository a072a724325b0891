package store

import (
	"maps"
	"path/filepath"
	"slices"
	"sort"

	"fuzzplot/dataset"
	"fuzzplot/models"
)

const (
	SHARING_CHART = "sharing"
	COLLAB_CHART  = "collab"
)

const (
	PRESET_WIDTH  = 1000
	PRESET_HEIGHT = 700
)

// Preset is a predeclared chart over the result files the experiment harness
// writes: one file per fuzzer configuration, two columns per row (worker
// count, seconds until every block and crash was found).
type Preset struct {
	// key is the identifier and doubles as the output file name.
	key string
	// title and axis labels for the rendered chart.
	title  string
	xLabel string
	yLabel string
	// files to load from the results directory, in legend order.
	files []string
	// layoutPriority determines what order the presets are rendered in.
	layoutPriority uint8
}

func NewPreset(
	key,
	title,
	xLabel,
	yLabel string,
	files []string,
	layoutPriority uint8,
) *Preset {
	return &Preset{
		key,
		title,
		xLabel,
		yLabel,
		files,
		layoutPriority,
	}
}

func (p *Preset) Key() string {
	return p.key
}

func (p *Preset) Title() string {
	return p.title
}

func (p *Preset) Files() []string {
	return p.files
}

func (p *Preset) LayoutPriority() uint8 {
	return p.layoutPriority
}

// Chart loads the preset's result files from resultsDir and builds the
// chart. Both axes are logarithmic; every value in the result files is a
// count or a duration, so positivity holds by construction.
func (p *Preset) Chart(resultsDir string, policy dataset.Policy) (*models.Chart, error) {
	series := make([]*models.Series, 0, len(p.files))
	for _, name := range p.files {
		path := filepath.Join(resultsDir, name)
		s, err := dataset.Load(path, dataset.LabelFromPath(path), policy)
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}

	return models.NewChart(
		p.title,
		p.xLabel,
		p.yLabel,
		models.ScaleLog,
		models.ScaleLog,
		models.LegendLeft,
		PRESET_WIDTH,
		PRESET_HEIGHT,
		true,
		models.StyleLinePoints,
		0,
		series,
	), nil
}

var Presets = map[string]*Preset{
	SHARING_CHART: NewPreset(
		SHARING_CHART,
		"Time to find all bugs by database sharing strategy",
		"workers",
		"seconds",
		[]string{
			"coverage_true_inputshare_true_resultshare_true.txt",
			"coverage_true_inputshare_true_resultshare_false.txt",
			"coverage_true_inputshare_false_resultshare_true.txt",
			"coverage_true_inputshare_false_resultshare_false.txt",
			"coverage_false_inputshare_true_resultshare_true.txt",
			"coverage_false_inputshare_true_resultshare_false.txt",
			"coverage_false_inputshare_false_resultshare_true.txt",
			"coverage_false_inputshare_false_resultshare_false.txt",
		},
		1,
	),
	COLLAB_CHART: NewPreset(
		COLLAB_CHART,
		"Time to find all bugs, collaborative vs isolated workers",
		"workers",
		"seconds",
		[]string{
			"coverage_true_collab_true.txt",
			"coverage_true_collab_false.txt",
			"coverage_false_collab_true.txt",
			"coverage_false_collab_false.txt",
		},
		2,
	),
}

var orderedPresets []*Preset

func OrderedPresets() []*Preset {
	if orderedPresets == nil {
		orderedPresets = slices.Collect(maps.Values(Presets))
		sort.Slice(orderedPresets, func(i, j int) bool {
			return orderedPresets[i].LayoutPriority() < orderedPresets[j].LayoutPriority()
		})
	}
	return orderedPresets
}
