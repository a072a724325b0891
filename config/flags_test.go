package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFlags(t *testing.T) {
	chart, serve, err := GetFlags([]string{
		"-series", "guided=results/a.txt",
		"-series", "blind=results/b.txt",
		"-title", "scaling",
		"-xscale", "log",
		"-yscale", "log",
		"-legend-position", "left",
		"-width", "800",
		"-height", "500",
		"-output", "out.png",
	})
	require.NoError(t, err)

	require.Len(t, chart.Series, 2)
	assert.Equal(t, SeriesEntry{"guided", "results/a.txt"}, chart.Series[0])
	assert.Equal(t, SeriesEntry{"blind", "results/b.txt"}, chart.Series[1])
	assert.Equal(t, "scaling", chart.Title)
	assert.Equal(t, "log", chart.XScale)
	assert.Equal(t, "left", chart.LegendPosition)
	assert.Equal(t, 800, chart.Width)
	assert.Equal(t, 500, chart.Height)
	assert.Equal(t, "out.png", chart.Output)
	assert.False(t, chart.SkipMalformed)

	assert.Equal(t, DEFAULT_ADDR, serve.Addr)
	assert.Equal(t, 250*time.Millisecond, serve.Debounce)
}

func TestGetFlagsDefaults(t *testing.T) {
	chart, _, err := GetFlags([]string{"-series", "a=x.txt"})
	require.NoError(t, err)

	assert.Equal(t, "linear", chart.XScale)
	assert.Equal(t, "linear", chart.YScale)
	assert.Equal(t, "right", chart.LegendPosition)
	assert.Equal(t, DEFAULT_WIDTH, chart.Width)
	assert.Equal(t, DEFAULT_HEIGHT, chart.Height)
	assert.Equal(t, "line+points", chart.Style)
	assert.True(t, chart.Grid)
	assert.Empty(t, chart.Output)
}

func TestSeriesFlagWithoutLabel(t *testing.T) {
	chart, _, err := GetFlags([]string{"-series", "results/coverage_true_collab_true.txt"})
	require.NoError(t, err)

	require.Len(t, chart.Series, 1)
	assert.Empty(t, chart.Series[0].Label)
	assert.Equal(t, "results/coverage_true_collab_true.txt", chart.Series[0].Path)
}

func TestSeriesFlagRejectsEmptyPath(t *testing.T) {
	_, _, err := GetFlags([]string{"-series", "label="})
	require.Error(t, err)
}

func TestGetSweepFlags(t *testing.T) {
	sweep, err := GetSweepFlags([]string{"-results", "runs", "-out", "charts", "-chart", "collab"})
	require.NoError(t, err)

	assert.Equal(t, "runs", sweep.ResultsDir)
	assert.Equal(t, "charts", sweep.OutDir)
	assert.Equal(t, "collab", sweep.Chart)
	assert.Empty(t, sweep.SpecPath)
	assert.False(t, sweep.Overwrite)
}
