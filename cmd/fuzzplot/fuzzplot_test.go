package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuzzplot/config"
)

func writeData(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunWritesChart(t *testing.T) {
	dir := t.TempDir()
	a := writeData(t, dir, "a.txt", "1 10\n2 20\n4 40\n")
	b := writeData(t, dir, "b.txt", "1 5\n2 5\n4 5\n")
	output := filepath.Join(dir, "chart.png")

	code := run([]string{
		"-series", "A=" + a,
		"-series", "B=" + b,
		"-xscale", "log",
		"-yscale", "log",
		"-title", "scaling",
		"-output", output,
	})
	assert.Equal(t, 0, code)

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunMissingDataFile(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "chart.png")

	code := run([]string{
		"-series", "A=" + filepath.Join(dir, "nope.txt"),
		"-output", output,
	})
	assert.Equal(t, 1, code)

	_, err := os.Stat(output)
	assert.True(t, os.IsNotExist(err))
}

func TestRunMalformedData(t *testing.T) {
	dir := t.TempDir()
	a := writeData(t, dir, "a.txt", "1 10\nabc 5\n")

	code := run([]string{
		"-series", "A=" + a,
		"-output", filepath.Join(dir, "chart.png"),
	})
	assert.Equal(t, 2, code)
}

func TestRunMalformedDataSkipped(t *testing.T) {
	dir := t.TempDir()
	a := writeData(t, dir, "a.txt", "1 10\nabc 5\n4 40\n")

	code := run([]string{
		"-series", "A=" + a,
		"-skip-malformed",
		"-output", filepath.Join(dir, "chart.png"),
	})
	assert.Equal(t, 0, code)
}

func TestRunLogScaleOverNonPositiveData(t *testing.T) {
	dir := t.TempDir()
	a := writeData(t, dir, "a.txt", "0 10\n2 20\n")
	output := filepath.Join(dir, "chart.png")

	code := run([]string{
		"-series", "A=" + a,
		"-xscale", "log",
		"-output", output,
	})
	assert.Equal(t, 3, code)

	_, err := os.Stat(output)
	assert.True(t, os.IsNotExist(err))
}

func TestRunWithoutSeries(t *testing.T) {
	code := run([]string{"-output", filepath.Join(t.TempDir(), "chart.png")})
	assert.Equal(t, 3, code)
}

func TestRunRejectsUnknownScale(t *testing.T) {
	dir := t.TempDir()
	a := writeData(t, dir, "a.txt", "1 10\n")

	code := run([]string{
		"-series", "A=" + a,
		"-xscale", "exponential",
		"-output", filepath.Join(dir, "chart.png"),
	})
	assert.Equal(t, 3, code)
}

func TestRunDerivesLabelFromConventionalName(t *testing.T) {
	dir := t.TempDir()
	path := writeData(t, dir, "coverage_true_collab_false.txt", "1 10\n2 20\n")

	chartFlags, _, err := config.GetFlags([]string{"-series", path})
	require.NoError(t, err)

	chart, err := buildChart(chartFlags)
	require.NoError(t, err)
	assert.Equal(t, "coverage on, collaborative off", chart.Series()[0].Label())
}
