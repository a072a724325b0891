package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuzzplot/store"
)

func writeResults(t *testing.T, names []string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		err := os.WriteFile(filepath.Join(dir, name), []byte("1 128\n2 64\n4 32\n"), 0644)
		require.NoError(t, err)
	}
	return dir
}

func TestRunRendersPreset(t *testing.T) {
	results := writeResults(t, store.Presets[store.COLLAB_CHART].Files())
	out := t.TempDir()

	code := run([]string{"-results", results, "-out", out, "-chart", store.COLLAB_CHART})
	assert.Equal(t, 0, code)

	info, err := os.Stat(filepath.Join(out, "collab.png"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunNumbersExistingOutputs(t *testing.T) {
	results := writeResults(t, store.Presets[store.COLLAB_CHART].Files())
	out := t.TempDir()

	require.Equal(t, 0, run([]string{"-results", results, "-out", out, "-chart", store.COLLAB_CHART}))
	require.Equal(t, 0, run([]string{"-results", results, "-out", out, "-chart", store.COLLAB_CHART}))

	_, err := os.Stat(filepath.Join(out, "collab_1.png"))
	assert.NoError(t, err)
}

func TestRunMissingResults(t *testing.T) {
	code := run([]string{"-results", t.TempDir(), "-out", t.TempDir(), "-chart", store.COLLAB_CHART})
	assert.Equal(t, 1, code)
}

func TestRunUnknownPreset(t *testing.T) {
	code := run([]string{"-results", t.TempDir(), "-out", t.TempDir(), "-chart", "unknown"})
	assert.Equal(t, 3, code)
}

func TestRunSpec(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("1 10\n2 20\n"), 0644))

	spec := `charts:
  - title: Spec chart
    xscale: log
    yscale: log
    output: spec-chart.png
    series:
      - label: a
        path: a.txt
`
	specPath := filepath.Join(dir, "plots.yaml")
	require.NoError(t, os.WriteFile(specPath, []byte(spec), 0644))

	code := run([]string{"-spec", specPath})
	assert.Equal(t, 0, code)

	_, err := os.Stat(filepath.Join(dir, "spec-chart.png"))
	assert.NoError(t, err)
}

func TestRunSpecMalformedData(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("abc 5\n"), 0644))

	spec := "charts:\n  - title: Bad\n    series:\n      - label: a\n        path: a.txt\n"
	specPath := filepath.Join(dir, "plots.yaml")
	require.NoError(t, os.WriteFile(specPath, []byte(spec), 0644))

	assert.Equal(t, 2, run([]string{"-spec", specPath}))
}
