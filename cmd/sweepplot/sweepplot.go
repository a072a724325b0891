package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"fuzzplot/config"
	"fuzzplot/dataset"
	"fuzzplot/plotspec"
	"fuzzplot/render"
	"fuzzplot/store"
	"fuzzplot/utils"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags, err := config.GetSweepFlags(args)
	if err != nil {
		return 3
	}

	policy := dataset.Strict
	if flags.SkipMalformed {
		policy = dataset.SkipMalformed
	}

	if flags.SpecPath != "" {
		return runSpec(flags, policy)
	}
	return runPresets(flags, policy)
}

// runPresets renders the standard experiment charts straight from the
// results directory written by the harness.
func runPresets(flags *config.SweepFlags, policy dataset.Policy) int {
	var selected []*store.Preset
	if flags.Chart == "all" {
		selected = store.OrderedPresets()
	} else {
		preset, ok := store.Presets[flags.Chart]
		if !ok {
			log.Printf("unknown chart %q, expected 'all' or one of the presets", flags.Chart)
			return 3
		}
		selected = []*store.Preset{preset}
	}

	for _, preset := range selected {
		chart, err := preset.Chart(flags.ResultsDir, policy)
		if err != nil {
			log.Printf("couldn't build chart %s: %s", preset.Key(), err)
			return exitCode(err)
		}

		path := outputPath(flags, preset.Key())
		if err := render.WriteFile(chart, path); err != nil {
			log.Printf("couldn't write chart %s: %s", preset.Key(), err)
			return exitCode(err)
		}
		log.Printf("wrote %s", path)
	}
	return 0
}

func runSpec(flags *config.SweepFlags, policy dataset.Policy) int {
	spec, err := plotspec.Load(flags.SpecPath)
	if err != nil {
		log.Printf("couldn't load plot spec: %s", err)
		return exitCode(err)
	}
	baseDir := filepath.Dir(flags.SpecPath)

	for i, chartSpec := range spec.Charts {
		chart, err := chartSpec.Chart(baseDir, policy)
		if err != nil {
			log.Printf("couldn't build chart %q: %s", chartSpec.Title, err)
			return exitCode(err)
		}

		path := chartSpec.Output
		switch {
		case path == "":
			stem := utils.Slugify(chartSpec.Title)
			if stem == "" {
				stem = fmt.Sprintf("chart-%d", i+1)
			}
			path = outputPath(flags, stem)
		case !filepath.IsAbs(path):
			path = filepath.Join(baseDir, path)
		}

		if err := render.WriteFile(chart, path); err != nil {
			log.Printf("couldn't write chart %q: %s", chartSpec.Title, err)
			return exitCode(err)
		}
		log.Printf("wrote %s", path)
	}
	return 0
}

func outputPath(flags *config.SweepFlags, stem string) string {
	if flags.Overwrite {
		return filepath.Join(flags.OutDir, stem+".png")
	}
	return utils.NextAvailableFilename(flags.OutDir, stem, ".png")
}

// Exit codes: 0 success, 1 data file missing, 2 malformed data,
// 3 invalid configuration.
func exitCode(err error) int {
	var notFound *dataset.NotFoundError
	if errors.As(err, &notFound) {
		return 1
	}
	var malformed *dataset.MalformedRowError
	if errors.As(err, &malformed) {
		return 2
	}
	return 3
}
