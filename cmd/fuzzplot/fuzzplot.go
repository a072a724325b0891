package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"fuzzplot/config"
	"fuzzplot/dataset"
	"fuzzplot/models"
	"fuzzplot/render"
	"fuzzplot/utils"
	"fuzzplot/watch"
	web "fuzzplot/web/handlers"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	chartFlags, serveFlags, err := config.GetFlags(args)
	if err != nil {
		return 3
	}

	chart, err := buildChart(chartFlags)
	if err != nil {
		log.Printf("couldn't build chart: %s", err)
		return exitCode(err)
	}

	if chartFlags.Output != "" {
		if err := render.WriteFile(chart, chartFlags.Output); err != nil {
			log.Printf("couldn't write chart: %s", err)
			return exitCode(err)
		}
		minX, maxX := xRange(chart)
		fmt.Printf("wrote %s: %d series, x %v–%v\n",
			chartFlags.Output, len(chart.Series()), utils.RoundToXDp(minX, 2), utils.RoundToXDp(maxX, 2))
		return 0
	}

	return serve(chart, chartFlags, serveFlags)
}

func buildChart(flags *config.ChartFlags) (*models.Chart, error) {
	xScale, err := models.ParseScaleMode(flags.XScale)
	if err != nil {
		return nil, err
	}
	yScale, err := models.ParseScaleMode(flags.YScale)
	if err != nil {
		return nil, err
	}
	legend, err := models.ParseLegendPosition(flags.LegendPosition)
	if err != nil {
		return nil, err
	}
	style, err := models.ParseLineStyle(flags.Style)
	if err != nil {
		return nil, err
	}
	if len(flags.Series) == 0 {
		return nil, &models.ConfigError{Field: "series", Reason: "at least one -series label=path is required"}
	}

	policy := dataset.Strict
	if flags.SkipMalformed {
		policy = dataset.SkipMalformed
	}

	series := make([]*models.Series, 0, len(flags.Series))
	for _, entry := range flags.Series {
		label := entry.Label
		if label == "" {
			label = dataset.LabelFromPath(entry.Path)
		}
		s, err := dataset.Load(entry.Path, label, policy)
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}

	return models.NewChart(
		flags.Title,
		flags.XLabel,
		flags.YLabel,
		xScale,
		yScale,
		legend,
		flags.Width,
		flags.Height,
		flags.Grid,
		style,
		flags.LegendFontSize,
		series,
	), nil
}

// serve shows the chart on a local web page and re-renders it whenever one
// of the result files changes.
func serve(chart *models.Chart, chartFlags *config.ChartFlags, serveFlags *config.ServeFlags) int {
	paths := make([]string, len(chartFlags.Series))
	for i, entry := range chartFlags.Series {
		paths[i] = entry.Path
	}

	watcher, err := watch.New(paths, serveFlags.Debounce)
	if err != nil {
		log.Printf("couldn't watch result files: %s", err)
		return 3
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			log.Printf("couldn't close watcher: %s", err)
		}
	}()

	reload := func() (*models.Chart, error) {
		return buildChart(chartFlags)
	}

	page, err := web.NewChartPage(chart, reload, watcher)
	if err != nil {
		log.Printf("couldn't create chart page: %s", err)
		return exitCode(err)
	}

	server := web.NewServer(page)
	if err := server.Start(serveFlags.Addr); err != nil {
		log.Printf("couldn't start server: %s", err)
		return 3
	}
	return 0
}

func xRange(chart *models.Chart) (min, max float64) {
	for i, series := range chart.Series() {
		seriesMin, seriesMax := series.XRange()
		if i == 0 || seriesMin < min {
			min = seriesMin
		}
		if i == 0 || seriesMax > max {
			max = seriesMax
		}
	}
	return min, max
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
