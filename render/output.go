package render

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"fuzzplot/models"
)

var supportedFormats = map[string]bool{
	"png": true,
	"svg": true,
	"pdf": true,
}

// WriteFile renders the chart and saves it at path, with the format chosen by
// the file extension. The chart is fully rendered in memory before the file
// is created, so a failed render leaves no artifact behind.
func WriteFile(chart *models.Chart, path string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !supportedFormats[format] {
		return &models.ConfigError{Field: "output", Value: path, Reason: "extension must be .png, .svg or .pdf"}
	}

	var buf bytes.Buffer
	if err := renderTo(chart, format, &buf); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("couldn't create %s: %w", path, err)
	}

	if _, err := buf.WriteTo(file); err != nil {
		_ = file.Close()
		if removeErr := os.Remove(path); removeErr != nil {
			log.Printf("couldn't remove partial output %s: %s", path, removeErr)
		}
		return fmt.Errorf("couldn't write %s: %w", path, err)
	}
	return file.Close()
}

// SVG renders the chart to an SVG document, used by the live display surface.
func SVG(chart *models.Chart) (string, error) {
	var buf bytes.Buffer
	if err := renderTo(chart, "svg", &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderTo(chart *models.Chart, format string, buf *bytes.Buffer) error {
	p, err := Build(chart)
	if err != nil {
		return err
	}

	w, h := canvasSize(chart)
	writer, err := p.WriterTo(w, h, format)
	if err != nil {
		return fmt.Errorf("couldn't render chart %q: %w", chart.Title(), err)
	}
	if _, err := writer.WriteTo(buf); err != nil {
		return fmt.Errorf("couldn't render chart %q: %w", chart.Title(), err)
	}
	return nil
}
