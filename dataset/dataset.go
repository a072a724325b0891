package dataset

import (
	"bufio"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"fuzzplot/models"
)

// Policy decides what happens to a row that doesn't parse into two numeric
// columns. Strict aborts the load; SkipMalformed drops the row and logs it.
type Policy int

const (
	Strict Policy = iota
	SkipMalformed
)

type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("data file %s does not exist", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

type MalformedRowError struct {
	Path string
	// Line is 1-based, counting every line in the file including comments.
	Line int
	Row  string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("%s:%d: malformed row %q, expected two numeric columns", e.Path, e.Line, e.Row)
}

// Load reads a whitespace-delimited result file into a series. The first two
// columns of each row are taken as x and y; extra columns are ignored. Blank
// lines and lines starting with '#' are skipped.
func Load(path, label string, policy Policy) (*models.Series, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{path, err}
		}
		return nil, err
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			log.Printf("couldn't close file: %s", err)
		}
	}(file)

	var points []models.DataPoint
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		row := strings.TrimSpace(scanner.Text())
		if row == "" || strings.HasPrefix(row, "#") {
			continue
		}

		x, y, ok := parseRow(row)
		if !ok {
			if policy == SkipMalformed {
				log.Printf("skipping malformed row %s:%d: %q", path, line, row)
				continue
			}
			return nil, &MalformedRowError{path, line, row}
		}
		points = append(points, models.NewDataPoint(x, y))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("couldn't read %s: %w", path, err)
	}

	return models.NewSeries(label, points), nil
}

func parseRow(row string) (x, y float64, ok bool) {
	cols := strings.Fields(row)
	if len(cols) < 2 {
		return 0, 0, false
	}
	x, errX := strconv.ParseFloat(cols[0], 64)
	y, errY := strconv.ParseFloat(cols[1], 64)
	if errX != nil || errY != nil {
		return 0, 0, false
	}
	// ParseFloat accepts "NaN" and "Inf" but neither can be plotted.
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, 0, false
	}
	return x, y, true
}
