package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"fuzzplot/models"
)

// ScaleError reports a value that cannot be placed on a logarithmic axis.
type ScaleError struct {
	Series string
	// Axis is "x" or "y".
	Axis  string
	Value float64
}

func (e *ScaleError) Error() string {
	return fmt.Sprintf("log scale on %s axis but series %q contains non-positive value %g", e.Axis, e.Series, e.Value)
}

// Canvas sizes are given in pixels and converted at 96 DPI.
const dpi = 96

// Glyph shapes are assigned per series so lines stay distinguishable in print.
var glyphs = []draw.GlyphDrawer{
	draw.RingGlyph{},
	draw.SquareGlyph{},
	draw.TriangleGlyph{},
	draw.CrossGlyph{},
	draw.PlusGlyph{},
	draw.CircleGlyph{},
	draw.PyramidGlyph{},
	draw.BoxGlyph{},
}

// Build renders a chart into a plot. All series share one coordinate space
// and legend entries keep the order the series were supplied in. Validation
// runs up front so a returned plot is always drawable.
func Build(chart *models.Chart) (*plot.Plot, error) {
	if err := validate(chart); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = chart.Title()
	p.X.Label.Text = chart.XLabel()
	p.Y.Label.Text = chart.YLabel()

	if chart.XScale() == models.ScaleLog {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if chart.YScale() == models.ScaleLog {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	if chart.Grid() {
		p.Add(plotter.NewGrid())
	}

	for i, series := range chart.Series() {
		points := series.Points()
		xys := make(plotter.XYs, len(points))
		for j, point := range points {
			xys[j].X = point.X()
			xys[j].Y = point.Y()
		}

		line, scatter, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("couldn't build plotter for series %q: %w", series.Label(), err)
		}

		colour := seriesColour(i)
		line.Color = colour
		scatter.Color = colour
		scatter.Shape = glyphs[i%len(glyphs)]

		if chart.Style() == models.StyleLinePoints {
			p.Add(line, scatter)
			if chart.Legend() != models.LegendNone {
				p.Legend.Add(series.Label(), line, scatter)
			}
		} else {
			p.Add(line)
			if chart.Legend() != models.LegendNone {
				p.Legend.Add(series.Label(), line)
			}
		}
	}

	placeLegend(p, chart.Legend())
	if chart.LegendFontSize() > 0 {
		p.Legend.TextStyle.Font.Size = vg.Points(chart.LegendFontSize())
	}

	return p, nil
}

func validate(chart *models.Chart) error {
	if len(chart.Series()) == 0 {
		return &models.ConfigError{Field: "series", Reason: "at least one series is required"}
	}
	if chart.Width() <= 0 || chart.Height() <= 0 {
		return &models.ConfigError{
			Field:  "size",
			Value:  fmt.Sprintf("%dx%d", chart.Width(), chart.Height()),
			Reason: "width and height must be positive",
		}
	}

	for _, series := range chart.Series() {
		for _, point := range series.Points() {
			if chart.XScale() == models.ScaleLog && point.X() <= 0 {
				return &ScaleError{series.Label(), "x", point.X()}
			}
			if chart.YScale() == models.ScaleLog && point.Y() <= 0 {
				return &ScaleError{series.Label(), "y", point.Y()}
			}
		}
	}
	return nil
}

func placeLegend(p *plot.Plot, position models.LegendPosition) {
	switch position {
	case models.LegendLeft:
		p.Legend.Top = true
		p.Legend.Left = true
	case models.LegendRight:
		p.Legend.Top = true
		p.Legend.Left = false
	case models.LegendTop:
		p.Legend.Top = true
	case models.LegendBottom:
		p.Legend.Top = false
	}
}

// seriesColour spaces hues by the golden angle so neighbouring series get
// clearly different colours, deterministically.
func seriesColour(i int) color.Color {
	hue := math.Mod(float64(i)*137.5, 360)
	return colorful.Hsv(hue, 0.85, 0.75).Clamped()
}

func canvasSize(chart *models.Chart) (w, h vg.Length) {
	w = vg.Length(float64(chart.Width())/dpi) * vg.Inch
	h = vg.Length(float64(chart.Height())/dpi) * vg.Inch
	return w, h
}
