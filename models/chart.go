package models

type ScaleMode string

const (
	ScaleLinear ScaleMode = "linear"
	ScaleLog    ScaleMode = "log"
)

type LegendPosition string

const (
	LegendLeft   LegendPosition = "left"
	LegendRight  LegendPosition = "right"
	LegendTop    LegendPosition = "top"
	LegendBottom LegendPosition = "bottom"
	LegendNone   LegendPosition = "none"
)

type LineStyle string

const (
	StyleLine       LineStyle = "line"
	StyleLinePoints LineStyle = "line+points"
)

func ParseScaleMode(s string) (ScaleMode, error) {
	switch ScaleMode(s) {
	case ScaleLinear, ScaleLog:
		return ScaleMode(s), nil
	}
	return "", &ConfigError{"scale", s, "must be 'linear' or 'log'"}
}

func ParseLegendPosition(s string) (LegendPosition, error) {
	switch LegendPosition(s) {
	case LegendLeft, LegendRight, LegendTop, LegendBottom, LegendNone:
		return LegendPosition(s), nil
	}
	return "", &ConfigError{"legend-position", s, "must be 'left', 'right', 'top', 'bottom' or 'none'"}
}

func ParseLineStyle(s string) (LineStyle, error) {
	switch LineStyle(s) {
	case StyleLine, StyleLinePoints:
		return LineStyle(s), nil
	}
	return "", &ConfigError{"style", s, "must be 'line' or 'line+points'"}
}

type Chart struct {
	// title is shown above the plot area.
	title string
	// xLabel and yLabel annotate the axes.
	xLabel string
	yLabel string
	// xScale and yScale select linear or logarithmic scaling per axis.
	xScale ScaleMode
	yScale ScaleMode
	// legend determines where legend entries are drawn, or LegendNone to omit them.
	legend LegendPosition
	// width and height are the canvas size in pixels.
	width  int
	height int
	// grid toggles background grid lines.
	grid bool
	// style determines how every series is drawn.
	style LineStyle
	// legendFontSize is the legend text size in points, 0 for the renderer default.
	legendFontSize float64
	// series to draw, in legend order.
	series []*Series
}

func NewChart(
	title,
	xLabel,
	yLabel string,
	xScale,
	yScale ScaleMode,
	legend LegendPosition,
	width,
	height int,
	grid bool,
	style LineStyle,
	legendFontSize float64,
	series []*Series,
) *Chart {
	return &Chart{
		title,
		xLabel,
		yLabel,
		xScale,
		yScale,
		legend,
		width,
		height,
		grid,
		style,
		legendFontSize,
		series,
	}
}

func (c *Chart) Title() string {
	return c.title
}

func (c *Chart) XLabel() string {
	return c.xLabel
}

func (c *Chart) YLabel() string {
	return c.yLabel
}

func (c *Chart) XScale() ScaleMode {
	return c.xScale
}

func (c *Chart) YScale() ScaleMode {
	return c.yScale
}

func (c *Chart) Legend() LegendPosition {
	return c.legend
}

func (c *Chart) Width() int {
	return c.width
}

func (c *Chart) Height() int {
	return c.height
}

func (c *Chart) Grid() bool {
	return c.grid
}

func (c *Chart) Style() LineStyle {
	return c.style
}

func (c *Chart) LegendFontSize() float64 {
	return c.legendFontSize
}

func (c *Chart) Series() []*Series {
	return c.series
}
