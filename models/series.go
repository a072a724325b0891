package models

type DataPoint struct {
	x float64
	y float64
}

func NewDataPoint(x, y float64) DataPoint {
	return DataPoint{
		x,
		y,
	}
}

func (p DataPoint) X() float64 {
	return p.x
}

func (p DataPoint) Y() float64 {
	return p.y
}

type Series struct {
	// label is the identifier and doubles as the legend entry.
	label string
	// points holds the actual data, in file order.
	points []DataPoint
}

func NewSeries(label string, points []DataPoint) *Series {
	return &Series{
		label,
		points,
	}
}

func (s *Series) Label() string {
	return s.label
}

func (s *Series) Points() []DataPoint {
	return s.points
}

func (s *Series) Len() int {
	return len(s.points)
}

// XRange returns the smallest and largest x value in the series.
// Both are 0 when the series is empty.
func (s *Series) XRange() (min, max float64) {
	for i, p := range s.points {
		if i == 0 || p.x < min {
			min = p.x
		}
		if i == 0 || p.x > max {
			max = p.x
		}
	}
	return min, max
}
