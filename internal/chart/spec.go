// Package chart turns a filtered department view into a declarative chart
// description (Spec) and paints it to PNG.
package chart

// SeriesKind is the visual form of a series.
type SeriesKind string

const (
	KindBar  SeriesKind = "bar"
	KindLine SeriesKind = "line"
)

// AxisRef names the y-axis a series is plotted against.
type AxisRef string

const (
	AxisCounts  AxisRef = "y"
	AxisPercent AxisRef = "y2"
)

// Spec is a renderer-independent description of the dashboard chart.
type Spec struct {
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
	Series     []Series `json:"series"`
	YAxis      Axis     `json:"y_axis"`
	Y2Axis     Axis     `json:"y2_axis"`
	Layout     Layout   `json:"layout"`
}

// Series is one data series plotted over the categories.
type Series struct {
	Name          string     `json:"name"`
	Kind          SeriesKind `json:"kind"`
	Axis          AxisRef    `json:"axis"`
	Values        []float64  `json:"values"`
	Labels        []string   `json:"labels,omitempty"`
	LabelPosition string     `json:"label_position,omitempty"`
	Color         string     `json:"color"`
	LineWidth     float64    `json:"line_width,omitempty"`
	Dashed        bool       `json:"dashed,omitempty"`
	Markers       bool       `json:"markers,omitempty"`
}

// Axis describes a y-axis. A nil Range means the renderer picks the bounds.
type Axis struct {
	Title string      `json:"title"`
	Range *[2]float64 `json:"range,omitempty"`
}

// Layout carries presentation hints for the renderer.
type Layout struct {
	Height    int    `json:"height"`
	BarMode   string `json:"bar_mode"`
	TickAngle int    `json:"tick_angle"`
	Legend    Legend `json:"legend"`
}

// Legend placement in paper coordinates.
type Legend struct {
	Orientation string  `json:"orientation"`
	XAnchor     string  `json:"x_anchor"`
	YAnchor     string  `json:"y_anchor"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
}

// IsEmpty reports whether the spec has no categories to draw.
func (s Spec) IsEmpty() bool {
	return len(s.Categories) == 0
}

// SeriesOn returns the series plotted against axis, in spec order.
func (s Spec) SeriesOn(axis AxisRef) []Series {
	var out []Series
	for _, series := range s.Series {
		if series.Axis == axis {
			out = append(out, series)
		}
	}
	return out
}
