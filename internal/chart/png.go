package chart

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	defaultWidth  = 1400
	groupWidth    = 0.8
	countHeadroom = 1.1
)

// RenderOptions sizes the PNG output. Zero values fall back to the chart
// layout height and a 1400px width.
type RenderOptions struct {
	Width  int
	Height int
}

var namedColors = map[string]string{
	"blue":   "0000FF",
	"red":    "FF0000",
	"green":  "008000",
	"orange": "FFA500",
	"purple": "800080",
}

// RenderPNG paints spec as a PNG image. An empty spec renders a blank canvas
// rather than failing.
func RenderPNG(w io.Writer, spec Spec, opts RenderOptions) error {
	width, height := opts.size(spec)
	if spec.IsEmpty() {
		return png.Encode(w, blank(width, height))
	}

	ch := gochart.Chart{
		Title:  spec.Title,
		Width:  width,
		Height: height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 70, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: categoryAxis(spec),
		YAxis: gochart.YAxis{
			Name:           spec.YAxis.Title,
			Range:          &gochart.ContinuousRange{Min: 0, Max: countsMax(spec)},
			ValueFormatter: countTick,
		},
		YAxisSecondary: gochart.YAxis{
			Name:           spec.Y2Axis.Title,
			Range:          axisRange(spec.Y2Axis),
			ValueFormatter: percentTick,
		},
		Series: buildSeries(spec),
	}
	ch.Elements = []gochart.Renderable{gochart.LegendThin(&ch)}

	if err := ch.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func (o RenderOptions) size(spec Spec) (int, int) {
	width, height := o.Width, o.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = spec.Layout.Height
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

// categoryAxis places category i at x=i. The empty ticks at the half steps
// keep the outer bar groups inside the plot, including for a single category.
func categoryAxis(spec Spec) gochart.XAxis {
	n := len(spec.Categories)
	ticks := make([]gochart.Tick, 0, n+2)
	ticks = append(ticks, gochart.Tick{Value: -0.5})
	for i, name := range spec.Categories {
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: tickLabel(name)})
	}
	ticks = append(ticks, gochart.Tick{Value: float64(n) - 0.5})

	return gochart.XAxis{
		Range: &gochart.ContinuousRange{Min: -0.5, Max: float64(n) - 0.5},
		Ticks: ticks,
		TickStyle: gochart.Style{
			TextRotationDegrees: math.Abs(float64(spec.Layout.TickAngle)),
		},
	}
}

func buildSeries(spec Spec) []gochart.Series {
	bars := spec.SeriesOn(AxisCounts)
	barWidth := groupWidth / float64(max(len(bars), 1))

	var out []gochart.Series
	var labels []gochart.Series
	for i, s := range bars {
		offset := (float64(i) - float64(len(bars)-1)/2) * barWidth
		col := seriesColor(s.Color)
		out = append(out, groupedBars{
			Name:   s.Name,
			Values: s.Values,
			Offset: offset,
			Width:  barWidth,
			Style: gochart.Style{
				FillColor:   col,
				StrokeColor: col,
				StrokeWidth: 1,
			},
		})
		if ann, ok := annotations(s, offset, gochart.YAxisPrimary); ok {
			labels = append(labels, ann)
		}
	}

	for _, s := range spec.SeriesOn(AxisPercent) {
		col := seriesColor(s.Color)
		style := gochart.Style{
			StrokeColor: col,
			StrokeWidth: s.LineWidth,
		}
		if s.Dashed {
			style.StrokeDashArray = []float64{5.0, 5.0}
		}
		if s.Markers {
			style.DotColor = col
			style.DotWidth = 3
		}
		out = append(out, gochart.ContinuousSeries{
			Name:    s.Name,
			YAxis:   gochart.YAxisSecondary,
			XValues: indexes(len(s.Values), 0),
			YValues: s.Values,
			Style:   style,
		})
		if ann, ok := annotations(s, 0, gochart.YAxisSecondary); ok {
			labels = append(labels, ann)
		}
	}

	return append(out, labels...)
}

func annotations(s Series, offset float64, axis gochart.YAxisType) (gochart.AnnotationSeries, bool) {
	if len(s.Labels) == 0 || len(s.Labels) != len(s.Values) {
		return gochart.AnnotationSeries{}, false
	}
	values := make([]gochart.Value2, len(s.Values))
	for i, v := range s.Values {
		values[i] = gochart.Value2{XValue: float64(i) + offset, YValue: v, Label: s.Labels[i]}
	}
	col := seriesColor(s.Color)
	return gochart.AnnotationSeries{
		Name:        s.Name + " labels",
		YAxis:       axis,
		Annotations: values,
		Style: gochart.Style{
			FontSize:    7,
			FontColor:   col,
			StrokeColor: col,
			FillColor:   drawing.ColorWhite,
		},
	}, true
}

// groupedBars draws one bar per category, shifted by Offset so that several
// series sit side by side within a category.
type groupedBars struct {
	Name   string
	Style  gochart.Style
	Values []float64
	Offset float64
	Width  float64
}

func (b groupedBars) GetName() string {
	return b.Name
}

func (b groupedBars) GetStyle() gochart.Style {
	return b.Style
}

func (b groupedBars) GetYAxis() gochart.YAxisType {
	return gochart.YAxisPrimary
}

func (b groupedBars) Len() int {
	return len(b.Values)
}

func (b groupedBars) GetValues(i int) (float64, float64) {
	return float64(i) + b.Offset, b.Values[i]
}

func (b groupedBars) Validate() error {
	if len(b.Values) == 0 {
		return fmt.Errorf("bar series %q has no values", b.Name)
	}
	return nil
}

func (b groupedBars) Render(r gochart.Renderer, canvasBox gochart.Box, xrange, yrange gochart.Range, defaults gochart.Style) {
	style := b.Style.InheritFrom(defaults)
	r.SetFillColor(style.FillColor)
	r.SetStrokeColor(style.StrokeColor)
	r.SetStrokeWidth(style.StrokeWidth)

	for i, v := range b.Values {
		x := float64(i) + b.Offset
		left := canvasBox.Left + xrange.Translate(x-b.Width/2)
		right := canvasBox.Left + xrange.Translate(x+b.Width/2)
		top := canvasBox.Bottom - yrange.Translate(v)
		bottom := canvasBox.Bottom

		r.MoveTo(left, top)
		r.LineTo(right, top)
		r.LineTo(right, bottom)
		r.LineTo(left, bottom)
		r.LineTo(left, top)
		r.Close()
		r.FillStroke()
	}
}

func countsMax(spec Spec) float64 {
	top := 0.0
	for _, s := range spec.SeriesOn(AxisCounts) {
		for _, v := range s.Values {
			top = math.Max(top, v)
		}
	}
	if top <= 0 {
		return 1
	}
	return math.Ceil(top * countHeadroom)
}

func axisRange(axis Axis) gochart.Range {
	if axis.Range == nil {
		return nil
	}
	return &gochart.ContinuousRange{Min: axis.Range[0], Max: axis.Range[1]}
}

func seriesColor(name string) drawing.Color {
	if hex, ok := namedColors[name]; ok {
		return drawing.ColorFromHex(hex)
	}
	return drawing.Color{}
}

func tickLabel(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func countTick(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}

func percentTick(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f%%", f)
	}
	return ""
}

func indexes(n int, offset float64) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) + offset
	}
	return xs
}

func blank(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	return img
}
