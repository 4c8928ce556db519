package perf

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Fixed labels of the serial performance chart.
const (
	DefaultTitle  = "Synchronous vs Asynchronous Sandpile Performance (Serial Version)"
	DefaultXLabel = "Grid Size (NxN)"
	DefaultYLabel = "Time (seconds)"

	SyncSeriesName  = "Synchronous"
	AsyncSeriesName = "Asynchronous"
)

// ErrNoData is returned when asked to chart an empty dataset.
var ErrNoData = errors.New("perf: dataset is empty")

var (
	syncColor  = drawing.ColorFromHex("1f77b4")
	asyncColor = drawing.ColorFromHex("ff7f0e")
	gridColor  = drawing.ColorFromHex("dddddd")
)

const (
	lineWidth  = 2.0
	markerSize = 5.0
)

// ChartOptions controls labels and pixel size. Zero fields take the defaults.
type ChartOptions struct {
	Title   string
	XLabel  string
	YLabel  string
	Width   int
	Height  int
	DPI     int
	Caption string // optional footer drawn below the plot area
}

// DefaultChartOptions returns the serial chart labels on a 10x6 inch figure at 100 DPI.
func DefaultChartOptions() ChartOptions {
	w, h := FigureSize(10, 6, 100)
	return ChartOptions{
		Title:  DefaultTitle,
		XLabel: DefaultXLabel,
		YLabel: DefaultYLabel,
		Width:  w,
		Height: h,
		DPI:    100,
	}
}

func (o ChartOptions) withDefaults() ChartOptions {
	d := DefaultChartOptions()
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.XLabel == "" {
		o.XLabel = d.XLabel
	}
	if o.YLabel == "" {
		o.YLabel = d.YLabel
	}
	if o.Width <= 0 || o.Height <= 0 {
		o.Width, o.Height = d.Width, d.Height
	}
	if o.DPI <= 0 {
		o.DPI = d.DPI
	}
	return o
}

// squareSeries draws a line series with square markers. go-chart only draws
// round dots, so the markers are painted after the line.
type squareSeries struct {
	chart.ContinuousSeries
	Size float64
}

func (s squareSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	s.ContinuousSeries.Render(r, canvasBox, xrange, yrange, defaults)
	style := s.Style.InheritFrom(defaults)
	half := int(s.Size)
	col := style.GetStrokeColor()
	for i := 0; i < s.Len(); i++ {
		vx, vy := s.GetValues(i)
		x := canvasBox.Left + xrange.Translate(vx)
		y := canvasBox.Bottom - yrange.Translate(vy)
		r.SetFillColor(col)
		r.SetStrokeColor(col)
		r.SetStrokeWidth(1)
		r.MoveTo(x-half, y-half)
		r.LineTo(x+half, y-half)
		r.LineTo(x+half, y+half)
		r.LineTo(x-half, y+half)
		r.LineTo(x-half, y-half)
		r.Close()
		r.FillStroke()
	}
}

// padPoints mirrors a single point so go-chart has a non-empty x range.
func padPoints(xs, ys []float64) ([]float64, []float64) {
	if len(xs) != 1 {
		return xs, ys
	}
	return []float64{xs[0], xs[0] + 1}, []float64{ys[0], ys[0]}
}

func linearAxisTicks(lo, hi float64, n int) []chart.Tick {
	var ticks []chart.Tick
	for _, v := range BuildNumericTicks(lo, hi, n) {
		if v < lo || v > hi {
			continue
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: FormatNumericTick(v)})
	}
	return ticks
}

func valueRange(vals ...[]float64) (float64, float64) {
	lo, hi := vals[0][0], vals[0][0]
	for _, vs := range vals {
		for _, v := range vs {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

// buildChart assembles the two-series chart for ds.
func buildChart(ds DataSet, opts ChartOptions) (*chart.Chart, error) {
	if len(ds) == 0 {
		return nil, ErrNoData
	}
	opts = opts.withDefaults()
	sizes, syncYs, asyncYs := ds.Columns()

	xMin, xMax := paddedBounds(valueRange(sizes))
	yMin, yMax := paddedBounds(valueRange(syncYs, asyncYs))

	gridStyle := chart.Style{StrokeColor: gridColor, StrokeWidth: 1}
	padBottom := 20
	if opts.Caption != "" {
		padBottom += 18
	}

	xs, sy := padPoints(sizes, syncYs)
	_, ay := padPoints(sizes, asyncYs)
	syncSeries := chart.ContinuousSeries{
		Name:    SyncSeriesName,
		XValues: xs,
		YValues: sy,
		Style: chart.Style{
			StrokeColor: syncColor,
			StrokeWidth: lineWidth,
			DotColor:    syncColor,
			DotWidth:    markerSize,
		},
	}
	asyncSeries := squareSeries{
		ContinuousSeries: chart.ContinuousSeries{
			Name:    AsyncSeriesName,
			XValues: xs,
			YValues: ay,
			Style: chart.Style{
				StrokeColor: asyncColor,
				StrokeWidth: lineWidth,
			},
		},
		Size: markerSize,
	}

	ch := &chart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		DPI:        float64(opts.DPI),
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 20, Right: 24, Bottom: padBottom}},
		XAxis: chart.XAxis{
			Name:           opts.XLabel,
			Range:          &chart.ContinuousRange{Min: xMin, Max: xMax},
			Ticks:          linearAxisTicks(xMin, xMax, 9),
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           opts.YLabel,
			Range:          &chart.ContinuousRange{Min: yMin, Max: yMax},
			Ticks:          linearAxisTicks(yMin, yMax, 7),
			GridMajorStyle: gridStyle,
		},
		Series: []chart.Series{syncSeries, asyncSeries},
	}
	ch.Elements = []chart.Renderable{chart.Legend(ch)}
	return ch, nil
}

// RenderChart draws ds as a line chart and returns the decoded image.
func RenderChart(ds DataSet, opts ChartOptions) (image.Image, error) {
	ch, err := buildChart(ds, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	if opts.Caption != "" {
		img = Annotate(img, opts.Caption)
	}
	return img, nil
}

// WriteChart renders ds and PNG-encodes it to w.
func WriteChart(w io.Writer, ds DataSet, opts ChartOptions) error {
	img, err := RenderChart(ds, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png encode chart: %w", err)
	}
	return nil
}

// SaveChart renders ds to path and returns the image for display.
func SaveChart(path string, ds DataSet, opts ChartOptions) (img image.Image, err error) {
	img, err = RenderChart(ds, opts)
	if err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	bw := bufio.NewWriter(f)
	if err := png.Encode(bw, img); err != nil {
		return nil, fmt.Errorf("png encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return img, nil
}
