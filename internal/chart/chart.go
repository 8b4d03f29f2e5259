package chart

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"math"
	"strings"

	"github.com/andresuchdata/eoq-calculator/internal/inventory"
)

//go:embed templates/*.svg
var templateFS embed.FS

var svgTemplate = template.Must(
	template.New("stock_chart.svg").
		Funcs(template.FuncMap{
			"add":  func(a, b float64) float64 { return a + b },
			"half": func(v float64) float64 { return v / 2 },
		}).
		ParseFS(templateFS, "templates/stock_chart.svg"),
)

// Band fill colours, drawn at 30% opacity under the stock line.
var bandColors = map[inventory.Band]string{
	inventory.BandCritical: "#ff0000",
	inventory.BandCaution:  "#ffff00",
	inventory.BandSafe:     "#008000",
}

const (
	defaultWidth  = 800
	defaultHeight = 400
	marginLeft    = 70
	marginRight   = 20
	marginTop     = 40
	marginBottom  = 50
	yTickCount    = 5
)

// Options controls chart size and labels.
type Options struct {
	Width    float64
	Height   float64
	Title    string
	XLabel   string
	YLabel   string
	Line     string // legend label for the stock line
	ROPLabel string // legend label for the reorder point line
}

// DefaultOptions returns the labels used on the calculator page.
func DefaultOptions() Options {
	return Options{
		Width:    defaultWidth,
		Height:   defaultHeight,
		Title:    "Grafik Level Stok Selama 10 Hari",
		XLabel:   "Hari",
		YLabel:   "Level Stok (unit)",
		Line:     "Level Stok",
		ROPLabel: "Reorder Point (ROP)",
	}
}

// Point is a plotted day of the stock series.
type Point struct {
	Day   int
	Level float64
	X     float64
	Y     float64
	Band  inventory.Band
}

// Fill is the shaded area under a run of consecutive days in the same band.
type Fill struct {
	Band  inventory.Band
	Color string
	Path  string
}

// Tick is an axis tick position with its label.
type Tick struct {
	Pos   float64
	Label string
}

// StockChart holds the SVG geometry for a stock series.
type StockChart struct {
	Options
	Left, Top, Right, Bottom float64
	Points                   []Point
	Polyline                 string
	Fills                    []Fill
	ROPY                     float64
	XTicks                   []Tick
	YTicks                   []Tick
}

// Build lays out a stock series on the chart canvas.
func Build(series inventory.StockSeries, opts Options) StockChart {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}

	c := StockChart{
		Options: opts,
		Left:    marginLeft,
		Top:     marginTop,
		Right:   opts.Width - marginRight,
		Bottom:  opts.Height - marginBottom,
	}

	yMax := math.Max(math.Max(series.MaxStock, series.ROP), 1) * 1.1
	xStep := (c.Right - c.Left) / float64(max(len(series.Days)-1, 1))
	scaleY := func(v float64) float64 {
		return c.Bottom - (c.Bottom-c.Top)*v/yMax
	}

	coords := make([]string, 0, len(series.Days))
	for i, day := range series.Days {
		p := Point{
			Day:   day,
			Level: series.Levels[i],
			X:     c.Left + xStep*float64(i),
			Y:     scaleY(series.Levels[i]),
			Band:  series.Bands[i],
		}
		c.Points = append(c.Points, p)
		coords = append(coords, fmt.Sprintf("%.2f,%.2f", p.X, p.Y))
		c.XTicks = append(c.XTicks, Tick{Pos: p.X, Label: fmt.Sprintf("%d", day)})
	}
	c.Polyline = strings.Join(coords, " ")
	c.ROPY = scaleY(series.ROP)

	for i := 0; i <= yTickCount; i++ {
		v := yMax * float64(i) / yTickCount
		c.YTicks = append(c.YTicks, Tick{Pos: scaleY(v), Label: fmt.Sprintf("%.1f", v)})
	}

	c.Fills = buildFills(c.Points, c.Bottom)
	return c
}

// buildFills shades each run of two or more consecutive days sharing a band,
// down to the x axis. A lone day has no width and is not drawn.
func buildFills(points []Point, baseY float64) []Fill {
	var fills []Fill
	for start := 0; start < len(points); {
		end := start
		for end+1 < len(points) && points[end+1].Band == points[start].Band {
			end++
		}
		if end > start {
			var b strings.Builder
			for i := start; i <= end; i++ {
				cmd := "L"
				if i == start {
					cmd = "M"
				}
				fmt.Fprintf(&b, "%s%.2f,%.2f ", cmd, points[i].X, points[i].Y)
			}
			fmt.Fprintf(&b, "L%.2f,%.2f L%.2f,%.2f Z", points[end].X, baseY, points[start].X, baseY)
			fills = append(fills, Fill{
				Band:  points[start].Band,
				Color: bandColors[points[start].Band],
				Path:  b.String(),
			})
		}
		start = end + 1
	}
	return fills
}

// Render writes the chart as a standalone SVG document.
func Render(w io.Writer, c StockChart) error {
	if err := svgTemplate.Execute(w, c); err != nil {
		return fmt.Errorf("failed to render stock chart: %w", err)
	}
	return nil
}

// RenderSeries builds and renders a series with the default options.
func RenderSeries(series inventory.StockSeries) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, Build(series, DefaultOptions())); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
