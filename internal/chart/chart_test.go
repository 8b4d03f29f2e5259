package chart

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/andresuchdata/eoq-calculator/internal/inventory"
)

func TestBuildScalesPoints(t *testing.T) {
	series := inventory.BuildSeries(10, 30, 7)
	c := Build(series, DefaultOptions())

	if len(c.Points) != inventory.SeriesHorizon {
		t.Fatalf("Expected %d points, got %d", inventory.SeriesHorizon, len(c.Points))
	}
	if c.Points[0].X != c.Left {
		t.Errorf("Expected first point at left edge %v, got %v", c.Left, c.Points[0].X)
	}
	if last := c.Points[len(c.Points)-1].X; math.Abs(last-c.Right) > 1e-9 {
		t.Errorf("Expected last point at right edge %v, got %v", c.Right, c.Points[len(c.Points)-1].X)
	}
	if c.Points[9].Y != c.Bottom {
		t.Errorf("Expected zero level on the x axis (%v), got %v", c.Bottom, c.Points[9].Y)
	}
	for i := 1; i < len(c.Points); i++ {
		if c.Points[i].Y < c.Points[i-1].Y {
			t.Errorf("Expected line to descend, point %d at %v is above point %d at %v", i, c.Points[i].Y, i-1, c.Points[i-1].Y)
		}
	}
	if c.ROPY <= c.Top || c.ROPY >= c.Bottom {
		t.Errorf("Expected ROP line inside the plot, got %v", c.ROPY)
	}
}

func TestBuildFillsFollowBandRuns(t *testing.T) {
	// day 0 safe, days 1-4 caution, days 5-9 critical
	c := Build(inventory.BuildSeries(10, 30, 7), DefaultOptions())

	if len(c.Fills) != 2 {
		t.Fatalf("Expected 2 fills (lone safe day is not drawn), got %d", len(c.Fills))
	}
	if c.Fills[0].Band != inventory.BandCaution || c.Fills[0].Color != "#ffff00" {
		t.Errorf("Expected yellow caution fill first, got %s %s", c.Fills[0].Band, c.Fills[0].Color)
	}
	if c.Fills[1].Band != inventory.BandCritical || c.Fills[1].Color != "#ff0000" {
		t.Errorf("Expected red critical fill second, got %s %s", c.Fills[1].Band, c.Fills[1].Color)
	}
	if !strings.HasPrefix(c.Fills[0].Path, "M") || !strings.HasSuffix(c.Fills[0].Path, "Z") {
		t.Errorf("Expected closed path, got %q", c.Fills[0].Path)
	}
}

func TestBuildDefaultsSize(t *testing.T) {
	c := Build(inventory.BuildSeries(1, 1, 1), Options{})

	if c.Width != defaultWidth || c.Height != defaultHeight {
		t.Errorf("Expected default size %dx%d, got %vx%v", defaultWidth, defaultHeight, c.Width, c.Height)
	}
}

func TestRenderSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, Build(inventory.BuildSeries(10, 30, 7), DefaultOptions())); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		"Grafik Level Stok Selama 10 Hari",
		`class="rop"`,
		`class="stock"`,
		`class="band-caution"`,
		`class="band-critical"`,
		"Reorder Point (ROP)",
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected SVG to contain %q", want)
		}
	}
	if strings.Contains(out, `class="band-safe"`) {
		t.Error("Did not expect a safe fill for a single safe day")
	}
	if got := strings.Count(out, "<circle"); got != inventory.SeriesHorizon {
		t.Errorf("Expected %d markers, got %d", inventory.SeriesHorizon, got)
	}
}

func TestRenderSeries(t *testing.T) {
	out, err := RenderSeries(inventory.BuildSeries(3, 6, 30))
	if err != nil {
		t.Fatalf("RenderSeries failed: %v", err)
	}
	// shelf life longer than the window: day 0 safe, the rest caution
	if !bytes.Contains(out, []byte(`class="band-caution"`)) {
		t.Error("Expected caution fill")
	}
	if bytes.Contains(out, []byte(`class="band-critical"`)) {
		t.Error("Did not expect critical fill")
	}
}
