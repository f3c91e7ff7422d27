package render

import (
	"fmt"
	"html"

	svg "github.com/ajstarks/svgo"

	"github.com/ziadkadry99/ddo-deck/internal/catalog"
)

var palette = map[string]string{
	"blue":    "#3b82f6",
	"emerald": "#10b981",
	"pink":    "#ec4899",
	"red":     "#ef4444",
	"orange":  "#f97316",
	"indigo":  "#6366f1",
	"green":   "#22c55e",
	"purple":  "#a855f7",
	"cyan":    "#06b6d4",
	"amber":   "#f59e0b",
	"sky":     "#0ea5e9",
}

// Color resolves a color token to a hex value. Unknown tokens render slate.
func Color(token string) string {
	if c, ok := palette[token]; ok {
		return c
	}
	return "#64748b"
}

const (
	textColor   = "#f8fafc"
	subtleColor = "#cbd5e1"

	// Stroke widths of region shapes before any highlight.
	strokeNormal = "2"
	strokeRole   = "2.5"
)

func esc(s string) string { return html.EscapeString(s) }

func a(name, value string) string { return fmt.Sprintf(`%s="%s"`, name, esc(value)) }

// openRegion starts the interactive group of an element. Callers must close it
// with Gend.
func openRegion(canvas *svg.SVG, d *catalog.Diagram, e catalog.Element, extra ...string) string {
	id := RegionID(d, e.ID)
	attrs := []string{
		a("id", id),
		a("class", Marker(d.Kind)),
		a("data-diagram", d.ID),
		a("data-region", e.ID),
		`tabindex="0"`,
		`role="button"`,
		a("aria-label", e.Label),
	}
	canvas.Group(append(attrs, extra...)...)
	return id
}

func label(canvas *svg.SVG, x, y int, text string, size int, bold bool, extra ...string) {
	if text == "" {
		return
	}
	attrs := []string{a("fill", textColor), fmt.Sprintf(`font-size="%d"`, size)}
	if bold {
		attrs = append(attrs, `font-weight="600"`)
	}
	canvas.Text(x, y, text, append(attrs, extra...)...)
}

func sublabel(canvas *svg.SVG, x, y int, text string, extra ...string) {
	if text == "" {
		return
	}
	canvas.Text(x, y, text, append([]string{a("fill", subtleColor), `font-size="13"`}, extra...)...)
}

// drawOverlays renders every overlay group hidden.
func drawOverlays(canvas *svg.SVG, d *catalog.Diagram) {
	for _, o := range d.Overlays {
		canvas.Group(a("id", o.ID), `class="overlay opacity-0"`, `pointer-events="none"`, a("data-overlay", o.Label))
		for _, s := range o.Shapes {
			drawShape(canvas, s)
		}
		canvas.Gend()
	}
}

func drawShape(canvas *svg.SVG, s catalog.Shape) {
	c := Color(s.Color)
	dash := []string{}
	if s.Dashed {
		dash = append(dash, `stroke-dasharray="8 6"`)
	}
	switch s.Kind {
	case "path":
		canvas.Path(s.D, append([]string{`fill="none"`, a("stroke", c), `stroke-width="3"`}, dash...)...)
	case "line":
		canvas.Line(s.X, s.Y, s.X2, s.Y2, append([]string{a("stroke", c), `stroke-width="2"`}, dash...)...)
	case "circle":
		canvas.Circle(s.X, s.Y, s.R, a("fill", c), `fill-opacity="0.25"`, a("stroke", c), `stroke-width="2"`)
	case "rect":
		canvas.Roundrect(s.X, s.Y, s.W, s.H, 8, 8, append([]string{a("fill", c), `fill-opacity="0.12"`, a("stroke", c), `stroke-width="1"`}, dash...)...)
	case "text":
		canvas.Text(s.X, s.Y, s.Text, a("fill", c), `font-size="13"`, `font-weight="600"`)
	}
}
