package render

import (
	svg "github.com/ajstarks/svgo"

	"github.com/ziadkadry99/ddo-deck/internal/catalog"
)

// drawLayers renders stacked architecture bands, top layer first.
func drawLayers(canvas *svg.SVG, d *catalog.Diagram) {
	for _, e := range d.Elements {
		c := Color(e.Color)
		id := openRegion(canvas, d, e, a("data-tag", e.Tag))
		canvas.Roundrect(e.X, e.Y, e.W, e.H, 12, 12,
			a("id", ShapeID(id)), a("fill", c), `fill-opacity="0.16"`, a("stroke", c), `stroke-width="`+strokeNormal+`"`)
		canvas.Rect(e.X, e.Y+8, 6, e.H-16, a("fill", c))
		label(canvas, e.X+24, e.Y+30, e.Label, 16, true)
		sublabel(canvas, e.X+24, e.Y+54, e.Sublabel)
		canvas.Gend()
	}
}

// drawContextMap renders bounded context boxes grouped under their layer tag,
// each with a topology code chip.
func drawContextMap(canvas *svg.SVG, d *catalog.Diagram) {
	seen := make(map[string]bool)
	for _, e := range d.Elements {
		if e.Tag == "" || seen[e.Tag] {
			continue
		}
		seen[e.Tag] = true
		canvas.Text(e.X, e.Y-10, e.Tag, a("fill", subtleColor), `font-size="12"`, `letter-spacing="1"`)
	}
	for _, e := range d.Elements {
		c := Color(e.Color)
		id := openRegion(canvas, d, e, a("data-layer", e.Tag))
		canvas.Roundrect(e.X, e.Y, e.W, e.H, 10, 10,
			a("id", ShapeID(id)), a("fill", c), `fill-opacity="0.14"`, a("stroke", c), `stroke-width="`+strokeNormal+`"`)
		label(canvas, e.X+14, e.Y+28, e.Label, 13, true)
		if e.Sublabel != "" {
			canvas.Roundrect(e.X+e.W-46, e.Y+e.H-30, 34, 20, 6, 6, a("fill", c))
			label(canvas, e.X+e.W-29, e.Y+e.H-16, e.Sublabel, 11, true, `text-anchor="middle"`)
		}
		canvas.Gend()
	}
}
