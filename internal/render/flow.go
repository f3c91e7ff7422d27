package render

import (
	svg "github.com/ajstarks/svgo"

	"github.com/ziadkadry99/ddo-deck/internal/catalog"
)

// drawFlow renders horizontal lanes, one per track.
func drawFlow(canvas *svg.SVG, d *catalog.Diagram) {
	for i, e := range d.Elements {
		c := Color(e.Color)
		id := openRegion(canvas, d, e)
		canvas.Roundrect(e.X, e.Y, e.W, e.H, 14, 14,
			a("id", ShapeID(id)), a("fill", c), `fill-opacity="0.14"`, a("stroke", c), `stroke-width="`+strokeNormal+`"`)
		canvas.Circle(e.X+36, e.Y+e.H/2, 16, a("fill", c))
		label(canvas, e.X+36, e.Y+e.H/2+5, itoa(i+1), 14, true, `text-anchor="middle"`)
		label(canvas, e.X+68, e.Y+e.H/2-4, e.Label, 20, true)
		sublabel(canvas, e.X+68, e.Y+e.H/2+20, e.Sublabel)
		canvas.Gend()
	}
}

// drawOperatingModel renders side-by-side columns joined by flow arrows.
func drawOperatingModel(canvas *svg.SVG, d *catalog.Diagram) {
	for i, e := range d.Elements {
		if i == 0 {
			continue
		}
		prev := d.Elements[i-1]
		y := prev.Y + prev.H/2
		canvas.Line(prev.X+prev.W, y, e.X, y, a("stroke", subtleColor), `stroke-width="2"`)
	}
	for _, e := range d.Elements {
		c := Color(e.Color)
		id := openRegion(canvas, d, e)
		canvas.Roundrect(e.X, e.Y, e.W, e.H, 16, 16,
			a("id", ShapeID(id)), a("fill", c), `fill-opacity="0.12"`, a("stroke", c), `stroke-width="`+strokeNormal+`"`)
		canvas.Rect(e.X, e.Y, e.W, 6, a("fill", c))
		label(canvas, e.X+20, e.Y+40, e.Label, 18, true)
		sublabel(canvas, e.X+20, e.Y+64, e.Sublabel)
		canvas.Gend()
	}
}
