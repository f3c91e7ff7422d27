package render

import (
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/ziadkadry99/ddo-deck/internal/catalog"
)

// drawBubbles renders one circle per role, tagged with its team type so the
// role filter can address it.
func drawBubbles(canvas *svg.SVG, d *catalog.Diagram) {
	for _, e := range d.Elements {
		c := Color(e.Color)
		id := openRegion(canvas, d, e, a("data-team", e.Team))
		canvas.Circle(e.X, e.Y, e.R,
			a("id", ShapeID(id)), a("fill", c), `fill-opacity="0.22"`, a("stroke", c), `stroke-width="`+strokeRole+`"`)
		label(canvas, e.X, e.Y, e.Label, 13, true, `text-anchor="middle"`)
		sublabel(canvas, e.X, e.Y+20, e.Sublabel, `text-anchor="middle"`)
		canvas.Gend()
	}
}

// drawTimeline renders stage markers along a horizontal baseline.
func drawTimeline(canvas *svg.SVG, d *catalog.Diagram) {
	if n := len(d.Elements); n > 1 {
		first, last := d.Elements[0], d.Elements[n-1]
		canvas.Line(first.X, first.Y, last.X, last.Y, a("stroke", subtleColor), `stroke-width="3"`, `stroke-linecap="round"`)
	}
	for i, e := range d.Elements {
		c := Color(e.Color)
		id := openRegion(canvas, d, e)
		canvas.Circle(e.X, e.Y, e.R,
			a("id", ShapeID(id)), a("fill", c), a("stroke", textColor), `stroke-width="`+strokeNormal+`"`)
		label(canvas, e.X, e.Y+5, itoa(i+1), 14, true, `text-anchor="middle"`)
		label(canvas, e.X, e.Y+e.R+28, e.Label, 15, true, `text-anchor="middle"`)
		sublabel(canvas, e.X, e.Y+e.R+48, e.Sublabel, `text-anchor="middle"`)
		canvas.Gend()
	}
}

func itoa(i int) string { return strconv.Itoa(i) }
