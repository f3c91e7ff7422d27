package deck

import "github.com/ziadkadry99/ddo-deck/internal/render"

// Viewport is a client report of the visible area. Tops maps the ids of
// reveal-on-scroll elements to their top offset relative to the viewport.
type Viewport struct {
	Width  int                `json:"width"`
	Height int                `json:"height"`
	Tops   map[string]float64 `json:"tops,omitempty"`
}

// JourneyContainer is the view the narrow accordion is appended to.
const JourneyContainer = "journey-view"

// RevealedClass is added once a reveal element has been in range.
const RevealedClass = "revealed"

// ApplyViewport runs the reveal sweep and swaps the journey layout across
// the width breakpoint.
func (c *Controller) ApplyViewport(v Viewport) {
	if v.Height > 0 {
		limit := c.opts.RevealRatio * float64(v.Height)
		for _, el := range c.doc.ByClass(RevealClass) {
			top, ok := v.Tops[el.ID()]
			if ok && top <= limit {
				el.AddClass(RevealedClass)
			}
		}
	}
	if v.Width > 0 {
		c.applyWidth(v.Width)
	}
}

func (c *Controller) applyWidth(width int) {
	narrow := width < c.opts.NarrowWidth
	existing, present := c.doc.ByID(render.AccordionID)
	switch {
	case narrow && !present:
		container, ok := c.doc.ByID(JourneyContainer)
		if !ok || c.timeline == "" {
			c.ignore("no journey container for the accordion")
			break
		}
		frag, err := c.r.Accordion(c.timeline)
		if err != nil {
			c.log.Error(err, "rendering accordion")
			break
		}
		if err := container.AppendHTML(string(frag)); err != nil {
			c.log.Error(err, "appending accordion")
		}
	case !narrow && present:
		existing.Remove()
	}
	c.state = c.state.WithNarrow(narrow)
}
