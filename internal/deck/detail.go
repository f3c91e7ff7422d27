package deck

import "github.com/ziadkadry99/ddo-deck/internal/render"

// ShowDetail surfaces the detail record of a region in its diagram's panel.
// Unknown diagrams, regions without a record and missing panels are no-ops.
func (c *Controller) ShowDetail(diagram, region string) {
	spec, ok := c.panels[diagram]
	if !ok {
		c.ignore("diagram has no panel", "diagram", diagram)
		return
	}
	rec, ok := c.cat.Detail(diagram, region)
	if !ok {
		c.ignore("region has no detail", "diagram", diagram, "region", region)
		return
	}
	panel, ok := c.doc.ByID(spec.Panel)
	if !ok {
		c.ignore("panel missing from document", "panel", spec.Panel)
		return
	}

	for _, slot := range spec.Slots {
		el, ok := c.doc.ByID(slot.ID)
		if !ok {
			c.ignore("slot missing from document", "slot", slot.ID)
			continue
		}
		if slot.Text != nil {
			el.SetText(slot.Text(rec))
			continue
		}
		frag, err := slot.HTML(rec)
		if err != nil {
			c.log.Error(err, "rendering slot", "slot", slot.ID)
			continue
		}
		if err := el.SetHTML(string(frag)); err != nil {
			c.log.Error(err, "writing slot", "slot", slot.ID)
		}
	}
	show(panel, spec.Hidden, spec.Visible)

	if prev := c.state.Highlight(diagram); prev != "" && prev != region {
		c.setHighlight(diagram, prev, spec.Normal)
	}
	c.setHighlight(diagram, region, spec.Emphasis)
	c.state = c.state.WithHighlight(diagram, region).WithPanel(spec.Panel, true)

	if spec.AutoHide > 0 {
		c.arm(spec.Panel, spec.AutoHide, func() { c.HideDetail(diagram) })
	}
}

// HideDetail hides a diagram's panel, clears its highlight and cancels any
// pending auto-hide.
func (c *Controller) HideDetail(diagram string) {
	spec, ok := c.panels[diagram]
	if !ok {
		c.ignore("diagram has no panel", "diagram", diagram)
		return
	}
	c.disarm(spec.Panel)
	if panel, ok := c.doc.ByID(spec.Panel); ok {
		hide(panel, spec.Hidden, spec.Visible)
	}
	if prev := c.state.Highlight(diagram); prev != "" {
		c.setHighlight(diagram, prev, spec.Normal)
	}
	c.state = c.state.WithHighlight(diagram, "").WithPanel(spec.Panel, false)
}

func (c *Controller) setHighlight(diagram, region, value string) {
	d, ok := c.cat.Diagram(diagram)
	if !ok {
		return
	}
	spec := c.panels[diagram]
	if shape, ok := c.doc.ByID(render.ShapeID(render.RegionID(d, region))); ok {
		shape.SetAttr(spec.HighlightAttr, value)
	}
}
