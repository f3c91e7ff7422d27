package deck

import "github.com/ziadkadry99/ddo-deck/internal/dom"

// RevealClass marks elements that fade in once scrolled into range.
const RevealClass = "reveal-on-scroll"

// SwitchView activates the view with the given id. The current view and
// unknown ids are no-ops. The reveal sweep is re-requested after the
// transition settles.
func (c *Controller) SwitchView(id string) {
	if id == c.state.View() {
		return
	}
	if _, ok := c.doc.ByID(id + "-view"); !ok {
		c.ignore("unknown view", "view", id)
		return
	}
	for _, el := range c.doc.ByClass("view-container") {
		el.ToggleClass("active", el.ID() == id+"-view")
	}
	for _, el := range c.doc.ByClass("view-btn") {
		el.ToggleClass("active", el.ID() == "nav-"+id)
	}
	c.state = c.state.WithView(id)
	c.doc.Emit(dom.ScrollTop())
	c.after(c.opts.RevealDelay, func() { c.doc.Emit(dom.Measure(RevealClass)) })
}
