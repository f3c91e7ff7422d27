package deck

import (
	"strings"

	"github.com/ziadkadry99/ddo-deck/internal/dom"
)

// Gesture types forwarded by the client.
const (
	GestureClick  = "click"
	GestureHover  = "hover"
	GestureKey    = "key"
	GestureScroll = "scroll"
	GestureResize = "resize"
)

// Gesture is one user input. Target is the id of the closest element with
// an id under the pointer or focus.
type Gesture struct {
	Type     string    `json:"type"`
	Target   string    `json:"target,omitempty"`
	Key      string    `json:"key,omitempty"`
	Viewport *Viewport `json:"viewport,omitempty"`
}

// Rule maps gestures on matching elements to one handler.
type Rule struct {
	Name     string
	Gestures []string
	Match    func(el *dom.Element) bool
	Handle   func(c *Controller, el *dom.Element)
}

func (r Rule) accepts(gesture string) bool {
	for _, g := range r.Gestures {
		if g == gesture {
			return true
		}
	}
	return false
}

func hasClass(class string) func(*dom.Element) bool {
	return func(el *dom.Element) bool { return el.HasClass(class) }
}

func hasClassSuffix(suffix string) func(*dom.Element) bool {
	return func(el *dom.Element) bool {
		for _, c := range el.Classes() {
			if strings.HasSuffix(c, suffix) && len(c) > len(suffix) {
				return true
			}
		}
		return false
	}
}

func data(el *dom.Element, name string) string {
	v, _ := el.Attr("data-" + name)
	return v
}

func showRegion(c *Controller, el *dom.Element) {
	c.ShowDetail(data(el, "diagram"), data(el, "region"))
}

func selectMode(c *Controller, el *dom.Element) {
	c.SetMode(data(el, "mode-table"), data(el, "mode"))
}

func regionRule(marker string, gestures ...string) Rule {
	return Rule{Name: marker, Gestures: gestures, Match: hasClass(marker), Handle: showRegion}
}

// DefaultRules returns the dispatch table in priority order. View buttons
// come first so a nav control nested in another region always switches views.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "view-btn",
			Gestures: []string{GestureClick},
			Match:    hasClass("view-btn"),
			Handle: func(c *Controller, el *dom.Element) {
				view := data(el, "view")
				if view == "" {
					view = strings.TrimPrefix(el.ID(), "nav-")
				}
				c.SwitchView(view)
			},
		},
		{
			Name:     "detail-close",
			Gestures: []string{GestureClick},
			Match:    hasClass("detail-close"),
			Handle:   func(c *Controller, el *dom.Element) { c.HideDetail(data(el, "diagram")) },
		},
		{Name: "mode-btn", Gestures: []string{GestureClick}, Match: hasClassSuffix("-mode-btn"), Handle: selectMode},
		{Name: "layer-btn", Gestures: []string{GestureClick}, Match: hasClassSuffix("-layer-btn"), Handle: selectMode},
		regionRule("ctx-clickable", GestureClick),
		regionRule("pov-role-bubble", GestureClick),
		{
			Name:     "pov-filter-btn",
			Gestures: []string{GestureClick},
			Match:    hasClass("pov-filter-btn"),
			Handle:   func(c *Controller, el *dom.Element) { c.FilterRoles(data(el, "team")) },
		},
		regionRule("wow-track", GestureClick, GestureHover),
		regionRule("pom-track", GestureClick, GestureHover),
		regionRule("sta-band", GestureClick),
		regionRule("journey-stage", GestureClick),
	}
}

// Dispatch routes a gesture to the first rule matching the target or one of
// its ancestors, closest first. It reports whether any rule handled it.
func (c *Controller) Dispatch(g Gesture) bool {
	switch g.Type {
	case GestureScroll, GestureResize:
		if g.Viewport == nil {
			c.ignore("viewport gesture without metrics", "type", g.Type)
			return false
		}
		c.ApplyViewport(*g.Viewport)
		return true
	}

	el, ok := c.doc.ByID(g.Target)
	if !ok {
		c.ignore("gesture target missing", "type", g.Type, "target", g.Target)
		return false
	}

	if g.Type == GestureKey {
		if g.Key != "Enter" && g.Key != " " {
			return false
		}
		if _, focusable := el.Attr("tabindex"); !focusable {
			c.ignore("key on element without tabindex", "target", g.Target)
			return false
		}
		g.Type = GestureClick
	}

	chain := el.Ancestors()
	for _, rule := range c.rules {
		if !rule.accepts(g.Type) {
			continue
		}
		for _, anc := range chain {
			if rule.Match(anc) {
				c.log.V(1).Info("gesture", "rule", rule.Name, "type", g.Type, "target", g.Target)
				rule.Handle(c, anc)
				return true
			}
		}
	}
	c.ignore("no rule matched", "type", g.Type, "target", g.Target)
	return false
}
