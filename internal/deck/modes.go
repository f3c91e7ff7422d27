package deck

// FilterAll shows every role bubble.
const FilterAll = "all"

// SetMode selects a mode of a table. Exactly the overlays declared for the
// mode end up visible among those the table manages, whatever was shown
// before. Unknown tables and modes are no-ops.
func (c *Controller) SetMode(key, mode string) {
	t, ok := c.cat.ModeTable(key)
	if !ok {
		c.ignore("unknown mode table", "table", key)
		return
	}
	m, ok := t.Mode(mode)
	if !ok {
		c.ignore("unknown mode", "table", key, "mode", mode)
		return
	}

	want := make(map[string]bool, len(m.Overlays))
	for _, id := range m.Overlays {
		want[id] = true
	}
	for _, id := range t.Overlays {
		el, ok := c.doc.ByID(id)
		if !ok {
			c.ignore("overlay missing from document", "overlay", id)
			continue
		}
		if want[id] {
			show(el, fadeHidden, fadeVisible)
		} else {
			hide(el, fadeHidden, fadeVisible)
		}
	}

	for _, btn := range c.doc.ByClass(t.ButtonClass()) {
		v, _ := btn.Attr("data-mode")
		btn.ToggleClass("active", v == mode)
	}

	heading := m.Title
	if heading == "" {
		heading = m.Label
	}
	c.writeText(t.TitleSlot, heading)
	c.writeText(t.DescSlot, m.Desc)
	if t.FillTarget != "" && m.Fill != "" {
		if el, ok := c.doc.ByID(t.FillTarget); ok {
			el.SetAttr("fill", m.Fill)
		}
	}
	c.state = c.state.WithMode(key, mode)

	if t.Panel != "" {
		panel, ok := c.doc.ByID(t.Panel)
		if !ok {
			c.ignore("mode panel missing from document", "panel", t.Panel)
			return
		}
		show(panel, fadeHidden, fadeVisible)
		c.state = c.state.WithPanel(t.Panel, true)
		c.arm(t.Panel, c.opts.BehaviorHide, func() {
			if el, ok := c.doc.ByID(t.Panel); ok {
				hide(el, fadeHidden, fadeVisible)
			}
			c.state = c.state.WithPanel(t.Panel, false)
		})
	}
}

func (c *Controller) writeText(id, value string) {
	if id == "" {
		return
	}
	if el, ok := c.doc.ByID(id); ok {
		el.SetText(value)
	}
}

// FilterRoles shows only the role bubbles of one team type. FilterAll shows
// every bubble; a team no bubble belongs to is a no-op.
func (c *Controller) FilterRoles(team string) {
	bubbles := c.doc.ByClass("pov-role-bubble")
	if team != FilterAll {
		known := false
		for _, b := range bubbles {
			if v, _ := b.Attr("data-team"); v == team {
				known = true
				break
			}
		}
		if !known {
			c.ignore("unknown team filter", "team", team)
			return
		}
	}
	for _, btn := range c.doc.ByClass("pov-filter-btn") {
		v, _ := btn.Attr("data-team")
		btn.ToggleClass("active", v == team)
	}
	for _, b := range bubbles {
		v, _ := b.Attr("data-team")
		b.ToggleClass("hidden", team != FilterAll && v != team)
	}
	c.state = c.state.WithFilter(team)
}
