package deck

// State is the UI state of one session. It is never mutated in place; every
// transition produces a new value through one of the With methods.
type State struct {
	view      string
	modes     map[string]string
	highlight map[string]string
	panels    map[string]bool
	filter    string
	narrow    bool
}

// NewState returns the state of a freshly loaded page.
func NewState(view string, modes map[string]string) State {
	s := State{
		view:      view,
		modes:     make(map[string]string, len(modes)),
		highlight: map[string]string{},
		panels:    map[string]bool{},
		filter:    FilterAll,
	}
	for k, v := range modes {
		s.modes[k] = v
	}
	return s
}

func (s State) clone() State {
	n := s
	n.modes = copyMap(s.modes)
	n.highlight = copyMap(s.highlight)
	n.panels = make(map[string]bool, len(s.panels))
	for k, v := range s.panels {
		n.panels[k] = v
	}
	return n
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// View returns the active view id.
func (s State) View() string { return s.view }

// Mode returns the selected mode of a table, or "".
func (s State) Mode(table string) string { return s.modes[table] }

// Highlight returns the highlighted region of a diagram, or "".
func (s State) Highlight(diagram string) string { return s.highlight[diagram] }

// PanelOpen reports whether a panel is visible.
func (s State) PanelOpen(panel string) bool { return s.panels[panel] }

// Filter returns the active role filter.
func (s State) Filter() string { return s.filter }

// Narrow reports whether the last viewport was below the breakpoint.
func (s State) Narrow() bool { return s.narrow }

func (s State) WithView(id string) State {
	n := s.clone()
	n.view = id
	return n
}

func (s State) WithMode(table, mode string) State {
	n := s.clone()
	n.modes[table] = mode
	return n
}

// WithHighlight records the highlighted region; "" clears it.
func (s State) WithHighlight(diagram, region string) State {
	n := s.clone()
	if region == "" {
		delete(n.highlight, diagram)
	} else {
		n.highlight[diagram] = region
	}
	return n
}

func (s State) WithPanel(panel string, open bool) State {
	n := s.clone()
	if open {
		n.panels[panel] = true
	} else {
		delete(n.panels, panel)
	}
	return n
}

func (s State) WithFilter(team string) State {
	n := s.clone()
	n.filter = team
	return n
}

func (s State) WithNarrow(narrow bool) State {
	n := s.clone()
	n.narrow = narrow
	return n
}
