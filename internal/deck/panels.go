package deck

import (
	"html/template"
	"strings"
	"time"

	"github.com/ziadkadry99/ddo-deck/internal/catalog"
	"github.com/ziadkadry99/ddo-deck/internal/render"
)

// Slot binds one display element of a panel to a field of a DetailRecord.
// Exactly one of Text and HTML is set.
type Slot struct {
	ID   string
	Text func(catalog.Detail) string
	HTML func(catalog.Detail) (template.HTML, error)
}

// PanelSpec describes how a diagram surfaces the detail of a selected region.
type PanelSpec struct {
	Diagram string
	Panel   string
	Hidden  []string
	Visible []string
	Slots   []Slot

	// HighlightAttr is set on the region shape: Emphasis while selected,
	// Normal otherwise.
	HighlightAttr string
	Normal        string
	Emphasis      string

	// AutoHide hides the panel after a delay. Zero means permanent.
	AutoHide  time.Duration
	Closeable bool
}

var (
	fadeHidden   = []string{"opacity-0"}
	fadeVisible  = []string{"opacity-100"}
	slideHidden  = []string{"opacity-0", "translate-y-4"}
	slideVisible = []string{"opacity-100", "translate-y-0"}
)

func text(id string, fn func(catalog.Detail) string) Slot { return Slot{ID: id, Text: fn} }

func markup(id string, fn func(catalog.Detail) (template.HTML, error)) Slot {
	return Slot{ID: id, HTML: fn}
}

func title(d catalog.Detail) string    { return d.Title }
func desc(d catalog.Detail) string     { return d.Desc }
func subtitle(d catalog.Detail) string { return d.Subtitle }
func team(d catalog.Detail) string     { return d.Team }

func section(name string) func(catalog.Detail) string {
	return func(d catalog.Detail) string { return d.Section(name) }
}

func track(name string) func(catalog.Detail) (template.HTML, error) {
	return func(d catalog.Detail) (template.HTML, error) { return render.TrackActivities(d.Tracks[name]) }
}

func joinDot(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " · ")
}

// DefaultPanels returns the panel of every diagram in the presentation.
// infoHide is the delay of the transient operating-model panel.
func DefaultPanels(infoHide time.Duration) map[string]PanelSpec {
	specs := []PanelSpec{
		{
			Diagram: "wow",
			Panel:   "wow-overlay",
			Hidden:  fadeHidden,
			Visible: fadeVisible,
			Slots: []Slot{
				text("wow-overlay-title", title),
				text("wow-overlay-desc", desc),
			},
			HighlightAttr: "stroke-width", Normal: "2", Emphasis: "4",
		},
		{
			Diagram: "pom",
			Panel:   "pom-info-overlay",
			Hidden:  fadeHidden,
			Visible: fadeVisible,
			Slots: []Slot{
				text("pom-info-title", title),
				text("pom-info-desc", desc),
			},
			HighlightAttr: "stroke-width", Normal: "2", Emphasis: "4",
			AutoHide: infoHide,
		},
		{
			Diagram: "sta",
			Panel:   "sta-overlay",
			Hidden:  fadeHidden,
			Visible: fadeVisible,
			Slots: []Slot{
				text("sta-overlay-title", title),
				markup("sta-overlay-desc", render.LayerDescription),
			},
			HighlightAttr: "stroke-width", Normal: "2", Emphasis: "4",
		},
		{
			Diagram: "ctx",
			Panel:   "sta-context-detail",
			Hidden:  slideHidden,
			Visible: slideVisible,
			Slots: []Slot{
				text("ctx-detail-title", title),
				text("ctx-detail-subtitle", func(d catalog.Detail) string { return joinDot(d.Layer, d.Topology) }),
				markup("ctx-detail-icon", render.IconBadge),
				text("ctx-detail-team", team),
				text("ctx-detail-topology", func(d catalog.Detail) string {
					if d.TopologyCode == "" {
						return "Team Topology: " + d.Topology
					}
					return "Team Topology: " + d.Topology + " (" + d.TopologyCode + ")"
				}),
				text("ctx-detail-discovery", section("discovery")),
				text("ctx-detail-delivery", section("delivery")),
				text("ctx-detail-operations", section("operations")),
				text("ctx-detail-loops", section("loops")),
			},
			HighlightAttr: "stroke-width", Normal: "2", Emphasis: "4",
			Closeable: true,
		},
		{
			Diagram: "pov",
			Panel:   "pov-role-detail",
			Hidden:  slideHidden,
			Visible: slideVisible,
			Slots: []Slot{
				text("pov-detail-title", title),
				text("pov-detail-subtitle", func(d catalog.Detail) string {
					return joinDot(d.Topology, "Activities across Discovery, Delivery & Operations")
				}),
				markup("pov-detail-icon", render.IconBadge),
				markup("pov-detail-discovery", track("discovery")),
				markup("pov-detail-delivery", track("delivery")),
				markup("pov-detail-operations", track("operations")),
			},
			HighlightAttr: "stroke-width", Normal: "2.5", Emphasis: "4",
			Closeable: true,
		},
		{
			Diagram: "journey",
			Panel:   "journey-detail",
			Hidden:  slideHidden,
			Visible: slideVisible,
			Slots: []Slot{
				text("journey-detail-title", title),
				text("journey-detail-subtitle", subtitle),
				text("journey-detail-desc", desc),
				text("journey-detail-contexts", section("contexts")),
				text("journey-detail-signals", section("signals")),
			},
			HighlightAttr: "r", Normal: "24", Emphasis: "30",
			Closeable: true,
		},
	}
	out := make(map[string]PanelSpec, len(specs))
	for _, s := range specs {
		out[s.Diagram] = s
	}
	return out
}
