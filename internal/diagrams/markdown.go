package diagrams

import (
	"strings"

	"github.com/ziadkadry99/ddo-deck/internal/catalog"
)

// Markdown renders the tabular view of a diagram, or "" when the kind has none.
func Markdown(d *catalog.Diagram, teams []string) string {
	switch d.Kind {
	case catalog.KindBubbles:
		return RoleMatrixMarkdown(d, teams)
	case catalog.KindContextMap:
		return ContextTableMarkdown(d)
	}
	return ""
}

// RoleMatrixMarkdown returns a markdown table of roles by team type. A team
// list of nil derives the columns from the bubbles themselves.
func RoleMatrixMarkdown(d *catalog.Diagram, teams []string) string {
	if len(teams) == 0 {
		seen := make(map[string]bool)
		for _, e := range d.Elements {
			if e.Team != "" && !seen[e.Team] {
				seen[e.Team] = true
				teams = append(teams, e.Team)
			}
		}
	}

	var b strings.Builder
	b.WriteString("| Role |")
	for _, t := range teams {
		b.WriteString(" " + escapeCell(t) + " |")
	}
	b.WriteString("\n|---|")
	for range teams {
		b.WriteString("---|")
	}
	b.WriteString("\n")
	for _, e := range d.Elements {
		b.WriteString("| " + escapeCell(e.Label) + " |")
		for _, t := range teams {
			if e.Team == t {
				b.WriteString(" x |")
			} else {
				b.WriteString("  |")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ContextTableMarkdown returns a markdown table of bounded contexts with
// their layer, topology and owning team.
func ContextTableMarkdown(d *catalog.Diagram) string {
	var b strings.Builder
	b.WriteString("| Context | Layer | Topology | Team |\n|---|---|---|---|\n")
	for _, e := range d.Elements {
		det := d.Details[e.ID]
		name := det.Title
		if name == "" {
			name = e.Label
		}
		topo := det.Topology
		if det.TopologyCode != "" {
			topo += " (" + det.TopologyCode + ")"
		}
		b.WriteString("| " + escapeCell(name) + " | " + escapeCell(det.Layer) + " | " +
			escapeCell(strings.TrimSpace(topo)) + " | " + escapeCell(det.Team) + " |\n")
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
