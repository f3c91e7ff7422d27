package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/ziadkadry99/ddo-deck/internal/catalog"
)

var fragments = template.Must(template.New("fragments").Parse(`
{{define "layer"}}<p>{{.Desc}}</p>{{with .Sections.contexts}}
<p class="sta-meta"><strong>Contexts:</strong> {{.}}</p>{{end}}{{with .Sections.team_type}}
<p class="sta-meta"><strong>Team type:</strong> {{.}}</p>{{end}}{{end}}

{{define "track"}}<div class="activity-group"><h5>Practices</h5><ul>{{range .Practices}}<li>{{.}}</li>{{end}}</ul></div>
<div class="activity-group"><h5>Techniques</h5><ul>{{range .Techniques}}<li>{{.}}</li>{{end}}</ul></div>
<div class="activity-group"><h5>Tools</h5><div class="tool-chips">{{range .Tools}}<span class="tool-chip">{{.}}</span>{{end}}</div></div>{{end}}

{{define "icon"}}<span class="icon-badge badge-{{.Color}} material-symbols-outlined">{{.Icon}}</span>{{end}}
`))

func execFragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s fragment: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// LayerDescription renders an architecture layer's description with its
// contexts and team type.
func LayerDescription(d catalog.Detail) (template.HTML, error) {
	return execFragment("layer", d)
}

// TrackActivities renders a role's practices, techniques and tool chips for
// one track.
func TrackActivities(acts catalog.Activities) (template.HTML, error) {
	return execFragment("track", acts)
}

// IconBadge renders a detail icon tinted by its color token.
func IconBadge(d catalog.Detail) (template.HTML, error) {
	color := d.Color
	if _, ok := palette[color]; !ok {
		color = "slate"
	}
	return execFragment("icon", struct{ Icon, Color string }{d.Icon, color})
}
