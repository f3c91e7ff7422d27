package render

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"sort"
	"strings"

	"github.com/ziadkadry99/ddo-deck/internal/catalog"
)

// AccordionID is the container id of the narrow-viewport journey layout.
const AccordionID = "journey-accordion"

var stressModes = map[string]bool{
	"adaptive":   true,
	"reinforced": true,
	"overloaded": true,
	"fragile":    true,
}

// StressCard is the view model of one card in the stress grid.
type StressCard struct {
	Slug    string
	Name    string
	Layer   string
	Owner   string
	Mode    string
	Chip    string
	Percent int
	Drivers []string
}

// NewStressCard derives the display values of a context.
func NewStressCard(c catalog.StressContext) StressCard {
	chip := c.Mode
	if !stressModes[chip] {
		chip = "reinforced"
	}
	return StressCard{
		Slug:    slug(c.Name),
		Name:    c.Name,
		Layer:   c.Layer,
		Owner:   c.Owner,
		Mode:    c.Mode,
		Chip:    chip,
		Percent: int(math.Round(c.Score * 100)),
		Drivers: c.Drivers,
	}
}

var stressGridTmpl = template.Must(template.New("stress").Parse(`{{range .}}<article class="stress-card" id="stress-{{.Slug}}" data-context="{{.Name}}">
<header class="stress-head"><span class="stress-name">{{.Name}}</span><span class="stress-chip chip-{{.Chip}}">{{.Mode}}</span></header>
<div class="stress-meta">{{.Layer}} · {{.Owner}}</div>
<div class="stress-bar"><div class="stress-fill chip-{{.Chip}}" style="width: {{.Percent}}%"></div></div>
<div class="stress-score">{{.Percent}}%</div>
<ul class="stress-drivers">{{range .Drivers}}<li>{{.}}</li>{{end}}</ul>
</article>
{{end}}`))

// StressGrid renders the cards of the context stress summary.
func StressGrid(contexts []catalog.StressContext) (template.HTML, error) {
	cards := make([]StressCard, len(contexts))
	for i, c := range contexts {
		cards[i] = NewStressCard(c)
	}
	var buf bytes.Buffer
	if err := stressGridTmpl.Execute(&buf, cards); err != nil {
		return "", fmt.Errorf("rendering stress grid: %w", err)
	}
	return template.HTML(buf.String()), nil
}

type accordionItem struct {
	ID       string
	Label    string
	Sublabel string
	Detail   catalog.Detail
	Sections []section
}

type section struct {
	Name string
	Text string
}

var accordionTmpl = template.Must(template.New("accordion").Parse(`<div id="` + AccordionID + `" class="journey-accordion" data-diagram="{{.Diagram}}">
{{range .Items}}<details class="journey-accordion-item" id="{{$.Diagram}}-accordion-{{.ID}}" data-region="{{.ID}}">
<summary><span class="accordion-label">{{.Label}}</span> <span class="accordion-sub">{{.Sublabel}}</span></summary>
{{with .Detail.Subtitle}}<p class="accordion-subtitle">{{.}}</p>{{end}}{{with .Detail.Desc}}<p>{{.}}</p>{{end}}
{{if .Sections}}<dl>{{range .Sections}}<dt>{{.Name}}</dt><dd>{{.Text}}</dd>{{end}}</dl>{{end}}
</details>
{{end}}</div>`))

// Accordion renders a timeline diagram as a stack of expandable stages.
func (r *Renderer) Accordion(diagramID string) (template.HTML, error) {
	d, ok := r.cat.Diagram(diagramID)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDiagram, diagramID)
	}
	items := make([]accordionItem, 0, len(d.Elements))
	for _, e := range d.Elements {
		det := d.Details[e.ID]
		items = append(items, accordionItem{
			ID:       e.ID,
			Label:    e.Label,
			Sublabel: e.Sublabel,
			Detail:   det,
			Sections: sortedSections(det.Sections),
		})
	}
	var buf bytes.Buffer
	data := struct {
		Diagram string
		Items   []accordionItem
	}{d.ID, items}
	if err := accordionTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering accordion: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func sortedSections(m map[string]string) []section {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]section, 0, len(keys))
	for _, k := range keys {
		out = append(out, section{Name: title(k), Text: m[k]})
	}
	return out
}

func title(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}
