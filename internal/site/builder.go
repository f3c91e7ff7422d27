package site

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ziadkadry99/ddo-deck/internal/catalog"
	"github.com/ziadkadry99/ddo-deck/internal/render"
)

// Options controls how a page is built.
type Options struct {
	// Title overrides the catalog title.
	Title string
	// Live marks the page as served by a session-backed server. Static pages
	// reveal everything up front and open no socket.
	Live bool
	// Stress returns the contexts shown in the stress grid. Nil uses the
	// catalog seed.
	Stress func() []catalog.StressContext
	// BasePath prefixes the stylesheet and script references.
	BasePath string
}

// Builder renders the presentation page from a catalog.
type Builder struct {
	cat  *catalog.Catalog
	r    *render.Renderer
	md   goldmark.Markdown
	tmpl *template.Template
	opts Options
}

// NewBuilder parses the page template and prepares the markdown converter
// used for view notes.
func NewBuilder(cat *catalog.Catalog, opts Options) (*Builder, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &Builder{cat: cat, r: render.New(cat), md: md, tmpl: tmpl, opts: opts}, nil
}

// Renderer returns the diagram renderer the builder draws with.
func (b *Builder) Renderer() *render.Renderer { return b.r }

// pageData holds the data passed to the page template.
type pageData struct {
	Title      string
	Subtitle   string
	BasePath   string
	Live       bool
	Teams      []string
	Views      []viewData
	StressGrid template.HTML
}

type viewData struct {
	ID       string
	Label    string
	Icon     string
	Heading  string
	Notes    template.HTML
	Active   bool
	Stress   bool
	Diagrams []diagramData
}

type diagramData struct {
	ID        string
	SVG       template.HTML
	Tables    []tableData
	SlotTitle string
	SlotDesc  string
}

type tableData struct {
	Key     string
	Buttons []buttonData
}

type buttonData struct {
	ID     string
	Class  string
	Table  string
	Name   string
	Label  string
	Active bool
}

// Page renders the full HTML document.
func (b *Builder) Page() ([]byte, error) {
	data := pageData{
		Title:    b.cat.Title,
		Subtitle: b.cat.Subtitle,
		BasePath: b.opts.BasePath,
		Live:     b.opts.Live,
		Teams:    b.cat.Teams,
	}
	if b.opts.Title != "" {
		data.Title = b.opts.Title
	}

	stress := b.cat.Stress
	if b.opts.Stress != nil {
		stress = b.opts.Stress()
	}
	grid, err := render.StressGrid(stress)
	if err != nil {
		return nil, fmt.Errorf("rendering stress grid: %w", err)
	}
	data.StressGrid = grid

	for i, v := range b.cat.Views {
		vd := viewData{
			ID:      v.ID,
			Label:   v.Label,
			Icon:    v.Icon,
			Heading: v.Heading,
			Active:  i == 0,
			Stress:  v.Stress,
		}
		if vd.Heading == "" {
			vd.Heading = v.Label
		}
		if v.Notes != "" {
			notes, err := b.Notes(v.Notes)
			if err != nil {
				return nil, fmt.Errorf("converting notes of view %s: %w", v.ID, err)
			}
			vd.Notes = notes
		}
		for _, id := range v.Diagrams {
			dd, err := b.diagram(id)
			if err != nil {
				return nil, fmt.Errorf("view %s: %w", v.ID, err)
			}
			vd.Diagrams = append(vd.Diagrams, dd)
		}
		data.Views = append(data.Views, vd)
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return buf.Bytes(), nil
}

func (b *Builder) diagram(id string) (diagramData, error) {
	svg, err := b.r.Render(id)
	if err != nil {
		return diagramData{}, err
	}
	dd := diagramData{ID: id, SVG: svg}
	for _, t := range b.cat.ModeTablesFor(id) {
		td := tableData{Key: t.Key}
		for _, m := range t.Modes {
			label := m.Label
			if label == "" {
				label = m.Name
			}
			td.Buttons = append(td.Buttons, buttonData{
				ID:     t.Key + "-" + t.Button + "-" + m.Name,
				Class:  t.ButtonClass(),
				Table:  t.Key,
				Name:   m.Name,
				Label:  label,
				Active: m.Name == t.Default,
			})
		}
		dd.Tables = append(dd.Tables, td)

		// The persistent overlay panel opens on the default mode's text.
		if t.TitleSlot == id+"-overlay-title" {
			if m, ok := t.Mode(t.Default); ok {
				dd.SlotTitle = m.Title
				if dd.SlotTitle == "" {
					dd.SlotTitle = m.Label
				}
				dd.SlotDesc = m.Desc
			}
		}
	}
	return dd, nil
}

// Notes converts a markdown note to HTML.
func (b *Builder) Notes(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := b.md.Convert([]byte(strings.TrimSpace(src)), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
