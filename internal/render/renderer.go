// Package render turns catalog tables into SVG and HTML fragments. Every
// function here is pure: the same catalog always yields byte-identical markup.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	svg "github.com/ajstarks/svgo"

	"github.com/ziadkadry99/ddo-deck/internal/catalog"
)

// ErrUnknownDiagram is returned for diagram ids missing from the catalog.
var ErrUnknownDiagram = errors.New("unknown diagram")

type family struct {
	marker string // class carried by every region of the kind
	suffix string // appended to the diagram id to form the region prefix
}

var families = map[catalog.Kind]family{
	catalog.KindFlow:           {marker: "wow-track", suffix: "-track"},
	catalog.KindOperatingModel: {marker: "pom-track", suffix: "-track"},
	catalog.KindLayers:         {marker: "sta-band", suffix: "-band"},
	catalog.KindContextMap:     {marker: "ctx-clickable", suffix: ""},
	catalog.KindBubbles:        {marker: "pov-role-bubble", suffix: "-role"},
	catalog.KindTimeline:       {marker: "journey-stage", suffix: "-stage"},
}

// Marker returns the region class of a diagram kind.
func Marker(kind catalog.Kind) string { return families[kind].marker }

// RegionID returns the stable id of an element's interactive group.
func RegionID(d *catalog.Diagram, element string) string {
	return d.ID + families[d.Kind].suffix + "-" + element
}

// ShapeID returns the id of the emphasised shape inside a region.
func ShapeID(regionID string) string { return regionID + "-shape" }

// Renderer renders the diagrams of one catalog.
type Renderer struct {
	cat *catalog.Catalog
}

// New creates a Renderer over cat.
func New(cat *catalog.Catalog) *Renderer {
	return &Renderer{cat: cat}
}

// Catalog returns the tables the renderer draws from.
func (r *Renderer) Catalog() *catalog.Catalog { return r.cat }

// Render returns the inline SVG fragment of a diagram.
func (r *Renderer) Render(diagramID string) (template.HTML, error) {
	d, ok := r.cat.Diagram(diagramID)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDiagram, diagramID)
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" id="%s-svg" class="diagram" data-diagram="%s" role="img" aria-label="%s">`+"\n",
		d.Width, d.Height, d.ID, d.ID, esc(d.Title))
	canvas := svg.New(&buf)
	r.draw(canvas, d)
	canvas.End()
	return template.HTML(buf.String()), nil
}

// Standalone returns a diagram as a complete SVG document.
func (r *Renderer) Standalone(diagramID string) ([]byte, error) {
	d, ok := r.cat.Diagram(diagramID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDiagram, diagramID)
	}
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(d.Width, d.Height,
		fmt.Sprintf(`viewBox="0 0 %d %d"`, d.Width, d.Height),
		`class="diagram"`,
		fmt.Sprintf(`data-diagram="%s"`, d.ID))
	canvas.Title(d.Title)
	canvas.Rect(0, 0, d.Width, d.Height, `fill="#0f172a"`)
	r.draw(canvas, d)
	canvas.End()
	return buf.Bytes(), nil
}

func (r *Renderer) draw(canvas *svg.SVG, d *catalog.Diagram) {
	switch d.Kind {
	case catalog.KindFlow:
		drawFlow(canvas, d)
	case catalog.KindOperatingModel:
		drawOperatingModel(canvas, d)
	case catalog.KindLayers:
		drawLayers(canvas, d)
	case catalog.KindContextMap:
		drawContextMap(canvas, d)
	case catalog.KindBubbles:
		drawBubbles(canvas, d)
	case catalog.KindTimeline:
		drawTimeline(canvas, d)
	}
	drawOverlays(canvas, d)
}
