package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid catalog")

var validKinds = map[Kind]bool{
	KindFlow:           true,
	KindOperatingModel: true,
	KindLayers:         true,
	KindContextMap:     true,
	KindBubbles:        true,
	KindTimeline:       true,
}

var validShapes = map[string]bool{
	"path":   true,
	"circle": true,
	"line":   true,
	"rect":   true,
	"text":   true,
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(embeddedCatalog)
}

// Load reads the catalog from path. An empty path selects the embedded table.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("%w: decoding yaml: %v", ErrInvalid, err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks referential integrity and builds the lookup indexes.
// Authoring mistakes are reported here, never at lookup time.
func (c *Catalog) Validate() error {
	c.diagramIndex = make(map[string]*Diagram, len(c.Diagrams))
	for _, d := range c.Diagrams {
		if d.ID == "" {
			return fmt.Errorf("%w: diagram without id", ErrInvalid)
		}
		if _, dup := c.diagramIndex[d.ID]; dup {
			return fmt.Errorf("%w: duplicate diagram %q", ErrInvalid, d.ID)
		}
		if !validKinds[d.Kind] {
			return fmt.Errorf("%w: diagram %q has unknown kind %q", ErrInvalid, d.ID, d.Kind)
		}
		if d.Width <= 0 || d.Height <= 0 {
			return fmt.Errorf("%w: diagram %q needs a positive width and height", ErrInvalid, d.ID)
		}
		if err := d.index(); err != nil {
			return err
		}
		c.diagramIndex[d.ID] = d
	}

	c.modeIndex = make(map[string]*ModeTable, len(c.Modes))
	for i := range c.Modes {
		t := &c.Modes[i]
		if err := c.validateModes(t); err != nil {
			return err
		}
		c.modeIndex[t.Key] = t
	}

	c.viewIndex = make(map[string]int, len(c.Views))
	for i, v := range c.Views {
		if v.ID == "" {
			return fmt.Errorf("%w: view without id", ErrInvalid)
		}
		if _, dup := c.viewIndex[v.ID]; dup {
			return fmt.Errorf("%w: duplicate view %q", ErrInvalid, v.ID)
		}
		for _, id := range v.Diagrams {
			if _, ok := c.diagramIndex[id]; !ok {
				return fmt.Errorf("%w: view %q references unknown diagram %q", ErrInvalid, v.ID, id)
			}
		}
		c.viewIndex[v.ID] = i
	}
	if len(c.Views) == 0 {
		return fmt.Errorf("%w: at least one view is required", ErrInvalid)
	}

	seen := make(map[string]bool, len(c.Stress))
	for _, s := range c.Stress {
		if s.Name == "" || seen[s.Name] {
			return fmt.Errorf("%w: stress context %q is empty or duplicated", ErrInvalid, s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

func (d *Diagram) index() error {
	d.elementIndex = make(map[string]int, len(d.Elements))
	for i, e := range d.Elements {
		if e.ID == "" {
			return fmt.Errorf("%w: diagram %q has an element without id", ErrInvalid, d.ID)
		}
		if _, dup := d.elementIndex[e.ID]; dup {
			return fmt.Errorf("%w: diagram %q has duplicate element %q", ErrInvalid, d.ID, e.ID)
		}
		d.elementIndex[e.ID] = i
	}
	for key := range d.Details {
		if _, ok := d.elementIndex[key]; !ok {
			return fmt.Errorf("%w: diagram %q has detail %q with no element", ErrInvalid, d.ID, key)
		}
	}
	overlays := make(map[string]bool, len(d.Overlays))
	for _, o := range d.Overlays {
		if o.ID == "" || overlays[o.ID] {
			return fmt.Errorf("%w: diagram %q has an empty or duplicate overlay %q", ErrInvalid, d.ID, o.ID)
		}
		for _, s := range o.Shapes {
			if !validShapes[s.Kind] {
				return fmt.Errorf("%w: overlay %q has unknown shape %q", ErrInvalid, o.ID, s.Kind)
			}
		}
		overlays[o.ID] = true
	}
	return nil
}

func (c *Catalog) validateModes(t *ModeTable) error {
	if t.Key == "" {
		return fmt.Errorf("%w: mode table without key", ErrInvalid)
	}
	if _, dup := c.modeIndex[t.Key]; dup {
		return fmt.Errorf("%w: duplicate mode table %q", ErrInvalid, t.Key)
	}
	if t.Button != "mode" && t.Button != "layer" {
		return fmt.Errorf("%w: mode table %q has button family %q, want mode or layer", ErrInvalid, t.Key, t.Button)
	}
	d, ok := c.diagramIndex[t.Diagram]
	if !ok {
		return fmt.Errorf("%w: mode table %q references unknown diagram %q", ErrInvalid, t.Key, t.Diagram)
	}
	managed := make(map[string]bool, len(t.Overlays))
	for _, id := range t.Overlays {
		if !d.HasOverlay(id) {
			return fmt.Errorf("%w: mode table %q manages overlay %q not declared in diagram %q", ErrInvalid, t.Key, id, d.ID)
		}
		managed[id] = true
	}
	for _, m := range t.Modes {
		for _, id := range m.Overlays {
			if !managed[id] {
				return fmt.Errorf("%w: mode %s/%s shows unmanaged overlay %q", ErrInvalid, t.Key, m.Name, id)
			}
		}
	}
	if t.Default != "" {
		if _, ok := t.Mode(t.Default); !ok {
			return fmt.Errorf("%w: mode table %q default %q is not a mode", ErrInvalid, t.Key, t.Default)
		}
	}
	return nil
}

// Diagram looks up a diagram by id.
func (c *Catalog) Diagram(id string) (*Diagram, bool) {
	d, ok := c.diagramIndex[id]
	return d, ok
}

// Detail looks up the detail record of a region.
func (c *Catalog) Detail(diagram, region string) (Detail, bool) {
	d, ok := c.diagramIndex[diagram]
	if !ok {
		return Detail{}, false
	}
	rec, ok := d.Details[region]
	return rec, ok
}

// ModeTable looks up a mode table by key.
func (c *Catalog) ModeTable(key string) (*ModeTable, bool) {
	t, ok := c.modeIndex[key]
	return t, ok
}

// View looks up a view by id.
func (c *Catalog) View(id string) (View, bool) {
	i, ok := c.viewIndex[id]
	if !ok {
		return View{}, false
	}
	return c.Views[i], true
}

// ModeTablesFor returns the mode tables attached to a diagram, in declaration order.
func (c *Catalog) ModeTablesFor(diagram string) []*ModeTable {
	var out []*ModeTable
	for i := range c.Modes {
		if c.Modes[i].Diagram == diagram {
			out = append(out, &c.Modes[i])
		}
	}
	return out
}

// Element looks up an element by id.
func (d *Diagram) Element(id string) (Element, bool) {
	i, ok := d.elementIndex[id]
	if !ok {
		return Element{}, false
	}
	return d.Elements[i], true
}

// HasOverlay reports whether the diagram declares the overlay.
func (d *Diagram) HasOverlay(id string) bool {
	for _, o := range d.Overlays {
		if o.ID == id {
			return true
		}
	}
	return false
}
