package catalog

// Kind selects the renderer used for a diagram.
type Kind string

const (
	KindFlow           Kind = "flow"
	KindOperatingModel Kind = "operating-model"
	KindLayers         Kind = "layers"
	KindContextMap     Kind = "context-map"
	KindBubbles        Kind = "bubbles"
	KindTimeline       Kind = "timeline"
)

// Catalog is the full set of static tables behind the presentation. It is
// built once at startup and never mutated afterwards.
type Catalog struct {
	Title    string          `yaml:"title"`
	Subtitle string          `yaml:"subtitle"`
	Views    []View          `yaml:"views"`
	Diagrams []*Diagram      `yaml:"diagrams"`
	Modes    []ModeTable     `yaml:"modes"`
	Stress   []StressContext `yaml:"stress"`
	Teams    []string        `yaml:"teams"`

	diagramIndex map[string]*Diagram
	modeIndex    map[string]*ModeTable
	viewIndex    map[string]int
}

// View is one top-level panel of the presentation.
type View struct {
	ID       string   `yaml:"id"`
	Label    string   `yaml:"label"`
	Icon     string   `yaml:"icon"`
	Heading  string   `yaml:"heading"`
	Notes    string   `yaml:"notes"`
	Diagrams []string `yaml:"diagrams"`
	Stress   bool     `yaml:"stress"`
}

// Diagram is one vector visualization and the detail records of its regions.
type Diagram struct {
	ID       string            `yaml:"id"`
	Kind     Kind              `yaml:"kind"`
	Title    string            `yaml:"title"`
	Width    int               `yaml:"width"`
	Height   int               `yaml:"height"`
	Elements []Element         `yaml:"elements"`
	Overlays []Overlay         `yaml:"overlays"`
	Details  map[string]Detail `yaml:"details"`

	elementIndex map[string]int
}

// Element is one node or region of a diagram.
type Element struct {
	ID       string `yaml:"id"`
	Label    string `yaml:"label"`
	Sublabel string `yaml:"sublabel"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	W        int    `yaml:"w"`
	H        int    `yaml:"h"`
	R        int    `yaml:"r"`
	Color    string `yaml:"color"`
	Tag      string `yaml:"tag"`
	Team     string `yaml:"team"`
}

// Overlay is an independently toggleable group of shapes. Overlays always
// start hidden.
type Overlay struct {
	ID     string  `yaml:"id"`
	Label  string  `yaml:"label"`
	Shapes []Shape `yaml:"shapes"`
}

// Shape is a drawing primitive inside an overlay.
type Shape struct {
	Kind   string `yaml:"kind"` // path, circle, line, rect, text
	D      string `yaml:"d"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	X2     int    `yaml:"x2"`
	Y2     int    `yaml:"y2"`
	W      int    `yaml:"w"`
	H      int    `yaml:"h"`
	R      int    `yaml:"r"`
	Color  string `yaml:"color"`
	Text   string `yaml:"text"`
	Dashed bool   `yaml:"dashed"`
}

// Detail is the descriptive content surfaced when a region is selected.
type Detail struct {
	Title        string                `yaml:"title"`
	Subtitle     string                `yaml:"subtitle"`
	Desc         string                `yaml:"desc"`
	Icon         string                `yaml:"icon"`
	Color        string                `yaml:"color"`
	Team         string                `yaml:"team"`
	Topology     string                `yaml:"topology"`
	TopologyCode string                `yaml:"topology_code"`
	Layer        string                `yaml:"layer"`
	Sections     map[string]string     `yaml:"sections"`
	Tracks       map[string]Activities `yaml:"tracks"`
}

// Section returns the named text section, or "".
func (d Detail) Section(name string) string {
	return d.Sections[name]
}

// Activities lists what a role does within one track.
type Activities struct {
	Practices  []string `yaml:"practices"`
	Techniques []string `yaml:"techniques"`
	Tools      []string `yaml:"tools"`
}

// ModeTable is the fixed set of mutually exclusive modes of one diagram.
type ModeTable struct {
	Key        string   `yaml:"key"`
	Diagram    string   `yaml:"diagram"`
	Button     string   `yaml:"button"` // "mode" or "layer"
	Default    string   `yaml:"default"`
	Overlays   []string `yaml:"overlays"`
	TitleSlot  string   `yaml:"title_slot"`
	DescSlot   string   `yaml:"desc_slot"`
	FillTarget string   `yaml:"fill_target"`
	Panel      string   `yaml:"panel"`
	Modes      []Mode   `yaml:"modes"`
}

// Mode is one selectable entry of a ModeTable.
type Mode struct {
	Name     string   `yaml:"name"`
	Label    string   `yaml:"label"`
	Title    string   `yaml:"title"`
	Desc     string   `yaml:"desc"`
	Fill     string   `yaml:"fill"`
	Overlays []string `yaml:"overlays"`
}

// ButtonClass returns the class carried by the buttons of the table.
func (t *ModeTable) ButtonClass() string {
	return t.Key + "-" + t.Button + "-btn"
}

// Mode looks up a mode by name.
func (t *ModeTable) Mode(name string) (Mode, bool) {
	for _, m := range t.Modes {
		if m.Name == name {
			return m, true
		}
	}
	return Mode{}, false
}

// StressContext is one entry of the context stress summary.
type StressContext struct {
	Name    string   `yaml:"name" json:"name"`
	Layer   string   `yaml:"layer" json:"layer"`
	Owner   string   `yaml:"owner" json:"owner"`
	Score   float64  `yaml:"score" json:"score"`
	Mode    string   `yaml:"mode" json:"mode"`
	Drivers []string `yaml:"drivers" json:"drivers"`
}
