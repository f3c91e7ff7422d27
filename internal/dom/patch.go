package dom

// Op names a patch operation understood by the client script.
type Op string

const (
	OpClass   Op = "class"   // replace the class attribute
	OpText    Op = "text"    // replace children with a text node
	OpAttr    Op = "attr"    // set one attribute
	OpHTML    Op = "html"    // replace children with markup
	OpAppend  Op = "append"  // append markup to the element
	OpRemove  Op = "remove"  // detach the element
	OpScroll  Op = "scroll"  // scroll the viewport, Value is "top"
	OpMeasure Op = "measure" // ask the client to report viewport metrics
)

// Patch is one DOM mutation replayed by the client. ID names the target
// element; control patches (scroll, measure) have no target.
type Patch struct {
	Op    Op     `json:"op"`
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

// ScrollTop asks the client to scroll to the top of the page.
func ScrollTop() Patch { return Patch{Op: OpScroll, Value: "top"} }

// Measure asks the client to send a viewport report for the given class.
func Measure(class string) Patch { return Patch{Op: OpMeasure, Name: class} }
