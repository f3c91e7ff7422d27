package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed page that records every effective mutation as a Patch.
// It is not safe for concurrent use; a session owns exactly one.
type Document struct {
	root    *html.Node
	byID    map[string]*html.Node
	pending []Patch
}

// Parse reads a full HTML page.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	d := &Document{root: root}
	d.reindex()
	return d, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

func (d *Document) reindex() {
	d.byID = make(map[string]*html.Node)
	walk(d.root, func(n *html.Node) {
		if id := attr(n, "id"); id != "" {
			if _, dup := d.byID[id]; !dup {
				d.byID[id] = n
			}
		}
	})
}

// ByID returns the first element with the given id.
func (d *Document) ByID(id string) (*Element, bool) {
	n, ok := d.byID[id]
	if !ok {
		return nil, false
	}
	return &Element{doc: d, node: n}, true
}

// ByClass returns every element carrying class, in document order.
func (d *Document) ByClass(class string) []*Element {
	var out []*Element
	walk(d.root, func(n *html.Node) {
		if hasClass(n, class) {
			out = append(out, &Element{doc: d, node: n})
		}
	})
	return out
}

// Emit records a control patch that does not change the document.
func (d *Document) Emit(p Patch) {
	d.pending = append(d.pending, p)
}

// Flush returns and clears the patches recorded since the last call.
func (d *Document) Flush() []Patch {
	out := d.pending
	d.pending = nil
	return out
}

// Render writes the current document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document, for tests and snapshots.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func (d *Document) record(p Patch) {
	d.pending = append(d.pending, p)
}

// Element is a handle on one element node of a Document.
type Element struct {
	doc  *Document
	node *html.Node
}

// ID returns the element id, or "".
func (e *Element) ID() string { return attr(e.node, "id") }

// Is reports whether both handles address the same node.
func (e *Element) Is(o *Element) bool { return o != nil && e.node == o.node }

// Attr returns an attribute value.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets an attribute. Setting the current value records nothing.
func (e *Element) SetAttr(name, value string) {
	if cur, ok := e.Attr(name); ok && cur == value {
		return
	}
	setAttr(e.node, name, value)
	if name == "id" {
		e.doc.reindex()
	}
	e.doc.record(Patch{Op: OpAttr, ID: e.ID(), Name: name, Value: value})
}

// Classes returns the class list in attribute order.
func (e *Element) Classes() []string {
	return strings.Fields(attr(e.node, "class"))
}

// HasClass reports whether the element carries class.
func (e *Element) HasClass(class string) bool { return hasClass(e.node, class) }

// AddClass adds classes that are not present yet.
func (e *Element) AddClass(classes ...string) {
	list := e.Classes()
	changed := false
	for _, c := range classes {
		if !contains(list, c) {
			list = append(list, c)
			changed = true
		}
	}
	if changed {
		e.setClasses(list)
	}
}

// RemoveClass removes classes that are present.
func (e *Element) RemoveClass(classes ...string) {
	list := e.Classes()
	out := list[:0:0]
	for _, c := range list {
		if !contains(classes, c) {
			out = append(out, c)
		}
	}
	if len(out) != len(list) {
		e.setClasses(out)
	}
}

// ToggleClass adds class when on is true and removes it otherwise.
func (e *Element) ToggleClass(class string, on bool) {
	if on {
		e.AddClass(class)
	} else {
		e.RemoveClass(class)
	}
}

func (e *Element) setClasses(list []string) {
	v := strings.Join(list, " ")
	setAttr(e.node, "class", v)
	e.doc.record(Patch{Op: OpClass, ID: e.ID(), Value: v})
}

// Text returns the concatenated text of all descendants.
func (e *Element) Text() string {
	var b strings.Builder
	walkAll(e.node, func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
	})
	return b.String()
}

// SetText replaces the children with a single text node.
func (e *Element) SetText(s string) {
	var kids []*html.Node
	if s != "" {
		kids = []*html.Node{{Type: html.TextNode, Data: s}}
	}
	if renderNodes(kids) == e.innerHTML() {
		return
	}
	e.replaceChildren(kids)
	e.doc.record(Patch{Op: OpText, ID: e.ID(), Value: s})
}

// InnerHTML renders the children of the element.
func (e *Element) InnerHTML() string { return e.innerHTML() }

// SetHTML replaces the children with parsed markup.
func (e *Element) SetHTML(fragment string) error {
	kids, err := e.parseFragment(fragment)
	if err != nil {
		return err
	}
	markup := renderNodes(kids)
	if markup == e.innerHTML() {
		return nil
	}
	e.replaceChildren(kids)
	e.doc.reindex()
	e.doc.record(Patch{Op: OpHTML, ID: e.ID(), Value: markup})
	return nil
}

// AppendHTML appends parsed markup after the last child.
func (e *Element) AppendHTML(fragment string) error {
	kids, err := e.parseFragment(fragment)
	if err != nil {
		return err
	}
	if len(kids) == 0 {
		return nil
	}
	for _, k := range kids {
		e.node.AppendChild(k)
	}
	e.doc.reindex()
	e.doc.record(Patch{Op: OpAppend, ID: e.ID(), Value: renderNodes(kids)})
	return nil
}

// Remove detaches the element from the document.
func (e *Element) Remove() {
	if e.node.Parent == nil {
		return
	}
	id := e.ID()
	e.node.Parent.RemoveChild(e.node)
	e.doc.reindex()
	e.doc.record(Patch{Op: OpRemove, ID: id})
}

// Parent returns the enclosing element.
func (e *Element) Parent() (*Element, bool) {
	p := e.node.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil, false
	}
	return &Element{doc: e.doc, node: p}, true
}

// Ancestors returns the element followed by its enclosing elements, closest first.
func (e *Element) Ancestors() []*Element {
	var out []*Element
	for n := e.node; n != nil && n.Type == html.ElementNode; n = n.Parent {
		out = append(out, &Element{doc: e.doc, node: n})
	}
	return out
}

// Contains reports whether o is the element or one of its descendants.
func (e *Element) Contains(o *Element) bool {
	for n := o.node; n != nil; n = n.Parent {
		if n == e.node {
			return true
		}
	}
	return false
}

func (e *Element) innerHTML() string {
	var kids []*html.Node
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		kids = append(kids, c)
	}
	return renderNodes(kids)
}

func (e *Element) replaceChildren(kids []*html.Node) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	for _, k := range kids {
		e.node.AppendChild(k)
	}
}

func (e *Element) parseFragment(fragment string) ([]*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: e.node.Data, DataAtom: e.node.DataAtom, Namespace: e.node.Namespace}
	if ctx.DataAtom == 0 && ctx.Namespace == "" {
		ctx.DataAtom = atom.Div
		ctx.Data = "div"
	}
	kids, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing fragment for #%s: %w", e.ID(), err)
	}
	return kids, nil
}

func renderNodes(nodes []*html.Node) string {
	var buf bytes.Buffer
	for _, n := range nodes {
		// Render only fails on writer errors, which bytes.Buffer never returns.
		_ = html.Render(&buf, n)
	}
	return buf.String()
}

func walk(n *html.Node, fn func(*html.Node)) {
	walkAll(n, func(c *html.Node) {
		if c.Type == html.ElementNode {
			fn(c)
		}
	})
}

func walkAll(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkAll(c, fn)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	return contains(strings.Fields(attr(n, "class")), class)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
