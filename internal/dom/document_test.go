package dom

import (
	"strings"
	"testing"
)

const page = `<!DOCTYPE html><html><body>
<nav><button id="nav-a" class="view-btn active">A</button><button id="nav-b" class="view-btn">B</button></nav>
<section id="a-view" class="view-container active"><p id="title">Hello</p>
<svg viewBox="0 0 10 10"><g id="r1" class="region" tabindex="0"><rect id="r1-shape" stroke-width="2"></rect><text id="r1-label">R1</text></g></svg>
</section>
<section id="b-view" class="view-container"></section>
</body></html>`

func setupTest(t *testing.T) *Document {
	t.Helper()
	doc, err := ParseString(page)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func mustID(t *testing.T, doc *Document, id string) *Element {
	t.Helper()
	el, ok := doc.ByID(id)
	if !ok {
		t.Fatalf("element #%s not found", id)
	}
	return el
}

func TestByIDAndClass(t *testing.T) {
	doc := setupTest(t)
	if _, ok := doc.ByID("missing"); ok {
		t.Error("found a missing id")
	}
	btns := doc.ByClass("view-btn")
	if len(btns) != 2 || btns[0].ID() != "nav-a" || btns[1].ID() != "nav-b" {
		t.Fatalf("ByClass(view-btn) returned %d elements in the wrong order", len(btns))
	}
	shape := mustID(t, doc, "r1-shape")
	if v, _ := shape.Attr("stroke-width"); v != "2" {
		t.Errorf("stroke-width: got %q", v)
	}
}

func TestClassMutationsRecordPatches(t *testing.T) {
	doc := setupTest(t)
	btn := mustID(t, doc, "nav-b")

	btn.AddClass("active")
	btn.AddClass("active")
	patches := doc.Flush()
	if len(patches) != 1 {
		t.Fatalf("expected 1 patch, got %d: %+v", len(patches), patches)
	}
	if patches[0].Op != OpClass || patches[0].ID != "nav-b" || patches[0].Value != "view-btn active" {
		t.Errorf("unexpected patch %+v", patches[0])
	}

	btn.RemoveClass("not-there")
	if got := doc.Flush(); len(got) != 0 {
		t.Errorf("no-op RemoveClass recorded %+v", got)
	}

	btn.ToggleClass("active", false)
	if btn.HasClass("active") {
		t.Error("active still present")
	}
	if got := doc.Flush(); len(got) != 1 || got[0].Value != "view-btn" {
		t.Errorf("unexpected patches %+v", got)
	}
}

func TestNoOpMutationsKeepDocumentIdentical(t *testing.T) {
	doc := setupTest(t)
	before := doc.String()

	mustID(t, doc, "title").SetText("Hello")
	mustID(t, doc, "r1-shape").SetAttr("stroke-width", "2")
	mustID(t, doc, "nav-a").AddClass("active")
	if err := mustID(t, doc, "r1").SetHTML(mustID(t, doc, "r1").InnerHTML()); err != nil {
		t.Fatal(err)
	}

	if got := doc.Flush(); len(got) != 0 {
		t.Errorf("no-op mutations recorded %+v", got)
	}
	if doc.String() != before {
		t.Error("document changed after no-op mutations")
	}
}

func TestTextAndHTML(t *testing.T) {
	doc := setupTest(t)
	title := mustID(t, doc, "title")

	title.SetText("a < b")
	if title.Text() != "a < b" {
		t.Errorf("Text: got %q", title.Text())
	}
	if !strings.Contains(doc.String(), "a &lt; b") {
		t.Error("text was not escaped in the rendered document")
	}

	if err := title.SetHTML(`<strong id="inner">bold</strong> tail`); err != nil {
		t.Fatal(err)
	}
	if _, ok := doc.ByID("inner"); !ok {
		t.Error("inserted element is not indexed")
	}
	patches := doc.Flush()
	if len(patches) != 2 || patches[0].Op != OpText || patches[1].Op != OpHTML {
		t.Fatalf("unexpected patches %+v", patches)
	}
	if patches[1].Value != `<strong id="inner">bold</strong> tail` {
		t.Errorf("html patch value: got %q", patches[1].Value)
	}
}

func TestAppendAndRemove(t *testing.T) {
	doc := setupTest(t)
	view := mustID(t, doc, "b-view")

	if err := view.AppendHTML(`<div id="extra" class="x">x</div>`); err != nil {
		t.Fatal(err)
	}
	extra := mustID(t, doc, "extra")
	if p, ok := extra.Parent(); !ok || !p.Is(view) {
		t.Error("appended element has the wrong parent")
	}
	if !view.Contains(extra) {
		t.Error("view does not contain the appended element")
	}

	extra.Remove()
	if _, ok := doc.ByID("extra"); ok {
		t.Error("removed element still indexed")
	}
	got := doc.Flush()
	if len(got) != 2 || got[0].Op != OpAppend || got[0].ID != "b-view" || got[1].Op != OpRemove || got[1].ID != "extra" {
		t.Errorf("unexpected patches %+v", got)
	}
}

func TestAncestorsClosestFirst(t *testing.T) {
	doc := setupTest(t)
	label := mustID(t, doc, "r1-label")

	anc := label.Ancestors()
	if len(anc) < 3 || anc[0].ID() != "r1-label" || anc[1].ID() != "r1" {
		t.Fatalf("unexpected ancestor chain starting %v", ids(anc))
	}
	region := anc[1]
	if !region.HasClass("region") {
		t.Errorf("parent of r1-label has classes %v, want region", region.Classes())
	}
	if v, ok := region.Attr("tabindex"); !ok || v != "0" {
		t.Error("tabindex lost in parsing")
	}
}

func TestControlPatches(t *testing.T) {
	doc := setupTest(t)
	doc.Emit(ScrollTop())
	doc.Emit(Measure("reveal-on-scroll"))
	got := doc.Flush()
	if len(got) != 2 || got[0].Op != OpScroll || got[1].Name != "reveal-on-scroll" {
		t.Errorf("unexpected patches %+v", got)
	}
	if len(doc.Flush()) != 0 {
		t.Error("Flush did not clear pending patches")
	}
}

func ids(els []*Element) []string {
	out := make([]string, len(els))
	for i, e := range els {
		out[i] = e.ID()
	}
	return out
}
