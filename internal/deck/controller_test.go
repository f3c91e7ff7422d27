package deck

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ziadkadry99/ddo-deck/internal/catalog"
	"github.com/ziadkadry99/ddo-deck/internal/dom"
	"github.com/ziadkadry99/ddo-deck/internal/render"
	"github.com/ziadkadry99/ddo-deck/internal/site"
)

type fixture struct {
	c      *Controller
	doc    *dom.Document
	cat    *catalog.Catalog
	sched  *FakeScheduler
	stress *StressModel
}

func setupTest(t *testing.T) *fixture {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	b, err := site.NewBuilder(cat, site.Options{Live: true})
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}
	page, err := b.Page()
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	doc, err := dom.Parse(bytes.NewReader(page))
	if err != nil {
		t.Fatalf("parsing page: %v", err)
	}
	f := &fixture{doc: doc, cat: cat, sched: NewFakeScheduler(), stress: NewStressModel(cat.Stress)}
	f.c = NewController(doc, b.Renderer(), f.stress, Options{Scheduler: f.sched})
	return f
}

func (f *fixture) el(t *testing.T, id string) *dom.Element {
	t.Helper()
	el, ok := f.doc.ByID(id)
	if !ok {
		t.Fatalf("element %s missing", id)
	}
	return el
}

func (f *fixture) visible(t *testing.T, id string) bool {
	t.Helper()
	el := f.el(t, id)
	return el.HasClass("opacity-100") && !el.HasClass("opacity-0")
}

func (f *fixture) click(target string) bool {
	return f.c.Dispatch(Gesture{Type: GestureClick, Target: target})
}

func (f *fixture) shapeAttr(t *testing.T, diagram, region, attr string) string {
	t.Helper()
	d, _ := f.cat.Diagram(diagram)
	v, _ := f.el(t, render.ShapeID(render.RegionID(d, region))).Attr(attr)
	return v
}

func TestInitialState(t *testing.T) {
	f := setupTest(t)
	st := f.c.State()
	if st.View() != "wow" {
		t.Errorf("initial view = %q, want wow", st.View())
	}
	if st.Mode("wow") != "default" {
		t.Errorf("initial wow mode = %q, want default", st.Mode("wow"))
	}
	if st.Filter() != FilterAll {
		t.Errorf("initial filter = %q", st.Filter())
	}
	for _, d := range f.cat.Diagrams {
		for _, o := range d.Overlays {
			if f.visible(t, o.ID) {
				t.Errorf("overlay %s visible on load", o.ID)
			}
		}
	}
}

func TestShowContextDetail(t *testing.T) {
	f := setupTest(t)
	if !f.click("ctx-manufacturing") {
		t.Fatal("click on context region not handled")
	}
	if !f.visible(t, "sta-context-detail") {
		t.Fatal("context detail panel not visible")
	}
	if got := f.el(t, "ctx-detail-title").Text(); got != "ManufacturingOperationsContext" {
		t.Errorf("title = %q", got)
	}
	if got := f.el(t, "ctx-detail-topology").Text(); !strings.Contains(got, "Complicated Subsystem") || !strings.Contains(got, "(CS)") {
		t.Errorf("topology = %q", got)
	}
	rec, _ := f.cat.Detail("ctx", "manufacturing")
	for _, track := range []string{"discovery", "delivery", "operations"} {
		if got := f.el(t, "ctx-detail-"+track).Text(); got != rec.Section(track) {
			t.Errorf("%s = %q, want %q", track, got, rec.Section(track))
		}
	}
	if got := f.shapeAttr(t, "ctx", "manufacturing", "stroke-width"); got != "4" {
		t.Errorf("selected stroke-width = %q, want 4", got)
	}
	if f.c.State().Highlight("ctx") != "manufacturing" {
		t.Errorf("highlight = %q", f.c.State().Highlight("ctx"))
	}

	// Selecting another context moves the highlight and replaces every field.
	d, _ := f.cat.Diagram("ctx")
	other := d.Elements[0].ID
	if other == "manufacturing" {
		other = d.Elements[1].ID
	}
	if !f.click(render.RegionID(d, other)) {
		t.Fatal("second click not handled")
	}
	if got := f.shapeAttr(t, "ctx", "manufacturing", "stroke-width"); got != "2" {
		t.Errorf("previous stroke-width = %q, want 2", got)
	}
	next, _ := f.cat.Detail("ctx", other)
	if got := f.el(t, "ctx-detail-title").Text(); got != next.Title {
		t.Errorf("title after switch = %q, want %q", got, next.Title)
	}
	if got := f.el(t, "ctx-detail-team").Text(); got != next.Team {
		t.Errorf("team after switch = %q, want %q", got, next.Team)
	}
}

func TestEverySlotPopulated(t *testing.T) {
	f := setupTest(t)
	for diagram, spec := range f.c.panels {
		d, ok := f.cat.Diagram(diagram)
		if !ok {
			t.Fatalf("panel for unknown diagram %s", diagram)
		}
		for _, e := range d.Elements {
			rec, ok := d.Details[e.ID]
			if !ok {
				continue
			}
			f.c.ShowDetail(diagram, e.ID)
			if !f.visible(t, spec.Panel) {
				t.Errorf("%s/%s: panel %s not visible", diagram, e.ID, spec.Panel)
			}
			for _, slot := range spec.Slots {
				el := f.el(t, slot.ID)
				if slot.Text != nil {
					if got, want := el.Text(), slot.Text(rec); got != want {
						t.Errorf("%s/%s: slot %s = %q, want %q", diagram, e.ID, slot.ID, got, want)
					}
					continue
				}
				frag, err := slot.HTML(rec)
				if err != nil {
					t.Fatalf("%s/%s: slot %s: %v", diagram, e.ID, slot.ID, err)
				}
				if strings.TrimSpace(string(frag)) != "" && strings.TrimSpace(el.InnerHTML()) == "" {
					t.Errorf("%s/%s: slot %s left empty", diagram, e.ID, slot.ID)
				}
			}
			emphasized := 0
			for _, other := range d.Elements {
				if f.shapeAttr(t, diagram, other.ID, spec.HighlightAttr) == spec.Emphasis {
					emphasized++
				}
			}
			if emphasized != 1 {
				t.Errorf("%s/%s: %d regions highlighted, want 1", diagram, e.ID, emphasized)
			}
		}
	}
}

func TestShowDetailUnknownRegion(t *testing.T) {
	f := setupTest(t)
	f.click("ctx-manufacturing")
	f.doc.Flush()
	before := f.doc.String()
	state := f.c.State()

	f.c.ShowDetail("ctx", "nowhere")
	f.c.ShowDetail("nodiagram", "manufacturing")
	if f.click("no-such-element") {
		t.Error("click on missing target reported as handled")
	}

	if f.doc.String() != before {
		t.Error("document changed after showing an unknown region")
	}
	if p := f.doc.Flush(); len(p) != 0 {
		t.Errorf("unexpected patches: %v", p)
	}
	if f.c.State().Highlight("ctx") != state.Highlight("ctx") {
		t.Error("highlight changed")
	}
}

func TestHideDetail(t *testing.T) {
	f := setupTest(t)
	f.click("pov-role-pm")
	if !f.visible(t, "pov-role-detail") {
		t.Fatal("role panel not shown")
	}
	if !f.click("pov-detail-close") {
		t.Fatal("close button not handled")
	}
	if f.visible(t, "pov-role-detail") {
		t.Error("role panel still visible after close")
	}
	if got := f.shapeAttr(t, "pov", "pm", "stroke-width"); got != "2.5" {
		t.Errorf("stroke-width after close = %q, want 2.5", got)
	}
	if f.c.State().Highlight("pov") != "" || f.c.State().PanelOpen("pov-role-detail") {
		t.Error("state not cleared on close")
	}
}

func TestJourneyHighlightRadius(t *testing.T) {
	f := setupTest(t)
	f.click("journey-stage-checkout")
	if got := f.shapeAttr(t, "journey", "checkout", "r"); got != "30" {
		t.Errorf("selected radius = %q, want 30", got)
	}
	f.click("journey-stage-delivery")
	if got := f.shapeAttr(t, "journey", "checkout", "r"); got != "24" {
		t.Errorf("previous radius = %q, want 24", got)
	}
}

func countActive(f *fixture) (views, buttons int) {
	for _, el := range f.doc.ByClass("view-container") {
		if el.HasClass("active") {
			views++
		}
	}
	for _, el := range f.doc.ByClass("view-btn") {
		if el.HasClass("active") {
			buttons++
		}
	}
	return views, buttons
}

func TestSwitchView(t *testing.T) {
	f := setupTest(t)
	f.doc.Flush()

	f.c.SwitchView("context")
	if f.c.State().View() != "context" {
		t.Fatalf("view = %q", f.c.State().View())
	}
	if !f.el(t, "context-view").HasClass("active") || !f.el(t, "nav-context").HasClass("active") {
		t.Error("context view or its button not active")
	}
	if f.el(t, "wow-view").HasClass("active") || f.el(t, "nav-wow").HasClass("active") {
		t.Error("previous view still active")
	}

	patches := f.doc.Flush()
	scrolled := false
	for _, p := range patches {
		if p.Op == dom.OpScroll {
			scrolled = true
		}
	}
	if !scrolled {
		t.Error("switching views did not scroll to top")
	}
	if f.sched.Pending() != 1 {
		t.Errorf("pending timers = %d, want the reveal re-check", f.sched.Pending())
	}
	f.sched.Advance(DefaultRevealDelay)
	patches = f.doc.Flush()
	if len(patches) != 1 || patches[0].Op != dom.OpMeasure || patches[0].Name != RevealClass {
		t.Errorf("reveal re-check patches = %v", patches)
	}
}

func TestSwitchViewIdempotent(t *testing.T) {
	f := setupTest(t)
	f.c.SwitchView("pov")
	once := f.doc.String()
	f.doc.Flush()
	pending := f.sched.Pending()

	f.c.SwitchView("pov")
	if f.doc.String() != once {
		t.Error("second SwitchView changed the document")
	}
	if p := f.doc.Flush(); len(p) != 0 {
		t.Errorf("second SwitchView emitted patches: %v", p)
	}
	if f.sched.Pending() != pending {
		t.Error("second SwitchView scheduled another reveal")
	}
}

func TestExactlyOneActiveView(t *testing.T) {
	f := setupTest(t)
	for _, id := range []string{"pom", "pom", "bogus", "journey", "", "sta", "wow", "context-view"} {
		f.c.SwitchView(id)
		views, buttons := countActive(f)
		if views != 1 || buttons != 1 {
			t.Errorf("after SwitchView(%q): %d active views, %d active buttons", id, views, buttons)
		}
	}
	if f.c.State().View() != "wow" {
		t.Errorf("final view = %q, want wow", f.c.State().View())
	}
}

func TestViewButtonDispatch(t *testing.T) {
	f := setupTest(t)
	if !f.click("nav-journey") {
		t.Fatal("nav click not handled")
	}
	if f.c.State().View() != "journey" {
		t.Errorf("view = %q, want journey", f.c.State().View())
	}
}

func TestModeExclusivity(t *testing.T) {
	f := setupTest(t)
	f.c.SetMode("pom", "teams")
	if !f.visible(t, "pom-layer-teams") {
		t.Fatal("teams layer not shown")
	}

	f.c.SetMode("pom", "residuality")
	want := map[string]bool{
		"pom-layer-teams":       false,
		"pom-layer-loops":       false,
		"pom-layer-residuality": true,
		"arch-layer-rt":         true,
	}
	for id, on := range want {
		if f.visible(t, id) != on {
			t.Errorf("overlay %s visible = %v, want %v", id, !on, on)
		}
	}
	for _, btn := range f.doc.ByClass("pom-layer-btn") {
		m, _ := btn.Attr("data-mode")
		if btn.HasClass("active") != (m == "residuality") {
			t.Errorf("button %s active = %v", m, btn.HasClass("active"))
		}
	}
	if f.c.State().Mode("pom") != "residuality" {
		t.Errorf("state mode = %q", f.c.State().Mode("pom"))
	}

	f.c.SetMode("pom", "none")
	for id := range want {
		if f.visible(t, id) {
			t.Errorf("overlay %s visible in mode none", id)
		}
	}
}

func TestUnknownModeIsNoop(t *testing.T) {
	f := setupTest(t)
	f.c.SetMode("wow", "insight")
	f.doc.Flush()
	before := f.doc.String()

	f.c.SetMode("wow", "bogus")
	f.c.SetMode("bogus", "insight")
	if f.doc.String() != before {
		t.Error("unknown mode changed the document")
	}
	if f.c.State().Mode("wow") != "insight" {
		t.Errorf("mode = %q, want insight to persist", f.c.State().Mode("wow"))
	}
	if !f.visible(t, "wow-loops-layer") {
		t.Error("previous mode's overlay lost")
	}
}

func TestModeButtonDispatch(t *testing.T) {
	f := setupTest(t)
	if !f.click("sta-mode-ddo") {
		t.Fatal("mode button click not handled")
	}
	if !f.visible(t, "sta-layer-ddo") {
		t.Error("ddo layer not shown")
	}
	tbl, _ := f.cat.ModeTable("sta")
	m, _ := tbl.Mode("ddo")
	if got := f.el(t, "sta-overlay-desc").Text(); got != m.Desc {
		t.Errorf("desc slot = %q, want %q", got, m.Desc)
	}
}

func TestBehaviorPanelTimer(t *testing.T) {
	f := setupTest(t)
	tbl, _ := f.cat.ModeTable("pom-behavior")
	overloaded, _ := tbl.Mode("overloaded")

	f.c.SetMode("pom-behavior", "overloaded")
	if !f.visible(t, "pom-behavior-overlay") {
		t.Fatal("behavior panel not shown")
	}
	if fill, _ := f.el(t, "pom-mode-bg").Attr("fill"); fill != overloaded.Fill {
		t.Errorf("fill = %q, want %q", fill, overloaded.Fill)
	}

	f.sched.Advance(DefaultBehaviorHide - time.Millisecond)
	f.c.SetMode("pom-behavior", "fragile")
	f.sched.Advance(2 * time.Millisecond)
	if !f.visible(t, "pom-behavior-overlay") {
		t.Error("superseded timer hid the panel")
	}
	if f.sched.Pending() != 1 {
		t.Errorf("pending timers = %d, want 1", f.sched.Pending())
	}

	f.sched.Advance(DefaultBehaviorHide)
	if f.visible(t, "pom-behavior-overlay") {
		t.Error("behavior panel not hidden after its delay")
	}
	if f.c.State().PanelOpen("pom-behavior-overlay") {
		t.Error("state still reports the panel open")
	}
}

func TestTransientInfoPanel(t *testing.T) {
	f := setupTest(t)
	d, _ := f.cat.Diagram("pom")
	first, second := d.Elements[0].ID, d.Elements[1].ID

	if !f.c.Dispatch(Gesture{Type: GestureHover, Target: render.RegionID(d, first)}) {
		t.Fatal("hover not handled")
	}
	if !f.visible(t, "pom-info-overlay") {
		t.Fatal("info panel not shown on hover")
	}
	f.sched.Advance(time.Second)
	f.c.Dispatch(Gesture{Type: GestureHover, Target: render.RegionID(d, second)})

	// The first timer would have fired here.
	f.sched.Advance(DefaultInfoHide - 500*time.Millisecond)
	if !f.visible(t, "pom-info-overlay") {
		t.Error("panel hidden by the timer of an earlier selection")
	}
	f.sched.Advance(time.Second)
	if f.visible(t, "pom-info-overlay") {
		t.Error("panel not hidden after its delay")
	}
	if f.c.State().Highlight("pom") != "" {
		t.Error("highlight not cleared by auto-hide")
	}
	if got := f.shapeAttr(t, "pom", second, "stroke-width"); got != "2" {
		t.Errorf("stroke-width after auto-hide = %q", got)
	}
}

func TestHoverIgnoredOutsideHoverFamilies(t *testing.T) {
	f := setupTest(t)
	if f.c.Dispatch(Gesture{Type: GestureHover, Target: "ctx-manufacturing"}) {
		t.Error("hover on a click-only region was handled")
	}
	if f.visible(t, "sta-context-detail") {
		t.Error("hover opened the context panel")
	}
}

func TestKeyActivation(t *testing.T) {
	f := setupTest(t)
	if f.c.Dispatch(Gesture{Type: GestureKey, Key: "a", Target: "ctx-manufacturing"}) {
		t.Error("non-activation key handled")
	}
	if f.c.Dispatch(Gesture{Type: GestureKey, Key: "Enter", Target: "ctx-detail-title"}) {
		t.Error("key on non-focusable element handled")
	}
	if !f.c.Dispatch(Gesture{Type: GestureKey, Key: " ", Target: "ctx-manufacturing"}) {
		t.Fatal("space on focusable region not handled")
	}
	if !f.visible(t, "sta-context-detail") {
		t.Error("space did not open the detail like a click")
	}
	if !f.c.Dispatch(Gesture{Type: GestureKey, Key: "Enter", Target: "journey-stage-inspire"}) {
		t.Error("enter on focusable region not handled")
	}
}

func TestFirstRuleWins(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	doc, err := dom.ParseString(`<html><body>
<section id="context-view" class="view-container active"></section>
<section id="wow-view" class="view-container"></section>
<button id="nav-context" class="view-btn active" data-view="context"></button>
<button id="nav-wow" class="view-btn" data-view="wow"></button>
<div id="ctx-manufacturing" class="ctx-clickable" data-diagram="ctx" data-region="manufacturing" tabindex="0">
  <button id="nested-nav" class="view-btn" data-view="wow">Back</button>
  <span id="region-label">Manufacturing</span>
</div>
<div id="sta-context-detail" class="opacity-0 translate-y-4"><h3 id="ctx-detail-title"></h3></div>
</body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	c := NewController(doc, render.New(cat), NewStressModel(cat.Stress), Options{Scheduler: NewFakeScheduler()})

	if !c.Dispatch(Gesture{Type: GestureClick, Target: "nested-nav"}) {
		t.Fatal("nested click not handled")
	}
	if c.State().View() != "wow" {
		t.Errorf("view = %q, want wow", c.State().View())
	}
	if c.State().PanelOpen("sta-context-detail") {
		t.Error("region rule fired after the view rule")
	}

	// A plain descendant of the region resolves to the region.
	if !c.Dispatch(Gesture{Type: GestureClick, Target: "region-label"}) {
		t.Fatal("descendant click not handled")
	}
	if !c.State().PanelOpen("sta-context-detail") {
		t.Error("click on region descendant did not open the detail")
	}
	title, _ := doc.ByID("ctx-detail-title")
	if title.Text() != "ManufacturingOperationsContext" {
		t.Errorf("title = %q", title.Text())
	}
}

func TestFilterRoles(t *testing.T) {
	f := setupTest(t)
	if !f.click("pov-filter-enabling") {
		t.Fatal("filter click not handled")
	}
	for _, b := range f.doc.ByClass("pov-role-bubble") {
		team, _ := b.Attr("data-team")
		if b.HasClass("hidden") != (team != "enabling") {
			t.Errorf("bubble %s (team %s) hidden = %v", b.ID(), team, b.HasClass("hidden"))
		}
	}
	if !f.el(t, "pov-filter-enabling").HasClass("active") || f.el(t, "pov-filter-all").HasClass("active") {
		t.Error("filter buttons not toggled")
	}

	before := f.doc.String()
	f.c.FilterRoles("nobody")
	if f.doc.String() != before || f.c.State().Filter() != "enabling" {
		t.Error("unknown team changed the filter")
	}

	f.c.FilterRoles(FilterAll)
	for _, b := range f.doc.ByClass("pov-role-bubble") {
		if b.HasClass("hidden") {
			t.Errorf("bubble %s still hidden", b.ID())
		}
	}
}

func TestUpdateContextStress(t *testing.T) {
	f := setupTest(t)
	f.doc.Flush()

	score := 1.4
	if !f.c.UpdateContextStress("ManufacturingOperationsContext", &score, "fragile") {
		t.Fatal("update of a known context rejected")
	}
	got, _ := f.stress.Get("ManufacturingOperationsContext")
	if got.Score != 1.0 || got.Mode != "fragile" {
		t.Errorf("stored = %v/%s, want 1/fragile", got.Score, got.Mode)
	}
	grid := f.el(t, StressGridID).InnerHTML()
	if !strings.Contains(grid, "width: 100%") {
		t.Error("re-rendered grid has no 100% bar")
	}
	if len(f.doc.Flush()) == 0 {
		t.Error("re-render emitted no patches")
	}

	before := f.doc.String()
	if f.c.UpdateContextStress("NoSuchContext", &score, "") {
		t.Error("update of an unknown context accepted")
	}
	if f.doc.String() != before || len(f.doc.Flush()) != 0 {
		t.Error("unknown context re-rendered the grid")
	}
}

func TestStressModelUpdate(t *testing.T) {
	m := NewStressModel([]catalog.StressContext{{Name: "A", Score: 0.5, Mode: "adaptive"}})
	neg := -3.0
	m.Update("A", &neg, "")
	if got, _ := m.Get("A"); got.Score != 0 || got.Mode != "adaptive" {
		t.Errorf("after negative score: %+v", got)
	}
	m.Update("A", nil, "overloaded")
	if got, _ := m.Get("A"); got.Score != 0 || got.Mode != "overloaded" {
		t.Errorf("after mode-only update: %+v", got)
	}
	snap := m.Snapshot()
	snap[0].Score = 0.9
	if got, _ := m.Get("A"); got.Score != 0 {
		t.Error("snapshot aliases the model")
	}
}

func TestAccordionThreshold(t *testing.T) {
	f := setupTest(t)
	f.c.SwitchView("journey")
	count := func() int { return strings.Count(f.doc.String(), `id="`+render.AccordionID+`"`) }

	steps := []struct {
		width int
		want  int
	}{
		{500, 1},
		{400, 1},
		{1024, 0},
		{1200, 0},
		{767, 1},
		{768, 0},
	}
	for _, s := range steps {
		f.c.Dispatch(Gesture{Type: GestureResize, Viewport: &Viewport{Width: s.width}})
		if got := count(); got != s.want {
			t.Errorf("width %d: %d accordions, want %d", s.width, got, s.want)
		}
		if f.c.State().Narrow() != (s.width < DefaultNarrowWidth) {
			t.Errorf("width %d: narrow = %v", s.width, f.c.State().Narrow())
		}
	}
	journey, _ := f.cat.Diagram("journey")
	f.c.ApplyViewport(Viewport{Width: 320})
	el := f.el(t, render.AccordionID)
	if p, ok := el.Parent(); !ok || p.ID() != JourneyContainer {
		t.Error("accordion not appended to the journey view")
	}
	if got := strings.Count(el.InnerHTML(), "<details"); got != len(journey.Elements) {
		t.Errorf("accordion items = %d, want %d", got, len(journey.Elements))
	}
}

func TestRevealSweep(t *testing.T) {
	f := setupTest(t)
	f.c.ApplyViewport(Viewport{Height: 1000, Tops: map[string]float64{
		"wow-intro": 100,
		"wow-card":  900,
	}})
	if !f.el(t, "wow-intro").HasClass(RevealedClass) {
		t.Error("element in range not revealed")
	}
	if f.el(t, "wow-card").HasClass(RevealedClass) {
		t.Error("element below the reveal line revealed")
	}

	f.c.ApplyViewport(Viewport{Height: 1000, Tops: map[string]float64{"wow-intro": 5000, "wow-card": 850}})
	if !f.el(t, "wow-intro").HasClass(RevealedClass) {
		t.Error("reveal is not sticky")
	}
	if !f.el(t, "wow-card").HasClass(RevealedClass) {
		t.Error("element on the reveal line not revealed")
	}

	if f.c.Dispatch(Gesture{Type: GestureScroll}) {
		t.Error("scroll without metrics handled")
	}
}

func TestStateTransitionsCopy(t *testing.T) {
	modes := map[string]string{"wow": "default"}
	s := NewState("wow", modes)
	modes["wow"] = "changed"
	if s.Mode("wow") != "default" {
		t.Error("state aliases its input map")
	}
	n := s.WithMode("wow", "insight").WithHighlight("ctx", "manufacturing").WithPanel("p", true)
	if s.Mode("wow") != "default" || s.Highlight("ctx") != "" || s.PanelOpen("p") {
		t.Error("transition mutated the previous state")
	}
	if n.Mode("wow") != "insight" || n.Highlight("ctx") != "manufacturing" || !n.PanelOpen("p") {
		t.Error("transition lost its update")
	}
}
