package deck

import (
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/ziadkadry99/ddo-deck/internal/catalog"
	"github.com/ziadkadry99/ddo-deck/internal/dom"
	"github.com/ziadkadry99/ddo-deck/internal/render"
)

// Defaults of the viewport and timer settings.
const (
	DefaultNarrowWidth  = 768
	DefaultRevealRatio  = 0.85
	DefaultRevealDelay  = 120 * time.Millisecond
	DefaultInfoHide     = 3600 * time.Millisecond
	DefaultBehaviorHide = 4800 * time.Millisecond
)

// Options tunes a Controller. Zero values select the defaults above.
type Options struct {
	Log          logr.Logger
	Scheduler    Scheduler
	NarrowWidth  int
	RevealRatio  float64
	RevealDelay  time.Duration
	InfoHide     time.Duration
	BehaviorHide time.Duration
}

func (o Options) withDefaults() Options {
	if o.Log.GetSink() == nil {
		o.Log = logr.Discard()
	}
	if o.Scheduler == nil {
		o.Scheduler = RealScheduler{}
	}
	if o.NarrowWidth <= 0 {
		o.NarrowWidth = DefaultNarrowWidth
	}
	if o.RevealRatio <= 0 {
		o.RevealRatio = DefaultRevealRatio
	}
	if o.RevealDelay <= 0 {
		o.RevealDelay = DefaultRevealDelay
	}
	if o.InfoHide <= 0 {
		o.InfoHide = DefaultInfoHide
	}
	if o.BehaviorHide <= 0 {
		o.BehaviorHide = DefaultBehaviorHide
	}
	return o
}

type pendingTimer struct {
	timer Timer
	gen   uint64
}

// Controller applies UI transitions to one document. It is single-threaded:
// every call must come from the goroutine that owns the document, which for
// live sessions is the Session loop.
type Controller struct {
	cat    *catalog.Catalog
	r      *render.Renderer
	doc    *dom.Document
	stress *StressModel
	log    logr.Logger
	opts   Options
	post   func(func())

	panels map[string]PanelSpec
	rules  []Rule
	state  State

	timers map[string]*pendingTimer
	gen    uint64

	timeline string
}

// NewController binds a controller to a parsed page. The initial view is the
// first view container marked active in the markup.
func NewController(doc *dom.Document, r *render.Renderer, stress *StressModel, opts Options) *Controller {
	opts = opts.withDefaults()
	c := &Controller{
		cat:    r.Catalog(),
		r:      r,
		doc:    doc,
		stress: stress,
		log:    opts.Log,
		opts:   opts,
		post:   func(fn func()) { fn() },
		panels: DefaultPanels(opts.InfoHide),
		rules:  DefaultRules(),
		timers: make(map[string]*pendingTimer),
	}

	view := ""
	for _, el := range doc.ByClass("view-container") {
		if el.HasClass("active") {
			view = strings.TrimSuffix(el.ID(), "-view")
			break
		}
	}
	modes := make(map[string]string, len(c.cat.Modes))
	for _, t := range c.cat.Modes {
		if t.Default != "" {
			modes[t.Key] = t.Default
		}
	}
	c.state = NewState(view, modes)

	for _, d := range c.cat.Diagrams {
		if d.Kind == catalog.KindTimeline {
			c.timeline = d.ID
			break
		}
	}
	return c
}

// State returns the current UI state.
func (c *Controller) State() State { return c.state }

// Document returns the document the controller mutates.
func (c *Controller) Document() *dom.Document { return c.doc }

// after schedules fn on the controller's goroutine.
func (c *Controller) after(d time.Duration, fn func()) Timer {
	return c.opts.Scheduler.AfterFunc(d, func() { c.post(fn) })
}

// arm schedules fn under key, stopping any timer already pending for it.
// A stale timer that fires anyway is ignored through its generation.
func (c *Controller) arm(key string, d time.Duration, fn func()) {
	c.disarm(key)
	c.gen++
	gen := c.gen
	t := c.after(d, func() {
		p, ok := c.timers[key]
		if !ok || p.gen != gen {
			return
		}
		delete(c.timers, key)
		fn()
	})
	c.timers[key] = &pendingTimer{timer: t, gen: gen}
}

func (c *Controller) disarm(key string) {
	if p, ok := c.timers[key]; ok {
		p.timer.Stop()
		delete(c.timers, key)
	}
}

// StopTimers cancels every pending panel timer.
func (c *Controller) StopTimers() {
	for key := range c.timers {
		c.disarm(key)
	}
}

func (c *Controller) ignore(reason string, kv ...any) {
	c.log.V(1).Info("ignored: "+reason, kv...)
}

func show(el *dom.Element, hidden, visible []string) {
	el.RemoveClass(hidden...)
	el.AddClass(visible...)
}

func hide(el *dom.Element, hidden, visible []string) {
	el.RemoveClass(visible...)
	el.AddClass(hidden...)
}
