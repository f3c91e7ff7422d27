package deck

import (
	"math"
	"sync"

	"github.com/ziadkadry99/ddo-deck/internal/catalog"
	"github.com/ziadkadry99/ddo-deck/internal/dom"
	"github.com/ziadkadry99/ddo-deck/internal/render"
)

// StressGridID is the container of the context stress cards.
const StressGridID = "context-stress-grid"

// StressModel is the process-wide context stress table. HTTP handlers and
// sessions read and write it from different goroutines.
type StressModel struct {
	mu       sync.RWMutex
	contexts []catalog.StressContext
}

// NewStressModel copies the seed contexts.
func NewStressModel(seed []catalog.StressContext) *StressModel {
	m := &StressModel{contexts: make([]catalog.StressContext, len(seed))}
	for i, c := range seed {
		m.contexts[i] = cloneContext(c)
	}
	return m
}

func cloneContext(c catalog.StressContext) catalog.StressContext {
	c.Drivers = append([]string(nil), c.Drivers...)
	return c
}

// Reset replaces every context with a copy of seed.
func (m *StressModel) Reset(seed []catalog.StressContext) {
	contexts := make([]catalog.StressContext, len(seed))
	for i, c := range seed {
		contexts[i] = cloneContext(c)
	}
	m.mu.Lock()
	m.contexts = contexts
	m.mu.Unlock()
}

// Snapshot returns a copy of every context in declaration order.
func (m *StressModel) Snapshot() []catalog.StressContext {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]catalog.StressContext, len(m.contexts))
	for i, c := range m.contexts {
		out[i] = cloneContext(c)
	}
	return out
}

// Get returns one context by name.
func (m *StressModel) Get(name string) (catalog.StressContext, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.contexts {
		if c.Name == name {
			return cloneContext(c), true
		}
	}
	return catalog.StressContext{}, false
}

// Update sets the score, clamped to [0,1], and the mode of a named context.
// A nil score or an empty mode leaves that field alone. Unknown names change
// nothing and return false.
func (m *StressModel) Update(name string, score *float64, mode string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.contexts {
		if m.contexts[i].Name != name {
			continue
		}
		if score != nil && !math.IsNaN(*score) {
			m.contexts[i].Score = math.Max(0, math.Min(1, *score))
		}
		if mode != "" {
			m.contexts[i].Mode = mode
		}
		return true
	}
	return false
}

// UpdateContextStress is the score hook of a single controller: it updates
// the model and re-renders the stress grid only when the update was accepted.
// The live server shares one model across sessions, so it applies Update
// once and then refreshes every session instead of calling this per session.
func (c *Controller) UpdateContextStress(name string, score *float64, mode string) bool {
	if !c.stress.Update(name, score, mode) {
		c.ignore("unknown stress context", "context", name)
		return false
	}
	c.RenderStressGrid()
	return true
}

// RenderStressGrid redraws the stress cards from the model. A document
// without the grid container is left alone.
func (c *Controller) RenderStressGrid() {
	el, ok := c.doc.ByID(StressGridID)
	if !ok {
		c.ignore("stress grid missing from document")
		return
	}
	frag, err := render.StressGrid(c.stress.Snapshot())
	if err != nil {
		c.log.Error(err, "rendering stress grid")
		return
	}
	if err := el.SetHTML(string(frag)); err != nil {
		c.log.Error(err, "writing stress grid")
	}
}

// SyncStressGrid redraws the stress cards and records the grid patch even
// when the markup is unchanged.
func (c *Controller) SyncStressGrid() {
	el, ok := c.doc.ByID(StressGridID)
	if !ok {
		c.ignore("stress grid missing from document")
		return
	}
	before := el.InnerHTML()
	c.RenderStressGrid()
	if after := el.InnerHTML(); after == before {
		c.doc.Emit(dom.Patch{Op: dom.OpHTML, ID: StressGridID, Value: after})
	}
}
