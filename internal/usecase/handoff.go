package usecase

import (
	"sync"

	"calcplanner/internal/domain/entities"
)

// IEditHandoff is the single-slot relay the saved-estimates list uses to send
// a record back to the entry form.
//
// The slot holds at most one estimate; a second SetPending overwrites the
// first. Every SetPending, Clear and successful Take notifies observers
// synchronously in registration order with the new slot value (nil when
// empty). Changes and their notifications are serialized, so observers see
// values in write order; an observer must not change the slot itself. One
// instance is created at startup and injected into both sides.
type IEditHandoff interface {
	SetPending(e entities.Estimate)
	Clear()
	Pending() (entities.Estimate, bool)
	Take() (entities.Estimate, bool)
	Subscribe(fn func(*entities.Estimate)) (cancel func())
}

type EditHandoff struct {
	// held across a change and its notification
	writeMu sync.Mutex

	mu      sync.Mutex
	pending *entities.Estimate

	observers observerList[*entities.Estimate]
}

var _ IEditHandoff = (*EditHandoff)(nil)

func NewEditHandoff() *EditHandoff {
	return &EditHandoff{}
}

func (h *EditHandoff) SetPending(e entities.Estimate) {
	h.writeMu.Lock()
	defer h.writeMu.Unlock()

	v := copyEstimate(&e)
	h.mu.Lock()
	h.pending = v
	h.mu.Unlock()

	h.observers.notify(copyEstimate(v))
}

func (h *EditHandoff) Clear() {
	h.writeMu.Lock()
	defer h.writeMu.Unlock()

	h.mu.Lock()
	h.pending = nil
	h.mu.Unlock()

	h.observers.notify(nil)
}

func (h *EditHandoff) Pending() (entities.Estimate, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pending == nil {
		return entities.Estimate{}, false
	}
	return *copyEstimate(h.pending), true
}

// Take empties the slot and returns what it held.
func (h *EditHandoff) Take() (entities.Estimate, bool) {
	h.writeMu.Lock()
	defer h.writeMu.Unlock()

	h.mu.Lock()
	p := h.pending
	h.pending = nil
	h.mu.Unlock()

	if p == nil {
		return entities.Estimate{}, false
	}
	h.observers.notify(nil)
	return *p, true
}

func (h *EditHandoff) Subscribe(fn func(*entities.Estimate)) (cancel func()) {
	return h.observers.add(fn)
}

func copyEstimate(e *entities.Estimate) *entities.Estimate {
	if e == nil {
		return nil
	}
	c := *e
	c.LineItems = make([]entities.LineItem, len(e.LineItems))
	copy(c.LineItems, e.LineItems)
	return &c
}
