package nav

import (
	"slices"
	"sync"
)

type listener struct {
	id int
	fn func(Location)
}

// MemoryHistory is an in-process LocationStore with browser history
// semantics: pushing truncates any forward entries.
type MemoryHistory struct {
	mu        sync.Mutex
	entries   []Location
	index     int
	listeners []listener
	nextID    int
}

// NewMemoryHistory starts a history at initial. An empty or invalid initial
// location falls back to the root.
func NewMemoryHistory(initial string) *MemoryHistory {
	loc, err := ParseLocation(initial)
	if err != nil {
		loc = Root
	}
	return &MemoryHistory{entries: []Location{loc}}
}

func (h *MemoryHistory) Current() Location {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

// Subscribe registers fn for every later change. Listeners run synchronously
// in registration order.
func (h *MemoryHistory) Subscribe(fn func(Location)) func() {
	if fn == nil {
		return func() {}
	}
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.listeners = append(h.listeners, listener{id: id, fn: fn})
	h.mu.Unlock()
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.listeners = slices.DeleteFunc(h.listeners, func(l listener) bool { return l.id == id })
	}
}

// Navigate pushes path. Navigating to the current location is a no-op.
func (h *MemoryHistory) Navigate(path string) error {
	loc, err := ParseLocation(path)
	if err != nil {
		return err
	}
	h.mu.Lock()
	if h.entries[h.index] == loc {
		h.mu.Unlock()
		return nil
	}
	h.entries = append(h.entries[:h.index+1], loc)
	h.index = len(h.entries) - 1
	h.mu.Unlock()
	h.notify(loc)
	return nil
}

// Replace swaps the current entry without growing the history.
func (h *MemoryHistory) Replace(path string) error {
	loc, err := ParseLocation(path)
	if err != nil {
		return err
	}
	h.mu.Lock()
	if h.entries[h.index] == loc {
		h.mu.Unlock()
		return nil
	}
	h.entries[h.index] = loc
	h.mu.Unlock()
	h.notify(loc)
	return nil
}

func (h *MemoryHistory) Back() bool {
	return h.step(-1)
}

func (h *MemoryHistory) Forward() bool {
	return h.step(1)
}

func (h *MemoryHistory) step(delta int) bool {
	h.mu.Lock()
	next := h.index + delta
	if next < 0 || next >= len(h.entries) {
		h.mu.Unlock()
		return false
	}
	h.index = next
	loc := h.entries[next]
	h.mu.Unlock()
	h.notify(loc)
	return true
}

// Entries returns a copy of the history and the index of the current entry.
func (h *MemoryHistory) Entries() ([]Location, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.entries), h.index
}

func (h *MemoryHistory) CanGoBack() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index > 0
}

func (h *MemoryHistory) CanGoForward() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index < len(h.entries)-1
}

func (h *MemoryHistory) notify(loc Location) {
	h.mu.Lock()
	ls := slices.Clone(h.listeners)
	h.mu.Unlock()
	for _, l := range ls {
		l.fn(loc)
	}
}
