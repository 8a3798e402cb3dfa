package ggwin

import "slices"

// windowRegistry is an ordered, indexable collection of windows plus a
// stable id-to-index map.
//
// Invariant: the map is injective and exactly reflects live slice positions
// at all times. Removing the entry at index i shifts every entry above i
// down by one and remaps it; no gaps, no stale ids. All operations are
// O(n) worst case, which is fine at the window counts a shell manages.
type windowRegistry struct {
	windows []*Window
	indices map[WindowID]int
}

func newWindowRegistry() *windowRegistry {
	return &windowRegistry{
		indices: make(map[WindowID]int),
	}
}

// open appends the window and records its id at the new index.
func (r *windowRegistry) open(w *Window) WindowID {
	id := w.ID()
	r.indices[id] = len(r.windows)
	r.windows = append(r.windows, w)
	return id
}

// close removes the window with the given id and reindexes every window
// after it. Returns false, without error, if the id is unknown, which is
// expected when a close races with in-flight events for the same window.
func (r *windowRegistry) close(id WindowID) bool {
	i, ok := r.indices[id]
	if !ok {
		return false
	}
	delete(r.indices, id)
	r.windows = slices.Delete(r.windows, i, i+1)
	for j := i; j < len(r.windows); j++ {
		r.indices[r.windows[j].ID()] = j
	}
	return true
}

// get returns the window with the given id, or nil if it is not registered.
func (r *windowRegistry) get(id WindowID) *Window {
	i, ok := r.indices[id]
	if !ok {
		return nil
	}
	return r.windows[i]
}

// at returns the window at the given position, or nil if out of range.
func (r *windowRegistry) at(i int) *Window {
	if i < 0 || i >= len(r.windows) {
		return nil
	}
	return r.windows[i]
}

// indexOf returns the live position of the given id.
func (r *windowRegistry) indexOf(id WindowID) (int, bool) {
	i, ok := r.indices[id]
	return i, ok
}

func (r *windowRegistry) len() int {
	return len(r.windows)
}

func (r *windowRegistry) empty() bool {
	return len(r.windows) == 0
}
