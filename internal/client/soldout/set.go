// Package soldout tracks product ids marked unavailable for purchase in
// the current client process. The set only grows: there is no way to mark
// an item available again, and nothing is persisted across restarts. The
// backend's product record stays the source of truth; this set only covers
// the window between a purchase and the next catalog refresh.
package soldout

import "sync"

type Set struct {
	mu  sync.RWMutex
	ids map[int]struct{}
}

func NewSet() *Set {
	return &Set{ids: make(map[int]struct{})}
}

// Mark flags the product as sold out. Repeated marks are no-ops.
func (s *Set) Mark(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[productID] = struct{}{}
}

// IsMarked reports membership.
func (s *Set) IsMarked(productID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[productID]
	return ok
}

// Len returns the number of marked products.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}
