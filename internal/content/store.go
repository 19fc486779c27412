package content

import "sync"

// Store holds the live Site. Readers get a snapshot; a reload swaps the whole
// value, so a request never sees a half-updated Site.
type Store struct {
	mu   sync.RWMutex
	site *Site
}

func NewStore(site *Site) *Store {
	return &Store{site: site}
}

func (s *Store) Site() *Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.site
}

func (s *Store) Swap(site *Site) {
	s.mu.Lock()
	s.site = site
	s.mu.Unlock()
}
