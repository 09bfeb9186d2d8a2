package approval

import "sync"

// Store keeps the open requests, keyed by (kind, principal). PutIfAbsent and
// Remove must be atomic with respect to each other: when an approve and a
// deny race on the same request, exactly one caller gets the entry back from
// Remove and the other must see ok == false.
type Store interface {
	Get(kind Kind, principalID string) (Request, bool)
	PutIfAbsent(req Request) bool
	Remove(kind Kind, principalID string) (Request, bool)
}

type storeKey struct {
	kind      Kind
	principal string
}

// MemoryStore is the default process-local Store. Open requests do not
// survive a restart.
type MemoryStore struct {
	mu       sync.Mutex
	requests map[storeKey]Request
}

// NewMemoryStore - create an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{requests: make(map[storeKey]Request)}
}

// Get returns the open request for (kind, principal), if any.
func (s *MemoryStore) Get(kind Kind, principalID string) (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[storeKey{kind, principalID}]
	return req, ok
}

// PutIfAbsent stores req unless an open request of the same kind already
// exists for the principal.
func (s *MemoryStore) PutIfAbsent(req Request) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := storeKey{req.Kind, req.PrincipalID}
	if _, ok := s.requests[k]; ok {
		return false
	}
	s.requests[k] = req
	return true
}

// Remove deletes and returns the open request for (kind, principal).
func (s *MemoryStore) Remove(kind Kind, principalID string) (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := storeKey{kind, principalID}
	req, ok := s.requests[k]
	if ok {
		delete(s.requests, k)
	}
	return req, ok
}
