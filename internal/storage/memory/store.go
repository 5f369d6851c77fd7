package memory

import (
	"sync"

	"review_radar/internal/domain"
)

// Store holds the authoritative, append-only review collection. Writers are
// mutually exclusive; readers take a copy under the read lock, so a snapshot
// never observes a half-applied append and can be iterated freely afterwards.
type Store struct {
	mu      sync.RWMutex
	reviews []domain.Review
	gen     uint64
}

// New returns a store pre-populated with seed. Seeded reviews follow the same
// filtering and ranking rules as submitted ones; their ids and timestamps come
// from the dataset rather than being generated here.
func New(seed []domain.Review) *Store {
	s := &Store{}
	if len(seed) > 0 {
		s.reviews = make([]domain.Review, len(seed))
		copy(s.reviews, seed)
		s.gen = uint64(len(seed))
	}
	return s
}

func (s *Store) Append(r domain.Review) {
	s.mu.Lock()
	s.reviews = append(s.reviews, r)
	s.gen++
	s.mu.Unlock()
}

func (s *Store) Snapshot() []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reviews)
}

func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}
