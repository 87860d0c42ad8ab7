// pkg/memcache/session_store.go
package mem

import (
	"sync"
	"time"
)

// SessionStore keeps per-visitor widget state for a bounded time.
// Reads and writes refresh the entry's expiry.
type SessionStore[T any] interface {
	Create(id string, value T)

	// Get returns a copy of the value stored under id if it has not expired.
	Get(id string) (T, bool)

	// Update applies fn to the stored value under the store lock and saves the result.
	// Returns false when id is missing or expired; fn is not called in that case.
	Update(id string, fn func(T) T) (T, bool)

	Delete(id string)
	Len() int
}

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

type Sessions[T any] struct {
	mu   sync.Mutex
	ttl  time.Duration
	now  func() time.Time
	data map[string]entry[T]
}

func NewSessions[T any](ttl time.Duration) *Sessions[T] {
	return &Sessions[T]{
		ttl:  ttl,
		now:  time.Now,
		data: make(map[string]entry[T]),
	}
}

func (s *Sessions[T]) Create(id string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = entry[T]{value: value, expiresAt: s.now().Add(s.ttl)}
}

func (s *Sessions[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(id)
	if !ok {
		var zero T
		return zero, false
	}
	e.expiresAt = s.now().Add(s.ttl)
	s.data[id] = e
	return e.value, true
}

func (s *Sessions[T]) Update(id string, fn func(T) T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(id)
	if !ok {
		var zero T
		return zero, false
	}
	e.value = fn(e.value)
	e.expiresAt = s.now().Add(s.ttl)
	s.data[id] = e
	return e.value, true
}

func (s *Sessions[T]) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}

func (s *Sessions[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// Sweep drops every expired entry and reports how many were removed.
func (s *Sessions[T]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}

// must hold s.mu
func (s *Sessions[T]) live(id string) (entry[T], bool) {
	e, ok := s.data[id]
	if !ok {
		return e, false
	}
	if s.now().After(e.expiresAt) {
		delete(s.data, id) // cleanup expired
		return e, false
	}
	return e, true
}
