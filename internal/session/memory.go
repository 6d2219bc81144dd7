package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry[T any] struct {
	v    T
	seen time.Time
}

type MemoryStore[T any] struct {
	mu  sync.RWMutex
	m   map[string]*entry[T]
	now func() time.Time
}

func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{m: map[string]*entry[T]{}, now: time.Now}
}

func (s *MemoryStore[T]) Get(_ context.Context, id string) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.m[id]
	if !ok {
		var zero T
		return zero, false, nil
	}
	e.seen = s.now()
	return e.v, true, nil
}

func (s *MemoryStore[T]) Put(_ context.Context, id string, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[id] = &entry[T]{v: v, seen: s.now()}
	return nil
}

func (s *MemoryStore[T]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
	return nil
}

func (s *MemoryStore[T]) Sweep(_ context.Context, idle time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-idle)
	n := 0
	for id, e := range s.m {
		if e.seen.Before(cutoff) {
			delete(s.m, id)
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

func (s *MemoryStore[T]) NewID() string {
	return uuid.NewString()
}
