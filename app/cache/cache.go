// Package cache is a process-local read cache for list endpoints.
// Every write in the API flushes it, so entries never outlive a mutation.
package cache

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	KeyUsers      = "users:all"
	KeyPlanets    = "planets:all"
	KeyCharacters = "characters:all"
	KeyStarships  = "starships:all"
)

type Store struct {
	c *gocache.Cache

	// gen is bumped by every Flush; loads started before a flush are not stored.
	mu  sync.Mutex
	gen uint64
}

func New(ttl, cleanup time.Duration) *Store {
	return &Store{c: gocache.New(ttl, cleanup)}
}

func (s *Store) Get(key string) (any, bool) {
	return s.c.Get(key)
}

func (s *Store) Set(key string, value any) {
	s.c.SetDefault(key, value)
}

// Flush drops every entry. Writes flush everything because a delete on one
// entity can cascade into rows owned by another.
func (s *Store) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.c.Flush()
}

func (s *Store) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// setIfCurrent stores value only if no Flush happened since gen was read.
func (s *Store) setIfCurrent(key string, value any, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == gen {
		s.c.SetDefault(key, value)
	}
}

// Remember returns the cached value under key or loads, stores and returns it.
// Load errors are not cached, and neither is a value whose load overlapped a
// Flush, since it may predate the write that caused the flush.
func Remember[T any](s *Store, key string, load func() (T, error)) (T, error) {
	if v, ok := s.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	gen := s.generation()
	v, err := load()
	if err != nil {
		var zero T
		return zero, err
	}
	s.setIfCurrent(key, v, gen)
	return v, nil
}
