package otp

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	code     string
	deadline time.Time
}

// MemoryStore is an in-process Store for deployments without Redis and for
// tests. Expired entries are dropped lazily on read.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates a MemoryStore. A non-positive ttl falls back to DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Set(_ context.Context, phone, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[phone] = memoryEntry{code: code, deadline: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, phone string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[phone]
	if !ok {
		return "", ErrNotFound
	}
	if s.now().After(entry.deadline) {
		delete(s.entries, phone)
		return "", ErrNotFound
	}
	return entry.code, nil
}

func (s *MemoryStore) Delete(_ context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, phone)
	return nil
}
