package cache

import (
	"context"
	"sync"
	"time"
)

// Cache is a small TTL key/value store. The insight pipeline uses it to avoid
// repeating expensive model calls; it is best-effort and never
// correctness-critical.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type entry struct {
	value     string
	expiresAt time.Time
}

// Memory is an in-process Cache. Correct only for a single server instance;
// multi-instance deployments should use the redis-backed implementation.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{entries: map[string]entry{}, now: time.Now}
}

// NewMemoryWithClock exists for tests that need to step time.
func NewMemoryWithClock(now func() time.Time) *Memory {
	return &Memory{entries: map[string]entry{}, now: now}
}

func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return "", false, nil
	}
	if m.now().After(e.expiresAt) {
		delete(m.entries, key)
		return "", false, nil
	}
	return e.value, true, nil
}

func (m *Memory) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = entry{value: value, expiresAt: m.now().Add(ttl)}
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
