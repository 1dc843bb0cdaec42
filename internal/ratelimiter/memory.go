package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// MemoryConfig configures the in-memory store. Zero values fall back to the
// contact-endpoint defaults. Now is the clock source; tests inject a fake.
type MemoryConfig struct {
	Limit  int
	Window time.Duration
	Now    func() time.Time
}

// entry is one client's window. The per-entry mutex makes the read-check-
// increment sequence atomic, so concurrent requests cannot over-admit.
type entry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

// Memory is a fixed-window counter held in process memory. Construct one at
// startup and inject it; it owns a cleanup goroutine that must be released
// with Close.
type Memory struct {
	limit  int
	window time.Duration
	now    func() time.Time

	entries  sync.Map // clientID -> *entry
	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemory creates the store and starts its background cleanup loop.
func NewMemory(cfg MemoryConfig) *Memory {
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	m := &Memory{
		limit:  cfg.Limit,
		window: cfg.Window,
		now:    cfg.Now,
		stop:   make(chan struct{}),
	}
	go m.cleanupLoop()
	return m
}

// Admit applies the fixed-window algorithm: a missing or expired window is
// replaced with count=1 and admitted; below the limit the count increments
// and admits; at the limit the request is rejected without incrementing.
func (m *Memory) Admit(_ context.Context, clientID string) (Decision, error) {
	e := m.entry(clientID)

	e.mu.Lock()
	defer e.mu.Unlock()

	now := m.now()
	if !now.Before(e.resetAt) {
		// Expired windows are replaced on access, never read stale.
		e.count = 1
		e.resetAt = now.Add(m.window)
		return m.decision(true, e), nil
	}

	if e.count < m.limit {
		e.count++
		return m.decision(true, e), nil
	}

	return m.decision(false, e), nil
}

// Close stops the cleanup goroutine. Safe to call more than once.
func (m *Memory) Close() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (m *Memory) entry(clientID string) *entry {
	if v, ok := m.entries.Load(clientID); ok {
		return v.(*entry)
	}
	v, _ := m.entries.LoadOrStore(clientID, &entry{})
	return v.(*entry)
}

func (m *Memory) decision(allowed bool, e *entry) Decision {
	remaining := m.limit - e.count
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   allowed,
		Limit:     m.limit,
		Remaining: remaining,
		ResetAt:   e.resetAt,
	}
}

// cleanupLoop drops expired entries so one-shot clients do not accumulate
// for the lifetime of the process.
func (m *Memory) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			now := m.now()
			m.entries.Range(func(key, value interface{}) bool {
				e := value.(*entry)
				e.mu.Lock()
				expired := !now.Before(e.resetAt)
				e.mu.Unlock()
				if expired {
					m.entries.Delete(key)
				}
				return true
			})
		}
	}
}
