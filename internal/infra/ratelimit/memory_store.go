package ratelimit

import (
	"context"
	"sync"
	"time"

	"newsguard/internal/domain/service"
)

type memoryWindow struct {
	count   int64
	resetAt time.Time
}

// MemoryStore keeps fixed-window counters in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*memoryWindow
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

var _ service.CounterStore = (*MemoryStore)(nil)

// NewMemoryStore starts a janitor that evicts expired windows every interval.
func NewMemoryStore(interval time.Duration) *MemoryStore {
	s := newMemoryStore(time.Now)
	go s.janitor(interval)

	return s
}

func newMemoryStore(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		windows: make(map[string]*memoryWindow),
		now:     now,
		stop:    make(chan struct{}),
	}
}

// Increment counts a hit; the whole read-modify-write happens under one lock.
func (s *MemoryStore) Increment(_ context.Context, key string, window time.Duration) (service.Window, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &memoryWindow{resetAt: now.Add(window)}
		s.windows[key] = w
	}
	w.count++

	return service.Window{Count: w.count, ResetAt: w.resetAt}, nil
}

// Close stops the janitor.
func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() {
		close(s.stop)
	})

	return nil
}

func (s *MemoryStore) janitor(interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *MemoryStore) sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for key, w := range s.windows {
		if !now.Before(w.resetAt) {
			delete(s.windows, key)
			evicted++
		}
	}

	return evicted
}

func (s *MemoryStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.windows)
}
