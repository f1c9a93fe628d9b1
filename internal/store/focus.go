package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/lmonteiro/studa/internal/kv"
)

// FocusStore holds the single free-form "current study focus" note. Unlike
// the collections it persists the raw string, not JSON.
type FocusStore struct {
	devices kv.Store
	log     *slog.Logger

	mu     sync.Mutex
	text   string
	loaded bool

	writes sync.WaitGroup
}

// NewFocusStore creates the focus store. Call Load before mutating.
func NewFocusStore(devices kv.Store, log *slog.Logger) *FocusStore {
	return &FocusStore{devices: devices, log: log}
}

// Load reads the persisted focus text. Attempted exactly once per process.
func (s *FocusStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}
	s.loaded = true

	raw, ok, err := s.devices.Get(ctx, KeyFocus)
	if err != nil {
		s.log.Error("loading focus text", "error", err)
		return
	}
	if ok {
		s.text = raw
	}
}

// Text returns the current focus note.
func (s *FocusStore) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// SetText replaces the focus note and schedules persistence.
func (s *FocusStore) SetText(text string) {
	s.mu.Lock()
	s.text = text
	suppressed := !s.loaded
	s.mu.Unlock()
	if suppressed {
		return
	}
	s.writes.Add(1)
	go func() {
		defer s.writes.Done()
		if err := s.devices.Set(context.Background(), KeyFocus, text); err != nil {
			s.log.Error("persisting focus text", "error", err)
		}
	}()
}

// Flush blocks until every scheduled write has finished.
func (s *FocusStore) Flush() {
	s.writes.Wait()
}
