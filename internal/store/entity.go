package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/lmonteiro/studa/internal/kv"
)

// Entity is any record managed by a Store.
type Entity interface {
	EntityID() string
}

// Store manages one ordered, homogeneous collection mirrored to a fixed
// device-store key. Mutations update the in-memory collection synchronously
// and schedule a background write of the whole serialized collection; read
// after write within the process always sees the mutation, durability is
// best effort. Until Load has completed, scheduled writes are suppressed so
// an empty initial collection cannot clobber not-yet-loaded data.
type Store[T Entity] struct {
	devices kv.Store
	key     string
	log     *slog.Logger

	mu     sync.Mutex
	items  []T
	loaded bool

	writes sync.WaitGroup
}

// New creates a store for the collection persisted under key. Call Load
// before mutating.
func New[T Entity](devices kv.Store, key string, log *slog.Logger) *Store[T] {
	return &Store[T]{devices: devices, key: key, log: log}
}

// Load reads and parses the persisted collection. It is attempted exactly
// once per process; later calls are no-ops. A missing key yields an empty
// collection; an unparseable value is logged and treated as no data, never
// an error for the caller.
func (s *Store[T]) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}
	s.loaded = true

	raw, ok, err := s.devices.Get(ctx, s.key)
	if err != nil {
		s.log.Error("loading collection", "key", s.key, "error", err)
		return
	}
	if !ok {
		return
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Error("parsing stored collection, starting empty", "key", s.key, "error", err)
		return
	}
	s.items = items
}

// Ready reports whether the initial load has completed.
func (s *Store[T]) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Items returns a snapshot copy of the collection in insertion order.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the item with the given id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of items in the collection.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Add appends the item and schedules persistence.
func (s *Store[T]) Add(item T) {
	s.mu.Lock()
	s.items = append(s.items, item)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()
	s.persist(snapshot)
}

// Update replaces the element whose id matches item. A missing id leaves
// the collection unchanged; persistence is scheduled either way.
func (s *Store[T]) Update(item T) {
	s.mu.Lock()
	for i, existing := range s.items {
		if existing.EntityID() == item.EntityID() {
			s.items[i] = item
			break
		}
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()
	s.persist(snapshot)
}

// Remove filters out the element with the given id and schedules
// persistence.
func (s *Store[T]) Remove(id string) {
	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	snapshot := s.snapshotLocked()
	s.mu.Unlock()
	s.persist(snapshot)
}

// Flush blocks until every scheduled write has finished. Call before
// process exit; one-shot commands would otherwise race their own writes.
func (s *Store[T]) Flush() {
	s.writes.Wait()
}

// snapshotLocked serializes the current collection, or returns nil when
// writes are suppressed (not loaded yet) or serialization fails.
func (s *Store[T]) snapshotLocked() []byte {
	if !s.loaded {
		return nil
	}
	items := s.items
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		s.log.Error("serializing collection", "key", s.key, "error", err)
		return nil
	}
	return raw
}

// persist schedules a fire-and-forget write of the snapshot taken at the
// triggering mutation. Failures are logged and swallowed; in-memory state
// stays authoritative for the rest of the process.
func (s *Store[T]) persist(snapshot []byte) {
	if snapshot == nil {
		return
	}
	s.writes.Add(1)
	go func() {
		defer s.writes.Done()
		if err := s.devices.Set(context.Background(), s.key, string(snapshot)); err != nil {
			s.log.Error("persisting collection", "key", s.key, "error", err)
		}
	}()
}
