package kv

import "context"

// Store is the opaque on-device key/value string store used to durably
// mirror in-memory collections. Values are whole-collection snapshots;
// there is no partial or delta format and no atomicity across keys unless
// the implementation also provides BatchWriter.
type Store interface {
	// Get returns the value stored under key. ok is false when the key
	// has never been written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error
}

// Entry is one key/value pair in a multi-key write.
type Entry struct {
	Key   string
	Value string
}

// BatchWriter is implemented by stores that can apply several writes in a
// single atomic step. Cascading deletes use it so that a crash cannot leave
// one collection snapshot updated and the other stale.
type BatchWriter interface {
	SetAll(ctx context.Context, entries []Entry) error
}

// SetAll writes every entry through the store's BatchWriter when it has
// one, and falls back to sequential Sets otherwise.
func SetAll(ctx context.Context, s Store, entries []Entry) error {
	if bw, ok := s.(BatchWriter); ok {
		return bw.SetAll(ctx, entries)
	}
	for _, e := range entries {
		if err := s.Set(ctx, e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}
