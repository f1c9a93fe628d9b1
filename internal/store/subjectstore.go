package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/lmonteiro/studa/internal/domain"
	"github.com/lmonteiro/studa/internal/kv"
)

// SubjectStore manages the subjects collection together with the
// flashcards partitioned by owning subject. Deleting a subject removes its
// flashcard partition in the same in-memory transition and persists both
// snapshots in one batch, so the durable copies cannot disagree about a
// deleted subject.
//
// No referential check ties a flashcard's subject id to an existing
// subject; callers own that, and a partition created under an unknown id
// is only ever removed through the cascade path.
type SubjectStore struct {
	devices kv.Store
	log     *slog.Logger

	mu       sync.Mutex
	subjects []domain.Subject
	cards    map[string][]domain.Flashcard
	loaded   bool

	writes sync.WaitGroup
}

// NewSubjectStore creates the composite store. Call Load before mutating.
func NewSubjectStore(devices kv.Store, log *slog.Logger) *SubjectStore {
	return &SubjectStore{
		devices: devices,
		log:     log,
		cards:   make(map[string][]domain.Flashcard),
	}
}

// Load reads both persisted collections. Attempted exactly once per
// process; unparseable or missing values leave the matching collection
// empty.
func (s *SubjectStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}
	s.loaded = true

	if raw, ok, err := s.devices.Get(ctx, KeySubjects); err != nil {
		s.log.Error("loading subjects", "error", err)
	} else if ok {
		var subjects []domain.Subject
		if err := json.Unmarshal([]byte(raw), &subjects); err != nil {
			s.log.Error("parsing stored subjects, starting empty", "error", err)
		} else {
			s.subjects = subjects
		}
	}

	if raw, ok, err := s.devices.Get(ctx, KeyFlashcards); err != nil {
		s.log.Error("loading flashcards", "error", err)
	} else if ok {
		var cards map[string][]domain.Flashcard
		if err := json.Unmarshal([]byte(raw), &cards); err != nil {
			s.log.Error("parsing stored flashcards, starting empty", "error", err)
		} else if cards != nil {
			s.cards = cards
		}
	}
}

// Ready reports whether the initial load has completed.
func (s *SubjectStore) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Subjects returns a snapshot copy of the subjects in insertion order.
func (s *SubjectStore) Subjects() []domain.Subject {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Subject, len(s.subjects))
	copy(out, s.subjects)
	return out
}

// GetSubject returns the subject with the given id.
func (s *SubjectStore) GetSubject(id string) (domain.Subject, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, subject := range s.subjects {
		if subject.ID == id {
			return subject, true
		}
	}
	return domain.Subject{}, false
}

// AddSubject appends the subject and schedules persistence.
func (s *SubjectStore) AddSubject(subject domain.Subject) {
	s.mu.Lock()
	s.subjects = append(s.subjects, subject)
	entries := s.subjectEntriesLocked()
	s.mu.Unlock()
	s.persist(entries)
}

// UpdateSubject replaces the subject with a matching id; a missing id is a
// no-op on the collection.
func (s *SubjectStore) UpdateSubject(subject domain.Subject) {
	s.mu.Lock()
	for i, existing := range s.subjects {
		if existing.ID == subject.ID {
			s.subjects[i] = subject
			break
		}
	}
	entries := s.subjectEntriesLocked()
	s.mu.Unlock()
	s.persist(entries)
}

// DeleteSubject removes the subject and its whole flashcard partition, then
// persists both snapshots as one batch.
func (s *SubjectStore) DeleteSubject(id string) {
	s.mu.Lock()
	kept := s.subjects[:0]
	for _, subject := range s.subjects {
		if subject.ID != id {
			kept = append(kept, subject)
		}
	}
	s.subjects = kept
	delete(s.cards, id)
	entries := s.bothEntriesLocked()
	s.mu.Unlock()
	s.persist(entries)
}

// FlashcardsBySubject returns the ordered cards for the subject, or an
// empty slice when it has none. Never nil.
func (s *SubjectStore) FlashcardsBySubject(subjectID string) []domain.Flashcard {
	s.mu.Lock()
	defer s.mu.Unlock()
	cards := s.cards[subjectID]
	out := make([]domain.Flashcard, len(cards))
	copy(out, cards)
	return out
}

// FlashcardsBySubjectMap returns a snapshot of the whole partition map.
func (s *SubjectStore) FlashcardsBySubjectMap() map[string][]domain.Flashcard {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string][]domain.Flashcard, len(s.cards))
	for id, cards := range s.cards {
		copied := make([]domain.Flashcard, len(cards))
		copy(copied, cards)
		out[id] = copied
	}
	return out
}

// TotalFlashcards returns the number of cards across all subjects.
func (s *SubjectStore) TotalFlashcards() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, cards := range s.cards {
		total += len(cards)
	}
	return total
}

// AddFlashcard appends a card to the subject's partition, creating the
// partition if needed.
func (s *SubjectStore) AddFlashcard(subjectID string, card domain.Flashcard) {
	s.mu.Lock()
	s.cards[subjectID] = append(s.cards[subjectID], card)
	entries := s.cardEntriesLocked()
	s.mu.Unlock()
	s.persist(entries)
}

// UpdateFlashcard replaces the card with a matching id within the
// subject's partition; a missing id is a no-op on the partition.
func (s *SubjectStore) UpdateFlashcard(subjectID string, card domain.Flashcard) {
	s.mu.Lock()
	for i, existing := range s.cards[subjectID] {
		if existing.ID == card.ID {
			s.cards[subjectID][i] = card
			break
		}
	}
	entries := s.cardEntriesLocked()
	s.mu.Unlock()
	s.persist(entries)
}

// DeleteFlashcard removes one card from the subject's partition.
func (s *SubjectStore) DeleteFlashcard(subjectID, cardID string) {
	s.mu.Lock()
	cards := s.cards[subjectID]
	kept := cards[:0]
	for _, card := range cards {
		if card.ID != cardID {
			kept = append(kept, card)
		}
	}
	s.cards[subjectID] = kept
	entries := s.cardEntriesLocked()
	s.mu.Unlock()
	s.persist(entries)
}

// Flush blocks until every scheduled write has finished.
func (s *SubjectStore) Flush() {
	s.writes.Wait()
}

func (s *SubjectStore) subjectEntriesLocked() []kv.Entry {
	if !s.loaded {
		return nil
	}
	raw, err := s.marshalSubjectsLocked()
	if err != nil {
		s.log.Error("serializing subjects", "error", err)
		return nil
	}
	return []kv.Entry{{Key: KeySubjects, Value: raw}}
}

func (s *SubjectStore) cardEntriesLocked() []kv.Entry {
	if !s.loaded {
		return nil
	}
	raw, err := s.marshalCardsLocked()
	if err != nil {
		s.log.Error("serializing flashcards", "error", err)
		return nil
	}
	return []kv.Entry{{Key: KeyFlashcards, Value: raw}}
}

func (s *SubjectStore) bothEntriesLocked() []kv.Entry {
	if !s.loaded {
		return nil
	}
	subjectsRaw, err := s.marshalSubjectsLocked()
	if err != nil {
		s.log.Error("serializing subjects", "error", err)
		return nil
	}
	cardsRaw, err := s.marshalCardsLocked()
	if err != nil {
		s.log.Error("serializing flashcards", "error", err)
		return nil
	}
	return []kv.Entry{
		{Key: KeySubjects, Value: subjectsRaw},
		{Key: KeyFlashcards, Value: cardsRaw},
	}
}

func (s *SubjectStore) marshalSubjectsLocked() (string, error) {
	subjects := s.subjects
	if subjects == nil {
		subjects = []domain.Subject{}
	}
	raw, err := json.Marshal(subjects)
	return string(raw), err
}

func (s *SubjectStore) marshalCardsLocked() (string, error) {
	raw, err := json.Marshal(s.cards)
	return string(raw), err
}

// persist schedules a fire-and-forget write of the given snapshots.
// Multi-key entries go through kv.SetAll so batch-capable stores apply
// them atomically.
func (s *SubjectStore) persist(entries []kv.Entry) {
	if len(entries) == 0 {
		return
	}
	s.writes.Add(1)
	go func() {
		defer s.writes.Done()
		if err := kv.SetAll(context.Background(), s.devices, entries); err != nil {
			s.log.Error("persisting subject collections", "error", err)
		}
	}()
}
