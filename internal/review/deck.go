// Package review assembles flashcard decks for review mode.
package review

import (
	"math/rand"
	"time"

	"github.com/lmonteiro/studa/internal/domain"
)

// AnnotatedCard is a flashcard carrying the display context of its owning
// subject, so a mixed deck can render each card in its subject's color.
type AnnotatedCard struct {
	domain.Flashcard
	SubjectName string
	Color       string
}

// BuildMixedDeck flattens every subject with at least one flashcard into a
// single deck and shuffles it uniformly. Cards are annotated with their
// subject's name and color. Pass a seeded rng for reproducible decks; nil
// uses a time-seeded source.
//
// An empty result means there is nothing to review; callers must not enter
// review mode on it.
func BuildMixedDeck(subjects []domain.Subject, cardsBySubject map[string][]domain.Flashcard, rng *rand.Rand) []AnnotatedCard {
	deck := make([]AnnotatedCard, 0)
	for _, subject := range subjects {
		for _, card := range cardsBySubject[subject.ID] {
			deck = append(deck, AnnotatedCard{
				Flashcard:   card,
				SubjectName: subject.Name,
				Color:       subject.Color,
			})
		}
	}
	Shuffle(deck, rng)
	return deck
}

// Shuffle applies a Fisher-Yates shuffle in place: every permutation of the
// deck is equally likely, which keeps mixed review fair across subjects.
func Shuffle(deck []AnnotatedCard, rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	for i := len(deck) - 1; i >= 1; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}
