package review

import (
	"math/rand"
	"testing"

	"github.com/lmonteiro/studa/internal/domain"
	"github.com/lmonteiro/studa/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMixedDeck_Completeness(t *testing.T) {
	subject := testutil.NewTestSubject("A", testutil.WithSubjectID("s1"), testutil.WithColor("#111111"))
	cards := map[string][]domain.Flashcard{
		"s1": {
			{ID: "f1", SubjectID: "s1", Question: "q1", Answer: "a1"},
			{ID: "f2", SubjectID: "s1", Question: "q2", Answer: "a2"},
		},
	}

	// Every input card appears exactly once, in some order, across many
	// shuffles.
	for trial := 0; trial < 50; trial++ {
		rng := rand.New(rand.NewSource(int64(trial)))
		deck := BuildMixedDeck([]domain.Subject{subject}, cards, rng)

		require.Len(t, deck, 2)
		seen := map[string]AnnotatedCard{}
		for _, card := range deck {
			seen[card.ID] = card
		}
		require.Len(t, seen, 2, "no card may be duplicated or dropped")
		assert.Contains(t, seen, "f1")
		assert.Contains(t, seen, "f2")
		for _, card := range seen {
			assert.Equal(t, "A", card.SubjectName)
			assert.Equal(t, "#111111", card.Color)
		}
	}
}

func TestBuildMixedDeck_CrossSubject(t *testing.T) {
	subjects := []domain.Subject{
		testutil.NewTestSubject("Math", testutil.WithSubjectID("s1"), testutil.WithColor("#FF0000")),
		testutil.NewTestSubject("History", testutil.WithSubjectID("s2"), testutil.WithColor("#0000FF")),
		testutil.NewTestSubject("Empty", testutil.WithSubjectID("s3")),
	}
	cards := map[string][]domain.Flashcard{
		"s1": {{ID: "m1", SubjectID: "s1"}},
		"s2": {{ID: "h1", SubjectID: "s2"}, {ID: "h2", SubjectID: "s2"}},
	}

	deck := BuildMixedDeck(subjects, cards, rand.New(rand.NewSource(7)))
	require.Len(t, deck, 3)

	colorByID := map[string]string{}
	for _, card := range deck {
		colorByID[card.ID] = card.Color
	}
	assert.Equal(t, "#FF0000", colorByID["m1"], "cards carry their own subject's color")
	assert.Equal(t, "#0000FF", colorByID["h1"])
}

func TestBuildMixedDeck_Empty(t *testing.T) {
	assert.Empty(t, BuildMixedDeck(nil, nil, nil))

	// Subjects with zero flashcards still yield an empty deck.
	subjects := []domain.Subject{testutil.NewTestSubject("Lonely")}
	deck := BuildMixedDeck(subjects, map[string][]domain.Flashcard{}, nil)
	assert.Empty(t, deck)
}

func TestShuffle_PermutesWithSeededSource(t *testing.T) {
	deck := make([]AnnotatedCard, 10)
	for i := range deck {
		deck[i] = AnnotatedCard{Flashcard: domain.Flashcard{ID: string(rune('a' + i))}}
	}
	original := make([]AnnotatedCard, len(deck))
	copy(original, deck)

	Shuffle(deck, rand.New(rand.NewSource(1)))

	assert.ElementsMatch(t, original, deck)
	assert.NotEqual(t, original, deck, "a 10-card deck virtually never shuffles to itself")
}
