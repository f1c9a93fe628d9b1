package cli

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lmonteiro/studa/internal/domain"
	"github.com/lmonteiro/studa/internal/review"
	"github.com/lmonteiro/studa/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeck(t *testing.T) []review.AnnotatedCard {
	t.Helper()
	math := testutil.NewTestSubject("Math", testutil.WithColor("#FF5733"))
	hist := testutil.NewTestSubject("History", testutil.WithColor("#2E86C1"))
	deck := review.BuildMixedDeck(
		[]domain.Subject{math, hist},
		map[string][]domain.Flashcard{
			math.ID: {testutil.NewTestFlashcard(math.ID, "2+2?")},
			hist.ID: {testutil.NewTestFlashcard(hist.ID, "When was 1822?")},
		},
		rand.New(rand.NewSource(7)),
	)
	require.Len(t, deck, 2)
	return deck
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestReviewModelFlipShowsAnswer(t *testing.T) {
	m := newReviewModel(testDeck(t), nil)
	assert.Contains(t, m.View(), "Q: ")

	updated, _ := m.Update(keyPress('f'))
	m = updated.(reviewModel)
	assert.Contains(t, m.View(), "A: ")

	updated, _ = m.Update(keyPress('f'))
	m = updated.(reviewModel)
	assert.Contains(t, m.View(), "Q: ")
}

func TestReviewModelNextResetsFlip(t *testing.T) {
	m := newReviewModel(testDeck(t), nil)

	updated, _ := m.Update(keyPress('f'))
	m = updated.(reviewModel)
	updated, _ = m.Update(keyPress('n'))
	m = updated.(reviewModel)

	assert.Equal(t, 1, m.index)
	assert.False(t, m.flipped)
	assert.Contains(t, m.View(), "2/2")
}

func TestReviewModelFinishesAfterLastCard(t *testing.T) {
	m := newReviewModel(testDeck(t), nil)

	updated, _ := m.Update(keyPress('n'))
	m = updated.(reviewModel)
	updated, _ = m.Update(keyPress('n'))
	m = updated.(reviewModel)

	assert.True(t, m.finished)
	assert.Contains(t, m.View(), "Reviewed all 2 cards")
}

func TestReviewModelReshuffleRestarts(t *testing.T) {
	m := newReviewModel(testDeck(t), rand.New(rand.NewSource(1)))

	updated, _ := m.Update(keyPress('n'))
	m = updated.(reviewModel)
	updated, _ = m.Update(keyPress('n'))
	m = updated.(reviewModel)
	require.True(t, m.finished)

	updated, _ = m.Update(keyPress('r'))
	m = updated.(reviewModel)

	assert.False(t, m.finished)
	assert.Equal(t, 0, m.index)
	assert.Contains(t, m.View(), "1/2")
}

func TestReviewModelQuit(t *testing.T) {
	m := newReviewModel(testDeck(t), nil)

	_, cmd := m.Update(keyPress('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestReviewModelCardShowsSubjectName(t *testing.T) {
	m := newReviewModel(testDeck(t), nil)
	view := m.View()
	hasName := strings.Contains(view, "Math") || strings.Contains(view, "History")
	assert.True(t, hasName)
}
