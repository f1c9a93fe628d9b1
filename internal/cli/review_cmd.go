package cli

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lmonteiro/studa/internal/cli/formatter"
	"github.com/lmonteiro/studa/internal/domain"
	"github.com/lmonteiro/studa/internal/review"
	"github.com/spf13/cobra"
)

func newReviewCmd(app *App) *cobra.Command {
	var subjectRef string
	var seed int64

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review flashcards as a shuffled mixed deck",
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects := app.Subjects.Subjects()
			if subjectRef != "" {
				subject, err := resolveSubject(app, subjectRef)
				if err != nil {
					return err
				}
				subjects = []domain.Subject{subject}
			}

			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewSource(seed))
			}

			deck := review.BuildMixedDeck(subjects, app.Subjects.FlashcardsBySubjectMap(), rng)
			if len(deck) == 0 {
				return fmt.Errorf("nothing to review: add flashcards first with: studa card add")
			}

			program := tea.NewProgram(newReviewModel(deck, rng), tea.WithAltScreen())
			_, err := program.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&subjectRef, "subject", "", "Review a single subject (id or name)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Shuffle seed for a reproducible deck order")

	return cmd
}

// ── model ────────────────────────────────────────────────────────────────────

type reviewKeyMap struct {
	Flip      key.Binding
	Next      key.Binding
	Reshuffle key.Binding
	Quit      key.Binding
}

func defaultReviewKeys() reviewKeyMap {
	return reviewKeyMap{
		Flip:      key.NewBinding(key.WithKeys(" ", "enter", "f"), key.WithHelp("space", "flip")),
		Next:      key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n", "next")),
		Reshuffle: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reshuffle")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// reviewModel pages through a shuffled deck: show the question, flip to the
// answer, advance. Reaching the end shows a summary with the option to
// reshuffle and go again.
type reviewModel struct {
	deck     []review.AnnotatedCard
	rng      *rand.Rand
	keys     reviewKeyMap
	index    int
	flipped  bool
	finished bool
	width    int
}

func newReviewModel(deck []review.AnnotatedCard, rng *rand.Rand) reviewModel {
	return reviewModel{
		deck:  deck,
		rng:   rng,
		keys:  defaultReviewKeys(),
		width: 72,
	}
}

func (m reviewModel) Init() tea.Cmd { return nil }

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Reshuffle):
			review.Shuffle(m.deck, m.rng)
			m.index = 0
			m.flipped = false
			m.finished = false
			return m, nil

		case m.finished:
			return m, nil

		case key.Matches(msg, m.keys.Flip):
			m.flipped = !m.flipped
			return m, nil

		case key.Matches(msg, m.keys.Next):
			if m.index < len(m.deck)-1 {
				m.index++
				m.flipped = false
			} else {
				m.finished = true
			}
			return m, nil
		}
	}
	return m, nil
}

func (m reviewModel) View() string {
	if m.finished {
		summary := fmt.Sprintf("Reviewed all %d cards.", len(m.deck))
		help := formatter.Dim("r reshuffle and restart · q quit")
		return "\n" + formatter.Header("End of review") + "\n\n" + summary + "\n\n" + help + "\n"
	}

	card := m.deck[m.index]

	cardWidth := m.width - 8
	if cardWidth > 64 {
		cardWidth = 64
	}
	if cardWidth < 20 {
		cardWidth = 20
	}

	face := lipgloss.NewStyle().
		Background(lipgloss.Color(card.Color)).
		Foreground(lipgloss.Color(domain.ContrastText(card.Color))).
		Padding(1, 2).
		Width(cardWidth)

	side := "Q: " + card.Question
	if m.flipped {
		side = "A: " + card.Answer
	}

	header := formatter.Bold(card.SubjectName) + formatter.Dim(fmt.Sprintf("  %d/%d", m.index+1, len(m.deck)))
	help := formatter.Dim("space flip · n next · r reshuffle · q quit")

	return "\n" + header + "\n\n" + face.Render(side) + "\n\n" + help + "\n"
}
