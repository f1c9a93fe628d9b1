package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lmonteiro/studa/internal/cli/formatter"
	"github.com/lmonteiro/studa/internal/domain"
	"github.com/spf13/cobra"
)

func newCardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage flashcards",
	}

	cmd.AddCommand(
		newCardAddCmd(app),
		newCardListCmd(app),
		newCardEditCmd(app),
		newCardRemoveCmd(app),
	)

	return cmd
}

func newCardAddCmd(app *App) *cobra.Command {
	var subjectRef, question, answer string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a flashcard to a subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, err := resolveSubject(app, subjectRef)
			if err != nil {
				return err
			}

			if question == "" && app.interactive() {
				if err := cardForm(&question, &answer).Run(); err != nil {
					return err
				}
			}

			card := domain.Flashcard{
				ID:        uuid.New().String(),
				SubjectID: subject.ID,
				Question:  question,
				Answer:    answer,
			}
			if err := card.Validate(); err != nil {
				return err
			}

			app.Subjects.AddFlashcard(subject.ID, card)
			fmt.Printf("Added flashcard to %s (%s)\n", subject.Name, formatter.TruncID(card.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectRef, "subject", "", "Owning subject (id or name)")
	cmd.Flags().StringVar(&question, "question", "", "Card question")
	cmd.Flags().StringVar(&answer, "answer", "", "Card answer")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func newCardListCmd(app *App) *cobra.Command {
	var subjectRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a subject's flashcards",
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, err := resolveSubject(app, subjectRef)
			if err != nil {
				return err
			}

			cards := app.Subjects.FlashcardsBySubject(subject.ID)
			if len(cards) == 0 {
				fmt.Printf("No flashcards for %s yet.\n", subject.Name)
				return nil
			}

			headers := []string{"ID", "QUESTION", "ANSWER"}
			rows := make([][]string, 0, len(cards))
			for _, card := range cards {
				rows = append(rows, []string{
					formatter.TruncID(card.ID),
					card.Question,
					formatter.Dim(card.Answer),
				})
			}

			fmt.Print(formatter.RenderBox(subject.Name, formatter.RenderTable(headers, rows)))
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectRef, "subject", "", "Subject (id or name)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func newCardEditCmd(app *App) *cobra.Command {
	var subjectRef, question, answer string

	cmd := &cobra.Command{
		Use:   "edit CARD_ID",
		Short: "Edit a flashcard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, err := resolveSubject(app, subjectRef)
			if err != nil {
				return err
			}

			card, ok := findCard(app, subject.ID, args[0])
			if !ok {
				return fmt.Errorf("no flashcard matches %q in %s", args[0], subject.Name)
			}

			flagged := cmd.Flags().Changed("question") || cmd.Flags().Changed("answer")
			switch {
			case flagged:
				if cmd.Flags().Changed("question") {
					card.Question = question
				}
				if cmd.Flags().Changed("answer") {
					card.Answer = answer
				}
			case app.interactive():
				question, answer = card.Question, card.Answer
				if err := cardForm(&question, &answer).Run(); err != nil {
					return err
				}
				card.Question, card.Answer = question, answer
			default:
				return fmt.Errorf("nothing to change: pass --question or --answer")
			}

			if err := card.Validate(); err != nil {
				return err
			}

			app.Subjects.UpdateFlashcard(subject.ID, card)
			fmt.Printf("Updated flashcard %s\n", formatter.TruncID(card.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectRef, "subject", "", "Owning subject (id or name)")
	cmd.Flags().StringVar(&question, "question", "", "New question")
	cmd.Flags().StringVar(&answer, "answer", "", "New answer")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func newCardRemoveCmd(app *App) *cobra.Command {
	var subjectRef string

	cmd := &cobra.Command{
		Use:   "rm CARD_ID",
		Short: "Remove a flashcard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, err := resolveSubject(app, subjectRef)
			if err != nil {
				return err
			}

			card, ok := findCard(app, subject.ID, args[0])
			if !ok {
				return fmt.Errorf("no flashcard matches %q in %s", args[0], subject.Name)
			}

			app.Subjects.DeleteFlashcard(subject.ID, card.ID)
			fmt.Printf("Removed flashcard %s\n", formatter.TruncID(card.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectRef, "subject", "", "Owning subject (id or name)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

// findCard locates a card in the subject's partition by id or id prefix.
func findCard(app *App, subjectID, ref string) (domain.Flashcard, bool) {
	var match domain.Flashcard
	found := 0
	for _, card := range app.Subjects.FlashcardsBySubject(subjectID) {
		if card.ID == ref {
			return card, true
		}
		if len(ref) > 0 && len(card.ID) >= len(ref) && card.ID[:len(ref)] == ref {
			match = card
			found++
		}
	}
	return match, found == 1
}
