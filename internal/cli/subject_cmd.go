package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lmonteiro/studa/internal/cli/formatter"
	"github.com/lmonteiro/studa/internal/domain"
	"github.com/spf13/cobra"
)

func newSubjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subject",
		Short: "Manage study subjects",
	}

	cmd.AddCommand(
		newSubjectAddCmd(app),
		newSubjectListCmd(app),
		newSubjectEditCmd(app),
		newSubjectRemoveCmd(app),
	)

	return cmd
}

func newSubjectAddCmd(app *App) *cobra.Command {
	var name, description, color string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && app.interactive() {
				if err := subjectForm(&name, &description, &color).Run(); err != nil {
					return err
				}
			}

			subject := domain.Subject{
				ID:          uuid.New().String(),
				Name:        name,
				Description: description,
				Color:       color,
				OwnerID:     "local",
			}
			if err := subject.Validate(); err != nil {
				return err
			}

			app.Subjects.AddSubject(subject)
			fmt.Printf("Added subject %s (%s)\n", subject.Name, formatter.TruncID(subject.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Subject name")
	cmd.Flags().StringVar(&description, "desc", "", "Subject description")
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex)")

	return cmd
}

func newSubjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects := app.Subjects.Subjects()
			if len(subjects) == 0 {
				fmt.Println("No subjects yet. Create one with: studa subject add")
				return nil
			}

			headers := []string{"ID", "NAME", "CARDS", "DESCRIPTION"}
			rows := make([][]string, 0, len(subjects))
			for _, s := range subjects {
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					formatter.Swatch(s.Color) + " " + s.Name,
					fmt.Sprintf("%d", len(app.Subjects.FlashcardsBySubject(s.ID))),
					formatter.Dim(s.Description),
				})
			}

			fmt.Print(formatter.RenderBox("Subjects", formatter.RenderTable(headers, rows)))
			fmt.Println()
			return nil
		},
	}
}

func newSubjectEditCmd(app *App) *cobra.Command {
	var name, description, color string

	cmd := &cobra.Command{
		Use:   "edit SUBJECT",
		Short: "Rename or recolor a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, err := resolveSubject(app, args[0])
			if err != nil {
				return err
			}

			flagged := cmd.Flags().Changed("name") || cmd.Flags().Changed("desc") || cmd.Flags().Changed("color")
			switch {
			case flagged:
				if cmd.Flags().Changed("name") {
					subject.Name = name
				}
				if cmd.Flags().Changed("desc") {
					subject.Description = description
				}
				if cmd.Flags().Changed("color") {
					subject.Color = color
				}
			case app.interactive():
				name, description, color = subject.Name, subject.Description, subject.Color
				if err := subjectForm(&name, &description, &color).Run(); err != nil {
					return err
				}
				subject.Name, subject.Description, subject.Color = name, description, color
			default:
				return fmt.Errorf("nothing to change: pass --name, --desc or --color")
			}

			if err := subject.Validate(); err != nil {
				return err
			}

			app.Subjects.UpdateSubject(subject)
			fmt.Printf("Updated subject %s\n", subject.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&description, "desc", "", "New description")
	cmd.Flags().StringVar(&color, "color", "", "New display color (hex)")

	return cmd
}

func newSubjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm SUBJECT",
		Short: "Remove a subject and all of its flashcards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, err := resolveSubject(app, args[0])
			if err != nil {
				return err
			}

			cards := len(app.Subjects.FlashcardsBySubject(subject.ID))
			app.Subjects.DeleteSubject(subject.ID)
			fmt.Printf("Removed subject %s and %d flashcard(s)\n", subject.Name, cards)
			return nil
		},
	}
}
