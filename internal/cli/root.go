package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "studa" command and registers all
// subcommands against the provided App. Every command's mutations are
// flushed to the device store before the process exits.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "studa",
		Short: "Local study manager: subjects, flashcards, goals and sessions",
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.Flush()
		},
	}

	root.AddCommand(
		newSubjectCmd(app),
		newCardCmd(app),
		newGoalCmd(app),
		newSessionCmd(app),
		newReviewCmd(app),
		newDashboardCmd(app),
		newFocusCmd(app),
	)

	return root
}
