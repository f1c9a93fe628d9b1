package cli

import (
	"fmt"
	"strings"

	"github.com/lmonteiro/studa/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newFocusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "focus [TEXT]",
		Short: "Show or set the current study focus note",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				text := app.Focus.Text()
				if text == "" {
					fmt.Println("No focus set. Set one with: studa focus \"pass the calculus exam\"")
					return nil
				}
				fmt.Println(formatter.Bold(text))
				return nil
			}

			text := strings.Join(args, " ")
			app.Focus.SetText(text)
			fmt.Printf("Focus set: %s\n", text)
			return nil
		},
	}
}
