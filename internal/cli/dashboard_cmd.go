package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/lmonteiro/studa/internal/cli/formatter"
	"github.com/lmonteiro/studa/internal/stats"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show an overview of subjects, goals and study time",
		RunE: func(cmd *cobra.Command, args []string) error {
			var b strings.Builder

			if focus := app.Focus.Text(); focus != "" {
				fmt.Fprintf(&b, "%s %s\n\n", formatter.Dim("Focus:"), formatter.Bold(focus))
			}

			subjects := app.Subjects.Subjects()
			goals := app.Goals.Items()
			sessions := app.Sessions.Items()
			buckets := stats.PartitionGoalsByStatus(goals)

			fmt.Fprintf(&b, "%s\n", formatter.Header("Totals"))
			fmt.Fprintf(&b, "%d subjects · %d flashcards · %d goals · %d sessions\n\n",
				len(subjects), app.Subjects.TotalFlashcards(), len(goals), len(sessions))

			fmt.Fprintf(&b, "%s\n", formatter.Header("Goals"))
			fmt.Fprintf(&b, "%s %d in progress   %s %d completed   %s %d cancelled\n",
				formatter.StyleYellow.Render("●"), len(buckets.Active),
				formatter.StyleGreen.Render("●"), len(buckets.Completed),
				formatter.StyleDim.Render("●"), len(buckets.Cancelled))
			if overdue := stats.OverdueGoals(goals, time.Now()); len(overdue) > 0 {
				fmt.Fprintf(&b, "%s\n", formatter.StyleRed.Render(fmt.Sprintf("%d overdue", len(overdue))))
			}
			b.WriteString("\n")

			fmt.Fprintf(&b, "%s\n", formatter.Header("Study minutes by weekday"))
			minutes := stats.DailyStudyMinutes(sessions)
			b.WriteString(formatter.RenderBarChart(stats.WeekdayLabels[:], minutes[:], 30))
			b.WriteString("\n")

			if len(subjects) > 0 {
				fmt.Fprintf(&b, "%s\n", formatter.Header("Hours by subject"))
				headers := []string{"SUBJECT", "CARDS", "HOURS"}
				rows := make([][]string, 0, len(subjects))
				for _, s := range subjects {
					rows = append(rows, []string{
						formatter.Swatch(s.Color) + " " + s.Name,
						fmt.Sprintf("%d", len(app.Subjects.FlashcardsBySubject(s.ID))),
						fmt.Sprintf("%.1f", stats.TotalHoursForSubject(sessions, s.ID)),
					})
				}
				b.WriteString(formatter.RenderTable(headers, rows))
			}

			fmt.Print(formatter.RenderBox("studa", b.String()))
			fmt.Println()
			return nil
		},
	}
}
