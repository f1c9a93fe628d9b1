package cli

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/lmonteiro/studa/internal/cli/formatter"
	"github.com/lmonteiro/studa/internal/domain"
	"github.com/lmonteiro/studa/internal/stats"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Schedule and list study sessions",
	}

	cmd.AddCommand(
		newSessionAddCmd(app),
		newSessionListCmd(app),
	)

	return cmd
}

func newSessionAddCmd(app *App) *cobra.Command {
	var subjectRef, topic, date, clock string
	var duration int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a study session",
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects := app.Subjects.Subjects()
			if len(subjects) == 0 {
				return fmt.Errorf("no subjects yet; create one first with: studa subject add")
			}

			subjectID := ""
			if subjectRef != "" {
				subject, err := resolveSubject(app, subjectRef)
				if err != nil {
					return err
				}
				subjectID = subject.ID
			}

			if (subjectID == "" || topic == "") && app.interactive() {
				durationStr := "50"
				if duration > 0 {
					durationStr = strconv.Itoa(duration)
				}
				if err := sessionForm(subjects, &subjectID, &topic, &date, &clock, &durationStr).Run(); err != nil {
					return err
				}
				duration, _ = strconv.Atoi(durationStr)
			}

			session := domain.StudySession{
				ID:          uuid.New().String(),
				SubjectID:   subjectID,
				Topic:       topic,
				Date:        date,
				Time:        clock,
				DurationMin: duration,
			}
			if err := session.Validate(); err != nil {
				return err
			}

			app.Sessions.Add(session)
			fmt.Printf("Scheduled %d min session: %s on %s\n", session.DurationMin, session.Topic, session.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectRef, "subject", "", "Subject (id or name)")
	cmd.Flags().StringVar(&topic, "topic", "", "What the session covers")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&clock, "time", "", "Start time (HH:MM)")
	cmd.Flags().IntVar(&duration, "minutes", 50, "Duration in minutes")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var subjectRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List study sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions := app.Sessions.Items()

			subjectFilter := ""
			if subjectRef != "" {
				subject, err := resolveSubject(app, subjectRef)
				if err != nil {
					return err
				}
				subjectFilter = subject.ID
			}

			headers := []string{"ID", "SUBJECT", "TOPIC", "DATE", "TIME", "DURATION"}
			var rows [][]string
			for _, s := range sessions {
				if subjectFilter != "" && s.SubjectID != subjectFilter {
					continue
				}
				name := formatter.Dim("(deleted)")
				if subject, ok := app.Subjects.GetSubject(s.SubjectID); ok {
					name = formatter.Swatch(subject.Color) + " " + subject.Name
				}
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					name,
					s.Topic,
					s.Date,
					s.Time,
					fmt.Sprintf("%d min", s.DurationMin),
				})
			}

			if len(rows) == 0 {
				fmt.Println("No sessions scheduled.")
				return nil
			}

			fmt.Print(formatter.RenderBox("Sessions", formatter.RenderTable(headers, rows)))
			if subjectFilter != "" {
				hours := stats.TotalHoursForSubject(sessions, subjectFilter)
				fmt.Printf("\n%s\n", formatter.Dim(fmt.Sprintf("%.1f hours total", hours)))
			} else {
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectRef, "subject", "", "Filter by subject (id or name)")

	return cmd
}
