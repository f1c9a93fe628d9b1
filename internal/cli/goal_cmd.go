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

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage study goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalEditCmd(app),
		newGoalRemoveCmd(app),
		newGoalToggleCmd(app),
		newGoalProgressCmd(app),
		newGoalCancelCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var title, description, priority, startDate, deadline, subjectRef string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			subjectID := ""
			if subjectRef != "" {
				subject, err := resolveSubject(app, subjectRef)
				if err != nil {
					return err
				}
				subjectID = subject.ID
			}

			if title == "" && app.interactive() {
				if priority == "" {
					priority = string(domain.PriorityMedium)
				}
				form := goalForm(&title, &description, &priority, &startDate, &deadline, app.Subjects.Subjects(), &subjectID)
				if err := form.Run(); err != nil {
					return err
				}
			}

			goal := domain.Goal{
				ID:          uuid.New().String(),
				Title:       title,
				Description: description,
				Priority:    domain.Priority(priority),
				StartDate:   startDate,
				Deadline:    deadline,
				Progress:    0,
				Status:      domain.GoalInProgress,
				SubjectID:   subjectID,
			}
			if err := goal.Validate(); err != nil {
				return err
			}

			app.Goals.Add(goal)
			fmt.Printf("Added goal %s (%s)\n", goal.Title, formatter.TruncID(goal.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Goal title")
	cmd.Flags().StringVar(&description, "desc", "", "Goal description")
	cmd.Flags().StringVar(&priority, "priority", string(domain.PriorityMedium), "Priority: Alta, Média or Baixa")
	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().StringVar(&subjectRef, "subject", "", "Related subject (id or name)")

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals := app.Goals.Items()
			if len(goals) == 0 {
				fmt.Println("No goals yet. Create one with: studa goal add")
				return nil
			}

			buckets := stats.PartitionGoalsByStatus(goals)
			shown := buckets.Active
			if all {
				shown = goals
			}

			headers := []string{"ID", "TITLE", "PRIORITY", "DEADLINE", "PROGRESS", "STATUS"}
			rows := make([][]string, 0, len(shown))
			for _, g := range shown {
				rows = append(rows, []string{
					formatter.TruncID(g.ID),
					g.Title,
					formatter.PriorityStyle(g.Priority).Render(string(g.Priority)),
					g.Deadline,
					formatter.RenderProgress(g.Progress, 10),
					formatter.StatusIndicator(g.Status),
				})
			}

			fmt.Print(formatter.RenderBox("Goals", formatter.RenderTable(headers, rows)))
			fmt.Printf("\n%s\n", formatter.Dim(fmt.Sprintf(
				"%d active · %d completed · %d cancelled",
				len(buckets.Active), len(buckets.Completed), len(buckets.Cancelled))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed and cancelled goals")

	return cmd
}

func newGoalEditCmd(app *App) *cobra.Command {
	var title, description, priority, startDate, deadline string

	cmd := &cobra.Command{
		Use:   "edit GOAL_ID",
		Short: "Edit a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal, err := resolveGoal(app, args[0])
			if err != nil {
				return err
			}

			flagged := cmd.Flags().Changed("title") || cmd.Flags().Changed("desc") ||
				cmd.Flags().Changed("priority") || cmd.Flags().Changed("start") ||
				cmd.Flags().Changed("deadline")
			switch {
			case flagged:
				if cmd.Flags().Changed("title") {
					goal.Title = title
				}
				if cmd.Flags().Changed("desc") {
					goal.Description = description
				}
				if cmd.Flags().Changed("priority") {
					goal.Priority = domain.Priority(priority)
				}
				if cmd.Flags().Changed("start") {
					goal.StartDate = startDate
				}
				if cmd.Flags().Changed("deadline") {
					goal.Deadline = deadline
				}
			case app.interactive():
				title, description = goal.Title, goal.Description
				priority = string(goal.Priority)
				startDate, deadline = goal.StartDate, goal.Deadline
				subjectID := goal.SubjectID
				form := goalForm(&title, &description, &priority, &startDate, &deadline, app.Subjects.Subjects(), &subjectID)
				if err := form.Run(); err != nil {
					return err
				}
				goal.Title, goal.Description = title, description
				goal.Priority = domain.Priority(priority)
				goal.StartDate, goal.Deadline = startDate, deadline
				goal.SubjectID = subjectID
			default:
				return fmt.Errorf("nothing to change: pass --title, --desc, --priority, --start or --deadline")
			}

			if err := goal.Validate(); err != nil {
				return err
			}

			app.Goals.Update(goal)
			fmt.Printf("Updated goal %s\n", goal.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "desc", "", "New description")
	cmd.Flags().StringVar(&priority, "priority", "", "New priority: Alta, Média or Baixa")
	cmd.Flags().StringVar(&startDate, "start", "", "New start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "New deadline (YYYY-MM-DD)")

	return cmd
}

func newGoalRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm GOAL_ID",
		Short: "Remove a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal, err := resolveGoal(app, args[0])
			if err != nil {
				return err
			}
			app.Goals.Remove(goal.ID)
			fmt.Printf("Removed goal %s\n", goal.Title)
			return nil
		},
	}
}

func newGoalToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle GOAL_ID",
		Short: "Toggle a goal between completed and in progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal, err := resolveGoal(app, args[0])
			if err != nil {
				return err
			}

			goal.ToggleStatus()
			app.Goals.Update(goal)
			fmt.Printf("%s %s\n", goal.Title, formatter.StatusIndicator(goal.Status))
			return nil
		},
	}
}

func newGoalProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress GOAL_ID PERCENT",
		Short: "Set a goal's progress (status follows automatically)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal, err := resolveGoal(app, args[0])
			if err != nil {
				return err
			}

			pct, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("progress %q must be a whole number", args[1])
			}
			if err := goal.SetProgress(pct); err != nil {
				return err
			}

			app.Goals.Update(goal)
			fmt.Printf("%s %s %s\n", goal.Title, formatter.RenderProgress(goal.Progress, 10), formatter.StatusIndicator(goal.Status))
			return nil
		},
	}
}

func newGoalCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel GOAL_ID",
		Short: "Cancel a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal, err := resolveGoal(app, args[0])
			if err != nil {
				return err
			}

			goal.Cancel()
			app.Goals.Update(goal)
			fmt.Printf("Cancelled goal %s\n", goal.Title)
			return nil
		},
	}
}
