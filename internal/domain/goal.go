package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO date format used for goal and session date fields.
const DateLayout = "2006-01-02"

// Goal is a tracked objective with a deadline, priority and completion
// progress. Progress is an integer percentage (0-100); status is derived
// from progress through SetProgress and ToggleStatus so the two cannot
// drift apart.
type Goal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	StartDate   string     `json:"startDate,omitempty"`
	Deadline    string     `json:"deadline"`
	Progress    int        `json:"progress"`
	Status      GoalStatus `json:"status"`
	SubjectID   string     `json:"subjectId,omitempty"`
}

// EntityID returns the goal's collection identity.
func (g Goal) EntityID() string { return g.ID }

// Validate checks the fields required before a goal may be stored.
func (g *Goal) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return fmt.Errorf("goal title is required")
	}
	if g.Priority != "" && !ValidPriorities[g.Priority] {
		return fmt.Errorf("goal priority %q must be one of Alta, Média, Baixa", g.Priority)
	}
	if g.Status != "" && !ValidGoalStatuses[g.Status] {
		return fmt.Errorf("goal status %q is not recognized", g.Status)
	}
	if g.Progress < 0 || g.Progress > 100 {
		return fmt.Errorf("goal progress %d must be between 0 and 100", g.Progress)
	}
	deadline, err := parseDate(g.Deadline)
	if err != nil {
		return fmt.Errorf("goal deadline: %w", err)
	}
	if g.StartDate != "" {
		start, err := parseDate(g.StartDate)
		if err != nil {
			return fmt.Errorf("goal start date: %w", err)
		}
		if deadline.Before(start) {
			return fmt.Errorf("goal deadline %s cannot be before start date %s", g.Deadline, g.StartDate)
		}
	}
	return nil
}

// SetProgress updates the progress percentage and derives the matching
// status: 100 means completed, anything less reopens a completed goal.
// Cancelled goals keep their status regardless of progress.
func (g *Goal) SetProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return fmt.Errorf("progress %d must be between 0 and 100", progress)
	}
	g.Progress = progress
	if g.Status == GoalCancelled {
		return nil
	}
	if progress == 100 {
		g.Status = GoalCompleted
	} else {
		g.Status = GoalInProgress
	}
	return nil
}

// ToggleStatus flips a goal between completed (progress 100) and in
// progress (progress 0). Toggling a cancelled goal reopens it.
func (g *Goal) ToggleStatus() {
	if g.Status == GoalCompleted {
		g.Status = GoalInProgress
		g.Progress = 0
		return
	}
	g.Status = GoalCompleted
	g.Progress = 100
}

// Cancel marks the goal cancelled, preserving its current progress.
func (g *Goal) Cancel() {
	g.Status = GoalCancelled
}

func parseDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must use the YYYY-MM-DD format", value)
	}
	return t, nil
}
