// Package stats computes derived views over collection snapshots. All
// functions are pure; callers pass the snapshots they already hold.
package stats

import (
	"time"

	"github.com/lmonteiro/studa/internal/domain"
)

// WeekdayLabels are the chart labels for the seven weekday buckets,
// Sunday-first to match time.Weekday numbering.
var WeekdayLabels = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// DailyStudyMinutes buckets session durations by the weekday of their date,
// Sunday-first. Weekdays without sessions report 0. Sessions whose date
// cannot be parsed are skipped.
func DailyStudyMinutes(sessions []domain.StudySession) [7]int {
	var minutes [7]int
	for _, s := range sessions {
		day, err := s.Day()
		if err != nil {
			continue
		}
		minutes[int(day.Weekday())] += s.DurationMin
	}
	return minutes
}

// TotalHoursForSubject sums the duration of the subject's sessions,
// expressed in hours. No rounding is applied; display formatting is the
// caller's concern.
func TotalHoursForSubject(sessions []domain.StudySession, subjectID string) float64 {
	total := 0
	for _, s := range sessions {
		if s.SubjectID == subjectID {
			total += s.DurationMin
		}
	}
	return float64(total) / 60
}

// GoalBuckets groups goals by status.
type GoalBuckets struct {
	Active    []domain.Goal
	Completed []domain.Goal
	Cancelled []domain.Goal
}

// PartitionGoalsByStatus splits goals into active, completed and cancelled
// buckets. Cancelled goals get their own bucket rather than counting as
// active.
func PartitionGoalsByStatus(goals []domain.Goal) GoalBuckets {
	var buckets GoalBuckets
	for _, g := range goals {
		switch g.Status {
		case domain.GoalCompleted:
			buckets.Completed = append(buckets.Completed, g)
		case domain.GoalCancelled:
			buckets.Cancelled = append(buckets.Cancelled, g)
		default:
			buckets.Active = append(buckets.Active, g)
		}
	}
	return buckets
}

// OverdueGoals returns the active goals whose deadline is strictly before
// the given day.
func OverdueGoals(goals []domain.Goal, now time.Time) []domain.Goal {
	today := now.Truncate(24 * time.Hour)
	var overdue []domain.Goal
	for _, g := range PartitionGoalsByStatus(goals).Active {
		deadline, err := time.Parse(domain.DateLayout, g.Deadline)
		if err != nil {
			continue
		}
		if deadline.Before(today) {
			overdue = append(overdue, g)
		}
	}
	return overdue
}
