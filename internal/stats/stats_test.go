package stats

import (
	"testing"
	"time"

	"github.com/lmonteiro/studa/internal/domain"
	"github.com/lmonteiro/studa/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyStudyMinutes(t *testing.T) {
	// 2026-09-07 is a Monday.
	sessions := []domain.StudySession{
		testutil.NewTestSession("s1", testutil.WithDate("2026-09-07"), testutil.WithDuration(50)),
		testutil.NewTestSession("s1", testutil.WithDate("2026-09-07"), testutil.WithDuration(25)),
	}

	minutes := DailyStudyMinutes(sessions)

	assert.Equal(t, 75, minutes[int(time.Monday)])
	for day := 0; day < 7; day++ {
		if day == int(time.Monday) {
			continue
		}
		assert.Equal(t, 0, minutes[day], "weekday %d has no sessions", day)
	}
}

func TestDailyStudyMinutes_SkipsUnparseableDates(t *testing.T) {
	sessions := []domain.StudySession{
		testutil.NewTestSession("s1", testutil.WithDate("not-a-date")),
		testutil.NewTestSession("s1", testutil.WithDate("2026-09-06"), testutil.WithDuration(30)), // Sunday
	}
	minutes := DailyStudyMinutes(sessions)
	assert.Equal(t, 30, minutes[int(time.Sunday)])
}

func TestDailyStudyMinutes_AcceptsTimestamps(t *testing.T) {
	sessions := []domain.StudySession{
		testutil.NewTestSession("s1", testutil.WithDate("2026-09-08T09:30:00Z"), testutil.WithDuration(40)), // Tuesday
	}
	minutes := DailyStudyMinutes(sessions)
	assert.Equal(t, 40, minutes[int(time.Tuesday)])
}

func TestTotalHoursForSubject(t *testing.T) {
	sessions := []domain.StudySession{
		testutil.NewTestSession("s1", testutil.WithDuration(90)),
		testutil.NewTestSession("s1", testutil.WithDuration(30)),
		testutil.NewTestSession("other", testutil.WithDuration(600)),
	}

	assert.InDelta(t, 2.0, TotalHoursForSubject(sessions, "s1"), 1e-9)
	assert.InDelta(t, 0.5, TotalHoursForSubject(sessions[1:2], "s1"), 1e-9, "no rounding is applied")
	assert.Zero(t, TotalHoursForSubject(sessions, "unknown"))
}

func TestPartitionGoalsByStatus(t *testing.T) {
	active := testutil.NewTestGoal("Active")
	done := testutil.NewTestGoal("Done", testutil.WithStatus(domain.GoalCompleted))
	cancelled := testutil.NewTestGoal("Cancelled", testutil.WithStatus(domain.GoalCancelled))

	buckets := PartitionGoalsByStatus([]domain.Goal{active, done, cancelled})

	require.Len(t, buckets.Active, 1)
	assert.Equal(t, active.ID, buckets.Active[0].ID)
	require.Len(t, buckets.Completed, 1)
	assert.Equal(t, done.ID, buckets.Completed[0].ID)
	require.Len(t, buckets.Cancelled, 1)
	assert.Equal(t, cancelled.ID, buckets.Cancelled[0].ID, "cancelled goals are not lumped into active")
}

func TestOverdueGoals(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	overdue := testutil.NewTestGoal("Late")
	overdue.Deadline = "2026-09-01"
	upcoming := testutil.NewTestGoal("Soon")
	upcoming.Deadline = "2026-09-20"
	doneLate := testutil.NewTestGoal("Done late", testutil.WithStatus(domain.GoalCompleted))
	doneLate.Deadline = "2026-09-01"

	got := OverdueGoals([]domain.Goal{overdue, upcoming, doneLate}, now)
	require.Len(t, got, 1)
	assert.Equal(t, overdue.ID, got[0].ID)
}
