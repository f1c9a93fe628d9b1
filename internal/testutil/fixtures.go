package testutil

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lmonteiro/studa/internal/domain"
)

// DiscardLogger returns a logger for tests that keeps store noise out of
// test output.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SubjectOption customizes a test subject.
type SubjectOption func(*domain.Subject)

// WithColor sets the subject color.
func WithColor(color string) SubjectOption {
	return func(s *domain.Subject) { s.Color = color }
}

// WithSubjectID pins the subject id instead of generating one.
func WithSubjectID(id string) SubjectOption {
	return func(s *domain.Subject) { s.ID = id }
}

// NewTestSubject creates a valid subject with the given name.
func NewTestSubject(name string, opts ...SubjectOption) domain.Subject {
	s := domain.Subject{
		ID:      uuid.New().String(),
		Name:    name,
		Color:   "#FF0000",
		OwnerID: "u1",
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewTestFlashcard creates a valid flashcard owned by the given subject.
func NewTestFlashcard(subjectID, question string) domain.Flashcard {
	return domain.Flashcard{
		ID:        uuid.New().String(),
		SubjectID: subjectID,
		Question:  question,
		Answer:    "answer to " + question,
	}
}

// GoalOption customizes a test goal.
type GoalOption func(*domain.Goal)

// WithStatus sets the goal status (and a matching progress value).
func WithStatus(status domain.GoalStatus) GoalOption {
	return func(g *domain.Goal) {
		g.Status = status
		if status == domain.GoalCompleted {
			g.Progress = 100
		}
	}
}

// WithPriority sets the goal priority.
func WithPriority(p domain.Priority) GoalOption {
	return func(g *domain.Goal) { g.Priority = p }
}

// NewTestGoal creates a valid in-progress goal with the given title.
func NewTestGoal(title string, opts ...GoalOption) domain.Goal {
	g := domain.Goal{
		ID:       uuid.New().String(),
		Title:    title,
		Priority: domain.PriorityMedium,
		Deadline: "2026-12-31",
		Status:   domain.GoalInProgress,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// SessionOption customizes a test session.
type SessionOption func(*domain.StudySession)

// WithDate sets the session date (YYYY-MM-DD).
func WithDate(date string) SessionOption {
	return func(s *domain.StudySession) { s.Date = date }
}

// WithDuration sets the session duration in minutes.
func WithDuration(minutes int) SessionOption {
	return func(s *domain.StudySession) { s.DurationMin = minutes }
}

// NewTestSession creates a valid session for the given subject.
func NewTestSession(subjectID string, opts ...SessionOption) domain.StudySession {
	s := domain.StudySession{
		ID:          uuid.New().String(),
		SubjectID:   subjectID,
		Topic:       "review",
		Date:        "2026-09-07",
		Time:        "14:00",
		DurationMin: 50,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
