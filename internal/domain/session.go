package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// StudySession is a logged or scheduled study interval tied to a subject.
// Sessions are immutable once created; there is no update operation.
type StudySession struct {
	ID          string `json:"id"`
	SubjectID   string `json:"subjectId"`
	Topic       string `json:"topic"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	DurationMin int    `json:"duration"`
}

// EntityID returns the session's collection identity.
func (s StudySession) EntityID() string { return s.ID }

// Validate checks the fields required before a session may be stored.
func (s *StudySession) Validate() error {
	if s.SubjectID == "" {
		return fmt.Errorf("session subject is required")
	}
	if strings.TrimSpace(s.Topic) == "" {
		return fmt.Errorf("session topic is required")
	}
	if s.DurationMin <= 0 {
		return fmt.Errorf("session duration %d must be a positive number of minutes", s.DurationMin)
	}
	if s.Time != "" && !clockPattern.MatchString(s.Time) {
		return fmt.Errorf("session time %q must use the HH:MM format", s.Time)
	}
	if _, err := s.Day(); err != nil {
		return err
	}
	return nil
}

// Day parses the session date, accepting both plain ISO dates and full
// RFC 3339 timestamps (the scheduling screens historically stored either).
func (s *StudySession) Day() (time.Time, error) {
	if t, err := time.Parse(DateLayout, s.Date); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("session date %q must be YYYY-MM-DD or RFC 3339", s.Date)
	}
	return t, nil
}
