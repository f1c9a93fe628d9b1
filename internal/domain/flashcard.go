package domain

import (
	"fmt"
	"strings"
)

// Flashcard is a question/answer pair belonging to exactly one subject.
type Flashcard struct {
	ID        string `json:"id"`
	SubjectID string `json:"subjectId"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
}

// EntityID returns the flashcard's collection identity.
func (f Flashcard) EntityID() string { return f.ID }

// Validate checks the fields required before a flashcard may be stored.
func (f *Flashcard) Validate() error {
	if strings.TrimSpace(f.Question) == "" {
		return fmt.Errorf("flashcard question is required")
	}
	if strings.TrimSpace(f.Answer) == "" {
		return fmt.Errorf("flashcard answer is required")
	}
	return nil
}
