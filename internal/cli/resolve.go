package cli

import (
	"fmt"
	"strings"

	"github.com/lmonteiro/studa/internal/domain"
)

// resolveSubject finds a subject by full id, unique id prefix, or exact
// (case-insensitive) name.
func resolveSubject(app *App, ref string) (domain.Subject, error) {
	if ref == "" {
		return domain.Subject{}, fmt.Errorf("a subject is required (use --subject)")
	}

	if subject, ok := app.Subjects.GetSubject(ref); ok {
		return subject, nil
	}

	var matches []domain.Subject
	for _, subject := range app.Subjects.Subjects() {
		if strings.EqualFold(subject.Name, ref) || strings.HasPrefix(subject.ID, ref) {
			matches = append(matches, subject)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return domain.Subject{}, fmt.Errorf("no subject matches %q", ref)
	default:
		return domain.Subject{}, fmt.Errorf("%q is ambiguous: %d subjects match", ref, len(matches))
	}
}

// resolveGoal finds a goal by full id or unique id prefix.
func resolveGoal(app *App, ref string) (domain.Goal, error) {
	if goal, ok := app.Goals.Get(ref); ok {
		return goal, nil
	}
	var matches []domain.Goal
	for _, goal := range app.Goals.Items() {
		if strings.HasPrefix(goal.ID, ref) {
			matches = append(matches, goal)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return domain.Goal{}, fmt.Errorf("no goal matches %q", ref)
	default:
		return domain.Goal{}, fmt.Errorf("%q is ambiguous: %d goals match", ref, len(matches))
	}
}
