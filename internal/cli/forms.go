package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/lmonteiro/studa/internal/domain"
)

var (
	formHexPattern   = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	formClockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

func validateRequired(field string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateDate(value string) error {
	if _, err := time.Parse(domain.DateLayout, strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("use the YYYY-MM-DD format")
	}
	return nil
}

func validateOptionalDate(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return validateDate(value)
}

func validatePositiveInt(value string) error {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive whole number")
	}
	return nil
}

func validateOptionalHexColor(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if !formHexPattern.MatchString(value) {
		return fmt.Errorf("use a hex color like #FF8800")
	}
	return nil
}

func validateOptionalClock(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if !formClockPattern.MatchString(value) {
		return fmt.Errorf("use the HH:MM format")
	}
	return nil
}

func studaHuhTheme() *huh.Theme {
	return huh.ThemeBase16()
}

// subjectForm collects subject fields, pre-filled for edits.
func subjectForm(name, description, color *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Matemática").
				Value(name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Description").
				Placeholder("What does this subject cover?").
				Value(description),
			huh.NewInput().
				Title("Color (hex, blank for default)").
				Placeholder("#6C5CE7").
				Value(color).
				Validate(validateOptionalHexColor),
		),
	).WithTheme(studaHuhTheme()).WithShowHelp(false)
}

// cardForm collects flashcard fields, pre-filled for edits.
func cardForm(question, answer *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Question").
				Value(question).
				Validate(validateRequired("question")),
			huh.NewText().
				Title("Answer").
				Value(answer).
				Validate(validateRequired("answer")),
		),
	).WithTheme(studaHuhTheme()).WithShowHelp(false)
}

// goalForm collects goal fields, pre-filled for edits.
func goalForm(title, description, priority, startDate, deadline *string, subjects []domain.Subject, subjectID *string) *huh.Form {
	subjectOptions := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, s := range subjects {
		subjectOptions = append(subjectOptions, huh.NewOption(s.Name, s.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(title).
				Validate(validateRequired("title")),
			huh.NewInput().
				Title("Description").
				Value(description),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption(string(domain.PriorityHigh), string(domain.PriorityHigh)),
					huh.NewOption(string(domain.PriorityMedium), string(domain.PriorityMedium)),
					huh.NewOption(string(domain.PriorityLow), string(domain.PriorityLow)),
				).
				Value(priority),
			huh.NewInput().
				Title("Start date (YYYY-MM-DD, blank for none)").
				Value(startDate).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD)").
				Placeholder("2026-12-31").
				Value(deadline).
				Validate(validateDate),
			huh.NewSelect[string]().
				Title("Subject").
				Options(subjectOptions...).
				Value(subjectID),
		),
	).WithTheme(studaHuhTheme()).WithShowHelp(false)
}

// sessionForm collects scheduling fields for a study session.
func sessionForm(subjects []domain.Subject, subjectID, topic, date, clock, duration *string) *huh.Form {
	subjectOptions := make([]huh.Option[string], 0, len(subjects))
	for _, s := range subjects {
		subjectOptions = append(subjectOptions, huh.NewOption(s.Name, s.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Subject").
				Options(subjectOptions...).
				Value(subjectID),
			huh.NewInput().
				Title("Topic").
				Placeholder("Funções quadráticas").
				Value(topic).
				Validate(validateRequired("topic")),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(date).
				Validate(validateDate),
			huh.NewInput().
				Title("Time (HH:MM)").
				Placeholder("14:00").
				Value(clock).
				Validate(validateOptionalClock),
			huh.NewInput().
				Title("Duration (minutes)").
				Placeholder("50").
				Value(duration).
				Validate(validatePositiveInt),
		),
	).WithTheme(studaHuhTheme()).WithShowHelp(false)
}
