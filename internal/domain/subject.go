package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Subject is a user-defined study topic. It owns zero or more flashcards,
// which are removed when the subject is deleted.
type Subject struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	OwnerID     string `json:"ownerId"`
}

// EntityID returns the subject's collection identity.
func (s Subject) EntityID() string { return s.ID }

// Validate checks the fields required before a subject may be stored.
func (s *Subject) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("subject name is required")
	}
	if s.Color != "" && !hexColorPattern.MatchString(s.Color) {
		return fmt.Errorf("subject color %q must be a hex color like #FF8800", s.Color)
	}
	return nil
}

// TextColor returns a readable foreground hex color (near-black or white)
// for text rendered on top of the subject color. Malformed colors fall back
// to the dark foreground.
func (s *Subject) TextColor() string {
	return ContrastText(s.Color)
}

// ContrastText picks a readable foreground for the given background color
// using its perceived luminance.
func ContrastText(color string) string {
	const (
		darkText  = "#1C1C1C"
		lightText = "#FFFFFF"
	)
	hex := strings.TrimPrefix(color, "#")
	if len(hex) != 6 {
		return darkText
	}
	r, err1 := strconv.ParseUint(hex[0:2], 16, 8)
	g, err2 := strconv.ParseUint(hex[2:4], 16, 8)
	b, err3 := strconv.ParseUint(hex[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return darkText
	}
	luminance := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if luminance > 180 {
		return darkText
	}
	return lightText
}
