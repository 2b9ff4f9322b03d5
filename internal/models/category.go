package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a roster name does not match any category.
var ErrUnknownCategory = errors.New("unknown roster category")

// Category identifies one of the three rosters.
type Category string

const (
	// CategoryGirls is group A.
	CategoryGirls Category = "filles"
	// CategoryBoys is group B.
	CategoryBoys Category = "garcons"
	// CategoryCoaches is the staff roster.
	CategoryCoaches Category = "coachs"
)

// Categories lists every roster in resolution priority order.
// An entry is matched against the first roster, then the second, then the third.
var Categories = []Category{CategoryGirls, CategoryBoys, CategoryCoaches}

// Label returns the French display label of the category (e.g., "Garçons").
func (c Category) Label() string {
	switch c {
	case CategoryGirls:
		return "Filles"
	case CategoryBoys:
		return "Garçons"
	case CategoryCoaches:
		return "Coachs"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts user input into a Category.
// It accepts the stored keys, the French labels and the English aliases
// ("girls", "boys", "coaches", "staff").
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "filles", "fille", "girls", "a":
		return CategoryGirls, nil
	case "garcons", "garçons", "garcon", "garçon", "boys", "b":
		return CategoryBoys, nil
	case "coachs", "coach", "coaches", "staff", "c":
		return CategoryCoaches, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
