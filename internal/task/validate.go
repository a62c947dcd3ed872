package task

import "fmt"

// Default field limits. Both can be overridden through the config file.
const (
	TitleLimit       = 20
	DescriptionLimit = 90
)

// Limits holds the maximum lengths for the free-text task fields.
type Limits struct {
	Title       int
	Description int
}

// DefaultLimits returns the built-in field limits.
func DefaultLimits() Limits {
	return Limits{Title: TitleLimit, Description: DescriptionLimit}
}

// Shorten trims s to exactly limit characters, ending in three literal
// dots. Strings already within the limit are returned unchanged.
// The limit must be at least 3 to leave room for the dots.
func Shorten(s string, limit int) (string, error) {
	if limit < 3 {
		return "", fmt.Errorf("shorten limit may not be less than 3, got %d", limit)
	}
	if len(s) <= limit {
		return s, nil
	}
	return s[:limit-3] + "...", nil
}

// ValidateTitle checks the title against the limit and returns it unchanged.
func ValidateTitle(title string, limit int) (string, error) {
	if len(title) > limit {
		return "", &LengthError{Field: "title", Limit: limit, Length: len(title)}
	}
	return title, nil
}

// ValidateDescription checks the description against the limit and
// returns it unchanged.
func ValidateDescription(description string, limit int) (string, error) {
	if len(description) > limit {
		return "", &LengthError{Field: "description", Limit: limit, Length: len(description)}
	}
	return description, nil
}
