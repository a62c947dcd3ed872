package task

import (
	"strconv"
	"strings"
	"time"
)

// DateFormat is how due dates are exchanged with the presentation layer.
const DateFormat = "02/01/2006"

// parseFormat accepts single-digit days and months as well.
const parseFormat = "2/1/2006"

// FormatDate renders a due date as DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDue resolves a due date input to a concrete time.
//
// A time.Time input passes through unchanged. A string input is
// resolved against now: "today", "tomorrow", a non-negative number of
// days from now, or a literal DD/MM/YYYY date where the year may be
// omitted (the current year is assumed). When existing is non-nil,
// "+N" and "-N" offset the existing task's due date by N days; this
// relative form is only meaningful while editing.
//
// Returns a FormatError for an unparseable string and a TypeError for
// any other input type.
func ParseDue(input any, existing *Task, now time.Time) (time.Time, error) {
	switch v := input.(type) {
	case time.Time:
		return v, nil
	case string:
		return parseDueString(v, existing, now)
	default:
		return time.Time{}, &TypeError{Value: input}
	}
}

func parseDueString(s string, existing *Task, now time.Time) (time.Time, error) {
	switch {
	case s == "today":
		return now, nil
	case s == "tomorrow":
		return now.AddDate(0, 0, 1), nil
	case allDigits(s):
		days, err := strconv.Atoi(s)
		if err != nil {
			return time.Time{}, &FormatError{Field: "due date", Input: s}
		}
		return now.AddDate(0, 0, days), nil
	case existing != nil && len(s) > 1 && (s[0] == '+' || s[0] == '-') && allDigits(s[1:]):
		days, err := strconv.Atoi(s[1:])
		if err != nil {
			return time.Time{}, &FormatError{Field: "due date", Input: s}
		}
		if s[0] == '-' {
			days = -days
		}
		return existing.DueDate.AddDate(0, 0, days), nil
	}

	// Literal date, with the current year assumed when omitted.
	literal := s
	if strings.Count(literal, "/") == 1 {
		literal = literal + "/" + strconv.Itoa(now.Year())
	}
	parsed, err := time.ParseInLocation(parseFormat, literal, now.Location())
	if err != nil {
		return time.Time{}, &FormatError{Field: "due date", Input: s}
	}
	return parsed, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
