package task

import "fmt"

// LengthError reports a field whose value exceeds its configured limit.
type LengthError struct {
	Field  string
	Limit  int
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s can be no longer than %d characters (got %d)", e.Field, e.Limit, e.Length)
}

// FormatError reports an input string that does not match any accepted format.
type FormatError struct {
	Field string
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s %q, make sure to match the accepted format", e.Field, e.Input)
}

// TypeError reports a due date input of the wrong dynamic type.
type TypeError struct {
	Value any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("due date should be either a string or a time value, got %T", e.Value)
}
