package manager

import "fmt"

// DuplicateError reports a task that equals an existing one on the
// duplicate key (title, due date, priority, description).
type DuplicateError struct {
	Title string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate tasks not allowed: %q already exists", e.Title)
}

// NotFoundError reports a referenced task that is not in the collection.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %q does not exist in the collection", e.ID)
}

// SelectionError reports an invalid task selection.
type SelectionError struct {
	Reason string
}

func (e *SelectionError) Error() string {
	return "invalid selection: " + e.Reason
}
