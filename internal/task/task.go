// Package task holds the to-do item record, its field validators, and
// the due date grammar.
package task

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task is a single to-do item. Tasks are created through New and
// mutated only through Apply so every field stays validated.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	DueDate     time.Time `json:"dueDate"`
	Priority    Priority  `json:"priority"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
}

// Key is the duplicate key of a task. Completed is deliberately
// excluded: a done and a not-done copy of the same task are still
// duplicates.
type Key struct {
	Title       string
	DueDate     time.Time
	Priority    Priority
	Description string
}

// Key returns the task's duplicate key.
func (t Task) Key() Key {
	return Key{Title: t.Title, DueDate: t.DueDate, Priority: t.Priority, Description: t.Description}
}

// SameKey reports whether two tasks are duplicates of each other.
func (t Task) SameKey(other Task) bool {
	return t.Title == other.Title &&
		t.DueDate.Equal(other.DueDate) &&
		t.Priority == other.Priority &&
		t.Description == other.Description
}

// Result is the outcome of constructing a task. Construction never
// fails: when any field is invalid the task comes back with default
// attributes and Defaulted set, so a typo never loses the add attempt.
type Result struct {
	Task      Task
	Defaulted bool
	Reason    string
}

// New builds a task from raw user input. Each field is validated
// independently; on the first failure the whole task falls back to the
// default record (title "Default", due now, high priority) and the
// Result explains which input was rejected.
func New(title string, due any, priority, description string, limits Limits) Result {
	now := time.Now()

	validTitle, err := ValidateTitle(title, limits.Title)
	if err != nil {
		return defaulted(title, limits, now, err)
	}
	dueDate, err := ParseDue(due, nil, now)
	if err != nil {
		return defaulted(title, limits, now, err)
	}
	validPriority, err := ParsePriority(priority)
	if err != nil {
		return defaulted(title, limits, now, err)
	}
	validDescription, err := ValidateDescription(description, limits.Description)
	if err != nil {
		return defaulted(title, limits, now, err)
	}

	return Result{Task: Task{
		ID:          uuid.NewString(),
		Title:       validTitle,
		DueDate:     dueDate,
		Priority:    validPriority,
		Description: validDescription,
	}}
}

// defaulted builds the fallback task, naming the title the caller meant
// to use in the reason.
func defaulted(intendedTitle string, limits Limits, now time.Time, cause error) Result {
	shown, err := Shorten(intendedTitle, limits.Title)
	if err != nil {
		shown = intendedTitle
	}
	return Result{
		Task: Task{
			ID:          uuid.NewString(),
			Title:       "Default",
			DueDate:     now,
			Priority:    High,
			Description: "Default",
		},
		Defaulted: true,
		Reason:    fmt.Sprintf("default attributes set for task %q: %v", shown, cause),
	}
}

// Edit holds replacement input for a task's fields. An empty string
// keeps the current value of that field.
type Edit struct {
	Title       string
	Due         string
	Priority    string
	Description string
}

// Apply validates the supplied fields and commits them to the task.
// Unlike construction, validation failures here propagate to the
// caller, and the task is left untouched on any failure. The due date
// input may use the relative +N/-N form against the task's current due
// date. Completed tasks keep their due date regardless of input.
func Apply(t *Task, e Edit, limits Limits) error {
	now := time.Now()

	title := t.Title
	if e.Title != "" {
		valid, err := ValidateTitle(e.Title, limits.Title)
		if err != nil {
			return err
		}
		title = valid
	}

	dueDate := t.DueDate
	if e.Due != "" && !t.Completed {
		valid, err := ParseDue(e.Due, t, now)
		if err != nil {
			return err
		}
		dueDate = valid
	}

	priority := t.Priority
	if e.Priority != "" {
		valid, err := ParsePriority(e.Priority)
		if err != nil {
			return err
		}
		priority = valid
	}

	description := t.Description
	if e.Description != "" {
		valid, err := ValidateDescription(e.Description, limits.Description)
		if err != nil {
			return err
		}
		description = valid
	}

	t.Title = title
	t.DueDate = dueDate
	t.Priority = priority
	t.Description = description
	return nil
}
