// Package manager owns the ordered task collection: duplicate checks,
// the two sorting modes, and every mutation the session can perform.
package manager

import (
	"sort"

	"github.com/valdemar/taskman/internal/task"
)

// SortingMode selects the two-key ordering applied to the collection.
type SortingMode int

const (
	DateThenPriority SortingMode = iota
	PriorityThenDate
)

func (m SortingMode) String() string {
	if m == PriorityThenDate {
		return "priority-then-date"
	}
	return "date-then-priority"
}

// ParseSortingMode maps a persisted mode name back to the mode.
// Unknown names fall back to the default.
func ParseSortingMode(s string) SortingMode {
	if s == PriorityThenDate.String() {
		return PriorityThenDate
	}
	return DateThenPriority
}

// ViewMode selects how the task table is presented. It is collection
// state so it survives across sessions, but the engine never reads it.
type ViewMode int

const (
	StandardView ViewMode = iota
	DescriptionView
)

func (m ViewMode) String() string {
	if m == DescriptionView {
		return "description"
	}
	return "standard"
}

// ParseViewMode maps a persisted view name back to the mode.
func ParseViewMode(s string) ViewMode {
	if s == DescriptionView.String() {
		return DescriptionView
	}
	return StandardView
}

// Manager is the ordered, duplicate-free task collection. After every
// mutation the list is re-sorted according to the active sorting mode,
// so callers always iterate tasks in the agreed order.
type Manager struct {
	tasks       []task.Task
	sortingMode SortingMode
	viewMode    ViewMode
}

// New returns an empty manager sorting by date then priority.
func New() *Manager {
	return &Manager{}
}

// Tasks returns a copy of the task list in current sorted order.
func (m *Manager) Tasks() []task.Task {
	out := make([]task.Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

// Len returns the number of tasks in the collection.
func (m *Manager) Len() int {
	return len(m.tasks)
}

// SortingMode returns the active sorting mode.
func (m *Manager) SortingMode() SortingMode {
	return m.sortingMode
}

// ViewMode returns the active view mode.
func (m *Manager) ViewMode() ViewMode {
	return m.viewMode
}

// Get returns the referenced task by ID.
func (m *Manager) Get(id string) (task.Task, bool) {
	i := m.indexOf(id)
	if i < 0 {
		return task.Task{}, false
	}
	return m.tasks[i], true
}

// Rejection is a task refused by Add, with the reason.
type Rejection struct {
	Task task.Task
	Err  error
}

// AddReport says which tasks of a batch were added and which were
// rejected as duplicates.
type AddReport struct {
	Added    []task.Task
	Rejected []Rejection
}

// Add inserts one or more tasks. Each task is checked against the
// duplicate key of everything already in the collection (and of tasks
// added earlier in the same batch); duplicates are rejected
// individually while the rest of the batch still goes in. The
// collection is re-sorted once at the end.
func (m *Manager) Add(tasks ...task.Task) AddReport {
	var report AddReport
	for _, t := range tasks {
		if dup := m.findDuplicate(t); dup != nil {
			report.Rejected = append(report.Rejected, Rejection{Task: t, Err: dup})
			continue
		}
		m.tasks = append(m.tasks, t)
		report.Added = append(report.Added, t)
	}
	m.sortTasks()
	return report
}

func (m *Manager) findDuplicate(candidate task.Task) error {
	for _, existing := range m.tasks {
		if existing.SameKey(candidate) {
			return &DuplicateError{Title: candidate.Title}
		}
	}
	return nil
}

// Toggle flips the completion flag of each referenced task. It stops at
// the first unknown reference, returning how many tasks were toggled
// before the failure.
func (m *Manager) Toggle(ids ...string) (int, error) {
	toggled := 0
	for _, id := range ids {
		i := m.indexOf(id)
		if i < 0 {
			return toggled, &NotFoundError{ID: id}
		}
		m.tasks[i].Completed = !m.tasks[i].Completed
		toggled++
	}
	m.sortTasks()
	return toggled, nil
}

// RemoveCompleted drops every completed task and returns how many were
// removed. Zero when nothing is completed.
func (m *Manager) RemoveCompleted() int {
	kept := m.tasks[:0]
	removed := 0
	for _, t := range m.tasks {
		if t.Completed {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	m.tasks = kept
	m.sortTasks()
	return removed
}

// Remove deletes the referenced tasks one at a time. Removal stops at
// the first reference that is not in the collection: earlier removals
// in the batch stay applied, the failing and later ones do not happen.
func (m *Manager) Remove(ids ...string) (int, error) {
	removed := 0
	for _, id := range ids {
		i := m.indexOf(id)
		if i < 0 {
			m.sortTasks()
			return removed, &NotFoundError{ID: id}
		}
		m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
		removed++
	}
	m.sortTasks()
	return removed, nil
}

// Update applies an edit to the referenced task and re-sorts. The typed
// validation error propagates and the task keeps its prior values when
// any field of the edit is invalid.
func (m *Manager) Update(id string, e task.Edit, limits task.Limits) error {
	i := m.indexOf(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	if err := task.Apply(&m.tasks[i], e, limits); err != nil {
		return err
	}
	m.sortTasks()
	return nil
}

// Reset unconditionally empties the collection.
func (m *Manager) Reset() {
	m.tasks = nil
}

// SwitchSortingMode toggles between the two sorting modes, re-sorts,
// and returns the mode now in effect.
func (m *Manager) SwitchSortingMode() SortingMode {
	if m.sortingMode == DateThenPriority {
		m.sortingMode = PriorityThenDate
	} else {
		m.sortingMode = DateThenPriority
	}
	m.sortTasks()
	return m.sortingMode
}

// SwitchViewMode toggles between standard and description view and
// returns the mode now in effect.
func (m *Manager) SwitchViewMode() ViewMode {
	if m.viewMode == StandardView {
		m.viewMode = DescriptionView
	} else {
		m.viewMode = StandardView
	}
	return m.viewMode
}

// sortTasks applies the active sorting mode. The sort is stable, so
// tasks equal on both keys keep their insertion order.
func (m *Manager) sortTasks() {
	switch m.sortingMode {
	case PriorityThenDate:
		sort.SliceStable(m.tasks, func(i, j int) bool {
			a, b := m.tasks[i], m.tasks[j]
			if a.Priority.Rank() != b.Priority.Rank() {
				return a.Priority.Rank() < b.Priority.Rank()
			}
			return a.DueDate.Before(b.DueDate)
		})
	default:
		sort.SliceStable(m.tasks, func(i, j int) bool {
			a, b := m.tasks[i], m.tasks[j]
			if !a.DueDate.Equal(b.DueDate) {
				return a.DueDate.Before(b.DueDate)
			}
			return a.Priority.Rank() < b.Priority.Rank()
		})
	}
}

func (m *Manager) indexOf(id string) int {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
