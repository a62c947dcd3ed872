package manager

import (
	"errors"
	"testing"
	"time"

	"github.com/valdemar/taskman/internal/task"
)

var limits = task.DefaultLimits()

func mustTask(t *testing.T, title string, due time.Time, priority, description string) task.Task {
	t.Helper()
	res := task.New(title, due, priority, description, limits)
	if res.Defaulted {
		t.Fatalf("test task %q unexpectedly defaulted: %s", title, res.Reason)
	}
	return res.Task
}

func day(n int) time.Time {
	return time.Date(2030, time.June, n, 0, 0, 0, 0, time.Local)
}

func titles(tasks []task.Task) []string {
	out := make([]string, len(tasks))
	for i, tk := range tasks {
		out[i] = tk.Title
	}
	return out
}

func wantOrder(t *testing.T, m *Manager, want ...string) {
	t.Helper()
	got := titles(m.Tasks())
	if len(got) != len(want) {
		t.Fatalf("got %d tasks %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch: got %v, want %v", got, want)
		}
	}
}

func TestManager_Add(t *testing.T) {
	t.Run("adds and sorts", func(t *testing.T) {
		m := New()
		report := m.Add(
			mustTask(t, "later", day(2), "h", "x"),
			mustTask(t, "sooner", day(1), "l", "y"),
		)
		if len(report.Added) != 2 || len(report.Rejected) != 0 {
			t.Fatalf("report = %+v", report)
		}
		wantOrder(t, m, "sooner", "later")
	})

	t.Run("rejects duplicates but keeps the rest of the batch", func(t *testing.T) {
		m := New()
		m.Add(mustTask(t, "existing", day(1), "h", "x"))

		dup := mustTask(t, "existing", day(1), "h", "x")
		fresh := mustTask(t, "fresh", day(2), "m", "y")
		report := m.Add(dup, fresh)

		if len(report.Added) != 1 || report.Added[0].Title != "fresh" {
			t.Errorf("Added = %v", titles(report.Added))
		}
		if len(report.Rejected) != 1 {
			t.Fatalf("Rejected = %d, want 1", len(report.Rejected))
		}
		var dupErr *DuplicateError
		if !errors.As(report.Rejected[0].Err, &dupErr) {
			t.Errorf("expected DuplicateError, got %v", report.Rejected[0].Err)
		}
		if m.Len() != 2 {
			t.Errorf("Len = %d, want 2", m.Len())
		}
	})

	t.Run("completion status does not affect the duplicate key", func(t *testing.T) {
		m := New()
		a := mustTask(t, "same", day(1), "h", "x")
		m.Add(a)
		ids, _ := m.Resolve([]string{"1"}, true)
		m.Toggle(ids...)

		b := mustTask(t, "same", day(1), "h", "x")
		report := m.Add(b)
		if len(report.Rejected) != 1 {
			t.Error("a completed copy must still count as a duplicate")
		}
	})
}

func TestManager_Toggle(t *testing.T) {
	m := New()
	m.Add(mustTask(t, "one", day(1), "h", "x"))
	ids, err := m.Resolve([]string{"1"}, false)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	count, err := m.Toggle(ids...)
	if err != nil || count != 1 {
		t.Fatalf("toggle: count=%d err=%v", count, err)
	}
	if !m.Tasks()[0].Completed {
		t.Error("task should be completed after one toggle")
	}

	if _, err := m.Toggle(ids...); err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if m.Tasks()[0].Completed {
		t.Error("two toggles must return the task to incomplete")
	}

	if _, err := m.Toggle("no-such-id"); err == nil {
		t.Error("expected NotFoundError for unknown reference")
	}
}

func TestManager_RemoveCompleted(t *testing.T) {
	m := New()
	m.Add(
		mustTask(t, "a", day(1), "h", "x"),
		mustTask(t, "b", day(2), "m", "y"),
		mustTask(t, "c", day(3), "l", "z"),
	)
	ids, _ := m.Resolve([]string{"1", "3"}, false)
	m.Toggle(ids...)

	if removed := m.RemoveCompleted(); removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if m.Len() != 1 {
		t.Fatalf("Len = %d, want 1", m.Len())
	}
	if m.Tasks()[0].Completed {
		t.Error("surviving task must be incomplete")
	}

	if removed := m.RemoveCompleted(); removed != 0 {
		t.Errorf("second pass removed = %d, want 0", removed)
	}
}

func TestManager_Remove(t *testing.T) {
	t.Run("removes referenced tasks", func(t *testing.T) {
		m := New()
		m.Add(
			mustTask(t, "a", day(1), "h", "x"),
			mustTask(t, "b", day(2), "m", "y"),
		)
		ids, _ := m.Resolve([]string{"1", "2"}, false)
		count, err := m.Remove(ids...)
		if err != nil || count != 2 {
			t.Fatalf("count=%d err=%v", count, err)
		}
		if m.Len() != 0 {
			t.Errorf("Len = %d, want 0", m.Len())
		}
	})

	// Removal is one task at a time and stops at the first missing
	// reference. Earlier removals in the batch stay applied.
	t.Run("missing reference aborts at first failure", func(t *testing.T) {
		m := New()
		m.Add(
			mustTask(t, "a", day(1), "h", "x"),
			mustTask(t, "b", day(2), "m", "y"),
		)
		ids, _ := m.Resolve([]string{"1", "2"}, false)

		count, err := m.Remove(ids[0], "no-such-id", ids[1])
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		if count != 1 {
			t.Errorf("count = %d, want 1 (partial effect)", count)
		}
		if m.Len() != 1 {
			t.Errorf("Len = %d, want 1: first task removed, last kept", m.Len())
		}
		if m.Tasks()[0].Title != "b" {
			t.Errorf("surviving task = %q, want %q", m.Tasks()[0].Title, "b")
		}
	})
}

func TestManager_Reset(t *testing.T) {
	m := New()
	m.Add(mustTask(t, "a", day(1), "h", "x"))
	m.Reset()
	if m.Len() != 0 {
		t.Errorf("Len = %d, want 0", m.Len())
	}
	m.Reset()
	if m.Len() != 0 {
		t.Error("resetting an empty collection must stay empty")
	}
}

func TestManager_Sorting(t *testing.T) {
	t.Run("date then priority", func(t *testing.T) {
		m := New()
		m.Add(
			mustTask(t, "late-high", day(2), "h", "x"),
			mustTask(t, "early-low", day(1), "l", "x"),
			mustTask(t, "early-high", day(1), "h", "x"),
		)
		wantOrder(t, m, "early-high", "early-low", "late-high")
	})

	t.Run("switching reorders by priority first", func(t *testing.T) {
		m := New()
		m.Add(
			mustTask(t, "early-low", day(1), "l", "x"),
			mustTask(t, "late-high", day(2), "h", "x"),
		)
		wantOrder(t, m, "early-low", "late-high")

		if mode := m.SwitchSortingMode(); mode != PriorityThenDate {
			t.Fatalf("mode = %v, want priority-then-date", mode)
		}
		wantOrder(t, m, "late-high", "early-low")

		if mode := m.SwitchSortingMode(); mode != DateThenPriority {
			t.Fatalf("mode = %v, want date-then-priority", mode)
		}
		wantOrder(t, m, "early-low", "late-high")
	})

	t.Run("ties keep insertion order", func(t *testing.T) {
		m := New()
		m.Add(
			mustTask(t, "first", day(1), "m", "a"),
			mustTask(t, "second", day(1), "m", "b"),
			mustTask(t, "third", day(1), "m", "c"),
		)
		wantOrder(t, m, "first", "second", "third")
		m.SwitchSortingMode()
		wantOrder(t, m, "first", "second", "third")
	})
}

func TestManager_SwitchViewMode(t *testing.T) {
	m := New()
	if m.ViewMode() != StandardView {
		t.Fatalf("default view = %v", m.ViewMode())
	}
	if v := m.SwitchViewMode(); v != DescriptionView {
		t.Errorf("got %v, want description view", v)
	}
	if v := m.SwitchViewMode(); v != StandardView {
		t.Errorf("got %v, want standard view", v)
	}
}

// End-to-end ordering scenario: four tasks with mixed relative dates
// and priorities, added through the raw string inputs a user would type.
func TestManager_EndToEndOrdering(t *testing.T) {
	m := New()

	inputs := []struct {
		title, due, priority string
	}{
		{"1", "today", "h"},
		{"2", "tomorrow", "h"},
		{"3", "today", "l"},
		{"4", "2", "m"},
	}
	for _, in := range inputs {
		res := task.New(in.title, in.due, in.priority, "d-"+in.title, limits)
		if res.Defaulted {
			t.Fatalf("task %q defaulted: %s", in.title, res.Reason)
		}
		m.Add(res.Task)
	}

	got := titles(m.Tasks())
	// Both "today" tasks come before tomorrow and the +2-day task, and
	// the high-priority today task leads the low-priority one.
	want := []string{"1", "3", "2", "4"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestManager_LoadExample(t *testing.T) {
	m := New()
	m.Add(mustTask(t, "old", day(1), "h", "x"))

	report := m.LoadExample(limits)
	if len(report.Rejected) != 0 {
		t.Errorf("preset tasks rejected: %v", report.Rejected)
	}
	if m.Len() != 8 {
		t.Errorf("Len = %d, want 8 preset tasks", m.Len())
	}
	for _, tk := range m.Tasks() {
		if tk.Title == "old" {
			t.Error("LoadExample must reset the collection first")
		}
	}
}
