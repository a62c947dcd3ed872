package render

import (
	"strings"
	"testing"
	"time"

	"github.com/valdemar/taskman/internal/manager"
	"github.com/valdemar/taskman/internal/task"
)

func sampleTasks(t *testing.T) []task.Task {
	t.Helper()
	limits := task.DefaultLimits()
	due := time.Date(2030, time.May, 20, 0, 0, 0, 0, time.Local)

	a := task.New("Cook dinner", due, "h", "Pasta with tomato sauce", limits)
	b := task.New("Read", due.AddDate(0, 0, 1), "l", strings.Repeat("long description ", 5), limits)
	if a.Defaulted || b.Defaulted {
		t.Fatal("sample tasks should not default")
	}
	done := b.Task
	done.Completed = true
	return []task.Task{a.Task, done}
}

func TestTable(t *testing.T) {
	limits := task.DefaultLimits()

	t.Run("empty collection prompts to add", func(t *testing.T) {
		got := Table(nil, manager.StandardView, limits)
		if !strings.Contains(got, "empty") {
			t.Errorf("got %q", got)
		}
	})

	t.Run("standard view shows all columns", func(t *testing.T) {
		got := Table(sampleTasks(t), manager.StandardView, limits)
		for _, want := range []string{"Num", "Title", "Due date", "Priority", "Description", "Done"} {
			if !strings.Contains(got, want) {
				t.Errorf("missing column header %q", want)
			}
		}
		if !strings.Contains(got, "Cook dinner") {
			t.Error("missing task title")
		}
		if !strings.Contains(got, "20/05/2030") {
			t.Error("due date not rendered as DD/MM/YYYY")
		}
		if !strings.Contains(got, "high") {
			t.Error("missing priority word")
		}
	})

	t.Run("standard view shortens long descriptions", func(t *testing.T) {
		got := Table(sampleTasks(t), manager.StandardView, limits)
		if !strings.Contains(got, "...") {
			t.Error("long description should be shortened with dots")
		}
	})

	t.Run("description view drops the detail columns", func(t *testing.T) {
		got := Table(sampleTasks(t), manager.DescriptionView, limits)
		for _, header := range []string{"Title", "Due date", "Priority"} {
			if strings.Contains(got, header) {
				t.Errorf("description view should not show %q", header)
			}
		}
		if !strings.Contains(got, "Description") || !strings.Contains(got, "Done") {
			t.Error("description view lost its columns")
		}
	})

	t.Run("rows are numbered from 1", func(t *testing.T) {
		got := Table(sampleTasks(t), manager.StandardView, limits)
		if !strings.Contains(got, " 1 ") || !strings.Contains(got, " 2 ") {
			t.Error("rows should be numbered 1-based")
		}
	})

	t.Run("completion renders as Yes and No", func(t *testing.T) {
		got := Table(sampleTasks(t), manager.StandardView, limits)
		if !strings.Contains(got, "No") || !strings.Contains(got, "Yes") {
			t.Error("completion column should show Yes/No")
		}
	})
}
