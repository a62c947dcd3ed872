// Package render draws the task table for the CLI and the TUI.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/valdemar/taskman/internal/manager"
	"github.com/valdemar/taskman/internal/task"
)

// In standard view long descriptions are previewed shortened; the
// description view shows them up to the configured limit.
const descriptionPreview = 30

const emptyMessage = "Task manager is empty. Go ahead and add a task!"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true)
	doneStyle   = lipgloss.NewStyle().Faint(true)
)

// Table renders the tasks in their current order, numbered 1-based so
// the numbers line up with what selection expects. The standard view
// shows every column; the description view drops everything but the
// number, the description, and the completion flag.
func Table(tasks []task.Task, view manager.ViewMode, limits task.Limits) string {
	if len(tasks) == 0 {
		return emptyMessage
	}

	descLimit := descriptionPreview
	if view == manager.DescriptionView {
		descLimit = limits.Description
	}

	numW := len("Num")
	titleW := len("Title")
	dueW := len("DD/MM/YYYY")
	prioW := len("Priority")
	descW := len("Description")
	doneW := len("Done")

	for _, t := range tasks {
		if w := min(len(t.Title), limits.Title); w > titleW {
			titleW = w
		}
		if w := min(len(t.Description), descLimit); w > descW {
			descW = w
		}
	}

	sep := " | "
	var cols []string
	if view == manager.DescriptionView {
		cols = []string{pad("Num", numW), pad("Description", descW), pad("Done", doneW)}
	} else {
		cols = []string{
			pad("Num", numW), pad("Title", titleW), pad("Due date", dueW),
			pad("Priority", prioW), pad("Description", descW), pad("Done", doneW),
		}
	}
	header := " " + strings.Join(cols, sep) + " "
	total := len(header)
	rule := strings.Repeat("-", total)

	var b strings.Builder
	b.WriteString(titleStyle.Render(center("*** Task Manager ***", total)))
	b.WriteString("\n" + rule + "\n")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n" + rule)

	for i, t := range tasks {
		desc, err := task.Shorten(t.Description, descLimit)
		if err != nil {
			desc = t.Description
		}
		done := "No"
		if t.Completed {
			done = "Yes"
		}

		var fields []string
		if view == manager.DescriptionView {
			fields = []string{pad(fmt.Sprint(i+1), numW), pad(desc, descW), pad(done, doneW)}
		} else {
			fields = []string{
				pad(fmt.Sprint(i+1), numW), pad(t.Title, titleW), pad(task.FormatDate(t.DueDate), dueW),
				pad(t.Priority.String(), prioW), pad(desc, descW), pad(done, doneW),
			}
		}
		row := " " + strings.Join(fields, sep) + " "
		if t.Completed {
			row = doneStyle.Render(row)
		}
		b.WriteString("\n" + row)
	}

	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
