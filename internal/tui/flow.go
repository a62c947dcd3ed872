package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/valdemar/taskman/internal/task"
	"github.com/valdemar/taskman/internal/tui/styles"
)

// Prompt order of the add/edit flow.
const (
	fieldTitle = iota
	fieldDue
	fieldPriority
	fieldDescription
	fieldCount
)

var fieldNames = [fieldCount]string{"title", "due date", "priority", "description"}

// fieldFlow walks the four task fields one prompt at a time. While
// editing, a blank entry keeps the field's current value, and the due
// date prompt is skipped entirely for completed tasks.
type fieldFlow struct {
	editID   string // empty while adding
	skipDue  bool
	idx      int
	raw      [fieldCount]string
	fieldErr string
}

func (m Model) startFieldFlow(editID string) Model {
	flow := &fieldFlow{editID: editID}
	if editID != "" {
		if t, ok := m.mgr.Get(editID); ok && t.Completed {
			flow.skipDue = true
		}
	}
	m.flow = flow
	m.mode = modeField
	m.input.Reset()
	m.input.Placeholder = m.fieldHint()
	m.input.Focus()
	return m
}

func (m Model) updateField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.flow = nil
		m.mode = modeList
		m.input.Blur()
		return m, nil
	case "enter":
		return m.acceptField()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// acceptField validates the current entry, re-prompting on failure,
// and commits the task once the last field is in.
func (m Model) acceptField() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	editing := m.flow.editID != ""

	// Blank keeps the current value, but only while editing.
	if value != "" || !editing {
		if err := m.validateField(m.flow.idx, value); err != nil {
			m.flow.fieldErr = err.Error()
			m.input.Reset()
			return m, nil
		}
	}
	m.flow.fieldErr = ""
	m.flow.raw[m.flow.idx] = value

	m.flow.idx++
	if m.flow.idx == fieldDue && m.flow.skipDue {
		m.flow.idx++
	}
	if m.flow.idx < fieldCount {
		m.input.Reset()
		m.input.Placeholder = m.fieldHint()
		return m, textinput.Blink
	}

	m.input.Blur()
	return m.commitFlow()
}

func (m Model) validateField(idx int, value string) error {
	limits := m.cfg.Limits()
	switch idx {
	case fieldTitle:
		_, err := task.ValidateTitle(value, limits.Title)
		return err
	case fieldDue:
		var existing *task.Task
		if m.flow.editID != "" {
			if t, ok := m.mgr.Get(m.flow.editID); ok {
				existing = &t
			}
		}
		_, err := task.ParseDue(value, existing, time.Now())
		return err
	case fieldPriority:
		_, err := task.ParsePriority(value)
		return err
	default:
		_, err := task.ValidateDescription(value, limits.Description)
		return err
	}
}

func (m Model) commitFlow() (tea.Model, tea.Cmd) {
	flow := m.flow
	m.flow = nil
	m.mode = modeList

	if flow.editID == "" {
		res := task.New(flow.raw[fieldTitle], flow.raw[fieldDue], flow.raw[fieldPriority], flow.raw[fieldDescription], m.cfg.Limits())
		if res.Defaulted {
			m.errMsg = res.Reason
		}
		report := m.mgr.Add(res.Task)
		if len(report.Rejected) > 0 {
			m.errMsg = report.Rejected[0].Err.Error()
			return m, nil
		}
		m.notice = fmt.Sprintf("Added %q.", res.Task.Title)
		return m, nil
	}

	edit := task.Edit{
		Title:       flow.raw[fieldTitle],
		Due:         flow.raw[fieldDue],
		Priority:    flow.raw[fieldPriority],
		Description: flow.raw[fieldDescription],
	}
	if err := m.mgr.Update(flow.editID, edit, m.cfg.Limits()); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.notice = "Task updated."
	return m, nil
}

// fieldHint returns the accepted-input tip for the current prompt.
func (m Model) fieldHint() string {
	limits := m.cfg.Limits()
	switch m.flow.idx {
	case fieldTitle:
		return fmt.Sprintf("anything under %d characters", limits.Title)
	case fieldDue:
		hint := "DD/MM/YYYY, 'today', 'tomorrow', or days from now"
		if m.flow.editID != "" {
			hint += ", or +N/-N days"
		}
		return hint
	case fieldPriority:
		return "h, m, or l"
	default:
		return fmt.Sprintf("anything under %d characters", limits.Description)
	}
}

func (m Model) flowView() string {
	var b strings.Builder

	label := "[Add Mode]"
	if m.flow.editID != "" {
		label = "[Edit Mode]"
	}
	field := fieldNames[m.flow.idx]
	prompt := fmt.Sprintf("%s Enter %s", label, field)
	if m.flow.editID != "" {
		if t, ok := m.mgr.Get(m.flow.editID); ok {
			prompt += fmt.Sprintf(" (blank keeps %q)", currentFieldValue(t, m.flow.idx))
		}
	}

	b.WriteString(styles.PromptStyle.Render(prompt) + "\n")
	b.WriteString(m.input.View())
	if m.flow.fieldErr != "" {
		b.WriteString("\n" + styles.ErrorStyle.Render("Error: "+m.flow.fieldErr))
	}
	b.WriteString("\n" + styles.StatusBarStyle.Render("Enter next · Esc cancel"))
	return b.String()
}

func currentFieldValue(t task.Task, idx int) string {
	switch idx {
	case fieldTitle:
		return t.Title
	case fieldDue:
		return task.FormatDate(t.DueDate)
	case fieldPriority:
		return t.Priority.String()
	default:
		return t.Description
	}
}
