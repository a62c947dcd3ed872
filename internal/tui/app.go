// Package tui implements the interactive session: the task table with
// single-key actions and the add/edit prompt flow.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/valdemar/taskman/internal/config"
	"github.com/valdemar/taskman/internal/manager"
	"github.com/valdemar/taskman/internal/render"
	"github.com/valdemar/taskman/internal/store"
	"github.com/valdemar/taskman/internal/tui/styles"
)

// mode is the screen the session is currently in.
type mode int

const (
	modeList mode = iota
	modeSelect
	modeField
	modeConfirmReset
)

// action is what a number selection is being gathered for.
type action int

const (
	actionToggle action = iota
	actionRemove
	actionEdit
)

// Model is the Bubble Tea model for the whole session.
type Model struct {
	cfg      config.Config
	mgr      *manager.Manager
	savePath string

	mode      mode
	selecting action
	flow      *fieldFlow
	input     textinput.Model

	notice string
	errMsg string
	width  int
	height int
}

// Run starts the interactive session and saves the collection on exit.
func Run() error {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	savePath, err := cfg.ResolveSaveFile()
	if err != nil {
		return err
	}
	snap, found, err := store.Load(savePath)
	if err != nil {
		return err
	}
	mgr := manager.New()
	if found {
		mgr = manager.Restore(snap)
	}

	p := tea.NewProgram(NewModel(cfg, mgr, savePath), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// NewModel builds the session model around an already-loaded manager.
func NewModel(cfg config.Config, mgr *manager.Manager, savePath string) Model {
	input := textinput.New()
	input.CharLimit = 0
	return Model{
		cfg:      cfg,
		mgr:      mgr,
		savePath: savePath,
		input:    input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeSelect:
			return m.updateSelect(msg)
		case modeField:
			return m.updateField(msg)
		case modeConfirmReset:
			return m.updateConfirmReset(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice, m.errMsg = "", ""

	switch msg.String() {
	case "q":
		return m.quit()
	case "a":
		return m.startFieldFlow(""), textinput.Blink
	case "e":
		return m.startSelect(actionEdit), textinput.Blink
	case "t":
		return m.startSelect(actionToggle), textinput.Blink
	case "r":
		return m.startSelect(actionRemove), textinput.Blink
	case "c":
		count := m.mgr.RemoveCompleted()
		m.notice = fmt.Sprintf("Removed %d completed task(s).", count)
	case "v":
		m.mgr.SwitchViewMode()
	case "s":
		sortMode := m.mgr.SwitchSortingMode()
		m.notice = fmt.Sprintf("Now sorting tasks %s.", sortMode)
	case "x":
		m.mode = modeConfirmReset
	case "l":
		report := m.mgr.LoadExample(m.cfg.Limits())
		m.notice = fmt.Sprintf("Example tasks loaded (%d).", len(report.Added))
	}
	return m, nil
}

func (m Model) startSelect(a action) Model {
	m.mode = modeSelect
	m.selecting = a
	m.input.Reset()
	m.input.Placeholder = "task number(s), e.g. 1 3"
	if a == actionEdit {
		m.input.Placeholder = "task number, e.g. 1"
	}
	m.input.Focus()
	return m
}

func (m Model) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.input.Blur()
		return m, nil
	case "enter":
		tokens := strings.Fields(m.input.Value())
		ids, err := m.mgr.Resolve(tokens, m.selecting == actionEdit)
		if err != nil {
			m.errMsg = err.Error()
			m.input.Reset()
			return m, nil
		}
		m.input.Blur()
		return m.applySelection(ids)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) applySelection(ids []string) (tea.Model, tea.Cmd) {
	switch m.selecting {
	case actionToggle:
		count, err := m.mgr.Toggle(ids...)
		m.notice = fmt.Sprintf("Toggled completion status of %d task(s).", count)
		if err != nil {
			m.errMsg = err.Error()
		}
		m.mode = modeList
		return m, nil
	case actionRemove:
		count, err := m.mgr.Remove(ids...)
		m.notice = fmt.Sprintf("Removed %d task(s).", count)
		if err != nil {
			m.errMsg = err.Error()
		}
		m.mode = modeList
		return m, nil
	case actionEdit:
		return m.startFieldFlow(ids[0]), textinput.Blink
	}
	m.mode = modeList
	return m, nil
}

func (m Model) updateConfirmReset(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		m.mgr.Reset()
		m.notice = "Task manager reset."
		m.mode = modeList
	case "n", "esc":
		m.mode = modeList
	}
	return m, nil
}

// quit saves the collection and ends the program. A failed save keeps
// the session alive so nothing is silently lost.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if err := store.Save(m.savePath, m.mgr.Snapshot()); err != nil {
		m.errMsg = "save failed: " + err.Error()
		m.mode = modeList
		return m, nil
	}
	return m, tea.Quit
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Taskman"))
	b.WriteString("\n\n")
	b.WriteString(render.Table(m.mgr.Tasks(), m.mgr.ViewMode(), m.cfg.Limits()))
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString("\n" + styles.NoticeStyle.Render(m.notice))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + styles.ErrorStyle.Render("Error: "+m.errMsg))
	}

	switch m.mode {
	case modeSelect:
		b.WriteString("\n" + styles.PromptStyle.Render(m.selectLabel()) + "\n")
		b.WriteString(m.input.View())
		b.WriteString("\n" + styles.StatusBarStyle.Render("Enter confirm · Esc cancel"))
	case modeField:
		b.WriteString("\n" + m.flowView())
	case modeConfirmReset:
		b.WriteString("\n" + styles.PromptStyle.Render("Remove every task? (y/n)"))
	default:
		help := "a add · e edit · t toggle · r remove · c clear done · v view · s sort · l example · x reset · q quit"
		b.WriteString("\n" + styles.StatusBarStyle.Render(help))
	}

	return b.String()
}

func (m Model) selectLabel() string {
	switch m.selecting {
	case actionToggle:
		return "Toggle which task(s)?"
	case actionRemove:
		return "Remove which task(s)?"
	default:
		return "Edit which task?"
	}
}
