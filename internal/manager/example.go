package manager

import "github.com/valdemar/taskman/internal/task"

// LoadExample resets the manager and fills it with the preset tasks.
// All preset input is valid, so none of the constructions default.
func (m *Manager) LoadExample(limits task.Limits) AddReport {
	presets := []struct {
		title, due, priority, description string
	}{
		{"Cook dinner", "today", "h", "It's gonna be pasta with tomato sauce"},
		{"Read", "today", "l", "Read until you fall asleep"},
		{"Bicycle maintenance", "tomorrow", "m", "Tighten the brakes and lubricate chain"},
		{"Dentist appointment", "2", "m", "Brush teeth well before going"},
		{"Clean mirror", "today", "l", "The mirror will need cleaning at some point"},
		{"Send letter", "4", "m", "Send letter when it's done"},
		{"Matt's birthday", "7", "h", "It's Matt's birthday! Give him a call!"},
		{"Yoga class", "2", "l", "I could check out this yoga class"},
	}

	tasks := make([]task.Task, 0, len(presets))
	for _, p := range presets {
		tasks = append(tasks, task.New(p.title, p.due, p.priority, p.description, limits).Task)
	}

	m.Reset()
	return m.Add(tasks...)
}
