package manager

import (
	"sort"
	"strconv"
)

// Resolve turns 1-based position tokens, as typed by the user against
// the current sorted order, into task IDs. Resolution happens before
// any mutation so later removals cannot shift the positions out from
// under a batch. Duplicate positions are collapsed. With single set,
// at most one position is accepted.
func (m *Manager) Resolve(tokens []string, single bool) ([]string, error) {
	if len(m.tasks) == 0 {
		return nil, &SelectionError{Reason: "there are no tasks to select from"}
	}
	if len(tokens) == 0 {
		return nil, &SelectionError{Reason: "no task selected, pass task number(s) after the action"}
	}
	if single && len(tokens) > 1 {
		return nil, &SelectionError{Reason: "only one selection allowed for this action"}
	}

	seen := make(map[int]bool)
	var positions []int
	for _, tok := range tokens {
		if !digitsOnly(tok) {
			return nil, &SelectionError{Reason: "only numbers can be used to select tasks, got " + strconv.Quote(tok)}
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &SelectionError{Reason: "only numbers can be used to select tasks, got " + strconv.Quote(tok)}
		}
		if n < 1 || n > len(m.tasks) {
			return nil, &SelectionError{Reason: "task number " + tok + " does not exist"}
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		positions = append(positions, n)
	}

	// Keep the resolved IDs in table order regardless of how the
	// positions were typed.
	sort.Ints(positions)
	ids := make([]string, len(positions))
	for i, n := range positions {
		ids[i] = m.tasks[n-1].ID
	}
	return ids, nil
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
