package task

import "encoding/json"

// Priority is a task priority level. Lower rank sorts first.
type Priority int

const (
	High Priority = iota + 1
	Medium
	Low
)

func (p Priority) String() string {
	switch p {
	case High:
		return "high"
	case Medium:
		return "medium"
	case Low:
		return "low"
	default:
		return "unknown"
	}
}

// Rank returns the sort rank of the priority (high=1, medium=2, low=3).
func (p Priority) Rank() int {
	return int(p)
}

// ParsePriority parses a priority token. It accepts the shorthands
// h/m/l and the full words high/medium/low, case-sensitive.
func ParsePriority(token string) (Priority, error) {
	switch token {
	case "h", "high":
		return High, nil
	case "m", "medium":
		return Medium, nil
	case "l", "low":
		return Low, nil
	default:
		return 0, &FormatError{Field: "priority", Input: token}
	}
}

// MarshalJSON writes the priority as its lowercase word so the savefile
// stays readable.
func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON reads a priority word back.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePriority(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
