package progress

import "fmt"

// Mode selects how completion is aggregated.
type Mode string

const (
	// ModeCount weighs every task equally.
	ModeCount Mode = "count"

	// ModeWeight weighs tasks by their weight field.
	ModeWeight Mode = "weight"

	// ModeHours weighs tasks by estimated effort hours. Falls back to
	// ModeCount when the collection carries zero total hours.
	ModeHours Mode = "hours"
)

// Modes returns all valid modes.
func Modes() []Mode {
	return []Mode{ModeCount, ModeWeight, ModeHours}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeCount || m == ModeWeight || m == ModeHours
}

// ParseMode converts user input to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("invalid progress mode %q: must be one of %v", s, Modes())
	}
	return m, nil
}
