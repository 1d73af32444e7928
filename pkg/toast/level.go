// Package toast implements transient notifications. A toast is visible for
// a fixed duration, then enters an exit stage so the front end can animate
// it out, then is removed.
package toast

import "strings"

// Level is the severity of a toast. It selects the ac-toast-<level> class.
type Level string

const (
	Success Level = "success"
	Error   Level = "error"
	Warning Level = "warning"
	Info    Level = "info"
)

// ParseLevel maps a free-form level to a known one. Empty and unknown values
// become Info.
func ParseLevel(s string) Level {
	switch l := Level(strings.ToLower(strings.TrimSpace(s))); l {
	case Success, Error, Warning, Info:
		return l
	default:
		return Info
	}
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case Success, Error, Warning, Info:
		return true
	}
	return false
}

func (l Level) String() string { return string(l) }
