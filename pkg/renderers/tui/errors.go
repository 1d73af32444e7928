package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrInvalidDate is reported by the typed date prompt validator.
	ErrInvalidDate = errors.New("tui: invalid date")
)
