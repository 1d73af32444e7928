package datepicker

import (
	"encoding/json"
	"strconv"
	"time"
)

// Step is the granularity of the calendar currently displayed.
type Step int

const (
	StepYear Step = iota
	StepMonth
	StepDay
)

// MarshalText encodes the step by name.
func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s Step) String() string {
	switch s {
	case StepMonth:
		return "month"
	case StepDay:
		return "day"
	default:
		return "year"
	}
}

// NullInt is an integer that may be unset.
type NullInt struct {
	Value int
	Valid bool
}

// Int returns a set NullInt.
func Int(v int) NullInt {
	return NullInt{Value: v, Valid: true}
}

// Is reports whether n is set and equal to v.
func (n NullInt) Is(v int) bool {
	return n.Valid && n.Value == v
}

// MarshalJSON encodes an unset value as null.
func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// UnmarshalJSON accepts null or an integer.
func (n *NullInt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NullInt{}
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Int(v)
	return nil
}

func (n NullInt) String() string {
	if !n.Valid {
		return "null"
	}
	return strconv.Itoa(n.Value)
}

// State is the interaction state of one picker instance. Months are
// zero-based.
type State struct {
	Step      Step    `json:"step"`
	MinYear   int     `json:"min_year"`
	MaxYear   int     `json:"max_year"`
	ViewYear  int     `json:"view_year"`
	ViewMonth int     `json:"view_month"`
	SelYear   NullInt `json:"sel_year"`
	SelMonth  NullInt `json:"sel_month"`
	SelDay    NullInt `json:"sel_day"`
}

// HasSelection reports whether a full date is selected.
func (s State) HasSelection() bool {
	return s.SelYear.Valid && s.SelMonth.Valid && s.SelDay.Valid
}

// NewState derives the initial state from a widget configuration. The
// existing value is parsed once; the view defaults to now for any part the
// value does not provide.
func NewState(cfg Config, now time.Time) State {
	selYear, selMonth, selDay := ParseISO(cfg.Value)
	minYear, maxYear := clampYears(ResolveMinYear(cfg.MinYear, now), ResolveMaxYear(cfg.MaxYear, now))

	state := State{
		Step:      StepYear,
		MinYear:   minYear,
		MaxYear:   maxYear,
		ViewYear:  now.Year(),
		ViewMonth: int(now.Month()) - 1,
		SelYear:   selYear,
		SelMonth:  selMonth,
		SelDay:    selDay,
	}
	if selYear.Valid && selYear.Value != 0 {
		state.ViewYear = selYear.Value
	}
	if selMonth.Valid {
		state.ViewMonth = selMonth.Value
	}
	return state
}
