package datepicker

import (
	"strconv"
	"strings"
)

// Action names an interaction forwarded from a front end. The values match
// the data-ac-datepicker-* attribute suffixes used in the markup.
type Action string

const (
	ActionOpen        Action = "open"
	ActionClose       Action = "close"
	ActionCancel      Action = "cancel"
	ActionOverlay     Action = "overlay"
	ActionEscape      Action = "escape"
	ActionConfirm     Action = "confirm"
	ActionToday       Action = "today"
	ActionBack        Action = "back"
	ActionYear        Action = "year"
	ActionMonth       Action = "month"
	ActionDay         Action = "day"
	ActionDayDblClick Action = "day-dblclick"
)

// Event is one interaction applied to a picker. Value carries the cell
// value for year, month and day actions.
type Event struct {
	Action Action
	Value  int
}

type handler struct {
	needsValue bool
	apply      func(p *Picker, value int)
}

// dispatch maps every supported action to its transition. Dismissal actions
// share the close path and never touch the selection.
var dispatch = map[Action]handler{
	ActionOpen:        {apply: func(p *Picker, _ int) { p.Open() }},
	ActionClose:       {apply: func(p *Picker, _ int) { p.Close() }},
	ActionCancel:      {apply: func(p *Picker, _ int) { p.Cancel() }},
	ActionOverlay:     {apply: func(p *Picker, _ int) { p.Close() }},
	ActionEscape:      {apply: func(p *Picker, _ int) { p.Dismiss() }},
	ActionConfirm:     {apply: func(p *Picker, _ int) { p.Confirm() }},
	ActionToday:       {apply: func(p *Picker, _ int) { p.Today() }},
	ActionBack:        {apply: func(p *Picker, _ int) { p.Back() }},
	ActionYear:        {needsValue: true, apply: func(p *Picker, v int) { p.SelectYear(v) }},
	ActionMonth:       {needsValue: true, apply: func(p *Picker, v int) { p.SelectMonth(v) }},
	ActionDay:         {needsValue: true, apply: func(p *Picker, v int) { p.SelectDay(v) }},
	ActionDayDblClick: {needsValue: true, apply: func(p *Picker, v int) { p.DoubleClickDay(v) }},
}

// Known reports whether the action is handled by Dispatch.
func (a Action) Known() bool {
	_, ok := dispatch[a]
	return ok
}

// ParseEvent builds an event from its wire form (form post or data
// attributes). It reports false for unknown actions and for value actions
// whose value is not an integer.
func ParseEvent(action, value string) (Event, bool) {
	a := Action(strings.ToLower(strings.TrimSpace(action)))
	h, ok := dispatch[a]
	if !ok {
		return Event{}, false
	}
	ev := Event{Action: a}
	if !h.needsValue {
		return ev, true
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return Event{}, false
	}
	ev.Value = n
	return ev, true
}

// Dispatch applies an event. Unknown actions are ignored and reported as
// false; a known action whose transition is a no-op still reports true.
func (p *Picker) Dispatch(ev Event) bool {
	h, ok := dispatch[ev.Action]
	if !ok {
		return false
	}
	h.apply(p, ev.Value)
	return true
}
