package datepicker

import (
	"time"

	"github.com/goliatone/go-uikit/pkg/overlay"
)

// Option configures a Picker at construction.
type Option func(*Picker)

// WithClock overrides the clock used for today markers and the Today action.
func WithClock(clock Clock) Option {
	return func(p *Picker) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// Picker is the controller of one date picker instance. It is owned by the
// code that created it and is not safe for concurrent use.
type Picker struct {
	cfg     Config
	clock   Clock
	state   State
	overlay overlay.Overlay

	value   string
	display string
}

// New constructs a picker, deriving its state from cfg.
func New(cfg Config, options ...Option) *Picker {
	p := &Picker{
		cfg:   cfg,
		clock: SystemClock,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	p.state = NewState(cfg, p.clock.Now())
	p.value = cfg.Value
	p.display = DisplayFromISO(cfg.Value)
	return p
}

// ID returns the markup identifier of the widget.
func (p *Picker) ID() string { return p.cfg.ID }

// Config returns the configuration the picker was built from.
func (p *Picker) Config() Config { return p.cfg }

// State returns a copy of the interaction state.
func (p *Picker) State() State { return p.state }

// IsOpen reports whether the picker overlay is visible.
func (p *Picker) IsOpen() bool { return p.overlay.Visible() }

// Overlay exposes the overlay display convention for renderers.
func (p *Picker) Overlay() *overlay.Overlay { return &p.overlay }

// Value returns the committed hidden field value (YYYY-MM-DD).
func (p *Picker) Value() string { return p.value }

// Display returns the committed trigger text.
func (p *Picker) Display() string { return p.display }

// Now returns the picker clock reading.
func (p *Picker) Now() time.Time { return p.clock.Now() }

// Open shows the picker. With a selection it jumps straight to the day step
// of the selected month, otherwise it starts at the year step.
func (p *Picker) Open() {
	if p.state.SelYear.Valid {
		p.state.Step = StepDay
		p.state.ViewYear = p.state.SelYear.Value
		if p.state.SelMonth.Valid {
			p.state.ViewMonth = p.state.SelMonth.Value
		}
	} else {
		p.state.Step = StepYear
	}
	p.overlay.Show()
}

// Close hides the picker without touching the state.
func (p *Picker) Close() {
	p.overlay.Hide()
}

// Cancel closes the picker from the cancel button. The selection is kept.
func (p *Picker) Cancel() {
	p.Close()
}

// Dismiss closes the picker without committing; it is the Escape handler.
func (p *Picker) Dismiss() {
	p.Close()
}

// SelectYear picks a year from the year grid and advances to the month
// step. Years outside the configured range are ignored.
func (p *Picker) SelectYear(year int) {
	if year < p.state.MinYear || year > p.state.MaxYear {
		return
	}
	p.state.ViewYear = year
	p.state.SelYear = Int(year)
	p.state.Step = StepMonth
}

// SelectMonth picks a zero-based month and advances to the day step.
func (p *Picker) SelectMonth(month int) {
	if month < 0 || month > 11 {
		return
	}
	p.state.ViewMonth = month
	p.state.SelMonth = Int(month)
	p.state.Step = StepDay
}

// SelectDay picks a day of the view month. It does not confirm.
func (p *Picker) SelectDay(day int) {
	if day < 1 || day > DaysIn(p.state.ViewYear, p.state.ViewMonth) {
		return
	}
	p.state.SelDay = Int(day)
}

// Today selects the current date and shows its month.
func (p *Picker) Today() {
	now := p.clock.Now()
	year, month := now.Year(), int(now.Month())-1

	p.state.SelYear = Int(year)
	p.state.SelMonth = Int(month)
	p.state.SelDay = Int(now.Day())
	p.state.ViewYear = year
	p.state.ViewMonth = month
	p.state.Step = StepDay
}

// Back moves one step up: day to month, month to year. It is a no-op on the
// year step.
func (p *Picker) Back() {
	switch p.state.Step {
	case StepDay:
		p.state.Step = StepMonth
	case StepMonth:
		p.state.Step = StepYear
	}
}

// Confirm commits the selection into the hidden value and the display text
// and closes the picker. It returns false, changing nothing, unless year,
// month and day are all selected.
func (p *Picker) Confirm() bool {
	s := p.state
	if !s.HasSelection() {
		return false
	}
	p.value = FormatISO(s.SelYear.Value, s.SelMonth.Value, s.SelDay.Value)
	p.display = FormatDisplay(s.SelYear.Value, s.SelMonth.Value, s.SelDay.Value)
	p.Close()
	return true
}

// DoubleClickDay selects a day and confirms immediately. The selected year
// and month are used as they are, even if the view moved since they were
// picked.
func (p *Picker) DoubleClickDay(day int) bool {
	if day < 1 || day > DaysIn(p.state.ViewYear, p.state.ViewMonth) {
		return false
	}
	p.state.SelDay = Int(day)
	return p.Confirm()
}

// View renders the current step.
func (p *Picker) View() View {
	return BuildView(p.state, p.clock.Now())
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Config  Config `json:"config"`
	State   State  `json:"state"`
	View    View   `json:"view"`
	Open    bool   `json:"open"`
	Value   string `json:"value"`
	Display string `json:"display"`
}

// Snapshot captures the picker for rendering.
func (p *Picker) Snapshot() Snapshot {
	return Snapshot{
		Config:  p.cfg,
		State:   p.state,
		View:    p.View(),
		Open:    p.IsOpen(),
		Value:   p.value,
		Display: p.display,
	}
}
