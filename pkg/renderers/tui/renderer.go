package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-uikit/pkg/datepicker"
	"github.com/goliatone/go-uikit/pkg/render"
)

const (
	optionBack     = "« Back"
	optionToday    = "Today"
	optionTypeDate = "Enter a date..."

	// Leading non-cell options of each select.
	yearShortcuts  = 2
	monthShortcuts = 1
	dayShortcuts   = 2
)

// Result is the committed outcome of a terminal picking session.
type Result struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Value   string `json:"value"`
	Display string `json:"display"`
}

// Renderer drives a date picker through terminal prompts: year, month and
// day selects followed by a confirmation. It implements render.Renderer so
// it can be registered next to the HTML renderers.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	theme        Theme
	clock        datepicker.Clock
	pageSize     int
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) *Renderer {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
		clock:        datepicker.SystemClock,
		pageSize:     DefaultPageSize,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by RenderPicker.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// RenderPicker runs an interactive session seeded from the snapshot and
// serializes the committed value.
func (r *Renderer) RenderPicker(ctx context.Context, snap datepicker.Snapshot) ([]byte, error) {
	cfg := snap.Config
	if snap.Value != "" {
		cfg.Value = snap.Value
	}
	result, err := r.Pick(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return r.serialize(result)
}

// Pick opens a picker for cfg and prompts until a date is confirmed. An
// interrupted prompt dismisses the picker and returns ErrAborted.
func (r *Renderer) Pick(ctx context.Context, cfg datepicker.Config) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("tui: context is required")
	}
	if r.driver == nil {
		return Result{}, errors.New("tui: prompt driver is nil")
	}

	p := datepicker.New(cfg, datepicker.WithClock(r.clock))
	p.Dispatch(datepicker.Event{Action: datepicker.ActionOpen})

	for p.IsOpen() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		var err error
		switch p.State().Step {
		case datepicker.StepYear:
			err = r.promptYear(ctx, p)
		case datepicker.StepMonth:
			err = r.promptMonth(ctx, p)
		default:
			err = r.promptDay(ctx, p)
		}
		if err != nil {
			p.Dispatch(datepicker.Event{Action: datepicker.ActionEscape})
			return Result{}, err
		}
	}

	result := Result{ID: p.ID(), Name: cfg.Name, Value: p.Value(), Display: p.Display()}
	_ = r.driver.Info(ctx, r.theme.InfoPrefix+"Selected "+result.Display)
	return result, nil
}

func (r *Renderer) promptYear(ctx context.Context, p *datepicker.Picker) error {
	view := p.View()
	options := []string{optionToday, optionTypeDate}
	for _, c := range view.Cells {
		options = append(options, c.Label)
	}
	def := yearShortcuts
	if view.ScrollTo >= 0 {
		def += view.ScrollTo
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      r.message(p, view.Title),
		Options:      options,
		DefaultIndex: def,
		PageSize:     r.pageSize,
	})
	if err != nil {
		return err
	}

	switch {
	case idx == 0:
		p.Dispatch(datepicker.Event{Action: datepicker.ActionToday})
		return r.confirm(ctx, p)
	case idx == 1:
		return r.promptTyped(ctx, p)
	case idx-yearShortcuts < len(view.Cells) && idx >= yearShortcuts:
		p.Dispatch(datepicker.Event{Action: datepicker.ActionYear, Value: view.Cells[idx-yearShortcuts].Value})
	}
	return nil
}

func (r *Renderer) promptMonth(ctx context.Context, p *datepicker.Picker) error {
	view := p.View()
	options := []string{optionBack}
	def := monthShortcuts
	for i, c := range view.Cells {
		options = append(options, datepicker.MonthName(c.Value))
		if c.Selected || (c.Today && def == monthShortcuts) {
			def = monthShortcuts + i
		}
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      r.message(p, view.Title),
		Options:      options,
		DefaultIndex: def,
		PageSize:     r.pageSize,
	})
	if err != nil {
		return err
	}

	switch {
	case idx == 0:
		p.Dispatch(datepicker.Event{Action: datepicker.ActionBack})
	case idx >= monthShortcuts && idx-monthShortcuts < len(view.Cells):
		p.Dispatch(datepicker.Event{Action: datepicker.ActionMonth, Value: view.Cells[idx-monthShortcuts].Value})
	}
	return nil
}

func (r *Renderer) promptDay(ctx context.Context, p *datepicker.Picker) error {
	view := p.View()
	options := []string{optionBack, optionToday}
	var days []datepicker.Cell
	def := dayShortcuts
	for _, c := range view.Cells {
		if c.Kind != datepicker.CellDay {
			continue
		}
		if c.Selected {
			def = dayShortcuts + len(days)
		}
		days = append(days, c)
		options = append(options, c.Label)
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      r.message(p, view.Title),
		Options:      options,
		DefaultIndex: def,
		PageSize:     r.pageSize,
	})
	if err != nil {
		return err
	}

	switch {
	case idx == 0:
		p.Dispatch(datepicker.Event{Action: datepicker.ActionBack})
		return nil
	case idx == 1:
		p.Dispatch(datepicker.Event{Action: datepicker.ActionToday})
	case idx >= dayShortcuts && idx-dayShortcuts < len(days):
		p.Dispatch(datepicker.Event{Action: datepicker.ActionDay, Value: days[idx-dayShortcuts].Value})
	default:
		return nil
	}
	return r.confirm(ctx, p)
}

// confirm asks before committing the current selection. Declining keeps
// the picker open on the day step.
func (r *Renderer) confirm(ctx context.Context, p *datepicker.Picker) error {
	s := p.State()
	if !s.HasSelection() {
		return nil
	}
	ok, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: r.theme.PromptPrefix + "Use " + datepicker.FormatDisplay(s.SelYear.Value, s.SelMonth.Value, s.SelDay.Value) + "?",
		Default: true,
	})
	if err != nil {
		return err
	}
	if ok {
		p.Dispatch(datepicker.Event{Action: datepicker.ActionConfirm})
	}
	return nil
}

// promptTyped accepts a YYYY-MM-DD date and replays it as year, month and
// day selections before confirming.
func (r *Renderer) promptTyped(ctx context.Context, p *datepicker.Picker) error {
	s := p.State()
	answer, err := r.driver.Input(ctx, InputConfig{
		Message:   r.message(p, "Date (YYYY-MM-DD)"),
		Default:   p.Value(),
		Validator: func(v string) error { return validateTyped(v, s.MinYear, s.MaxYear) },
	})
	if err != nil {
		return err
	}
	if err := validateTyped(answer, s.MinYear, s.MaxYear); err != nil {
		_ = r.driver.Info(ctx, r.theme.InfoPrefix+err.Error())
		return nil
	}

	t, _ := time.Parse(datepicker.ISOLayout, strings.TrimSpace(answer))
	for _, ev := range []datepicker.Event{
		{Action: datepicker.ActionYear, Value: t.Year()},
		{Action: datepicker.ActionMonth, Value: int(t.Month()) - 1},
		{Action: datepicker.ActionDay, Value: t.Day()},
		{Action: datepicker.ActionConfirm},
	} {
		p.Dispatch(ev)
	}
	return nil
}

func validateTyped(value string, minYear, maxYear int) error {
	t, err := time.Parse(datepicker.ISOLayout, strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("%w: expected YYYY-MM-DD", ErrInvalidDate)
	}
	if t.Year() < minYear || t.Year() > maxYear {
		return fmt.Errorf("%w: year must be between %d and %d", ErrInvalidDate, minYear, maxYear)
	}
	return nil
}

func (r *Renderer) message(p *datepicker.Picker, title string) string {
	label := strings.TrimSpace(p.Config().Label)
	if label == "" {
		return r.theme.PromptPrefix + title
	}
	return r.theme.PromptPrefix + label + ": " + title
}

func (r *Renderer) serialize(result Result) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		name := result.Name
		if name == "" {
			name = result.ID
		}
		return []byte(url.Values{name: {result.Value}}.Encode()), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(result)), nil
	default:
		out, err := json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("tui: encode result: %w", err)
		}
		return out, nil
	}
}

func prettyPrint(result Result) string {
	var b strings.Builder
	key := result.Name
	if key == "" {
		key = result.ID
	}
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(result.Display)
	if result.Value != "" {
		b.WriteString(" (")
		b.WriteString(result.Value)
		b.WriteString(")")
	}
	b.WriteString("\n")
	return b.String()
}
