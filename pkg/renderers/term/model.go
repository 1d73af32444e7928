// Package term renders a date picker as an interactive bubbletea calendar.
// The picker and a key help dialog live on a page.Page, so Escape dismisses
// every open widget the same way the browser runtime does.
package term

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-uikit/pkg/datepicker"
	"github.com/goliatone/go-uikit/pkg/modal"
	"github.com/goliatone/go-uikit/pkg/page"
)

// HelpModalID is the page id of the key help dialog.
const HelpModalID = "term-help"

// ErrAborted is returned by Run when the picker is dismissed without a
// confirmed date.
var ErrAborted = errors.New("term: aborted")

var helpLines = []string{
	"arrows/hjkl  move",
	"enter        select (twice on a day to confirm)",
	"c            confirm",
	"t            today",
	"b/backspace  back",
	"?            toggle help",
	"esc          close",
}

// Option configures a Model.
type Option func(*Model)

// WithClock sets the picker clock.
func WithClock(clock datepicker.Clock) Option {
	return func(m *Model) {
		if clock != nil {
			m.clock = clock
		}
	}
}

// WithStyles overrides DefaultStyles.
func WithStyles(styles Styles) Option {
	return func(m *Model) {
		m.styles = styles
	}
}

// Model is the bubbletea model of a terminal date picker.
type Model struct {
	page   *page.Page
	picker *datepicker.Picker
	help   *modal.Modal
	clock  datepicker.Clock
	styles Styles

	cursor  int
	width   int
	done    bool
	aborted bool
}

var _ tea.Model = Model{}

// New builds a model with the picker already open.
func New(cfg datepicker.Config, options ...Option) Model {
	m := Model{
		clock:  datepicker.SystemClock,
		styles: DefaultStyles(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&m)
	}
	if strings.TrimSpace(cfg.ID) == "" {
		cfg.ID = "term-datepicker"
	}

	m.page = page.New()
	m.picker = datepicker.New(cfg, datepicker.WithClock(m.clock))
	m.help = modal.New(HelpModalID, "Keys")
	_ = m.page.AddDatePicker(m.picker)
	_ = m.page.AddModal(m.help)

	m.page.OpenDatePicker(m.picker.ID())
	m.cursor = defaultCursor(m.picker.View())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.aborted = true
		return m, tea.Quit
	case "esc":
		m.page.KeyDown(page.KeyEscape)
		if !m.picker.IsOpen() {
			m.aborted = true
			return m, tea.Quit
		}
		return m, nil
	case "?":
		if m.help.IsOpen() {
			m.page.CloseModal(HelpModalID)
		} else {
			m.page.OpenModal(HelpModalID)
		}
		return m, nil
	}

	if m.help.IsOpen() {
		return m, nil
	}

	view := m.picker.View()
	switch msg.String() {
	case "left", "h":
		m.move(-1, len(view.Cells))
	case "right", "l":
		m.move(1, len(view.Cells))
	case "up", "k":
		m.move(-columns(view.Step), len(view.Cells))
	case "down", "j":
		m.move(columns(view.Step), len(view.Cells))
	case "enter", " ":
		m.activate(view)
	case "c":
		m.dispatch(datepicker.Event{Action: datepicker.ActionConfirm})
	case "t":
		m.dispatch(datepicker.Event{Action: datepicker.ActionToday})
	case "b", "backspace":
		m.dispatch(datepicker.Event{Action: datepicker.ActionBack})
	}

	if !m.picker.IsOpen() && m.picker.Value() != "" {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) move(delta, count int) {
	next := m.cursor + delta
	if next < 0 || next >= count {
		return
	}
	m.cursor = next
}

// activate applies the cell under the cursor. Pressing enter on the
// selected day confirms it, mirroring a double click.
func (m *Model) activate(view datepicker.View) {
	if m.cursor < 0 || m.cursor >= len(view.Cells) {
		return
	}
	cell := view.Cells[m.cursor]
	if !cell.Interactive() {
		return
	}
	switch view.Step {
	case datepicker.StepYear:
		m.dispatch(datepicker.Event{Action: datepicker.ActionYear, Value: cell.Value})
	case datepicker.StepMonth:
		m.dispatch(datepicker.Event{Action: datepicker.ActionMonth, Value: cell.Value})
	default:
		action := datepicker.ActionDay
		if cell.Selected {
			action = datepicker.ActionDayDblClick
		}
		m.dispatch(datepicker.Event{Action: action, Value: cell.Value})
	}
}

// dispatch applies ev and resets the cursor when the step or the view
// month changed.
func (m *Model) dispatch(ev datepicker.Event) {
	before := m.picker.State()
	m.picker.Dispatch(ev)
	after := m.picker.State()
	if before.Step != after.Step || before.ViewYear != after.ViewYear || before.ViewMonth != after.ViewMonth {
		m.cursor = defaultCursor(m.picker.View())
	}
}

// Value returns the confirmed ISO date.
func (m Model) Value() string { return m.picker.Value() }

// Display returns the confirmed display text.
func (m Model) Display() string { return m.picker.Display() }

// Done reports whether a date was confirmed.
func (m Model) Done() bool { return m.done }

// Aborted reports whether the picker was dismissed.
func (m Model) Aborted() bool { return m.aborted }

// Cursor returns the index of the highlighted cell.
func (m Model) Cursor() int { return m.cursor }

// Picker exposes the underlying controller.
func (m Model) Picker() *datepicker.Picker { return m.picker }

// HelpOpen reports whether the key help dialog is shown.
func (m Model) HelpOpen() bool { return m.help.IsOpen() }

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return m.styles.Value.Render("Selected "+m.picker.Display()) + "\n"
	}
	if m.aborted {
		return ""
	}

	view := m.picker.View()
	var b strings.Builder

	header := view.Title
	if label := strings.TrimSpace(m.picker.Config().Label); label != "" {
		header = label + " · " + header
	}
	b.WriteString(m.styles.Title.Render(header))
	b.WriteString("\n\n")

	width := cellWidth(view.Step)
	cols := columns(view.Step)
	if len(view.Weekdays) > 0 {
		for _, wd := range view.Weekdays {
			b.WriteString(m.styles.Muted.Render(pad(wd, width)))
		}
		b.WriteString("\n")
	}
	for i, cell := range view.Cells {
		b.WriteString(m.renderCell(cell, i == m.cursor, width))
		if (i+1)%cols == 0 {
			b.WriteString("\n")
		}
	}
	if len(view.Cells)%cols != 0 {
		b.WriteString("\n")
	}

	if display := m.picker.Display(); display != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Value.Render("Current: " + display))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("? help · esc close"))

	if m.help.IsOpen() {
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render(m.help.Title() + "\n" + strings.Join(helpLines, "\n")))
	}
	return m.styles.Frame.Render(b.String())
}

func (m Model) renderCell(cell datepicker.Cell, cursor bool, width int) string {
	text := pad(cell.Label, width)
	style := m.styles.Cell
	switch {
	case !cell.Interactive():
		style = m.styles.Muted
	case cell.Selected:
		style = m.styles.Selected
	case cell.Today:
		style = m.styles.Today
	}
	if cursor {
		style = style.Inherit(m.styles.Cursor)
	}
	return style.Render(text)
}

// Run starts an interactive program and returns the confirmed ISO date.
func Run(ctx context.Context, cfg datepicker.Config, options ...Option) (string, error) {
	program := tea.NewProgram(New(cfg, options...), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("term: run program: %w", err)
	}
	m, ok := final.(Model)
	if !ok || !m.Done() {
		return "", ErrAborted
	}
	return m.Value(), nil
}

func columns(step datepicker.Step) int {
	switch step {
	case datepicker.StepMonth:
		return 3
	case datepicker.StepDay:
		return 7
	default:
		return 4
	}
}

func cellWidth(step datepicker.Step) int {
	switch step {
	case datepicker.StepMonth:
		return 5
	case datepicker.StepDay:
		return 4
	default:
		return 6
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// defaultCursor highlights the selected cell, then today, then the first
// interactive cell.
func defaultCursor(view datepicker.View) int {
	today := -1
	first := -1
	for i, c := range view.Cells {
		if c.Selected {
			return i
		}
		if c.Today && today < 0 {
			today = i
		}
		if c.Interactive() && first < 0 {
			first = i
		}
	}
	if today >= 0 {
		return today
	}
	if first >= 0 {
		return first
	}
	return 0
}
