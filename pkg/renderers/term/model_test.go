package term

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-uikit/pkg/datepicker"
	"github.com/goliatone/go-uikit/pkg/testsupport"
)

func newTestModel(value string) Model {
	return New(datepicker.Config{
		ID:      "dob",
		Name:    "date_of_birth",
		Label:   "Date of Birth",
		Value:   value,
		MinYear: 2020,
		MaxYear: 2030,
	}, WithClock(testsupport.Clock()))
}

// helper to send a message through Update and return the updated model.
func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewOpensOnYearStep(t *testing.T) {
	m := newTestModel("")
	if !m.Picker().IsOpen() {
		t.Fatal("picker should be open")
	}
	if m.Picker().State().Step != datepicker.StepYear {
		t.Fatalf("expected year step, got %v", m.Picker().State().Step)
	}
	// 2025 is the current year and sits at index 5 of 2020..2030.
	if m.Cursor() != 5 {
		t.Fatalf("expected cursor on the current year, got %d", m.Cursor())
	}
	if m.Init() != nil {
		t.Fatal("Init should not schedule commands")
	}
}

func TestKeyboardFlowConfirmsDate(t *testing.T) {
	m := newTestModel("")

	m, _ = update(m, key(tea.KeyLeft))
	m, _ = update(m, key(tea.KeyEnter))
	if m.Picker().State().Step != datepicker.StepMonth {
		t.Fatalf("expected month step after choosing a year")
	}
	if m.Cursor() != 0 {
		t.Fatalf("expected cursor on January, got %d", m.Cursor())
	}

	m, _ = update(m, key(tea.KeyEnter))
	if got := m.Picker().View().Title; got != "January 2024" {
		t.Fatalf("unexpected title %q", got)
	}
	// January 1st 2024 is a Monday, so the first day sits at index 1.
	if m.Cursor() != 1 {
		t.Fatalf("expected cursor on the first day, got %d", m.Cursor())
	}

	for i := 0; i < 4; i++ {
		m, _ = update(m, key(tea.KeyRight))
	}
	m, cmd := update(m, key(tea.KeyEnter))
	if cmd != nil {
		t.Fatal("selecting a day should not quit")
	}
	if !m.Picker().State().SelDay.Is(5) {
		t.Fatalf("expected day 5 selected, got %v", m.Picker().State().SelDay)
	}

	m, cmd = update(m, key(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("confirming should quit the program")
	}
	if !m.Done() || m.Value() != "2024-01-05" {
		t.Fatalf("expected 2024-01-05 confirmed, got done=%v value=%q", m.Done(), m.Value())
	}
	if !strings.Contains(m.View(), "Jan 5, 2024") {
		t.Fatalf("final view should show the selection: %q", m.View())
	}
}

func TestTodayAndConfirmKeys(t *testing.T) {
	m := newTestModel("")
	m, _ = update(m, runes("t"))
	if got := m.Picker().View().Cells[m.Cursor()]; !got.Selected || got.Value != 14 {
		t.Fatalf("cursor should follow today's selection, got %+v", got)
	}
	m, cmd := update(m, runes("c"))
	if cmd == nil || m.Value() != "2025-03-14" {
		t.Fatalf("expected 2025-03-14 confirmed, got %q", m.Value())
	}
}

func TestBackKey(t *testing.T) {
	m := newTestModel("2024-01-05")
	if m.Picker().State().Step != datepicker.StepDay {
		t.Fatalf("preselected picker should open on the day step")
	}
	m, _ = update(m, key(tea.KeyBackspace))
	if m.Picker().State().Step != datepicker.StepMonth {
		t.Fatalf("expected month step after back")
	}
	if m.Cursor() != 0 {
		t.Fatalf("expected cursor on the selected month, got %d", m.Cursor())
	}
	m, _ = update(m, runes("b"))
	if m.Picker().State().Step != datepicker.StepYear {
		t.Fatalf("expected year step after second back")
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	m := newTestModel("")
	for i := 0; i < 10; i++ {
		m, _ = update(m, key(tea.KeyUp))
	}
	if m.Cursor() != 1 {
		t.Fatalf("up should stop at the top row, got %d", m.Cursor())
	}
	for i := 0; i < 20; i++ {
		m, _ = update(m, key(tea.KeyRight))
	}
	if m.Cursor() != 10 {
		t.Fatalf("right should stop at the last cell, got %d", m.Cursor())
	}
}

func TestFillerCellsAreInert(t *testing.T) {
	m := newTestModel("2024-01-05")
	m.cursor = 0 // December 31st filler
	m, _ = update(m, key(tea.KeyEnter))
	if !m.Picker().State().SelDay.Is(5) {
		t.Fatalf("filler cells must not change the selection")
	}
}

func TestHelpModalToggle(t *testing.T) {
	m := newTestModel("")
	m, _ = update(m, runes("?"))
	if !m.HelpOpen() {
		t.Fatal("expected help open")
	}
	if !strings.Contains(m.View(), "toggle help") {
		t.Fatal("help text should be rendered")
	}

	cursor := m.Cursor()
	m, _ = update(m, key(tea.KeyRight))
	if m.Cursor() != cursor {
		t.Fatal("navigation should be ignored while help is open")
	}

	m, _ = update(m, runes("?"))
	if m.HelpOpen() {
		t.Fatal("expected help closed")
	}
}

func TestEscapeDismissesEverything(t *testing.T) {
	m := newTestModel("")
	m, _ = update(m, runes("?"))

	m, cmd := update(m, key(tea.KeyEsc))
	if cmd == nil {
		t.Fatal("escape should quit once the picker is dismissed")
	}
	if m.HelpOpen() || m.Picker().IsOpen() {
		t.Fatal("escape should close both the help dialog and the picker")
	}
	if !m.Aborted() || m.Done() {
		t.Fatal("dismissal should mark the model aborted")
	}
	if m.Value() != "" {
		t.Fatalf("dismissal must not commit, got %q", m.Value())
	}
}

func TestViewShowsGrid(t *testing.T) {
	m := newTestModel("2024-01-05")
	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	out := m.View()
	for _, want := range []string{"Date of Birth", "January 2024", "Su", "Sa", "31", "Current: Jan 5, 2024"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}
