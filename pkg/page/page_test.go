package page

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uikit/pkg/datepicker"
	"github.com/goliatone/go-uikit/pkg/modal"
)

func newPicker(id string) *datepicker.Picker {
	now := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	return datepicker.New(datepicker.Config{ID: id, Name: id}, datepicker.WithClock(datepicker.FixedClock(now)))
}

func newTestPage(t *testing.T) *Page {
	t.Helper()
	p := New()
	if err := p.AddModal(modal.New("confirm", "Confirm")); err != nil {
		t.Fatalf("add modal: %v", err)
	}
	if err := p.AddDatePicker(newPicker("birthday")); err != nil {
		t.Fatalf("add picker: %v", err)
	}
	return p
}

func TestPage_RejectsDuplicateAndEmptyIDs(t *testing.T) {
	p := newTestPage(t)

	if err := p.AddModal(modal.New("birthday", "Clash")); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
	if err := p.AddDatePicker(newPicker("  ")); !errors.Is(err, ErrEmptyID) {
		t.Fatalf("expected empty id error, got %v", err)
	}
	if err := p.AddModal(nil); err == nil {
		t.Fatalf("expected error for nil modal")
	}
}

func TestPage_KindGuard(t *testing.T) {
	p := newTestPage(t)

	if p.OpenDatePicker("confirm") {
		t.Fatalf("modal id must not open as a date picker")
	}
	if p.OpenModal("birthday") {
		t.Fatalf("date picker id must not open as a modal")
	}
	if p.OpenModal("missing") || p.CloseDatePicker("missing") {
		t.Fatalf("unknown ids must report false")
	}
	if diff := cmp.Diff([]string(nil), p.Open()); diff != "" {
		t.Fatalf("no widget should be open (-want +got):\n%s", diff)
	}

	if kind, ok := p.Kind("birthday"); !ok || kind != KindDatePicker {
		t.Fatalf("unexpected kind %q", kind)
	}
}

func TestPage_OpenCloseByID(t *testing.T) {
	p := newTestPage(t)

	if !p.OpenModal("confirm") || !p.OpenDatePicker("birthday") {
		t.Fatalf("expected both widgets to open")
	}
	if diff := cmp.Diff([]string{"confirm", "birthday"}, p.Open()); diff != "" {
		t.Fatalf("open widgets mismatch (-want +got):\n%s", diff)
	}

	if !p.CloseModal("confirm") {
		t.Fatalf("expected close to succeed")
	}
	m, _ := p.Modal("confirm")
	if m.Visible() {
		t.Fatalf("modal should be closed")
	}
	if !p.CloseDatePicker("birthday") {
		t.Fatalf("expected close to succeed")
	}
}

func TestPage_EscapeDismissesEveryOpenWidget(t *testing.T) {
	p := newTestPage(t)
	if err := p.AddModal(modal.New("help", "Help")); err != nil {
		t.Fatalf("add modal: %v", err)
	}
	p.OpenModal("confirm")
	p.OpenDatePicker("birthday")

	dp, _ := p.DatePicker("birthday")
	dp.SelectYear(2024)

	if n := p.KeyDown("Enter"); n != 0 {
		t.Fatalf("non-escape keys must be ignored, closed %d", n)
	}
	if n := p.KeyDown(KeyEscape); n != 2 {
		t.Fatalf("expected 2 widgets dismissed, got %d", n)
	}
	if len(p.Open()) != 0 {
		t.Fatalf("expected nothing open after escape, got %v", p.Open())
	}
	if !dp.State().SelYear.Is(2024) {
		t.Fatalf("escape must keep the picker selection")
	}
}

func TestPage_Remove(t *testing.T) {
	p := newTestPage(t)

	if !p.Remove("confirm") {
		t.Fatalf("expected remove to succeed")
	}
	if p.Remove("confirm") {
		t.Fatalf("second remove should report false")
	}
	if p.OpenModal("confirm") {
		t.Fatalf("removed modal must not open")
	}
	if diff := cmp.Diff([]string{"birthday"}, p.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	if err := p.AddModal(modal.New("confirm", "Again")); err != nil {
		t.Fatalf("id should be reusable after remove: %v", err)
	}
}
