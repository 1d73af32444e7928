package uikit

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goliatone/go-uikit/pkg/page"
)

func TestRenderDatePicker(t *testing.T) {
	cfg := DatePickerConfig{ID: "dob", Name: "date_of_birth", Label: "Date of Birth", Value: "2024-01-05"}

	html, err := RenderDatePicker(context.Background(), cfg, "")
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	for _, want := range []string{`id="dob"`, `value="2024-01-05"`, "Jan 5, 2024", `aria-label="Date of Birth date picker"`} {
		if !strings.Contains(string(html), want) {
			t.Errorf("expected %q in markup", want)
		}
	}

	out, err := RenderDatePicker(context.Background(), cfg, "json")
	if err != nil {
		t.Fatalf("render json: %v", err)
	}
	var snap struct {
		Value   string `json:"value"`
		Display string `json:"display"`
	}
	if err := json.Unmarshal(out, &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Value != "2024-01-05" || snap.Display != "Jan 5, 2024" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestFacadeWiresPage(t *testing.T) {
	p := NewPage()
	if err := p.AddModal(NewModal("confirm", "Confirm")); err != nil {
		t.Fatalf("add modal: %v", err)
	}
	if err := p.AddDatePicker(NewDatePicker(DatePickerConfig{ID: "dob", Name: "dob"})); err != nil {
		t.Fatalf("add picker: %v", err)
	}
	p.OpenModal("confirm")
	p.OpenDatePicker("dob")
	if n := p.KeyDown(page.KeyEscape); n != 2 {
		t.Fatalf("expected escape to dismiss 2 widgets, got %d", n)
	}
}
