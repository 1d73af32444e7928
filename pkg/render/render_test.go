package render_test

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-uikit/pkg/datepicker"
	"github.com/goliatone/go-uikit/pkg/render"
)

func TestString(t *testing.T) {
	ctx := context.Background()

	got, err := render.String(ctx, render.Raw("<b>hi</b>"))
	if err != nil || got != "<b>hi</b>" {
		t.Fatalf("unexpected result %q, %v", got, err)
	}
	if got, err := render.String(ctx, nil); err != nil || got != "" {
		t.Fatalf("nil component should render empty, got %q, %v", got, err)
	}

	failing := render.ComponentFunc(func(context.Context, io.Writer) error { return io.ErrShortWrite })
	if _, err := render.String(ctx, failing); err == nil {
		t.Fatalf("expected error to propagate")
	}
}

func TestPickerEndpointContext(t *testing.T) {
	ctx := render.WithPickerEndpoint(context.Background(), "/api/datepicker/abc")
	if got := render.PickerEndpoint(ctx); got != "/api/datepicker/abc" {
		t.Fatalf("unexpected endpoint %q", got)
	}
	if got := render.PickerEndpoint(context.Background()); got != "" {
		t.Fatalf("expected empty endpoint, got %q", got)
	}
}

func TestRegistry(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(render.NewJSONRenderer())

	if err := reg.Register(render.NewJSONRenderer()); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if !reg.Has("json") {
		t.Fatalf("expected json renderer")
	}
	if _, err := reg.Get("missing"); err == nil {
		t.Fatalf("expected error for missing renderer")
	}

	r, err := reg.Resolve("missing", "json")
	if err != nil || r.Name() != "json" {
		t.Fatalf("expected fallback to json, got %v, %v", r, err)
	}
	if _, err := reg.Resolve("", "missing"); err == nil {
		t.Fatalf("expected error when fallback is missing")
	}
	if names := reg.List(); len(names) != 1 || names[0] != "json" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestJSONRenderer(t *testing.T) {
	now := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	picker := datepicker.New(datepicker.Config{ID: "dob", Name: "dob", Value: "2024-01-05"},
		datepicker.WithClock(datepicker.FixedClock(now)))
	picker.Open()

	out, err := render.NewJSONRenderer().RenderPicker(context.Background(), picker.Snapshot())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var decoded struct {
		Open  bool   `json:"open"`
		Value string `json:"value"`
		State struct {
			Step   string `json:"step"`
			SelDay *int   `json:"sel_day"`
		} `json:"state"`
		View struct {
			Title string            `json:"title"`
			Cells []json.RawMessage `json:"cells"`
		} `json:"view"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !decoded.Open || decoded.Value != "2024-01-05" {
		t.Fatalf("unexpected snapshot %s", out)
	}
	if decoded.State.Step != "day" || decoded.State.SelDay == nil || *decoded.State.SelDay != 5 {
		t.Fatalf("unexpected state %s", out)
	}
	if decoded.View.Title != "January 2024" || len(decoded.View.Cells) != datepicker.GridCells {
		t.Fatalf("unexpected view %s", out)
	}
	if !strings.Contains(string(out), `"kind":"prev"`) {
		t.Fatalf("expected cell kinds encoded by name: %s", out)
	}
}
