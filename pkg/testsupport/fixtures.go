package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uikit/pkg/datepicker"
)

// ReferenceNow is the instant fixtures and goldens are generated against.
var ReferenceNow = time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC)

// Clock returns a datepicker clock pinned to ReferenceNow.
func Clock() datepicker.Clock {
	return datepicker.FixedClock(ReferenceNow)
}

// MustLoadPickerConfig loads a JSON fixture into a datepicker.Config.
func MustLoadPickerConfig(t *testing.T, path string) datepicker.Config {
	t.Helper()

	cfg, err := LoadPickerConfig(path)
	if err != nil {
		t.Fatalf("load picker config: %v", err)
	}
	return cfg
}

// LoadPickerConfig reads a picker config fixture without requiring a
// testing.T so it can be used from setup helpers.
func LoadPickerConfig(path string) (datepicker.Config, error) {
	if path == "" {
		return datepicker.Config{}, errors.New("testsupport: picker config path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return datepicker.Config{}, fmt.Errorf("testsupport: read picker config: %w", err)
	}
	var out datepicker.Config
	if err := json.Unmarshal(data, &out); err != nil {
		return datepicker.Config{}, fmt.Errorf("testsupport: unmarshal picker config: %w", err)
	}
	return out, nil
}

// MustParseHTML parses a rendered fragment into a goquery document.
func MustParseHTML(t *testing.T, markup string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// CompareGolden returns a cmp diff of want and got, empty when equal.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
