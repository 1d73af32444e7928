package uikit

import (
	"io/fs"
	"strings"
	"testing"
)

func TestRuntimeAssetsFSContainsRuntimeBundle(t *testing.T) {
	data, err := fs.ReadFile(RuntimeAssetsFS(), "uikit.js")
	if err != nil {
		t.Fatalf("expected runtime bundle to be readable: %v", err)
	}
	for _, want := range []string{"data-ac-datepicker", "data-modal-close", "data-toast-close", "/events"} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("expected runtime bundle to reference %q", want)
		}
	}
}

func readRuntime(t *testing.T) string {
	t.Helper()
	data, err := fs.ReadFile(RuntimeAssetsFS(), "uikit.js")
	if err != nil {
		t.Fatalf("read runtime bundle: %v", err)
	}
	return string(data)
}

func TestRuntimeExportsGuardedEntryPoints(t *testing.T) {
	js := readRuntime(t)

	start := strings.Index(js, "window.uikit = {")
	if start < 0 {
		t.Fatal("expected the runtime to publish window.uikit")
	}
	exports := js[start:]
	exports = exports[:strings.Index(exports, "};")]
	for _, name := range []string{"openModal", "closeModal", "openDatePicker", "closeDatePicker", "toast"} {
		if !strings.Contains(exports, name+": "+name) {
			t.Fatalf("expected window.uikit to export %s", name)
		}
	}

	for _, guard := range []string{
		`el.classList.contains("ac-modal-overlay") ? el : null`,
		`el.hasAttribute("data-ac-datepicker") ? el : null`,
	} {
		if !strings.Contains(js, guard) {
			t.Fatalf("expected id lookups to be guarded by %q", guard)
		}
	}
	if !strings.Contains(js, `post(root, "open")`) || !strings.Contains(js, `post(root, "close")`) {
		t.Fatal("expected date picker entry points to go through the event endpoint")
	}
}

func TestRuntimeReplacesLivePickerRoot(t *testing.T) {
	js := readRuntime(t)

	start := strings.Index(js, "function send(")
	end := strings.Index(js, "function post(")
	if start < 0 || end < start {
		t.Fatal("expected send and post helpers in the runtime")
	}
	send := js[start:end]
	if !strings.Contains(send, "var live = current(root);") || !strings.Contains(send, "live.replaceWith(next)") {
		t.Fatal("expected responses to replace the picker element currently in the document")
	}
	if strings.Contains(send, "root.replaceWith(") {
		t.Fatal("responses must not replace the element the request was sent from")
	}
	if !strings.Contains(js, "document.getElementById(root.id)") {
		t.Fatal("expected a detached picker root to be resolved again by id")
	}
	if !strings.Contains(js, "queues[key]") {
		t.Fatal("expected picker requests to be queued per widget")
	}
}

func TestEmbeddedTemplatesAndStylesheet(t *testing.T) {
	if _, err := fs.Stat(EmbeddedTemplates(), "templates/components/datepicker.tmpl"); err != nil {
		t.Fatalf("expected datepicker template: %v", err)
	}
	css, err := fs.ReadFile(StylesheetFS(), "uikit.css")
	if err != nil {
		t.Fatalf("expected stylesheet: %v", err)
	}
	if !strings.Contains(string(css), ".ac-datepicker") {
		t.Fatalf("stylesheet should style the date picker")
	}
}
