package overlay

import "testing"

func TestOverlay_ZeroValueHidden(t *testing.T) {
	var o Overlay
	if o.Visible() {
		t.Fatalf("expected zero value overlay to be hidden")
	}
	if got := o.Style(); got != "display: none" {
		t.Fatalf("unexpected style %q", got)
	}
}

func TestOverlay_ShowHide(t *testing.T) {
	var o Overlay
	o.Show()
	if !o.Visible() || o.Display() != DisplayVisible {
		t.Fatalf("expected visible overlay, got display %q", o.Display())
	}
	o.Hide()
	if o.Visible() || o.Display() != DisplayHidden {
		t.Fatalf("expected hidden overlay, got display %q", o.Display())
	}
}

func TestOverlay_NilSafe(t *testing.T) {
	var o *Overlay
	o.Show()
	o.Hide()
	if o.Visible() {
		t.Fatalf("nil overlay must report hidden")
	}
	if o.Display() != DisplayHidden {
		t.Fatalf("nil overlay must render hidden")
	}
}
