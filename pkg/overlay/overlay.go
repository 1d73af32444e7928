// Package overlay implements the shared show/hide convention used by the
// modal and date picker widgets: a visible overlay is laid out with
// display:flex, a hidden one with display:none.
package overlay

const (
	// DisplayVisible is the CSS display value of an open overlay.
	DisplayVisible = "flex"
	// DisplayHidden is the CSS display value of a closed overlay.
	DisplayHidden = "none"
)

// Overlay tracks the visibility of a popup container. The zero value is
// hidden.
type Overlay struct {
	visible bool
}

// Show makes the overlay visible.
func (o *Overlay) Show() {
	if o == nil {
		return
	}
	o.visible = true
}

// Hide hides the overlay.
func (o *Overlay) Hide() {
	if o == nil {
		return
	}
	o.visible = false
}

// Visible reports whether the overlay is shown.
func (o *Overlay) Visible() bool {
	return o != nil && o.visible
}

// Display returns the CSS display value for the current visibility.
func (o *Overlay) Display() string {
	if o.Visible() {
		return DisplayVisible
	}
	return DisplayHidden
}

// Style returns an inline style attribute value for the overlay element.
func (o *Overlay) Style() string {
	return "display: " + o.Display()
}
