// Package modal holds the open/close state of a modal dialog. Rendering
// lives in the renderers; this package only decides whether the dialog is
// shown.
package modal

import (
	"strings"

	"github.com/goliatone/go-uikit/pkg/overlay"
)

// Modal is a dialog identified by the id of its overlay element.
type Modal struct {
	id      string
	title   string
	overlay overlay.Overlay
}

// New returns a closed modal.
func New(id, title string) *Modal {
	return &Modal{
		id:    strings.TrimSpace(id),
		title: title,
	}
}

func (m *Modal) ID() string    { return m.id }
func (m *Modal) Title() string { return m.title }

// Open shows the overlay.
func (m *Modal) Open() { m.overlay.Show() }

// Close hides the overlay.
func (m *Modal) Close() { m.overlay.Hide() }

// CloseButton handles a click on any data-modal-close element.
func (m *Modal) CloseButton() { m.Close() }

// BackgroundClick handles a click that landed on the overlay itself rather
// than on the dialog.
func (m *Modal) BackgroundClick() { m.Close() }

// Escape closes the modal if it is open.
func (m *Modal) Escape() {
	if m.Visible() {
		m.Close()
	}
}

// Dismiss is Escape under the name the page fan-out uses.
func (m *Modal) Dismiss() { m.Escape() }

// Visible reports whether the modal is shown.
func (m *Modal) Visible() bool { return m.overlay.Visible() }

// IsOpen is an alias of Visible shared with the date picker.
func (m *Modal) IsOpen() bool { return m.Visible() }

// Overlay exposes the overlay for renderers.
func (m *Modal) Overlay() *overlay.Overlay { return &m.overlay }
