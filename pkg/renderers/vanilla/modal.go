package vanilla

import (
	"context"

	"github.com/goliatone/go-uikit/pkg/modal"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/renderers/vanilla/components"
)

type modalPayload struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	OverlayStyle string `json:"overlay_style"`
	Body         string `json:"body"`
	Footer       string `json:"footer"`
}

// Modal renders a dialog with the given body. Its visibility follows m.
func (r *Renderer) Modal(m *modal.Modal, body render.Component) render.Component {
	return r.ModalWithFooter(m, body, nil)
}

// ModalWithFooter renders a dialog with a body and a footer (usually
// action buttons). A nil footer omits the footer element.
func (r *Renderer) ModalWithFooter(m *modal.Modal, body, footer render.Component) render.Component {
	return r.component(components.NameModal, func(ctx context.Context) (any, error) {
		bodyHTML, err := render.String(ctx, body)
		if err != nil {
			return nil, err
		}
		footerHTML, err := render.String(ctx, footer)
		if err != nil {
			return nil, err
		}
		return modalPayload{
			ID:           m.ID(),
			Title:        m.Title(),
			OverlayStyle: m.Overlay().Style(),
			Body:         bodyHTML,
			Footer:       footerHTML,
		}, nil
	})
}
