package vanilla

import (
	"context"
	"strings"

	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/renderers/vanilla/components"
	"github.com/goliatone/go-uikit/pkg/toast"
)

// DefaultToastContainerID is the id the browser runtime looks up when it
// creates toasts client side.
const DefaultToastContainerID = "ac-toast-container"

type toastPayload struct {
	ID      string `json:"id"`
	Level   string `json:"level"`
	Message string `json:"message"`
	Exiting bool   `json:"exiting"`
}

type toastContainerPayload struct {
	ID     string `json:"id"`
	Toasts string `json:"toasts"`
}

// Toast renders a single toast. The message is sanitized and an unknown
// level renders as info.
func (r *Renderer) Toast(t toast.Toast) render.Component {
	return r.component(components.NameToast, func(context.Context) (any, error) {
		return toastPayload{
			ID:      t.ID,
			Level:   string(toast.ParseLevel(string(t.Level))),
			Message: sanitizeMessage(t.Message),
			Exiting: t.Exiting,
		}, nil
	})
}

// ToastContainer renders the fixed container holding the given toasts. Pass
// notifier.Active() to render server-side toasts, or nil for an empty
// container the runtime fills.
func (r *Renderer) ToastContainer(toasts []toast.Toast) render.Component {
	return r.component(components.NameToastContainer, func(ctx context.Context) (any, error) {
		var b strings.Builder
		for _, t := range toasts {
			if err := r.Toast(t).Render(ctx, &b); err != nil {
				return nil, err
			}
		}
		return toastContainerPayload{ID: DefaultToastContainerID, Toasts: b.String()}, nil
	})
}
