package render

import (
	"bytes"
	"context"
	"io"

	"github.com/goliatone/go-uikit/pkg/datepicker"
)

// Component is a renderable piece of markup. Components compose by taking
// other Components as arguments and embedding their output.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// ComponentFunc adapts a function to the Component interface.
type ComponentFunc func(ctx context.Context, w io.Writer) error

// Render calls f.
func (f ComponentFunc) Render(ctx context.Context, w io.Writer) error {
	return f(ctx, w)
}

// Raw returns a Component that writes markup verbatim. Callers are
// responsible for the markup being safe.
func Raw(markup string) Component {
	return ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	})
}

// String renders c into a string. A nil component renders as "".
func String(ctx context.Context, c Component) (string, error) {
	if c == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Renderer turns a date picker snapshot into a payload for one kind of
// client (HTML for the browser runtime, JSON for custom front ends).
type Renderer interface {
	Name() string
	ContentType() string
	RenderPicker(ctx context.Context, snap datepicker.Snapshot) ([]byte, error)
}

type endpointKey struct{}

// WithPickerEndpoint attaches the URL a rendered picker posts its events to.
func WithPickerEndpoint(ctx context.Context, url string) context.Context {
	return context.WithValue(ctx, endpointKey{}, url)
}

// PickerEndpoint returns the endpoint stored by WithPickerEndpoint.
func PickerEndpoint(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	url, _ := ctx.Value(endpointKey{}).(string)
	return url
}
