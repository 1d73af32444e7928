package render

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-uikit/pkg/datepicker"
)

// JSONRenderer emits the picker snapshot as JSON for clients that draw the
// calendar themselves.
type JSONRenderer struct{}

// NewJSONRenderer returns the JSON renderer.
func NewJSONRenderer() JSONRenderer { return JSONRenderer{} }

func (JSONRenderer) Name() string        { return "json" }
func (JSONRenderer) ContentType() string { return "application/json" }

func (JSONRenderer) RenderPicker(_ context.Context, snap datepicker.Snapshot) ([]byte, error) {
	out, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("render: marshal picker snapshot: %w", err)
	}
	return out, nil
}
