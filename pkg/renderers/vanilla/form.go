package vanilla

import (
	"context"
	"strconv"
	"strings"

	"github.com/goliatone/go-uikit/pkg/contact"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/renderers/vanilla/components"
)

// SelectOption is one entry of a Select.
type SelectOption struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected,omitempty"`
}

type inputPayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	Placeholder string `json:"placeholder"`
	Value       string `json:"value"`
	ErrMsg      string `json:"err_msg"`
	Required    bool   `json:"required"`
	Rows        string `json:"rows,omitempty"`
}

type selectPayload struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Label   string         `json:"label"`
	Options []SelectOption `json:"options"`
	ErrMsg  string         `json:"err_msg"`
}

type contactPayload struct {
	Action      string               `json:"action"`
	Fields      string               `json:"fields"`
	Hidden      []render.HiddenField `json:"hidden"`
	SubmitLabel string               `json:"submit_label"`
}

// TextInput renders a labelled input. An empty inputType renders as text.
func (r *Renderer) TextInput(id, name, label, inputType, placeholder, value, errMsg string) render.Component {
	if strings.TrimSpace(inputType) == "" {
		inputType = contact.TypeText
	}
	return r.input(inputPayload{
		ID: id, Name: name, Label: label, Type: inputType,
		Placeholder: placeholder, Value: value, ErrMsg: errMsg,
	})
}

// TextArea renders a labelled textarea. Zero rows default to 5.
func (r *Renderer) TextArea(id, name, label, placeholder, value string, rows int, errMsg string) render.Component {
	return r.textarea(inputPayload{
		ID: id, Name: name, Label: label, Placeholder: placeholder,
		Value: value, ErrMsg: errMsg, Rows: strconv.Itoa(contact.TextareaRows(rows)),
	})
}

// Select renders a labelled select element.
func (r *Renderer) Select(id, name, label string, options []SelectOption, errMsg string) render.Component {
	return r.component(components.NameSelect, func(context.Context) (any, error) {
		return selectPayload{ID: id, Name: name, Label: label, Options: options, ErrMsg: errMsg}, nil
	})
}

// ContactForm renders a POST form for fields, prefilled from data. Hidden
// fields such as a CSRF token are emitted before the inputs.
func (r *Renderer) ContactForm(action string, fields []contact.Field, data contact.FormData, hidden ...render.HiddenField) render.Component {
	return r.component(components.NameContactForm, func(ctx context.Context) (any, error) {
		var b strings.Builder
		for _, f := range fields {
			if err := r.contactField(f, data).Render(ctx, &b); err != nil {
				return nil, err
			}
		}
		return contactPayload{
			Action:      action,
			Fields:      b.String(),
			Hidden:      render.NormalizeHidden(hidden...),
			SubmitLabel: "Send Message",
		}, nil
	})
}

func (r *Renderer) contactField(f contact.Field, data contact.FormData) render.Component {
	payload := inputPayload{
		ID:          "contact-" + f.Name,
		Name:        f.Name,
		Label:       f.Label,
		Type:        f.InputType(),
		Placeholder: f.Placeholder,
		Value:       data.Value(f.Name),
		ErrMsg:      data.Error(f.Name),
		Required:    f.Required,
	}
	if f.IsTextarea() {
		payload.Rows = strconv.Itoa(f.TextareaRows())
		return r.textarea(payload)
	}
	return r.input(payload)
}

func (r *Renderer) input(p inputPayload) render.Component {
	return r.component(components.NameInput, func(context.Context) (any, error) { return p, nil })
}

func (r *Renderer) textarea(p inputPayload) render.Component {
	return r.component(components.NameTextarea, func(context.Context) (any, error) { return p, nil })
}
