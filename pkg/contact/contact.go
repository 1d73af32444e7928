// Package contact models a contact form: its fields, request parsing and
// validation. Markup is produced by the renderers.
package contact

import (
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const (
	TypeText     = "text"
	TypeEmail    = "email"
	TypeTextarea = "textarea"

	// DefaultRows is the textarea height used when a field sets none.
	DefaultRows = 5
)

// Field describes one input of the form.
type Field struct {
	Name        string `json:"name" yaml:"name"`
	Label       string `json:"label" yaml:"label"`
	Type        string `json:"type" yaml:"type"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Rows        int    `json:"rows,omitempty" yaml:"rows,omitempty"`
	Required    bool   `json:"required,omitempty" yaml:"required,omitempty"`
}

// IsTextarea reports whether the field renders as a textarea.
func (f Field) IsTextarea() bool {
	return f.Type == TypeTextarea
}

// InputType returns the input type attribute, defaulting to text.
func (f Field) InputType() string {
	if t := strings.TrimSpace(f.Type); t != "" {
		return t
	}
	return TypeText
}

// TextareaRows returns the textarea height, defaulting zero to DefaultRows.
func (f Field) TextareaRows() int {
	return TextareaRows(f.Rows)
}

// TextareaRows defaults 0 to DefaultRows.
func TextareaRows(rows int) int {
	if rows == 0 {
		return DefaultRows
	}
	return rows
}

// FormData carries submitted values and per-field error messages, both keyed
// by field name.
type FormData struct {
	Values map[string]string `json:"values,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Value returns the submitted value of a field.
func (d FormData) Value(name string) string {
	return d.Values[name]
}

// Error returns the error message of a field.
func (d FormData) Error(name string) string {
	return d.Errors[name]
}

// HasErrors reports whether any field failed validation.
func (d FormData) HasErrors() bool {
	return len(d.Errors) > 0
}

// DefaultFields returns the standard name, email, subject and message fields.
func DefaultFields() []Field {
	return []Field{
		{Name: "name", Label: "Name", Type: TypeText, Placeholder: "Your name", Required: true},
		{Name: "email", Label: "Email", Type: TypeEmail, Placeholder: "you@example.com", Required: true},
		{Name: "subject", Label: "Subject", Type: TypeText, Placeholder: "What is this about?", Required: true},
		{Name: "message", Label: "Message", Type: TypeTextarea, Placeholder: "Your message...", Rows: DefaultRows, Required: true},
	}
}

// ParseForm reads each field from the request, trimming surrounding space.
func ParseForm(r *http.Request, fields []Field) FormData {
	data := FormData{
		Values: make(map[string]string, len(fields)),
		Errors: make(map[string]string),
	}
	for _, f := range fields {
		data.Values[f.Name] = strings.TrimSpace(r.FormValue(f.Name))
	}
	return data
}

// ValidateRequired records "<Label> is required" for every empty required
// field. It returns true when all required fields are present.
func ValidateRequired(fields []Field, data *FormData) bool {
	if data.Errors == nil {
		data.Errors = make(map[string]string)
	}
	valid := true
	for _, f := range fields {
		if f.Required && data.Values[f.Name] == "" {
			data.Errors[f.Name] = f.Label + " is required"
			valid = false
		}
	}
	return valid
}

// SanitizeNewlines strips CR and LF from every non-textarea value so single
// line fields cannot inject mail headers. Run it after ParseForm and before
// validation.
func SanitizeNewlines(fields []Field, data *FormData) {
	if data.Values == nil {
		return
	}
	for _, f := range fields {
		if f.IsTextarea() {
			continue
		}
		v, ok := data.Values[f.Name]
		if !ok {
			continue
		}
		v = strings.ReplaceAll(v, "\r", "")
		v = strings.ReplaceAll(v, "\n", "")
		data.Values[f.Name] = v
	}
}

// ValidateFormat checks email syntax and a maximum length in runes
// (0 disables the length check). Empty values are skipped.
func ValidateFormat(fields []Field, data *FormData, maxLen int) bool {
	if data.Errors == nil {
		data.Errors = make(map[string]string)
	}
	valid := true
	for _, f := range fields {
		v := data.Values[f.Name]
		if v == "" {
			continue
		}
		if f.Type == TypeEmail {
			if _, err := mail.ParseAddress(v); err != nil {
				data.Errors[f.Name] = "Please enter a valid email address"
				valid = false
			}
		}
		if maxLen > 0 && utf8.RuneCountInString(v) > maxLen {
			data.Errors[f.Name] = f.Label + " is too long"
			valid = false
		}
	}
	return valid
}

// Validate runs SanitizeNewlines, ValidateRequired and ValidateFormat in the
// order a submit handler needs them.
func Validate(fields []Field, data *FormData, maxLen int) bool {
	SanitizeNewlines(fields, data)
	required := ValidateRequired(fields, data)
	format := ValidateFormat(fields, data, maxLen)
	return required && format
}

// LoadFields decodes a YAML list of fields, either bare or under a
// top-level "fields" key.
func LoadFields(r io.Reader) ([]Field, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("contact: read fields: %w", err)
	}

	var doc struct {
		Fields []Field `yaml:"fields"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		var list []Field
		if errList := yaml.Unmarshal(raw, &list); errList != nil {
			return nil, fmt.Errorf("contact: decode fields: %w", err)
		}
		doc.Fields = list
	}

	for i, f := range doc.Fields {
		if strings.TrimSpace(f.Name) == "" {
			return nil, fmt.Errorf("contact: field %d: name is required", i)
		}
		if f.Label == "" {
			doc.Fields[i].Label = f.Name
		}
		if f.Type == "" {
			doc.Fields[i].Type = TypeText
		}
	}
	return doc.Fields, nil
}
