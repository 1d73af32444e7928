package components

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	templatePrefix = "templates/components/"
	partialPrefix  = "uikit."

	// Stylesheet is the shared stylesheet every component depends on.
	Stylesheet = "uikit.css"
	// RuntimeScript forwards browser events for the interactive widgets.
	RuntimeScript = "uikit.js"
)

var runtimeScripts = []Script{{Src: RuntimeScript, Defer: true}}

// NewDefaultRegistry constructs a registry pre-populated with the built-in
// components.
func NewDefaultRegistry() *Registry {
	registry := New()

	interactive := map[string]string{
		NameDatePicker:     "datepicker.tmpl",
		NameDatePickerBody: "datepicker_body.tmpl",
		NameModal:          "modal.tmpl",
		NameToast:          "toast.tmpl",
		NameToastContainer: "toast_container.tmpl",
		NameContactForm:    "contact_form.tmpl",
	}
	static := map[string]string{
		NameFeatureCard:     "feature_card.tmpl",
		NamePricingCard:     "pricing_card.tmpl",
		NameTestimonialCard: "testimonial_card.tmpl",
		NameInput:           "input.tmpl",
		NameTextarea:        "textarea.tmpl",
		NameSelect:          "select.tmpl",
		NameAssets:          "assets.tmpl",
	}

	for name, file := range interactive {
		registry.MustRegister(name, Descriptor{
			Renderer:    TemplateRenderer(name, templatePrefix+file),
			Stylesheets: []string{Stylesheet},
			Scripts:     runtimeScripts,
		})
	}
	for name, file := range static {
		registry.MustRegister(name, Descriptor{
			Renderer:    TemplateRenderer(name, templatePrefix+file),
			Stylesheets: []string{Stylesheet},
		})
	}
	return registry
}

// TemplateRenderer renders a component from a template file. A theme partial
// registered under "uikit.<name>" replaces the default template.
func TemplateRenderer(name, templateName string) Renderer {
	partialKey := partialPrefix + name
	return func(buf *bytes.Buffer, payload any, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("components: template renderer not configured for %q", templateName)
		}

		resolved := templateName
		if data.Partials != nil {
			if candidate := strings.TrimSpace(data.Partials[partialKey]); candidate != "" {
				resolved = candidate
			}
		}

		rendered, err := data.Template.RenderTemplate(resolved, payload)
		if err != nil {
			return fmt.Errorf("components: render template %q: %w", resolved, err)
		}
		buf.WriteString(rendered)
		return nil
	}
}
