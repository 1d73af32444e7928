package main

import (
	"context"
	"fmt"
	"html"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-uikit/pkg/contact"
	picker "github.com/goliatone/go-uikit/pkg/datepicker"
	"github.com/goliatone/go-uikit/pkg/modal"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/toast"
)

var renderTargets = []string{"datepicker", "modal", "toast", "contact-form", "assets"}

type renderOptions struct {
	id      string
	name    string
	label   string
	value   string
	format  string
	open    bool
	title   string
	message string
	level   string
	action  string
	fields  string
}

func newRenderCommand(a *app) *cobra.Command {
	var o renderOptions
	cmd := &cobra.Command{
		Use:       "render <component>",
		Short:     "Render one component to stdout",
		ValidArgs: renderTargets,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Example: `  uikit render datepicker --id dob --name date_of_birth --value 2024-01-05
  uikit render datepicker --open --format json
  uikit render toast --message "Saved" --level success
  uikit render contact-form --fields fields.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd.Context(), cmd.OutOrStdout(), args[0], o)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.id, "id", "dob", "markup id")
	flags.StringVar(&o.name, "name", "date", "form field name of the picker")
	flags.StringVar(&o.label, "label", "", "picker label")
	flags.StringVar(&o.value, "value", "", "pre-selected date (YYYY-MM-DD)")
	flags.StringVar(&o.format, "format", "vanilla", "output format for the date picker (vanilla, json)")
	flags.BoolVar(&o.open, "open", false, "render the picker or modal open")
	flags.StringVar(&o.title, "title", "Dialog", "modal title")
	flags.StringVar(&o.message, "message", "", "toast message or modal body text")
	flags.StringVar(&o.level, "level", string(toast.Info), "toast level (success, error, warning, info)")
	flags.StringVar(&o.action, "action", "/contact", "contact form action")
	flags.StringVar(&o.fields, "fields", "", "YAML file describing the contact form fields")
	return cmd
}

func (a *app) render(ctx context.Context, w io.Writer, target string, o renderOptions) error {
	if target == "datepicker" {
		return a.renderPicker(ctx, w, o)
	}
	if o.format != "vanilla" {
		return fmt.Errorf("uikit: %s only renders as html", target)
	}

	r, err := a.renderer()
	if err != nil {
		return err
	}

	var c render.Component
	switch target {
	case "modal":
		m := modal.New(o.id, o.title)
		if o.open {
			m.Open()
		}
		c = r.Modal(m, render.Raw("<p>"+html.EscapeString(o.message)+"</p>"))
	case "toast":
		n := toast.New()
		defer n.Close()
		c = r.Toast(n.Show(o.message, toast.ParseLevel(o.level)))
	case "contact-form":
		fields, err := loadFields(o.fields)
		if err != nil {
			return err
		}
		c = r.ContactForm(o.action, fields, contact.FormData{})
	case "assets":
		c = r.Assets()
	default:
		return fmt.Errorf("uikit: unknown component %q", target)
	}

	markup, err := render.String(ctx, c)
	if err != nil {
		return fmt.Errorf("uikit: render %s: %w", target, err)
	}
	_, err = fmt.Fprintln(w, markup)
	return err
}

func (a *app) renderPicker(ctx context.Context, w io.Writer, o renderOptions) error {
	r, err := a.renderer()
	if err != nil {
		return err
	}
	registry := render.NewRegistry()
	registry.MustRegister(r)
	registry.MustRegister(render.NewJSONRenderer())

	renderer, err := registry.Get(o.format)
	if err != nil {
		return fmt.Errorf("uikit: unknown format %q: %w", o.format, err)
	}

	p := picker.New(a.pickerConfig(picker.Config{
		ID:    o.id,
		Name:  o.name,
		Label: o.label,
		Value: o.value,
	}), picker.WithClock(a.clock))
	if o.open {
		p.Open()
	}

	out, err := renderer.RenderPicker(ctx, p.Snapshot())
	if err != nil {
		return fmt.Errorf("uikit: render datepicker: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func loadFields(path string) ([]contact.Field, error) {
	if path == "" {
		return contact.DefaultFields(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("uikit: open fields: %w", err)
	}
	defer f.Close()
	return contact.LoadFields(f)
}
