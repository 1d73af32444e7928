package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	picker "github.com/goliatone/go-uikit/pkg/datepicker"
	"github.com/goliatone/go-uikit/pkg/renderers/term"
	"github.com/goliatone/go-uikit/pkg/renderers/tui"
)

type pickOptions struct {
	ui     string
	id     string
	name   string
	label  string
	value  string
	format string
}

func newPickCommand(a *app) *cobra.Command {
	var o pickOptions
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a date in the terminal",
		Long: `Pick a date in the terminal and print it.

The "term" interface draws the calendar grid and is driven with the arrow
keys; "tui" walks through year, month and day prompts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := a.pick(cmd.Context(), cmd.OutOrStdout(), o)
			if errors.Is(err, tui.ErrAborted) || errors.Is(err, term.ErrAborted) {
				a.logger.Warn("no date picked")
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.ui, "ui", "term", "interface (term, tui)")
	flags.StringVar(&o.id, "id", "date", "picker id")
	flags.StringVar(&o.name, "name", "date", "field name printed with the result")
	flags.StringVar(&o.label, "label", "Date", "prompt label")
	flags.StringVar(&o.value, "value", "", "pre-selected date (YYYY-MM-DD)")
	flags.StringVar(&o.format, "format", string(tui.OutputFormatPrettyText), "tui output format (json, form, pretty)")
	return cmd
}

func (a *app) pick(ctx context.Context, w io.Writer, o pickOptions) error {
	cfg := a.pickerConfig(picker.Config{ID: o.id, Name: o.name, Label: o.label, Value: o.value})

	switch o.ui {
	case "tui":
		r := tui.New(
			tui.WithOutputFormat(tui.OutputFormat(o.format)),
			tui.WithClock(a.clock),
			tui.WithTheme(tui.Theme{PromptPrefix: "› ", InfoPrefix: "✓ "}),
		)
		out, err := r.RenderPicker(ctx, picker.New(cfg, picker.WithClock(a.clock)).Snapshot())
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case "term":
		value, err := term.Run(ctx, cfg, term.WithClock(a.clock))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, value)
		return err
	default:
		return fmt.Errorf("uikit: unknown interface %q", o.ui)
	}
}
