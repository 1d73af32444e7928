package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-uikit/internal/config"
	picker "github.com/goliatone/go-uikit/pkg/datepicker"
	"github.com/goliatone/go-uikit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-uikit/pkg/renderers/vanilla"
)

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	cfg    config.Config
	logger *log.Logger
	clock  picker.Clock
}

func newRootCommand() *cobra.Command {
	return newRootCommandFor(&app{clock: picker.SystemClock})
}

func newRootCommandFor(a *app) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "uikit",
		Short:        "Server-rendered UI components",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = newLogger(cmd, cfg.Log.Level)
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ./uikit.yaml or ~/.config/uikit/uikit.yaml)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.Int("min-year", 0, "earliest selectable year (default: current year - 100)")
	flags.Int("max-year", 0, "latest selectable year (default: current year + 20)")
	flags.String("theme", "", "theme name")
	flags.String("variant", "", "theme variant")
	flags.String("templates", "", "directory searched for theme partials")
	flags.String("asset-base", "", "URL prefix of the stylesheet and runtime script")

	cmd.AddCommand(
		newServeCommand(a),
		newRenderCommand(a),
		newPickCommand(a),
	)
	return cmd
}

func newLogger(cmd *cobra.Command, level string) *log.Logger {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix:          "uikit",
		ReportTimestamp: true,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// renderer builds the HTML renderer from the theme and server settings.
func (a *app) renderer(options ...vanilla.Option) (*vanilla.Renderer, error) {
	opts := []vanilla.Option{
		vanilla.WithTheme(a.cfg.Theme.RendererTheme()),
		vanilla.WithAssetBase(a.cfg.Server.AssetBase),
		vanilla.WithClock(a.clock),
	}
	if dir := a.cfg.Theme.TemplatesDir; dir != "" {
		engine, err := gotemplate.New(
			gotemplate.WithFS(vanilla.TemplatesFS()),
			gotemplate.WithBaseDir(dir),
		)
		if err != nil {
			return nil, fmt.Errorf("uikit: load templates from %s: %w", dir, err)
		}
		opts = append(opts, vanilla.WithTemplateRenderer(engine))
	}
	return vanilla.New(append(opts, options...)...)
}

// pickerConfig applies the configured year bounds to a picker config.
func (a *app) pickerConfig(cfg picker.Config) picker.Config {
	if cfg.MinYear == 0 {
		cfg.MinYear = a.cfg.Picker.MinYear
	}
	if cfg.MaxYear == 0 {
		cfg.MaxYear = a.cfg.Picker.MaxYear
	}
	return cfg
}
