// Package config loads the uikit demo server and CLI settings from defaults,
// an optional config file, UIKIT_ environment variables and command flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	picker "github.com/goliatone/go-uikit/pkg/datepicker"
)

// EnvPrefix prefixes every environment override, e.g. UIKIT_SERVER_ADDR.
const EnvPrefix = "UIKIT"

// PartialPrefix is prepended to component names to form theme partial keys.
const PartialPrefix = "uikit."

// Config holds application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Picker PickerConfig `mapstructure:"picker"`
	Toast  ToastConfig  `mapstructure:"toast"`
	Theme  ThemeConfig  `mapstructure:"theme"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig holds the demo HTTP server settings.
type ServerConfig struct {
	Addr      string `mapstructure:"addr"`
	BasePath  string `mapstructure:"base_path"`
	AssetBase string `mapstructure:"asset_base"`
}

// PickerConfig holds date picker defaults.
type PickerConfig struct {
	MinYear      int    `mapstructure:"min_year"`
	MaxYear      int    `mapstructure:"max_year"`
	MaxInstances int    `mapstructure:"max_instances"`
	RoutePath    string `mapstructure:"route_path"`
}

// ToastConfig holds toast timings.
type ToastConfig struct {
	VisibleFor time.Duration `mapstructure:"visible_for"`
	ExitAfter  time.Duration `mapstructure:"exit_after"`
}

// ThemeConfig describes the theme applied to rendered components.
type ThemeConfig struct {
	Name    string            `mapstructure:"name"`
	Variant string            `mapstructure:"variant"`
	Tokens  map[string]string `mapstructure:"tokens"`
	// Partials maps a component name (e.g. "feature-card") to a template
	// path replacing its default template.
	Partials     map[string]string `mapstructure:"partials"`
	AssetPrefix  string            `mapstructure:"asset_prefix"`
	TemplatesDir string            `mapstructure:"templates_dir"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Addr:      ":8080",
			BasePath:  "/",
			AssetBase: "/assets/uikit/",
		},
		Picker: PickerConfig{
			MaxInstances: 1024,
			RoutePath:    "/api/datepicker",
		},
		Toast: ToastConfig{
			VisibleFor: 5 * time.Second,
			ExitAfter:  300 * time.Millisecond,
		},
		Log: LogConfig{Level: "info"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.base_path", d.Server.BasePath)
	v.SetDefault("server.asset_base", d.Server.AssetBase)
	v.SetDefault("picker.min_year", d.Picker.MinYear)
	v.SetDefault("picker.max_year", d.Picker.MaxYear)
	v.SetDefault("picker.max_instances", d.Picker.MaxInstances)
	v.SetDefault("picker.route_path", d.Picker.RoutePath)
	v.SetDefault("toast.visible_for", d.Toast.VisibleFor)
	v.SetDefault("toast.exit_after", d.Toast.ExitAfter)
	v.SetDefault("theme.name", "")
	v.SetDefault("theme.variant", "")
	v.SetDefault("theme.asset_prefix", "")
	v.SetDefault("theme.templates_dir", "")
	v.SetDefault("log.level", d.Log.Level)
}

// Load reads configuration. An explicit path must exist; without one a
// uikit.{yaml,toml,json} file is looked up in the working directory and
// $HOME/.config/uikit, and a missing file is not an error. Flags that were
// set on the command line win over every other source.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("uikit")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "uikit"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return Config{}, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read %s: %w", describe(path), err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// flagKeys maps command flag names to config keys.
var flagKeys = map[string]string{
	"addr":       "server.addr",
	"base-path":  "server.base_path",
	"min-year":   "picker.min_year",
	"max-year":   "picker.max_year",
	"theme":      "theme.name",
	"variant":    "theme.variant",
	"log-level":  "log.level",
	"asset-base": "server.asset_base",
	"templates":  "theme.templates_dir",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("config: bind flag %q: %w", name, err)
		}
	}
	return nil
}

// Validate rejects settings the components cannot honour.
func (c Config) Validate() error {
	if c.Picker.MinYear != 0 && c.Picker.MaxYear != 0 && c.Picker.MinYear > c.Picker.MaxYear {
		return fmt.Errorf("config: picker.min_year %d is after picker.max_year %d", c.Picker.MinYear, c.Picker.MaxYear)
	}
	years := picker.Config{MinYear: c.Picker.MinYear, MaxYear: c.Picker.MaxYear}
	if err := years.ValidateYears(time.Now()); err != nil {
		return fmt.Errorf("config: picker: %w", err)
	}
	if c.Toast.VisibleFor < 0 || c.Toast.ExitAfter < 0 {
		return errors.New("config: toast durations must not be negative")
	}
	return nil
}

// RendererTheme converts the theme section into the renderer
// configuration, or nil when no theme is named.
func (t ThemeConfig) RendererTheme() *theme.RendererConfig {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return nil
	}

	cssVars := make(map[string]string, len(t.Tokens))
	for key, value := range t.Tokens {
		cssVars["--"+strings.TrimPrefix(strings.TrimSpace(key), "--")] = value
	}

	cfg := &theme.RendererConfig{
		Theme:    name,
		Variant:  strings.TrimSpace(t.Variant),
		Tokens:   cloneMap(t.Tokens),
		CSSVars:  cssVars,
		Partials: partialKeys(t.Partials),
	}
	if prefix := strings.TrimRight(strings.TrimSpace(t.AssetPrefix), "/"); prefix != "" {
		cfg.AssetURL = func(key string) string {
			if key == "" {
				return ""
			}
			return prefix + "/" + strings.TrimLeft(key, "/")
		}
	}
	return cfg
}

// TokenNames lists the configured theme tokens in order.
func (t ThemeConfig) TokenNames() []string {
	names := make([]string, 0, len(t.Tokens))
	for name := range t.Tokens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func cloneMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func partialKeys(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for name, path := range in {
		out[PartialPrefix+strings.TrimSpace(name)] = path
	}
	return out
}

func describe(path string) string {
	if path == "" {
		return "config file"
	}
	return path
}
