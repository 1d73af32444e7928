package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Defaults(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
	if cfg.Theme.RendererTheme() != nil {
		t.Fatal("no theme should be configured by default")
	}
}

func TestLoad_File(t *testing.T) {
	cfg, err := Load("testdata/uikit.yaml", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":9090" || cfg.Server.BasePath != "/ui" {
		t.Fatalf("unexpected server config %+v", cfg.Server)
	}
	if cfg.Picker.MinYear != 1990 || cfg.Picker.MaxYear != 2030 {
		t.Fatalf("unexpected picker config %+v", cfg.Picker)
	}
	if cfg.Picker.MaxInstances != 1024 {
		t.Fatalf("defaults should fill unset keys, got %d", cfg.Picker.MaxInstances)
	}
	if cfg.Toast.VisibleFor != 3*time.Second || cfg.Toast.ExitAfter != 300*time.Millisecond {
		t.Fatalf("unexpected toast config %+v", cfg.Toast)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level %q", cfg.Log.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("UIKIT_SERVER_ADDR", ":7070")
	t.Setenv("UIKIT_PICKER_MAX_YEAR", "2040")

	cfg, err := Load("testdata/uikit.yaml", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Fatalf("env should override file, got %q", cfg.Server.Addr)
	}
	if cfg.Picker.MaxYear != 2040 {
		t.Fatalf("env should override file, got %d", cfg.Picker.MaxYear)
	}
}

func TestLoad_FlagsWin(t *testing.T) {
	t.Setenv("UIKIT_SERVER_ADDR", ":7070")
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("addr", ":8080", "")
	flags.Int("min-year", 0, "")
	if err := flags.Parse([]string{"--addr", ":6060"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load("testdata/uikit.yaml", flags)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":6060" {
		t.Fatalf("flag should win, got %q", cfg.Server.Addr)
	}
	if cfg.Picker.MinYear != 1990 {
		t.Fatalf("unset flags must not override the file, got %d", cfg.Picker.MinYear)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load("testdata/missing.yaml", nil); err == nil {
		t.Fatal("expected error for an explicit missing file")
	}
	if _, err := Load("testdata/invalid.yaml", nil); err == nil {
		t.Fatal("expected validation error for inverted year bounds")
	}

	cfg := Defaults()
	cfg.Picker.MinYear, cfg.Picker.MaxYear = 1, 2000000
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for an unbounded year range")
	}
}

func TestRendererTheme(t *testing.T) {
	cfg, err := Load("testdata/uikit.yaml", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	rt := cfg.Theme.RendererTheme()
	if rt == nil {
		t.Fatal("expected theme config")
	}
	if rt.Theme != "acme" || rt.Variant != "dark" {
		t.Fatalf("unexpected theme %s/%s", rt.Theme, rt.Variant)
	}
	if rt.CSSVars["--brand"] != "#123456" {
		t.Fatalf("css vars not derived from tokens: %v", rt.CSSVars)
	}
	if rt.Partials["uikit.feature-card"] != "themes/acme/feature.tmpl" {
		t.Fatalf("partials not propagated: %v", rt.Partials)
	}
	if got := rt.AssetURL("uikit.css"); got != "/themes/acme/uikit.css" {
		t.Fatalf("unexpected asset url %q", got)
	}
	if names := cfg.Theme.TokenNames(); len(names) != 1 || names[0] != "brand" {
		t.Fatalf("unexpected token names %v", names)
	}
}
