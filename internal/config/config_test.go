package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if !cfg.FixedCycles() {
		t.Error("default timer mode should be fixed cycles")
	}
	if cfg.Usage.CostLimitUSD != 5.0 {
		t.Errorf("CostLimitUSD = %.2f, want 5.00", cfg.Usage.CostLimitUSD)
	}
	if cfg.CacheTTL() != 0 {
		t.Errorf("CacheTTL = %v, want disabled", cfg.CacheTTL())
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("CCLINE_DEBUG", "")
	t.Setenv("CCLINE_USAGE_COMMAND", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Timer.Mode != ModeFixed || cfg.Context.WindowTokens != 200_000 {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("CCLINE_DEBUG", "")
	t.Setenv("CCLINE_USAGE_COMMAND", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[timer]\nmode = \"rolling\"\n\n[usage]\ncost_limit_usd = 20.0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FixedCycles() {
		t.Error("FixedCycles() = true, want rolling")
	}
	if cfg.Usage.CostLimitUSD != 20.0 {
		t.Errorf("CostLimitUSD = %.2f, want 20.00", cfg.Usage.CostLimitUSD)
	}
	if len(cfg.Timer.CycleHours) != 4 || cfg.Usage.TimeoutSecs != 5 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad mode", "[timer]\nmode = \"weekly\"\n", "timer.mode"},
		{"bad hours", "[timer]\ncycle_hours = [6, 30]\n", "cycle_hours"},
		{"bad width", "[appearance]\nbar_width = 0\n", "bar_width"},
		{"bad theme", "[appearance]\ntheme = \"solarized\"\n", "appearance.theme"},
		{"bad toml", "[timer\n", "parsing config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.data), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("CCLINE_DEBUG", "")
	t.Setenv("CCLINE_USAGE_COMMAND", "")

	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg := DefaultConfig()
	cfg.Timer.Mode = ModeRolling
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Usage.CacheTTLSecs = 30

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists(path) {
		t.Fatal("Exists = false after Save")
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Timer.Mode != ModeRolling || got.Appearance.Theme != "tokyo-night" || got.Usage.CacheTTLSecs != 30 {
		t.Errorf("round trip lost settings: %+v", got)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("CCLINE_DEBUG", "1")
	t.Setenv("CCLINE_USAGE_COMMAND", "/opt/bin/ccusage")

	cfg := ApplyEnv(DefaultConfig())
	if !cfg.Log.Debug {
		t.Error("CCLINE_DEBUG=1 did not enable debug")
	}
	if cfg.Usage.Command != "/opt/bin/ccusage" {
		t.Errorf("Usage.Command = %q", cfg.Usage.Command)
	}
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/x/config")
	t.Setenv("XDG_CACHE_HOME", "/x/cache")

	if got := Path(); got != filepath.Join("/x/config", "ccline", "config.toml") {
		t.Errorf("Path = %q", got)
	}
	if got := CacheDir(); got != filepath.Join("/x/cache", "ccline") {
		t.Errorf("CacheDir = %q", got)
	}
	if got := DefaultConfig().LogPath(); got != filepath.Join("/x/config", "ccline", "ccline.log") {
		t.Errorf("LogPath = %q", got)
	}
}
