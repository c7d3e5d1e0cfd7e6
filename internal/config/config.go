// Package config loads and saves the ccline TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/theirongolddev/ccline/internal/theme"
	"github.com/theirongolddev/ccline/internal/window"

	"github.com/BurntSushi/toml"
)

// Timer modes.
const (
	ModeFixed   = "fixed"
	ModeRolling = "rolling"
)

// Config holds all ccline configuration.
type Config struct {
	Timer      TimerConfig      `toml:"timer"`
	Usage      UsageConfig      `toml:"usage"`
	Context    ContextConfig    `toml:"context"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// TimerConfig selects how the reset countdown is computed.
type TimerConfig struct {
	// Mode is "fixed" for daily reset hours or "rolling" for 5-hour blocks.
	Mode       string `toml:"mode"`
	CycleHours []int  `toml:"cycle_hours"`
}

// UsageConfig controls the external usage reporter.
type UsageConfig struct {
	Enabled      bool    `toml:"enabled"`
	Command      string  `toml:"command,omitempty"`
	TimeoutSecs  int     `toml:"timeout_secs"`
	CostLimitUSD float64 `toml:"cost_limit_usd"`
	CacheTTLSecs int     `toml:"cache_ttl_secs"`
}

// ContextConfig holds context-window settings.
type ContextConfig struct {
	WindowTokens int64 `toml:"window_tokens"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme    string `toml:"theme"`
	BarWidth int    `toml:"bar_width"`
}

// LogConfig holds debug logging settings.
type LogConfig struct {
	Debug bool   `toml:"debug"`
	File  string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Timer: TimerConfig{
			Mode:       ModeFixed,
			CycleHours: append([]int(nil), window.DefaultCycleHours...),
		},
		Usage: UsageConfig{
			Enabled:      true,
			TimeoutSecs:  5,
			CostLimitUSD: 5.0,
		},
		Context: ContextConfig{
			WindowTokens: 200_000,
		},
		Appearance: AppearanceConfig{
			Theme:    theme.Neon.Name,
			BarWidth: 10,
		},
	}
}

// FixedCycles reports whether the fixed daily cycle timer is selected.
func (c Config) FixedCycles() bool {
	return c.Timer.Mode != ModeRolling
}

// UsageTimeout is the per-attempt timeout for the usage command.
func (c Config) UsageTimeout() time.Duration {
	return time.Duration(c.Usage.TimeoutSecs) * time.Second
}

// CacheTTL is how long a cached usage snapshot stays fresh; zero disables the cache.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.Usage.CacheTTLSecs) * time.Second
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Timer.Mode {
	case ModeFixed, ModeRolling:
	default:
		return fmt.Errorf("timer.mode %q: want %q or %q", c.Timer.Mode, ModeFixed, ModeRolling)
	}
	if err := window.ValidateCycleHours(c.Timer.CycleHours); err != nil {
		return fmt.Errorf("timer.cycle_hours: %w", err)
	}
	if c.Usage.TimeoutSecs <= 0 {
		return errors.New("usage.timeout_secs must be positive")
	}
	if c.Usage.CostLimitUSD < 0 {
		return errors.New("usage.cost_limit_usd must not be negative")
	}
	if c.Usage.CacheTTLSecs < 0 {
		return errors.New("usage.cache_ttl_secs must not be negative")
	}
	if c.Context.WindowTokens <= 0 {
		return errors.New("context.window_tokens must be positive")
	}
	if !slices.Contains(theme.Names(), c.Appearance.Theme) {
		return fmt.Errorf("appearance.theme %q: want one of %s", c.Appearance.Theme, strings.Join(theme.Names(), ", "))
	}
	if c.Appearance.BarWidth < 1 || c.Appearance.BarWidth > 100 {
		return fmt.Errorf("appearance.bar_width %d out of range 1-100", c.Appearance.BarWidth)
	}
	return nil
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ccline")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ccline")
}

// Path returns the full path to the default config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// CacheDir returns the XDG-compliant cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "ccline")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "ccline")
}

// LogPath returns the debug log file, defaulting to ccline.log in the config dir.
func (c Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(Dir(), "ccline.log")
}

// Load reads the config at path (Path() when empty), returning defaults if it
// doesn't exist. Environment overrides are applied last.
func Load(path string) (Config, error) {
	if path == "" {
		path = Path()
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // user-chosen config path
	if err != nil {
		if os.IsNotExist(err) {
			return ApplyEnv(cfg), nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg = ApplyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays CCLINE_* environment variables onto cfg.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("CCLINE_DEBUG"); v == "1" || v == "true" {
		cfg.Log.Debug = true
	}
	if v := os.Getenv("CCLINE_USAGE_COMMAND"); v != "" {
		cfg.Usage.Command = v
	}
	return cfg
}

// Save writes the config to path (Path() when empty).
func Save(path string, cfg Config) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user-chosen config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists at path (Path() when empty).
func Exists(path string) bool {
	if path == "" {
		path = Path()
	}
	_, err := os.Stat(path)
	return err == nil
}
