package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/ccline/internal/config"
	"github.com/theirongolddev/ccline/internal/store"
	"github.com/theirongolddev/ccline/internal/usage"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	printConfig(cmd.OutOrStdout(), cfg)
	return nil
}

func printConfig(w io.Writer, cfg config.Config) {
	path := flagConfig
	if path == "" {
		path = config.Path()
	}

	fmt.Fprintf(w, "  Config file: %s\n", path)
	if config.Exists(path) {
		fmt.Fprintln(w, "  Status: loaded")
	} else {
		fmt.Fprintln(w, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Timer]")
	fmt.Fprintf(w, "    Mode:          %s\n", cfg.Timer.Mode)
	hours := make([]string, len(cfg.Timer.CycleHours))
	for i, h := range cfg.Timer.CycleHours {
		hours[i] = fmt.Sprintf("%02d:00", h)
	}
	fmt.Fprintf(w, "    Cycle resets:  %s\n", strings.Join(hours, ", "))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Usage]")
	fmt.Fprintf(w, "    Enabled:       %v\n", cfg.Usage.Enabled)
	fmt.Fprintf(w, "    Command:       %s\n", strings.Join(usage.DefaultCandidates(cfg.Usage.Command), ", "))
	fmt.Fprintf(w, "    Timeout:       %s\n", cfg.UsageTimeout())
	fmt.Fprintf(w, "    Cost limit:    $%.2f\n", cfg.Usage.CostLimitUSD)
	if ttl := cfg.CacheTTL(); ttl > 0 {
		fmt.Fprintf(w, "    Cache:         %s (%s)\n", ttl, store.Path(config.CacheDir()))
	} else {
		fmt.Fprintln(w, "    Cache:         off")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Context]")
	fmt.Fprintf(w, "    Window:        %d tokens\n", cfg.Context.WindowTokens)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Appearance]")
	fmt.Fprintf(w, "    Theme:         %s\n", cfg.Appearance.Theme)
	fmt.Fprintf(w, "    Bar width:     %d\n", cfg.Appearance.BarWidth)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Log]")
	if cfg.Log.Debug {
		fmt.Fprintf(w, "    Debug log:     %s\n", cfg.LogPath())
	} else {
		fmt.Fprintln(w, "    Debug log:     off")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  Run `ccline setup` to reconfigure.")
}
