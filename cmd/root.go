// Package cmd implements the ccline CLI commands.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/theirongolddev/ccline/internal/config"
	"github.com/theirongolddev/ccline/internal/gitinfo"
	"github.com/theirongolddev/ccline/internal/logging"
	"github.com/theirongolddev/ccline/internal/model"
	"github.com/theirongolddev/ccline/internal/statusline"
	"github.com/theirongolddev/ccline/internal/store"
	"github.com/theirongolddev/ccline/internal/theme"
	"github.com/theirongolddev/ccline/internal/usage"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagDebug     bool
	flagMode      string
	flagCostLimit float64
	flagNoUsage   bool
	flagNoGit     bool
)

var rootCmd = &cobra.Command{
	Use:   "ccline",
	Short: "Status line for Claude Code sessions",
	Long: "Reads the session payload Claude Code pipes on stdin and prints one colored line:\n" +
		"model, git branch, reset countdown, usage, context fill and code changes.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runStatusLine,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default "+config.Path()+")")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debug records to the log file")

	rootCmd.Flags().StringVar(&flagMode, "mode", "", "Timer mode: fixed or rolling (overrides config)")
	rootCmd.Flags().Float64Var(&flagCostLimit, "cost-limit", 0, "Cost limit in USD per usage block (overrides config)")
	rootCmd.Flags().BoolVar(&flagNoUsage, "no-usage", false, "Skip the external usage report")
	rootCmd.Flags().BoolVar(&flagNoGit, "no-git", false, "Skip git branch detection")
}

func printError(w io.Writer, err error) {
	style := statusline.NewRenderer(w, termenv.TrueColor).NewStyle().Foreground(theme.Neon.Bad)
	fmt.Fprintln(w, style.Render("❌ Error: "+err.Error()))
}

// loadSettings reads the config file and applies any flags set on cmd.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flagDebug {
		cfg.Log.Debug = true
	}
	if flags.Changed("mode") {
		cfg.Timer.Mode = flagMode
	}
	if flags.Changed("cost-limit") {
		cfg.Usage.CostLimitUSD = flagCostLimit
	}
	if flags.Changed("no-usage") && flagNoUsage {
		cfg.Usage.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runStatusLine(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log, closeLog := logging.New(logging.Options{Debug: cfg.Log.Debug, Path: cfg.LogPath()})
	defer func() { _ = closeLog() }()

	in, err := decodeInput(cmd.InOrStdin())
	if err != nil {
		return err
	}
	log.Debug("payload", "session", in.SessionID, "model", in.DisplayModel(), "transcript", in.TranscriptPath)

	collector, closeCollector := newCollector(cfg, log, !flagNoGit)
	defer closeCollector()

	data := collector.Collect(cmd.Context(), in)
	out := cmd.OutOrStdout()
	styles := statusline.NewStyles(statusline.NewRenderer(out, termenv.TrueColor), theme.ByName(cfg.Appearance.Theme))

	_, err = fmt.Fprintln(out, statusline.Render(data, renderOptions(cfg), styles))
	return err
}

func decodeInput(r io.Reader) (model.StatusInput, error) {
	var in model.StatusInput
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return in, fmt.Errorf("reading session payload: %w", err)
	}
	return in, nil
}

// newCollector wires the data sources selected by cfg. The returned func
// releases the usage cache, if one was opened.
func newCollector(cfg config.Config, log *slog.Logger, withGit bool) (statusline.Collector, func()) {
	c := statusline.Collector{Log: log}
	if withGit {
		c.Git = gitinfo.Detect
	}
	if !cfg.Usage.Enabled {
		return c, func() {}
	}

	var rep usage.Reporter = usage.NewCommandReporter(usage.DefaultCandidates(cfg.Usage.Command), cfg.UsageTimeout())
	closeFn := func() {}
	if ttl := cfg.CacheTTL(); ttl > 0 {
		cache, err := store.Open(store.Path(config.CacheDir()))
		if err != nil {
			log.Debug("usage cache unavailable", "err", err)
		} else {
			rep = usage.NewCachedReporter(rep, cache, ttl, log)
			closeFn = func() { _ = cache.Close() }
		}
	}
	c.Usage = rep
	return c, closeFn
}

func renderOptions(cfg config.Config) statusline.Options {
	return statusline.Options{
		FixedCycles:   cfg.FixedCycles(),
		CycleHours:    cfg.Timer.CycleHours,
		CostLimit:     cfg.Usage.CostLimitUSD,
		ContextWindow: cfg.Context.WindowTokens,
		BarWidth:      cfg.Appearance.BarWidth,
	}
}
