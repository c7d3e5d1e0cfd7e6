package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/ccline/internal/config"
	"github.com/theirongolddev/ccline/internal/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupValues holds the form fields before they are applied to a Config.
type setupValues struct {
	mode      string
	costLimit string
	useUsage  bool
	cacheTTL  string
	theme     string
}

func newSetupValues(cfg config.Config) setupValues {
	return setupValues{
		mode:      cfg.Timer.Mode,
		costLimit: strconv.FormatFloat(cfg.Usage.CostLimitUSD, 'f', 2, 64),
		useUsage:  cfg.Usage.Enabled,
		cacheTTL:  strconv.Itoa(cfg.Usage.CacheTTLSecs),
		theme:     cfg.Appearance.Theme,
	}
}

func newSetupForm(v *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Reset countdown").
				Options(
					huh.NewOption("Fixed daily cycles (06, 11, 16, 21h)", config.ModeFixed),
					huh.NewOption("Rolling 5-hour usage blocks", config.ModeRolling),
				).
				Value(&v.mode),
			huh.NewConfirm().
				Title("Query ccusage for tokens, cost and requests?").
				Value(&v.useUsage),
			huh.NewInput().
				Title("Cost limit per block (USD)").
				Validate(validateNonNegative(parseFloat)).
				Value(&v.costLimit),
			huh.NewInput().
				Title("Cache usage reports for (seconds, 0 = off)").
				Validate(validateNonNegative(parseInt)).
				Value(&v.cacheTTL),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.theme),
		),
	).WithTheme(huh.ThemeCharm())
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseInt(s string) (float64, error) {
	n, err := strconv.Atoi(s)
	return float64(n), err
}

func validateNonNegative(parse func(string) (float64, error)) func(string) error {
	return func(s string) error {
		n, err := parse(strings.TrimSpace(s))
		if err != nil {
			return errors.New("enter a number")
		}
		if n < 0 {
			return errors.New("must not be negative")
		}
		return nil
	}
}

// apply copies validated form values onto cfg.
func (v setupValues) apply(cfg config.Config) (config.Config, error) {
	cost, err := strconv.ParseFloat(strings.TrimSpace(v.costLimit), 64)
	if err != nil {
		return cfg, fmt.Errorf("cost limit: %w", err)
	}
	ttl, err := strconv.Atoi(strings.TrimSpace(v.cacheTTL))
	if err != nil {
		return cfg, fmt.Errorf("cache ttl: %w", err)
	}

	cfg.Timer.Mode = v.mode
	cfg.Usage.Enabled = v.useUsage
	cfg.Usage.CostLimitUSD = cost
	cfg.Usage.CacheTTLSecs = ttl
	cfg.Appearance.Theme = v.theme
	return cfg, cfg.Validate()
}

// setupBase loads the config the wizard starts from. A broken file is reported
// on w and whatever decoded is kept, so fields outside the form survive a save.
func setupBase(path string, w io.Writer) config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(w, "  Warning: %v\n  Unreadable settings start from defaults.\n", err)
	}
	return cfg
}

func runSetup(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("setup needs an interactive terminal")
	}

	cfg := setupBase(flagConfig, cmd.ErrOrStderr())
	vals := newSetupValues(cfg)
	if err := newSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "  Setup cancelled, nothing saved.")
			return nil
		}
		return err
	}

	cfg, err := vals.apply(cfg)
	if err != nil {
		return err
	}
	if err := config.Save(flagConfig, cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	path := flagConfig
	if path == "" {
		path = config.Path()
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Saved to %s\n", path)
	fmt.Fprintln(out, "  Point Claude Code's statusLine command at `ccline` to use it.")
	fmt.Fprintln(out)
	return nil
}
