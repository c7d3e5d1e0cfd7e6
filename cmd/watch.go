package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/ccline/internal/logging"
	"github.com/theirongolddev/ccline/internal/model"
	"github.com/theirongolddev/ccline/internal/source"
	"github.com/theirongolddev/ccline/internal/statusline"
	"github.com/theirongolddev/ccline/internal/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	flagInput    string
	flagInterval time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live preview of the status line for a saved payload",
	Long: "Replays a saved stdin payload and re-renders the status line on an interval,\n" +
		"so themes and timer modes can be previewed outside Claude Code.",
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagInput, "input", "", "Saved session payload (JSON)")
	watchCmd.Flags().DurationVar(&flagInterval, "interval", time.Second, "Refresh interval")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if flagInput == "" {
		return errors.New("--input is required")
	}
	if flagInterval < 100*time.Millisecond {
		return fmt.Errorf("--interval %s is too short", flagInterval)
	}
	data, err := os.ReadFile(flagInput) //nolint:gosec // user-chosen payload file
	if err != nil {
		return fmt.Errorf("reading payload: %w", err)
	}
	in, err := decodeInput(bytes.NewReader(data))
	if err != nil {
		return err
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log, closeLog := logging.New(logging.Options{Debug: cfg.Log.Debug, Path: cfg.LogPath()})
	defer func() { _ = closeLog() }()

	collector, closeCollector := newCollector(cfg, log, true)
	defer closeCollector()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	var changes <-chan struct{}
	if in.TranscriptPath != "" {
		if changes, err = source.Watch(ctx, in.TranscriptPath); err != nil {
			log.Debug("transcript watch unavailable", "err", err)
		}
	}

	// Same color profile as the piped status line.
	r := statusline.NewRenderer(os.Stdout, termenv.TrueColor)
	t := theme.ByName(cfg.Appearance.Theme)
	m := newWatchModel(in, collector, renderOptions(cfg), statusline.NewStyles(r, t), r.NewStyle().Foreground(t.Muted), flagInterval)
	m.changes = changes

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}

type (
	watchLineMsg    struct{ data statusline.Data }
	watchTickMsg    struct{ seq int }
	watchChangedMsg struct{}
)

type watchModel struct {
	payload   model.StatusInput
	collector statusline.Collector
	opts      statusline.Options
	styles    statusline.Styles
	muted     lipgloss.Style
	spinner   spinner.Model
	interval  time.Duration
	changes   <-chan struct{} // transcript writes; nil when not watching

	seq      int // generation of the pending refresh tick
	line     string
	updated  time.Time
	loading  bool
	quitting bool
}

func newWatchModel(in model.StatusInput, c statusline.Collector, opts statusline.Options, st statusline.Styles, muted lipgloss.Style, interval time.Duration) watchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = muted

	return watchModel{
		payload:   in,
		collector: c,
		opts:      opts,
		styles:    st,
		muted:     muted,
		spinner:   sp,
		interval:  interval,
		loading:   true,
	}
}

// Init implements tea.Model.
func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.collect(), waitForChange(m.changes))
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return watchChangedMsg{}
	}
}

func (m watchModel) refresh() (watchModel, tea.Cmd) {
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.collect())
}

func (m watchModel) collect() tea.Cmd {
	c, in := m.collector, m.payload
	return func() tea.Msg {
		return watchLineMsg{data: c.Collect(context.Background(), in)}
	}
}

// Update implements tea.Model.
func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case watchLineMsg:
		m.loading = false
		m.line = statusline.Render(msg.data, m.opts, m.styles)
		m.updated = msg.data.Now
		m.seq++
		seq := m.seq
		return m, tea.Tick(m.interval, func(time.Time) tea.Msg { return watchTickMsg{seq: seq} })

	case watchTickMsg:
		if msg.seq != m.seq || m.loading {
			return m, nil
		}
		return m.refresh()

	case watchChangedMsg:
		if m.loading {
			return m, waitForChange(m.changes)
		}
		var cmd tea.Cmd
		m, cmd = m.refresh()
		return m, tea.Batch(cmd, waitForChange(m.changes))

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m watchModel) View() string {
	if m.quitting {
		return ""
	}
	if m.line == "" {
		return m.spinner.View() + m.muted.Render(" collecting session data...") + "\n"
	}

	status := "updated " + m.updated.Format("15:04:05")
	if m.loading {
		status = m.spinner.View() + " refreshing"
	}
	return m.line + "\n" + m.muted.Render(status+" · q to quit") + "\n"
}
