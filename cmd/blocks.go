package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/ccline/internal/cli"
	"github.com/theirongolddev/ccline/internal/model"
	"github.com/theirongolddev/ccline/internal/source"
	"github.com/theirongolddev/ccline/internal/theme"
	"github.com/theirongolddev/ccline/internal/window"

	"github.com/spf13/cobra"
)

var flagClaudeDir string

var blocksCmd = &cobra.Command{
	Use:   "blocks [transcript.jsonl]",
	Short: "List the 5-hour activity blocks in a transcript",
	Long: "Infers 5-hour usage blocks from a transcript's timestamps. Without an argument,\n" +
		"the newest transcript for the current directory is used.",
	Args: cobra.MaximumNArgs(1),
	RunE: runBlocks,
}

func init() {
	homeDir, _ := os.UserHomeDir()
	blocksCmd.Flags().StringVar(&flagClaudeDir, "claude-dir", filepath.Join(homeDir, ".claude"), "Claude data directory")
	rootCmd.AddCommand(blocksCmd)
}

func runBlocks(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		path = source.LatestTranscript(flagClaudeDir, cwd)
		if path == "" {
			return fmt.Errorf("no transcripts for %s under %s", cwd, flagClaudeDir)
		}
	}

	tr, err := source.Read(path)
	if err != nil {
		return err
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	printBlocks(cmd.OutOrStdout(), theme.ByName(cfg.Appearance.Theme), path, tr, time.Now())
	return nil
}

func printBlocks(w io.Writer, t theme.Theme, path string, tr source.Transcript, now time.Time) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle(t, "ACTIVITY BLOCKS"))
	fmt.Fprintf(w, "  %s\n", path)
	fmt.Fprintf(w, "  %s lines, %s skipped, %s usage records\n\n",
		cli.FormatNumber(int64(tr.Lines)),
		cli.FormatNumber(int64(tr.Skipped)),
		cli.FormatNumber(int64(len(tr.Timestamps))))

	blocks := window.InferBlocks(tr.Timestamps)
	if len(blocks) == 0 {
		fmt.Fprintln(w, "  No activity with token usage.")
		return
	}

	fmt.Fprint(w, cli.RenderTable(t, cli.Table{
		Headers: []string{"Block", "Start", "End", "Requests", "Status"},
		Rows:    blockRows(blocks, tr.Timestamps, now),
	}))
	if ctx := tr.ContextLength; ctx > 0 {
		fmt.Fprintf(w, "\n  Latest context: %s tokens\n", cli.FormatNumber(ctx))
	}
}

func blockRows(blocks []model.ActivityBlock, sorted []time.Time, now time.Time) [][]string {
	rows := make([][]string, 0, len(blocks))
	i := 0
	for n, b := range blocks {
		count := 0
		for i < len(sorted) && !sorted[i].After(b.End) {
			count++
			i++
		}

		status := "ended"
		if b.Contains(now) {
			status = cli.FormatCountdown(b.End.Sub(now)) + " left"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", n+1),
			b.Start.In(now.Location()).Format("Jan 02 15:04"),
			b.End.In(now.Location()).Format("15:04"),
			cli.FormatNumber(int64(count)),
			status,
		})
	}
	return rows
}
