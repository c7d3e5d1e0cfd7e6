package statusline

import (
	"context"
	"log/slog"
	"time"

	"github.com/theirongolddev/ccline/internal/gitinfo"
	"github.com/theirongolddev/ccline/internal/logging"
	"github.com/theirongolddev/ccline/internal/model"
	"github.com/theirongolddev/ccline/internal/source"
	"github.com/theirongolddev/ccline/internal/usage"
	"github.com/theirongolddev/ccline/internal/window"
)

// GitFunc reports branch state for a directory.
type GitFunc func(ctx context.Context, dir string) (gitinfo.Info, error)

// Collector gathers the data for one render. Every source is optional and a
// failing source only drops its segment.
type Collector struct {
	Usage usage.Reporter // nil disables the usage segments
	Git   GitFunc        // nil disables the git segment
	Log   *slog.Logger
	Now   func() time.Time
}

// Collect reads the transcript, git state and usage report for in.
func (c Collector) Collect(ctx context.Context, in model.StatusInput) Data {
	log := c.Log
	if log == nil {
		log = logging.Discard()
	}
	now := time.Now()
	if c.Now != nil {
		now = c.Now()
	}

	d := Data{
		Model:        in.DisplayModel(),
		Now:          now,
		LinesAdded:   in.Cost.TotalLinesAdded,
		LinesRemoved: in.Cost.TotalLinesRemoved,
	}

	if c.Git != nil {
		info, err := c.Git(ctx, in.WorkDir())
		if err != nil {
			log.Debug("git segment skipped", "dir", in.WorkDir(), "err", err)
		} else {
			d.Git = &info
		}
	}

	tr, err := source.Read(in.TranscriptPath)
	if err != nil {
		log.Debug("transcript unavailable", "path", in.TranscriptPath, "err", err)
	} else {
		log.Debug("transcript read", "lines", tr.Lines, "skipped", tr.Skipped, "timestamps", len(tr.Timestamps))
	}
	d.ContextLength = tr.ContextLength
	d.BlockStart, d.HasBlock = window.CurrentBlockStart(tr.Timestamps, now)

	if c.Usage != nil {
		snap, err := c.Usage.Fetch(ctx)
		if err != nil {
			log.Debug("usage unavailable", "err", err)
		} else {
			d.Usage = snap
		}
	}
	return d
}
