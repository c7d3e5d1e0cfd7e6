// Package statusline gathers session data and assembles the colored status line.
package statusline

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/ccline/internal/cli"
	"github.com/theirongolddev/ccline/internal/gitinfo"
	"github.com/theirongolddev/ccline/internal/model"
	"github.com/theirongolddev/ccline/internal/window"

	"github.com/charmbracelet/lipgloss"
)

// Separator joins segments; only the bar itself is styled.
const Separator = "│"

// DefaultContextWindow is the context size used when Options leaves it unset.
const DefaultContextWindow = 200_000

// Data is everything the line needs for one render. Nil or zero fields
// suppress their segment.
type Data struct {
	Model         string
	Git           *gitinfo.Info
	Now           time.Time
	Usage         *model.UsageSnapshot
	BlockStart    time.Time
	HasBlock      bool
	ContextLength int64
	LinesAdded    int
	LinesRemoved  int
}

// Options carries the render-time settings.
type Options struct {
	FixedCycles   bool
	CycleHours    []int
	CostLimit     float64
	ContextWindow int64
	BarWidth      int
}

// Render assembles the status line in segment order: model, git, timer, usage
// stats, context fill, code stats.
func Render(d Data, opts Options, st Styles) string {
	var parts []string
	add := func(s string) {
		if s != "" {
			parts = append(parts, s)
		}
	}

	add(st.Model.Render("🤖 " + d.Model))
	add(gitSegment(d.Git, st))
	add(timerSegment(d, opts, st))
	if d.Usage != nil {
		parts = append(parts, usageSegments(*d.Usage, st)...)
	}
	add(contextSegment(d.ContextLength, opts.ContextWindow, st))
	add(codeSegment(d.LinesAdded, d.LinesRemoved, st))

	return strings.Join(parts, " "+st.Separator.Render(Separator)+" ")
}

func gitSegment(info *gitinfo.Info, st Styles) string {
	if info == nil || info.Branch == "" {
		return ""
	}
	icon := "🌿"
	if info.Dirty {
		icon = "🔴"
	}
	return st.Branch.Render(icon + " " + info.Branch)
}

// timerSegment renders exactly one of the fixed-cycle countdown, the usage
// block countdown, or the transcript block fallback.
func timerSegment(d Data, opts Options, st Styles) string {
	if opts.FixedCycles {
		return fixedCycleSegment(d, opts, st)
	}
	if s := usageTimerSegment(d, opts, st); s != "" {
		return s
	}
	return blockSegment(d, st)
}

func fixedCycleSegment(d Data, opts Options, st Styles) string {
	cd, ok := window.NextCycleReset(d.Now, opts.CycleHours)
	if !ok {
		return ""
	}
	text := fmt.Sprintf("⏱ %s until reset at %s", cli.FormatCountdown(cd.Remaining()), cli.FormatClock(cd.NextReset))
	if d.Usage != nil {
		if pct := cli.PercentageOfLimit(d.Usage.CostUSD, opts.CostLimit); pct > 0 {
			text += fmt.Sprintf(" (%d%%)", pct)
		}
	}
	return secondsStyle(cd.TotalSeconds, st).Render(text)
}

func usageTimerSegment(d Data, opts Options, st Styles) string {
	if d.Usage == nil || !d.Usage.HasReset() {
		return ""
	}
	reset := d.Usage.ResetTime
	remaining := reset.Sub(d.Now)
	if remaining <= 0 {
		return ""
	}

	pct := 0
	if !d.Usage.StartTime.IsZero() {
		pct = cli.SessionElapsedPercentage(d.Usage.StartTime, reset, d.Now)
	}
	style := elapsedStyle(pct, st)
	text := fmt.Sprintf("⏱ %s until reset at %s (%d%%) %s",
		cli.FormatCountdown(remaining),
		cli.FormatClock(reset.In(d.Now.Location())),
		pct,
		cli.ProgressBar(pct, barWidth(opts.BarWidth)),
	)
	return style.Render(text)
}

func blockSegment(d Data, st Styles) string {
	if !d.HasBlock {
		return ""
	}
	secs := int64(window.BlockRemaining(d.BlockStart, d.Now) / time.Second)
	if secs <= 0 {
		return ""
	}
	return secondsStyle(secs, st).Render("⏳ " + cli.FormatCountdown(time.Duration(secs)*time.Second))
}

func usageSegments(u model.UsageSnapshot, st Styles) []string {
	var out []string
	if u.Entries > 0 {
		out = append(out, st.Requests.Render(fmt.Sprintf("💬 %d requests", u.Entries)))
	}
	if u.TotalTokens > 0 {
		text := "📊 " + cli.FormatNumber(u.TotalTokens) + " tok"
		if u.TokensPerMinute > 0 {
			text += fmt.Sprintf(" (%.0f tpm)", u.TokensPerMinute)
		}
		out = append(out, st.Tokens.Render(text))
	}
	if u.CostUSD > 0 {
		out = append(out, st.Cost.Render("💵 "+cli.FormatUSD(u.CostUSD)))
	}
	return out
}

func contextSegment(length, window int64, st Styles) string {
	if length <= 0 {
		return ""
	}
	if window <= 0 {
		window = DefaultContextWindow
	}
	pct := float64(length) / float64(window) * 100
	return fillStyle(pct, st).Render("📈 " + cli.FormatContextPercent(pct))
}

func codeSegment(added, removed int, st Styles) string {
	if added <= 0 && removed <= 0 {
		return ""
	}
	return st.Good.Render(fmt.Sprintf("+%d", added)) + " " + st.Bad.Render(fmt.Sprintf("-%d", removed))
}

// secondsStyle tiers a countdown: over an hour good, over 30 minutes warn.
func secondsStyle(secs int64, st Styles) lipgloss.Style {
	switch {
	case secs > 3600:
		return st.Good
	case secs > 1800:
		return st.Warn
	default:
		return st.Bad
	}
}

// elapsedStyle tiers a usage block by the share of it still remaining.
func elapsedStyle(pct int, st Styles) lipgloss.Style {
	switch left := 100 - pct; {
	case left <= 10:
		return st.Bad
	case left <= 25:
		return st.Warn
	default:
		return st.Good
	}
}

func fillStyle(pct float64, st Styles) lipgloss.Style {
	switch {
	case pct < 50:
		return st.Good
	case pct < 80:
		return st.Warn
	default:
		return st.Bad
	}
}

func barWidth(w int) int {
	if w <= 0 {
		return 10
	}
	return w
}
