// Package usage fetches the current usage block from an external reporting command.
package usage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/theirongolddev/ccline/internal/model"
)

// DefaultTimeout bounds each command attempt.
const DefaultTimeout = 5 * time.Second

// ErrNoUsageData wraps every failure to obtain a usage snapshot.
var ErrNoUsageData = errors.New("usage: no usage data")

// Reporter locates and invokes a usage source.
type Reporter interface {
	Fetch(ctx context.Context) (*model.UsageSnapshot, error)
}

type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// CommandReporter runs `<candidate> blocks --json` for each candidate in
// order until one exits cleanly with output.
type CommandReporter struct {
	candidates []string
	args       []string
	timeout    time.Duration
	run        runFunc
}

// NewCommandReporter creates a reporter for the given candidates. A
// non-positive timeout uses DefaultTimeout.
func NewCommandReporter(candidates []string, timeout time.Duration) *CommandReporter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &CommandReporter{
		candidates: candidates,
		args:       []string{"blocks", "--json"},
		timeout:    timeout,
		run:        runCommand,
	}
}

// Fetch implements Reporter.
func (r *CommandReporter) Fetch(ctx context.Context) (*model.UsageSnapshot, error) {
	if len(r.candidates) == 0 {
		return nil, fmt.Errorf("%w: no command candidates", ErrNoUsageData)
	}

	var errs []error
	for _, name := range r.candidates {
		out, err := r.attempt(ctx, name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		return ParseReport(out)
	}
	return nil, fmt.Errorf("%w: %w", ErrNoUsageData, errors.Join(errs...))
}

func (r *CommandReporter) attempt(ctx context.Context, name string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := r.run(ctx, name, r.args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(bytes.TrimSpace(out)) == 0 {
		return nil, fmt.Errorf("%s: empty output", name)
	}
	return out, nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // candidates come from config or the fixed search list
	return cmd.Output()
}

// ParseReport decodes a blocks report and selects the first active block, or
// failing that the last block that is not a gap.
func ParseReport(data []byte) (*model.UsageSnapshot, error) {
	var rep Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("%w: parsing report: %w", ErrNoUsageData, err)
	}

	block, ok := selectBlock(rep.Blocks)
	if !ok {
		return nil, fmt.Errorf("%w: no active or non-gap block", ErrNoUsageData)
	}

	snap := &model.UsageSnapshot{
		StartTime:   parseTime(block.StartTime),
		TotalTokens: block.TotalTokens,
		CostUSD:     block.CostUSD,
		Entries:     block.Entries,
	}
	reset := block.EndTime
	if block.UsageLimitResetTime != nil && *block.UsageLimitResetTime != "" {
		reset = *block.UsageLimitResetTime
	}
	snap.ResetTime = parseTime(reset)
	if block.BurnRate != nil {
		snap.TokensPerMinute = block.BurnRate.TokensPerMinute
	}
	return snap, nil
}

func selectBlock(blocks []ReportBlock) (ReportBlock, bool) {
	for _, b := range blocks {
		if b.IsActive {
			return b, true
		}
	}
	for i := len(blocks) - 1; i >= 0; i-- {
		if !blocks[i].IsGap {
			return blocks[i], true
		}
	}
	return ReportBlock{}, false
}

// parseTime returns the zero time for empty or unparseable values.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
