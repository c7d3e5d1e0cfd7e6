// Package source reads Claude Code JSONL transcripts.
package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/theirongolddev/ccline/internal/model"
)

// ErrUnavailable is returned when the transcript cannot be read at all.
var ErrUnavailable = errors.New("source: transcript unavailable")

// maxLineBytes caps a single transcript line. Longer lines are skipped.
const maxLineBytes = 8 * 1024 * 1024

// naiveLayout matches timestamps written without a zone designator.
const naiveLayout = "2006-01-02T15:04:05.999999999"

// Read scans a transcript once and collects the latest context length and the
// sorted activity timestamps. Malformed lines are counted and skipped; only
// whole-file failures are returned, wrapped in ErrUnavailable.
func Read(path string) (Transcript, error) {
	if path == "" {
		return Transcript{}, fmt.Errorf("%w: no path", ErrUnavailable)
	}

	f, err := os.Open(path) //nolint:gosec // path comes from the host editor's payload
	if err != nil {
		return Transcript{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = f.Close() }()

	var (
		tr     Transcript
		latest time.Time
	)

	r := bufio.NewReaderSize(f, 256*1024)
	for {
		line, tooLong, err := readLine(r, maxLineBytes)
		if err == nil || len(line) > 0 || tooLong {
			tr.Lines++
			if tooLong {
				tr.Skipped++
			} else {
				latest = tr.add(line, latest)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Transcript{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
	}

	sort.Slice(tr.Timestamps, func(i, j int) bool {
		return tr.Timestamps[i].Before(tr.Timestamps[j])
	})
	return tr, nil
}

// add folds one line into tr and returns the newest qualifying timestamp.
func (tr *Transcript) add(line []byte, latest time.Time) time.Time {
	ev, hasUsage, err := ParseLine(line)
	if err != nil {
		tr.Skipped++
		return latest
	}
	if ev.Excluded() || !hasUsage || ev.Timestamp.IsZero() {
		return latest
	}

	if latest.IsZero() || ev.Timestamp.After(latest) {
		latest = ev.Timestamp
		tr.ContextLength = ev.ContextTokens()
	}
	if ev.InputTokens != 0 && ev.OutputTokens != 0 {
		tr.Timestamps = append(tr.Timestamps, ev.Timestamp)
	}
	return latest
}

// readLine returns the next line without its newline. A line over limit is
// drained and reported as tooLong with no content. err is io.EOF after the
// last line.
func readLine(r *bufio.Reader, limit int) (line []byte, tooLong bool, err error) {
	for {
		chunk, err := r.ReadSlice('\n')
		if !tooLong {
			if len(line)+len(chunk) > limit+1 {
				tooLong, line = true, nil
			} else {
				line = append(line, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return bytes.TrimSuffix(line, []byte("\n")), tooLong, err
	}
}

// LatestContextLength returns the context length of the latest qualifying
// record, or 0 when the transcript is missing or has none.
func LatestContextLength(path string) int64 {
	tr, err := Read(path)
	if err != nil {
		return 0
	}
	return tr.ContextLength
}

// CollectTimestamps returns the ascending activity timestamps, or nil when the
// transcript is missing or has none.
func CollectTimestamps(path string) []time.Time {
	tr, err := Read(path)
	if err != nil {
		return nil
	}
	return tr.Timestamps
}

// ParseLine decodes one transcript line. hasUsage is false when the record has
// no usage object or an empty one. An unparseable timestamp leaves
// ev.Timestamp zero rather than failing the line.
func ParseLine(line []byte) (ev model.UsageEvent, hasUsage bool, err error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return ev, false, errors.New("source: empty line")
	}

	var entry RawEntry
	if err := json.Unmarshal(line, &entry); err != nil {
		return ev, false, fmt.Errorf("source: malformed line: %w", err)
	}

	ev.IsSidechain = entry.IsSidechain
	ev.IsError = entry.IsAPIErrorMessage
	if entry.Timestamp != "" {
		if ts, ok := parseTimestamp(entry.Timestamp); ok {
			ev.Timestamp = ts
		}
	}

	if entry.Message == nil || isEmptyObject(entry.Message.Usage) {
		return ev, false, nil
	}

	var u RawUsage
	if err := json.Unmarshal(entry.Message.Usage, &u); err != nil {
		return ev, false, fmt.Errorf("source: malformed usage: %w", err)
	}
	ev.InputTokens = u.InputTokens
	ev.OutputTokens = u.OutputTokens
	ev.CacheReadTokens = u.CacheReadInputTokens
	ev.CacheCreationTokens = u.CacheCreationInputTokens
	return ev, true, nil
}

func parseTimestamp(s string) (time.Time, bool) {
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts, true
	}
	if ts, err := time.Parse(naiveLayout, s); err == nil {
		return ts, true
	}
	return time.Time{}, false
}

func isEmptyObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return true
	}
	if raw[0] != '{' {
		return false
	}
	inner := bytes.TrimSpace(raw[1 : len(raw)-1])
	return len(inner) == 0
}
