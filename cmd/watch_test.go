package cmd

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/ccline/internal/model"
	"github.com/theirongolddev/ccline/internal/statusline"
	"github.com/theirongolddev/ccline/internal/theme"
	"github.com/theirongolddev/ccline/internal/window"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
)

func newTestWatchModel() watchModel {
	r := statusline.NewRenderer(io.Discard, termenv.Ascii)
	opts := statusline.Options{FixedCycles: true, CycleHours: window.DefaultCycleHours}
	in := model.StatusInput{}
	in.Model.DisplayName = "Opus"
	return newWatchModel(in, statusline.Collector{}, opts, statusline.NewStyles(r, theme.Neon), r.NewStyle(), time.Second)
}

func TestWatchModel_Lifecycle(t *testing.T) {
	m := newTestWatchModel()
	if !strings.Contains(m.View(), "collecting session data") {
		t.Errorf("initial View = %q", m.View())
	}
	if m.Init() == nil {
		t.Fatal("Init returned no command")
	}

	// The collect command runs the collector and yields a line message.
	msg := m.collect()()
	lineMsg, ok := msg.(watchLineMsg)
	if !ok {
		t.Fatalf("collect produced %T", msg)
	}
	if lineMsg.data.Model != "Opus" {
		t.Errorf("collected model = %q", lineMsg.data.Model)
	}

	next, cmd := m.Update(watchLineMsg{data: statusline.Data{Model: "Opus", Now: time.Date(2025, 6, 1, 18, 40, 5, 0, time.UTC)}})
	m = next.(watchModel)
	if cmd == nil {
		t.Error("line message did not schedule a refresh")
	}
	view := m.View()
	for _, want := range []string{"🤖 Opus │ ⏱ 2h 19m until reset at 21:00", "updated 18:40:05", "q to quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View = %q, missing %q", view, want)
		}
	}

	// A tick from an older generation is dropped.
	next, cmd = m.Update(watchTickMsg{seq: m.seq - 1})
	if next.(watchModel).loading || cmd != nil {
		t.Error("stale tick started a refresh")
	}

	next, cmd = m.Update(watchTickMsg{seq: m.seq})
	m = next.(watchModel)
	if !m.loading || cmd == nil {
		t.Error("tick did not start a refresh")
	}
	if !strings.Contains(m.View(), "refreshing") {
		t.Errorf("View while refreshing = %q", m.View())
	}

	// Ticks are ignored while a refresh is in flight.
	if _, cmd := m.Update(watchTickMsg{seq: m.seq}); cmd != nil {
		t.Error("tick during refresh started another")
	}
}

func TestWatchModel_TranscriptChange(t *testing.T) {
	ch := make(chan struct{}, 1)
	m := newTestWatchModel()
	m.changes = ch
	m.loading = false
	m.line = "line"

	next, cmd := m.Update(watchChangedMsg{})
	m = next.(watchModel)
	if !m.loading || cmd == nil {
		t.Fatal("change did not start a refresh")
	}

	ch <- struct{}{}
	if msg := waitForChange(ch)(); msg != (watchChangedMsg{}) {
		t.Errorf("waitForChange = %#v", msg)
	}
	close(ch)
	if msg := waitForChange(ch)(); msg != nil {
		t.Errorf("waitForChange after close = %#v, want nil", msg)
	}
	if waitForChange(nil) != nil {
		t.Error("waitForChange(nil) returned a command")
	}
}

func TestWatchModel_Quit(t *testing.T) {
	m := newTestWatchModel()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q did not quit")
	}
	if got := next.(watchModel).View(); got != "" {
		t.Errorf("View after quit = %q", got)
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd != nil {
		t.Error("x produced a command")
	}
}

func TestWatchCommand_RequiresInput(t *testing.T) {
	cfgPath := isolate(t)
	_, err := execRoot(t, "", "watch", "--config", cfgPath)
	if err == nil || !strings.Contains(err.Error(), "--input") {
		t.Errorf("err = %v, want --input required", err)
	}
}
