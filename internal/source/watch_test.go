package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatch_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.jsonl")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed, err := Watch(ctx, path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	// Other files in the directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.jsonl"), []byte("{}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
		t.Fatal("notified for an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}

	if err := os.WriteFile(path, []byte("{}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no notification after writing the transcript")
	}

	cancel()
	select {
	case <-drain(changed):
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

// drain discards pending notifications and reports when ch closes.
func drain(ch <-chan struct{}) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		for range ch {
		}
		close(done)
	}()
	return done
}

func TestWatch_MissingDirectory(t *testing.T) {
	if _, err := Watch(context.Background(), filepath.Join(t.TempDir(), "gone", "s.jsonl")); err == nil {
		t.Error("Watch succeeded on a missing directory")
	}
}
