package source

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestProjectDirName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/Users/me/projects/gitlore", "-Users-me-projects-gitlore"},
		{"/home/me/my.site", "-home-me-my-site"},
		{"/srv/snake_case", "-srv-snake-case"},
	}
	for _, tt := range tests {
		if got := ProjectDirName(tt.in); got != tt.want {
			t.Errorf("ProjectDirName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLatestTranscript(t *testing.T) {
	claudeDir := t.TempDir()
	cwd := "/work/app"
	dir := filepath.Join(claudeDir, "projects", ProjectDirName(cwd))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatal(err)
	}

	older := filepath.Join(dir, "a.jsonl")
	newer := filepath.Join(dir, "b.jsonl")
	for _, p := range []string{older, newer, filepath.Join(dir, "notes.txt")} {
		if err := os.WriteFile(p, []byte("{}\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(older, past, past); err != nil {
		t.Fatal(err)
	}

	if got := LatestTranscript(claudeDir, cwd); got != newer {
		t.Errorf("LatestTranscript = %q, want %q", got, newer)
	}
	if got := LatestTranscript(claudeDir, "/elsewhere"); got != "" {
		t.Errorf("LatestTranscript for unknown project = %q, want empty", got)
	}
}
