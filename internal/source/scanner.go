package source

import (
	"os"
	"path/filepath"
	"strings"
)

// ProjectDirName encodes a working directory the way Claude Code names its
// per-project transcript folders: every path separator, dot, underscore and
// colon becomes "-".
//
//	"/Users/me/projects/gitlore" -> "-Users-me-projects-gitlore"
func ProjectDirName(cwd string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', '_', ':':
			return '-'
		}
		return r
	}, cwd)
}

// LatestTranscript returns the most recently modified main-session transcript
// for cwd under claudeDir/projects. It returns "" when none exists.
func LatestTranscript(claudeDir, cwd string) string {
	dir := filepath.Join(claudeDir, "projects", ProjectDirName(cwd))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	var (
		best    string
		bestMod int64
	)
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".jsonl" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); best == "" || mod > bestMod {
			best = filepath.Join(dir, e.Name())
			bestMod = mod
		}
	}
	return best
}
