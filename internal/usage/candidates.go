package usage

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultCommand is the usage reporter looked up on PATH.
const DefaultCommand = "ccusage"

// DefaultCandidates returns the commands to try in order: an explicit
// override alone, otherwise the PATH name plus, on Windows, the npm global
// shims and the first fnm-managed node install that has one.
func DefaultCandidates(override string) []string {
	if override != "" {
		return []string{override}
	}
	if runtime.GOOS != "windows" {
		return []string{DefaultCommand}
	}
	return windowsCandidates(os.Getenv("APPDATA"), os.Getenv("USERPROFILE"))
}

func windowsCandidates(appData, userProfile string) []string {
	candidates := []string{DefaultCommand}
	if appData != "" {
		candidates = append(candidates, filepath.Join(appData, "npm", "ccusage.cmd"))
	}
	if userProfile != "" {
		candidates = append(candidates, filepath.Join(userProfile, "AppData", "Roaming", "npm", "ccusage.cmd"))
	}
	if appData == "" {
		return candidates
	}

	versionsDir := filepath.Join(appData, "fnm", "node-versions")
	entries, err := os.ReadDir(versionsDir)
	if err != nil {
		return candidates
	}
	for _, e := range entries {
		p := filepath.Join(versionsDir, e.Name(), "installation", "ccusage.cmd")
		if _, err := os.Stat(p); err == nil {
			return append(candidates, p)
		}
	}
	return candidates
}
