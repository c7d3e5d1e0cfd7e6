// Package gitinfo reports the current branch and dirty state of a working tree.
package gitinfo

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotRepository is returned when dir has no current branch: not a
// repository, a detached HEAD, or git missing from PATH.
var ErrNotRepository = errors.New("gitinfo: no current branch")

// Info is the branch state shown in the status line.
type Info struct {
	Branch string
	Dirty  bool
}

// Runner executes git with args in dir and returns stdout.
type Runner func(ctx context.Context, dir string, args ...string) ([]byte, error)

// Detect inspects dir using the git binary on PATH.
func Detect(ctx context.Context, dir string) (Info, error) {
	return DetectWith(ctx, dir, runGit)
}

// DetectWith inspects dir using run. A failed status query leaves Dirty false.
func DetectWith(ctx context.Context, dir string, run Runner) (Info, error) {
	out, err := run(ctx, dir, "branch", "--show-current")
	if err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrNotRepository, err)
	}
	branch := strings.TrimSpace(string(out))
	if branch == "" {
		return Info{}, ErrNotRepository
	}

	info := Info{Branch: branch}
	if status, err := run(ctx, dir, "status", "--porcelain"); err == nil {
		info.Dirty = strings.TrimSpace(string(status)) != ""
	}
	return info, nil
}

func runGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	return cmd.Output()
}
