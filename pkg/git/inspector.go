// pkg/git/inspector.go

package git

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/buddy_err"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/buddy_io"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/execute"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Runner abstracts subprocess execution so tests can substitute scripted
// output for the real git binary.
type Runner interface {
	Run(ctx context.Context, opts execute.Options) (string, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, opts execute.Options) (string, error) {
	return execute.Run(ctx, opts)
}

// Inspector reads and mutates the repository in the working directory.
type Inspector struct {
	runner Runner
	dir    string
}

// NewInspector returns an Inspector backed by the system git binary.
func NewInspector() *Inspector {
	return &Inspector{runner: execRunner{}}
}

// NewInspectorWithRunner returns an Inspector using the given runner.
func NewInspectorWithRunner(r Runner) *Inspector {
	return &Inspector{runner: r}
}

func (i *Inspector) git(rc *buddy_io.RuntimeContext, args ...string) (string, error) {
	return i.runner.Run(rc.Ctx, execute.Options{
		Command: "git",
		Args:    args,
		Dir:     i.dir,
		Capture: true,
	})
}

// EnsureGit verifies the git binary is on PATH.
func (i *Inspector) EnsureGit(rc *buddy_io.RuntimeContext) error {
	if _, err := exec.LookPath("git"); err != nil {
		return buddy_err.NewDependencyError("git", "commit message generation",
			"Install git and make sure it is on your PATH")
	}
	return nil
}

// IsRepository reports whether the working directory is inside a Git work
// tree.
func (i *Inspector) IsRepository(rc *buddy_io.RuntimeContext) bool {
	out, err := i.git(rc, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return false
	}
	return strings.TrimSpace(out) == "true"
}

// StagedDiff returns the unified diff of staged content; empty string when
// nothing is staged.
func (i *Inspector) StagedDiff(rc *buddy_io.RuntimeContext) (string, error) {
	out, err := i.git(rc, "diff", "--cached")
	if err != nil {
		return "", fmt.Errorf("failed to read staged diff: %w", err)
	}
	return out, nil
}

// ChangedFiles returns staged file paths in Git's reported order.
func (i *Inspector) ChangedFiles(rc *buddy_io.RuntimeContext) ([]string, error) {
	out, err := i.git(rc, "diff", "--cached", "--name-only")
	if err != nil {
		return nil, fmt.Errorf("failed to list staged files: %w", err)
	}

	var files []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

// StagedChanges captures the full change set in one call.
func (i *Inspector) StagedChanges(rc *buddy_io.RuntimeContext) (*ChangeSet, error) {
	logger := otelzap.Ctx(rc.Ctx)

	files, err := i.ChangedFiles(rc)
	if err != nil {
		return nil, err
	}
	diff, err := i.StagedDiff(rc)
	if err != nil {
		return nil, err
	}

	logger.Debug("Staged changes captured",
		zap.Int("files", len(files)),
		zap.Int("diff_bytes", len(diff)))

	return &ChangeSet{Files: files, Diff: diff}, nil
}

// Status retrieves branch name and a parsed porcelain status.
func (i *Inspector) Status(rc *buddy_io.RuntimeContext) (*Status, error) {
	branchOutput, err := i.git(rc, "branch", "--show-current")
	if err != nil {
		return nil, fmt.Errorf("failed to get current branch: %w", err)
	}

	statusOutput, err := i.git(rc, "status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to get git status: %w", err)
	}

	status := &Status{
		Branch:    strings.TrimSpace(branchOutput),
		IsClean:   strings.TrimSpace(statusOutput) == "",
		Staged:    []string{},
		Modified:  []string{},
		Untracked: []string{},
	}

	scanner := bufio.NewScanner(strings.NewReader(statusOutput))
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 4 {
			continue
		}

		statusCode := line[:2]
		filename := line[3:]

		switch {
		case statusCode == "??":
			status.Untracked = append(status.Untracked, filename)
		case statusCode[0] != ' ':
			status.Staged = append(status.Staged, filename)
		case statusCode[1] != ' ':
			status.Modified = append(status.Modified, filename)
		}
	}

	return status, nil
}

// Commit creates a commit with the given message. The underlying git error
// text is passed through verbatim when the invocation fails.
func (i *Inspector) Commit(rc *buddy_io.RuntimeContext, message string) (*CommitResult, error) {
	logger := otelzap.Ctx(rc.Ctx)

	out, err := i.git(rc, "commit", "-m", message)
	if err != nil {
		return nil, buddy_err.NewGitError("git commit failed",
			fmt.Errorf("%s", strings.TrimSpace(out)),
			"Check `git status` for staged content and hook output")
	}

	hash, err := i.git(rc, "rev-parse", "--short", "HEAD")
	if err != nil {
		// The commit itself succeeded; report it without a hash.
		logger.Warn("Could not resolve new commit hash", zap.Error(err))
		return &CommitResult{}, nil
	}

	result := &CommitResult{Hash: strings.TrimSpace(hash)}
	logger.Debug("Commit created", zap.String("hash", result.Hash))
	return result, nil
}
