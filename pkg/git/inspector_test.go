package git

import (
	"context"
	"strings"
	"testing"

	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/buddy_io"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/execute"
	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner scripts git output per argument list and records every call.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, opts execute.Options) (string, error) {
	key := strings.Join(opts.Args, " ")
	f.calls = append(f.calls, key)
	if err, ok := f.errs[key]; ok {
		return f.outputs[key], err
	}
	return f.outputs[key], nil
}

func testRC(t *testing.T) *buddy_io.RuntimeContext {
	t.Helper()
	return buddy_io.NewContext(context.Background(), "test")
}

func TestIsRepository(t *testing.T) {
	rc := testRC(t)

	inside := NewInspectorWithRunner(&fakeRunner{outputs: map[string]string{
		"rev-parse --is-inside-work-tree": "true\n",
	}})
	assert.True(t, inside.IsRepository(rc))

	outside := NewInspectorWithRunner(&fakeRunner{errs: map[string]error{
		"rev-parse --is-inside-work-tree": cerr.New("fatal: not a git repository"),
	}})
	assert.False(t, outside.IsRepository(rc))
}

func TestChangedFiles_OrderPreserved(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"diff --cached --name-only": "zeta.go\nalpha.go\nREADME.md\n",
	}}
	i := NewInspectorWithRunner(runner)

	files, err := i.ChangedFiles(testRC(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta.go", "alpha.go", "README.md"}, files)
}

func TestChangedFiles_EmptyWhenNothingStaged(t *testing.T) {
	i := NewInspectorWithRunner(&fakeRunner{outputs: map[string]string{
		"diff --cached --name-only": "\n",
	}})

	files, err := i.ChangedFiles(testRC(t))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestStagedDiff_Idempotent(t *testing.T) {
	diff := "diff --git a/hello.py b/hello.py\nnew file mode 100644\n+print('hi')\n"
	i := NewInspectorWithRunner(&fakeRunner{outputs: map[string]string{
		"diff --cached": diff,
	}})
	rc := testRC(t)

	first, err := i.StagedDiff(rc)
	require.NoError(t, err)
	second, err := i.StagedDiff(rc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, diff, first)
}

func TestStagedChanges(t *testing.T) {
	i := NewInspectorWithRunner(&fakeRunner{outputs: map[string]string{
		"diff --cached --name-only": "hello.py\n",
		"diff --cached":             "diff --git a/hello.py b/hello.py\n",
	}})

	cs, err := i.StagedChanges(testRC(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"hello.py"}, cs.Files)
	assert.False(t, cs.Empty())
}

func TestChangeSet_Empty(t *testing.T) {
	assert.True(t, (&ChangeSet{}).Empty())
	assert.True(t, (*ChangeSet)(nil).Empty())
	assert.False(t, (&ChangeSet{Files: []string{"a"}}).Empty())
}

func TestStatus_PorcelainParse(t *testing.T) {
	i := NewInspectorWithRunner(&fakeRunner{outputs: map[string]string{
		"branch --show-current": "main\n",
		"status --porcelain":    "M  staged.go\n M modified.go\n?? new.txt\nA  added.go\n",
	}})

	status, err := i.Status(testRC(t))
	require.NoError(t, err)
	assert.Equal(t, "main", status.Branch)
	assert.False(t, status.IsClean)
	assert.Equal(t, []string{"staged.go", "added.go"}, status.Staged)
	assert.Equal(t, []string{"modified.go"}, status.Modified)
	assert.Equal(t, []string{"new.txt"}, status.Untracked)
}

func TestStatus_SkipsTruncatedPorcelainLines(t *testing.T) {
	// A status code with no path after it must not produce empty entries.
	i := NewInspectorWithRunner(&fakeRunner{outputs: map[string]string{
		"branch --show-current": "main\n",
		"status --porcelain":    "?? \nM  \n M \nM  real.go\n",
	}})

	status, err := i.Status(testRC(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"real.go"}, status.Staged)
	assert.Empty(t, status.Modified)
	assert.Empty(t, status.Untracked)
}

func TestCommit_Success(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"commit -m feat: add login form": "[main abc1234] feat: add login form\n",
		"rev-parse --short HEAD":         "abc1234\n",
	}}
	i := NewInspectorWithRunner(runner)

	result, err := i.Commit(testRC(t), "feat: add login form")
	require.NoError(t, err)
	assert.Equal(t, "abc1234", result.Hash)
	assert.Contains(t, runner.calls, "commit -m feat: add login form")
}

func TestCommit_FailurePassesGitTextThrough(t *testing.T) {
	hookOutput := "pre-commit hook rejected: trailing whitespace"
	i := NewInspectorWithRunner(&fakeRunner{
		outputs: map[string]string{"commit -m chore: update a": hookOutput},
		errs:    map[string]error{"commit -m chore: update a": cerr.New("exit status 1")},
	})

	_, err := i.Commit(testRC(t), "chore: update a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), hookOutput)
}
