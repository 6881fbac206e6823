package present

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/buddy_io"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRC(t *testing.T) *buddy_io.RuntimeContext {
	t.Helper()
	return buddy_io.NewContext(context.Background(), "test")
}

func scriptedPresenter(input string, simple bool) (*Presenter, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	prompts := &bytes.Buffer{}
	p := NewWithStreams(strings.NewReader(input), out, prompts, simple, false)
	return p, out, prompts
}

func TestShow_SimpleMode(t *testing.T) {
	p, out, _ := scriptedPresenter("", true)

	p.Show(testRC(t), &message.Proposal{
		Message:    "fix: handle nil pointer",
		Provenance: message.ProvenanceAI,
		Type:       message.TypeFix,
	}, "main", []string{"a.go"})

	assert.Equal(t, "fix: handle nil pointer\n", out.String())
}

func TestShow_Detailed(t *testing.T) {
	p, out, _ := scriptedPresenter("", false)

	p.Show(testRC(t), &message.Proposal{
		Message:    "chore: update 4 files",
		Provenance: message.ProvenanceFallback,
		Type:       message.TypeChore,
	}, "feature/login", []string{"a.go", "b.go"})

	text := out.String()
	assert.Contains(t, text, "Proposed commit message:")
	assert.Contains(t, text, "chore: update 4 files")
	assert.Contains(t, text, "source: fallback | type: chore | branch: feature/login")
	assert.Contains(t, text, "staged files (2):")
	assert.Contains(t, text, "- a.go")
	assert.Contains(t, text, "- b.go")
}

func TestShow_NoBranch(t *testing.T) {
	p, out, _ := scriptedPresenter("", false)

	p.Show(testRC(t), &message.Proposal{
		Message:    "docs: update readme",
		Provenance: message.ProvenanceAI,
		Type:       message.TypeDocs,
	}, "", nil)

	assert.Contains(t, out.String(), "source: ai | type: docs\n")
	assert.NotContains(t, out.String(), "branch:")
}

func TestDecide_Confirm(t *testing.T) {
	for _, input := range []string{"y\n", "Y\n", "yes\n", "  y  \n"} {
		p, _, prompts := scriptedPresenter(input, false)

		decision, edited, err := p.Decide(testRC(t))
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, interaction.DecisionConfirm, decision)
		assert.Empty(t, edited)
		assert.Contains(t, prompts.String(), "[y]es / [n]o / [e]dit")
	}
}

func TestDecide_ConfirmWithoutTrailingNewline(t *testing.T) {
	p, _, _ := scriptedPresenter("y", false)

	decision, _, err := p.Decide(testRC(t))
	require.NoError(t, err, "piped input without a final newline confirms")
	assert.Equal(t, interaction.DecisionConfirm, decision)
}

func TestDecide_Cancel(t *testing.T) {
	p, _, _ := scriptedPresenter("n\n", false)

	decision, edited, err := p.Decide(testRC(t))
	require.NoError(t, err)
	assert.Equal(t, interaction.DecisionCancel, decision)
	assert.Empty(t, edited)
}

func TestDecide_EditReturnsTextVerbatim(t *testing.T) {
	p, _, prompts := scriptedPresenter("e\nWIP   do not merge yet\n", false)

	decision, edited, err := p.Decide(testRC(t))
	require.NoError(t, err)
	assert.Equal(t, interaction.DecisionEdit, decision)
	assert.Equal(t, "WIP   do not merge yet", edited, "edited text passes through without reformatting")
	assert.Contains(t, prompts.String(), "Enter commit message")
}

func TestDecide_RepromptsOnUnknownInput(t *testing.T) {
	p, _, prompts := scriptedPresenter("maybe\nwhat\ny\n", false)

	decision, _, err := p.Decide(testRC(t))
	require.NoError(t, err)
	assert.Equal(t, interaction.DecisionConfirm, decision)
	assert.Equal(t, 2, strings.Count(prompts.String(), "Please answer y, n or e."))
	assert.Equal(t, 3, strings.Count(prompts.String(), "[y]es"))
}

func TestDecide_EOFCancels(t *testing.T) {
	p, _, _ := scriptedPresenter("", false)

	decision, _, err := p.Decide(testRC(t))
	require.Error(t, err)
	assert.Equal(t, interaction.DecisionCancel, decision)
}

func TestDecide_EOFDuringEditCancels(t *testing.T) {
	p, _, _ := scriptedPresenter("e\n", false)

	decision, _, err := p.Decide(testRC(t))
	require.Error(t, err)
	assert.Equal(t, interaction.DecisionCancel, decision)
}

func TestReports(t *testing.T) {
	p, out, _ := scriptedPresenter("", false)

	p.ReportSuccess("abc1234")
	p.ReportSuccess("")
	p.ReportError("pre-commit hook rejected")
	p.ReportCancelled()
	p.ReportNothingStaged()

	text := out.String()
	assert.Contains(t, text, "Commit created: abc1234")
	assert.Contains(t, text, "Commit created.\n")
	assert.Contains(t, text, "Error: pre-commit hook rejected")
	assert.Contains(t, text, "Commit cancelled. Nothing was committed.")
	assert.Contains(t, text, "No staged changes. Stage files with `git add` first.")
}
