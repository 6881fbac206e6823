package message

import (
	"context"
	"testing"

	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/buddy_io"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/git"
	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient scripts the inference contract for generator tests.
type stubClient struct {
	available     bool
	response      string
	err           error
	completeCalls int
}

func (s *stubClient) Available(_ context.Context) bool {
	return s.available
}

func (s *stubClient) Complete(_ context.Context, _ string, _ []string) (string, error) {
	s.completeCalls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testRC(t *testing.T) *buddy_io.RuntimeContext {
	t.Helper()
	return buddy_io.NewContext(context.Background(), "test")
}

func changeSet(files ...string) *git.ChangeSet {
	return &git.ChangeSet{
		Files: files,
		Diff:  "diff --git a/x b/x\nindex 1..2 100644\n",
	}
}

func TestGenerate_AIResponseUsedVerbatim(t *testing.T) {
	client := &stubClient{available: true, response: "feat: add login form"}
	g := NewGenerator(client)

	proposal := g.Generate(testRC(t), changeSet("login.go"))

	require.NotNil(t, proposal)
	assert.Equal(t, "feat: add login form", proposal.Message)
	assert.Equal(t, ProvenanceAI, proposal.Provenance)
	assert.Equal(t, TypeFeat, proposal.Type)
	assert.Equal(t, 1, client.completeCalls)
}

func TestGenerate_MalformedAIResponseFallsBack(t *testing.T) {
	client := &stubClient{available: true, response: "i changed some stuff"}
	g := NewGenerator(client)

	proposal := g.Generate(testRC(t), changeSet("main.go"))

	require.NotNil(t, proposal)
	assert.Equal(t, "chore: update main.go", proposal.Message)
	assert.Equal(t, ProvenanceFallback, proposal.Provenance)
}

func TestGenerate_UnavailableClientNeverCompletes(t *testing.T) {
	client := &stubClient{available: false, response: "feat: should never be used"}
	g := NewGenerator(client)

	proposal := g.Generate(testRC(t), changeSet("a.py", "b.py"))

	assert.Equal(t, "chore: update a.py, b.py", proposal.Message)
	assert.Equal(t, ProvenanceFallback, proposal.Provenance)
	assert.Zero(t, client.completeCalls, "Complete must not be called when unavailable")
}

func TestGenerate_CompletionErrorFallsBack(t *testing.T) {
	client := &stubClient{available: true, err: cerr.New("connection reset")}
	g := NewGenerator(client)

	proposal := g.Generate(testRC(t), changeSet("a", "b", "c", "d"))

	assert.Equal(t, "chore: update 4 files", proposal.Message)
	assert.Equal(t, ProvenanceFallback, proposal.Provenance)
}

func TestGenerate_NilClientNeverPanics(t *testing.T) {
	g := NewGenerator(nil)

	proposal := g.Generate(testRC(t), changeSet("hello.py"))

	require.NotNil(t, proposal)
	assert.Equal(t, "chore: update hello.py", proposal.Message)
	assert.Equal(t, ProvenanceFallback, proposal.Provenance)
}

func TestGenerate_AIResponseNormalizedBeforeValidation(t *testing.T) {
	client := &stubClient{available: true, response: "\"fix: handle nil pointer\"\n"}
	g := NewGenerator(client)

	proposal := g.Generate(testRC(t), changeSet("ptr.go"))

	assert.Equal(t, "fix: handle nil pointer", proposal.Message)
	assert.Equal(t, ProvenanceAI, proposal.Provenance)
	assert.Equal(t, TypeFix, proposal.Type)
}

func TestGenerate_HeuristicTypeWinsOverAIPrefix(t *testing.T) {
	client := &stubClient{available: true, response: "feat: add more coverage"}
	g := NewGenerator(client)

	proposal := g.Generate(testRC(t), changeSet("pkg/git/inspector_test.go"))

	assert.Equal(t, ProvenanceAI, proposal.Provenance)
	assert.Equal(t, TypeTest, proposal.Type)
}

func TestGenerate_FallbackTypeIsChoreWithoutSignal(t *testing.T) {
	g := NewGenerator(nil)

	proposal := g.Generate(testRC(t), changeSet("main.go"))

	assert.Equal(t, TypeChore, proposal.Type)
}
