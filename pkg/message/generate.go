// pkg/message/generate.go

package message

import (
	"context"

	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/buddy_io"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/git"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/inference"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// source is one branch of the generation strategy: remote inference or the
// local heuristic. Exactly one branch is picked per run.
type source interface {
	Propose(ctx context.Context, cs *git.ChangeSet) (string, error)
	Provenance() Provenance
}

type remoteSource struct {
	client inference.Client
}

func (s remoteSource) Propose(ctx context.Context, cs *git.ChangeSet) (string, error) {
	return s.client.Complete(ctx, cs.Diff, cs.Files)
}

func (s remoteSource) Provenance() Provenance { return ProvenanceAI }

type localSource struct{}

func (localSource) Propose(_ context.Context, cs *git.ChangeSet) (string, error) {
	return FallbackMessage(cs.Files), nil
}

func (localSource) Provenance() Provenance { return ProvenanceFallback }

// Generator turns a captured change set into a commit proposal.
type Generator struct {
	client inference.Client
}

// NewGenerator builds a Generator. A nil client disables the remote branch.
func NewGenerator(client inference.Client) *Generator {
	return &Generator{client: client}
}

// Generate produces a proposal and never fails: any inference error or
// format-validation failure silently degrades to the deterministic
// fallback, so the pipeline always has a valid message to present.
func (g *Generator) Generate(rc *buddy_io.RuntimeContext, cs *git.ChangeSet) *Proposal {
	logger := otelzap.Ctx(rc.Ctx)

	src := g.pick(rc)

	text, err := src.Propose(rc.Ctx, cs)
	if err != nil {
		logger.Debug("Remote proposal failed, falling back", zap.Error(err))
		return g.fallback(cs)
	}

	text = Normalize(text)
	if !ValidateConventionalFormat(text) {
		if src.Provenance() == ProvenanceAI {
			logger.Debug("AI response failed format validation, falling back",
				zap.String("response", text))
			return g.fallback(cs)
		}
		// The local templates always validate; reaching here is a bug.
		logger.Warn("Fallback message failed validation", zap.String("message", text))
	}

	return &Proposal{
		Message:    text,
		Provenance: src.Provenance(),
		Type:       g.resolveType(cs, text, src.Provenance()),
	}
}

// pick evaluates the availability predicate once and selects a branch.
func (g *Generator) pick(rc *buddy_io.RuntimeContext) source {
	if g.client != nil && g.client.Available(rc.Ctx) {
		return remoteSource{client: g.client}
	}
	otelzap.Ctx(rc.Ctx).Debug("Inference unavailable, using local source")
	return localSource{}
}

func (g *Generator) fallback(cs *git.ChangeSet) *Proposal {
	text := FallbackMessage(cs.Files)
	return &Proposal{
		Message:    text,
		Provenance: ProvenanceFallback,
		Type:       g.resolveType(cs, text, ProvenanceFallback),
	}
}

// resolveType applies the classification heuristic, deferring to the AI's
// own prefix when the heuristic has no signal, and to chore on the
// fallback path.
func (g *Generator) resolveType(cs *git.ChangeSet, text string, prov Provenance) CommitType {
	if t := Classify(cs.Diff, cs.Files); t != TypeUnclassified {
		return t
	}
	if prov == ProvenanceAI {
		if t := TypeOf(text); t != TypeUnclassified {
			return t
		}
	}
	return TypeChore
}
