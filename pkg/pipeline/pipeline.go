// pkg/pipeline/pipeline.go

// Package pipeline wires inspector, generator and presenter into the
// strictly sequential commit flow: capture staged changes, generate a
// proposal, collect the user's decision, then commit. The commit call is
// the only mutating step and always runs last.
package pipeline

import (
	"errors"

	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/buddy_err"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/buddy_io"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/git"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/message"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Inspector is the repository surface the pipeline needs.
type Inspector interface {
	EnsureGit(rc *buddy_io.RuntimeContext) error
	IsRepository(rc *buddy_io.RuntimeContext) bool
	StagedChanges(rc *buddy_io.RuntimeContext) (*git.ChangeSet, error)
	Status(rc *buddy_io.RuntimeContext) (*git.Status, error)
	Commit(rc *buddy_io.RuntimeContext, message string) (*git.CommitResult, error)
}

// Generator produces a proposal from a change set and never fails.
type Generator interface {
	Generate(rc *buddy_io.RuntimeContext, cs *git.ChangeSet) *message.Proposal
}

// Presenter is the terminal surface the pipeline needs.
type Presenter interface {
	Show(rc *buddy_io.RuntimeContext, proposal *message.Proposal, branch string, files []string)
	Decide(rc *buddy_io.RuntimeContext) (interaction.Decision, string, error)
	ReportSuccess(hash string)
	ReportError(text string)
	ReportCancelled()
	ReportNothingStaged()
}

// Deps bundles the pipeline collaborators.
type Deps struct {
	Inspector Inspector
	Generator Generator
	Presenter Presenter
}

// Run executes one commit flow. Cancellation guarantees zero repository
// mutation; a proposal is only committed after explicit confirmation or
// with the user's edited text, passed through exactly as entered.
func Run(rc *buddy_io.RuntimeContext, d Deps) error {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS - repository preconditions
	if err := d.Inspector.EnsureGit(rc); err != nil {
		d.Presenter.ReportError(err.Error())
		return err
	}

	if !d.Inspector.IsRepository(rc) {
		err := buddy_err.NewGitError("not a git repository", nil,
			"Run commit-buddy from inside a Git work tree")
		d.Presenter.ReportError(err.Error())
		return err
	}

	cs, err := d.Inspector.StagedChanges(rc)
	if err != nil {
		return err
	}

	if cs.Empty() {
		logger.Debug("Nothing staged, exiting gracefully")
		d.Presenter.ReportNothingStaged()
		return nil
	}

	// INTERVENE - generate and present
	proposal := d.Generator.Generate(rc, cs)
	logger.Debug("Proposal generated",
		zap.String("provenance", string(proposal.Provenance)),
		zap.String("type", proposal.Type.String()))

	branch := ""
	if status, err := d.Inspector.Status(rc); err == nil {
		branch = status.Branch
	} else {
		logger.Debug("Could not read repository status", zap.Error(err))
	}

	d.Presenter.Show(rc, proposal, branch, cs.Files)

	decision, edited, err := d.Presenter.Decide(rc)
	if err != nil {
		d.Presenter.ReportCancelled()
		return err
	}

	finalMessage := proposal.Message
	switch decision {
	case interaction.DecisionCancel:
		d.Presenter.ReportCancelled()
		return nil
	case interaction.DecisionEdit:
		finalMessage = edited
	case interaction.DecisionConfirm:
		// proposal passes through unmodified
	}

	// EVALUATE - commit with the final message
	result, err := d.Inspector.Commit(rc, finalMessage)
	if err != nil {
		d.Presenter.ReportError(err.Error())
		return err
	}

	d.Presenter.ReportSuccess(result.Hash)
	return nil
}

// IsReported tells Execute whether an error was already shown to the user
// by the presenter.
func IsReported(err error) bool {
	var classified *buddy_err.ClassifiedError
	return errors.As(err, &classified)
}
