// pkg/present/presenter.go

// Package present renders commit proposals and collects the user's
// three-way decision. It is the only package that writes to the terminal.
package present

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/buddy_io"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/message"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Presenter writes proposals to out and reads decisions from in. Prompts go
// to promptOut so stdout stays clean when output is piped.
type Presenter struct {
	in        *bufio.Reader
	out       io.Writer
	promptOut io.Writer
	simple    bool
	styles    styles
}

// New builds a Presenter on the process terminal. Color degrades to plain
// text when stdout is not a TTY.
func New(simple bool) *Presenter {
	color := term.IsTerminal(int(os.Stdout.Fd()))
	return NewWithStreams(os.Stdin, os.Stdout, os.Stderr, simple, color)
}

// NewWithStreams builds a Presenter over explicit streams so tests can
// script input without a real terminal.
func NewWithStreams(in io.Reader, out, promptOut io.Writer, simple, color bool) *Presenter {
	return &Presenter{
		in:        bufio.NewReader(in),
		out:       out,
		promptOut: promptOut,
		simple:    simple,
		styles:    newStyles(color),
	}
}

// Show renders the proposal: a single summary line in simple mode, or the
// message plus provenance, type, branch and the per-file list otherwise.
func (p *Presenter) Show(rc *buddy_io.RuntimeContext, proposal *message.Proposal, branch string, files []string) {
	if p.simple {
		fmt.Fprintln(p.out, p.styles.message.Render(proposal.Message))
		return
	}

	fmt.Fprintln(p.out, p.styles.header.Render("Proposed commit message:"))
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "  "+p.styles.message.Render(proposal.Message))
	fmt.Fprintln(p.out)

	meta := fmt.Sprintf("source: %s | type: %s", proposal.Provenance, proposal.Type)
	if branch != "" {
		meta += " | branch: " + branch
	}
	fmt.Fprintln(p.out, p.styles.meta.Render(meta))

	if len(files) > 0 {
		fmt.Fprintln(p.out, p.styles.meta.Render(fmt.Sprintf("staged files (%d):", len(files))))
		for _, f := range files {
			fmt.Fprintln(p.out, "  - "+p.styles.file.Render(f))
		}
	}
	fmt.Fprintln(p.out)
}

// Decide blocks on the three-way prompt. On edit it prompts for replacement
// text and returns it verbatim; user intent is authoritative, so edited
// text is not re-validated. Unrecognized input re-asks.
func (p *Presenter) Decide(rc *buddy_io.RuntimeContext) (interaction.Decision, string, error) {
	logger := otelzap.Ctx(rc.Ctx)

	for {
		input, err := interaction.ReadLine(rc.Ctx, p.in, p.promptOut, "Use this message? [y]es / [n]o / [e]dit")
		if err != nil {
			return interaction.DecisionCancel, "", err
		}

		decision := interaction.ParseDecision(input)
		logger.Debug("Decision input", zap.String("input", input), zap.String("decision", decision.String()))

		switch decision {
		case interaction.DecisionConfirm, interaction.DecisionCancel:
			return decision, "", nil
		case interaction.DecisionEdit:
			edited, err := interaction.ReadLine(rc.Ctx, p.in, p.promptOut, "Enter commit message")
			if err != nil {
				return interaction.DecisionCancel, "", err
			}
			return interaction.DecisionEdit, edited, nil
		default:
			fmt.Fprintln(p.promptOut, "Please answer y, n or e.")
		}
	}
}

// ReportSuccess prints the created commit hash.
func (p *Presenter) ReportSuccess(hash string) {
	if hash == "" {
		fmt.Fprintln(p.out, p.styles.success.Render("Commit created."))
		return
	}
	fmt.Fprintln(p.out, p.styles.success.Render("Commit created: "+hash))
}

// ReportError prints a failure with its remediation text.
func (p *Presenter) ReportError(text string) {
	fmt.Fprintln(p.out, p.styles.failure.Render("Error: "+text))
}

// ReportCancelled prints the cancellation notice.
func (p *Presenter) ReportCancelled() {
	fmt.Fprintln(p.out, p.styles.notice.Render("Commit cancelled. Nothing was committed."))
}

// ReportNothingStaged prints the graceful no-op notice.
func (p *Presenter) ReportNothingStaged() {
	fmt.Fprintln(p.out, p.styles.notice.Render("No staged changes. Stage files with `git add` first."))
}
