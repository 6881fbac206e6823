// pkg/execute/execute.go

package execute

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/buddy_err"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/telemetry"
	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Options controls a single subprocess invocation.
type Options struct {
	Command string
	Args    []string
	Dir     string
	Capture bool
	Timeout time.Duration
	Retries int
	Delay   time.Duration
	Logger  *zap.Logger
}

const defaultTimeout = 30 * time.Second

// Run executes a command with structured logging and proper error handling.
// Stdout and stderr are captured together so subprocess error text reaches
// the caller verbatim; nothing is written to the parent's stdout.
func Run(ctx context.Context, opts Options) (string, error) {
	cmdStr := buildCommandString(opts.Command, opts.Args...)

	logger := opts.Logger
	if logger == nil {
		logger = zap.L()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	rctx, span := telemetry.Start(rctx, "execute.Run")
	defer span.End()
	span.SetAttributes(
		attribute.String("command", opts.Command),
		attribute.String("args", strings.Join(opts.Args, " ")),
	)

	logger.Debug("Starting execution", zap.String("command", cmdStr))

	attempts := max(1, opts.Retries)
	var output string
	var err error

	for i := 1; i <= attempts; i++ {
		cmd := exec.CommandContext(rctx, opts.Command, opts.Args...)
		if opts.Dir != "" {
			cmd.Dir = opts.Dir
		}

		var buf bytes.Buffer
		cmd.Stdout = &buf
		cmd.Stderr = &buf

		err = cmd.Run()
		output = buf.String()

		if err == nil {
			logger.Debug("Execution succeeded", zap.String("command", cmdStr))
			break
		}

		summary := buddy_err.ExtractSummary(ctx, output, 2)
		span.RecordError(err)
		logger.Debug("Execution failed",
			zap.Int("attempt", i),
			zap.String("command", cmdStr),
			zap.String("summary", summary),
			zap.Error(err),
		)

		if i < attempts {
			time.Sleep(opts.Delay)
		}
	}

	if err != nil {
		return output, cerr.Wrapf(err, "command %s failed", opts.Command)
	}

	if opts.Capture {
		return output, nil
	}
	return "", nil
}

// RunSimple executes a command with minimal options.
func RunSimple(ctx context.Context, cmd string, args ...string) error {
	_, err := Run(ctx, Options{
		Command: cmd,
		Args:    args,
	})
	return err
}

func buildCommandString(cmd string, args ...string) string {
	if len(args) == 0 {
		return cmd
	}
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		quoted = append(quoted, fmt.Sprintf("'%s'", arg))
	}
	return cmd + " " + strings.Join(quoted, " ")
}
