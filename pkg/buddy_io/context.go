// pkg/buddy_io/context.go

package buddy_io

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/buddy_err"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/telemetry"
	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RuntimeContext carries the per-invocation plumbing every operation needs:
// context, logger, root span and timing.
type RuntimeContext struct {
	Ctx       context.Context
	Log       *zap.Logger
	Span      trace.Span
	Timestamp time.Time
	Command   string
}

// NewContext sets up tracing and logging for one command invocation.
func NewContext(ctx context.Context, cmdName string) *RuntimeContext {
	ctx, span := telemetry.Start(ctx, cmdName)
	traceID := span.SpanContext().TraceID().String()

	logger := zap.L().With(
		zap.String("command", cmdName),
		zap.String("trace_id", traceID),
	).Named(cmdName)

	return &RuntimeContext{
		Ctx:       ctx,
		Log:       logger,
		Span:      span,
		Timestamp: time.Now(),
		Command:   cmdName,
	}
}

// HandlePanic recovers panics, logs them, and converts to an error.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		*errPtr = cerr.AssertionFailedf("panic: %v", r)
		rc.Log.Error("panic recovered", zap.Any("panic", r))
	}
}

// End logs the outcome and records the final command span.
func (rc *RuntimeContext) End(errPtr *error) {
	defer rc.Span.End()

	duration := time.Since(rc.Timestamp)
	success := *errPtr == nil

	if success {
		rc.Log.Debug("Command completed", zap.Duration("duration", duration))
	} else if buddy_err.IsExpectedUserError(*errPtr) {
		rc.Log.Debug("Command ended early", zap.Duration("duration", duration), zap.Error(*errPtr))
	} else {
		rc.Log.Error("Command failed", zap.Duration("duration", duration), zap.Error(*errPtr))
	}

	rc.Span.SetAttributes(
		attribute.Bool("success", success),
		attribute.Int64("duration_ms", duration.Milliseconds()),
		attribute.String("os", runtime.GOOS),
		attribute.String("args", telemetry.TruncateOrHashArgs(os.Args[1:])),
		attribute.String("error_type", classifyError(*errPtr)),
	)
}

func classifyError(err error) string {
	if err == nil {
		return ""
	}
	if buddy_err.IsExpectedUserError(err) {
		return "user"
	}
	return "system"
}
