// pkg/telemetry/telemetry.go
package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var tracer trace.Tracer

// Init configures OpenTelemetry; call this early in main(). Telemetry is
// opt-in: without the marker file only a noop provider is installed.
func Init(service string) error {
	if !IsEnabled() {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		tracer = tp.Tracer(service)
		return nil
	}

	telemetryDir := filepath.Join(stateDir(), "telemetry")
	if err := os.MkdirAll(telemetryDir, 0700); err != nil {
		return cerr.Wrap(err, "failed to create telemetry directory")
	}

	// Spans are appended as JSONL so the file stays greppable.
	telemetryFile := filepath.Join(telemetryDir, "telemetry.jsonl")
	file, err := os.OpenFile(telemetryFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return cerr.Wrap(err, "failed to open telemetry file")
	}

	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(file),
		stdouttrace.WithoutTimestamps(),
	)
	if err != nil {
		_ = file.Close()
		return cerr.Wrap(err, "failed to create file exporter")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(
			sdkresource.NewWithAttributes(
				semconv.SchemaURL,
				attribute.String("service.name", service),
				attribute.String("host.name", hostname()),
			),
		),
	)

	otel.SetTracerProvider(tp)
	tracer = tp.Tracer(service)
	return nil
}

// Start a telemetry span with optional attributes.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("commit-buddy")
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// TrackCommand records a span for a completed command run.
func TrackCommand(ctx context.Context, name string, success bool, durationMs int64, tags map[string]string) {
	if !IsEnabled() {
		return
	}

	_, span := Start(ctx, name)
	defer span.End()

	attrs := []attribute.KeyValue{
		attribute.Bool("success", success),
		attribute.Int64("duration_ms", durationMs),
		attribute.String("user_id", AnonTelemetryID()),
	}
	for k, v := range tags {
		if k == "args" && len(v) > 256 {
			v = v[:256] + "..."
		}
		attrs = append(attrs, attribute.String(k, v))
	}
	span.SetAttributes(attrs...)
}

// IsEnabled reports whether the user opted in to local telemetry.
func IsEnabled() bool {
	_, err := os.Stat(filepath.Join(stateDir(), "telemetry_on"))
	return err == nil
}

// AnonTelemetryID returns a stable anonymous identifier, creating one on
// first use.
func AnonTelemetryID() string {
	path := filepath.Join(stateDir(), "telemetry_id")

	if data, err := os.ReadFile(path); err == nil {
		return strings.TrimSpace(string(data))
	}

	id := "anon-" + uuid.New().String()
	_ = os.MkdirAll(filepath.Dir(path), 0700)
	_ = os.WriteFile(path, []byte(id), 0600)
	return id
}

// TruncateOrHashArgs bounds the recorded argument string.
func TruncateOrHashArgs(args []string) string {
	full := strings.Join(args, " ")
	if len(full) > 256 {
		return full[:256] + "..."
	}
	return full
}

func stateDir() string {
	return filepath.Join(os.Getenv("HOME"), ".commit-buddy")
}

func hostname() string {
	if h, err := os.Hostname(); err == nil {
		return h
	}
	return "unknown"
}
