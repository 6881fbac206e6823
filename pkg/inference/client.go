// pkg/inference/client.go

// Package inference talks to a hosted chat-completions API to draft commit
// messages. Every failure here is recoverable: callers fall back to the
// local heuristic instead of surfacing an error to the user.
package inference

import "context"

// Client is the remote completion contract. Available is evaluated once per
// run; Complete returns the trimmed completion text.
type Client interface {
	Available(ctx context.Context) bool
	Complete(ctx context.Context, diff string, files []string) (string, error)
}
