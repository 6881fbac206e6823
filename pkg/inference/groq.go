// pkg/inference/groq.go

package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/config"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/httpclient"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// GroqClient speaks the OpenAI-compatible chat-completions protocol. Any
// provider exposing the same endpoint shape works via the endpoint setting.
type GroqClient struct {
	cfg   *config.Config
	httpc *http.Client
}

// NewGroqClient builds a client from the invocation configuration.
func NewGroqClient(cfg *config.Config) *GroqClient {
	return &GroqClient{
		cfg:   cfg,
		httpc: httpclient.DefaultClient(),
	}
}

// Available reports whether a credential is configured and the endpoint
// answers within the configured timeout.
func (c *GroqClient) Available(ctx context.Context) bool {
	logger := otelzap.Ctx(ctx)

	if !c.cfg.HasCredential() {
		logger.Debug("No API credential configured")
		return false
	}

	rctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(rctx, http.MethodGet, c.cfg.Endpoint+"/models", nil)
	if err != nil {
		return false
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		logger.Debug("Inference API unreachable", zap.Error(err))
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Debug("Inference API reachability check failed",
			zap.Int("status", resp.StatusCode))
		return false
	}
	return true
}

// Complete requests a short completion for the staged diff and returns the
// trimmed, single-line response text.
func (c *GroqClient) Complete(ctx context.Context, diff string, files []string) (string, error) {
	logger := otelzap.Ctx(ctx)

	payload := BuildPayload(
		c.cfg.Model,
		BuildUserPrompt(diff, files, c.cfg.MaxDiffBytes),
		c.cfg.MaxTokens,
		c.cfg.Temperature,
	)

	body, err := json.Marshal(payload)
	if err != nil {
		return "", cerr.Wrap(err, "failed to encode completion request")
	}

	rctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(rctx, http.MethodPost,
		c.cfg.Endpoint+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", cerr.Wrap(err, "failed to build completion request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", cerr.Wrap(err, "completion request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", cerr.Newf("completion request returned HTTP %d", resp.StatusCode)
	}

	text, err := ExtractResponseText(resp)
	if err != nil {
		return "", err
	}

	logger.Debug("Completion received",
		zap.String("model", c.cfg.Model),
		zap.Int("length", len(text)))
	return text, nil
}

// ExtractResponseText decodes a chat-completions body and returns the first
// choice collapsed onto one line.
func ExtractResponseText(resp *http.Response) (string, error) {
	var data struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", cerr.Wrap(err, "malformed completion response")
	}
	if len(data.Choices) == 0 {
		return "", cerr.New("completion response has no choices")
	}
	return strings.TrimSpace(collapseWhitespace(data.Choices[0].Message.Content)), nil
}
