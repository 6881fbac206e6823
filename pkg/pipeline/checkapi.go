// pkg/pipeline/checkapi.go

package pipeline

import (
	"fmt"
	"io"

	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/buddy_io"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/config"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/inference"
)

// CheckAPI prints a connectivity report for the inference endpoint. It is
// diagnostic only and never fails the process.
func CheckAPI(rc *buddy_io.RuntimeContext, cfg *config.Config, client inference.Client, out io.Writer) error {
	fmt.Fprintf(out, "endpoint:   %s\n", cfg.Endpoint)
	fmt.Fprintf(out, "model:      %s\n", cfg.Model)

	if !cfg.HasCredential() {
		fmt.Fprintln(out, "credential: not set")
		fmt.Fprintln(out, "Set GROQ_API_KEY to enable AI-generated messages; the local fallback works without it.")
		return nil
	}
	fmt.Fprintln(out, "credential: set")

	if client.Available(rc.Ctx) {
		fmt.Fprintln(out, "api:        reachable")
	} else {
		fmt.Fprintln(out, "api:        unreachable (commit messages will use the local fallback)")
	}
	return nil
}
