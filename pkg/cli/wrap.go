// pkg/cli/wrap.go

package cli

import (
	"context"
	"time"

	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/buddy_err"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/buddy_io"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/telemetry"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// Wrap ensures panic recovery, telemetry and logging around a cobra RunE.
func Wrap(fn func(rc *buddy_io.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		rc := buddy_io.NewContext(context.Background(), cmd.Name())
		defer rc.End(&err)

		defer func() {
			telemetry.TrackCommand(rc.Ctx, cmd.Name(), err == nil,
				time.Since(rc.Timestamp).Milliseconds(),
				map[string]string{"args": telemetry.TruncateOrHashArgs(args)})
		}()

		defer rc.HandlePanic(&err)

		err = fn(rc, cmd, args)
		if err != nil && !buddy_err.IsExpectedUserError(err) {
			err = cerr.WithStack(err)
		}
		return err
	}
}
