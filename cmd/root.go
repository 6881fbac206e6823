/* cmd/root.go */

package cmd

import (
	"fmt"
	"os"

	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/buddy_err"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/buddy_io"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/config"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/git"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/inference"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/message"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/pipeline"
	"github.com/CodeMonkeyCybersecurity/commit-buddy/pkg/present"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd is the base command for commit-buddy.
var RootCmd = &cobra.Command{
	Use:   "commit-buddy",
	Short: "AI-assisted Conventional Commits for staged changes",
	Long: `commit-buddy inspects your staged Git changes, drafts a Conventional
Commits message with a hosted completion API, and falls back to a
deterministic local message when the API is unavailable. Nothing is
committed until you confirm or edit the proposal.

Examples:
  commit-buddy --from-diff             # propose a message for staged changes
  commit-buddy --from-diff --simple    # single-line output, no detail block
  commit-buddy --check-api             # report inference API connectivity`,
	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: cli.Wrap(func(rc *buddy_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		buddy_err.SetDebugMode(debug)

		v := viper.New()
		cli.SetViperEnvPrefix(v, "COMMIT_BUDDY")
		config.SetDefaults(v)
		if err := cli.BindFlagsToViper(cmd, v); err != nil {
			return err
		}
		cfg := config.Load(v)

		client := inference.NewGroqClient(cfg)

		if checkAPI, _ := cmd.Flags().GetBool("check-api"); checkAPI {
			return pipeline.CheckAPI(rc, cfg, client, os.Stdout)
		}

		fromDiff, _ := cmd.Flags().GetBool("from-diff")
		if !fromDiff {
			return cmd.Help()
		}

		return pipeline.Run(rc, pipeline.Deps{
			Inspector: git.NewInspector(),
			Generator: message.NewGenerator(client),
			Presenter: present.New(cfg.Simple),
		})
	}),
}

func init() {
	RootCmd.Flags().Bool("from-diff", false, "Generate a commit message from currently staged changes")
	RootCmd.Flags().Bool("simple", false, "Print a single summary line instead of the detailed view")
	RootCmd.Flags().Bool("check-api", false, "Report inference API connectivity and exit")
	RootCmd.Flags().Bool("debug", false, "Verbose error output")

	RootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and exits with the classified code.
// Classified errors were already presented; everything else prints here.
func Execute() {
	err := RootCmd.Execute()
	if err != nil && !pipeline.IsReported(err) && !buddy_err.IsExpectedUserError(err) {
		fmt.Fprintf(os.Stderr, "Error: %s\n", buddy_err.FormatError(err))
	}
	logger.Sync()
	os.Exit(buddy_err.GetExitCode(err))
}
