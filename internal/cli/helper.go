package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/act3-ai/gitconnect/internal/actions"
)

// NewHelperCLI creates the base git-remote-connect command. Git adjusts
// level with "option verbosity".
func NewHelperCLI(version string, level *slog.LevelVar) *cobra.Command {
	return &cobra.Command{
		Use:           "git-remote-connect REPOSITORY [URL]",
		Short:         "A Git remote helper bridging Git to repositories reached over local, ssh and git:// transports.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// https://git-scm.com/docs/gitremote-helpers#_invocation
			name := args[0]
			address := name
			if len(args) > 1 {
				address = args[1]
			}

			action := actions.NewHelper(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), name, address, level, configFiles(nil))
			return action.Run(cmd.Context())
		},
	}
}
