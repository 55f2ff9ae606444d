package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/act3-ai/gitconnect/internal/actions"
	"github.com/act3-ai/gitconnect/internal/cmd"
)

// rootOptions are the flags shared by every gitconnect subcommand.
type rootOptions struct {
	configs   []string
	verbosity int
}

// NewCLI creates the base gitconnect command. The -v flag adjusts level.
func NewCLI(version string, level *slog.LevelVar) *cobra.Command {
	opts := &rootOptions{}

	// cmd represents the base command when called without any subcommands
	root := &cobra.Command{
		Use:           "gitconnect",
		Short:         "Connect to Git repositories over local, ssh and git:// transports.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if level != nil {
				level.Set(cmd.LevelFromCount(opts.verbosity))
			}
		},
	}

	root.PersistentFlags().StringSliceVar(&opts.configs, "config", nil, "Configuration file to load before the default search path")
	root.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity, may be repeated")

	root.AddCommand(
		newLsRemoteCmd(opts),
		newCompareCmd(opts),
		newResolveCmd(),
	)

	return root
}

func newLsRemoteCmd(opts *rootOptions) *cobra.Command {
	var flags actions.LsRemote

	c := &cobra.Command{
		Use:   "ls-remote REPOSITORY...",
		Short: "List references in remote repositories.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			action := actions.NewLsRemote(c.OutOrStdout(), c.ErrOrStderr(), configFiles(opts.configs))
			action.Heads = flags.Heads
			action.Tags = flags.Tags
			action.Refs = flags.Refs
			action.Symref = flags.Symref
			action.Capabilities = flags.Capabilities
			action.ExitCode = flags.ExitCode
			action.Verbose = opts.verbosity >= 2
			if flags.UploadPack != "" {
				action.UploadPack = flags.UploadPack
			}
			return action.Run(c.Context(), args...)
		},
	}

	// -h means --heads, as for git ls-remote
	c.Flags().Bool("help", false, "Help for ls-remote")
	c.Flags().BoolVarP(&flags.Heads, "heads", "h", false, "Limit to refs/heads")
	c.Flags().BoolVarP(&flags.Tags, "tags", "t", false, "Limit to refs/tags")
	c.Flags().BoolVar(&flags.Refs, "refs", false, "Do not show pseudo-refs like HEAD")
	c.Flags().BoolVar(&flags.Symref, "symref", false, "Show the target of symbolic references")
	c.Flags().BoolVar(&flags.Capabilities, "capabilities", false, "Show the capabilities advertised by the remote")
	c.Flags().BoolVar(&flags.ExitCode, "exit-code", false, "Exit with status 2 when no matching refs are found")
	c.Flags().StringVar(&flags.UploadPack, "upload-pack", actions.DefaultUploadPack, "Path of git-upload-pack on the remote host")

	return c
}

func newCompareCmd(opts *rootOptions) *cobra.Command {
	var gitDir, tracking, uploadPack string

	c := &cobra.Command{
		Use:   "compare REPOSITORY",
		Short: "Compare the branches and tags of a remote repository with a local one.",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			action := actions.NewCompare(c.OutOrStdout(), c.ErrOrStderr(), gitDir, configFiles(opts.configs))
			action.Tracking = tracking
			action.UploadPack = uploadPack
			return action.Run(c.Context(), args[0])
		},
	}

	c.Flags().StringVar(&gitDir, "git-dir", ".", "Local repository, or a directory inside its worktree")
	c.Flags().StringVar(&tracking, "tracking", "", "Compare remote branches to the remote-tracking branches of this remote")
	c.Flags().StringVar(&uploadPack, "upload-pack", actions.DefaultUploadPack, "Path of git-upload-pack on the remote host")

	return c
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve LOCATOR...",
		Short: "Show how repository locators are reached.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return actions.NewResolve(c.OutOrStdout()).Run(c.Context(), args...)
		},
	}
}
