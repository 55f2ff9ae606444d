// Package cli exports the git-remote-connect remote helper command.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/act3-ai/gitconnect/internal/cli"
)

// NewRemoteHelper creates the base git-remote-connect command.
func NewRemoteHelper(version string, level *slog.LevelVar) *cobra.Command {
	return cli.NewHelperCLI(version, level)
}
