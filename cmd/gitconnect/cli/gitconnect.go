// Package cli exports the gitconnect command.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/act3-ai/gitconnect/internal/cli"
)

// NewCLI creates the base gitconnect command.
func NewCLI(version string, level *slog.LevelVar) *cobra.Command {
	return cli.NewCLI(version, level)
}
