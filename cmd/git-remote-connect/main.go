// Command git-remote-connect is a Git remote helper for "connect::" and
// "connect://" remotes.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/act3-ai/gitconnect/cmd/git-remote-connect/cli"
	internalcli "github.com/act3-ai/gitconnect/internal/cli"
)

// version is set at build time.
var version = "dev"

func main() {
	os.Exit(internalcli.Main(func(level *slog.LevelVar) *cobra.Command {
		return cli.NewRemoteHelper(version, level)
	}, os.Stderr, slog.LevelWarn))
}
