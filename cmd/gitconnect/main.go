// Command gitconnect lists references of and resolves Git repository locators.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/act3-ai/gitconnect/cmd/gitconnect/cli"
	internalcli "github.com/act3-ai/gitconnect/internal/cli"
)

// version is set at build time.
var version = "dev"

func main() {
	os.Exit(internalcli.Main(func(level *slog.LevelVar) *cobra.Command {
		return cli.NewCLI(version, level)
	}, os.Stderr, slog.LevelError))
}
