package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/act3-ai/gitconnect/internal/actions"
	"github.com/act3-ai/go-common/pkg/logger"
)

// Main runs the command returned by newCmd with a logger on stderr and
// returns the process exit status.
func Main(newCmd func(level *slog.LevelVar) *cobra.Command, stderr io.Writer, initial slog.Level) int {
	level := new(slog.LevelVar)
	level.Set(initial)

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(logger.NewContext(context.Background(), log), os.Interrupt)
	defer stop()

	err := newCmd(level).ExecuteContext(ctx)
	var exitErr *actions.ExitError
	switch {
	case errors.As(err, &exitErr):
		return exitErr.Code
	case err != nil:
		fmt.Fprintf(stderr, "fatal: %v\n", err)
		return 128
	default:
		return 0
	}
}
