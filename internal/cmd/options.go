package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/act3-ai/gitconnect/pkg/protocol/git"
	"github.com/act3-ai/gitconnect/pkg/protocol/git/comms"
)

// HandleOption executes an option command. The verbosity option adjusts
// level, which may be nil if logging is not adjustable.
func HandleOption(ctx context.Context, comm comms.Communicator, level *slog.LevelVar) error {
	req, err := comm.ParseOptionRequest()
	if err != nil {
		return fmt.Errorf("parsing option request: %w", err)
	}
	log := slog.With(slog.String("command", req.String()))

	// https://git-scm.com/docs/gitremote-helpers#Documentation/gitremote-helpers.txt-optionnamevalue
	err = handleOption(ctx, req, level)
	switch {
	case errors.Is(err, git.ErrUnsupportedRequest):
		log.DebugContext(ctx, "received unsupported option command")
		if err := comm.WriteOptionResponse(false); err != nil {
			return fmt.Errorf("writing option response: %w", err)
		}
	case err != nil:
		log.ErrorContext(ctx, "failed to handle option command")
		return fmt.Errorf("handling option: %w", err)
	default:
		log.DebugContext(ctx, "successfully handled option command")
		if err := comm.WriteOptionResponse(true); err != nil {
			return fmt.Errorf("writing option response: %w", err)
		}
	}

	return nil
}

func handleOption(ctx context.Context, req *git.OptionRequest, level *slog.LevelVar) error {
	slog.DebugContext(ctx, "handling option", slog.String("command", req.String()))

	switch req.Opt {
	case git.Verbosity:
		lvl, err := VerbosityLevel(req.Value)
		if err != nil {
			return err
		}
		if level != nil {
			level.Set(lvl)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", git.ErrUnsupportedRequest, req.String())
	}
}

// VerbosityLevel converts a Git verbosity value to a log level.
func VerbosityLevel(value string) (slog.Level, error) {
	val, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("converting verbosity value to int: %w", err)
	}
	return LevelFromCount(val), nil
}

// LevelFromCount maps a verbosity count to a log level.
func LevelFromCount(count int) slog.Level {
	switch {
	case count <= 0:
		return slog.LevelError
	case count == 1:
		return slog.LevelWarn
	case count == 2:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
