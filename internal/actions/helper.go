package actions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/act3-ai/gitconnect/internal/cmd"
	"github.com/act3-ai/gitconnect/internal/logutil"
	"github.com/act3-ai/gitconnect/internal/progress"
	"github.com/act3-ai/gitconnect/pkg/apis/gitconnect.act3-ai.io/v1alpha1"
	"github.com/act3-ai/gitconnect/pkg/protocol/git"
	"github.com/act3-ai/gitconnect/pkg/protocol/git/comms"
	"github.com/act3-ai/gitconnect/pkg/transport"
)

// urlPrefix is the scheme Git keeps on the URL for "connect://" remotes.
const urlPrefix = "connect://"

// progressInterval is how often transfer progress is logged.
const progressInterval = time.Second

// Helper is the git-remote-connect remote helper. It answers Git's
// capabilities and options, then bridges Git to the service named by the
// connect request.
type Helper struct {
	Base

	comm   comms.Communicator
	out    io.Writer
	stderr io.Writer
	level  *slog.LevelVar

	// remote name, may have the same value as address
	name    string
	address string
}

// NewHelper creates a Helper talking to Git over in and out. level is raised
// or lowered by "option verbosity" requests.
func NewHelper(in io.Reader, out, stderr io.Writer, shortname, address string, level *slog.LevelVar, cfgFiles []string) *Helper {
	return &Helper{
		Base:    NewBase(cfgFiles),
		comm:    comms.NewCommunicator(in, out),
		out:     out,
		stderr:  stderr,
		level:   level,
		name:    shortname,
		address: strings.TrimPrefix(address, urlPrefix),
	}
}

// Run serves Git's requests until the input ends or a connection has been
// bridged. A non-zero exit status of the service is returned as an
// [*ExitError].
func (action *Helper) Run(ctx context.Context) error {
	cfg, err := action.GetConfig(ctx)
	if err != nil {
		return fmt.Errorf("getting configuration: %w", err)
	}

	for {
		conn, done, err := action.handleCmd(ctx, cfg)
		switch {
		case err != nil:
			return err
		case conn != nil:
			return action.bridge(ctx, conn)
		case done:
			return nil
		}
	}
}

// handleCmd serves one request. It returns the connection once a connect
// request succeeds, or done once Git has nothing more to send.
func (action *Helper) handleCmd(ctx context.Context, cfg *v1alpha1.Configuration) (*transport.Connection, bool, error) {
	c, err := action.comm.LookAhead()
	switch {
	case errors.Is(err, git.ErrEndOfInput):
		return nil, true, nil
	case errors.Is(err, git.ErrEmptyRequest):
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("command look ahead: %w", err)
	}
	slog.DebugContext(ctx, "read git request", slog.String("request", string(c)))

	switch c {
	case git.Capabilities:
		if err := cmd.HandleCapabilities(ctx, action.comm); err != nil {
			return nil, false, fmt.Errorf("handling capabilities request: %w", err)
		}
	case git.Options:
		if err := cmd.HandleOption(ctx, action.comm, action.level); err != nil {
			return nil, false, fmt.Errorf("handling option request: %w", err)
		}
	case git.Connect:
		conn, err := cmd.HandleConnect(ctx, action.comm, action.dialer(cfg))
		if err != nil {
			return nil, false, fmt.Errorf("handling connect request: %w", err)
		}
		return conn, false, nil
	default:
		return nil, false, fmt.Errorf("%w: %s", git.ErrUnsupportedRequest, c)
	}

	return nil, false, nil
}

// dialer connects to the helper's address.
func (action *Helper) dialer(cfg *v1alpha1.Configuration) cmd.DialFunc {
	return func(ctx context.Context, service string) (*transport.Connection, error) {
		slog.InfoContext(ctx, "connecting to remote",
			slog.String("remote", action.name),
			slog.String("address", logutil.RedactLocator(action.address)),
			slog.String("service", service))

		conn, err := transport.Connect(ctx, action.address, service, transportOptions(ctx, cfg, action.address, action.stderr))
		if err != nil {
			return nil, fmt.Errorf("connecting to %s: %w", logutil.RedactLocator(action.address), err)
		}
		return conn, nil
	}
}

// bridge copies Git's remaining input to conn and everything conn sends
// back to Git. Once conn stops sending, Git's output is closed and its
// remaining input is abandoned. It then finishes conn and reports the
// service's exit status.
func (action *Helper) bridge(ctx context.Context, conn *transport.Connection) error {
	received := progress.NewEvalReader(conn)
	ticks := make(chan progress.Progress)
	tickCtx, stopTicks := context.WithCancel(ctx)
	defer stopTicks()
	progress.NewTicker(tickCtx, received, progressInterval, ticks)

	// reads of Git's input cannot be interrupted, pump them through a pipe
	// the send side can give up on
	input, pump := io.Pipe()
	go func() {
		_, err := io.Copy(pump, action.comm.Remaining())
		pump.CloseWithError(err)
	}()

	var sendErr, recvErr error
	var wg conc.WaitGroup
	wg.Go(func() {
		for p := range ticks {
			slog.DebugContext(ctx, "received from remote", slog.Int("total", p.Total), slog.Int("delta", p.Delta))
		}
	})
	wg.Go(func() {
		n, err := io.Copy(conn, input)
		if err != nil {
			sendErr = fmt.Errorf("sending to remote: %w", err)
		}
		if err := conn.CloseWrite(); err != nil {
			sendErr = errors.Join(sendErr, err)
		}
		slog.DebugContext(ctx, "stopped sending to remote", slog.Int64("bytes", n))
	})
	wg.Go(func() {
		defer stopTicks()
		defer input.Close()
		n, err := io.Copy(action.out, received)
		if err != nil {
			recvErr = fmt.Errorf("receiving from remote: %w", err)
		}
		if c, ok := action.out.(io.Closer); ok {
			if err := c.Close(); err != nil {
				recvErr = errors.Join(recvErr, err)
			}
		}
		slog.DebugContext(ctx, "remote closed its output", slog.Int64("bytes", n))
	})
	wg.Wait()

	code, err := conn.Finish()
	switch {
	case err != nil:
		return errors.Join(recvErr, err)
	case code != 0:
		// a service failing mid-transfer usually breaks the pipe as well
		slog.DebugContext(ctx, "service failed", slog.Int("status", code), slog.Any("sendError", sendErr), slog.Any("receiveError", recvErr))
		return exitStatus(code)
	case recvErr != nil:
		return recvErr
	case sendErr != nil:
		slog.DebugContext(ctx, "remote stopped reading early", slog.String("error", sendErr.Error()))
	}

	return nil
}
