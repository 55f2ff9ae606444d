package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/act3-ai/gitconnect/pkg/protocol/git"
	"github.com/act3-ai/gitconnect/pkg/protocol/git/comms"
	"github.com/act3-ai/gitconnect/pkg/transport"
)

// Services Git may ask to connect to.
var Services = []string{
	"git-upload-pack",
	"git-receive-pack",
	"git-upload-archive",
}

// DialFunc opens a connection to service on the remote repository.
type DialFunc func(ctx context.Context, service string) (*transport.Connection, error)

// HandleConnect executes the connect command, returning the connection to
// the requested service once Git has been told it is established. The
// caller owns the returned connection.
func HandleConnect(ctx context.Context, comm comms.Communicator, dial DialFunc) (*transport.Connection, error) {
	req, err := comm.ParseConnectRequest()
	if err != nil {
		return nil, fmt.Errorf("parsing connect request: %w", err)
	}

	if !slices.Contains(Services, req.Service) {
		return nil, fmt.Errorf("%w: service %s", git.ErrUnsupportedRequest, req.Service)
	}

	slog.DebugContext(ctx, "connecting to service", slog.String("service", req.Service))
	conn, err := dial(ctx, req.Service)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", req.Service, err)
	}

	if err := comm.WriteConnectResponse(); err != nil {
		_, _ = conn.Finish()
		return nil, fmt.Errorf("writing connect response: %w", err)
	}

	return conn, nil
}
