// Package logutil provides logging convenience functions.
package logutil

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/act3-ai/go-common/pkg/logger"
)

var connectionNumber atomic.Int64

// traceReadWriter logs the traffic of a connection to the context logger.
// The output can be processed by jq to format it nicely.
type traceReadWriter struct {
	rw  io.ReadWriter
	ctx context.Context //nolint:containedctx
	log *slog.Logger
}

// NewTraceReadWriter wraps rw so everything read from and written to it is
// logged at verbosity 8, like GIT_TRACE_PACKET. If that verbosity is not
// enabled rw is returned as is.
func NewTraceReadWriter(ctx context.Context, rw io.ReadWriter, name string) io.ReadWriter {
	log := logger.V(logger.FromContext(ctx).WithGroup("packet").With("conn", name, "connID", connectionNumber.Add(1)), 8)
	if !log.Enabled(ctx, slog.LevelInfo) {
		return rw
	}

	return &traceReadWriter{
		rw:  rw,
		ctx: ctx,
		log: log,
	}
}

func (t *traceReadWriter) Read(p []byte) (int, error) {
	n, err := t.rw.Read(p)
	if n > 0 {
		t.log.InfoContext(t.ctx, "<", slog.String("data", string(p[:n])))
	}
	return n, err //nolint:wrapcheck
}

func (t *traceReadWriter) Write(p []byte) (int, error) {
	n, err := t.rw.Write(p)
	if n > 0 {
		t.log.InfoContext(t.ctx, ">", slog.String("data", string(p[:n])))
	}
	return n, err //nolint:wrapcheck
}
