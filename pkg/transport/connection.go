package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"os/exec"
	"sync"

	"github.com/act3-ai/gitconnect/pkg/protocol/handshake"
)

// Connection is a live channel to a repository service. It is owned by the
// caller until [Connection.Finish] is called.
type Connection struct {
	r io.Reader
	w io.Writer

	// exactly one of cmd and conn is set, or neither for a connection that
	// needs no external process
	cmd   *exec.Cmd
	stdin io.WriteCloser
	conn  net.Conn

	adv *handshake.Advertisement

	finish sync.Once
	code   int
	err    error
}

// NewSocketConnection wraps an established network connection.
func NewSocketConnection(conn net.Conn) *Connection {
	return &Connection{
		r:    conn,
		w:    conn,
		conn: conn,
	}
}

// NewProcessConnection starts cmd with its standard input and output as the
// connection channel.
func NewProcessConnection(cmd *exec.Cmd) (*Connection, error) {
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSpawn, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSpawn, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: running %s: %w", ErrSpawn, cmd.Path, err)
	}

	return &Connection{
		r:     stdout,
		w:     stdin,
		cmd:   cmd,
		stdin: stdin,
	}, nil
}

// noProcess returns a connection without any channel.
func noProcess() *Connection {
	return &Connection{
		r: eofReader{},
		w: io.Discard,
	}
}

// Read reads from the service.
func (c *Connection) Read(p []byte) (int, error) {
	return c.r.Read(p) //nolint:wrapcheck
}

// Write writes to the service.
func (c *Connection) Write(p []byte) (int, error) {
	return c.w.Write(p) //nolint:wrapcheck
}

// IsSocket returns true if no external process is attached to the
// connection.
func (c *Connection) IsSocket() bool {
	return c == nil || c.cmd == nil
}

// Pid returns the process id of the attached process, or 0.
func (c *Connection) Pid() int {
	if c.IsSocket() || c.cmd.Process == nil {
		return 0
	}
	return c.cmd.Process.Pid
}

// wrap replaces the connection streams with the result of fn.
func (c *Connection) wrap(fn func(io.ReadWriter) io.ReadWriter) {
	if fn == nil {
		return
	}
	rw := fn(struct {
		io.Reader
		io.Writer
	}{c.r, c.w})
	c.r, c.w = rw, rw
}

// Handshake reads the reference advertisement sent by the service when the
// connection opens. The result is kept on the connection.
func (c *Connection) Handshake(ctx context.Context, opts handshake.ReadOptions) (*handshake.Advertisement, error) {
	adv, err := handshake.ReadAdvertisement(ctx, c, opts)
	if err != nil {
		return nil, fmt.Errorf("reading reference advertisement: %w", err)
	}
	c.adv = adv
	return adv, nil
}

// Advertisement returns the advertisement read by [Connection.Handshake],
// or nil.
func (c *Connection) Advertisement() *handshake.Advertisement {
	return c.adv
}

// CloseWrite signals the service that nothing more will be sent.
func (c *Connection) CloseWrite() error {
	switch {
	case c.stdin != nil:
		if err := c.stdin.Close(); err != nil && !errors.Is(err, fs.ErrClosed) {
			return fmt.Errorf("closing process input: %w", err)
		}
	case c.conn != nil:
		if cw, ok := c.conn.(interface{ CloseWrite() error }); ok {
			if err := cw.CloseWrite(); err != nil {
				return fmt.Errorf("closing connection for writing: %w", err)
			}
		}
	}
	return nil
}

// Disconnect tells the service the client wants nothing after the
// advertisement and finishes the connection.
func (c *Connection) Disconnect(ctx context.Context) (int, error) {
	if err := handshake.WriteFlush(c); err != nil {
		slog.DebugContext(ctx, "service went away before disconnect", slog.String("error", err.Error()))
	}
	return c.Finish()
}

// Finish releases the connection, waiting for an attached process to exit,
// and returns its exit status. Connections without a process finish with
// status 0. Calling Finish more than once returns the first result.
func (c *Connection) Finish() (int, error) {
	if c == nil {
		return 0, nil
	}

	c.finish.Do(func() {
		switch {
		case c.cmd != nil:
			c.code, c.err = c.wait()
		case c.conn != nil:
			if err := c.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
				c.err = fmt.Errorf("closing connection: %w", err)
			}
		}
	})

	return c.code, c.err
}

func (c *Connection) wait() (int, error) {
	// the process may already be gone, nothing reads the pipe anymore
	_ = c.stdin.Close()

	err := c.cmd.Wait()
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		return exitErr.ExitCode(), nil
	case err != nil:
		return -1, fmt.Errorf("waiting for %s: %w", c.cmd.Path, err)
	default:
		return 0, nil
	}
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) {
	return 0, io.EOF
}
