package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"

	"github.com/act3-ai/gitconnect/pkg/protocol/handshake"
)

// DefaultPort is the git daemon port.
const DefaultPort = "9418"

// connectSocket connects to a git daemon, directly or through opts.Proxy,
// and sends the request line for program.
func connectSocket(ctx context.Context, t *Target, program string, opts Options) (*Connection, error) {
	host, port := SplitHostPort(t.Host, opts.DefaultPort)

	var c *Connection
	if opts.Proxy != nil && opts.Proxy.UseProxy(host) {
		slog.DebugContext(ctx, "connecting through proxy", slog.String("host", host), slog.String("port", port))
		pc, err := opts.Proxy.Connect(ctx, host, port)
		if err != nil {
			return nil, fmt.Errorf("%w to %s (port %s) through proxy: %w", ErrDial, host, port, err)
		}
		c = pc
	} else {
		conn, err := dialTCP(ctx, host, port, opts)
		if err != nil {
			return nil, err
		}
		c = NewSocketConnection(conn)
	}
	c.wrap(opts.Wrap)

	// the daemon gets the host exactly as written in the locator
	if err := handshake.WriteRequest(c, program, t.Path, t.Host); err != nil {
		_, _ = c.Finish()
		return nil, err
	}

	return c, nil
}

// dialTCP tries every address of host in turn.
func dialTCP(ctx context.Context, host, port string, opts Options) (net.Conn, error) {
	logf := slog.DebugContext
	if opts.Verbose {
		logf = slog.InfoContext
	}

	logf(ctx, "looking up host", slog.String("host", host))
	addrs, err := net.DefaultResolver.LookupHost(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("%w: looking up %s: %w", ErrDial, host, err)
	}

	logf(ctx, "connecting to host", slog.String("host", host), slog.String("port", port))
	d := net.Dialer{Timeout: opts.DialTimeout}
	errs := make([]error, 0, len(addrs))
	for _, addr := range addrs {
		conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(addr, port))
		if err != nil {
			slog.DebugContext(ctx, "connection attempt failed", slog.String("address", addr), slog.String("error", err.Error()))
			errs = append(errs, err)
			continue
		}
		logf(ctx, "connected", slog.String("address", conn.RemoteAddr().String()))
		return conn, nil
	}

	return nil, fmt.Errorf("%w to %s (port %s): %w", ErrDial, host, port, errors.Join(errs...))
}

// SplitHostPort splits "host", "host:port" or "[host]:port" into host and
// port, using defaultPort when there is none.
func SplitHostPort(hostport, defaultPort string) (string, string) {
	host, rest := hostport, hostport
	if strings.HasPrefix(hostport, "[") {
		if end := strings.IndexByte(hostport, ']'); end > 0 {
			host, rest = hostport[1:end], hostport[end+1:]
		}
	}

	if i := strings.IndexByte(rest, ':'); i >= 0 {
		port := rest[i+1:]
		if rest == hostport {
			host = hostport[:i]
		}
		if port != "" {
			return host, port
		}
	}
	return host, defaultPort
}
