package transport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"
)

// shellPath runs local service programs.
const shellPath = "/bin/sh"

// Options configures how a [Connection] is established.
type Options struct {
	// SSHCommand is the remote shell program. The GIT_SSH environment
	// variable takes precedence. Defaults to "ssh".
	SSHCommand string
	// Proxy reaches git:// hosts that cannot be dialed directly. May be nil.
	Proxy Proxy
	// DialTimeout bounds each TCP connection attempt. Zero means no limit.
	DialTimeout time.Duration
	// DefaultPort is the git daemon port used when a git:// locator has
	// none. Defaults to [DefaultPort].
	DefaultPort string
	// Verbose reports host lookup and connection progress at info level.
	Verbose bool
	// Env is the environment of spawned processes. Defaults to os.Environ().
	Env []string
	// Stderr receives the standard error of spawned processes. Defaults to
	// os.Stderr.
	Stderr io.Writer
	// Wrap, if set, wraps the connection stream, e.g. to trace traffic.
	Wrap func(io.ReadWriter) io.ReadWriter
}

// withDefaults returns a copy of o with unset fields defaulted.
func (o Options) withDefaults() Options {
	if o.Env == nil {
		o.Env = os.Environ()
	}
	if ssh, ok := lookupEnv(o.Env, "GIT_SSH"); ok && ssh != "" {
		o.SSHCommand = ssh
	}
	if o.SSHCommand == "" {
		o.SSHCommand = defaultSSHCommand
	}
	if o.DefaultPort == "" {
		o.DefaultPort = DefaultPort
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

// Connect resolves locator and opens a connection running program, the
// service on the far end, e.g. "git-upload-pack".
func Connect(ctx context.Context, locator, program string, opts Options) (*Connection, error) {
	target, err := Resolve(locator)
	if err != nil {
		return nil, err
	}
	return Open(ctx, target, program, opts)
}

// Open opens a connection to a resolved target, running program on the far
// end. A local target with an empty program yields a connection without
// any channel.
func Open(ctx context.Context, t *Target, program string, opts Options) (*Connection, error) {
	resetChildSignal()
	opts = opts.withDefaults()

	slog.DebugContext(ctx, "opening connection",
		slog.String("transport", t.Kind.String()),
		slog.String("host", t.Host),
		slog.String("path", t.Path),
		slog.String("program", program))

	switch t.Kind {
	case KindSocket:
		return connectSocket(ctx, t, program, opts)
	case KindShellExec:
		command, err := RemoteCommand(program, t.Path)
		if err != nil {
			return nil, err
		}
		args := SSHArgs(opts.SSHCommand, t.Host, t.Port, command)
		return spawn(ctx, exec.Command(args[0], args[1:]...), opts.Env, opts)
	case KindLocal:
		if program == "" {
			return noProcess(), nil
		}
		command, err := RemoteCommand(program, t.Path)
		if err != nil {
			return nil, err
		}
		return spawn(ctx, exec.Command(shellPath, "-c", command), FilterEnv(opts.Env), opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProtocol, t.Kind)
	}
}

// spawn starts cmd as the service end of a connection.
func spawn(ctx context.Context, cmd *exec.Cmd, env []string, opts Options) (*Connection, error) {
	cmd.Env = env
	cmd.Stderr = opts.Stderr

	slog.DebugContext(ctx, "starting service process", slog.Any("args", cmd.Args))

	c, err := NewProcessConnection(cmd)
	if err != nil {
		return nil, err
	}
	c.wrap(opts.Wrap)
	return c, nil
}
