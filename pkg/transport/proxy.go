package transport

import (
	"context"
	"fmt"
	"io"
	"net"
	"os/exec"
	"strings"

	"golang.org/x/net/proxy"
)

// Proxy reaches git daemons that cannot be dialed directly.
type Proxy interface {
	// UseProxy returns true if host must be reached through the proxy.
	UseProxy(host string) bool
	// Connect opens a channel to host and port through the proxy.
	Connect(ctx context.Context, host, port string) (*Connection, error)
}

// ProxyChain uses the first of its proxies that handles a host.
type ProxyChain []Proxy

// UseProxy implements [Proxy].
func (pc ProxyChain) UseProxy(host string) bool {
	return pc.pick(host) != nil
}

// Connect implements [Proxy].
func (pc ProxyChain) Connect(ctx context.Context, host, port string) (*Connection, error) {
	p := pc.pick(host)
	if p == nil {
		return nil, fmt.Errorf("no proxy for %s", host)
	}
	return p.Connect(ctx, host, port) //nolint:wrapcheck
}

func (pc ProxyChain) pick(host string) Proxy {
	for _, p := range pc {
		if p != nil && p.UseProxy(host) {
			return p
		}
	}
	return nil
}

// CommandProxy runs "<Command> <host> <port>" and talks to the daemon
// through its standard input and output, like GIT_PROXY_COMMAND.
type CommandProxy struct {
	// Command is the proxy program. The proxy is disabled if empty.
	Command string
	// NoProxy lists host suffixes reached without the proxy.
	NoProxy []string
	// Env is the environment of the proxy process. nil inherits the
	// current environment.
	Env []string
	// Stderr receives the standard error of the proxy process.
	Stderr io.Writer
}

// UseProxy implements [Proxy].
func (p *CommandProxy) UseProxy(host string) bool {
	if p.Command == "" {
		return false
	}
	for _, suffix := range p.NoProxy {
		if suffix != "" && strings.HasSuffix(host, suffix) {
			return false
		}
	}
	return true
}

// Connect implements [Proxy].
func (p *CommandProxy) Connect(ctx context.Context, host, port string) (*Connection, error) {
	cmd := exec.Command(p.Command, host, port)
	return spawn(ctx, cmd, p.Env, Options{Stderr: p.Stderr})
}

// EnvProxy dials through the SOCKS5 proxy named by the ALL_PROXY
// environment variable, honoring NO_PROXY.
type EnvProxy struct {
	dialer proxy.Dialer
}

// NewEnvProxy initializes an [EnvProxy] from the environment.
func NewEnvProxy() *EnvProxy {
	return &EnvProxy{dialer: proxy.FromEnvironment()}
}

// UseProxy implements [Proxy].
func (p *EnvProxy) UseProxy(string) bool {
	return p.dialer != nil && p.dialer != proxy.Direct
}

// Connect implements [Proxy].
func (p *EnvProxy) Connect(ctx context.Context, host, port string) (*Connection, error) {
	addr := net.JoinHostPort(host, port)

	var conn net.Conn
	var err error
	if cd, ok := p.dialer.(proxy.ContextDialer); ok {
		conn, err = cd.DialContext(ctx, "tcp", addr)
	} else {
		conn, err = p.dialer.Dial("tcp", addr)
	}
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", addr, err)
	}

	return NewSocketConnection(conn), nil
}
