package transport

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/proxy"
)

// pipeDialer hands out one end of a pipe instead of dialing.
type pipeDialer struct {
	conn net.Conn
	err  error
	addr string
}

func (d *pipeDialer) Dial(_, addr string) (net.Conn, error) {
	d.addr = addr
	return d.conn, d.err
}

// ctxPipeDialer additionally implements proxy.ContextDialer.
type ctxPipeDialer struct {
	pipeDialer
	withCtx bool
}

func (d *ctxPipeDialer) DialContext(_ context.Context, network, addr string) (net.Conn, error) {
	d.withCtx = true
	return d.Dial(network, addr)
}

func TestEnvProxy(t *testing.T) {
	ctx := t.Context()

	t.Run("Direct", func(t *testing.T) {
		p := &EnvProxy{dialer: proxy.Direct}
		assert.False(t, p.UseProxy("example.com"))
	})

	t.Run("Connect", func(t *testing.T) {
		client, server := net.Pipe()
		defer server.Close()

		d := &pipeDialer{conn: client}
		p := &EnvProxy{dialer: d}
		assert.True(t, p.UseProxy("example.com"))

		conn, err := p.Connect(ctx, "::1", "9418")
		assert.NoError(t, err)
		assert.True(t, conn.IsSocket())
		assert.Equal(t, "[::1]:9418", d.addr)

		_, err = conn.Finish()
		assert.NoError(t, err)
	})

	t.Run("Connect with Context", func(t *testing.T) {
		client, server := net.Pipe()
		defer server.Close()

		d := &ctxPipeDialer{pipeDialer: pipeDialer{conn: client}}
		p := &EnvProxy{dialer: d}

		conn, err := p.Connect(ctx, "example.com", "9418")
		assert.NoError(t, err)
		assert.True(t, d.withCtx)
		assert.Equal(t, "example.com:9418", d.addr)

		_, err = conn.Finish()
		assert.NoError(t, err)
	})

	t.Run("Dial Failure", func(t *testing.T) {
		expectedErr := errors.New("socks refused")
		p := &EnvProxy{dialer: &pipeDialer{err: expectedErr}}

		conn, err := p.Connect(ctx, "example.com", "9418")
		assert.ErrorIs(t, err, expectedErr)
		assert.Nil(t, conn)
	})

	t.Run("From Environment", func(t *testing.T) {
		assert.NotNil(t, NewEnvProxy())
	})
}
