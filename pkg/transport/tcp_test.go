package transport

import (
	"fmt"
	"io"
	"net"
	"testing"

	"github.com/act3-ai/gitconnect/internal/testutils"
	"github.com/act3-ai/gitconnect/pkg/protocol/handshake"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
)

func TestSplitHostPort(t *testing.T) {
	tests := []struct {
		in, host, port string
	}{
		{"example.com", "example.com", "9418"},
		{"example.com:1234", "example.com", "1234"},
		{"example.com:", "example.com", "9418"},
		{"[::1]", "::1", "9418"},
		{"[::1]:1234", "::1", "1234"},
	}

	for _, tt := range tests {
		host, port := SplitHostPort(tt.in, DefaultPort)
		assert.Equal(t, tt.host, host, tt.in)
		assert.Equal(t, tt.port, port, tt.in)
	}
}

// serveDaemon accepts a single connection on l and plays a git daemon: it
// reads the request line, advertises one reference and waits for the
// client's flush-pkt.
func serveDaemon(t *testing.T, l net.Listener, hash plumbing.Hash) <-chan testutils.Request {
	t.Helper()

	reqs := make(chan testutils.Request, 1)
	go func() {
		defer close(reqs)

		conn, err := l.Accept()
		if !assert.NoError(t, err) {
			return
		}
		defer conn.Close()

		req, err := testutils.ReadRequest(conn)
		if !assert.NoError(t, err) {
			return
		}
		reqs <- req

		adv := testutils.NewAdvertiser(conn, "multi_ack")
		assert.NoError(t, adv.Ref(hash, "refs/heads/main"))
		assert.NoError(t, adv.Flush())

		flush := make([]byte, 4)
		_, err = io.ReadFull(conn, flush)
		assert.NoError(t, err)
		assert.Equal(t, "0000", string(flush))
	}()

	return reqs
}

func TestConnect_Socket(t *testing.T) {
	ctx := t.Context()
	hash := plumbing.ComputeHash(plumbing.CommitObject, []byte("main"))

	t.Run("Success", func(t *testing.T) {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		assert.NoError(t, err)
		defer l.Close()
		reqs := serveDaemon(t, l, hash)

		conn, err := Connect(ctx, fmt.Sprintf("git://%s/repo.git", l.Addr()), "git-upload-pack", Options{Verbose: true})
		assert.NoError(t, err)
		assert.True(t, conn.IsSocket())

		adv, err := conn.Handshake(ctx, handshake.ReadOptions{})
		assert.NoError(t, err)
		assert.Equal(t, []handshake.Ref{{Name: "refs/heads/main", Hash: hash}}, adv.Refs)

		code, err := conn.Disconnect(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 0, code)

		req := <-reqs
		for range reqs {
		}
		assert.Equal(t, testutils.Request{
			Program: "git-upload-pack",
			Path:    "/repo.git",
			Host:    l.Addr().String(),
		}, req)
	})

	t.Run("Default Port", func(t *testing.T) {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		assert.NoError(t, err)
		defer l.Close()
		reqs := serveDaemon(t, l, hash)

		_, port, err := net.SplitHostPort(l.Addr().String())
		assert.NoError(t, err)

		conn, err := Connect(ctx, "git://127.0.0.1/~user/repo.git", "git-upload-pack", Options{DefaultPort: port})
		assert.NoError(t, err)

		_, err = conn.Handshake(ctx, handshake.ReadOptions{})
		assert.NoError(t, err)

		code, err := conn.Disconnect(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 0, code)

		req := <-reqs
		for range reqs {
		}
		assert.Equal(t, "127.0.0.1", req.Host)
		assert.Equal(t, "/~user/repo.git", req.Path)
	})

	t.Run("Dial Failure", func(t *testing.T) {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		assert.NoError(t, err)
		addr := l.Addr().String()
		assert.NoError(t, l.Close())

		conn, err := Connect(ctx, fmt.Sprintf("git://%s/repo.git", addr), "git-upload-pack", Options{})
		assert.ErrorIs(t, err, ErrDial)
		assert.Nil(t, conn)
	})

	t.Run("Traced", func(t *testing.T) {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		assert.NoError(t, err)
		defer l.Close()
		reqs := serveDaemon(t, l, hash)

		var wrapped bool
		conn, err := Connect(ctx, fmt.Sprintf("git://%s/repo.git", l.Addr()), "git-upload-pack", Options{
			Wrap: func(rw io.ReadWriter) io.ReadWriter {
				wrapped = true
				return rw
			},
		})
		assert.NoError(t, err)
		assert.True(t, wrapped)

		_, err = conn.Handshake(ctx, handshake.ReadOptions{})
		assert.NoError(t, err)

		_, err = conn.Disconnect(ctx)
		assert.NoError(t, err)
		for range reqs {
		}
	})
}
