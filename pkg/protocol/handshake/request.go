package handshake

import (
	"fmt"
	"io"

	"github.com/go-git/go-git/v5/plumbing/format/pktline"
)

// WriteRequest writes the request line that opens a git:// session:
//
//	<program> SP <path> NUL "host=" <host> NUL
//
// Older daemons crash on unknown trailing fields; nothing else may be added
// here without negotiating it first.
func WriteRequest(w io.Writer, program, path, host string) error {
	if err := pktline.NewEncoder(w).Encodef("%s %s\x00host=%s\x00", program, path, host); err != nil {
		return fmt.Errorf("writing request for %s: %w", program, err)
	}
	return nil
}

// WriteFlush writes a flush-pkt, telling the server the client wants nothing
// more after the advertisement.
func WriteFlush(w io.Writer) error {
	if err := pktline.NewEncoder(w).Flush(); err != nil {
		return fmt.Errorf("writing flush-pkt: %w", err)
	}
	return nil
}
