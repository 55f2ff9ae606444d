package handshake

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/hash"
)

// extraHaveName is the pseudo-ref a server uses to advertise objects it has
// without exposing a reference, e.g. objects of alternate repositories.
const extraHaveName = ".have"

// errPrefix starts a line reporting a fatal error on the remote.
var errPrefix = []byte("ERR ")

// LineKind classifies a decoded advertisement line.
type LineKind uint8

// Advertisement line kinds.
const (
	// LineFlush ends the advertisement.
	LineFlush LineKind = iota
	// LineRef advertises a reference.
	LineRef
	// LineExtraHave advertises an object through the ".have" pseudo-ref.
	LineExtraHave
)

// Line is a single decoded advertisement line.
type Line struct {
	Kind LineKind
	Name plumbing.ReferenceName
	Hash plumbing.Hash

	// Capabilities is only meaningful if HasCapabilities is true.
	Capabilities    Capabilities
	HasCapabilities bool
}

// DecodeLine decodes the payload of a single pkt-line of a reference
// advertisement. A trailing newline is ignored. An empty payload decodes
// as [LineFlush].
func DecodeLine(payload []byte) (Line, error) {
	payload = bytes.TrimSuffix(payload, []byte("\n"))
	if len(payload) == 0 {
		return Line{Kind: LineFlush}, nil
	}

	if len(payload) > len(errPrefix) && bytes.HasPrefix(payload, errPrefix) {
		return Line{}, &RemoteError{Message: string(payload[len(errPrefix):])}
	}

	if len(payload) < hash.HexSize+2 || payload[hash.HexSize] != ' ' {
		return Line{}, fmt.Errorf("%w: expected sha/ref, got %q", ErrProtocol, payload)
	}

	var line Line
	if err := decodeLowerHex(line.Hash[:], payload[:hash.HexSize]); err != nil {
		return Line{}, fmt.Errorf("%w: expected sha/ref, got %q: %w", ErrProtocol, payload, err)
	}

	rest := payload[hash.HexSize+1:]
	name := rest
	if i := bytes.IndexByte(rest, 0); i >= 0 {
		name = rest[:i]
		line.Capabilities = Capabilities(rest[i+1:])
		line.HasCapabilities = true
	}
	line.Name = plumbing.ReferenceName(name)

	line.Kind = LineRef
	if string(name) == extraHaveName {
		line.Kind = LineExtraHave
	}

	return line, nil
}

// decodeLowerHex decodes src into dst, rejecting upper case digits.
func decodeLowerHex(dst, src []byte) error {
	for i, c := range src {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return fmt.Errorf("invalid hex character %q at offset %d", c, i)
		}
	}
	_, err := hex.Decode(dst, src)
	return err
}
