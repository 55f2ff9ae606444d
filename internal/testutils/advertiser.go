package testutils

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/pktline"
)

// Advertiser plays the server side of a reference advertisement.
type Advertiser struct {
	enc      *pktline.Encoder
	caps     string
	sentCaps bool
}

// NewAdvertiser initializes an [Advertiser]. The first advertised line
// carries caps, unless caps is empty.
func NewAdvertiser(w io.Writer, caps string) *Advertiser {
	return &Advertiser{
		enc:  pktline.NewEncoder(w),
		caps: caps,
	}
}

// Ref advertises a reference.
func (a *Advertiser) Ref(hash plumbing.Hash, name string) error {
	if !a.sentCaps && a.caps != "" {
		a.sentCaps = true
		return a.enc.Encodef("%s %s\x00%s\n", hash, name, a.caps)
	}
	return a.enc.Encodef("%s %s\n", hash, name)
}

// Have advertises an object with the ".have" pseudo-ref.
func (a *Advertiser) Have(hash plumbing.Hash) error {
	return a.Ref(hash, ".have")
}

// Error sends an "ERR " line.
func (a *Advertiser) Error(msg string) error {
	return a.enc.Encodef("ERR %s\n", msg)
}

// Line sends s verbatim as a single pkt-line.
func (a *Advertiser) Line(s string) error {
	return a.enc.EncodeString(s)
}

// Flush ends the advertisement.
func (a *Advertiser) Flush() error {
	return a.enc.Flush()
}

// Request is a decoded git:// request line.
type Request struct {
	Program string
	Path    string
	Host    string
}

// ReadRequest reads the request line a client sends when opening a git://
// session.
func ReadRequest(r io.Reader) (Request, error) {
	scanner := pktline.NewScanner(r)
	if !scanner.Scan() {
		return Request{}, fmt.Errorf("reading request line: %w", scanner.Err())
	}
	payload := scanner.Bytes()

	fields := bytes.Split(payload, []byte{0})
	if len(fields) != 3 || len(fields[2]) != 0 {
		return Request{}, fmt.Errorf("malformed request line %q", payload)
	}

	program, path, ok := strings.Cut(string(fields[0]), " ")
	if !ok {
		return Request{}, fmt.Errorf("malformed command %q", fields[0])
	}
	host, ok := strings.CutPrefix(string(fields[1]), "host=")
	if !ok {
		return Request{}, fmt.Errorf("malformed host parameter %q", fields[1])
	}

	return Request{Program: program, Path: path, Host: host}, nil
}
