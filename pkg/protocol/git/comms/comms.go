// Package comms facilitates receiving requests from and writing responses to Git via the remote helpers protocol.
//
// Protocol Reference: https://git-scm.com/docs/gitremote-helpers.
package comms

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/act3-ai/gitconnect/pkg/protocol/git"
)

// Communicator provides handling of git-remote-helper protocol
// requests and responses.
type Communicator interface {
	RequestParser
	ResponseWriter
}

// RequestParser reads git-remote-helper requests.
type RequestParser interface {
	// LookAhead reads the next request, returning its command without
	// consuming it. The following Parse call decodes the same request.
	LookAhead() (git.Command, error)
	// ParseCapabilitiesRequest reads a [git.CapabilitiesRequest].
	ParseCapabilitiesRequest() (*git.CapabilitiesRequest, error)
	// ParseOptionRequest reads a [git.OptionRequest].
	ParseOptionRequest() (*git.OptionRequest, error)
	// ParseConnectRequest reads a [git.ConnectRequest].
	ParseConnectRequest() (*git.ConnectRequest, error)
	// Remaining returns Git's input past the last request read, which
	// carries the service protocol once a connect request is answered.
	Remaining() io.Reader
}

// ResponseWriter sends git-remote-helper responses.
type ResponseWriter interface {
	// WriteCapabilitiesResponse lists capabilities, terminated by a blank line.
	WriteCapabilitiesResponse(capabilities []git.Capability) error
	// WriteOptionResponse answers a [git.OptionRequest] with "ok" or
	// "unsupported".
	WriteOptionResponse(supported bool) error
	// WriteConnectResponse tells Git the connection to the service is
	// established.
	WriteConnectResponse() error
}

// NewCommunicator initializes a [Communicator].
func NewCommunicator(in io.Reader, out io.Writer) Communicator {
	return &defaultCommunicator{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// defaultCommunicator is the default implementation of [Communicator].
type defaultCommunicator struct {
	in  *bufio.Reader
	out io.Writer

	// previous holds the fields of a request read by LookAhead
	previous []string
}

// LookAhead reads the next request, returning its command without
// consuming it.
func (c *defaultCommunicator) LookAhead() (git.Command, error) {
	fields, err := c.previousOrNext()
	if err != nil {
		return "", err
	}

	cmd := git.Command(fields[0])
	if !git.SupportedCommand(cmd) {
		return cmd, fmt.Errorf("%w: %s", git.ErrUnsupportedRequest, cmd)
	}
	c.previous = fields

	return cmd, nil
}

// ParseCapabilitiesRequest reads a [git.CapabilitiesRequest].
func (c *defaultCommunicator) ParseCapabilitiesRequest() (*git.CapabilitiesRequest, error) {
	return parse[git.CapabilitiesRequest](c)
}

// ParseOptionRequest reads a [git.OptionRequest].
func (c *defaultCommunicator) ParseOptionRequest() (*git.OptionRequest, error) {
	return parse[git.OptionRequest](c)
}

// ParseConnectRequest reads a [git.ConnectRequest].
func (c *defaultCommunicator) ParseConnectRequest() (*git.ConnectRequest, error) {
	return parse[git.ConnectRequest](c)
}

// Remaining returns Git's input past the last request read.
func (c *defaultCommunicator) Remaining() io.Reader {
	return c.in
}

// WriteCapabilitiesResponse lists capabilities, terminated by a blank line.
func (c *defaultCommunicator) WriteCapabilitiesResponse(capabilities []git.Capability) error {
	var b strings.Builder
	for _, capability := range capabilities {
		b.WriteString(capability)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if _, err := io.WriteString(c.out, b.String()); err != nil {
		return fmt.Errorf("writing capabilities response: %w", err)
	}
	return nil
}

// WriteOptionResponse answers an option request.
func (c *defaultCommunicator) WriteOptionResponse(supported bool) error {
	resp := "ok\n"
	if !supported {
		resp = "unsupported\n"
	}

	if _, err := io.WriteString(c.out, resp); err != nil {
		return fmt.Errorf("writing option response: %w", err)
	}
	return nil
}

// WriteConnectResponse writes the blank line acknowledging a connect request.
func (c *defaultCommunicator) WriteConnectResponse() error {
	if _, err := io.WriteString(c.out, "\n"); err != nil {
		return fmt.Errorf("writing connect response: %w", err)
	}
	return nil
}

func parse[T any, PT interface {
	*T
	git.Parsable
}](c *defaultCommunicator) (*T, error) {
	fields, err := c.previousOrNext()
	if err != nil {
		return nil, err
	}

	req := PT(new(T))
	if err := req.Parse(fields); err != nil {
		return nil, fmt.Errorf("parsing request: %w", err)
	}
	return (*T)(req), nil
}

// previousOrNext returns the request read by LookAhead, if any, otherwise
// the next request.
func (c *defaultCommunicator) previousOrNext() ([]string, error) {
	if c.previous != nil {
		fields := c.previous
		c.previous = nil
		return fields, nil
	}
	return c.next()
}

// next reads the next request, ignoring any looked ahead request.
func (c *defaultCommunicator) next() ([]string, error) {
	line, err := c.in.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && line == "":
		return nil, git.ErrEndOfInput
	case err != nil && !errors.Is(err, io.EOF):
		return nil, fmt.Errorf("reading request from Git: %w", err)
	}

	fields := strings.Fields(line)
	if len(fields) < 1 {
		return nil, git.ErrEmptyRequest
	}
	return fields, nil
}
