package testutils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/act3-ai/gitconnect/pkg/protocol/git"
)

// ReverseCommunicator is the reverse of git comms.Communicator, acting as Git
// sending remote helper protocol requests and receiving responses.
type ReverseCommunicator interface {
	RequestSender
	ResponseReceiver
}

// RequestSender sends remote helper requests as Git would.
type RequestSender interface {
	// SendCapabilitiesRequest sends a [git.CapabilitiesRequest].
	SendCapabilitiesRequest() error
	// SendOptionRequest sends a [git.OptionRequest].
	SendOptionRequest(opt git.Option, value string) error
	// SendConnectRequest sends a [git.ConnectRequest].
	SendConnectRequest(service string) error
	// SendEndOfBatch sends the blank line Git uses to end a command batch.
	SendEndOfBatch() error
}

// ResponseReceiver reads remote helper responses as Git would.
type ResponseReceiver interface {
	// ReceiveCapabilitiesResponse receives a response to a [git.CapabilitiesRequest].
	ReceiveCapabilitiesResponse() ([]git.Capability, error)
	// ReceiveOptionResponse receives a response to a [git.OptionRequest].
	ReceiveOptionResponse() (bool, error)
	// ReceiveConnectResponse receives a response to a [git.ConnectRequest].
	ReceiveConnectResponse() error
}

// NewReverseCommunicator initializes a [ReverseCommunicator].
func NewReverseCommunicator(in io.Reader, out io.Writer) ReverseCommunicator {
	return &reverseCommunicator{
		in:  bufio.NewReader(in),
		out: out,
	}
}

type reverseCommunicator struct {
	in  *bufio.Reader
	out io.Writer
}

// SendCapabilitiesRequest sends a [git.CapabilitiesRequest].
func (c *reverseCommunicator) SendCapabilitiesRequest() error {
	req := &git.CapabilitiesRequest{
		Cmd: git.Capabilities,
	}
	return c.send(req.String())
}

// SendOptionRequest sends a [git.OptionRequest].
func (c *reverseCommunicator) SendOptionRequest(opt git.Option, value string) error {
	req := &git.OptionRequest{
		Cmd:   git.Options,
		Opt:   opt,
		Value: value,
	}
	return c.send(req.String())
}

// SendConnectRequest sends a [git.ConnectRequest].
func (c *reverseCommunicator) SendConnectRequest(service string) error {
	req := &git.ConnectRequest{
		Cmd:     git.Connect,
		Service: service,
	}
	return c.send(req.String())
}

// SendEndOfBatch sends a blank line.
func (c *reverseCommunicator) SendEndOfBatch() error {
	return c.send("")
}

// ReceiveCapabilitiesResponse receives a response to a [git.CapabilitiesRequest].
func (c *reverseCommunicator) ReceiveCapabilitiesResponse() ([]git.Capability, error) {
	var capabilities []git.Capability
	for {
		line, err := c.readLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			break
		}
		capabilities = append(capabilities, line)
	}

	if len(capabilities) < 1 {
		return nil, errors.New("no capabilities received")
	}
	return capabilities, nil
}

// ReceiveOptionResponse receives a response to a [git.OptionRequest],
// returning true if the option is supported.
func (c *reverseCommunicator) ReceiveOptionResponse() (bool, error) {
	line, err := c.readLine()
	if err != nil {
		return false, err
	}

	switch {
	case line == "ok":
		return true, nil
	case line == "unsupported":
		return false, nil
	case strings.HasPrefix(line, "error "):
		return false, fmt.Errorf("option failed: %s", strings.TrimPrefix(line, "error "))
	default:
		return false, fmt.Errorf("unexpected option response %q", line)
	}
}

// ReceiveConnectResponse receives a response to a [git.ConnectRequest].
func (c *reverseCommunicator) ReceiveConnectResponse() error {
	line, err := c.readLine()
	if err != nil {
		return err
	}
	if line != "" {
		return fmt.Errorf("unexpected connect response %q", line)
	}
	return nil
}

func (c *reverseCommunicator) send(line string) error {
	if _, err := io.WriteString(c.out, line+"\n"); err != nil {
		return fmt.Errorf("writing request: %w", err)
	}
	return nil
}

func (c *reverseCommunicator) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	return strings.TrimSuffix(line, "\n"), nil
}
