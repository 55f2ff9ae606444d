package git

import (
	"fmt"
	"slices"
	"strings"
)

// Parsable is a parsable command received from Git.
type Parsable interface {
	Parse([]string) error
}

// Command is an implemented git-remote-helper command provided by Git.
//
// https://git-scm.com/docs/gitremote-helpers#_commands.
type Command string

// Supported Git commands.
const (
	Capabilities Command = "capabilities"
	Options      Command = "option"
	Connect      Command = "connect"
)

// SupportedCommand returns true if a [Command] is supported.
func SupportedCommand(name Command) bool {
	cmds := []Command{
		Capabilities,
		Options,
		Connect,
	}
	return slices.Contains(cmds, name)
}

// ParseRequest decodes a raw request line received from Git.
func ParseRequest[T any, PT interface {
	*T
	Parsable
}](line string) (*T, error) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return nil, ErrEmptyRequest
	}

	req := PT(new(T))
	if err := req.Parse(fields); err != nil {
		return nil, fmt.Errorf("parsing %q: %w", line, err)
	}
	return (*T)(req), nil
}
