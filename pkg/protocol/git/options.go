package git

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Option is a git-remote-helper option sub command provided by Git.
//
// https://git-scm.com/docs/gitremote-helpers#_options.
type Option string

// Supported Git options.
const (
	Verbosity Option = "verbosity"
)

// SupportedOption returns true if an [Option] is supported.
func SupportedOption(option Option) bool {
	opts := []Option{
		Verbosity,
	}
	return slices.Contains(opts, option)
}

// OptionRequest is a command received from Git requesting an option to be set.
// Options this package does not know are parsed as well, so they can be
// answered with "unsupported".
//
// https://git-scm.com/docs/gitremote-helpers#Documentation/gitremote-helpers.txt-optionnamevalue.
type OptionRequest struct {
	Cmd   Command
	Opt   Option
	Value string
}

// Parse decodes request fields ensuring the [OptionRequest] is of the correct type
// and has a valid value.
//
// Implements [Parsable].
func (r *OptionRequest) Parse(fields []string) error {
	if len(fields) == 0 {
		return fmt.Errorf("%w: empty options request", ErrBadRequest)
	}

	cmd := Command(fields[0])
	if cmd != Options {
		return fmt.Errorf("%w: got %s, want %s", ErrUnexpectedRequest, cmd, Options)
	}
	if len(fields) < 3 {
		return fmt.Errorf("%w: invalid fields for options request: got %v", ErrBadRequest, fields)
	}

	opt := Option(fields[1])
	val := strings.Join(fields[2:], " ")

	if opt == Verbosity {
		if _, err := strconv.Atoi(val); err != nil {
			return fmt.Errorf("%w: verbosity value %q is not an integer: %w", ErrBadRequest, val, err)
		}
	}

	r.Cmd = cmd
	r.Opt = opt
	r.Value = val

	return nil
}

// String condenses [OptionRequest] into a string, the raw request received from Git.
func (r *OptionRequest) String() string {
	return fmt.Sprintf("%s %s %s", r.Cmd, r.Opt, r.Value)
}
