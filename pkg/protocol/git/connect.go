package git

import "fmt"

// ConnectRequest is a command received from Git asking the helper to connect
// it to a service on the remote end, such as git-upload-pack.
//
// https://git-scm.com/docs/gitremote-helpers#Documentation/gitremote-helpers.txt-connectservice.
type ConnectRequest struct {
	Cmd     Command
	Service string
}

// Parse decodes request fields ensuring the [ConnectRequest] is of the correct type
// and names a service.
//
// Implements [Parsable].
func (r *ConnectRequest) Parse(fields []string) error {
	if len(fields) == 0 {
		return fmt.Errorf("%w: empty connect request", ErrBadRequest)
	}

	cmd := Command(fields[0])
	if cmd != Connect {
		return fmt.Errorf("%w: got %s, want %s", ErrUnexpectedRequest, cmd, Connect)
	}
	if len(fields) != 2 {
		return fmt.Errorf("%w: invalid fields for connect request: got %v", ErrBadRequest, fields)
	}
	r.Cmd = cmd
	r.Service = fields[1]

	return nil
}

// String condenses [ConnectRequest] into a string, the raw request received from Git.
func (r *ConnectRequest) String() string {
	return fmt.Sprintf("%s %s", r.Cmd, r.Service)
}
