package handshake

import (
	"errors"
	"fmt"
)

var (
	// ErrProtocol indicates a malformed advertisement line.
	ErrProtocol = errors.New("protocol error")
	// ErrRemote indicates the remote reported an error with an "ERR " line.
	ErrRemote = errors.New("remote error")
	// ErrInitialContact indicates the stream ended before any reference was
	// received, typically because the remote could not be reached at all.
	ErrInitialContact = errors.New("could not read from remote repository")
	// ErrHungUp indicates the stream ended after at least one reference was
	// received but before the terminating flush-pkt.
	ErrHungUp = errors.New("the remote end hung up upon initial contact")
)

// RemoteError is the message of an "ERR " line sent by the remote.
type RemoteError struct {
	Message string
}

// Error implements error.
func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRemote, e.Message)
}

// Is reports whether target is [ErrRemote].
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}
