package transport

import "errors"

var (
	// ErrUnsupportedProtocol indicates a locator scheme that no transport handles.
	ErrUnsupportedProtocol = errors.New("unsupported protocol")
	// ErrMissingPath indicates a locator without a repository path.
	ErrMissingPath = errors.New("no path specified")
	// ErrMissingHost indicates a remote locator without a host.
	ErrMissingHost = errors.New("no host specified")
	// ErrCommandTooLong indicates the remote command exceeds the length limit.
	ErrCommandTooLong = errors.New("command line too long")
	// ErrSpawn indicates a subprocess could not be started.
	ErrSpawn = errors.New("unable to fork")
	// ErrDial indicates a TCP or proxy connection could not be established.
	ErrDial = errors.New("unable to connect")
)
