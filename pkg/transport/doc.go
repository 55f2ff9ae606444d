// Package transport opens a bidirectional channel to a git repository service.
//
// A repository locator is resolved into a [Target] which selects one of three
// transports: a local subprocess, a subprocess run through a remote shell
// (ssh), or a TCP connection to a git daemon. Whatever the transport, the
// caller receives a [Connection] that is read from, written to and finally
// released with [Connection.Finish].
//
// Locator forms:
//
//	scheme://[user@]host[:port]/path   ssh, git+ssh, ssh+git, git, file
//	[user@]host:path                   scp-like, ssh
//	/path/to/repo                      local
package transport
