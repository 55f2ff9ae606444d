// Package handshake implements the client side of the Git transport handshake:
// decoding the server's reference advertisement, the capability string that
// accompanies it, and the request line sent to a git:// daemon.
//
// The advertisement is a sequence of pkt-lines terminated by a flush-pkt:
//
//	<40 hex object id> SP <refname> [NUL <capabilities>] LF
//
// Only the first line carries capabilities.
//
// See https://git-scm.com/docs/pack-protocol#_reference_discovery.
package handshake
