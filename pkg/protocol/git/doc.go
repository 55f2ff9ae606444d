// Package git defines types used in the Git remote helpers protocol.
//
// Contrary to the git-remote-helpers documentation, this package refers to
// commands sent by Git as "Requests" for code readability.
//
// Only the commands needed to bridge Git to a native transport are modeled:
// capabilities, option and connect.
//
// See https://git-scm.com/docs/gitremote-helpers#_commands.
package git
