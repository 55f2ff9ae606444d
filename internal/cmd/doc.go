// Package cmd handles individual git-remote-helper requests.
package cmd
