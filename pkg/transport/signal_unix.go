//go:build unix

package transport

import (
	"os/signal"
	"syscall"
)

// resetChildSignal stops relaying SIGCHLD to channels registered with
// [signal.Notify]. The runtime's own handler is always installed, so
// children are never reaped before they are waited on.
func resetChildSignal() {
	signal.Reset(syscall.SIGCHLD)
}
