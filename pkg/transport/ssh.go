package transport

import (
	"fmt"
	"strings"
)

// maxCommandLen bounds the command handed to a shell.
const maxCommandLen = 1024

// defaultSSHCommand is the remote shell used when none is configured.
const defaultSSHCommand = "ssh"

// RemoteCommand builds the shell command running program on path.
func RemoteCommand(program, path string) (string, error) {
	cmd := program + " " + Quote(path)
	if len(cmd) >= maxCommandLen {
		return "", fmt.Errorf("%w: %d bytes", ErrCommandTooLong, len(cmd))
	}
	return cmd, nil
}

// SSHArgs builds the argument vector running command on host through the
// remote shell program ssh. The first element is ssh itself.
//
// PuTTY's plink spells the port flag "-P" and needs "-batch" to never
// prompt, except for TortoisePlink which is always non-interactive.
func SSHArgs(ssh, host, port, command string) []string {
	putty := containsFold(ssh, "plink")

	args := make([]string, 0, 6)
	args = append(args, ssh)
	if putty && !containsFold(ssh, "tortoiseplink") {
		args = append(args, "-batch")
	}
	if port != "" {
		if putty {
			args = append(args, "-P", port)
		} else {
			args = append(args, "-p", port)
		}
	}
	return append(args, host, command)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
