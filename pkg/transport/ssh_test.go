package transport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoteCommand(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cmd, err := RemoteCommand("git-upload-pack", "~user/repo.git")
		assert.NoError(t, err)
		assert.Equal(t, "git-upload-pack '~user/repo.git'", cmd)
	})

	t.Run("Quoted Path", func(t *testing.T) {
		cmd, err := RemoteCommand("git-receive-pack", "it's here")
		assert.NoError(t, err)
		assert.Equal(t, `git-receive-pack 'it'\''s here'`, cmd)
	})

	t.Run("Too Long", func(t *testing.T) {
		// "git-upload-pack " plus two quotes
		overhead := len("git-upload-pack ") + 2

		cmd, err := RemoteCommand("git-upload-pack", strings.Repeat("a", maxCommandLen-overhead-1))
		assert.NoError(t, err)
		assert.Len(t, cmd, maxCommandLen-1)

		_, err = RemoteCommand("git-upload-pack", strings.Repeat("a", maxCommandLen-overhead))
		assert.ErrorIs(t, err, ErrCommandTooLong)
	})

	t.Run("Too Long After Quoting", func(t *testing.T) {
		_, err := RemoteCommand("git-upload-pack", strings.Repeat("'", 300))
		assert.ErrorIs(t, err, ErrCommandTooLong)
	})
}

func TestSSHArgs(t *testing.T) {
	const command = "git-upload-pack 'repo.git'"

	t.Run("OpenSSH", func(t *testing.T) {
		assert.Equal(t,
			[]string{"ssh", "git@example.com", command},
			SSHArgs("ssh", "git@example.com", "", command))
	})

	t.Run("OpenSSH with Port", func(t *testing.T) {
		assert.Equal(t,
			[]string{"ssh", "-p", "2222", "example.com", command},
			SSHArgs("ssh", "example.com", "2222", command))
	})

	t.Run("Plink", func(t *testing.T) {
		assert.Equal(t,
			[]string{`C:\PuTTY\PLINK.EXE`, "-batch", "-P", "2222", "example.com", command},
			SSHArgs(`C:\PuTTY\PLINK.EXE`, "example.com", "2222", command))
	})

	t.Run("TortoisePlink", func(t *testing.T) {
		assert.Equal(t,
			[]string{"TortoisePlink.exe", "-P", "22", "example.com", command},
			SSHArgs("TortoisePlink.exe", "example.com", "22", command))
	})
}
