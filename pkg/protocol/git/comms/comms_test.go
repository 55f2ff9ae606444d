package comms

import (
	"bufio"
	"bytes"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/act3-ai/gitconnect/internal/testutils"
	"github.com/act3-ai/gitconnect/pkg/protocol/git"
	"github.com/stretchr/testify/assert"
)

func newTestCommunicator(in io.Reader, out io.Writer) *defaultCommunicator {
	return &defaultCommunicator{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func TestNewCommunicator(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		in := strings.NewReader("foo")
		out := new(bytes.Buffer)

		comm := NewCommunicator(in, out)
		assert.NotNil(t, comm)
		defaultComm, ok := comm.(*defaultCommunicator)
		assert.True(t, ok)
		assert.NotNil(t, defaultComm)
		assert.NotNil(t, defaultComm.in)
		assert.Equal(t, out, defaultComm.out)
	})
}

func Test_defaultCommunicator_LookAhead(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)
		revcomm := testutils.NewReverseCommunicator(out, in)

		err := revcomm.SendCapabilitiesRequest()
		assert.NoError(t, err)

		cmd, err := comm.LookAhead()
		assert.NoError(t, err)
		assert.Equal(t, git.Capabilities, cmd)

		assert.Equal(t, []string{string(git.Capabilities)}, comm.previous)

		// ensure previous is reset appropriately
		req, err := comm.ParseCapabilitiesRequest()
		assert.NoError(t, err)
		assert.NotNil(t, req)
		assert.Nil(t, comm.previous)
	})

	t.Run("Repeated", func(t *testing.T) {
		in := strings.NewReader("connect git-upload-pack\noption verbosity 1\n")
		comm := newTestCommunicator(in, io.Discard)

		cmd, err := comm.LookAhead()
		assert.NoError(t, err)
		assert.Equal(t, git.Connect, cmd)

		cmd, err = comm.LookAhead()
		assert.NoError(t, err)
		assert.Equal(t, git.Connect, cmd)
	})

	t.Run("Empty Request", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)

		_, err := in.WriteString("\n")
		assert.NoError(t, err)

		_, err = comm.LookAhead()
		assert.ErrorIs(t, err, git.ErrEmptyRequest)
	})

	t.Run("Unsupported Command", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)

		_, err := in.WriteString("foo bar\n")
		assert.NoError(t, err)

		cmd, err := comm.LookAhead()
		assert.ErrorIs(t, err, git.ErrUnsupportedRequest)
		assert.Equal(t, git.Command("foo"), cmd)
		assert.Nil(t, comm.previous)
	})

	t.Run("End of Input", func(t *testing.T) {
		comm := newTestCommunicator(new(bytes.Buffer), io.Discard)

		_, err := comm.LookAhead()
		assert.ErrorIs(t, err, git.ErrEndOfInput)
	})
}

func Test_defaultCommunicator_previousOrNext(t *testing.T) {
	t.Run("Previous", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)

		// ensure this isn't read
		_, err := in.WriteString("bar bar\n")
		assert.NoError(t, err)

		expected := []string{"foo", "bar"}
		comm.previous = slices.Clone(expected)

		res, err := comm.previousOrNext()
		assert.NoError(t, err)
		assert.Equal(t, expected, res)
		assert.Nil(t, comm.previous)
	})

	t.Run("Next", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)

		// ensure this IS read
		_, err := in.WriteString("bar bar\n")
		assert.NoError(t, err)

		res, err := comm.previousOrNext()
		assert.NoError(t, err)
		assert.Equal(t, []string{"bar", "bar"}, res)
	})

	t.Run("Empty Request", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)

		_, err := in.WriteString("\n")
		assert.NoError(t, err)

		_, err = comm.previousOrNext()
		assert.ErrorIs(t, err, git.ErrEmptyRequest)
	})
}

func Test_defaultCommunicator_next(t *testing.T) {
	t.Run("Next", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)

		// ensure this is irrelevant
		comm.previous = []string{"foo", "bar"}

		_, err := in.WriteString("bar bar\n")
		assert.NoError(t, err)

		res, err := comm.next()
		assert.NoError(t, err)
		assert.Equal(t, []string{"bar", "bar"}, res)
	})

	t.Run("Unterminated Line", func(t *testing.T) {
		comm := newTestCommunicator(strings.NewReader("capabilities"), io.Discard)

		res, err := comm.next()
		assert.NoError(t, err)
		assert.Equal(t, []string{"capabilities"}, res)

		_, err = comm.next()
		assert.ErrorIs(t, err, git.ErrEndOfInput)
	})

	t.Run("Empty Request", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)

		// ensure this is irrelevant
		comm.previous = []string{"foo", "bar"}

		_, err := in.WriteString("\n")
		assert.NoError(t, err)

		res, err := comm.next()
		assert.ErrorIs(t, err, git.ErrEmptyRequest)
		assert.Nil(t, res)
	})

	t.Run("End of Input", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)

		_, err := comm.next()
		assert.ErrorIs(t, err, git.ErrEndOfInput)
	})
}

func Test_defaultCommunicator_ParseCapabilitiesRequest(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)
		revcomm := testutils.NewReverseCommunicator(out, in)

		err := revcomm.SendCapabilitiesRequest()
		assert.NoError(t, err)

		req, err := comm.ParseCapabilitiesRequest()
		assert.NoError(t, err)
		assert.NotNil(t, req)
	})

	t.Run("Handle Previous", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)
		comm.previous = []string{string(git.Capabilities)}

		// ensure previous takes precedence
		_, err := in.WriteString("foo bar\n")
		assert.NoError(t, err)

		req, err := comm.ParseCapabilitiesRequest()
		assert.NoError(t, err)
		assert.NotNil(t, req)

		// ensure previous is wiped
		assert.Nil(t, comm.previous)
	})

	t.Run("Invalid Request", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)

		_, err := in.WriteString("foo\n")
		assert.NoError(t, err)

		req, err := comm.ParseCapabilitiesRequest()
		assert.ErrorIs(t, err, git.ErrUnexpectedRequest)
		assert.Nil(t, req)
	})

	t.Run("Empty Request", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)

		_, err := in.WriteString("\n")
		assert.NoError(t, err)

		req, err := comm.ParseCapabilitiesRequest()
		assert.ErrorIs(t, err, git.ErrEmptyRequest)
		assert.Nil(t, req)
	})
}

func Test_defaultCommunicator_ParseOptionRequest(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)
		revcomm := testutils.NewReverseCommunicator(out, in)

		err := revcomm.SendOptionRequest(git.Verbosity, "10")
		assert.NoError(t, err)

		req, err := comm.ParseOptionRequest()
		assert.NoError(t, err)
		assert.Equal(t, &git.OptionRequest{Cmd: git.Options, Opt: git.Verbosity, Value: "10"}, req)
	})

	t.Run("Handle Previous", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)
		comm.previous = []string{string(git.Options), string(git.Verbosity), "10"}

		// ensure previous takes precedence
		_, err := in.WriteString("foo bar\n")
		assert.NoError(t, err)

		req, err := comm.ParseOptionRequest()
		assert.NoError(t, err)
		assert.NotNil(t, req)

		// ensure previous is wiped
		assert.Nil(t, comm.previous)
	})

	t.Run("Invalid Request", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)

		_, err := in.WriteString("connect git-upload-pack foo\n")
		assert.NoError(t, err)

		req, err := comm.ParseOptionRequest()
		assert.ErrorIs(t, err, git.ErrUnexpectedRequest)
		assert.Nil(t, req)
	})

	t.Run("Empty Request", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)

		_, err := in.WriteString("\n")
		assert.NoError(t, err)

		req, err := comm.ParseOptionRequest()
		assert.ErrorIs(t, err, git.ErrEmptyRequest)
		assert.Nil(t, req)
	})
}

func Test_defaultCommunicator_ParseConnectRequest(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)
		revcomm := testutils.NewReverseCommunicator(out, in)

		err := revcomm.SendConnectRequest("git-upload-pack")
		assert.NoError(t, err)

		req, err := comm.ParseConnectRequest()
		assert.NoError(t, err)
		assert.Equal(t, &git.ConnectRequest{Cmd: git.Connect, Service: "git-upload-pack"}, req)
	})

	t.Run("Missing Service", func(t *testing.T) {
		comm := newTestCommunicator(strings.NewReader("connect\n"), io.Discard)

		req, err := comm.ParseConnectRequest()
		assert.ErrorIs(t, err, git.ErrBadRequest)
		assert.Nil(t, req)
	})
}

func Test_defaultCommunicator_Remaining(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// the service protocol follows the connect request immediately
		in := strings.NewReader("connect git-upload-pack\n0032want 1234\n0000")
		comm := newTestCommunicator(in, io.Discard)

		_, err := comm.ParseConnectRequest()
		assert.NoError(t, err)

		rest, err := io.ReadAll(comm.Remaining())
		assert.NoError(t, err)
		assert.Equal(t, "0032want 1234\n0000", string(rest))
	})
}

func Test_defaultCommunicator_WriteCapabilitiesResponse(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)
		revcomm := testutils.NewReverseCommunicator(out, in)

		err := comm.WriteCapabilitiesResponse([]git.Capability{git.CapabilityConnect, git.CapabilityOption})
		assert.NoError(t, err)
		assert.Equal(t, "connect\noption\n\n", out.String())

		caps, err := revcomm.ReceiveCapabilitiesResponse()
		assert.NoError(t, err)
		assert.Equal(t, []git.Capability{git.CapabilityConnect, git.CapabilityOption}, caps)
	})

	t.Run("No Capabilities", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)
		revcomm := testutils.NewReverseCommunicator(out, in)

		err := comm.WriteCapabilitiesResponse([]git.Capability{})
		assert.NoError(t, err)

		_, err = revcomm.ReceiveCapabilitiesResponse()
		assert.Error(t, err)
	})
}

func Test_defaultCommunicator_WriteOptionResponse(t *testing.T) {
	t.Run("Supported Option", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)
		revcomm := testutils.NewReverseCommunicator(out, in)

		err := comm.WriteOptionResponse(true)
		assert.NoError(t, err)

		supported, err := revcomm.ReceiveOptionResponse()
		assert.NoError(t, err)
		assert.True(t, supported)
	})

	t.Run("Unsupported Option", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)
		revcomm := testutils.NewReverseCommunicator(out, in)

		err := comm.WriteOptionResponse(false)
		assert.NoError(t, err)

		supported, err := revcomm.ReceiveOptionResponse()
		assert.NoError(t, err)
		assert.False(t, supported)
	})
}

func Test_defaultCommunicator_WriteConnectResponse(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		in := new(bytes.Buffer)
		out := new(bytes.Buffer)

		comm := newTestCommunicator(in, out)
		revcomm := testutils.NewReverseCommunicator(out, in)

		err := comm.WriteConnectResponse()
		assert.NoError(t, err)

		err = revcomm.ReceiveConnectResponse()
		assert.NoError(t, err)
	})
}
