package handshake

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilities_Supports(t *testing.T) {
	caps := Capabilities("multi_ack no-thin-pack side-band ofs-delta symref=HEAD:refs/heads/main agent=git/2.43.0")

	t.Run("Success", func(t *testing.T) {
		assert.True(t, caps.Supports("multi_ack"))
		assert.True(t, caps.Supports("side-band"))
		assert.True(t, caps.Supports("agent"))
		assert.True(t, caps.Supports("symref"))
	})

	t.Run("Not Supported", func(t *testing.T) {
		assert.False(t, caps.Supports("side-band-64k"))
		assert.False(t, caps.Supports("shallow"))
	})

	t.Run("Embedded in Another Token", func(t *testing.T) {
		assert.False(t, caps.Supports("thin-pack"))
		assert.False(t, caps.Supports("ack"))
		assert.False(t, caps.Supports("delta"))
	})

	t.Run("Later Real Occurrence", func(t *testing.T) {
		assert.True(t, Capabilities("no-thin-pack thin-pack").Supports("thin-pack"))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.False(t, Capabilities("").Supports("thin-pack"))
		assert.False(t, caps.Supports(""))
	})
}

func TestCapabilities_Lookup(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		caps := Capabilities("multi_ack agent=git/2.43.0 object-format=sha1")

		f, ok := caps.Lookup("agent")
		assert.True(t, ok)
		assert.Equal(t, Feature{Name: "agent", Value: "git/2.43.0", HasValue: true}, f)

		f, ok = caps.Lookup("object-format")
		assert.True(t, ok)
		assert.Equal(t, "sha1", f.Value)
	})

	t.Run("No Value", func(t *testing.T) {
		f, ok := Capabilities("multi_ack thin-pack").Lookup("thin-pack")
		assert.True(t, ok)
		assert.Equal(t, Feature{Name: "thin-pack"}, f)
	})

	t.Run("Empty Value", func(t *testing.T) {
		f, ok := Capabilities("foo= bar").Lookup("foo")
		assert.True(t, ok)
		assert.True(t, f.HasValue)
		assert.Empty(t, f.Value)
	})

	t.Run("Value Ends at Newline", func(t *testing.T) {
		f, ok := Capabilities("agent=git/2.43.0\n").Lookup("agent")
		assert.True(t, ok)
		assert.Equal(t, "git/2.43.0", f.Value)
	})

	t.Run("First Occurrence", func(t *testing.T) {
		f, ok := Capabilities("symref=HEAD:refs/heads/a symref=HEAD:refs/heads/b").Lookup("symref")
		assert.True(t, ok)
		assert.Equal(t, "HEAD:refs/heads/a", f.Value)
	})

	t.Run("Not Found", func(t *testing.T) {
		_, ok := Capabilities("multi_ack").Lookup("agent")
		assert.False(t, ok)
	})
}

func TestCapabilities_All(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		caps := Capabilities("symref=HEAD:refs/heads/main thin-pack symref=refs/remotes/origin/HEAD:refs/remotes/origin/main")

		values := make([]string, 0, 2)
		for f := range caps.All("symref") {
			values = append(values, f.Value)
		}
		assert.Equal(t, []string{"HEAD:refs/heads/main", "refs/remotes/origin/HEAD:refs/remotes/origin/main"}, values)
	})

	t.Run("Mixed Forms", func(t *testing.T) {
		caps := Capabilities("foo foo=1 xfoo foo=")

		feats := slices.Collect(caps.All("foo"))
		assert.Equal(t, []Feature{
			{Name: "foo"},
			{Name: "foo", Value: "1", HasValue: true},
			{Name: "foo", HasValue: true},
		}, feats)
	})

	t.Run("Stop Early", func(t *testing.T) {
		caps := Capabilities("a=1 a=2 a=3")

		var n int
		for range caps.All("a") {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})

	t.Run("None", func(t *testing.T) {
		assert.Empty(t, slices.Collect(Capabilities("thin-pack").All("symref")))
	})
}

func TestParseFeatureRequest(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		assert.True(t, ParseFeatureRequest("want side-band-64k ofs-delta", "ofs-delta"))
		assert.True(t, ParseFeatureRequest("agent=git/2.43.0", "agent"))
	})

	t.Run("Not Requested", func(t *testing.T) {
		assert.False(t, ParseFeatureRequest("side-band-64k", "side-band"))
	})
}
