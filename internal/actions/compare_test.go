package actions

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"

	"github.com/act3-ai/gitconnect/internal/testutils"
)

func TestCompare_Run(t *testing.T) {
	// setup builds a local repository with main at tip and returns an
	// advertisement file listing remote references.
	setup := func(t *testing.T, remoteRefs func(base, tip plumbing.Hash, adv *testutils.Advertiser)) (string, string, *testutils.RepoBuilder, plumbing.Hash, plumbing.Hash) {
		t.Helper()

		dir := t.TempDir()
		rb, err := testutils.NewRepoBuilder(dir)
		assert.NoError(t, err)
		base, err := rb.CommitWithParents("base")
		assert.NoError(t, err)
		tip, err := rb.CommitWithParents("tip", base)
		assert.NoError(t, err)
		_, err = rb.CreateBranch("main", tip)
		assert.NoError(t, err)

		buf := new(bytes.Buffer)
		adv := testutils.NewAdvertiser(buf, "multi_ack")
		remoteRefs(base, tip, adv)
		assert.NoError(t, adv.Flush())

		remote := filepath.Join(t.TempDir(), "advertisement")
		assert.NoError(t, os.WriteFile(remote, buf.Bytes(), 0o644))
		return dir, remote, rb, base, tip
	}

	t.Run("Success", func(t *testing.T) {
		dir, remote, rb, _, tip := setup(t, func(base, tip plumbing.Hash, adv *testutils.Advertiser) {
			assert.NoError(t, adv.Ref(tip, "HEAD"))
			assert.NoError(t, adv.Ref(tip, "refs/heads/main"))
			assert.NoError(t, adv.Ref(tip, "refs/heads/feature"))
			assert.NoError(t, adv.Ref(base, "refs/tags/v1"))
			assert.NoError(t, adv.Ref(base, "refs/tags/v1^{}"))
		})
		_, err := rb.CreateTag("v1", tip)
		assert.NoError(t, err)

		out := new(bytes.Buffer)
		action := NewCompare(out, io.Discard, dir, nil)
		action.UploadPack = "cat"

		err = action.Run(t.Context(), remote)
		assert.NoError(t, err)
		assert.Equal(t, "up to date\trefs/heads/main\n"+
			"new\trefs/heads/feature\n"+
			"ahead\trefs/tags/v1\n", out.String())
	})

	t.Run("Tracking", func(t *testing.T) {
		dir, remote, rb, base, _ := setup(t, func(_, tip plumbing.Hash, adv *testutils.Advertiser) {
			assert.NoError(t, adv.Ref(tip, "refs/heads/main"))
		})
		err := rb.Repo().Storer.SetReference(plumbing.NewHashReference(plumbing.NewRemoteReferenceName("origin", "main"), base))
		assert.NoError(t, err)

		out := new(bytes.Buffer)
		action := NewCompare(out, io.Discard, dir, nil)
		action.UploadPack = "cat"
		action.Tracking = "origin"

		err = action.Run(t.Context(), remote)
		assert.NoError(t, err)
		assert.Equal(t, "behind\trefs/heads/main\n", out.String())
	})

	t.Run("Not a Git Repository", func(t *testing.T) {
		_, remote, _, _, _ := setup(t, func(_, tip plumbing.Hash, adv *testutils.Advertiser) {
			assert.NoError(t, adv.Ref(tip, "refs/heads/main"))
		})

		action := NewCompare(new(bytes.Buffer), io.Discard, t.TempDir(), nil)
		action.UploadPack = "cat"

		err := action.Run(t.Context(), remote)
		assert.Error(t, err)
	})
}

func TestCompare_localName(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		action := &Compare{}
		assert.Equal(t, plumbing.ReferenceName("refs/heads/main"), action.localName("refs/heads/main"))

		action.Tracking = "origin"
		assert.Equal(t, plumbing.ReferenceName("refs/remotes/origin/main"), action.localName("refs/heads/main"))
		assert.Equal(t, plumbing.ReferenceName("refs/tags/v1"), action.localName("refs/tags/v1"))
	})
}
