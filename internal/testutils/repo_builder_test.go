package testutils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/pktline"
	"github.com/stretchr/testify/assert"
)

func TestNewRepoBuilder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		dir := t.TempDir()
		rb, err := NewRepoBuilder(dir)
		assert.NoError(t, err)
		assert.NotNil(t, rb)
		assert.NotNil(t, rb.Repo())

		_, statErr := os.Stat(filepath.Join(dir, ".git"))
		assert.NoError(t, statErr)
	})

	// [git.PlainInit] succeeds if dir dne
}

func TestRepoBuilder_Commit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		rb, err := NewRepoBuilder(t.TempDir())
		assert.NoError(t, err)

		first, err := rb.Commit("first")
		assert.NoError(t, err)
		assert.False(t, first.IsZero())

		second, err := rb.Commit("second")
		assert.NoError(t, err)
		assert.NotEqual(t, first, second)

		head, err := rb.Repo().Head()
		assert.NoError(t, err)
		assert.Equal(t, second, head.Hash())
	})
}

func TestRepoBuilder_CreateBranch(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		rb, err := NewRepoBuilder(t.TempDir())
		assert.NoError(t, err)

		hash, err := rb.Commit("first")
		assert.NoError(t, err)

		ref, err := rb.CreateBranch("feature", hash)
		assert.NoError(t, err)
		assert.Equal(t, plumbing.NewBranchReferenceName("feature"), ref.Name())

		got, err := rb.Repo().Reference(ref.Name(), false)
		assert.NoError(t, err)
		assert.Equal(t, hash, got.Hash())
	})
}

func TestRepoBuilder_CommitWithParents(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		rb, err := NewRepoBuilder(t.TempDir())
		assert.NoError(t, err)

		root, err := rb.CommitWithParents("root")
		assert.NoError(t, err)
		child, err := rb.CommitWithParents("child", root)
		assert.NoError(t, err)

		commit, err := rb.Repo().CommitObject(child)
		assert.NoError(t, err)
		assert.Equal(t, "child", commit.Message)
		assert.Equal(t, []plumbing.Hash{root}, commit.ParentHashes)

		// no reference moved
		_, err = rb.Repo().Head()
		assert.ErrorIs(t, err, plumbing.ErrReferenceNotFound)
	})
}

func TestRepoBuilder_CreateTag(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		rb, err := NewRepoBuilder(t.TempDir())
		assert.NoError(t, err)

		hash, err := rb.Commit("first")
		assert.NoError(t, err)

		ref, err := rb.CreateTag("v1.0.0", hash)
		assert.NoError(t, err)
		assert.Equal(t, plumbing.NewTagReferenceName("v1.0.0"), ref.Name())

		got, err := rb.Repo().Reference(ref.Name(), false)
		assert.NoError(t, err)
		assert.Equal(t, hash, got.Hash())
	})
}

func TestRepoBuilder_Advertise(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		rb, err := NewRepoBuilder(t.TempDir())
		assert.NoError(t, err)

		hash, err := rb.Commit("first")
		assert.NoError(t, err)
		_, err = rb.CreateTag("v1", hash)
		assert.NoError(t, err)

		buf := new(bytes.Buffer)
		err = rb.Advertise(buf, "multi_ack")
		assert.NoError(t, err)

		var lines []string
		scanner := pktline.NewScanner(buf)
		for scanner.Scan() {
			lines = append(lines, string(scanner.Bytes()))
		}
		assert.NoError(t, scanner.Err())

		assert.Equal(t, []string{
			hash.String() + " HEAD\x00multi_ack symref=HEAD:refs/heads/master\n",
			hash.String() + " refs/heads/master\n",
			hash.String() + " refs/tags/v1\n",
			"",
		}, lines)
	})

	t.Run("Unborn HEAD", func(t *testing.T) {
		rb, err := NewRepoBuilder(t.TempDir())
		assert.NoError(t, err)

		buf := new(bytes.Buffer)
		err = rb.Advertise(buf, "")
		assert.NoError(t, err)
		assert.Equal(t, "0000", buf.String())
	})
}
