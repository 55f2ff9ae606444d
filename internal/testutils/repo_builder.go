// Package testutils provides utility functions for building testdata.
package testutils

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// RepoBuilder builds a git repository whose references can be advertised
// like a server would.
type RepoBuilder struct {
	repo *git.Repository
}

// NewRepoBuilder initializes a RepoBuilder.
func NewRepoBuilder(dir string) (*RepoBuilder, error) {
	// will create if dir dne
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return nil, fmt.Errorf("initializing plain git repository: %w", err)
	}

	return &RepoBuilder{repo: repo}, nil
}

// Repo returns the underlying git repository.
func (b *RepoBuilder) Repo() *git.Repository {
	return b.repo
}

// Commit creates an empty commit on the current branch.
func (b *RepoBuilder) Commit(msg string) (plumbing.Hash, error) {
	wt, err := b.repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("getting repository worktree: %w", err)
	}

	hash, err := wt.Commit(msg, &git.CommitOptions{
		AllowEmptyCommits: true,
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  time.Unix(1700000000, 0),
		},
	})
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("committing: %w", err)
	}

	return hash, nil
}

// CommitWithParents stores an empty commit with the given parents without
// moving any reference.
func (b *RepoBuilder) CommitWithParents(msg string, parents ...plumbing.Hash) (plumbing.Hash, error) {
	treeObj := b.repo.Storer.NewEncodedObject()
	if err := (&object.Tree{}).Encode(treeObj); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("encoding tree: %w", err)
	}
	treeHash, err := b.repo.Storer.SetEncodedObject(treeObj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("storing tree: %w", err)
	}

	sig := object.Signature{
		Name:  "Test User",
		Email: "test@example.com",
		When:  time.Unix(1700000000, 0),
	}
	commit := &object.Commit{
		Author:       sig,
		Committer:    sig,
		Message:      msg,
		TreeHash:     treeHash,
		ParentHashes: parents,
	}
	commitObj := b.repo.Storer.NewEncodedObject()
	if err := commit.Encode(commitObj); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("encoding commit: %w", err)
	}
	hash, err := b.repo.Storer.SetEncodedObject(commitObj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("storing commit: %w", err)
	}
	return hash, nil
}

// CreateBranch creates a new branch.
func (b *RepoBuilder) CreateBranch(branchName string, commit plumbing.Hash) (*plumbing.Reference, error) {
	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(branchName), commit)
	if err := b.repo.Storer.SetReference(ref); err != nil {
		return nil, fmt.Errorf("creating branch reference: %w", err)
	}
	return ref, nil
}

// CreateTag creates a lightweight tag.
func (b *RepoBuilder) CreateTag(tagName string, commit plumbing.Hash) (*plumbing.Reference, error) {
	ref := plumbing.NewHashReference(plumbing.NewTagReferenceName(tagName), commit)
	if err := b.repo.Storer.SetReference(ref); err != nil {
		return nil, fmt.Errorf("creating tag reference: %w", err)
	}
	return ref, nil
}

// Advertise writes the repository's references as upload-pack would: HEAD
// first, then every other hash reference sorted by name. A "symref" entry
// for HEAD is appended to caps.
func (b *RepoBuilder) Advertise(w io.Writer, caps string) error {
	head, err := b.repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return fmt.Errorf("resolving HEAD: %w", err)
	}

	var headHash plumbing.Hash
	if head.Type() == plumbing.SymbolicReference {
		target, err := b.repo.Storer.Reference(head.Target())
		if err == nil {
			headHash = target.Hash()
			caps = strings.TrimSpace(fmt.Sprintf("%s symref=HEAD:%s", caps, head.Target()))
		}
	}

	iter, err := b.repo.References()
	if err != nil {
		return fmt.Errorf("listing references: %w", err)
	}
	var refs []*plumbing.Reference
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() == plumbing.HashReference && ref.Name() != plumbing.HEAD {
			refs = append(refs, ref)
		}
		return nil
	})
	if err != nil && err != storer.ErrStop {
		return fmt.Errorf("iterating references: %w", err)
	}
	slices.SortFunc(refs, func(a, b *plumbing.Reference) int {
		return cmp.Compare(a.Name(), b.Name())
	})

	adv := NewAdvertiser(w, caps)
	if !headHash.IsZero() {
		if err := adv.Ref(headHash, plumbing.HEAD.String()); err != nil {
			return err
		}
	}
	for _, ref := range refs {
		if err := adv.Ref(ref.Hash(), ref.Name().String()); err != nil {
			return err
		}
	}
	return adv.Flush()
}
