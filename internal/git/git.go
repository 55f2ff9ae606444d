// Package git provides an interface over the go-git repository type used to
// inspect local repositories.
package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// Repository represents a local git repository.
//
// An interface for the [gogit.Repository] concrete type.
type Repository interface {
	// CommitObject return a Commit with the given hash. If not found
	// plumbing.ErrObjectNotFound is returned.
	CommitObject(h plumbing.Hash) (*object.Commit, error)

	// Head returns the reference where HEAD is pointing to.
	Head() (*plumbing.Reference, error)

	// Reference returns the reference for a given reference name. If resolved is
	// true, any symbolic reference will be resolved.
	Reference(name plumbing.ReferenceName, resolved bool) (*plumbing.Reference, error)

	// References returns an unsorted ReferenceIter for all references.
	References() (storer.ReferenceIter, error)
}

// Repo implements [Repository].
type Repo struct {
	*gogit.Repository
}

// NewRepository wraps a [gogit.Repository].
func NewRepository(repo *gogit.Repository) Repository {
	return &Repo{repo}
}

// Open opens the repository containing dir, searching parent directories
// for a ".git" directory. A bare repository must be named exactly.
func Open(dir string) (Repository, error) {
	r, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening repository %s: %w", dir, err)
	}
	return NewRepository(r), nil
}
