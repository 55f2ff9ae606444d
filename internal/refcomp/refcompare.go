// Package refcomp provides utilities for comparing local and remote git references.
package refcomp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"

	"github.com/act3-ai/gitconnect/internal/git"
)

// Status represents the result of a reference comparison.
type Status uint8

const (
	// StatusUpToDate indicates both references point to the same object.
	StatusUpToDate Status = 1 << iota
	// StatusAhead indicates the local commit descends from the remote one,
	// pushing is a fast forward.
	StatusAhead
	// StatusBehind indicates the remote commit descends from the local one,
	// fetching is a fast forward.
	StatusBehind
	// StatusDiverged indicates neither commit descends from the other.
	StatusDiverged
	// StatusNoLocal indicates the local reference does not exist.
	StatusNoLocal
	// StatusStale indicates the remote object is missing from the local
	// repository, it must be fetched before comparing.
	StatusStale
)

var statusNames = []struct {
	s    Status
	name string
}{
	{StatusUpToDate, "up to date"},
	{StatusAhead, "ahead"},
	{StatusBehind, "behind"},
	{StatusDiverged, "diverged"},
	{StatusNoLocal, "new"},
	{StatusStale, "stale"},
}

func (s Status) String() string {
	var names []string
	for _, sn := range statusNames {
		if s&sn.s != 0 {
			names = append(names, sn.name)
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
	return strings.Join(names, "|")
}

// RefComparer provides utilities for comparing local and remote references.
type RefComparer interface {
	// Compare resolves the status of a remote reference against a local one.
	Compare(ctx context.Context, localName plumbing.ReferenceName, remote *plumbing.Reference) (RefPair, error)
}

// refCompareCached implements [RefComparer].
type refCompareCached struct {
	local git.Repository

	refs map[plumbing.ReferenceName]RefPair // key is remote ref name
}

// RefPair represents the state of a local and remote reference and their differences.
type RefPair struct {
	// Local is the local Git reference resolved from a [plumbing.ReferenceName],
	// nil if it does not exist.
	Local *plumbing.Reference
	// Remote is the advertised Git reference.
	Remote *plumbing.Reference
	// Status is the result of comparing [RefPair.Local] to [RefPair.Remote].
	Status
}

// NewCachedRefComparer initializes a RefComparer that caches all ref comparisons.
func NewCachedRefComparer(local git.Repository) RefComparer {
	return &refCompareCached{
		local: local,
		refs:  make(map[plumbing.ReferenceName]RefPair, 0),
	}
}

// Compare compares a local reference, by name, with an advertised remote reference.
func (rc *refCompareCached) Compare(ctx context.Context, localName plumbing.ReferenceName, remote *plumbing.Reference) (RefPair, error) {
	rp, ok := rc.refs[remote.Name()]
	if ok {
		return rp, nil
	}

	localRef, err := rc.local.Reference(localName, true)
	switch {
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		localRef = nil
	case err != nil:
		return RefPair{}, fmt.Errorf("resolving hash of local reference %s: %w", localName.String(), err)
	default:
		slog.DebugContext(ctx, "resolved local reference", "ref", localName.String(), "hash", localRef.Hash().String())
	}

	rp, err = rc.compare(localRef, remote)
	if err != nil {
		return RefPair{}, fmt.Errorf("comparing local and remote refs: %w", err)
	}
	rc.refs[remote.Name()] = rp

	return rp, nil
}

func (rc *refCompareCached) compare(localRef, remoteRef *plumbing.Reference) (RefPair, error) {
	rp := RefPair{
		Local:  localRef,
		Remote: remoteRef,
	}

	switch {
	case localRef == nil:
		rp.Status = StatusNoLocal
		return rp, nil
	case localRef.Hash() == remoteRef.Hash():
		rp.Status = StatusUpToDate
		return rp, nil
	}

	remoteCommit, err := rc.local.CommitObject(remoteRef.Hash())
	switch {
	case errors.Is(err, plumbing.ErrObjectNotFound):
		rp.Status = StatusStale
		return rp, nil
	case err != nil:
		return RefPair{}, fmt.Errorf("resolving commit object from hash for remote ref %s: %w", remoteRef.Name().String(), err)
	}

	localCommit, err := rc.local.CommitObject(localRef.Hash())
	if err != nil {
		return RefPair{}, fmt.Errorf("resolving commit object %s from hash for local ref %s: %w", localRef.Hash().String(), localRef.Name().String(), err)
	}

	ahead, err := remoteCommit.IsAncestor(localCommit)
	if err != nil {
		return RefPair{}, fmt.Errorf("resolving remote commit ancestor status of local: %w", err)
	}
	if ahead {
		rp.Status = StatusAhead
		return rp, nil
	}

	behind, err := localCommit.IsAncestor(remoteCommit)
	if err != nil {
		return RefPair{}, fmt.Errorf("resolving local commit ancestor status of remote: %w", err)
	}
	if behind {
		rp.Status = StatusBehind
	} else {
		rp.Status = StatusDiverged
	}

	return rp, nil
}
