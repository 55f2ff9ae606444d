package handshake

import (
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
)

// Ref is a single advertised reference.
type Ref struct {
	// Name is the full reference name, e.g. "refs/heads/main" or "HEAD".
	Name plumbing.ReferenceName
	// Hash is the object the reference points to.
	Hash plumbing.Hash
	// Symref is the target of a symbolic reference, as announced by the
	// "symref" capability. Empty if the reference is not symbolic.
	Symref plumbing.ReferenceName
}

// Reference converts r into a go-git reference. Symbolic references become
// [plumbing.SymbolicReference]s.
func (r Ref) Reference() *plumbing.Reference {
	if r.Symref != "" {
		return plumbing.NewSymbolicReference(r.Name, r.Symref)
	}
	return plumbing.NewHashReference(r.Name, r.Hash)
}

// RefFilter selects which advertised references are kept. The zero value
// keeps everything.
type RefFilter uint8

// FilterAll keeps every advertised reference.
const FilterAll RefFilter = 0

const (
	// FilterNormal drops names that fail refname validation, such as peeled
	// tags ("refs/tags/v1^{}").
	FilterNormal RefFilter = 1 << iota
	// FilterHeads keeps branches, "refs/heads/".
	FilterHeads
	// FilterTags keeps tags, "refs/tags/".
	FilterTags
)

// CheckRefType returns true if a reference name passes filter.
func CheckRefType(name plumbing.ReferenceName, filter RefFilter) bool {
	if filter == FilterAll {
		return true
	}

	rest, ok := strings.CutPrefix(string(name), "refs/")
	if !ok {
		return false
	}

	if filter&FilterNormal != 0 && CheckRefnameFormat(rest, 0) != nil {
		return false
	}
	if filter&FilterHeads != 0 && strings.HasPrefix(rest, "heads/") {
		return true
	}
	if filter&FilterTags != 0 && strings.HasPrefix(rest, "tags/") {
		return true
	}

	// no type restriction beyond well-formedness
	return filter&^FilterNormal == 0
}

// FilterRefs returns the references in refs that pass filter, preserving order.
func FilterRefs(refs []Ref, filter RefFilter) []Ref {
	res := make([]Ref, 0, len(refs))
	for _, r := range refs {
		if CheckRefType(r.Name, filter) {
			res = append(res, r)
		}
	}
	return res
}
