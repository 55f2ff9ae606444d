package handshake

import (
	"cmp"
	"slices"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
)

type symref struct {
	name   string
	target string
}

// parseSymrefs collects every well formed "symref=<name>:<target>" entry in
// caps, sorted by name. Malformed entries are dropped.
func parseSymrefs(caps Capabilities) []symref {
	var res []symref
	for f := range caps.All("symref") {
		if f.Value == "" {
			continue
		}
		name, target, ok := strings.Cut(f.Value, ":")
		if !ok {
			continue
		}
		if CheckRefnameFormat(name, RefnameAllowOneLevel) != nil ||
			CheckRefnameFormat(target, RefnameAllowOneLevel) != nil {
			continue
		}
		res = append(res, symref{name: name, target: target})
	}

	slices.SortStableFunc(res, func(a, b symref) int {
		return cmp.Compare(a.name, b.name)
	})
	return res
}

// AnnotateSymrefs sets [Ref.Symref] on every reference named by a "symref"
// capability in caps. References without a matching entry are left untouched.
func AnnotateSymrefs(refs []Ref, caps Capabilities) {
	table := parseSymrefs(caps)
	if len(table) == 0 {
		return
	}

	for i := range refs {
		j, ok := slices.BinarySearchFunc(table, string(refs[i].Name), func(e symref, name string) int {
			return cmp.Compare(e.name, name)
		})
		if !ok {
			continue
		}
		refs[i].Symref = plumbing.ReferenceName(table[j].target)
	}
}
