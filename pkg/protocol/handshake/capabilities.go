package handshake

import (
	"iter"
	"strings"
)

// Capabilities is the space separated capability list sent by a server on
// the first advertised line, e.g. "multi_ack thin-pack symref=HEAD:refs/heads/main".
type Capabilities string

// Feature is a single occurrence of a named feature in a capability list.
type Feature struct {
	// Name is the feature name.
	Name string
	// Value is the text following "=", up to the next whitespace.
	Value string
	// HasValue is true if the feature was written as "name=value", even if
	// value is empty.
	HasValue bool
}

// Supports returns true if the capability list contains the feature name.
func (c Capabilities) Supports(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Lookup returns the first occurrence of the feature name.
func (c Capabilities) Lookup(name string) (Feature, bool) {
	f, _, ok := findFeature(string(c), name, 0)
	return f, ok
}

// All iterates over every occurrence of the feature name, in order.
func (c Capabilities) All(name string) iter.Seq[Feature] {
	return func(yield func(Feature) bool) {
		pos := 0
		for {
			f, next, ok := findFeature(string(c), name, pos)
			if !ok {
				return
			}
			if !yield(f) {
				return
			}
			pos = next
		}
	}
}

// String returns the raw capability list.
func (c Capabilities) String() string {
	return string(c)
}

// ParseFeatureRequest returns true if the whitespace separated list contains
// the feature name, with or without a value.
func ParseFeatureRequest(list, name string) bool {
	return Capabilities(list).Supports(name)
}

// findFeature searches list[start:] for name. A match only counts when it
// starts a token and is followed by the end of the list, whitespace or "=".
// On a false match the search resumes one byte past its start, so a
// feature embedded in another token ("thin-pack" in "no-thin-pack") is
// skipped without missing a later real occurrence.
//
// next is the offset to resume from to find the following occurrence.
func findFeature(list, name string, start int) (f Feature, next int, ok bool) {
	if name == "" {
		return Feature{}, 0, false
	}

	for start < len(list) {
		i := strings.Index(list[start:], name)
		if i < 0 {
			return Feature{}, 0, false
		}
		found := start + i

		if found == start || isSpace(list[found-1]) {
			end := found + len(name)
			switch {
			case end == len(list) || isSpace(list[end]):
				return Feature{Name: name}, end + 1, true
			case list[end] == '=':
				vstart := end + 1
				vend := vstart
				for vend < len(list) && !isValueTerminator(list[vend]) {
					vend++
				}
				return Feature{Name: name, Value: list[vstart:vend], HasValue: true}, vstart + 1, true
			}
		}
		start = found + 1
	}

	return Feature{}, 0, false
}

// isSpace matches the C locale isspace.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func isValueTerminator(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n'
}
