package handshake

import (
	"fmt"
	"strings"
)

// RefnameFlags alters the rules applied by [CheckRefnameFormat].
type RefnameFlags uint8

const (
	// RefnameAllowOneLevel accepts names with a single component, e.g. "HEAD".
	RefnameAllowOneLevel RefnameFlags = 1 << iota
	// RefnameRefspecPattern accepts a single "*" as a full component.
	RefnameRefspecPattern
)

// CheckRefnameFormat validates a reference name according to the
// git-check-ref-format(1) rules.
//
// See https://git-scm.com/docs/git-check-ref-format.
func CheckRefnameFormat(name string, flags RefnameFlags) error {
	if name == "@" {
		return fmt.Errorf("invalid refname %q", name)
	}

	var count int
	rest := name
	for {
		n := checkRefnameComponent(rest)
		if n <= 0 {
			if flags&RefnameRefspecPattern != 0 && (rest == "*" || strings.HasPrefix(rest, "*/")) {
				flags &^= RefnameRefspecPattern
				n = 1
			} else {
				return fmt.Errorf("invalid refname %q", name)
			}
		}
		count++
		if n == len(rest) {
			break
		}
		rest = rest[n+1:]
	}

	if strings.HasSuffix(name, ".") {
		return fmt.Errorf("invalid refname %q: ends with '.'", name)
	}
	if flags&RefnameAllowOneLevel == 0 && count < 2 {
		return fmt.Errorf("invalid refname %q: only one component", name)
	}
	return nil
}

// checkRefnameComponent returns the length of the component at the start of
// s, or -1 if it is invalid. A zero length component is reported as 0.
func checkRefnameComponent(s string) int {
	var last byte
	i := 0
	for ; i < len(s) && s[i] != '/'; i++ {
		ch := s[i]
		if badRefChar(ch) {
			return -1
		}
		if last == '.' && ch == '.' {
			return -1
		}
		if last == '@' && ch == '{' {
			return -1
		}
		last = ch
	}
	if i == 0 {
		return 0
	}
	if s[0] == '.' {
		return -1
	}
	if strings.HasSuffix(s[:i], ".lock") {
		return -1
	}
	return i
}

func badRefChar(ch byte) bool {
	if ch <= ' ' || ch == 0x7f {
		return true
	}
	switch ch {
	case '~', '^', ':', '\\', '?', '[', '*':
		return true
	}
	return false
}
