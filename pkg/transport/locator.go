package transport

import (
	"fmt"
	"strings"
)

// Kind is the transport used to reach a repository.
type Kind uint8

// Transport kinds.
const (
	// KindLocal runs the service program on this machine.
	KindLocal Kind = iota + 1
	// KindShellExec runs the service program through a remote shell.
	KindShellExec
	// KindSocket talks to a git daemon over TCP.
	KindSocket
)

// String returns the protocol name of k.
func (k Kind) String() string {
	switch k {
	case KindLocal:
		return "local"
	case KindShellExec:
		return "ssh"
	case KindSocket:
		return "git"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Target is a resolved repository locator.
type Target struct {
	Kind Kind `json:"kind" yaml:"kind"`
	// Host is empty for KindLocal. For KindSocket it is kept verbatim,
	// including brackets and port, as it is sent to the daemon.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`
	// Port is only set for KindShellExec with an explicit scheme.
	Port string `json:"port,omitempty" yaml:"port,omitempty"`
	// Path is never empty.
	Path string `json:"path" yaml:"path"`
}

// Resolve parses a repository locator into a [Target].
func Resolve(locator string) (*Target, error) {
	loc := locator
	if isURL(locator) {
		loc = decodeURL(locator)
	}

	t := &Target{Kind: KindLocal}
	rest, sep, scheme := loc, byte(':'), false
	if name, after, ok := strings.Cut(loc, "://"); ok {
		kind, err := protocolKind(name)
		if err != nil {
			return nil, err
		}
		t.Kind = kind
		rest, sep, scheme = after, '/', true
	}

	// IPv6 literals are left alone for git://, the daemon connection
	// unwraps them itself.
	inner, tail, bracketed := splitBracketed(rest, t.Kind != KindSocket)

	i := strings.IndexByte(tail, sep)
	var host, path string
	switch {
	case scheme && i < 0:
		if t.Kind != KindLocal {
			return nil, fmt.Errorf("%w in %q", ErrMissingPath, locator)
		}
		path = tail
	case scheme:
		host = tail[:i]
		path = tail[i:]
	case i >= 0 && (bracketed || !strings.Contains(tail[:i], "/")):
		t.Kind = KindShellExec
		host = tail[:i]
		path = tail[i+1:]
	default:
		// a '/' before the first ':', or no ':' at all
		path = loc
	}

	if path == "" {
		return nil, fmt.Errorf("%w in %q", ErrMissingPath, locator)
	}

	if t.Kind == KindLocal {
		t.Path = path
		return t, nil
	}

	// ssh://host/~user/repo names a path relative to a home directory
	if t.Kind == KindShellExec && (scheme || bracketed) && strings.HasPrefix(path, "/~") {
		path = path[1:]
	}

	if t.Kind == KindShellExec && scheme {
		host, t.Port = splitPort(host)
	}

	if bracketed && t.Kind != KindSocket {
		// anything between ']' and the path only carries the port
		host = inner
	} else {
		host = inner + host
	}
	if host == "" {
		return nil, fmt.Errorf("%w in %q", ErrMissingHost, locator)
	}
	t.Host = host
	t.Path = path

	return t, nil
}

// protocolKind maps a locator scheme to a transport.
func protocolKind(scheme string) (Kind, error) {
	switch scheme {
	case "ssh", "git+ssh", "ssh+git":
		return KindShellExec, nil
	case "git":
		return KindSocket, nil
	case "file":
		return KindLocal, nil
	default:
		return 0, fmt.Errorf("%w '%s'", ErrUnsupportedProtocol, scheme)
	}
}

// splitBracketed splits a leading "[...]" host from s. With strip the
// brackets are removed from host. tail is the remainder of s after the
// closing bracket, or all of s if there is no bracketed host.
func splitBracketed(s string, strip bool) (host, tail string, ok bool) {
	if !strings.HasPrefix(s, "[") {
		return "", s, false
	}
	end := strings.IndexByte(s[1:], ']')
	if end < 0 {
		return "", s, false
	}
	end++

	if strip {
		return s[1:end], s[end+1:], true
	}
	return s[:end+1], s[end+1:], true
}

// splitPort extracts an explicit ":<port>" from host. Anything but 1 to 5
// decimal digits with a value up to 65535 is not a port and is left in place.
func splitPort(host string) (string, string) {
	i := strings.IndexByte(host, ':')
	if i < 0 || !validPort(host[i+1:]) {
		return host, ""
	}
	return host[:i], host[i+1:]
}

func validPort(s string) bool {
	if s == "" || len(s) > 5 {
		return false
	}
	n := 0
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return false
		}
		n = n*10 + int(c-'0')
	}
	return n <= 65535
}

// isURL reports whether s starts with "<scheme>://", where scheme begins
// with a letter or digit followed by letters, digits, '+', '-' or '.'.
func isURL(s string) bool {
	slash := strings.IndexByte(s, '/')
	if slash < 2 || s[slash-1] != ':' || slash+1 >= len(s) || s[slash+1] != '/' {
		return false
	}
	for i, c := range []byte(s[:slash-1]) {
		if !isSchemeChar(c, i == 0) {
			return false
		}
	}
	return true
}

func isSchemeChar(c byte, first bool) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case first:
		return false
	default:
		return c == '+' || c == '-' || c == '.'
	}
}

// decodeURL percent-decodes s. Malformed escapes and "%00" are copied
// through as is.
func decodeURL(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			hi, okHi := unhex(s[i+1])
			lo, okLo := unhex(s[i+2])
			if c := hi<<4 | lo; okHi && okLo && c != 0 {
				b.WriteByte(c)
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
