package transport

import "strings"

// Quote single-quotes s for a POSIX shell. Single quotes and exclamation
// marks are closed out of the quoted string and backslash escaped, so
//
//	name's!
//
// becomes
//
//	'name'\''s'\!''
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)

	b.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\'', '!':
			b.WriteString(`'\`)
			b.WriteByte(c)
			b.WriteByte('\'')
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('\'')

	return b.String()
}
