package uritemplate

import (
	"net/url"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// shouldEscape reports whether byte c must be percent-encoded under
// the given policy. The unreserved set (RFC 3986 section 2.3) always
// passes; reserved and fragment operators additionally pass the
// reserved set (section 2.2). Everything else is encoded, including
// '%' itself, so literal percent signs in values double-encode.
func shouldEscape(c byte, allowReserved bool) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return false
	}
	switch c {
	case '-', '.', '_', '~':
		return false
	}
	if allowReserved {
		switch c {
		case ':', '/', '?', '#', '[', ']', '@', '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
			return false
		}
	}
	return true
}

// escape percent-encodes every byte of s outside the operator's
// allowed set. Multi-byte UTF-8 sequences encode byte by byte, which
// yields the standard %XX%XX form for non-ASCII characters.
func escape(s string, allowReserved bool) string {
	hexCount := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i], allowReserved) {
			hexCount++
		}
	}
	if hexCount == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*hexCount)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c, allowReserved) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// unescape reverses percent-encoding for extracted values. Captured
// text that is not valid percent-encoding is returned as-is rather
// than failing the whole extraction.
func unescape(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

// truncate returns the first n characters of s, counting runes rather
// than bytes so multi-byte characters are never split.
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
