package validation

// IsURLSafe reports whether s survives raw percent-encoding unchanged, that is
// every byte is an RFC 3986 unreserved character. The empty string is safe.
func IsURLSafe(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			return false
		}
	}
	return true
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	default:
		return false
	}
}
