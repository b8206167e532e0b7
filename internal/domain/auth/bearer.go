package auth

import "strings"

// ExtractBearer parses an "Authorization: Bearer <token>" header value.
// The scheme comparison is case-insensitive; the token is returned verbatim.
// Pure parsing; a missing or malformed header returns false.
func ExtractBearer(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
