package auth

import "strings"

// NormalizeEmail reduces an email address to the canonical identity key used
// for account uniqueness: the address is lowercased, dots are removed from
// the local part and everything from the first '+' on is dropped. The domain
// is the segment after the last '@'; any stray '@' before it belongs to the
// local part. Malformed input produces a degenerate but deterministic
// result. The function is idempotent.
func NormalizeEmail(email string) string {
	lowered := strings.ToLower(email)

	segments := strings.Split(lowered, "@")
	domain := segments[len(segments)-1]
	local := strings.Join(segments[:len(segments)-1], "")

	local = strings.ReplaceAll(local, ".", "")
	if plus := strings.Index(local, "+"); plus >= 0 {
		local = local[:plus]
	}

	return local + "@" + domain
}
