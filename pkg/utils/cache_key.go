package utils

import "strings"

// CacheKeyFrom derives a deterministic cache key from its parts:
// lowercase, parts joined by "_", every rune outside [a-z0-9_]
// replaced by "_".
func CacheKeyFrom(parts ...string) string {
	joined := strings.ToLower(strings.Join(parts, "_"))
	var b strings.Builder
	b.Grow(len(joined))
	for _, r := range joined {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
