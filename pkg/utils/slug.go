package utils

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// now is indirected for deterministic tests
var now = time.Now

// Slugify normalizes a display name into a URL-safe slug: lowercase,
// whitespace runs collapsed to a single hyphen, and every character
// outside [a-z0-9-] dropped. Hangul syllables are kept so Korean display
// names remain recognizable.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsSpace(r):
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-':
			b.WriteRune(r)
			lastHyphen = false
		case r >= 0xAC00 && r <= 0xD7A3: // Hangul syllable block
			b.WriteRune(r)
			lastHyphen = false
		}
	}
	return b.String()
}

// GenerateMemberID derives a member identifier from a display name:
// slug plus a base36 millisecond timestamp suffix. Uniqueness relies on
// the timestamp; there is no collision retry, which is acceptable for a
// manually curated roster.
func GenerateMemberID(displayName string) string {
	ts := strconv.FormatInt(now().UnixMilli(), 36)
	slug := Slugify(displayName)
	if slug == "" {
		return ts
	}
	return slug + "-" + ts
}
