package design

import "strings"

// NormalizeID converts a free-text node name into a stable element id:
// lower-cased, runs of non-alphanumeric characters collapsed to single
// underscores, leading and trailing underscores stripped.
func NormalizeID(name string) string {
	var b strings.Builder

	b.Grow(len(name))

	lastUnderscore := false

	for _, r := range strings.ToLower(name) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			b.WriteRune(r)

			lastUnderscore = false

			continue
		}

		if !lastUnderscore {
			b.WriteByte('_')

			lastUnderscore = true
		}
	}

	return strings.Trim(b.String(), "_")
}
