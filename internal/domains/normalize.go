package domains

import "strings"

// Suffix is the top-level domain every name is registered under.
const Suffix = ".cv"

// Normalize returns the canonical form of a .cv domain name:
//   - surrounding whitespace is trimmed
//   - the name is lower-cased
//   - a trailing root dot is dropped
//   - ".cv" is appended unless already present
//
// Normalize is idempotent. A blank input yields "".
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimRight(name, ".")
	if name == "" {
		return ""
	}
	if !strings.HasSuffix(name, Suffix) {
		name += Suffix
	}

	return name
}
