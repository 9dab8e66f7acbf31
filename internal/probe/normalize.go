package probe

import "strings"

// Normalize strips one leading "http://" or "https://" and one trailing "/".
// Other schemes and case variants are left untouched.
func Normalize(raw string) string {
	d := raw
	if rest, ok := strings.CutPrefix(d, "http://"); ok {
		d = rest
	} else if rest, ok := strings.CutPrefix(d, "https://"); ok {
		d = rest
	}
	return strings.TrimSuffix(d, "/")
}
