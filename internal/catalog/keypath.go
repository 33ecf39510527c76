package catalog

import "strings"

// KeyPath helpers. A keypath is a dot-delimited logical identifier shared
// across locales, e.g. "login.form.title".

// SplitKey splits a keypath into its segments.
func SplitKey(keypath string) []string {
	if keypath == "" {
		return nil
	}
	return strings.Split(keypath, ".")
}

// JoinKey joins segments into a keypath.
func JoinKey(segments ...string) string {
	return strings.Join(segments, ".")
}

// ParentKey returns the keypath one level up, or "" for a top-level key.
func ParentKey(keypath string) string {
	i := strings.LastIndex(keypath, ".")
	if i < 0 {
		return ""
	}
	return keypath[:i]
}

// LastSegment returns the final segment of a keypath.
func LastSegment(keypath string) string {
	i := strings.LastIndex(keypath, ".")
	if i < 0 {
		return keypath
	}
	return keypath[i+1:]
}

// ValidKey reports whether a keypath is non-empty with no empty segments.
func ValidKey(keypath string) bool {
	if keypath == "" {
		return false
	}
	for _, seg := range strings.Split(keypath, ".") {
		if seg == "" {
			return false
		}
	}
	return true
}

// HasPrefix reports whether keypath is equal to or nested under prefix.
func HasPrefix(keypath, prefix string) bool {
	if prefix == "" {
		return true
	}
	return keypath == prefix || strings.HasPrefix(keypath, prefix+".")
}
