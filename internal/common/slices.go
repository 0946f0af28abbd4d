package common

// IsMultiple reports whether s holds more than one element, the condition
// under which a ranking has ties to report.
func IsMultiple[S ~[]E, E any](s S) bool {
	return len(s) > 1
}
