// Package pathmatch implements the path filters used for source discovery:
// required-suffix selection and case-insensitive exclusion-marker matching.
package pathmatch

import "strings"

// ContainsAny reports whether any marker occurs in path as a case-insensitive
// substring. Matching is against the whole path, so a marker excludes every
// file below a matching directory, and a filename marker like "release.py"
// also drops lookalikes such as "prerelease.py".
func ContainsAny(path string, markers []string) bool {
	lower := strings.ToLower(path)
	for _, m := range markers {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

// Eligible reports whether path ends in suffix and matches no marker.
func Eligible(path, suffix string, markers []string) bool {
	return strings.HasSuffix(path, suffix) && !ContainsAny(path, markers)
}
