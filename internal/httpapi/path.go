package httpapi

import "strings"

// Wildcard matches any single path segment in a route pattern.
const Wildcard = "*"

// Path is a normalized sequence of path segments. Leading, trailing and blank
// components are discarded, so "//currencies/" becomes ["currencies"].
type Path []string

func SplitPath(raw string) Path {
	parts := strings.Split(raw, "/")
	segments := make(Path, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		segments = append(segments, part)
	}
	return segments
}

// Match succeeds only when both sequences have the same length and every
// pattern segment is either the wildcard or byte-for-byte equal to the input
// segment. There is no backtracking and no subpath traversal; a matched
// wildcard value is read back by indexing into the original Path.
func (p Path) Match(pattern Path) bool {
	if len(p) != len(pattern) {
		return false
	}
	for i, seg := range pattern {
		if seg == Wildcard {
			continue
		}
		if p[i] != seg {
			return false
		}
	}
	return true
}
