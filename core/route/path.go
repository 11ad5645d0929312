package route

import (
	"net/url"
	"strings"
)

// SplitPath normalizes a slash-delimited path into non-empty segments.
func SplitPath(path string) []string {
	rawParts := strings.Split(path, "/")
	parts := make([]string, 0, len(rawParts))
	for _, part := range rawParts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		parts = append(parts, part)
	}
	return parts
}

// JoinPath is the inverse of SplitPath. No segments means the root.
func JoinPath(parts []string) string {
	if len(parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(parts, "/")
}

// Canonical strips any query or fragment, collapses repeated slashes and
// drops a trailing slash.
func Canonical(path string) string {
	return JoinPath(SplitPath(StripQuery(path)))
}

// StripQuery drops the query string and fragment from path.
func StripQuery(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		return path[:i]
	}
	return path
}

// ParseQuery returns the query values carried by path, if any.
func ParseQuery(path string) url.Values {
	if i := strings.IndexByte(path, '#'); i >= 0 {
		path = path[:i]
	}
	i := strings.IndexByte(path, '?')
	if i < 0 {
		return url.Values{}
	}
	values, err := url.ParseQuery(path[i+1:])
	if err != nil {
		return url.Values{}
	}
	return values
}
