// Package fileuri decodes file:// URIs as produced by drag-and-drop and
// clipboard payloads on Linux, macOS and Windows.
package fileuri

import (
	"net/url"
	"regexp"
	"strings"
)

const scheme = "file://"

// windowsDrive matches the leading-slash drive form left after stripping
// the scheme from e.g. file:///C:/Users.
var windowsDrive = regexp.MustCompile(`^/[A-Za-z]:([/\\]|$)`)

// Decode converts a file:// URI to a local path. The second return value
// is false when uri is not a decodable file URI.
func Decode(uri string) (string, bool) {
	uri = strings.TrimSpace(uri)
	if !strings.HasPrefix(uri, scheme) {
		return "", false
	}
	rest := strings.TrimPrefix(uri, scheme)
	path, err := url.PathUnescape(rest)
	if err != nil || path == "" {
		return "", false
	}
	if windowsDrive.MatchString(path) {
		path = path[1:]
	}
	return path, true
}

// ParseList parses a text/uri-list payload (one URI per line, lines
// starting with '#' are comments) and returns the decoded file paths.
func ParseList(s string) []string {
	var paths []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if p, ok := Decode(line); ok {
			paths = append(paths, p)
		}
	}
	return paths
}

// ParseLines extracts file:// lines from arbitrary plain text.
func ParseLines(s string) []string {
	var paths []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, scheme) {
			continue
		}
		if p, ok := Decode(line); ok {
			paths = append(paths, p)
		}
	}
	return paths
}

// IsFileLines reports whether s consists solely of file:// lines, with at
// least one present. Used to decide whether a pasted payload should be
// treated as files rather than text.
func IsFileLines(s string) bool {
	found := false
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, scheme) {
			return false
		}
		found = true
	}
	return found
}
