// Package ignore provides gitignore-style pattern matching used to skip
// files and directories during scans.
package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Matcher holds a set of exclude patterns.
type Matcher struct {
	patterns []string
}

// New builds a Matcher from the given patterns. Empty lines and comment
// lines starting with '#' are skipped.
func New(patterns []string) *Matcher {
	m := &Matcher{}
	for _, line := range patterns {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.patterns = append(m.patterns, line)
	}
	return m
}

// FromFile loads patterns from a gitignore-style file. A missing file
// yields an empty Matcher.
func FromFile(path string) (*Matcher, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Matcher{}, nil
		}
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return New(lines), nil
}

// Patterns returns the loaded patterns.
func (m *Matcher) Patterns() []string {
	return m.patterns
}

// Match reports whether the relative path matches any pattern.
func (m *Matcher) Match(relPath string) bool {
	path := filepath.ToSlash(relPath)
	for _, pattern := range m.patterns {
		if matchPattern(path, pattern) {
			return true
		}
	}
	return false
}

// matchPattern handles the common gitignore pattern shapes: root-anchored
// patterns (leading '/'), directory patterns (trailing '/') and glob
// patterns, matched against the full relative path and each path segment.
func matchPattern(path, pattern string) bool {
	// Negation is not supported; treat as non-matching.
	if strings.HasPrefix(pattern, "!") {
		return false
	}

	rootAnchored := strings.HasPrefix(pattern, "/")
	pattern = strings.TrimPrefix(pattern, "/")
	pattern = strings.TrimSuffix(pattern, "/")
	if pattern == "" {
		return false
	}

	segments := strings.Split(path, "/")
	if rootAnchored {
		return globMatch(segments[0], pattern)
	}

	if globMatch(path, pattern) {
		return true
	}
	for _, segment := range segments {
		if globMatch(segment, pattern) {
			return true
		}
	}
	return false
}

func globMatch(s, pattern string) bool {
	if ok, _ := filepath.Match(pattern, s); ok {
		return true
	}
	return s == pattern
}
