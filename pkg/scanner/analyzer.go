package scanner

import "regexp"

// Analyzer extracts class names and equipment references from one mission
// file. Analyzers do not recover read failures; callers decide whether to
// propagate the error or fold it into an error-carrying Result.
type Analyzer interface {
	Analyze(path string) (Result, error)
}

// quotedRe matches a double-quoted string literal. The dialects have no
// escape sequences; the literal runs to the next quote.
var quotedRe = regexp.MustCompile(`"([^"]+)"`)
