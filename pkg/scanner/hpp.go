package scanner

import (
	"regexp"

	"github.com/yeisme/missionscan/pkg/utils/fsop"
)

var (
	// classHeaderRe matches a brace-bodied class declaration, optionally
	// with single-parent inheritance ("class Foo : Bar {").
	classHeaderRe = regexp.MustCompile(`class\s+(\w+)\s*(?::\s*\w+)?\s*\{`)

	// listMacroRe matches the list-repetition macro, e.g.
	// LIST_3("ACE_fieldDressing"). The repeat count is irrelevant; the
	// argument names one piece of equipment.
	listMacroRe = regexp.MustCompile(`LIST_\d+\("([^"]+)"\)`)
)

// HPPAnalyzer handles structured-config files. It records every class
// declaration in source order and collects equipment references from within
// each class body. Literals inside nested child classes also count toward
// the enclosing class; the collection is flat on purpose.
type HPPAnalyzer struct {
	// DataDirs are searched for a same-named file when the given path does
	// not exist. Loadout configs are often referenced relative to a shared
	// sample directory.
	DataDirs []string
}

// Analyze implements Analyzer.
func (a *HPPAnalyzer) Analyze(path string) (Result, error) {
	resolved, err := fsop.ResolveDataPath(path, a.DataDirs)
	if err != nil {
		return Result{}, err
	}
	content, err := fsop.ReadFileContent(resolved)
	if err != nil {
		return Result{}, err
	}

	classes := []string{}
	equipment := stringSet{}
	for _, loc := range classHeaderRe.FindAllStringSubmatchIndex(content, -1) {
		classes = append(classes, content[loc[2]:loc[3]])

		body := content[loc[1]:classBodyEnd(content, loc[1])]
		for _, m := range quotedRe.FindAllStringSubmatch(body, -1) {
			equipment.add(m[1])
		}
		for _, m := range listMacroRe.FindAllStringSubmatch(body, -1) {
			equipment.add(m[1])
		}
	}

	return Result{
		File:      path,
		Classes:   classes,
		Equipment: equipment.sorted(),
	}, nil
}

// classBodyEnd walks the raw character stream from the first byte after a
// class header's opening brace and returns the offset just past the
// matching closing brace. Nested braces are balanced with a depth counter.
// An unterminated body runs to end of input.
func classBodyEnd(content string, start int) int {
	depth := 1
	for i := start; i < len(content); i++ {
		switch content[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(content)
}
