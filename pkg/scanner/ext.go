package scanner

import (
	"regexp"

	"github.com/yeisme/missionscan/pkg/utils/fsop"
)

var (
	// classDeclRe matches a one-line class statement at line start, which
	// covers forward declarations alongside simple declarations.
	classDeclRe = regexp.MustCompile(`^\s*class\s+(\w+)`)

	// includeRe matches a preprocessor include directive.
	includeRe = regexp.MustCompile(`#include\s+"([^"]+)"`)
)

// EXTAnalyzer handles mission-entry files line by line. Class statements
// are recorded as classes; #include paths are recorded as equipment, since
// the included files carry the actual loadout definitions.
type EXTAnalyzer struct{}

// Analyze implements Analyzer.
func (a *EXTAnalyzer) Analyze(path string) (Result, error) {
	lines, err := fsop.ReadFileLines(path)
	if err != nil {
		return Result{}, err
	}

	classes := []string{}
	equipment := stringSet{}
	for _, line := range lines {
		if m := classDeclRe.FindStringSubmatch(line); m != nil {
			classes = append(classes, m[1])
		}
		if m := includeRe.FindStringSubmatch(line); m != nil {
			equipment.add(m[1])
		}
	}

	return Result{
		File:      path,
		Classes:   classes,
		Equipment: equipment.sorted(),
	}, nil
}
