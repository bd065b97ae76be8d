package scanner

import "github.com/yeisme/missionscan/pkg/utils/fsop"

// SQFAnalyzer handles scripted-command files. Every double-quoted literal
// counts as an equipment reference. SQF has no class declaration syntax,
// so Classes is always empty.
type SQFAnalyzer struct{}

// Analyze implements Analyzer.
func (a *SQFAnalyzer) Analyze(path string) (Result, error) {
	lines, err := fsop.ReadFileLines(path)
	if err != nil {
		return Result{}, err
	}

	equipment := stringSet{}
	for _, line := range lines {
		for _, m := range quotedRe.FindAllStringSubmatch(line, -1) {
			equipment.add(m[1])
		}
	}

	return Result{
		File:      path,
		Classes:   []string{},
		Equipment: equipment.sorted(),
	}, nil
}
