// Package scanner locates class declarations and equipment references in
// Arma-style mission configuration files. Three dialects are supported,
// selected by file extension: .sqf scripted commands, .hpp structured
// configs and .ext mission entries. The scanner pattern-matches the text
// only; it does not evaluate or validate the configuration.
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/yeisme/missionscan/pkg/utils/ignore"
	"github.com/yeisme/missionscan/pkg/utils/log"
)

// ErrUnsupportedType reports a file extension with no registered analyzer.
var ErrUnsupportedType = errors.New("unsupported file type")

// Options configures a Scanner.
type Options struct {
	// DataDirs are searched by the structured-config analyzer when a
	// referenced loadout file does not exist at the given path.
	DataDirs []string
	// Exclude lists gitignore-style patterns skipped during ScanDir.
	Exclude []string
}

// Scanner dispatches files to the dialect analyzers by extension.
type Scanner struct {
	analyzers map[string]Analyzer
	exclude   *ignore.Matcher
}

// New builds a Scanner with the fixed extension-to-analyzer table.
func New(opts Options) *Scanner {
	return &Scanner{
		analyzers: map[string]Analyzer{
			"sqf": &SQFAnalyzer{},
			"hpp": &HPPAnalyzer{DataDirs: opts.DataDirs},
			"ext": &EXTAnalyzer{},
		},
		exclude: ignore.New(opts.Exclude),
	}
}

// fileType returns the lower-cased extension without the leading dot.
func fileType(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Scan analyzes a single file. It returns ErrUnsupportedType when the
// extension has no registered analyzer, and surfaces the analyzer's read
// errors (not found, not a regular file, ...) directly.
func (s *Scanner) Scan(path string) (Result, error) {
	ft := fileType(path)
	analyzer, ok := s.analyzers[ft]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q (%s)", ErrUnsupportedType, ft, path)
	}
	return analyzer.Analyze(path)
}

// ScanFiles analyzes each path in order and never fails: any per-file
// error is folded into an error-carrying Result so one bad file cannot
// abort the batch.
func (s *Scanner) ScanFiles(paths []string) []Result {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		result, err := s.Scan(path)
		if err != nil {
			log.GetLogger().Warn().Err(err).Str("file", path).Msg("analysis failed")
			result = errorResult(path, err)
		}
		results = append(results, result)
	}
	return results
}

// ScanDir walks root recursively, collects the files whose extension has a
// registered analyzer, and scans them via ScanFiles. Paths matching the
// exclude patterns are skipped; traversal order is filesystem-dependent.
func (s *Scanner) ScanDir(root string) ([]Result, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root {
			rel, relErr := filepath.Rel(root, path)
			if relErr == nil && s.exclude.Match(rel) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := s.analyzers[fileType(path)]; ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.GetLogger().Debug().Int("files", len(files)).Str("root", root).Msg("directory walk complete")
	return s.ScanFiles(files), nil
}
