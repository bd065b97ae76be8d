// Package fsop provides file system operations shared by the analyzers.
package fsop

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/yeisme/missionscan/pkg/utils/log"
)

var (
	// ErrNotFound reports a path that does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrNotRegularFile reports a path that exists but is not a regular file.
	ErrNotRegularFile = errors.New("path is not a regular file")
)

// ValidateFile checks that path exists and is a regular file.
func ValidateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}
	return nil
}

// ReadFileContent returns the file's text content. The content is decoded
// as UTF-8; on invalid UTF-8 it falls back to Latin-1, which maps every
// byte, so a validated path always yields content.
func ReadFileContent(path string) (string, error) {
	if err := ValidateFile(path); err != nil {
		return "", err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if utf8.Valid(raw) {
		return string(raw), nil
	}

	log.GetLogger().Warn().Str("file", path).
		Msg("UTF-8 decode failed, retrying with Latin-1")
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return string(decoded), nil
}

// ReadFileLines returns the file's text content split into lines.
func ReadFileLines(path string) ([]string, error) {
	content, err := ReadFileContent(path)
	if err != nil {
		return nil, err
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(content, "\n"), nil
}

// ResolveDataPath returns path if it exists; otherwise it searches the
// given data directories for a file with the same base name. Relative data
// directories are tried against both the working directory and the
// installation directory of the running binary.
func ResolveDataPath(path string, dataDirs []string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	base := filepath.Base(path)
	for _, dir := range dataDirs {
		candidates := []string{filepath.Join(dir, base)}
		if !filepath.IsAbs(dir) {
			if exe, err := os.Executable(); err == nil {
				candidates = append(candidates, filepath.Join(filepath.Dir(exe), dir, base))
			}
		}
		for _, candidate := range candidates {
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNotFound, path)
}
