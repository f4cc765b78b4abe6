package lib

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/denormal/go-gitignore"
	"github.com/spf13/afero"
)

// DefaultIgnoreFilename is the name of the file, at the root of a scanned
// directory, holding user-defined ignore patterns.
const DefaultIgnoreFilename = ".micignore"

// IgnoreMatcher decides whether a path below a scan root is excluded.
// The zero value ignores nothing.
type IgnoreMatcher struct {
	matcher gitignore.GitIgnore
}

// Ignored reports whether relPath (relative to the scan root) is excluded.
func (m IgnoreMatcher) Ignored(relPath string, isDir bool) bool {
	if m.matcher == nil {
		return false
	}
	// The gitignore library expects forward-slash separators, even on Windows.
	match := m.matcher.Relative(filepath.ToSlash(relPath), isDir)
	if match == nil {
		return false
	}
	return match.Ignore()
}

// LoadIgnoreMatcher compiles the patterns read from rootDir/ignoreFile, plus
// one excluding the ignore file itself. Nothing else is excluded unless the
// user asks for it. A missing ignore file is not an error; an unreadable one is.
func LoadIgnoreMatcher(fsys afero.Fs, rootDir, ignoreFile string) (IgnoreMatcher, error) {
	var rawPatterns []string
	if ignoreFile != "" {
		// The ignore file never describes a model, so it is always excluded.
		rawPatterns = append(rawPatterns, filepath.ToSlash(ignoreFile))

		content, err := afero.ReadFile(fsys, filepath.Join(rootDir, ignoreFile))
		switch {
		case err == nil:
			rawPatterns = append(rawPatterns, strings.Split(string(content), "\n")...)
		case errors.Is(err, os.ErrNotExist):
		default:
			return IgnoreMatcher{}, fmt.Errorf("%w: reading %s: %w", ErrIO, ignoreFile, err)
		}
	}

	return IgnoreMatcher{matcher: compilePatterns(rootDir, rawPatterns)}, nil
}

// compilePatterns cleans raw pattern lines and compiles them into a matcher.
func compilePatterns(baseDir string, rawPatterns []string) gitignore.GitIgnore {
	var finalPatterns []string
	for _, p := range rawPatterns {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		// Normalize Windows-style backslashes to forward slashes.
		trimmed = strings.ReplaceAll(trimmed, "\\", "/")

		// Directory patterns match everything beneath the directory.
		if strings.HasSuffix(trimmed, "/") && !strings.HasSuffix(trimmed, "**/") {
			trimmed = trimmed + "**"
		}
		finalPatterns = append(finalPatterns, trimmed)
	}

	matcher := gitignore.New(
		strings.NewReader(strings.Join(finalPatterns, "\n")),
		baseDir,
		// Skip malformed lines and keep parsing.
		func(err gitignore.Error) bool { return true },
	)
	if matcher == nil {
		return gitignore.New(strings.NewReader(""), baseDir, nil)
	}
	return matcher
}
