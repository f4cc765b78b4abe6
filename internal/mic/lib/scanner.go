package lib

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/gingerrexayers/mic-go/internal/mic/types"
	"github.com/spf13/afero"
)

// ScanOptions controls which files ScanDirectory picks up.
type ScanOptions struct {
	// Formats lists file-name suffixes to match. Empty means SupportedFormats().
	Formats []string
	// Recursive descends into subdirectories when true.
	Recursive bool
	// IgnoreFile names the pattern file read from the scan root.
	IgnoreFile string
	// NoIgnore disables all ignore rules, including the ignore file exclusion.
	NoIgnore bool
	// Logger receives per-file debug output. Nil discards it.
	Logger *slog.Logger
}

// DefaultScanOptions returns the options used when a caller has no opinion:
// all supported formats, recursive, ignore rules from .micignore.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		Formats:    SupportedFormats(),
		Recursive:  true,
		IgnoreFile: DefaultIgnoreFilename,
	}
}

// ScanDirectory walks rootDir and returns the digest of every regular file
// whose name ends with one of the configured formats, keyed by its path
// relative to rootDir.
//
// Symbolic links are never followed. If any matched file cannot be hashed,
// or its relative path is not valid UTF-8, the whole scan fails; a partial
// record is never returned.
func ScanDirectory(fsys afero.Fs, rootDir string, opts ScanOptions) (types.ChecksumRecord, error) {
	logger := opts.Logger
	if logger == nil {
		logger = DiscardLogger()
	}
	formats := opts.Formats
	if len(formats) == 0 {
		formats = SupportedFormats()
	}

	info, err := fsys.Stat(rootDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDirectoryNotFound, rootDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, rootDir)
	}

	var ignore IgnoreMatcher
	if !opts.NoIgnore {
		ignore, err = LoadIgnoreMatcher(fsys, rootDir, opts.IgnoreFile)
		if err != nil {
			return nil, err
		}
	}

	// The walk uses lstat, so a symlinked root needs a trailing separator to
	// be entered at all. Links below the root are still not followed.
	walkRoot := rootDir
	if lstater, ok := fsys.(afero.Lstater); ok {
		if linfo, _, err := lstater.LstatIfPossible(rootDir); err == nil && linfo.Mode()&os.ModeSymlink != 0 {
			walkRoot = rootDir + string(filepath.Separator)
		}
	}

	checksums := make(types.ChecksumRecord)
	err = afero.Walk(fsys, walkRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == walkRoot {
			return nil
		}

		relPath, err := filepath.Rel(rootDir, path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if !opts.Recursive || ignore.Ignored(relPath, true) {
				return filepath.SkipDir
			}
			return nil
		}

		// Symlinks, sockets, devices and the like are never hashed.
		if !info.Mode().IsRegular() {
			return nil
		}
		if !matchesFormat(info.Name(), formats) || ignore.Ignored(relPath, false) {
			return nil
		}
		if !utf8.ValidString(relPath) {
			return fmt.Errorf("%w: %q", ErrInvalidPath, relPath)
		}

		digest, err := GetFileHash(fsys, path)
		if err != nil {
			return err
		}
		logger.Debug("hashed model file", "path", relPath, "digest", digest)
		checksums[relPath] = digest
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", rootDir, err)
	}

	return checksums, nil
}
