package commands

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/gingerrexayers/mic-go/internal/mic/lib"
	"github.com/gingerrexayers/mic-go/internal/mic/types"
)

// CheckOptions holds the configuration for the check command.
type CheckOptions struct {
	ChecksumFile string
	// BaseDir anchors relative keys. Empty means the checksum file's directory.
	BaseDir string
}

// CheckChecksums verifies every entry of a loaded record, in key order.
// Relative keys are resolved against baseDir; absolute keys are used as-is.
func CheckChecksums(env Env, checksums types.ChecksumRecord, baseDir string) []types.CheckResult {
	keys := make([]string, 0, len(checksums))
	for key := range checksums {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	results := make([]types.CheckResult, 0, len(keys))
	for _, key := range keys {
		path := key
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, key)
		}
		results = append(results, types.CheckResult{
			Key:  key,
			Path: path,
			OK:   lib.VerifyChecksum(env.Fs, path, checksums[key]),
		})
	}
	return results
}

// Check is the main function for the 'check' command: it re-verifies every
// file listed in a checksum file and prints one status line per entry.
func Check(env Env, opts CheckOptions) error {
	checksums, err := lib.LoadChecksums(env.Fs, opts.ChecksumFile)
	if err != nil {
		return err
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = filepath.Dir(opts.ChecksumFile)
	}

	failed := 0
	for _, result := range CheckChecksums(env, checksums, baseDir) {
		status := "OK"
		if !result.OK {
			status = "FAILED"
			failed++
		}
		env.logger().Debug("checked entry", "key", result.Key, "path", result.Path, "ok", result.OK)
		fmt.Fprintf(env.Out, "%s: %s\n", result.Key, status)
	}

	if failed > 0 {
		fmt.Fprintf(env.Err, "✗ %d of %d checksum(s) did not verify\n", failed, len(checksums))
		return fmt.Errorf("%w: %d of %d", ErrCheckFailed, failed, len(checksums))
	}
	return nil
}
