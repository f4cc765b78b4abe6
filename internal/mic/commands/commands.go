// Package commands contains the command-line interface for the mic application.
package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/gingerrexayers/mic-go/internal/mic/lib"
	"github.com/gingerrexayers/mic-go/internal/mic/types"
	"github.com/spf13/afero"
)

var (
	// ErrChecksumMismatch is returned by Verify when the digest differs or the
	// model cannot be hashed. The failure marker has already been written.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrEntryNotFound is returned by Verify when the checksum file has no
	// entry for the model path.
	ErrEntryNotFound = errors.New("model not found in checksum file")

	// ErrCheckFailed is returned by Check when at least one entry did not
	// verify. Per-entry results have already been written.
	ErrCheckFailed = errors.New("one or more checksums did not verify")
)

// Env carries what every command needs from the process: a filesystem, the
// two output streams and a logger.
type Env struct {
	Fs     afero.Fs
	Out    io.Writer
	Err    io.Writer
	Logger *slog.Logger
}

// NewOSEnv returns an Env over the real filesystem.
func NewOSEnv(out, errOut io.Writer, logger *slog.Logger) Env {
	return Env{Fs: afero.NewOsFs(), Out: out, Err: errOut, Logger: logger}
}

// IsReported reports whether err's message has already been written to the
// error stream by the command itself.
func IsReported(err error) bool {
	return errors.Is(err, ErrChecksumMismatch) || errors.Is(err, ErrCheckFailed)
}

func (e Env) logger() *slog.Logger {
	if e.Logger == nil {
		return lib.DiscardLogger()
	}
	return e.Logger
}

// saveChecksums writes record to path and, at debug level, logs a sha256
// fingerprint of the stored document so two saves can be compared from logs.
func saveChecksums(env Env, record types.ChecksumRecord, path string) error {
	if err := lib.SaveChecksums(env.Fs, record, path); err != nil {
		return err
	}

	logger := env.logger()
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return nil
	}
	content, err := lib.MarshalChecksums(record)
	if err != nil {
		return nil
	}
	logger.Debug("checksums saved", "path", path, "entries", len(record), "fingerprint", lib.GetHash(content))
	return nil
}
