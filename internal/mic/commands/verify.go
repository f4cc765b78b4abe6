package commands

import (
	"errors"
	"fmt"

	"github.com/gingerrexayers/mic-go/internal/mic/lib"
)

// VerifyOptions holds the configuration for the verify command. Exactly one
// of Checksum and ChecksumFile must be set.
type VerifyOptions struct {
	ModelPath    string
	Checksum     string
	ChecksumFile string
}

// Verify is the main function for the 'verify' command.
func Verify(env Env, opts VerifyOptions) error {
	if (opts.Checksum == "") == (opts.ChecksumFile == "") {
		return errors.New("exactly one of --checksum or --checksum-file is required")
	}

	expected := opts.Checksum
	if opts.ChecksumFile != "" {
		checksums, err := lib.LoadChecksums(env.Fs, opts.ChecksumFile)
		if err != nil {
			return err
		}
		entry, ok := checksums[opts.ModelPath]
		if !ok {
			return fmt.Errorf("%w: model '%s' in %s", ErrEntryNotFound, opts.ModelPath, opts.ChecksumFile)
		}
		expected = entry
	}

	if !lib.VerifyChecksum(env.Fs, opts.ModelPath, expected) {
		fmt.Fprintln(env.Err, "✗ Checksum mismatch!")
		return fmt.Errorf("%w: %s", ErrChecksumMismatch, opts.ModelPath)
	}

	fmt.Fprintln(env.Out, "✓ Checksum verified successfully")
	return nil
}
