// Package lib contains the core, reusable services for the mic application.
package lib

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/gingerrexayers/mic-go/internal/mic/types"
	"github.com/spf13/afero"
)

// readBufferSize is the chunk size used when streaming a file into a hash.
const readBufferSize = 8 * 1024

// GetHash calculates the SHA-256 hash of an in-memory byte slice and returns
// it as a lowercase hex-encoded string.
func GetHash(content []byte) string {
	hashBytes := sha256.Sum256(content)
	return hex.EncodeToString(hashBytes[:])
}

// GetFileHash is CalculateChecksum with the default algorithm.
func GetFileHash(fsys afero.Fs, filePath string) (string, error) {
	return CalculateChecksum(fsys, filePath, string(types.DefaultAlgorithm))
}

// CalculateChecksum streams the file at filePath through the named digest
// algorithm and returns the lowercase hex digest. Memory use does not grow
// with the file size.
//
// An unknown algorithm yields ErrUnsupportedAlgorithm. A file that is missing,
// unreadable or a directory yields ErrFileNotFound.
func CalculateChecksum(fsys afero.Fs, filePath string, algorithm string) (string, error) {
	algo, err := ParseAlgorithm(algorithm)
	if err != nil {
		return "", err
	}
	hasher, err := newHash(algo)
	if err != nil {
		return "", err
	}

	info, err := fsys.Stat(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrFileNotFound, filePath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrFileNotFound, filePath)
	}

	file, err := fsys.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrFileNotFound, filePath, err)
	}
	defer file.Close()

	buf := make([]byte, readBufferSize)
	if _, err := io.CopyBuffer(hasher, file, buf); err != nil {
		return "", fmt.Errorf("%w: reading %s: %w", ErrIO, filePath, err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
