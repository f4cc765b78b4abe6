package lib

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"hash"
	"strings"

	"github.com/gingerrexayers/mic-go/internal/mic/types"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// ParseAlgorithm maps a case-insensitive algorithm name onto the closed set
// of supported algorithms.
func ParseAlgorithm(name string) (types.Algorithm, error) {
	normalized := types.Algorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, algo := range types.Algorithms {
		if algo == normalized {
			return algo, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

// newHash returns a fresh hash.Hash for algo.
func newHash(algo types.Algorithm) (hash.Hash, error) {
	switch algo {
	case types.SHA256:
		return sha256.New(), nil
	case types.MD5:
		return md5.New(), nil
	case types.SHA1:
		return sha1.New(), nil
	case types.BLAKE2b:
		// Only fails for an oversized key, and no key is passed.
		return blake2b.New256(nil)
	case types.BLAKE3:
		return blake3.New(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(algo))
}
