package lib

import "github.com/spf13/afero"

// VerifyChecksum reports whether the default-algorithm digest of filePath
// equals expected.
//
// It never returns an error: a missing or unreadable file simply does not
// verify. Callers that need to tell a mismatch apart from a missing file
// should call CalculateChecksum themselves. The comparison is exact, and
// digests are always lowercase, so callers holding upper-case digests must
// lowercase them first.
func VerifyChecksum(fsys afero.Fs, filePath, expected string) bool {
	actual, err := GetFileHash(fsys, filePath)
	if err != nil {
		return false
	}
	return actual == expected
}
