package lib

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/gingerrexayers/mic-go/internal/mic/types"
	"github.com/goccy/go-json"
	"github.com/spf13/afero"
)

// MarshalChecksums renders a record the way it is stored on disk: a flat
// JSON object, keys sorted, indented with two spaces. Keys are written
// verbatim, without HTML escaping. A key that is not valid UTF-8 would not
// survive the round trip, so it is rejected with ErrInvalidPath.
func MarshalChecksums(record types.ChecksumRecord) ([]byte, error) {
	if record == nil {
		record = types.ChecksumRecord{}
	}
	for path := range record {
		if !utf8.ValidString(path) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(record); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// SaveChecksums writes record to filePath, replacing any existing file.
// Every failure is reported as ErrIO; an unencodable key also matches
// ErrInvalidPath.
func SaveChecksums(fsys afero.Fs, record types.ChecksumRecord, filePath string) error {
	content, err := MarshalChecksums(record)
	if err != nil {
		return fmt.Errorf("%w: encoding checksums: %w", ErrIO, err)
	}
	if err := WriteFileAtomic(fsys, filePath, content); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrIO, filePath, err)
	}
	return nil
}

// LoadChecksums reads a checksum file written by SaveChecksums.
// The mapping is returned exactly as stored; values are not checked to look
// like digests and keys are not checked against the filesystem.
func LoadChecksums(fsys afero.Fs, filePath string) (types.ChecksumRecord, error) {
	content, err := afero.ReadFile(fsys, filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filePath)
		}
		return nil, fmt.Errorf("%w: reading %s: %w", ErrIO, filePath, err)
	}

	var record types.ChecksumRecord
	if err := json.Unmarshal(content, &record); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, filePath, err)
	}
	// "null" decodes cleanly into a nil map but is not an object.
	if record == nil {
		return nil, fmt.Errorf("%w: %s: document is not a JSON object", ErrParse, filePath)
	}
	return record, nil
}
