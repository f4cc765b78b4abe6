package lib

import "errors"

// Sentinel errors returned by the checksum operations.
// Use errors.Is() to check for a specific condition; the wrapping error
// carries the path or value involved.
var (
	// ErrFileNotFound indicates the target file is missing or cannot be opened.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnsupportedAlgorithm indicates an unknown digest algorithm name.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrParse indicates a checksum or config document could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrIO indicates a read or write failure after the file was opened.
	ErrIO = errors.New("i/o error")

	// ErrDirectoryNotFound indicates the scan root is missing or not a directory.
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrInvalidPath indicates a path that cannot be stored as a checksum
	// key because it is not valid UTF-8.
	ErrInvalidPath = errors.New("path is not valid UTF-8")
)
