package types

// ChecksumRecord maps a file identifier (a path, or whatever key the caller
// chose) to the lowercase hex digest of that file's contents.
// It is serialized as a flat JSON object with no envelope.
type ChecksumRecord map[string]string

// Algorithm names a supported digest algorithm.
type Algorithm string

const (
	SHA256  Algorithm = "sha256"
	MD5     Algorithm = "md5"
	SHA1    Algorithm = "sha1"
	BLAKE2b Algorithm = "blake2b"
	BLAKE3  Algorithm = "blake3"
)

// DefaultAlgorithm is used whenever the caller does not pick one, and always
// by verification.
const DefaultAlgorithm = SHA256

// Algorithms lists every supported algorithm, default first.
var Algorithms = []Algorithm{SHA256, MD5, SHA1, BLAKE2b, BLAKE3}

// CheckResult is the outcome of verifying one entry of a checksum file.
type CheckResult struct {
	Key  string
	Path string
	OK   bool
}
