package lib

import "strings"

// supportedFormats are the file-name suffixes treated as model artifacts:
// Keras/HDF5, PyTorch, ONNX.
var supportedFormats = []string{".h5", ".pt", ".onnx"}

// SupportedFormats returns a copy of the default format set.
func SupportedFormats() []string {
	formats := make([]string, len(supportedFormats))
	copy(formats, supportedFormats)
	return formats
}

// ParseFormats splits a comma-separated list such as ".h5, .pt" into its
// entries. Blank entries are dropped; nil is returned when nothing is left so
// that callers fall back to the default set.
func ParseFormats(csv string) []string {
	var formats []string
	for _, part := range strings.Split(csv, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			formats = append(formats, trimmed)
		}
	}
	return formats
}

// matchesFormat reports whether name ends with any of the given suffixes.
func matchesFormat(name string, formats []string) bool {
	for _, ext := range formats {
		if ext != "" && strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
