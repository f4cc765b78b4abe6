package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the CLI in-process and returns exit code, stdout and stderr.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

var hexDigest = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestFormatsCommand(t *testing.T) {
	code, stdout, _ := runCLI(t, "formats")

	assert.Equal(t, 0, code)
	assert.Equal(t, []string{".h5", ".pt", ".onnx"}, strings.Fields(stdout))
}

func TestCalculateCommand(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeFile(t, filepath.Join(dir, "model.pt"), "test content")

	t.Run("prints a sha256 digest", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "calculate", modelPath)

		assert.Equal(t, 0, code)
		assert.Regexp(t, hexDigest, strings.TrimSpace(stdout))
		assert.Empty(t, stderr)
	})

	t.Run("missing file exits 1 with a message", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "calculate", "/nonexistent/model.pt")

		assert.Equal(t, 1, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "Error:")
		assert.Contains(t, stderr, "/nonexistent/model.pt")
		assert.Equal(t, 1, strings.Count(strings.TrimSpace(stderr), "\n")+1, "error should be a single line")
	})

	t.Run("with output file", func(t *testing.T) {
		outPath := filepath.Join(dir, "calc.json")

		code, stdout, _ := runCLI(t, "calculate", modelPath, "-o", outPath)

		require.Equal(t, 0, code)
		assert.Contains(t, stdout, "Checksum saved to")
		content, err := os.ReadFile(outPath)
		require.NoError(t, err)
		var data map[string]string
		require.NoError(t, json.Unmarshal(content, &data))
		assert.Contains(t, data, modelPath)
	})

	t.Run("unknown algorithm exits 1", func(t *testing.T) {
		code, _, stderr := runCLI(t, "calculate", modelPath, "--algorithm", "sha3")

		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "unsupported algorithm")
	})
}

func TestVerifyCommand(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeFile(t, filepath.Join(dir, "model.pt"), "test content")

	_, digestOut, _ := runCLI(t, "calculate", modelPath)
	digest := strings.TrimSpace(digestOut)

	t.Run("valid checksum", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "verify", modelPath, "-c", digest)

		assert.Equal(t, 0, code)
		assert.Contains(t, strings.ToLower(stdout), "verified")
	})

	t.Run("invalid checksum", func(t *testing.T) {
		code, _, stderr := runCLI(t, "verify", modelPath, "-c", "invalid_checksum")

		assert.Equal(t, 1, code)
		assert.Equal(t, "✗ Checksum mismatch!\n", stderr)
	})

	t.Run("checksum file", func(t *testing.T) {
		checksumFile := filepath.Join(dir, "checksums.json")
		code, _, _ := runCLI(t, "calculate", modelPath, "-o", checksumFile)
		require.Equal(t, 0, code)

		code, stdout, _ := runCLI(t, "verify", modelPath, "-f", checksumFile)

		assert.Equal(t, 0, code)
		assert.Contains(t, stdout, "verified")
	})

	t.Run("model not in checksum file", func(t *testing.T) {
		checksumFile := writeFile(t, filepath.Join(dir, "other.json"), `{"elsewhere.pt": "abc"}`)

		code, _, stderr := runCLI(t, "verify", modelPath, "-f", checksumFile)

		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "not found in checksum file")
	})

	t.Run("requires a checksum source", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "verify", modelPath)

		assert.Equal(t, 1, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "checksum")
	})

	t.Run("rejects both checksum sources", func(t *testing.T) {
		code, _, _ := runCLI(t, "verify", modelPath, "-c", digest, "-f", filepath.Join(dir, "checksums.json"))

		assert.Equal(t, 1, code)
	})
}

func TestScanCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "model.h5"), "fake model")
	writeFile(t, filepath.Join(dir, "model2.pt"), "fake model 2")
	writeFile(t, filepath.Join(dir, "notes.txt"), "notes")
	writeFile(t, filepath.Join(dir, "sub", "deep.onnx"), "deep")

	t.Run("prints JSON", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "scan", dir, "--no-recursive")

		require.Equal(t, 0, code)
		var data map[string]string
		require.NoError(t, json.Unmarshal([]byte(stdout), &data))
		assert.Len(t, data, 2)
		assert.NotContains(t, data, "notes.txt")
	})

	t.Run("formats flag", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "scan", dir, "-f", ".h5, .onnx")

		require.Equal(t, 0, code)
		var data map[string]string
		require.NoError(t, json.Unmarshal([]byte(stdout), &data))
		assert.Len(t, data, 2)
		assert.Contains(t, data, "model.h5")
		assert.Contains(t, data, filepath.Join("sub", "deep.onnx"))
	})

	t.Run("output file", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "scan.json")

		code, stdout, _ := runCLI(t, "scan", dir, "-o", outPath)

		require.Equal(t, 0, code)
		assert.Equal(t, "Found 3 model file(s). Checksums saved to "+outPath+"\n", stdout)
	})

	t.Run("config file supplies defaults", func(t *testing.T) {
		configPath := writeFile(t, filepath.Join(t.TempDir(), "mic.toml"), "formats = [\".txt\"]\nrecursive = false\n")

		code, stdout, _ := runCLI(t, "--config", configPath, "scan", dir)

		require.Equal(t, 0, code)
		var data map[string]string
		require.NoError(t, json.Unmarshal([]byte(stdout), &data))
		assert.Equal(t, []string{"notes.txt"}, keys(data))
	})

	t.Run("flags beat the config file", func(t *testing.T) {
		configPath := writeFile(t, filepath.Join(t.TempDir(), "mic.toml"), "recursive = false\n")

		code, stdout, _ := runCLI(t, "--config", configPath, "scan", dir, "--no-recursive=false")

		require.Equal(t, 0, code)
		var data map[string]string
		require.NoError(t, json.Unmarshal([]byte(stdout), &data))
		assert.Len(t, data, 3)
	})

	t.Run("missing directory exits 1", func(t *testing.T) {
		code, _, stderr := runCLI(t, "scan", filepath.Join(dir, "nope"))

		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "directory not found")
	})
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "model.pt"), "weights")
	checksumFile := filepath.Join(dir, "checksums.json")
	code, _, _ := runCLI(t, "scan", dir, "-o", checksumFile)
	require.Equal(t, 0, code)

	code, stdout, _ := runCLI(t, "check", checksumFile)
	assert.Equal(t, 0, code)
	assert.Equal(t, "model.pt: OK\n", stdout)

	writeFile(t, filepath.Join(dir, "model.pt"), "tampered")
	code, stdout, stderr := runCLI(t, "check", checksumFile)
	assert.Equal(t, 1, code)
	assert.Equal(t, "model.pt: FAILED\n", stdout)
	assert.NotContains(t, stderr, "Error:")
}

func TestNoCommand(t *testing.T) {
	code, stdout, _ := runCLI(t)

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "Usage:")
}

func TestUnknownCommand(t *testing.T) {
	code, _, stderr := runCLI(t, "explode")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown command")
}

func TestCompletionCommand(t *testing.T) {
	t.Run("bash script", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "completion", "bash")

		assert.Equal(t, 0, code)
		assert.Contains(t, stdout, "mic")
	})

	t.Run("help lists every shell", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "completion", "--help")

		assert.Equal(t, 0, code)
		for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
			assert.Contains(t, stdout, "mic completion "+shell)
		}
	})

	t.Run("unknown shell", func(t *testing.T) {
		code, _, stderr := runCLI(t, "completion", "tcsh")

		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "tcsh")
	})
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
