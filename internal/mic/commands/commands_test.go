// The _test suffix creates an "external" test package, so the commands are
// exercised through their public API only.
package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gingerrexayers/mic-go/internal/mic/commands"
	"github.com/gingerrexayers/mic-go/internal/mic/lib"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// newTestEnv returns an Env over the real filesystem with captured output.
func newTestEnv() (commands.Env, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return commands.Env{Fs: afero.NewOsFs(), Out: &stdout, Err: &stderr}, &stdout, &stderr
}

// writeModel writes content to dir/name and returns the full path.
func writeModel(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write %s", name)
	return path
}

// loadRecord reads a checksum file written by one of the commands.
func loadRecord(t *testing.T, path string) map[string]string {
	t.Helper()
	record, err := lib.LoadChecksums(afero.NewOsFs(), path)
	require.NoError(t, err)
	return record
}
