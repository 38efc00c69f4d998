// Package testutil holds fixtures shared by the package tests: file trees
// on an in-memory filesystem or on disk, and error code assertions.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/doksnet/pkg/errors"
)

// Root is the project root used by in-memory trees
const Root = "/repo"

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() afero.Fs {
	return afero.NewMemMapFs()
}

// WriteFile writes content to name, relative to Root unless absolute,
// creating parent directories
func WriteFile(t testing.TB, fsys afero.Fs, name, content string) {
	t.Helper()
	full := name
	if !filepath.IsAbs(full) {
		full = filepath.Join(Root, name)
	}
	require.NoError(t, fsys.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, afero.WriteFile(fsys, full, []byte(content), 0644))
}

// Tree returns an in-memory filesystem holding files under Root
func Tree(t testing.TB, files map[string]string) afero.Fs {
	t.Helper()
	fsys := NewTestFS()
	for name, content := range files {
		WriteFile(t, fsys, name, content)
	}
	return fsys
}

// CreateFile creates a file with the given content in dir on disk and
// returns its path
func CreateFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// AssertErrorCode fails the test unless err carries code
func AssertErrorCode(t testing.TB, err error, code errors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, errors.GetErrorCode(err), "unexpected error: %v", err)
}
