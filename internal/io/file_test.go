package ioutils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Fetched_Images")

	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureDir_FileInTheWay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	assert.Error(t, EnsureDir(path))
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")

	ok, err := Exists(path)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(path, nil, 0644))
	ok, err = Exists(path)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(dir)
	require.NoError(t, err)
	assert.True(t, ok, "directories count as taken names")
}

func TestWriteNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.png")

	require.NoError(t, WriteNewFile(path, []byte("first")))

	err := WriteNewFile(path, []byte("second"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileExists))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), got, "existing file must not be overwritten")
}

func TestWriteNewFile_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "photo.png")

	err := WriteNewFile(path, []byte("data"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrFileExists))
}
