package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathExists(t *testing.T) {
	dir := t.TempDir()

	exist, err := PathExists(dir)
	require.NoError(t, err)
	assert.True(t, exist)

	exist, err = PathExists(filepath.Join(dir, "nothing-here"))
	require.NoError(t, err)
	assert.False(t, exist)
}

func TestCreateFileBySize(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "myData")

	err := CreateFileBySize(filePath, 16384*4)
	require.NoError(t, err)

	fd, err := os.Stat(filePath)
	require.NoError(t, err)
	assert.Equal(t, int64(16384*4), fd.Size())
}
