package utils

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestPathExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	ok, err := PathExists(file)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = PathExists(filepath.Join(dir, "absent"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRelHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	assert.Equal(t, filepath.Join(home, ".gitignore-cli.yaml"), RelHome(".gitignore-cli.yaml"))
}
