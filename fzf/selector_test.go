package fzf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/mhmorgan/gitignore-cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakeFzf writes a shell script standing in for fzf. It answers
// --version, records its arguments and stdin next to itself, and
// then runs body.
func fakeFzf(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "fzf")
	script := fmt.Sprintf(`#!/bin/sh
if [ "$1" = "--version" ]; then
	echo "0.44.1 (fake)"
	exit 0
fi
echo "$@" > %[1]s/args
cat > %[1]s/stdin
%[2]s
`, dir, body)
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func newTestSelector(binary string) (*Selector, *bytes.Buffer) {
	cfg := config.Default()
	s := New(&cfg)
	s.Binary = binary
	var out bytes.Buffer
	s.Out = &out
	s.Stderr = &bytes.Buffer{}
	return s, &out
}

func staticCatalog(calls *int, names ...string) CatalogFunc {
	return func(context.Context) ([]string, error) {
		*calls++
		return names, nil
	}
}

func TestAvailable(t *testing.T) {
	s, _ := newTestSelector(fakeFzf(t, "exit 0"))
	assert.True(t, s.Available())

	s.Binary = filepath.Join(t.TempDir(), "no-such-fzf")
	assert.False(t, s.Available())
}

func TestSelect_Unavailable(t *testing.T) {
	s, out := newTestSelector(filepath.Join(t.TempDir(), "no-such-fzf"))

	calls := 0
	name, ok, err := s.Select(context.Background(), staticCatalog(&calls, "Go"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, name)
	assert.Zero(t, calls, "catalog must not be fetched")
	assert.Contains(t, out.String(), "fzf not found")
	assert.Contains(t, out.String(), "gitignore ls")
}

func TestSelect(t *testing.T) {
	bin := fakeFzf(t, `sed -n 2p "$(dirname "$0")/stdin"`)
	s, out := newTestSelector(bin)

	calls := 0
	name, ok, err := s.Select(context.Background(), staticCatalog(&calls, "Go", "Node", "Python"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Node", name)
	assert.Equal(t, 1, calls)
	assert.Empty(t, out.String())

	dir := filepath.Dir(bin)
	stdin, err := os.ReadFile(filepath.Join(dir, "stdin"))
	require.NoError(t, err)
	assert.Equal(t, "Go\nNode\nPython", string(stdin))

	args, err := os.ReadFile(filepath.Join(dir, "args"))
	require.NoError(t, err)
	assert.Equal(t, "--prompt=Select gitignore template:  --height=40%", strings.TrimSpace(string(args)))
}

func TestSelect_Cancelled(t *testing.T) {
	bin := fakeFzf(t, "exit 130")
	s, _ := newTestSelector(bin)

	calls := 0
	_, ok, err := s.Select(context.Background(), staticCatalog(&calls, "Go"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSelect_EmptyOutput(t *testing.T) {
	bin := fakeFzf(t, `echo "   "`)
	s, _ := newTestSelector(bin)

	calls := 0
	_, ok, err := s.Select(context.Background(), staticCatalog(&calls, "Go"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSelect_CatalogError(t *testing.T) {
	bin := fakeFzf(t, "echo Go")
	s, _ := newTestSelector(bin)

	boom := errors.New("boom")
	_, _, err := s.Select(context.Background(), func(context.Context) ([]string, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestRun_StartFailure(t *testing.T) {
	s, _ := newTestSelector(filepath.Join(t.TempDir(), "missing"))

	_, _, err := s.run(context.Background(), "Go")
	var pe *ProcessError
	require.True(t, errors.As(err, &pe), "got %v", err)
	assert.Equal(t, "start", pe.Op)
}
