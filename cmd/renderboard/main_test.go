package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinnycodes/Abelian-Sandpile/src/board"
)

func TestRun_DefaultsInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.WriteFile(board.DefaultInput, []byte("0 1\n2 3\n"), 0o644))

	var stdout bytes.Buffer
	require.NoError(t, run(nil, &stdout))
	assert.Equal(t, "Saved output.png\n", stdout.String())

	f, err := os.Open(filepath.Join(dir, board.DefaultOutput))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}

func TestRun_MalformedBoard(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(in, []byte("0 1\n2\n"), 0o644))

	var stdout bytes.Buffer
	err := run([]string{"-in", in, "-out", filepath.Join(dir, "o.png")}, &stdout)
	var fe *board.FormatError
	require.True(t, errors.As(err, &fe), "got %v", err)
	assert.Empty(t, stdout.String())
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer
	err := run([]string{"-in", filepath.Join(dir, "none.txt"), "-out", filepath.Join(dir, "o.png")}, &stdout)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
