package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/codepdf"
	"github.com/fwojciec/codepdf/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
}

func TestScanner_Scan(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "main.go", []byte("package main\n"))
	writeFile(t, dir, "blob.dat", []byte("abc\x00def"))
	writeFile(t, dir, "shot.png", []byte("not a real png"))
	writeFile(t, dir, ".hidden", []byte("secret"))
	writeFile(t, dir, "project_files.pdf", []byte("%PDF-1.4 previous run"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0755))

	scanner := fs.NewScanner()
	folder, err := scanner.Scan(dir)

	require.NoError(t, err)
	assert.Equal(t, dir, folder.Dir)

	require.Len(t, folder.Files, 2, "hidden files, PDFs, images, and directories are excluded")
	assert.Equal(t, "blob.dat", folder.Files[0].Name)
	assert.True(t, folder.Files[0].Binary, "a file containing a zero byte is binary")
	assert.Empty(t, folder.Files[0].Content)
	assert.Equal(t, "main.go", folder.Files[1].Name)
	assert.False(t, folder.Files[1].Binary)
	assert.Equal(t, "package main\n", folder.Files[1].Content)

	require.Len(t, folder.Images, 1)
	assert.Equal(t, codepdf.Image{
		Name: "shot.png",
		Path: filepath.Join(dir, "shot.png"),
	}, folder.Images[0])
}

func TestScanner_Scan_SortedByName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "charlie.txt", []byte("c"))
	writeFile(t, dir, "alpha.txt", []byte("a"))
	writeFile(t, dir, "bravo.txt", []byte("b"))

	scanner := fs.NewScanner()
	folder, err := scanner.Scan(dir)

	require.NoError(t, err)
	require.Len(t, folder.Files, 3)
	assert.Equal(t, "alpha.txt", folder.Files[0].Name)
	assert.Equal(t, "bravo.txt", folder.Files[1].Name)
	assert.Equal(t, "charlie.txt", folder.Files[2].Name)
}

func TestScanner_Scan_ReplacesInvalidUTF8(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "latin1.txt", []byte{'c', 'a', 'f', 0xe9, '\n'})

	scanner := fs.NewScanner()
	folder, err := scanner.Scan(dir)

	require.NoError(t, err)
	require.Len(t, folder.Files, 1)
	assert.False(t, folder.Files[0].Binary)
	assert.Equal(t, "caf�\n", folder.Files[0].Content)
}

func TestScanner_Scan_MissingDir(t *testing.T) {
	t.Parallel()

	scanner := fs.NewScanner()
	_, err := scanner.Scan(filepath.Join(t.TempDir(), "nope"))

	require.Error(t, err)
}
