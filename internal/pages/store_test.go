package pages

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSaveAndFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Save("page_b.html", []byte("<html>b</html>")))
	require.NoError(t, store.Save("page_a.html", []byte("<html>a</html>")))

	files, err := store.Files()
	require.NoError(t, err)
	require.Len(t, files, 2)

	// os.ReadDir sorts by name.
	assert.Equal(t, filepath.Join(dir, "page_a.html"), files[0])
	assert.Equal(t, filepath.Join(dir, "page_b.html"), files[1])

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Equal(t, "<html>a</html>", string(data))
}

func TestStoreSaveOverwritesSameName(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Save("page.html", []byte("old")))
	require.NoError(t, store.Save("page.html", []byte("new")))

	data, err := os.ReadFile(filepath.Join(dir, "page.html"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestStoreFilesIgnoresSubdirectories(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Save("page.html", []byte("x")))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	files, err := store.Files()
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestStoreFilesRejectsMissingRoot(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := store.Files()
	assert.ErrorIs(t, err, ErrNotADirectory)
}

func TestStoreFilesRejectsRegularFileRoot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.html")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	store := NewStore(path)

	_, err := store.Files()
	assert.ErrorIs(t, err, ErrNotADirectory)
}
