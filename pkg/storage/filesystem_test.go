package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveStreamAndPublicURL(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "occurrences-media", "https://cdn.example.com/storage/")
	require.NoError(t, err)

	path, err := store.SaveStream("user-1/photos/1700000000000_foto.jpg", strings.NewReader("conteudo"))
	require.NoError(t, err)
	assert.Equal(t, "user-1/photos/1700000000000_foto.jpg", path)

	data, err := os.ReadFile(filepath.Join(dir, "occurrences-media", "user-1", "photos", "1700000000000_foto.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "conteudo", string(data))

	assert.Equal(t,
		"https://cdn.example.com/storage/occurrences-media/user-1/photos/1700000000000_foto.jpg",
		store.PublicURL(path))
}

func TestLocalStorageSaveStreamRejectsCollision(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "occurrences-media", "http://localhost:8080/storage")
	require.NoError(t, err)

	_, err = store.SaveStream("user-1/videos/1_clip.mp4", strings.NewReader("a"))
	require.NoError(t, err)

	_, err = store.SaveStream("user-1/videos/1_clip.mp4", strings.NewReader("b"))
	assert.Error(t, err)
}

func TestLocalStorageOpenAndDelete(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "occurrences-media", "http://localhost:8080/storage")
	require.NoError(t, err)

	_, err = store.SaveStream("user-2/photos/2_a.png", strings.NewReader("png"))
	require.NoError(t, err)

	file, err := store.Open("user-2/photos/2_a.png")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	require.NoError(t, store.Delete("user-2/photos/2_a.png"))
	_, err = store.Open("user-2/photos/2_a.png")
	assert.Error(t, err)

	// deleting a missing object is not an error
	assert.NoError(t, store.Delete("user-2/photos/2_a.png"))
}
