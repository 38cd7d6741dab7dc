package upload

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAllowedExt(t *testing.T) {
	for _, name := range []string{"a.jpg", "b.PNG", "c.webp", "d.mp4", "e.mov"} {
		assert.True(t, AllowedExt(name), "name %q", name)
	}
	for _, name := range []string{"a.exe", "b.sh", "c", "d.php", "e.pdf"} {
		assert.False(t, AllowedExt(name), "name %q", name)
	}
}

func multipartFile(t *testing.T, field, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File[field][0]
}

func TestSaveToDisk(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, nil, zap.NewNop())

	fh := multipartFile(t, "image", "photo.jpg", []byte("fake-jpeg"))
	url, err := store.Save(context.Background(), fh)
	require.NoError(t, err)
	assert.Contains(t, url, "/uploads/")
	assert.Contains(t, url, ".jpg")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotEqual(t, "photo.jpg", entries[0].Name(), "stored name must be randomized")
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	store := NewStore(t.TempDir(), nil, zap.NewNop())
	fh := multipartFile(t, "image", "virus.exe", []byte("nope"))
	_, err := store.Save(context.Background(), fh)
	assert.Error(t, err)
}

func TestDeleteRemovesStoredFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, nil, zap.NewNop())

	fh := multipartFile(t, "image", "photo.png", []byte("png"))
	url, err := store.Save(context.Background(), fh)
	require.NoError(t, err)

	store.Delete(context.Background(), url)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteIgnoresTraversal(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(filepath.Dir(dir), "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))
	defer os.Remove(outside)

	store := NewStore(dir, nil, zap.NewNop())
	store.Delete(context.Background(), "/uploads/../victim.txt")

	_, err := os.Stat(outside)
	assert.NoError(t, err, "file outside the upload dir must survive")
}
