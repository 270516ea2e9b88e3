package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadedFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestSaveFileWithPath(t *testing.T) {
	t.Parallel()

	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	relPath, err := storage.SaveFileWithPath(uploadedFile(t, "mugshot.jpg", "image-bytes"), "criminals/abc/images")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(relPath, "criminals/abc/images/"))
	assert.True(t, strings.HasSuffix(relPath, ".jpg"))
	assert.NotContains(t, relPath, "mugshot")

	data, err := os.ReadFile(storage.GetFullPath(relPath))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestSaveFileWithPathRejectsTraversal(t *testing.T) {
	t.Parallel()

	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.SaveFileWithPath(uploadedFile(t, "x.txt", "x"), "../outside")
	assert.Error(t, err)
}

func TestDeleteFile(t *testing.T) {
	t.Parallel()

	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	relPath, err := storage.SaveFile(uploadedFile(t, "report.pdf", "pdf-bytes"))
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(relPath))
	_, err = os.Stat(storage.GetFullPath(relPath))
	assert.True(t, os.IsNotExist(err))

	// Deleting again is a no-op.
	assert.NoError(t, storage.DeleteFile(relPath))
	assert.NoError(t, storage.DeleteFile(""))
}

func TestGetFullPath(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	storage, err := NewLocalStorage(base)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "a", "b.jpg"), storage.GetFullPath("a/b.jpg"))
	assert.Empty(t, storage.GetFullPath("../etc/passwd"))
	assert.Empty(t, storage.GetFullPath(""))
}
