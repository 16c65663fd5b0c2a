package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var allowedExtensions = []string{"png", "jpg", "jpeg", "gif"}

// fileHeader builds a real *multipart.FileHeader by round-tripping a
// multipart body, the same shape gin hands to handlers.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&body, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}

func newTestStore(t *testing.T) (*DiskImageStore, string) {
	t.Helper()
	dir := t.TempDir()
	return NewDiskImageStore(dir, allowedExtensions, zap.NewNop()), dir
}

func TestDiskImageStoreAcceptsAllowedExtensions(t *testing.T) {
	for _, filename := range []string{"shot.png", "shot.jpg", "shot.jpeg", "shot.gif", "SHOT.PNG", "shot.JpEg"} {
		t.Run(filename, func(t *testing.T) {
			store, dir := newTestStore(t)

			name, ok := store.Store(fileHeader(t, filename, []byte("image-bytes")))
			require.True(t, ok)

			data, err := os.ReadFile(filepath.Join(dir, name))
			require.NoError(t, err)
			assert.Equal(t, []byte("image-bytes"), data)
		})
	}
}

func TestDiskImageStoreRejectsDisallowedExtensions(t *testing.T) {
	for _, filename := range []string{"payload.exe", "page.html", "noext", "trailingdot.", "archive.tar.xz"} {
		t.Run(filename, func(t *testing.T) {
			store, dir := newTestStore(t)

			name, ok := store.Store(fileHeader(t, filename, []byte("x")))
			assert.False(t, ok)
			assert.Empty(t, name)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries, "rejected upload must not write a file")
		})
	}
}

func TestDiskImageStoreRejectsMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	name, ok := store.Store(nil)
	assert.False(t, ok)
	assert.Empty(t, name)
}

func TestDiskImageStorePrefixesTimestamp(t *testing.T) {
	store, _ := newTestStore(t)

	name, ok := store.Store(fileHeader(t, "photo.png", []byte("x")))
	require.True(t, ok)
	assert.Regexp(t, regexp.MustCompile(`^\d+_photo\.png$`), name)
}

func TestDiskImageStoreSanitizesFilename(t *testing.T) {
	store, dir := newTestStore(t)

	name, ok := store.Store(fileHeader(t, "my fancy photo!.png", []byte("x")))
	require.True(t, ok)
	assert.Regexp(t, regexp.MustCompile(`^\d+_my_fancy_photo_\.png$`), name)

	_, err := os.Stat(filepath.Join(dir, name))
	assert.NoError(t, err)
}

func TestDiskImageStoreReportsWriteFailure(t *testing.T) {
	store := NewDiskImageStore(filepath.Join(t.TempDir(), "does-not-exist"), allowedExtensions, zap.NewNop())

	name, ok := store.Store(fileHeader(t, "photo.png", []byte("x")))
	assert.False(t, ok)
	assert.Empty(t, name)
}
