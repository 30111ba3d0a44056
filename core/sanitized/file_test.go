package sanitized_test

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uploadcache/core/sanitized"
)

func multipartHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	headers := form.File[field]
	require.Len(t, headers, 1)
	return headers[0]
}

func TestNew_Nil(t *testing.T) {
	f, err := sanitized.New(nil)

	require.NoError(t, err)
	assert.True(t, f.IsEmpty())
	assert.False(t, f.IsPath())
	assert.Empty(t, f.Filename())
}

func TestNew_PathString(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

	f, err := sanitized.New(path)

	require.NoError(t, err)
	assert.True(t, f.IsPath())
	assert.False(t, f.IsEmpty())
	assert.Equal(t, "report.pdf", f.Filename())
	assert.Equal(t, int64(7), f.Size())

	data, err := f.Read()
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)
}

func TestNew_MissingPathIsEmpty(t *testing.T) {
	f, err := sanitized.New(filepath.Join(t.TempDir(), "nope.txt"))

	require.NoError(t, err)
	assert.True(t, f.IsEmpty())
}

func TestNew_Bytes(t *testing.T) {
	f, err := sanitized.New([]byte("hello"))

	require.NoError(t, err)
	assert.False(t, f.IsPath())
	assert.False(t, f.IsEmpty())
	assert.Empty(t, f.Filename())
}

func TestNewBuffer(t *testing.T) {
	f := sanitized.NewBuffer("photo.jpg", []byte("0123456789"))

	assert.Equal(t, "photo.jpg", f.Filename())
	assert.Equal(t, int64(10), f.Size())
	assert.False(t, f.IsPath())

	data, err := f.Read()
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789"), data)
}

func TestNew_Reader(t *testing.T) {
	f, err := sanitized.New(strings.NewReader("stream"))

	require.NoError(t, err)
	assert.False(t, f.IsEmpty())

	// Reader content is buffered on first read and stays readable.
	data, err := f.Read()
	require.NoError(t, err)
	assert.Equal(t, []byte("stream"), data)

	again, err := f.Read()
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestNew_OSFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))
	handle, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = handle.Close() }()

	f, err := sanitized.New(handle)

	require.NoError(t, err)
	assert.Equal(t, "notes.txt", f.Filename())
	assert.False(t, f.IsPath(), "open handle is not a bare path input")
	assert.Equal(t, int64(3), f.Size())
}

func TestNew_MultipartHeader(t *testing.T) {
	fh := multipartHeader(t, "avatar", "../evil/ava tar.png", []byte("png-bytes"))

	f, err := sanitized.New(fh)

	require.NoError(t, err)
	assert.Equal(t, "ava tar.png", f.Filename())
	assert.False(t, f.IsEmpty())

	data, err := f.Read()
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestNew_Unsupported(t *testing.T) {
	_, err := sanitized.New(42)

	require.Error(t, err)
	assert.ErrorIs(t, err, sanitized.ErrUnsupportedInput)
}

func TestMoveTo_PathBacked(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("move me"), 0o600))
	dst := filepath.Join(dir, "cache", "id", "src.txt")

	f, err := sanitized.New(src)
	require.NoError(t, err)

	moved, err := f.MoveTo(dst, 0o644, 0o755)
	require.NoError(t, err)

	assert.Equal(t, dst, moved.Path())
	assert.NoFileExists(t, src, "move deletes the source")

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("move me"), data)

	st, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), st.Mode().Perm())
}

func TestCopyTo_RetainsSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("copy me"), 0o600))
	dst := filepath.Join(dir, "cache", "id", "src.txt")

	f, err := sanitized.New(src)
	require.NoError(t, err)

	copied, err := f.CopyTo(dst, 0o644, 0o755)
	require.NoError(t, err)

	assert.Equal(t, dst, copied.Path())
	assert.FileExists(t, src, "copy retains the source")

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("copy me"), data)
}

func TestMoveTo_BufferBacked(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "cache", "id", "photo.jpg")
	f := sanitized.NewBuffer("photo.jpg", []byte("0123456789"))

	moved, err := f.MoveTo(dst, 0o600, 0o755)
	require.NoError(t, err)

	assert.Equal(t, "photo.jpg", moved.Filename())
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789"), data)

	st, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), st.Mode().Perm())
}

func TestMoveTo_Empty(t *testing.T) {
	f, err := sanitized.New(nil)
	require.NoError(t, err)

	_, err = f.MoveTo(filepath.Join(t.TempDir(), "x"), 0o644, 0o755)

	assert.ErrorIs(t, err, sanitized.ErrEmptyFile)
}

func TestDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	f := sanitized.NewFromPath(path)

	require.NoError(t, f.Delete())
	assert.NoFileExists(t, path)
	require.NoError(t, f.Delete(), "deleting twice is not an error")
}
