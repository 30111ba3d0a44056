package sanitized

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
)

// File wraps a raw file-like upload input. Exactly one backing source is
// set: an on-disk path, an in-memory buffer, a generic reader, or a
// multipart file header.
type File struct {
	path     string
	content  []byte
	reader   io.Reader
	header   *multipart.FileHeader
	filename string
	size     int64
	fromPath bool // original input was a bare path string
}

// New wraps a raw input value. Accepted types: nil (empty file), string
// (filesystem path), []byte (unnamed buffer, see NewBuffer), io.Reader,
// *os.File, *multipart.FileHeader, and *File (returned as-is).
func New(input any) (*File, error) {
	switch v := input.(type) {
	case nil:
		return &File{size: -1}, nil
	case *File:
		if v == nil {
			return &File{size: -1}, nil
		}
		return v, nil
	case string:
		if v == "" {
			return &File{size: -1}, nil
		}
		return &File{
			path:     v,
			filename: SanitizeFilename(filepath.Base(v)),
			size:     -1,
			fromPath: true,
		}, nil
	case []byte:
		return &File{content: v, size: int64(len(v))}, nil
	case *os.File:
		if v == nil {
			return &File{size: -1}, nil
		}
		size := int64(-1)
		if st, err := v.Stat(); err == nil {
			size = st.Size()
		}
		return &File{
			reader:   v,
			filename: SanitizeFilename(filepath.Base(v.Name())),
			size:     size,
		}, nil
	case *multipart.FileHeader:
		if v == nil {
			return &File{size: -1}, nil
		}
		return &File{
			header:   v,
			filename: SanitizeFilename(v.Filename),
			size:     v.Size,
		}, nil
	case io.Reader:
		return &File{reader: v, size: -1}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedInput, input)
	}
}

// NewFromPath wraps an existing on-disk file. Unlike a bare string passed
// to New, the result does not report IsPath: the path came from the cache
// layer itself, not from an untrusted submission.
func NewFromPath(path string) *File {
	return &File{
		path:     path,
		filename: SanitizeFilename(filepath.Base(path)),
		size:     -1,
	}
}

// NewBuffer wraps in-memory content under an explicit filename.
func NewBuffer(filename string, content []byte) *File {
	return &File{
		content:  content,
		filename: SanitizeFilename(filename),
		size:     int64(len(content)),
	}
}

// IsEmpty reports whether the file has no content to persist. A
// path-backed file whose path does not exist is treated as empty.
func (f *File) IsEmpty() bool {
	switch {
	case f == nil:
		return true
	case f.header != nil:
		return f.header.Size == 0
	case f.path != "":
		st, err := os.Stat(f.path)
		if err != nil {
			return os.IsNotExist(err)
		}
		return st.Size() == 0
	case f.content != nil:
		return len(f.content) == 0
	case f.reader != nil:
		return f.size == 0
	default:
		return true
	}
}

// IsPath reports whether the original input was a bare path string.
func (f *File) IsPath() bool { return f.fromPath }

// Filename returns the sanitized basename of the wrapped file, or "" when
// the input carried no name.
func (f *File) Filename() string { return f.filename }

// Path returns the backing filesystem path, or "" for in-memory inputs.
func (f *File) Path() string { return f.path }

// Size returns the content size in bytes, or -1 when it is unknown
// without consuming the input.
func (f *File) Size() int64 {
	switch {
	case f.header != nil:
		return f.header.Size
	case f.path != "":
		st, err := os.Stat(f.path)
		if err != nil {
			return -1
		}
		return st.Size()
	case f.content != nil:
		return int64(len(f.content))
	default:
		return f.size
	}
}

// Read returns the full content. Reader-backed files are drained once and
// buffered so subsequent reads see the same bytes.
func (f *File) Read() ([]byte, error) {
	switch {
	case f.path != "":
		data, err := os.ReadFile(f.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return data, nil
	case f.content != nil:
		return f.content, nil
	case f.header != nil:
		src, err := f.header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open multipart file: %w", err)
		}
		defer func() { _ = src.Close() }()
		data, err := io.ReadAll(src)
		if err != nil {
			return nil, fmt.Errorf("failed to read multipart file: %w", err)
		}
		return data, nil
	case f.reader != nil:
		data, err := io.ReadAll(f.reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		f.content = data
		f.size = int64(len(data))
		f.reader = nil
		return data, nil
	default:
		return nil, ErrEmptyFile
	}
}

// Open returns a reader over the content. The caller owns the closer.
func (f *File) Open() (io.ReadCloser, error) {
	switch {
	case f.path != "":
		src, err := os.Open(f.path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		return src, nil
	case f.content != nil:
		return io.NopCloser(bytes.NewReader(f.content)), nil
	case f.header != nil:
		src, err := f.header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open multipart file: %w", err)
		}
		return src, nil
	case f.reader != nil:
		return io.NopCloser(f.reader), nil
	default:
		return nil, ErrEmptyFile
	}
}

// MoveTo persists the content at dst with the given permission bits and
// consumes the source: path-backed files are renamed (copy and remove when
// rename crosses filesystems), everything else is written out. Parent
// directories are created with dirPerm. Returns a path-backed File over
// dst.
func (f *File) MoveTo(dst string, perm, dirPerm fs.FileMode) (*File, error) {
	if f.IsEmpty() {
		return nil, ErrEmptyFile
	}
	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	switch {
	case f.path == dst:
		// Already in place.
	case f.path != "":
		if err := os.Rename(f.path, dst); err != nil {
			// Rename fails across filesystem boundaries; fall back to a
			// copy followed by source removal.
			if err := f.writeTo(dst, perm); err != nil {
				return nil, err
			}
			if err := os.Remove(f.path); err != nil {
				return nil, fmt.Errorf("failed to remove source file: %w", err)
			}
		}
	default:
		if err := f.writeTo(dst, perm); err != nil {
			return nil, err
		}
	}

	if err := os.Chmod(dst, perm); err != nil {
		return nil, fmt.Errorf("failed to set permissions: %w", err)
	}
	return NewFromPath(dst), nil
}

// CopyTo persists the content at dst with the given permission bits while
// retaining the source. Parent directories are created with dirPerm.
// Returns a path-backed File over dst.
func (f *File) CopyTo(dst string, perm, dirPerm fs.FileMode) (*File, error) {
	if f.IsEmpty() {
		return nil, ErrEmptyFile
	}
	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := f.writeTo(dst, perm); err != nil {
		return nil, err
	}
	if err := os.Chmod(dst, perm); err != nil {
		return nil, fmt.Errorf("failed to set permissions: %w", err)
	}
	return NewFromPath(dst), nil
}

// Delete removes the backing file for path-backed inputs. In-memory
// inputs are a no-op.
func (f *File) Delete() error {
	if f.path == "" {
		return nil
	}
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (f *File) writeTo(dst string, perm fs.FileMode) error {
	src, err := f.Open()
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}

	_, err = io.Copy(out, src)
	closeErr := out.Close()
	if err != nil {
		return fmt.Errorf("failed to write destination file: %w", err)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close destination file: %w", closeErr)
	}
	return nil
}
