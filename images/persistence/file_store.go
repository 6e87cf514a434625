package persistence

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dfryer1193/imgserve/images/domain"
)

var _ domain.ImageStore = (*FileImageStore)(nil)

const tempPattern = ".upload-*"

// FileImageStore keeps one file per key in a single flat directory.
type FileImageStore struct {
	dir string
}

// NewFileImageStore creates a FileImageStore rooted at dir. The directory is
// not touched until Init or the first Write.
func NewFileImageStore(dir string) *FileImageStore {
	return &FileImageStore{
		dir: dir,
	}
}

// Dir returns the storage root.
func (s *FileImageStore) Dir() string {
	return s.dir
}

// Init creates the storage directory if it does not exist yet.
func (s *FileImageStore) Init(_ context.Context) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create image directory: %w", err)
	}
	return nil
}

// Ping checks that the storage directory exists without creating it.
func (s *FileImageStore) Ping(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("failed to stat image directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("image directory %s is not a directory", s.dir)
	}
	return nil
}

func (s *FileImageStore) path(key domain.Key) string {
	return filepath.Join(s.dir, key.Name)
}

// Exists reports whether a regular, readable file is stored under key.
func (s *FileImageStore) Exists(_ context.Context, key domain.Key) (bool, error) {
	f, err := os.Open(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return false, nil
		}
		return false, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, fmt.Errorf("failed to stat image: %w", err)
	}

	return info.Mode().IsRegular(), nil
}

// Write streams r into a temp file next to the destination and renames it over
// the key, so concurrent readers see either the old or the new content.
func (s *FileImageStore) Write(ctx context.Context, key domain.Key, r io.Reader) (int64, error) {
	if err := s.Init(ctx); err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(s.dir, tempPattern)
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	n, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return 0, fmt.Errorf("failed to write image file: %w", err)
	}

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("failed to set image file mode: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("failed to close image file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path(key)); err != nil {
		return 0, fmt.Errorf("failed to move image into place: %w", err)
	}
	committed = true

	return n, nil
}

// Read opens the file stored under key. Anything other than a regular file
// is reported as ErrUnreadable before a byte is streamed.
func (s *FileImageStore) Read(_ context.Context, key domain.Key) (io.ReadCloser, error) {
	f, err := os.Open(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat image: %w", err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, fmt.Errorf("%w: %s is not a regular file", domain.ErrUnreadable, key)
	}

	return f, nil
}
