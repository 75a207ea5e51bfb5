package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrFileTooLarge is returned by a FileStore when the stream exceeds the byte limit.
var ErrFileTooLarge = errors.New("uploads: file exceeds size limit")

// StoredFile references audio written to the file store.
type StoredFile struct {
	Name    string
	Path    string
	URL     string
	Size    int64
	ModTime time.Time
}

// FileStore persists uploaded audio.
type FileStore interface {
	Save(ctx context.Context, sanitizedName string, source io.Reader, limit int64) (StoredFile, error)
	Remove(file StoredFile) error
}

// DiskStoreConfig configures a directory-backed file store.
type DiskStoreConfig struct {
	Directory string
	URLPrefix string
	Clock     func() time.Time
	Token     func() string
}

// DiskStore writes uploads into one directory and addresses them under a URL prefix.
type DiskStore struct {
	directory string
	urlPrefix string
	clock     func() time.Time
	token     func() string
}

// NewDiskStore constructs a store rooted at an absolute form of the configured directory.
func NewDiskStore(cfg DiskStoreConfig) (*DiskStore, error) {
	if strings.TrimSpace(cfg.Directory) == "" {
		return nil, fmt.Errorf("disk store: directory required")
	}
	directory, err := filepath.Abs(cfg.Directory)
	if err != nil {
		return nil, fmt.Errorf("disk store: resolve directory: %w", err)
	}
	urlPrefix := "/" + strings.Trim(cfg.URLPrefix, "/")
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	token := cfg.Token
	if token == nil {
		token = randomToken
	}
	return &DiskStore{directory: directory, urlPrefix: urlPrefix, clock: clock, token: token}, nil
}

// Directory returns the absolute uploads directory.
func (s *DiskStore) Directory() string {
	return s.directory
}

// URLPrefix returns the public path under which stored files are addressed.
func (s *DiskStore) URLPrefix() string {
	return s.urlPrefix
}

// Save streams source into a newly created file. The name is prefixed with the
// current unix milliseconds and a random token. A partial file is removed on failure.
func (s *DiskStore) Save(ctx context.Context, sanitizedName string, source io.Reader, limit int64) (StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return StoredFile{}, err
	}
	if err := os.MkdirAll(s.directory, 0o755); err != nil {
		return StoredFile{}, fmt.Errorf("disk store: create directory: %w", err)
	}

	storedName := fmt.Sprintf("%d-%s_%s", s.clock().UnixMilli(), s.token(), sanitizedName)
	storedPath, err := s.resolve(storedName)
	if err != nil {
		return StoredFile{}, err
	}

	file, err := os.OpenFile(storedPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return StoredFile{}, fmt.Errorf("disk store: create file: %w", err)
	}

	written, copyErr := io.Copy(file, io.LimitReader(source, limit+1))
	closeErr := file.Close()
	switch {
	case copyErr != nil:
		_ = os.Remove(storedPath)
		return StoredFile{}, fmt.Errorf("disk store: write file: %w", copyErr)
	case written > limit:
		_ = os.Remove(storedPath)
		return StoredFile{}, ErrFileTooLarge
	case closeErr != nil:
		_ = os.Remove(storedPath)
		return StoredFile{}, fmt.Errorf("disk store: close file: %w", closeErr)
	}

	return StoredFile{
		Name:    storedName,
		Path:    storedPath,
		URL:     path.Join(s.urlPrefix, storedName),
		Size:    written,
		ModTime: s.clock(),
	}, nil
}

// Remove deletes a stored file. Missing files are not an error.
func (s *DiskStore) Remove(file StoredFile) error {
	storedPath, err := s.resolve(filepath.Base(file.Path))
	if err != nil {
		return err
	}
	if err := os.Remove(storedPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("disk store: remove file: %w", err)
	}
	return nil
}

// RemoveURL deletes the file addressed by a public URL under this store's prefix.
func (s *DiskStore) RemoveURL(publicURL string) error {
	prefix := s.urlPrefix + "/"
	if !strings.HasPrefix(publicURL, prefix) {
		return fmt.Errorf("disk store: url %q is outside %s", publicURL, s.urlPrefix)
	}
	return s.Remove(StoredFile{Path: strings.TrimPrefix(publicURL, prefix)})
}

// List returns the regular files currently held by the store.
func (s *DiskStore) List() ([]StoredFile, error) {
	entries, err := os.ReadDir(s.directory)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("disk store: list directory: %w", err)
	}

	files := make([]StoredFile, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, StoredFile{
			Name:    entry.Name(),
			Path:    filepath.Join(s.directory, entry.Name()),
			URL:     path.Join(s.urlPrefix, entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return files, nil
}

func (s *DiskStore) resolve(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("disk store: invalid file name %q", name)
	}
	candidate := filepath.Join(s.directory, name)
	relative, err := filepath.Rel(s.directory, candidate)
	if err != nil || relative != name {
		return "", fmt.Errorf("disk store: file name %q escapes %s", name, s.directory)
	}
	return candidate, nil
}

func randomToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
