package cache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// dirName is the subfolder created under the platform cache directory.
const dirName = "kep"

// tempPattern names in-flight writes; the rename makes them visible atomically.
const tempPattern = ".kep-*.tmp"

// Common cache errors.
var (
	ErrCacheNotFound   = errors.New("cache entry not found")
	ErrCacheExpired    = errors.New("cache entry expired")
	ErrInvalidCacheKey = errors.New("cache key cannot be empty")
)

// FileStore keeps one file per cache key in a flat directory.
// It holds no locks: concurrent writers race and the last rename wins.
type FileStore struct {
	// directory is the cache root. It is created lazily on the first write.
	directory string

	// now supplies the current time for freshness checks.
	now func() time.Time
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithClock overrides the time source used to judge entry freshness.
func WithClock(now func() time.Time) Option {
	return func(s *FileStore) { s.now = now }
}

// NewFileStore returns a store rooted at directory. The directory is not
// touched until the first Write.
func NewFileStore(directory string, opts ...Option) *FileStore {
	s := &FileStore{
		directory: directory,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultDirectory returns the process-wide cache root: the platform user
// cache directory plus "kep", or the temp directory plus "kep" when the
// platform directory cannot be determined.
func DefaultDirectory() string {
	return defaultDirectory(os.UserCacheDir)
}

func defaultDirectory(userCacheDir func() (string, error)) string {
	base, err := userCacheDir()
	if err != nil || base == "" {
		base = os.TempDir()
	}
	return filepath.Join(base, dirName)
}

// Stat describes the entry for key without reading its payload.
// Returns ErrCacheNotFound if no entry exists.
func (s *FileStore) Stat(key string) (*Entry, error) {
	if key == "" {
		return nil, ErrInvalidCacheKey
	}

	path := s.Path(key)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCacheNotFound
		}
		return nil, fmt.Errorf("failed to stat cache file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("cache path %s is not a regular file: %w", path, ErrCacheNotFound)
	}

	return &Entry{
		Key:        key,
		Path:       path,
		ModifiedAt: info.ModTime(),
		Size:       info.Size(),
	}, nil
}

// Read returns the payload stored for key if it is no older than ttl.
// Returns ErrCacheNotFound if the entry doesn't exist and ErrCacheExpired if
// it is stale. Any other error comes from the filesystem; callers are expected
// to treat every error as a cache miss.
func (s *FileStore) Read(key string, ttl time.Duration) ([]byte, error) {
	entry, err := s.Stat(key)
	if err != nil {
		return nil, err
	}

	if entry.IsExpired(ttl, s.now()) {
		return nil, ErrCacheExpired
	}

	data, err := os.ReadFile(entry.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCacheNotFound
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	return data, nil
}

// Write stores data as the payload for key, replacing any previous entry.
// The cache directory is created if needed. The payload is written to a
// temporary file first and then renamed, so readers never see a partial entry.
func (s *FileStore) Write(key string, data []byte) error {
	if key == "" {
		return ErrInvalidCacheKey
	}

	if err := os.MkdirAll(s.directory, 0o750); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.directory, tempPattern)
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	tempPath := tmp.Name()

	if _, writeErr := tmp.Write(data); writeErr != nil {
		_ = tmp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to write cache file: %w", writeErr)
	}

	if closeErr := tmp.Close(); closeErr != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to close cache file: %w", closeErr)
	}

	if renameErr := os.Rename(tempPath, s.Path(key)); renameErr != nil {
		_ = os.Remove(tempPath) // Clean up temp file on error
		return fmt.Errorf("failed to rename cache file: %w", renameErr)
	}

	return nil
}

// Path returns the file path used for key.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.directory, key)
}

// Directory returns the cache root directory.
func (s *FileStore) Directory() string {
	return s.directory
}
