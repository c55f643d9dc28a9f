package usecase

import (
	"io"
	"time"
)

//go:generate moq -out store_moq.go . FileStore Clock

// FileStore abstracts the filesystem operations needed to maintain the
// debian/ metadata files, so formatting logic can be tested without
// touching disk.
type FileStore interface {
	// ReadFile returns the current contents of path. A missing file is
	// reported with an error satisfying errors.Is(err, os.ErrNotExist).
	ReadFile(path string) ([]byte, error)
	// Create opens path for writing, truncating any previous contents.
	Create(path string) (io.WriteCloser, error)
	// EnsureDir creates the directory at path if it does not exist yet.
	EnsureDir(path string) error
}

// Clock supplies the timestamp stamped into changelog entries.
type Clock interface {
	Now() time.Time
}
