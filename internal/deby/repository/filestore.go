package repository

import (
	"io"
	"os"
	"time"
)

// DiskStore is the filesystem backed FileStore used outside of tests.
// Paths are resolved against the working directory of the process,
// matching where the .debyrc file was read from.
type DiskStore struct{}

// NewDiskStore create new instance
func NewDiskStore() *DiskStore {
	return &DiskStore{}
}

func (s *DiskStore) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (s *DiskStore) Create(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
}

func (s *DiskStore) EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// SystemClock reports wall clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
