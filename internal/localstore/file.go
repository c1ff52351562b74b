package localstore

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"sync"
)

var keySanitizer = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

// FileStore persists each key as a JSON file under a data directory. Writes go
// through a temp file and rename so readers never observe a partial document.
// A process-level mutex serializes access within one process; concurrent
// processes still race at whole-document granularity (last-write-wins).
type FileStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("localstore: data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, keySanitizer.ReplaceAllString(key, "_")+".json")
}

func (s *FileStore) Get(key string, target interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := unmarshal(data, target); err != nil {
		return false, err
	}
	return true, nil
}

func (s *FileStore) Set(key string, value interface{}) error {
	data, err := marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, ".write-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, s.path(key))
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
