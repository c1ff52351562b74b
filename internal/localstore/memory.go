package localstore

import "sync"

// MemStore keeps documents in memory. Used in tests and as the fallback when
// no data directory is configured.
type MemStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{items: make(map[string][]byte)}
}

func (s *MemStore) Get(key string, target interface{}) (bool, error) {
	s.mu.RLock()
	data, found := s.items[key]
	s.mu.RUnlock()

	if !found {
		return false, nil
	}
	if err := unmarshal(data, target); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MemStore) Set(key string, value interface{}) error {
	data, err := marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.items[key] = data
	s.mu.Unlock()
	return nil
}

func (s *MemStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return nil
}
