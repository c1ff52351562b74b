package cart

import "sustainsports-be/internal/localstore"

const storageKeyPrefix = "sustainSportsCart:"

// Store persists one cart per user key so it survives reloads.
type Store struct {
	store localstore.Store
}

func NewStore(store localstore.Store) *Store {
	return &Store{store: store}
}

func (s *Store) key(userKey string) string {
	return storageKeyPrefix + userKey
}

// Load returns the user's cart; a missing document yields an empty cart.
func (s *Store) Load(userKey string) (*Cart, error) {
	var c Cart
	found, err := s.store.Get(s.key(userKey), &c)
	if err != nil {
		return nil, err
	}
	if !found {
		return &Cart{}, nil
	}
	return &c, nil
}

func (s *Store) Save(userKey string, c *Cart) error {
	return s.store.Set(s.key(userKey), c)
}

func (s *Store) Clear(userKey string) error {
	return s.store.Delete(s.key(userKey))
}
