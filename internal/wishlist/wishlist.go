package wishlist

import (
	"sync"

	"sustainsports-be/internal/catalog"
	"sustainsports-be/internal/localstore"
)

// Item is a product snapshot saved for later.
type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	EcoTag    string  `json:"ecoTag,omitempty"`
}

const storageKeyPrefix = "sustainSportsWishlist:"

type Store struct {
	mu    sync.Mutex
	store localstore.Store
}

func NewStore(store localstore.Store) *Store {
	return &Store{store: store}
}

func key(userKey string) string {
	return storageKeyPrefix + userKey
}

func (s *Store) load(userKey string) ([]Item, error) {
	var items []Item
	if _, err := s.store.Get(key(userKey), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Add saves the product; adding a product already on the list is a no-op.
func (s *Store) Add(userKey string, p catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(userKey)
	if err != nil {
		return err
	}

	for _, it := range items {
		if it.ProductID == p.ID {
			return nil
		}
	}

	items = append(items, Item{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		EcoTag:    p.EcoTag,
	})
	return s.store.Set(key(userKey), items)
}

func (s *Store) Remove(userKey, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(userKey)
	if err != nil {
		return err
	}

	for i, it := range items {
		if it.ProductID == productID {
			items = append(items[:i], items[i+1:]...)
			return s.store.Set(key(userKey), items)
		}
	}
	return nil
}

func (s *Store) Has(userKey, productID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(userKey)
	if err != nil {
		return false, err
	}

	for _, it := range items {
		if it.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) List(userKey string) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(userKey)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

func (s *Store) Clear(userKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Delete(key(userKey))
}
