package review

import (
	"errors"
	"sort"
	"sync"
	"time"

	"sustainsports-be/internal/localstore"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrMissingAuthor = errors.New("author name is required")
)

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	Verified  bool      `json:"verified"`
}

const reviewedOrdersKey = "sustainSportsReviewedOrders"

// Store keeps per-product review lists plus the reviewed-order marker list.
// Reviews are append-only.
type Store struct {
	mu    sync.Mutex
	store localstore.Store
}

func NewStore(store localstore.Store) *Store {
	return &Store{store: store}
}

func productKey(productID string) string {
	return "reviews_" + productID
}

// Add validates and appends a review for the product.
func (s *Store) Add(productID, author string, rating int, comment string, verified bool) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if author == "" {
		return nil, ErrMissingAuthor
	}

	r := Review{
		ID:        uuid.New().String(),
		ProductID: productID,
		Author:    author,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
		Verified:  verified,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var reviews []Review
	if _, err := s.store.Get(productKey(productID), &reviews); err != nil {
		return nil, err
	}

	reviews = append(reviews, r)
	if err := s.store.Set(productKey(productID), reviews); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListByProduct returns the product's reviews newest first.
func (s *Store) ListByProduct(productID string) ([]Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var reviews []Review
	if _, err := s.store.Get(productKey(productID), &reviews); err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []Review{}
	}

	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

// MarkOrderReviewed records that an order's review prompt was used, so the
// storefront stops offering it.
func (s *Store) MarkOrderReviewed(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []string
	if _, err := s.store.Get(reviewedOrdersKey, &ids); err != nil {
		return err
	}

	for _, id := range ids {
		if id == orderID {
			return nil
		}
	}
	return s.store.Set(reviewedOrdersKey, append(ids, orderID))
}

func (s *Store) IsOrderReviewed(orderID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []string
	if _, err := s.store.Get(reviewedOrdersKey, &ids); err != nil {
		return false, err
	}

	for _, id := range ids {
		if id == orderID {
			return true, nil
		}
	}
	return false, nil
}
