package catalog

import (
	"context"
	"strings"
	"time"

	"sustainsports-be/internal/cache"
	"sustainsports-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Browse(ctx context.Context, q Query) ([]Product, error)
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	CreateDefault(ctx context.Context) (*Product, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Product, error)
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]Category, error)
	Count(ctx context.Context) (int, error)
}

type service struct {
	repo  Repository
	cache *cache.Cache
}

const (
	productsCacheKey   = "catalog:products"
	categoriesCacheKey = "catalog:categories"
)

func NewService(repo Repository) Service {
	return &service{
		repo:  repo,
		cache: cache.New(time.Minute),
	}
}

// Browse runs the full catalog snapshot through the filter/sort pipeline.
func (s *service) Browse(ctx context.Context, q Query) ([]Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(products, q), nil
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	var cached []Product
	if found, _ := s.cache.Get(productsCacheKey, &cached); found {
		return cached, nil
	}

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []Product{}
	}

	_ = s.cache.Set(productsCacheKey, products)
	return products, nil
}

func (s *service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateDefault seeds a stub product for the admin to fill in afterwards. A
// category must exist first; its absence is a client-visible error, not a
// crash.
func (s *service) CreateDefault(ctx context.Context) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateDefault"),
	)

	category, err := s.repo.FirstCategory(ctx)
	if err != nil {
		log.Warn("cannot create product without a category", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Create(ctx, Product{
		Name:            "Sample Name",
		Price:           0,
		CategoryID:      category.ID,
		Description:     "Sample description",
		FullDescription: "This is a sample product. Please update its details.",
		Image:           "/images/sample.jpg",
		Images:          []string{"/images/sample.jpg"},
		EcoTag:          "Eco Friendly",
		InStock:         false,
		Features:        []string{"Feature 1", "Feature 2"},
	})
	if err != nil {
		return nil, err
	}

	created.CategoryName = category.Name
	s.cache.Clear()

	log.Info("stub product created", zap.String("product_id", created.ID))
	return created, nil
}

func (s *service) Update(ctx context.Context, id string, params UpdateParams) (*Product, error) {
	if id == "" {
		return nil, ErrProductNotFound
	}
	if !params.hasAnyField() {
		return nil, ErrNoFields
	}
	if params.Name != nil && strings.TrimSpace(*params.Name) == "" {
		return nil, ErrNoFields
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := applyUpdate(*existing, params)
	if err := s.repo.Update(ctx, merged); err != nil {
		return nil, err
	}

	s.cache.Clear()
	return &merged, nil
}

// applyUpdate overwrites only the fields present in params, an explicit
// presence check so false and 0 remain settable.
func applyUpdate(p Product, params UpdateParams) Product {
	if params.Name != nil {
		p.Name = *params.Name
	}
	if params.Price != nil {
		p.Price = *params.Price
	}
	if params.OriginalPrice != nil {
		p.OriginalPrice = params.OriginalPrice
	}
	if params.CategoryID != nil {
		p.CategoryID = *params.CategoryID
	}
	if params.Description != nil {
		p.Description = *params.Description
	}
	if params.FullDescription != nil {
		p.FullDescription = *params.FullDescription
	}
	if params.Image != nil {
		p.Image = *params.Image
	}
	if params.Images != nil {
		p.Images = *params.Images
	}
	if params.EcoTag != nil {
		p.EcoTag = *params.EcoTag
	}
	if params.InStock != nil {
		p.InStock = *params.InStock
	}
	if params.Rating != nil {
		p.Rating = *params.Rating
	}
	if params.ReviewCount != nil {
		p.ReviewCount = *params.ReviewCount
	}
	if params.Features != nil {
		p.Features = *params.Features
	}
	return p
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Clear()
	return nil
}

func (s *service) Categories(ctx context.Context) ([]Category, error) {
	var cached []Category
	if found, _ := s.cache.Get(categoriesCacheKey, &cached); found {
		return cached, nil
	}

	categories, err := s.repo.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []Category{}
	}

	_ = s.cache.Set(categoriesCacheKey, categories)
	return categories, nil
}

func (s *service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
