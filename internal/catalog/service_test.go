package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAll(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, p Product) (*Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, p Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) GetCategories(ctx context.Context) ([]Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Category), args.Error(1)
}

func (m *MockRepository) FirstCategory(ctx context.Context) (*Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func TestService_CreateDefault(t *testing.T) {
	ctx := context.Background()

	t.Run("RequiresExistingCategory", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FirstCategory", ctx).Return(nil, ErrNoCategories)

		_, err := svc.CreateDefault(ctx)
		assert.ErrorIs(t, err, ErrNoCategories)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("SeedsStubRecord", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FirstCategory", ctx).Return(&Category{ID: "c1", Name: "Yoga"}, nil)
		repo.On("Create", ctx, mock.MatchedBy(func(p Product) bool {
			return p.Name == "Sample Name" &&
				p.Price == 0 &&
				p.CategoryID == "c1" &&
				p.EcoTag == "Eco Friendly" &&
				!p.InStock
		})).Return(&Product{ID: "p-new", Name: "Sample Name", CategoryID: "c1"}, nil)

		created, err := svc.CreateDefault(ctx)
		require.NoError(t, err)
		assert.Equal(t, "p-new", created.ID)
		assert.Equal(t, "Yoga", created.CategoryName)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("OnlyProvidedFieldsOverwrite", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		existing := &Product{
			ID:          "p1",
			Name:        "Bamboo Yoga Mat",
			Price:       49.99,
			Description: "Natural rubber base",
			InStock:     true,
		}
		repo.On("GetByID", ctx, "p1").Return(existing, nil)

		inStock := false
		price := 0.0
		repo.On("Update", ctx, mock.MatchedBy(func(p Product) bool {
			// false and 0 must be settable; untouched fields keep prior values
			return p.Price == 0 && !p.InStock &&
				p.Name == "Bamboo Yoga Mat" &&
				p.Description == "Natural rubber base"
		})).Return(nil)

		updated, err := svc.Update(ctx, "p1", UpdateParams{InStock: &inStock, Price: &price})
		require.NoError(t, err)
		assert.False(t, updated.InStock)
		assert.Equal(t, 0.0, updated.Price)
		assert.Equal(t, "Bamboo Yoga Mat", updated.Name)
	})

	t.Run("NoFields", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Update(ctx, "p1", UpdateParams{})
		assert.ErrorIs(t, err, ErrNoFields)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		name := "Renamed"
		repo.On("GetByID", ctx, "missing").Return(nil, ErrProductNotFound)

		_, err := svc.Update(ctx, "missing", UpdateParams{Name: &name})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestService_Browse(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("GetAll", ctx).Return([]Product{
		{ID: "p1", Name: "Mat", Price: 50, CategoryID: "c1"},
		{ID: "p2", Name: "Shoes", Price: 120, CategoryID: "c2"},
	}, nil).Once()

	result, err := svc.Browse(ctx, Query{CategoryID: "c2"})
	require.NoError(t, err)
	if assert.Len(t, result, 1) {
		assert.Equal(t, "p2", result[0].ID)
	}

	// second browse is served from cache; the single .Once() expectation above
	// fails the test if the repo is hit again
	result, err = svc.Browse(ctx, Query{})
	require.NoError(t, err)
	assert.Len(t, result, 2)
	repo.AssertExpectations(t)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("Delete", ctx, "missing").Return(ErrProductNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrProductNotFound)

	repo.On("Delete", ctx, "p1").Return(nil)
	assert.NoError(t, svc.Delete(ctx, "p1"))
}

func TestService_ListEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("GetAll", ctx).Return([]Product(nil), nil)

	products, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestService_ListError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("GetAll", ctx).Return(nil, errors.New("db error"))

	_, err := svc.List(ctx)
	assert.Error(t, err)
}
