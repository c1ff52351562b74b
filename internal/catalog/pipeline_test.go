package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func sampleCatalog() []Product {
	return []Product{
		{ID: "p1", Name: "Bamboo Yoga Mat", Description: "Natural rubber base", CategoryID: "c1", Price: 49.99, Rating: 4.8},
		{ID: "p2", Name: "Recycled Running Shoes", Description: "Made from ocean plastic", CategoryID: "c2", Price: 120.00, Rating: 4.5},
		{ID: "p3", Name: "Organic Cotton Tee", Description: "Soft breathable cotton", CategoryID: "c2", Price: 25.00, Rating: 4.2},
		{ID: "p4", Name: "Cork Water Bottle", Description: "Keeps drinks cold", CategoryID: "c1", Price: 35.50, Rating: 4.9},
	}
}

func TestApply_SearchMatchesNameOrDescription(t *testing.T) {
	products := sampleCatalog()

	byName := Apply(products, Query{Search: "yoga"})
	if assert.Len(t, byName, 1) {
		assert.Equal(t, "p1", byName[0].ID)
	}

	byDescription := Apply(products, Query{Search: "OCEAN"})
	if assert.Len(t, byDescription, 1) {
		assert.Equal(t, "p2", byDescription[0].ID)
	}

	none := Apply(products, Query{Search: "kayak"})
	assert.Empty(t, none)
}

func TestApply_EmptyTermMatchesEverything(t *testing.T) {
	products := sampleCatalog()
	result := Apply(products, Query{})
	assert.Len(t, result, len(products))
}

func TestApply_CategorySelector(t *testing.T) {
	products := sampleCatalog()

	all := Apply(products, Query{CategoryID: "all"})
	assert.Len(t, all, 4)

	c2 := Apply(products, Query{CategoryID: "c2"})
	assert.Len(t, c2, 2)
	for _, p := range c2 {
		assert.Equal(t, "c2", p.CategoryID)
	}
}

func TestApply_PriceIntervalIsInclusive(t *testing.T) {
	products := sampleCatalog()

	result := Apply(products, Query{MinPrice: floatPtr(25.00), MaxPrice: floatPtr(49.99)})
	ids := []string{}
	for _, p := range result {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []string{"p1", "p3", "p4"}, ids)
}

func TestApply_SortKeys(t *testing.T) {
	products := sampleCatalog()

	t.Run("NameAscendingIsDefault", func(t *testing.T) {
		result := Apply(products, Query{})
		assert.Equal(t, "Bamboo Yoga Mat", result[0].Name)
		assert.Equal(t, "Recycled Running Shoes", result[3].Name)
	})

	t.Run("UnknownKeyFallsBackToName", func(t *testing.T) {
		result := Apply(products, Query{Sort: SortKey("bogus")})
		assert.Equal(t, "Bamboo Yoga Mat", result[0].Name)
	})

	t.Run("PriceAscendingThenDescendingAreReverses", func(t *testing.T) {
		asc := Apply(products, Query{Sort: SortPriceLow})
		desc := Apply(products, Query{Sort: SortPriceHigh})

		for i := range asc {
			assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
		}
	})

	t.Run("RatingDescending", func(t *testing.T) {
		result := Apply(products, Query{Sort: SortRating})
		assert.Equal(t, "p4", result[0].ID)
		assert.Equal(t, "p3", result[3].ID)
	})
}

func TestApply_IsIdempotent(t *testing.T) {
	products := sampleCatalog()
	queries := []Query{
		{},
		{Search: "cotton"},
		{CategoryID: "c1", Sort: SortPriceHigh},
		{MinPrice: floatPtr(30), MaxPrice: floatPtr(130), Sort: SortRating},
	}

	for _, q := range queries {
		once := Apply(products, q)
		twice := Apply(once, q)
		assert.Equal(t, once, twice)
	}
}

func TestApply_EmptyCatalog(t *testing.T) {
	result := Apply(nil, Query{Search: "anything"})
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	products := sampleCatalog()
	original := sampleCatalog()

	_ = Apply(products, Query{Sort: SortPriceHigh})
	assert.Equal(t, original, products)
}
