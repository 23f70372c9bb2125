package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bagelhole-directory/internal/domains/catalog/model"
)

type fakeRepo struct {
	restaurants []model.Restaurant
	err         error
}

func (f *fakeRepo) Load(ctx context.Context) ([]model.Restaurant, error) {
	return f.restaurants, f.err
}

func fixture() []model.Restaurant {
	return []model.Restaurant{
		{ID: "bb-01", Name: "Zelda's", Neighborhood: "Downtown", Price: "$$", Tags: []string{"classic"}, Features: map[string]bool{"outdoor": true}},
		{ID: "bb-02", Name: "anchor bagel", Neighborhood: "Riverside", Price: "$", Tags: []string{"classic", "vegan"}, Features: map[string]bool{}},
		{ID: "bb-03", Name: "Boil & Bake", Neighborhood: "Downtown", Price: "$$$", Tags: []string{"artisan"}, Features: map[string]bool{"outdoor": true, "wifi": true}},
	}
}

func newTestCatalog(t *testing.T, restaurants []model.Restaurant) ServiceInterface {
	t.Helper()
	svc, err := NewCatalogService(context.Background(), &fakeRepo{restaurants: restaurants})
	require.NoError(t, err)
	return svc
}

func listIDs(rs []model.Restaurant) []string {
	ids := make([]string, len(rs))
	for i, r := range rs {
		ids[i] = r.ID
	}
	return ids
}

func TestNewCatalogService_LoadFailureIsTerminal(t *testing.T) {
	_, err := NewCatalogService(context.Background(), &fakeRepo{err: model.ErrInvalidCatalog})
	assert.ErrorIs(t, err, model.ErrInvalidCatalog)
}

func TestList_DefaultSortIsNameCaseInsensitive(t *testing.T) {
	svc := newTestCatalog(t, fixture())

	resp, err := svc.List(context.Background(), model.ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"bb-02", "bb-03", "bb-01"}, listIDs(resp.Restaurants))
}

func TestList_Filters(t *testing.T) {
	svc := newTestCatalog(t, fixture())
	ctx := context.Background()

	tests := []struct {
		name string
		req  model.ListRequest
		want []string
	}{
		{"by neighborhood", model.ListRequest{Neighborhood: "Downtown"}, []string{"bb-03", "bb-01"}},
		{"by price", model.ListRequest{Price: "$"}, []string{"bb-02"}},
		{"by tag", model.ListRequest{Tag: "classic"}, []string{"bb-02", "bb-01"}},
		{"by feature", model.ListRequest{Features: []string{"outdoor"}}, []string{"bb-03", "bb-01"}},
		{"all features must match", model.ListRequest{Features: []string{"outdoor", "wifi"}}, []string{"bb-03"}},
		{"no match", model.ListRequest{Neighborhood: "Uptown"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.List(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, listIDs(resp.Restaurants))
		})
	}
}

func TestList_PriceSorts(t *testing.T) {
	svc := newTestCatalog(t, fixture())
	ctx := context.Background()

	low, err := svc.List(ctx, model.ListRequest{Sort: model.SortByPriceLow})
	require.NoError(t, err)
	assert.Equal(t, []string{"bb-02", "bb-01", "bb-03"}, listIDs(low.Restaurants))

	high, err := svc.List(ctx, model.ListRequest{Sort: model.SortByPriceHigh})
	require.NoError(t, err)
	assert.Equal(t, []string{"bb-03", "bb-01", "bb-02"}, listIDs(high.Restaurants))
}

func TestList_InvalidRequests(t *testing.T) {
	svc := newTestCatalog(t, fixture())
	ctx := context.Background()

	_, err := svc.List(ctx, model.ListRequest{Sort: "rating"})
	assert.Error(t, err)

	_, err = svc.List(ctx, model.ListRequest{Price: "$$$$$"})
	assert.Error(t, err)
}

func TestList_Pagination(t *testing.T) {
	many := make([]model.Restaurant, 0, 40)
	for i := 0; i < 40; i++ {
		many = append(many, model.Restaurant{
			ID:   fmt.Sprintf("bb-%02d", i),
			Name: fmt.Sprintf("Bagel %02d", i),
		})
	}
	svc := newTestCatalog(t, many)
	ctx := context.Background()

	first, err := svc.List(ctx, model.ListRequest{Page: 1})
	require.NoError(t, err)
	assert.Len(t, first.Restaurants, model.PageSize)
	assert.Equal(t, 40, first.Pagination.Total)
	assert.Equal(t, 3, first.Pagination.TotalPages)
	assert.True(t, first.Pagination.HasNext)
	assert.False(t, first.Pagination.HasPrev)

	last, err := svc.List(ctx, model.ListRequest{Page: 3})
	require.NoError(t, err)
	assert.Len(t, last.Restaurants, 10)
	assert.False(t, last.Pagination.HasNext)
	assert.True(t, last.Pagination.HasPrev)

	// Pages past the end clamp to the last page.
	clamped, err := svc.List(ctx, model.ListRequest{Page: 99})
	require.NoError(t, err)
	assert.Equal(t, 3, clamped.Pagination.Page)
	assert.Len(t, clamped.Restaurants, 10)
}

func TestList_EmptyCatalog(t *testing.T) {
	svc := newTestCatalog(t, nil)

	resp, err := svc.List(context.Background(), model.ListRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Restaurants)
	assert.Equal(t, 0, resp.Pagination.TotalPages)
	assert.Equal(t, 1, resp.Pagination.Page)
}

func TestGet(t *testing.T) {
	svc := newTestCatalog(t, fixture())
	ctx := context.Background()

	got, err := svc.Get(ctx, "bb-02")
	require.NoError(t, err)
	assert.Equal(t, "anchor bagel", got.Name)

	_, err = svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, model.ErrRestaurantNotFound)
}

func TestNeighborhoods(t *testing.T) {
	svc := newTestCatalog(t, fixture())
	assert.Equal(t, []string{"Downtown", "Riverside"}, svc.Neighborhoods(context.Background()))
}

func TestTags(t *testing.T) {
	svc := newTestCatalog(t, fixture())
	assert.Equal(t, []string{"artisan", "classic", "vegan"}, svc.Tags(context.Background()))
}
