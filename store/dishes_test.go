package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchDishes_Filters(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		categoryID string
		searchTerm string
		wantIDs    []string
	}{
		{
			name:    "no filters returns everything",
			wantIDs: []string{"dish1", "dish10", "dish2", "dish3", "dish4", "dish5", "dish6", "dish7", "dish8", "dish9"},
		},
		{
			name:       "category filter",
			categoryID: "cat4",
			wantIDs:    []string{"dish10", "dish8", "dish9"},
		},
		{
			name:       "search is case-insensitive substring",
			searchTerm: "SALADA",
			wantIDs:    []string{"dish2"},
		},
		{
			name:       "category and search intersect",
			categoryID: "cat4",
			searchTerm: "suco",
			wantIDs:    []string{"dish10"},
		},
		{
			name:       "search misses",
			searchTerm: "pizza",
			wantIDs:    []string{},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			dishes, err := s.FetchDishes(ctx, testCase.categoryID, testCase.searchTerm)
			require.NoError(t, err)
			ids := make([]string, 0, len(dishes))
			for _, d := range dishes {
				ids = append(ids, d.ID)
			}
			assert.ElementsMatch(t, testCase.wantIDs, ids)
		})
	}
}

func TestFetchDishes_JoinsCategoryNameAtReadTime(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	dish, err := s.FetchDishByID(ctx, "dish1")
	require.NoError(t, err)
	assert.Equal(t, "Entradas", dish.CategoryName)

	// Renaming the category is reflected immediately on the next read.
	_, err = s.UpdateCategory(ctx, "cat1", "Aperitivos")
	require.NoError(t, err)
	dish, err = s.FetchDishByID(ctx, "dish1")
	require.NoError(t, err)
	assert.Equal(t, "Aperitivos", dish.CategoryName)
}

func TestFetchDishes_UnknownCategoryFallsBack(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	created, err := s.AddDish(ctx, DishInput{Name: "Misterioso", Price: 12, Available: true, CategoryID: "gone"})
	require.NoError(t, err)
	assert.Equal(t, "Sem Categoria", created.CategoryName)
}

func TestAddDish_AssignsIdentityAndPlaceholderImage(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	created, err := s.AddDish(ctx, DishInput{Name: "Gnocchi", Price: 40, Available: true, CategoryID: "cat2"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Contains(t, created.ImageURL, "picsum.photos")
	assert.Equal(t, "Pratos Principais", created.CategoryName)

	withImage, err := s.AddDish(ctx, DishInput{Name: "Polenta", Price: 22, Available: true, CategoryID: "cat1", ImageURL: "https://example.com/p.png"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/p.png", withImage.ImageURL)
}

func TestUpdateDish(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	price := 27.5
	category := "cat4"
	updated, err := s.UpdateDish(ctx, "dish1", DishPatch{Price: &price, CategoryID: &category})
	require.NoError(t, err)
	assert.InDelta(t, 27.5, updated.Price, 1e-9)
	assert.Equal(t, "Bebidas", updated.CategoryName)
	// Untouched fields survive the merge.
	assert.Equal(t, "Bruschetta Clássica", updated.Name)

	_, err = s.UpdateDish(ctx, "missing", DishPatch{Price: &price})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteDish_AbsentIsNoop(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	require.NoError(t, s.DeleteDish(ctx, "dish1"))
	_, err := s.FetchDishByID(ctx, "dish1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, s.DeleteDish(ctx, "dish1"))
}

func TestUploadImage_DerivesPlaceholderURL(t *testing.T) {
	at := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	s := newSeededStore(t, WithClock(func() time.Time { return at }))

	url, err := s.UploadImage(context.Background(), "my dish.png")
	require.NoError(t, err)
	assert.Equal(t, "https://picsum.photos/seed/my_dish.png1716206400000/400/300", url)
}

func TestCategoryCRUD(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	created, err := s.AddCategory(ctx, "Massas")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	// A referenced category cannot be removed.
	err = s.DeleteCategory(ctx, "cat1")
	assert.ErrorIs(t, err, ErrCategoryInUse)

	require.NoError(t, s.DeleteCategory(ctx, created.ID))
	err = s.DeleteCategory(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.UpdateCategory(ctx, "missing", "Nada")
	assert.ErrorIs(t, err, ErrNotFound)
}
