package services

import (
	"context"
	"errors"
	"testing"

	"gift-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductStore struct {
	products  map[string]models.Product
	order     []string
	nextID    int
	listErr   error
	insertErr error
	updateErr error
	deleteErr error
	listCalls int
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[string]models.Product{}}
}

func (f *fakeProductStore) List(ctx context.Context) ([]models.Product, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	products := []models.Product{}
	for _, id := range f.order {
		products = append(products, f.products[id])
	}
	return products, nil
}

func (f *fakeProductStore) Get(ctx context.Context, id string) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProductStore) Insert(ctx context.Context, product *models.Product) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.nextID++
	product.ID = string(rune('a' + f.nextID - 1))
	f.products[product.ID] = *product
	f.order = append(f.order, product.ID)
	return nil
}

func (f *fakeProductStore) Update(ctx context.Context, product *models.Product) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.products[product.ID]; !ok {
		return models.ErrNotFound
	}
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductStore) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.products[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.products, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeProductStore) Categories(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	categories := []string{}
	for _, id := range f.order {
		c := f.products[id].Category
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	return categories, nil
}

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func draft(name, category string, price int) models.ProductDraft {
	return models.ProductDraft{Name: name, Category: category, Price: intPtr(price)}
}

func TestCatalogCreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		draft models.ProductDraft
	}{
		{"missing name", models.ProductDraft{Category: "Gift Sets", Price: intPtr(100)}},
		{"missing category", models.ProductDraft{Name: "Mug", Price: intPtr(100)}},
		{"missing price", models.ProductDraft{Name: "Mug", Category: "Gift Sets"}},
		{"negative price", models.ProductDraft{Name: "Mug", Category: "Gift Sets", Price: intPtr(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeProductStore()
			catalog := NewCatalogService(store, nil)

			_, err := catalog.Create(context.Background(), tt.draft)

			assert.True(t, models.IsValidation(err))
			assert.Empty(t, store.products, "invalid drafts must never reach the store")
		})
	}
}

func TestCatalogCreateAppliesDefaults(t *testing.T) {
	store := newFakeProductStore()
	catalog := NewCatalogService(store, nil)

	created, err := catalog.Create(context.Background(), draft("Mug", "Home & Garden", 0))

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 0, created.Price)
	assert.True(t, created.InStock)
	assert.False(t, created.Featured)
}

func TestCatalogCreateRefreshesListing(t *testing.T) {
	store := newFakeProductStore()
	catalog := NewCatalogService(store, nil)

	_, err := catalog.Create(context.Background(), draft("Mug", "Home & Garden", 200))
	require.NoError(t, err)

	assert.Equal(t, 1, store.listCalls, "mutation must trigger an implicit list refresh")
}

func TestCatalogUpdateVisibleInSubsequentList(t *testing.T) {
	store := newFakeProductStore()
	catalog := NewCatalogService(store, nil)

	created, err := catalog.Create(context.Background(), draft("Mug", "Home & Garden", 200))
	require.NoError(t, err)

	_, err = catalog.Update(context.Background(), created.ID, models.ProductDraft{
		Name:  "Premium Mug",
		Price: intPtr(350),
	})
	require.NoError(t, err)

	products, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Premium Mug", products[0].Name)
	assert.Equal(t, 350, products[0].Price)
	assert.Equal(t, "Home & Garden", products[0].Category, "omitted fields keep stored values")
}

func TestCatalogUpdateAppliesPartialDraft(t *testing.T) {
	store := newFakeProductStore()
	catalog := NewCatalogService(store, nil)

	created, err := catalog.Create(context.Background(), draft("Mug", "Home & Garden", 200))
	require.NoError(t, err)

	updated, err := catalog.Update(context.Background(), created.ID, models.ProductDraft{Featured: boolPtr(true)})
	require.NoError(t, err)

	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.Featured)
}

func TestCatalogUpdateNotFound(t *testing.T) {
	catalog := NewCatalogService(newFakeProductStore(), nil)

	_, err := catalog.Update(context.Background(), "ghost", draft("Mug", "Home & Garden", 1))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCatalogDeleteNotFoundLeavesListUnchanged(t *testing.T) {
	store := newFakeProductStore()
	catalog := NewCatalogService(store, nil)

	created, err := catalog.Create(context.Background(), draft("Mug", "Home & Garden", 200))
	require.NoError(t, err)

	err = catalog.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, models.ErrNotFound)

	products, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, created.ID, products[0].ID)
}

func TestCatalogDeleteRemovesProduct(t *testing.T) {
	store := newFakeProductStore()
	catalog := NewCatalogService(store, nil)

	created, err := catalog.Create(context.Background(), draft("Mug", "Home & Garden", 200))
	require.NoError(t, err)

	require.NoError(t, catalog.Delete(context.Background(), created.ID))

	_, err = catalog.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCatalogListFetchError(t *testing.T) {
	store := newFakeProductStore()
	store.listErr = errors.New("store unavailable")
	catalog := NewCatalogService(store, nil)

	_, err := catalog.List(context.Background())

	var fe *models.FetchError
	assert.ErrorAs(t, err, &fe)
}

func TestCatalogCreatePersistenceError(t *testing.T) {
	store := newFakeProductStore()
	store.insertErr = errors.New("write failed")
	catalog := NewCatalogService(store, nil)

	_, err := catalog.Create(context.Background(), draft("Mug", "Home & Garden", 200))

	var pe *models.PersistenceError
	assert.ErrorAs(t, err, &pe)
}
