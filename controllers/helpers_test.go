package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"gift-shop/models"
	"gift-shop/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memProductStore struct {
	products  map[string]models.Product
	order     []string
	nextID    int
	listErr   error
	insertErr error
}

func newMemProductStore() *memProductStore {
	return &memProductStore{products: map[string]models.Product{}}
}

func (s *memProductStore) seed(p models.Product) {
	s.products[p.ID] = p
	s.order = append(s.order, p.ID)
}

func (s *memProductStore) List(ctx context.Context) ([]models.Product, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	products := []models.Product{}
	for _, id := range s.order {
		products = append(products, s.products[id])
	}
	return products, nil
}

func (s *memProductStore) Get(ctx context.Context, id string) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &p, nil
}

func (s *memProductStore) Insert(ctx context.Context, product *models.Product) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.nextID++
	product.ID = fmt.Sprintf("prod-%d", s.nextID)
	s.seed(*product)
	return nil
}

func (s *memProductStore) Update(ctx context.Context, product *models.Product) error {
	if _, ok := s.products[product.ID]; !ok {
		return models.ErrNotFound
	}
	s.products[product.ID] = *product
	return nil
}

func (s *memProductStore) Delete(ctx context.Context, id string) error {
	if _, ok := s.products[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.products, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *memProductStore) Categories(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	categories := []string{}
	for _, id := range s.order {
		c := s.products[id].Category
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	return categories, nil
}

type memInquiryStore struct {
	inserted  []*models.Inquiry
	insertErr error
}

func (s *memInquiryStore) Insert(ctx context.Context, inquiry *models.Inquiry) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	inquiry.ID = fmt.Sprintf("inq-%d", len(s.inserted)+1)
	s.inserted = append(s.inserted, inquiry)
	return nil
}

type testEnv struct {
	router       *gin.Engine
	productStore *memProductStore
	inquiryStore *memInquiryStore
}

// newTestEnv wires the full public route surface against in-memory stores.
// The admin middleware is left out so mutation handlers are reachable
// directly; the auth gate has its own tests.
func newTestEnv() *testEnv {
	productStore := newMemProductStore()
	inquiryStore := &memInquiryStore{}

	catalog := services.NewCatalogService(productStore, nil)
	carts := services.NewCartManager()
	inquiries := services.NewInquiryService(inquiryStore, nil, "9354382722")

	productCtrl := NewProductController(catalog)
	inquiryCtrl := NewInquiryController(inquiries)
	cartCtrl := NewCartController(carts, catalog, inquiries)

	router := gin.New()
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.GET("/categories", productCtrl.GetAllCategories)
	router.POST("/products", productCtrl.CreateProduct)
	router.PUT("/products/:id", productCtrl.UpdateProduct)
	router.DELETE("/products/:id", productCtrl.DeleteProduct)
	router.POST("/inquiries", inquiryCtrl.SubmitInquiry)
	router.GET("/cart", cartCtrl.GetCart)
	router.DELETE("/cart", cartCtrl.ClearCart)
	router.POST("/cart/items", cartCtrl.AddItem)
	router.PUT("/cart/items/:productId", cartCtrl.UpdateItem)
	router.DELETE("/cart/items/:productId", cartCtrl.RemoveItem)
	router.POST("/cart/checkout", cartCtrl.Checkout)

	return &testEnv{router: router, productStore: productStore, inquiryStore: inquiryStore}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
}
