package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu/tech-store-backend/internal/model"
	"github.com/minhvu/tech-store-backend/internal/repository"
)

func newCatalogTest(t *testing.T) (*echo.Echo, sqlmock.Sqlmock, *CatalogHandler) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return echo.New(), mock, NewCatalogHandler(repository.NewProductRepo(db))
}

func seededRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "image", "price", "description", "category"}).
		AddRow(6, "iPhone 15 Pro", "https://img/6", 28990000, "A17 Pro", "Phone").
		AddRow(7, "MacBook Air M3", "https://img/7", 31990000, "M3", "Laptop").
		AddRow(8, "Galaxy S24 Ultra", "https://img/8", 29990000, "200MP", "Phone")
}

func TestListProductsReturnsOrderedArray(t *testing.T) {
	e, mock, h := newCatalogTest(t)
	mock.ExpectQuery("FROM products ORDER BY id ASC").WillReturnRows(seededRows())

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.ListProducts(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	var items []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 3)
	assert.Equal(t, uint64(6), items[0].ID)
	assert.Equal(t, uint64(7), items[1].ID)
	assert.Equal(t, uint64(8), items[2].ID)
}

func TestListProductsEmptyCatalog(t *testing.T) {
	e, mock, h := newCatalogTest(t)
	mock.ExpectQuery("FROM products ORDER BY id ASC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "image", "price", "description", "category"}))

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.ListProducts(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetProductByID(t *testing.T) {
	e, mock, h := newCatalogTest(t)
	mock.ExpectQuery("FROM products WHERE id=").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "image", "price", "description", "category"}).
			AddRow(7, "MacBook Air M3", "https://img/7", 31990000, "M3", "Laptop"))

	req := httptest.NewRequest(http.MethodGet, "/api/products/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("7")
	require.NoError(t, h.GetProduct(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var p model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "MacBook Air M3", p.Name)
	assert.Equal(t, int64(31990000), p.Price)
}

func TestGetProductNotFound(t *testing.T) {
	e, mock, h := newCatalogTest(t)
	mock.ExpectQuery("FROM products WHERE id=").
		WithArgs(uint64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "image", "price", "description", "category"}))

	req := httptest.NewRequest(http.MethodGet, "/api/products/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("999")
	require.NoError(t, h.GetProduct(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProductRejectsNonNumericID(t *testing.T) {
	e, mock, h := newCatalogTest(t)
	// No query expectation: a malformed id never reaches the store.

	req := httptest.NewRequest(http.MethodGet, "/api/products/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, h.GetProduct(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByCategoryFilters(t *testing.T) {
	e, mock, h := newCatalogTest(t)
	mock.ExpectQuery("FROM products WHERE category=").
		WithArgs("Laptop").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "image", "price", "description", "category"}).
			AddRow(7, "MacBook Air M3", "https://img/7", 31990000, "M3", "Laptop"))

	req := httptest.NewRequest(http.MethodGet, "/api/products/category/Laptop", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/products/category/:category")
	c.SetParamNames("category")
	c.SetParamValues("Laptop")
	require.NoError(t, h.ListByCategory(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var items []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, uint64(7), items[0].ID)
}

func TestListByCategoryUnknownReturnsEmptyArray(t *testing.T) {
	e, mock, h := newCatalogTest(t)
	mock.ExpectQuery("FROM products WHERE category=").
		WithArgs("Nonexistent").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "image", "price", "description", "category"}))

	req := httptest.NewRequest(http.MethodGet, "/api/products/category/Nonexistent", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/products/category/:category")
	c.SetParamNames("category")
	c.SetParamValues("Nonexistent")
	require.NoError(t, h.ListByCategory(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListProductsStoreErrorIs500(t *testing.T) {
	e, mock, h := newCatalogTest(t)
	mock.ExpectQuery("FROM products ORDER BY id ASC").
		WillReturnError(assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.ListProducts(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
