package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "image", "price", "description", "category"})
}

func TestListAllOrdersByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM products ORDER BY id ASC").
		WillReturnRows(productRows().
			AddRow(6, "iPhone 15 Pro", "https://img/6", 28990000, "A17 Pro", "Phone").
			AddRow(7, "MacBook Air M3", "https://img/7", 31990000, "M3", "Laptop").
			AddRow(10, "Dell XPS 14", "https://img/10", 45990000, nil, "Laptop"))

	repo := NewProductRepo(db)
	items, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, uint64(6), items[0].ID)
	assert.Equal(t, uint64(7), items[1].ID)
	assert.Equal(t, uint64(10), items[2].ID)
	assert.Equal(t, "MacBook Air M3", items[1].Name)
	assert.Nil(t, items[2].Description)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListAllEmptyCatalog(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM products ORDER BY id ASC").WillReturnRows(productRows())

	repo := NewProductRepo(db)
	items, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGetByIDFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM products WHERE id=").
		WithArgs(uint64(7)).
		WillReturnRows(productRows().
			AddRow(7, "MacBook Air M3", "https://img/7", 31990000, "M3", "Laptop"))

	repo := NewProductRepo(db)
	p, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), p.ID)
	assert.Equal(t, "MacBook Air M3", p.Name)
	require.NotNil(t, p.Category)
	assert.Equal(t, "Laptop", *p.Category)
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM products WHERE id=").
		WithArgs(uint64(999)).
		WillReturnRows(productRows())

	repo := NewProductRepo(db)
	_, err = repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetByIDTranslatesWrappedNoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Drivers may wrap ErrNoRows; the sentinel translation must still fire.
	mock.ExpectQuery("FROM products WHERE id=").
		WithArgs(uint64(999)).
		WillReturnError(fmt.Errorf("scan row: %w", sql.ErrNoRows))

	repo := NewProductRepo(db)
	_, err = repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestListByCategoryExactMatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM products WHERE category=").
		WithArgs("Laptop").
		WillReturnRows(productRows().
			AddRow(7, "MacBook Air M3", "https://img/7", 31990000, "M3", "Laptop").
			AddRow(10, "Dell XPS 14", "https://img/10", 45990000, "OLED", "Laptop"))

	repo := NewProductRepo(db)
	items, err := repo.ListByCategory(context.Background(), "Laptop")
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, p := range items {
		require.NotNil(t, p.Category)
		assert.Equal(t, "Laptop", *p.Category)
	}
}

func TestListByCategoryUnknownIsEmptyNotError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM products WHERE category=").
		WithArgs("Nonexistent").
		WillReturnRows(productRows())

	repo := NewProductRepo(db)
	items, err := repo.ListByCategory(context.Background(), "Nonexistent")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListAllStoreError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM products ORDER BY id ASC").
		WillReturnError(errors.New("connection reset"))

	repo := NewProductRepo(db)
	_, err = repo.ListAll(context.Background())
	assert.Error(t, err)
}
