package postgres

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productColumns = []string{
	"id", "product_name", "description", "image", "images", "category_id", "price", "pv_value", "created_at", "updated_at",
}

func productRow(id, categoryID uuid.UUID, name string, price float64) []driver.Value {
	now := time.Now()

	return []driver.Value{id, name, "", "", []byte(`["a.png"]`), categoryID, price, 1.5, now, now}
}

func TestProductRepository_AveragePrice(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(AVG(price), 0) FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(42.5))

	avg, err := repo.AveragePrice(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 42.5, avg, 1e-9)
}

func TestProductRepository_TotalPVValue_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(pv_value), 0) FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(0.0))

	total, err := repo.TotalPVValue(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestProductRepository_HighestPricedByCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)
	catA, catB := uuid.New(), uuid.New()
	topA, topB := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(highestPricedByCategorySQL)).
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow(productRow(topA, catA, "Sofa", 900)...).
			AddRow(productRow(topB, catB, "Piano", 2500)...))

	tops, err := repo.HighestPricedByCategory(context.Background())
	require.NoError(t, err)
	require.Len(t, tops, 2)
	assert.Equal(t, catA, tops[0].CategoryID)
	assert.Equal(t, topA, tops[0].HighestPricedProduct.ID)
	assert.Equal(t, []string{"a.png"}, tops[0].HighestPricedProduct.Images)
	assert.Equal(t, catB, tops[1].CategoryID)
}

func TestProductRepository_Search_EscapesWildcards(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE product_name ILIKE $1 OR description ILIKE $2 ORDER BY product_name`)).
		WithArgs(`%50\%\_off%`, `%50\%\_off%`).
		WillReturnRows(sqlmock.NewRows(productColumns))

	products, err := repo.Search(context.Background(), "50%_off")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductRepository_List_FilterAndSort(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)
	categoryID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE category_id = $1 ORDER BY "pv_value" DESC,id LIMIT $2 OFFSET $3`)).
		WithArgs(categoryID, 10, 10).
		WillReturnRows(sqlmock.NewRows(productColumns).AddRow(productRow(uuid.New(), categoryID, "Lamp", 30)...))

	products, err := repo.List(context.Background(), entity.ProductListQuery{
		Page:       entity.Page{Number: 2, Limit: 10},
		SortField:  entity.ProductSortPVValue,
		Descending: true,
		CategoryID: &categoryID,
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Lamp", products[0].ProductName)
}

func TestProductRepository_List_RejectsUnknownSortField(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewProductRepository(db)

	_, err := repo.List(context.Background(), entity.ProductListQuery{
		Page:      entity.Page{Number: 1, Limit: 10},
		SortField: "password",
	})
	assert.Error(t, err)
}

func TestProductRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "products" WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), id), repository.ErrProductNotFound)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
