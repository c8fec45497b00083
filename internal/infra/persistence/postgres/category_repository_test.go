package postgres

import (
	"context"
	"testing"

	"storefront/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_Exists(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{name: "present", count: 1, want: true},
		{name: "absent", count: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewCategoryRepository(db)
			id := uuid.New()

			mock.ExpectQuery(`SELECT count\(\*\) FROM "categories" WHERE id = \$1`).
				WithArgs(id).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			exists, err := repo.Exists(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, exists)
		})
	}
}

func TestCategoryRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM "categories" WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), id))
}

func TestCategoryRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM "categories" WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), id), repository.ErrCategoryNotFound)
}
