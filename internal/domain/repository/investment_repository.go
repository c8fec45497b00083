package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvestmentNotFound is returned when an investment is not found.
var ErrInvestmentNotFound = errors.New("investment not found")

// InvestmentRepository defines persistence operations for the investment ledger.
type InvestmentRepository interface {
	// FindByID retrieves an investment with its owner's username and email joined in.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error)

	// FindByIDForUpdate retrieves an investment and locks its row until the surrounding
	// transaction ends. Only meaningful inside TransactionManager.Execute.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Investment, error)

	// List returns every investment with owner fields joined in.
	List(ctx context.Context) ([]*entity.Investment, error)

	Create(ctx context.Context, investment *entity.Investment) error
	Update(ctx context.Context, investment *entity.Investment) error
	Delete(ctx context.Context, id uuid.UUID) error

	// SumPaybackByUser returns the sum of paybackAmount over the user's investments, 0 when none.
	SumPaybackByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}
