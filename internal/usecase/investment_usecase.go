package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaybackEntryInput is one payback history element supplied on create or update.
type PaybackEntryInput struct {
	Date   *time.Time
	Amount *decimal.Decimal
	Total  *decimal.Decimal
}

// CreateInvestmentInput represents the input for creating an investment.
type CreateInvestmentInput struct {
	UserID         *uuid.UUID
	Username       string
	PaymentName    string
	InvestedAmount *decimal.Decimal
	PaybackAmount  *decimal.Decimal
	Days           *int
	PaybackHistory []PaybackEntryInput
	IsApproved     *bool
	TransactionID  string
}

// UpdateInvestmentInput holds the fields to change. Nil fields are left as stored;
// a non-nil PaybackHistory replaces the stored history.
type UpdateInvestmentInput struct {
	UserID         *uuid.UUID
	Username       *string
	PaymentName    *string
	InvestedAmount *decimal.Decimal
	PaybackAmount  *decimal.Decimal
	Days           *int
	PaybackHistory []PaybackEntryInput
	IsApproved     *bool
	TransactionID  *string
}

// RecordPaybackInput appends one entry to an investment's payback history.
// Date defaults to now.
type RecordPaybackInput struct {
	Amount *decimal.Decimal
	Date   *time.Time
}

// LatestPayback is the most recent history entry with the investment's running total.
type LatestPayback struct {
	LatestEntry  entity.PaybackEntry `json:"latestEntry"`
	TotalPayback decimal.Decimal     `json:"totalPayback"`
}

// InvestmentUsecase defines the interface for the investment ledger.
type InvestmentUsecase interface {
	CreateInvestment(ctx context.Context, input *CreateInvestmentInput) (*entity.Investment, error)
	ListInvestments(ctx context.Context) ([]*entity.Investment, error)
	GetInvestment(ctx context.Context, id uuid.UUID) (*entity.Investment, error)

	// UpdateInvestment merges input onto the stored record. Concurrent updates are last-write-wins.
	UpdateInvestment(ctx context.Context, id uuid.UUID, input *UpdateInvestmentInput) (*entity.Investment, error)
	DeleteInvestment(ctx context.Context, id uuid.UUID) error

	// TotalPaybackForUser sums paybackAmount over the user's investments.
	TotalPaybackForUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)

	// LatestPaybackEntry returns the last history entry of an investment.
	LatestPaybackEntry(ctx context.Context, id uuid.UUID) (*LatestPayback, error)

	// RecordPayback appends an entry under a row lock and returns the updated investment.
	RecordPayback(ctx context.Context, id uuid.UUID, input *RecordPaybackInput) (*entity.Investment, error)
}
