package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Investment is a ledger record owned by a user.
// UserID is not checked against the user directory.
type Investment struct {
	ID             uuid.UUID        `json:"id"`
	UserID         uuid.UUID        `json:"userId" validate:"required"`
	User           *InvestmentOwner `json:"user,omitempty"`
	Username       string           `json:"username" validate:"required"`
	PaymentName    string           `json:"paymentName" validate:"required"`
	InvestedAmount decimal.Decimal  `json:"investedAmount"`
	PaybackAmount  decimal.Decimal  `json:"paybackAmount"`
	Days           int              `json:"days"`
	PaybackHistory []PaybackEntry   `json:"paybackHistory"`
	IsApproved     bool             `json:"isApproved"`
	TransactionID  string           `json:"transactionId" validate:"required"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// InvestmentOwner is the slice of the owning user joined into investment reads.
type InvestmentOwner struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// PaybackEntry records one payment back to the investor.
// Total is the running payback amount after this entry.
type PaybackEntry struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Total  decimal.Decimal `json:"total"`
}

// LatestPayback returns the last history entry, or false when there is none.
func (i *Investment) LatestPayback() (PaybackEntry, bool) {
	if len(i.PaybackHistory) == 0 {
		return PaybackEntry{}, false
	}

	return i.PaybackHistory[len(i.PaybackHistory)-1], true
}

// RecordPayback appends an entry of amount at date and advances PaybackAmount to the new total.
func (i *Investment) RecordPayback(amount decimal.Decimal, date time.Time) PaybackEntry {
	total := i.PaybackAmount.Add(amount)
	entry := PaybackEntry{
		Date:   date,
		Amount: amount,
		Total:  total,
	}
	i.PaybackHistory = append(i.PaybackHistory, entry)
	i.PaybackAmount = total

	return entry
}
