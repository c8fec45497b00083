package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// InvestmentModel mirrors the 'investments' table. User is loaded by Preload only.
type InvestmentModel struct {
	ID             uuid.UUID                              `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID                              `gorm:"type:uuid;index;not null"`
	User           *UserModel                             `gorm:"foreignKey:UserID"`
	Username       string                                 `gorm:"type:varchar(255);not null"`
	PaymentName    string                                 `gorm:"type:varchar(255);not null"`
	InvestedAmount decimal.Decimal                        `gorm:"type:numeric(18,2);not null"`
	PaybackAmount  decimal.Decimal                        `gorm:"type:numeric(18,2);not null"`
	Days           int                                    `gorm:"not null"`
	PaybackHistory datatypes.JSONSlice[PaybackEntryModel] `gorm:"type:jsonb"`
	IsApproved     bool                                   `gorm:"not null"`
	TransactionID  string                                 `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (InvestmentModel) TableName() string {
	return "investments"
}

// PaybackEntryModel is one element of the payback_history JSON array.
type PaybackEntryModel struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Total  decimal.Decimal `json:"total"`
}

// All lists every model for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&CategoryModel{},
		&ProductModel{},
		&InvestmentModel{},
	}
}
