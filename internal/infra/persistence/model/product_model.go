package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table. CategoryID carries no foreign key constraint.
type ProductModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductName string                      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string                      `gorm:"type:text"`
	Image       string                      `gorm:"type:varchar(2048)"`
	Images      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CategoryID  uuid.UUID                   `gorm:"type:uuid;index;not null"`
	Price       float64                     `gorm:"type:double precision;not null;check:chk_products_price_non_negative,price >= 0"`
	PVValue     float64                     `gorm:"column:pv_value;type:double precision;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
