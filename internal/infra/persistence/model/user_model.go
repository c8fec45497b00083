// Package model holds the GORM persistence models. Each model mirrors one table.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName    string       `gorm:"type:varchar(50);not null"`
	LastName     string       `gorm:"type:varchar(50);not null"`
	Email        string       `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username     string       `gorm:"type:varchar(20);uniqueIndex;not null"`
	PasswordHash string       `gorm:"type:varchar(255);not null"`
	PhoneNumber  string       `gorm:"type:varchar(10);not null"`
	Address      AddressModel `gorm:"embedded;embeddedPrefix:address_"`
	DateOfBirth  time.Time    `gorm:"type:date;not null"`
	IsActive     bool         `gorm:"not null"`
	Role         string       `gorm:"type:varchar(20);not null"`
	ProfileImage string       `gorm:"type:varchar(2048)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AddressModel is embedded into UserModel with the address_ column prefix.
type AddressModel struct {
	Street  string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(100)"`
	State   string `gorm:"type:varchar(100)"`
	ZipCode string `gorm:"type:varchar(5);not null"`
}
