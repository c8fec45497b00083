// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account in the user directory.
// Email and Username are unique across all users.
type User struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName" validate:"required,min=2,max=50"`
	LastName     string    `json:"lastName" validate:"required,min=2,max=50"`
	Email        string    `json:"email" validate:"required,email"`
	Username     string    `json:"username" validate:"required,min=3,max=20"`
	PasswordHash string    `json:"-"`
	PhoneNumber  string    `json:"phoneNumber" validate:"required,phone10"`
	Address      Address   `json:"address"`
	DateOfBirth  time.Time `json:"dateOfBirth" validate:"required,pastdate"`
	IsActive     bool      `json:"isActive"`
	Role         Role      `json:"role" validate:"required,oneof=user admin moderator"`
	ProfileImage string    `json:"profileImage,omitempty" validate:"omitempty,imageurl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Normalize trims free-text fields and lowercases the email in place.
func (u *User) Normalize() {
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	u.Email = NormalizeEmail(u.Email)
	u.Username = strings.TrimSpace(u.Username)
	u.PhoneNumber = strings.TrimSpace(u.PhoneNumber)
	u.ProfileImage = strings.TrimSpace(u.ProfileImage)
	u.Address.Normalize()
	if u.Role == "" {
		u.Role = RoleUser
	}
}

// NormalizeEmail returns the canonical stored form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
