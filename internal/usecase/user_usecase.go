package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput carries a postal address. It replaces the stored address as a whole.
type AddressInput struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

// CreateUserInput represents the input for creating a user.
type CreateUserInput struct {
	FirstName    string
	LastName     string
	Email        string
	Username     string
	Password     string
	PhoneNumber  string
	Address      AddressInput
	DateOfBirth  *time.Time
	IsActive     *bool
	Role         string
	ProfileImage string
}

// UpdateUserInput holds the fields to change. Nil fields are left as stored.
type UpdateUserInput struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Username     *string
	Password     *string
	PhoneNumber  *string
	Address      *AddressInput
	DateOfBirth  *time.Time
	IsActive     *bool
	Role         *string
	ProfileImage *string
}

// UserUsecase defines the interface for the user directory.
type UserUsecase interface {
	// CreateUser validates the input, hashes the password and stores the user.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// ListUsers returns one page of users.
	ListUsers(ctx context.Context, page, limit int) ([]*entity.User, error)

	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateUser merges input onto the stored user and re-validates the result.
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
}
