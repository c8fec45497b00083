package validation

import (
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() *entity.User {
	return &entity.User{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		Username:    "ada",
		PhoneNumber: "5551234567",
		Address:     entity.Address{City: "London", ZipCode: "12345"},
		DateOfBirth: time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
		Role:        entity.RoleUser,
	}
}

func fields(vs Violations) []string {
	names := make([]string, 0, len(vs))
	for _, v := range vs {
		names = append(names, v.Field)
	}

	return names
}

func TestValidator_ValidUser(t *testing.T) {
	assert.Nil(t, New().Struct(validUser()))
}

func TestValidator_UserFieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(u *entity.User)
		field  string
		rule   string
	}{
		{name: "short phone", mutate: func(u *entity.User) { u.PhoneNumber = "555123456" }, field: "phoneNumber", rule: "phone10"},
		{name: "phone with letters", mutate: func(u *entity.User) { u.PhoneNumber = "55512345ab" }, field: "phoneNumber", rule: "phone10"},
		{name: "zip with four digits", mutate: func(u *entity.User) { u.Address.ZipCode = "1234" }, field: "address.zipCode", rule: "zip5"},
		{name: "missing zip", mutate: func(u *entity.User) { u.Address.ZipCode = "" }, field: "address.zipCode", rule: "required"},
		{name: "future birth date", mutate: func(u *entity.User) { u.DateOfBirth = time.Now().Add(24 * time.Hour) }, field: "dateOfBirth", rule: "pastdate"},
		{name: "bad email", mutate: func(u *entity.User) { u.Email = "not-an-email" }, field: "email", rule: "email"},
		{name: "short first name", mutate: func(u *entity.User) { u.FirstName = "A" }, field: "firstName", rule: "min"},
		{name: "long username", mutate: func(u *entity.User) { u.Username = "abcdefghijklmnopqrstu" }, field: "username", rule: "max"},
		{name: "unknown role", mutate: func(u *entity.User) { u.Role = "owner" }, field: "role", rule: "oneof"},
		{name: "image without extension", mutate: func(u *entity.User) { u.ProfileImage = "https://cdn.example.com/me" }, field: "profileImage", rule: "imageurl"},
		{name: "image over ftp", mutate: func(u *entity.User) { u.ProfileImage = "ftp://cdn.example.com/me.png" }, field: "profileImage", rule: "imageurl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := validUser()
			tt.mutate(user)

			violations := New().Struct(user)
			require.Len(t, violations, 1)
			assert.Equal(t, tt.field, violations[0].Field)
			assert.Equal(t, tt.rule, violations[0].Rule)
		})
	}
}

func TestValidator_ImageURLIsCaseInsensitive(t *testing.T) {
	user := validUser()
	user.ProfileImage = "HTTPS://cdn.example.com/me.JPEG"

	assert.Nil(t, New().Struct(user))
}

func TestValidator_ReportsEveryFailingField(t *testing.T) {
	violations := New().Struct(&entity.User{Role: entity.RoleUser})

	assert.Subset(t, fields(violations), []string{
		"firstName", "lastName", "email", "username", "phoneNumber", "address.zipCode", "dateOfBirth",
	})
}

func TestValidator_ProductPriceMustNotBeNegative(t *testing.T) {
	product := &entity.Product{ProductName: "Desk", CategoryID: uuid.New(), Price: -1}

	violations := New().Struct(product)
	require.Len(t, violations, 1)
	assert.Equal(t, "price", violations[0].Field)
	assert.Equal(t, "gte", violations[0].Rule)

	product.Price = 0
	assert.Nil(t, New().Struct(product))
}

func TestValidator_Var(t *testing.T) {
	violations := New().Var("password", "short", "required,min=8")

	require.Len(t, violations, 1)
	assert.Equal(t, "password", violations[0].Field)
	assert.Equal(t, "min", violations[0].Rule)
}

func TestValidator_VarDescribesUUIDRule(t *testing.T) {
	violations := New().Var("categoryId", "not-a-uuid", "uuid")

	require.Len(t, violations, 1)
	assert.Equal(t, "uuid", violations[0].Rule)
	assert.Equal(t, "must be a valid UUID", violations[0].Message)
}

func TestViolations_AppError(t *testing.T) {
	var err error = Violations{}.Required("name")

	var appErr domainerrors.AppError
	require.True(t, errors.As(errors.Wrap(err, "create category"), &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, []Violation{{Field: "name", Rule: "required", Message: "is required"}}, appErr.Details())
}

func TestViolations_ErrIsNilWhenEmpty(t *testing.T) {
	assert.NoError(t, Violations(nil).Err())
	assert.Error(t, Violations{}.Required("name").Err())
}
