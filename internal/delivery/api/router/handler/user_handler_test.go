package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/validation"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUserHandler(t *testing.T) (*UserHandler, *mockUC.MockUserUsecase) {
	userUC := mockUC.NewMockUserUsecase(t)

	return NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()}), userUC
}

func TestUserHandler_CreateUser_Success(t *testing.T) {
	h, userUC := newTestUserHandler(t)
	body := `{
		"firstName": "Ada",
		"lastName": "Lovelace",
		"email": "ada@example.com",
		"username": "ada",
		"password": "secret123",
		"phoneNumber": "5551234567",
		"address": {"zipCode": "12345"},
		"dateOfBirth": "1990-12-10"
	}`
	c, rec := newTestContext(http.MethodPost, "/api/users", body)

	userUC.EXPECT().
		CreateUser(mock.Anything, mock.AnythingOfType("*usecase.CreateUserInput")).
		RunAndReturn(func(_ context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
			require.NotNil(t, input.DateOfBirth)
			assert.Equal(t, time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC), *input.DateOfBirth)
			assert.Equal(t, "12345", input.Address.ZipCode)
			assert.Nil(t, input.IsActive)

			return &entity.User{ID: uuid.New(), Email: input.Email, Username: input.Username}, nil
		})

	require.NoError(t, h.CreateUser(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	got := decodeMap(t, rec)
	assert.Equal(t, "User created successfully", got["message"])
	assert.Equal(t, "ada@example.com", got["user"].(map[string]any)["email"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_CreateUser_MalformedBody(t *testing.T) {
	h, _ := newTestUserHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/users", `{"firstName":`)

	require.NoError(t, h.CreateUser(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Code)
}

func TestUserHandler_CreateUser_BadDate(t *testing.T) {
	h, _ := newTestUserHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/users", `{"dateOfBirth":"tomorrow"}`)

	require.NoError(t, h.CreateUser(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Code)
	assert.Contains(t, rec.Body.String(), `"field":"dateOfBirth"`)
}

func TestUserHandler_CreateUser_ValidationDetails(t *testing.T) {
	h, userUC := newTestUserHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/users", `{"email":"nope"}`)

	violations := validation.Violations{}.
		Add("email", "email", "must be a valid email address").
		Required("firstName")
	userUC.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(nil, violations)

	require.NoError(t, h.CreateUser(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Code)
	details, ok := body.Details.([]any)
	require.True(t, ok)
	assert.Len(t, details, 2)
}

func TestUserHandler_ListUsers_PassesPaging(t *testing.T) {
	h, userUC := newTestUserHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/users?page=2&limit=5", "")

	userUC.EXPECT().ListUsers(mock.Anything, 2, 5).Return([]*entity.User{{ID: uuid.New()}}, nil)

	require.NoError(t, h.ListUsers(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, '[', rune(rec.Body.String()[0]))
}

func TestUserHandler_ListUsers_NonNumericPage(t *testing.T) {
	h, _ := newTestUserHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/users?page=two", "")

	require.NoError(t, h.ListUsers(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Code)
}

func TestUserHandler_GetUser_InvalidID(t *testing.T) {
	h, _ := newTestUserHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/users/abc", "")
	withParam(c, "id", "abc")

	require.NoError(t, h.GetUser(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	h, userUC := newTestUserHandler(t)
	id := uuid.New()
	c, rec := newTestContext(http.MethodGet, "/api/users/"+id.String(), "")
	withParam(c, "id", id.String())

	userUC.EXPECT().GetUser(mock.Anything, id).Return(nil, domainerrors.ErrUserNotFound)

	require.NoError(t, h.GetUser(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", decodeError(t, rec).Code)
}

func TestUserHandler_UpdateUser_PartialFields(t *testing.T) {
	h, userUC := newTestUserHandler(t)
	id := uuid.New()
	c, rec := newTestContext(http.MethodPut, "/api/users/"+id.String(), `{"firstName":"Grace","address":{"zipCode":"54321"}}`)
	withParam(c, "id", id.String())

	userUC.EXPECT().
		UpdateUser(mock.Anything, id, mock.MatchedBy(func(input *usecase.UpdateUserInput) bool {
			return input.FirstName != nil && *input.FirstName == "Grace" &&
				input.LastName == nil &&
				input.Address != nil && input.Address.ZipCode == "54321"
		})).
		Return(&entity.User{ID: id, FirstName: "Grace"}, nil)

	require.NoError(t, h.UpdateUser(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User updated successfully", decodeMap(t, rec)["message"])
}
