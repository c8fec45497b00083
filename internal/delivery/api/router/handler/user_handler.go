package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// AddressRequest is a postal address in a user request body.
type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	Email        string         `json:"email"`
	Username     string         `json:"username"`
	Password     string         `json:"password"`
	PhoneNumber  string         `json:"phoneNumber"`
	Address      AddressRequest `json:"address"`
	DateOfBirth  *string        `json:"dateOfBirth"`
	IsActive     *bool          `json:"isActive"`
	Role         string         `json:"role"`
	ProfileImage string         `json:"profileImage"`
}

// UpdateUserRequest represents the request body for a partial user update
type UpdateUserRequest struct {
	FirstName    *string         `json:"firstName"`
	LastName     *string         `json:"lastName"`
	Email        *string         `json:"email"`
	Username     *string         `json:"username"`
	Password     *string         `json:"password"`
	PhoneNumber  *string         `json:"phoneNumber"`
	Address      *AddressRequest `json:"address"`
	DateOfBirth  *string         `json:"dateOfBirth"`
	IsActive     *bool           `json:"isActive"`
	Role         *string         `json:"role"`
	ProfileImage *string         `json:"profileImage"`
}

func (r AddressRequest) toInput() usecase.AddressInput {
	return usecase.AddressInput{
		Street:  r.Street,
		City:    r.City,
		State:   r.State,
		ZipCode: r.ZipCode,
	}
}

// CreateUser handles user creation
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	dateOfBirth, err := parseDate("dateOfBirth", req.DateOfBirth)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.CreateUserInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Username:     req.Username,
		Password:     req.Password,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address.toInput(),
		DateOfBirth:  dateOfBirth,
		IsActive:     req.IsActive,
		Role:         req.Role,
		ProfileImage: req.ProfileImage,
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.WithEntity(c, http.StatusCreated, "User created successfully", "user", user)
}

// ListUsers handles retrieving one page of users
func (h *UserHandler) ListUsers(c echo.Context) error {
	var req PageRequest
	if err := echo.QueryParamsBinder(c).
		Int("page", &req.Page).
		Int("limit", &req.Limit).
		BindError(); err != nil {
		return response.BindingError(c)
	}

	users, err := h.userUC.ListUsers(c.Request().Context(), req.Page, req.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// GetUser handles retrieving a single user
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateUser handles a partial user update
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	dateOfBirth, err := parseDate("dateOfBirth", req.DateOfBirth)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateUserInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Username:     req.Username,
		Password:     req.Password,
		PhoneNumber:  req.PhoneNumber,
		DateOfBirth:  dateOfBirth,
		IsActive:     req.IsActive,
		Role:         req.Role,
		ProfileImage: req.ProfileImage,
	}
	if req.Address != nil {
		address := req.Address.toInput()
		input.Address = &address
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.WithEntity(c, http.StatusOK, "User updated successfully", "user", user)
}
