package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/domain/validation"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const passwordRule = "required,min=8"

// userService implements the UserUsecase interface.
type userService struct {
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	validator *validation.Validator
	events    eventEmitter
	catalog   *config.CatalogConfig
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Validator *validation.Validator
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		validator: params.Validator,
		events:    eventEmitter{publisher: params.Publisher},
		catalog:   catalogConfig(params.Config),
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// CreateUser validates the input, checks uniqueness, hashes the password and stores the user.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	user := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Username:     input.Username,
		PhoneNumber:  input.PhoneNumber,
		Address:      toAddress(input.Address),
		IsActive:     true,
		Role:         entity.Role(input.Role),
		ProfileImage: input.ProfileImage,
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = *input.DateOfBirth
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	user.Normalize()

	violations := srv.validator.Var("password", input.Password, passwordRule)
	violations = append(violations, srv.validator.Struct(user)...)

	uniqueness, err := srv.checkUniqueness(ctx, user, uuid.Nil)
	if err != nil {
		return nil, err
	}
	violations = append(violations, uniqueness...)

	if err := violations.Err(); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}
	user.PasswordHash = hash

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.String("user_id", user.ID.String()))
	srv.events.emit(ctx, srv.log(ctx), constants.EventUserCreated, user.ID, user)

	return user, nil
}

// ListUsers returns one page of users.
func (srv *userService) ListUsers(ctx context.Context, page, limit int) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx, entity.NewPage(page, limit, srv.catalog.DefaultPageLimit, srv.catalog.MaxPageLimit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateUser merges input onto the stored user, re-validates and re-checks uniqueness excluding the user itself.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUserUpdates(user, input)
	user.Normalize()

	var violations validation.Violations
	if input.Password != nil {
		violations = srv.validator.Var("password", *input.Password, passwordRule)
	}
	violations = append(violations, srv.validator.Struct(user)...)

	uniqueness, err := srv.checkUniqueness(ctx, user, user.ID)
	if err != nil {
		return nil, err
	}
	violations = append(violations, uniqueness...)

	if err := violations.Err(); err != nil {
		return nil, err
	}

	if input.Password != nil {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

			return nil, domainerrors.ErrPasswordHashFailed
		}
		user.PasswordHash = hash
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.events.emit(ctx, srv.log(ctx), constants.EventUserUpdated, user.ID, user)

	return user, nil
}

// checkUniqueness reports email and username collisions with users other than self.
func (srv *userService) checkUniqueness(ctx context.Context, user *entity.User, self uuid.UUID) (validation.Violations, error) {
	var violations validation.Violations

	if user.Email != "" {
		existing, err := srv.userRepo.FindByEmail(ctx, user.Email)
		switch {
		case err == nil && existing.ID != self:
			violations = violations.Add("email", "unique", "is already in use")
		case err != nil && !errors.Is(err, repository.ErrUserNotFound):
			return nil, errors.Wrap(err, "failed to check email uniqueness")
		}
	}

	if user.Username != "" {
		existing, err := srv.userRepo.FindByUsername(ctx, user.Username)
		switch {
		case err == nil && existing.ID != self:
			violations = violations.Add("username", "unique", "is already in use")
		case err != nil && !errors.Is(err, repository.ErrUserNotFound):
			return nil, errors.Wrap(err, "failed to check username uniqueness")
		}
	}

	return violations, nil
}

// applyUserUpdates copies the non-nil input fields onto user.
func applyUserUpdates(user *entity.User, input *usecase.UpdateUserInput) {
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.Address != nil {
		user.Address = toAddress(*input.Address)
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = *input.DateOfBirth
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Role != nil {
		user.Role = entity.Role(*input.Role)
	}
	if input.ProfileImage != nil {
		user.ProfileImage = *input.ProfileImage
	}
}

func toAddress(input usecase.AddressInput) entity.Address {
	return entity.Address{
		Street:  input.Street,
		City:    input.City,
		State:   input.State,
		ZipCode: input.ZipCode,
	}
}

// catalogConfig returns the listing limits, falling back to the package defaults.
func catalogConfig(cfg *config.Config) *config.CatalogConfig {
	if cfg != nil && cfg.Catalog != nil {
		return cfg.Catalog
	}

	return &config.CatalogConfig{
		DefaultPageLimit: constants.DefaultPageLimit,
		MaxPageLimit:     constants.DefaultMaxPageLimit,
	}
}
