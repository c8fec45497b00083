package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/validation"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	categoryRepo *mockRepo.MockCategoryRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return categoryServiceFixtures{
		service: NewCategoryService(CategoryServiceParams{
			CategoryRepo: categoryRepo,
			Validator:    newTestValidator(),
			Publisher:    publisher,
			Logger:       newDiscardLogger(),
		}),
		categoryRepo: categoryRepo,
		publisher:    publisher,
	}
}

func TestCategoryService_CreateCategory_Defaults(t *testing.T) {
	f := createTestCategoryService(t)
	ctx := context.Background()

	f.categoryRepo.EXPECT().FindByName(ctx, "Furniture").Return(nil, repository.ErrCategoryNotFound)
	f.categoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).Return(nil)
	f.publisher.EXPECT().Publish(ctx, eventOfType(constants.EventCategoryCreated)).Return(nil)

	category, err := f.service.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "  Furniture  "})

	require.NoError(t, err)
	assert.Equal(t, "Furniture", category.Name)
	assert.Equal(t, "", category.Description)
	assert.True(t, category.IsActive)
}

func TestCategoryService_CreateCategory_MissingName(t *testing.T) {
	f := createTestCategoryService(t)

	_, err := f.service.CreateCategory(context.Background(), &usecase.CreateCategoryInput{Name: "   "})

	var violations validation.Violations
	require.True(t, errors.As(err, &violations))
	assert.Equal(t, "required", ruleFor(violations, "name"))
}

func TestCategoryService_CreateCategory_DuplicateName(t *testing.T) {
	f := createTestCategoryService(t)
	ctx := context.Background()

	f.categoryRepo.EXPECT().FindByName(ctx, "Furniture").Return(&entity.Category{ID: uuid.New(), Name: "Furniture"}, nil)

	_, err := f.service.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "Furniture"})

	var violations validation.Violations
	require.True(t, errors.As(err, &violations))
	assert.Equal(t, "unique", ruleFor(violations, "name"))
}

func TestCategoryService_UpdateCategory_SameNameIsNotADuplicate(t *testing.T) {
	f := createTestCategoryService(t)
	ctx := context.Background()
	existing := &entity.Category{ID: uuid.New(), Name: "Furniture", IsActive: true}

	f.categoryRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	f.categoryRepo.EXPECT().FindByName(ctx, "Furniture").Return(existing, nil)
	f.categoryRepo.EXPECT().Update(ctx, existing).Return(nil)
	f.publisher.EXPECT().Publish(ctx, eventOfType(constants.EventCategoryUpdated)).Return(nil)

	category, err := f.service.UpdateCategory(ctx, existing.ID, &usecase.UpdateCategoryInput{
		Description: ptr("Chairs and tables"),
		IsActive:    ptr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, "Chairs and tables", category.Description)
	assert.False(t, category.IsActive)
}

func TestCategoryService_GetCategory_NotFound(t *testing.T) {
	f := createTestCategoryService(t)
	ctx := context.Background()
	id := uuid.New()

	f.categoryRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCategoryNotFound)

	_, err := f.service.GetCategory(ctx, id)

	assert.Equal(t, domainerrors.ErrCategoryNotFound, err)
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	f := createTestCategoryService(t)
	ctx := context.Background()
	id := uuid.New()

	f.categoryRepo.EXPECT().Delete(ctx, id).Return(nil)
	f.publisher.EXPECT().Publish(ctx, eventOfType(constants.EventCategoryDeleted)).Return(nil)

	require.NoError(t, f.service.DeleteCategory(ctx, id))
}

func TestCategoryService_DeleteCategory_NotFound(t *testing.T) {
	f := createTestCategoryService(t)
	ctx := context.Background()
	id := uuid.New()

	f.categoryRepo.EXPECT().Delete(ctx, id).Return(repository.ErrCategoryNotFound)

	assert.Equal(t, domainerrors.ErrCategoryNotFound, f.service.DeleteCategory(ctx, id))
}
