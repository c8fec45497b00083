package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productSortColumns maps whitelisted sort fields to columns.
var productSortColumns = map[entity.ProductSortField]string{
	entity.ProductSortPrice:       "price",
	entity.ProductSortProductName: "product_name",
	entity.ProductSortPVValue:     "pv_value",
	entity.ProductSortCreatedAt:   "created_at",
	entity.ProductSortUpdatedAt:   "updated_at",
}

// highestPricedByCategorySQL keeps the first row per category_id. Ties on price go to
// the oldest product, then the smallest id.
const highestPricedByCategorySQL = `SELECT DISTINCT ON (category_id) * FROM products ` +
	`ORDER BY category_id, price DESC, created_at ASC, id ASC`

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *productRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	return repo.findOne(ctx, "product_name = ?", name)
}

func (repo *productRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// List returns one page of products filtered by category and sorted by a whitelisted column.
func (repo *productRepository) List(ctx context.Context, query entity.ProductListQuery) ([]*entity.Product, error) {
	column, ok := productSortColumns[query.SortField]
	if !ok {
		return nil, errors.Errorf("unsupported product sort field %q", query.SortField)
	}

	tx := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if query.CategoryID != nil {
		tx = tx.Where("category_id = ?", *query.CategoryID)
	}

	var productMs []*model.ProductModel
	if err := tx.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: query.Descending}).
		Order("id").
		Offset(query.Page.Offset()).
		Limit(query.Page.Limit).
		Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productMs), nil
}

// FindAll returns every product ordered by price.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	if err := repo.db.WithContext(ctx).Order("price, id").Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	return toProductDomains(productMs), nil
}

// Search matches term as a literal, case-insensitive substring of name or description.
func (repo *productRepository) Search(ctx context.Context, term string) ([]*entity.Product, error) {
	pattern := "%" + escapeLike(term) + "%"

	var productMs []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("product_name ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("product_name").
		Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return toProductDomains(productMs), nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	if productM.ID == uuid.Nil {
		productM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return translateProductWriteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).Model(productM).Select("*").Omit("id", "created_at").Updates(productM)
	if result.Error != nil {
		return translateProductWriteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// AveragePrice returns the mean price, or 0 when there are no products.
func (repo *productRepository) AveragePrice(ctx context.Context) (float64, error) {
	return repo.scalar(ctx, "COALESCE(AVG(price), 0)")
}

// TotalPVValue returns the sum of pv_value, or 0 when there are no products.
func (repo *productRepository) TotalPVValue(ctx context.Context) (float64, error) {
	return repo.scalar(ctx, "COALESCE(SUM(pv_value), 0)")
}

func (repo *productRepository) scalar(ctx context.Context, expr string) (float64, error) {
	var value float64
	row := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Select(expr).Row()
	if err := row.Scan(&value); err != nil {
		return 0, errors.Wrapf(err, "failed to aggregate products with %s", expr)
	}

	return value, nil
}

// HighestPricedByCategory returns one maximal-price product per distinct category ID.
func (repo *productRepository) HighestPricedByCategory(ctx context.Context) ([]*entity.CategoryTopProduct, error) {
	var productMs []*model.ProductModel
	if err := repo.db.WithContext(ctx).Raw(highestPricedByCategorySQL).Scan(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate highest priced products")
	}

	tops := make([]*entity.CategoryTopProduct, 0, len(productMs))
	for _, productM := range productMs {
		tops = append(tops, &entity.CategoryTopProduct{
			CategoryID:           productM.CategoryID,
			HighestPricedProduct: toProductDomain(productM),
		})
	}

	return tops, nil
}

func translateProductWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrProductAlreadyExists.WrapMessage("product name already exists")
	}
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrInvalidInput.WrapMessage("product violates a check constraint")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func toProductDomains(productMs []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	images := []string(productM.Images)
	if images == nil {
		images = []string{}
	}

	return &entity.Product{
		ID:          productM.ID,
		ProductName: productM.ProductName,
		Description: productM.Description,
		Image:       productM.Image,
		Images:      images,
		CategoryID:  productM.CategoryID,
		Price:       productM.Price,
		PVValue:     productM.PVValue,
		CreatedAt:   productM.CreatedAt,
		UpdatedAt:   productM.UpdatedAt,
	}
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	images := product.Images
	if images == nil {
		images = []string{}
	}

	return &model.ProductModel{
		ID:          product.ID,
		ProductName: product.ProductName,
		Description: product.Description,
		Image:       product.Image,
		Images:      images,
		CategoryID:  product.CategoryID,
		Price:       product.Price,
		PVValue:     product.PVValue,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
