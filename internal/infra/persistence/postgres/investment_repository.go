package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type investmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository is the constructor for investmentRepository.
func NewInvestmentRepository(db *gorm.DB) repository.InvestmentRepository {
	return &investmentRepository{db: db}
}

// withOwner joins the owning user's id, username and email.
func withOwner(db *gorm.DB) *gorm.DB {
	return db.Preload("User", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "username", "email")
	})
}

func (repo *investmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error) {
	var investmentM model.InvestmentModel
	if err := withOwner(repo.db.WithContext(ctx)).Where("id = ?", id).First(&investmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvestmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find investment")
	}

	return toInvestmentDomain(&investmentM), nil
}

// FindByIDForUpdate locks the row with SELECT ... FOR UPDATE.
func (repo *investmentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Investment, error) {
	var investmentM model.InvestmentModel
	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&investmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvestmentNotFound
		}

		return nil, errors.Wrap(err, "failed to lock investment")
	}

	return toInvestmentDomain(&investmentM), nil
}

func (repo *investmentRepository) List(ctx context.Context) ([]*entity.Investment, error) {
	var investmentMs []*model.InvestmentModel
	if err := withOwner(repo.db.WithContext(ctx)).Order("created_at, id").Find(&investmentMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list investments")
	}

	investments := make([]*entity.Investment, 0, len(investmentMs))
	for _, investmentM := range investmentMs {
		investments = append(investments, toInvestmentDomain(investmentM))
	}

	return investments, nil
}

func (repo *investmentRepository) Create(ctx context.Context, investment *entity.Investment) error {
	investmentM := fromInvestmentDomain(investment)
	if investmentM.ID == uuid.Nil {
		investmentM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(investmentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create investment")
	}

	investment.ID = investmentM.ID
	investment.CreatedAt = investmentM.CreatedAt
	investment.UpdatedAt = investmentM.UpdatedAt

	return nil
}

func (repo *investmentRepository) Update(ctx context.Context, investment *entity.Investment) error {
	investmentM := fromInvestmentDomain(investment)

	result := repo.db.WithContext(ctx).
		Model(investmentM).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(investmentM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update investment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInvestmentNotFound
	}

	investment.UpdatedAt = investmentM.UpdatedAt

	return nil
}

func (repo *investmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.InvestmentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete investment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInvestmentNotFound
	}

	return nil
}

// SumPaybackByUser returns the sum of payback_amount over the user's investments, 0 when none.
func (repo *investmentRepository) SumPaybackByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := repo.db.WithContext(ctx).
		Model(&model.InvestmentModel{}).
		Select("COALESCE(SUM(payback_amount), 0)").
		Where("user_id = ?", userID).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum payback amounts")
	}

	return total, nil
}

func toInvestmentDomain(investmentM *model.InvestmentModel) *entity.Investment {
	history := make([]entity.PaybackEntry, 0, len(investmentM.PaybackHistory))
	for _, entryM := range investmentM.PaybackHistory {
		history = append(history, entity.PaybackEntry{
			Date:   entryM.Date,
			Amount: entryM.Amount,
			Total:  entryM.Total,
		})
	}

	investment := &entity.Investment{
		ID:             investmentM.ID,
		UserID:         investmentM.UserID,
		Username:       investmentM.Username,
		PaymentName:    investmentM.PaymentName,
		InvestedAmount: investmentM.InvestedAmount,
		PaybackAmount:  investmentM.PaybackAmount,
		Days:           investmentM.Days,
		PaybackHistory: history,
		IsApproved:     investmentM.IsApproved,
		TransactionID:  investmentM.TransactionID,
		CreatedAt:      investmentM.CreatedAt,
		UpdatedAt:      investmentM.UpdatedAt,
	}
	if investmentM.User != nil {
		investment.User = &entity.InvestmentOwner{
			ID:       investmentM.User.ID,
			Username: investmentM.User.Username,
			Email:    investmentM.User.Email,
		}
	}

	return investment
}

func fromInvestmentDomain(investment *entity.Investment) *model.InvestmentModel {
	history := make([]model.PaybackEntryModel, 0, len(investment.PaybackHistory))
	for _, entry := range investment.PaybackHistory {
		history = append(history, model.PaybackEntryModel{
			Date:   entry.Date,
			Amount: entry.Amount,
			Total:  entry.Total,
		})
	}

	return &model.InvestmentModel{
		ID:             investment.ID,
		UserID:         investment.UserID,
		Username:       investment.Username,
		PaymentName:    investment.PaymentName,
		InvestedAmount: investment.InvestedAmount,
		PaybackAmount:  investment.PaybackAmount,
		Days:           investment.Days,
		PaybackHistory: history,
		IsApproved:     investment.IsApproved,
		TransactionID:  investment.TransactionID,
		CreatedAt:      investment.CreatedAt,
		UpdatedAt:      investment.UpdatedAt,
	}
}
