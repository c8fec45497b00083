package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

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
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type investmentService struct {
	txManager      repository.TransactionManager
	investmentRepo repository.InvestmentRepository
	validator      *validation.Validator
	events         eventEmitter
	logger         *slog.Logger
}

// InvestmentServiceParams holds dependencies for InvestmentService, injected by Fx.
type InvestmentServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	InvestmentRepo repository.InvestmentRepository
	Validator      *validation.Validator
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewInvestmentService creates a new investment service instance
func NewInvestmentService(params InvestmentServiceParams) usecase.InvestmentUsecase {
	return &investmentService{
		txManager:      params.TxManager,
		investmentRepo: params.InvestmentRepo,
		validator:      params.Validator,
		events:         eventEmitter{publisher: params.Publisher},
		logger:         params.Logger,
	}
}

func (srv *investmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// CreateInvestment stores the record as given. The owning user is not looked up.
func (srv *investmentService) CreateInvestment(ctx context.Context, input *usecase.CreateInvestmentInput) (*entity.Investment, error) {
	var violations validation.Violations
	investment := &entity.Investment{
		Username:      input.Username,
		PaymentName:   input.PaymentName,
		PaybackAmount: decimal.Zero,
		TransactionID: input.TransactionID,
	}

	if input.UserID != nil {
		investment.UserID = *input.UserID
	}
	if input.InvestedAmount != nil {
		investment.InvestedAmount = *input.InvestedAmount
	} else {
		violations = violations.Required("investedAmount")
	}
	if input.Days != nil {
		investment.Days = *input.Days
	} else {
		violations = violations.Required("days")
	}
	if input.PaybackAmount != nil {
		investment.PaybackAmount = *input.PaybackAmount
	}
	if input.IsApproved != nil {
		investment.IsApproved = *input.IsApproved
	}

	history, historyViolations := toPaybackHistory(input.PaybackHistory)
	investment.PaybackHistory = history
	violations = append(violations, historyViolations...)
	violations = append(violations, srv.validator.Struct(investment)...)

	if err := violations.Err(); err != nil {
		return nil, err
	}

	if err := srv.investmentRepo.Create(ctx, investment); err != nil {
		return nil, errors.Wrap(err, "failed to create investment")
	}

	srv.events.emit(ctx, srv.log(ctx), constants.EventInvestmentCreated, investment.ID, investment)

	return investment, nil
}

func (srv *investmentService) ListInvestments(ctx context.Context) ([]*entity.Investment, error) {
	investments, err := srv.investmentRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list investments")
	}

	return investments, nil
}

func (srv *investmentService) GetInvestment(ctx context.Context, id uuid.UUID) (*entity.Investment, error) {
	investment, err := srv.investmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateInvestmentError(err, "failed to find investment")
	}

	return investment, nil
}

func (srv *investmentService) UpdateInvestment(ctx context.Context, id uuid.UUID, input *usecase.UpdateInvestmentInput) (*entity.Investment, error) {
	investment, err := srv.GetInvestment(ctx, id)
	if err != nil {
		return nil, err
	}

	var violations validation.Violations
	applyInvestmentUpdates(investment, input)
	if input.PaybackHistory != nil {
		history, historyViolations := toPaybackHistory(input.PaybackHistory)
		investment.PaybackHistory = history
		violations = append(violations, historyViolations...)
	}
	violations = append(violations, srv.validator.Struct(investment)...)

	if err := violations.Err(); err != nil {
		return nil, err
	}

	if err := srv.investmentRepo.Update(ctx, investment); err != nil {
		return nil, translateInvestmentError(err, "failed to update investment")
	}

	srv.events.emit(ctx, srv.log(ctx), constants.EventInvestmentUpdated, investment.ID, investment)

	return investment, nil
}

func (srv *investmentService) DeleteInvestment(ctx context.Context, id uuid.UUID) error {
	if err := srv.investmentRepo.Delete(ctx, id); err != nil {
		return translateInvestmentError(err, "failed to delete investment")
	}

	srv.events.emit(ctx, srv.log(ctx), constants.EventInvestmentDeleted, id, nil)

	return nil
}

func (srv *investmentService) TotalPaybackForUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	total, err := srv.investmentRepo.SumPaybackByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum payback")
	}

	return total, nil
}

// LatestPaybackEntry returns the last history entry and the investment's paybackAmount.
func (srv *investmentService) LatestPaybackEntry(ctx context.Context, id uuid.UUID) (*usecase.LatestPayback, error) {
	investment, err := srv.GetInvestment(ctx, id)
	if err != nil {
		return nil, err
	}

	entry, ok := investment.LatestPayback()
	if !ok {
		return nil, domainerrors.ErrPaybackHistoryNotFound
	}

	return &usecase.LatestPayback{
		LatestEntry:  entry,
		TotalPayback: investment.PaybackAmount,
	}, nil
}

// RecordPayback appends an entry inside a transaction holding the investment's row lock,
// so concurrent appends see each other's totals.
func (srv *investmentService) RecordPayback(ctx context.Context, id uuid.UUID, input *usecase.RecordPaybackInput) (*entity.Investment, error) {
	var violations validation.Violations
	switch {
	case input.Amount == nil:
		violations = violations.Required("amount")
	case !input.Amount.IsPositive():
		violations = violations.Add("amount", "gt", "must be greater than 0")
	}
	if err := violations.Err(); err != nil {
		return nil, err
	}

	date := time.Now().UTC()
	if input.Date != nil {
		date = *input.Date
	}

	var updated *entity.Investment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		investmentRepo := repoFactory.InvestmentRepo()

		investment, err := investmentRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		investment.RecordPayback(*input.Amount, date)

		if err := investmentRepo.Update(ctx, investment); err != nil {
			return err
		}
		updated = investment

		return nil
	})
	if err != nil {
		return nil, translateInvestmentError(err, "failed to record payback")
	}

	// The locked read skips the owner join; reload to return the same shape as GetInvestment.
	if reloaded, err := srv.investmentRepo.FindByID(ctx, id); err == nil {
		updated = reloaded
	}

	srv.log(ctx).Info("Payback recorded",
		slog.String("investment_id", id.String()),
		slog.String("total", updated.PaybackAmount.String()),
	)
	srv.events.emit(ctx, srv.log(ctx), constants.EventPaybackRecorded, updated.ID, updated)

	return updated, nil
}

func translateInvestmentError(err error, message string) error {
	if errors.Is(err, repository.ErrInvestmentNotFound) {
		return domainerrors.ErrInvestmentNotFound
	}

	return errors.Wrap(err, message)
}

// toPaybackHistory converts history input, defaulting dates to now and requiring amount and total.
func toPaybackHistory(inputs []usecase.PaybackEntryInput) ([]entity.PaybackEntry, validation.Violations) {
	var violations validation.Violations
	history := make([]entity.PaybackEntry, 0, len(inputs))
	now := time.Now().UTC()

	for i, in := range inputs {
		entry := entity.PaybackEntry{Date: now}
		if in.Date != nil {
			entry.Date = *in.Date
		}
		if in.Amount != nil {
			entry.Amount = *in.Amount
		} else {
			violations = violations.Required(historyField(i, "amount"))
		}
		if in.Total != nil {
			entry.Total = *in.Total
		} else {
			violations = violations.Required(historyField(i, "total"))
		}
		history = append(history, entry)
	}

	return history, violations
}

func historyField(index int, name string) string {
	return "paybackHistory[" + strconv.Itoa(index) + "]." + name
}

func applyInvestmentUpdates(investment *entity.Investment, input *usecase.UpdateInvestmentInput) {
	if input.UserID != nil {
		investment.UserID = *input.UserID
	}
	if input.Username != nil {
		investment.Username = *input.Username
	}
	if input.PaymentName != nil {
		investment.PaymentName = *input.PaymentName
	}
	if input.InvestedAmount != nil {
		investment.InvestedAmount = *input.InvestedAmount
	}
	if input.PaybackAmount != nil {
		investment.PaybackAmount = *input.PaybackAmount
	}
	if input.Days != nil {
		investment.Days = *input.Days
	}
	if input.IsApproved != nil {
		investment.IsApproved = *input.IsApproved
	}
	if input.TransactionID != nil {
		investment.TransactionID = *input.TransactionID
	}
}
