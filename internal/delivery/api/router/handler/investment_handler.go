package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/validation"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// InvestmentHandlerParams holds dependencies for InvestmentHandler, injected by Fx.
type InvestmentHandlerParams struct {
	fx.In

	InvestmentUC usecase.InvestmentUsecase
	Logger       *slog.Logger
}

// InvestmentHandler holds dependencies for investment ledger handlers
type InvestmentHandler struct {
	investmentUC usecase.InvestmentUsecase
	logger       *slog.Logger
}

// NewInvestmentHandler is the constructor for InvestmentHandler
func NewInvestmentHandler(params InvestmentHandlerParams) *InvestmentHandler {
	return &InvestmentHandler{
		investmentUC: params.InvestmentUC,
		logger:       params.Logger,
	}
}

// PaybackEntryRequest is one payback history element in a request body
type PaybackEntryRequest struct {
	Date   *string          `json:"date"`
	Amount *decimal.Decimal `json:"amount"`
	Total  *decimal.Decimal `json:"total"`
}

// InvestmentRequest represents the request body for creating or updating an investment.
// Omitted fields are left unchanged on update; a present paybackHistory replaces the stored one.
type InvestmentRequest struct {
	UserID         *string               `json:"userId"`
	Username       *string               `json:"username"`
	PaymentName    *string               `json:"paymentName"`
	InvestedAmount *decimal.Decimal      `json:"investedAmount"`
	PaybackAmount  *decimal.Decimal      `json:"paybackAmount"`
	Days           *int                  `json:"days"`
	PaybackHistory []PaybackEntryRequest `json:"paybackHistory"`
	IsApproved     *bool                 `json:"isApproved"`
	TransactionID  *string               `json:"transactionId"`
}

// RecordPaybackRequest represents the request body for appending a payback entry
type RecordPaybackRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Date   *string          `json:"date"`
}

// UserPaybackRequest holds the path of the per-user payback total
type UserPaybackRequest struct {
	UserID string `json:"userId" param:"userId"`
}

// parsed converts the identifier and date fields, collecting every malformed one.
func (r *InvestmentRequest) parsed() (*uuid.UUID, []usecase.PaybackEntryInput, error) {
	var violations validation.Violations

	userID, err := parseUUID("userId", r.UserID)
	violations = appendViolations(violations, err)

	var history []usecase.PaybackEntryInput
	if r.PaybackHistory != nil {
		history = make([]usecase.PaybackEntryInput, 0, len(r.PaybackHistory))
		for i, entry := range r.PaybackHistory {
			date, err := parseDate("paybackHistory["+strconv.Itoa(i)+"].date", entry.Date)
			violations = appendViolations(violations, err)
			history = append(history, usecase.PaybackEntryInput{
				Date:   date,
				Amount: entry.Amount,
				Total:  entry.Total,
			})
		}
	}

	return userID, history, violations.Err()
}

func appendViolations(violations validation.Violations, err error) validation.Violations {
	if vs, ok := err.(validation.Violations); ok {
		return append(violations, vs...)
	}

	return violations
}

// CreateInvestment handles investment creation
func (h *InvestmentHandler) CreateInvestment(c echo.Context) error {
	var req InvestmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	userID, history, err := req.parsed()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.CreateInvestmentInput{
		UserID:         userID,
		InvestedAmount: req.InvestedAmount,
		PaybackAmount:  req.PaybackAmount,
		Days:           req.Days,
		PaybackHistory: history,
		IsApproved:     req.IsApproved,
	}
	if req.Username != nil {
		input.Username = *req.Username
	}
	if req.PaymentName != nil {
		input.PaymentName = *req.PaymentName
	}
	if req.TransactionID != nil {
		input.TransactionID = *req.TransactionID
	}

	investment, err := h.investmentUC.CreateInvestment(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.WithEntity(c, http.StatusCreated, "Investment created successfully", "investment", investment)
}

// ListInvestments handles retrieving all investments
func (h *InvestmentHandler) ListInvestments(c echo.Context) error {
	investments, err := h.investmentUC.ListInvestments(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, investments)
}

// GetInvestment handles retrieving a single investment with its owner
func (h *InvestmentHandler) GetInvestment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	investment, err := h.investmentUC.GetInvestment(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, investment)
}

// UpdateInvestment handles a partial investment update
func (h *InvestmentHandler) UpdateInvestment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req InvestmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	userID, history, err := req.parsed()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	investment, err := h.investmentUC.UpdateInvestment(c.Request().Context(), id, &usecase.UpdateInvestmentInput{
		UserID:         userID,
		Username:       req.Username,
		PaymentName:    req.PaymentName,
		InvestedAmount: req.InvestedAmount,
		PaybackAmount:  req.PaybackAmount,
		Days:           req.Days,
		PaybackHistory: history,
		IsApproved:     req.IsApproved,
		TransactionID:  req.TransactionID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.WithEntity(c, http.StatusOK, "Investment updated successfully", "investment", investment)
}

// DeleteInvestment handles investment removal
func (h *InvestmentHandler) DeleteInvestment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.investmentUC.DeleteInvestment(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Investment deleted successfully")
}

// TotalPaybackForUser handles the per-user payback sum
func (h *InvestmentHandler) TotalPaybackForUser(c echo.Context) error {
	var req UserPaybackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	userID, err := parseUUID("userId", &req.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	total, err := h.investmentUC.TotalPaybackForUser(c.Request().Context(), *userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]decimal.Decimal{"totalPayback": total})
}

// LatestPaybackEntry handles retrieving the last payback entry of an investment
func (h *InvestmentHandler) LatestPaybackEntry(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	latest, err := h.investmentUC.LatestPaybackEntry(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, latest)
}

// RecordPayback handles appending a payback entry
func (h *InvestmentHandler) RecordPayback(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RecordPaybackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	investment, err := h.investmentUC.RecordPayback(c.Request().Context(), id, &usecase.RecordPaybackInput{
		Amount: req.Amount,
		Date:   date,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.WithEntity(c, http.StatusCreated, "Payback recorded successfully", "investment", investment)
}
