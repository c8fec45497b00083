package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestInvestmentHandler(t *testing.T) (*InvestmentHandler, *mockUC.MockInvestmentUsecase) {
	investmentUC := mockUC.NewMockInvestmentUsecase(t)

	return NewInvestmentHandler(InvestmentHandlerParams{InvestmentUC: investmentUC, Logger: newDiscardLogger()}), investmentUC
}

func TestInvestmentHandler_CreateInvestment_ParsesFields(t *testing.T) {
	h, investmentUC := newTestInvestmentHandler(t)
	userID := uuid.New()
	body := `{
		"userId": "` + userID.String() + `",
		"username": "ada",
		"paymentName": "wire",
		"investedAmount": "1000.50",
		"days": 30,
		"transactionId": "tx-1",
		"paybackHistory": [{"date": "2024-02-01", "amount": 10, "total": 10}]
	}`
	c, rec := newTestContext(http.MethodPost, "/api/investments", body)

	investmentUC.EXPECT().
		CreateInvestment(mock.Anything, mock.AnythingOfType("*usecase.CreateInvestmentInput")).
		RunAndReturn(func(_ context.Context, input *usecase.CreateInvestmentInput) (*entity.Investment, error) {
			require.NotNil(t, input.UserID)
			assert.Equal(t, userID, *input.UserID)
			assert.True(t, decimal.RequireFromString("1000.50").Equal(*input.InvestedAmount))
			assert.Equal(t, 30, *input.Days)
			assert.Nil(t, input.PaybackAmount)
			require.Len(t, input.PaybackHistory, 1)
			assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *input.PaybackHistory[0].Date)

			return &entity.Investment{ID: uuid.New(), UserID: userID}, nil
		})

	require.NoError(t, h.CreateInvestment(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Investment created successfully", decodeMap(t, rec)["message"])
}

func TestInvestmentHandler_CreateInvestment_MalformedFields(t *testing.T) {
	h, _ := newTestInvestmentHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/investments",
		`{"userId":"nobody","paybackHistory":[{"date":"soon","amount":1,"total":1}]}`)

	require.NoError(t, h.CreateInvestment(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	details, ok := decodeError(t, rec).Details.([]any)
	require.True(t, ok)
	assert.Len(t, details, 2)
	assert.Contains(t, rec.Body.String(), `"field":"paybackHistory[0].date"`)
}

func TestInvestmentHandler_UpdateInvestment_KeepsHistoryWhenAbsent(t *testing.T) {
	h, investmentUC := newTestInvestmentHandler(t)
	id := uuid.New()
	c, rec := newTestContext(http.MethodPut, "/api/investments/"+id.String(), `{"isApproved":true}`)
	withParam(c, "id", id.String())

	investmentUC.EXPECT().
		UpdateInvestment(mock.Anything, id, mock.MatchedBy(func(input *usecase.UpdateInvestmentInput) bool {
			return input.PaybackHistory == nil && input.IsApproved != nil && *input.IsApproved
		})).
		Return(&entity.Investment{ID: id, IsApproved: true}, nil)

	require.NoError(t, h.UpdateInvestment(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInvestmentHandler_TotalPaybackForUser(t *testing.T) {
	h, investmentUC := newTestInvestmentHandler(t)
	userID := uuid.New()
	c, rec := newTestContext(http.MethodGet, "/api/investments/user/"+userID.String()+"/payback", "")
	withParam(c, "userId", userID.String())

	investmentUC.EXPECT().TotalPaybackForUser(mock.Anything, userID).Return(decimal.RequireFromString("130.25"), nil)

	require.NoError(t, h.TotalPaybackForUser(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "totalPayback")
	assert.Contains(t, rec.Body.String(), "130.25")
}

func TestInvestmentHandler_TotalPaybackForUser_InvalidUserID(t *testing.T) {
	h, _ := newTestInvestmentHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/investments/user/bob/payback", "")
	withParam(c, "userId", "bob")

	require.NoError(t, h.TotalPaybackForUser(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"userId"`)
	assert.Contains(t, rec.Body.String(), "must be a valid UUID")
}

func TestInvestmentHandler_TotalPaybackForUser_UppercaseUserID(t *testing.T) {
	h, investmentUC := newTestInvestmentHandler(t)
	userID := uuid.New()
	upper := strings.ToUpper(userID.String())
	c, rec := newTestContext(http.MethodGet, "/api/investments/user/"+upper+"/payback", "")
	withParam(c, "userId", upper)

	investmentUC.EXPECT().TotalPaybackForUser(mock.Anything, userID).Return(decimal.Zero, nil)

	require.NoError(t, h.TotalPaybackForUser(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInvestmentHandler_LatestPaybackEntry_EmptyHistory(t *testing.T) {
	h, investmentUC := newTestInvestmentHandler(t)
	id := uuid.New()
	c, rec := newTestContext(http.MethodGet, "/api/investments/"+id.String()+"/latest-payback", "")
	withParam(c, "id", id.String())

	investmentUC.EXPECT().LatestPaybackEntry(mock.Anything, id).Return(nil, domainerrors.ErrPaybackHistoryNotFound)

	require.NoError(t, h.LatestPaybackEntry(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PAYBACK_HISTORY_NOT_FOUND", decodeError(t, rec).Code)
}

func TestInvestmentHandler_RecordPayback(t *testing.T) {
	h, investmentUC := newTestInvestmentHandler(t)
	id := uuid.New()
	c, rec := newTestContext(http.MethodPost, "/api/investments/"+id.String()+"/paybacks", `{"amount":25}`)
	withParam(c, "id", id.String())

	investmentUC.EXPECT().
		RecordPayback(mock.Anything, id, mock.MatchedBy(func(input *usecase.RecordPaybackInput) bool {
			return input.Date == nil && input.Amount != nil && input.Amount.Equal(decimal.NewFromInt(25))
		})).
		Return(&entity.Investment{ID: id, PaybackAmount: decimal.NewFromInt(25)}, nil)

	require.NoError(t, h.RecordPayback(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	got := decodeMap(t, rec)
	assert.Equal(t, "Payback recorded successfully", got["message"])
	assert.NotNil(t, got["investment"])
}

func TestInvestmentHandler_DeleteInvestment_InvalidID(t *testing.T) {
	h, _ := newTestInvestmentHandler(t)
	c, rec := newTestContext(http.MethodDelete, "/api/investments/1", "")
	withParam(c, "id", "1")

	require.NoError(t, h.DeleteInvestment(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("date", ptr("2024-03-05T10:00:00+02:00"))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC), *got)

	got, err = parseDate("date", nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}
