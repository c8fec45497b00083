package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/api/router"
	"storefront/internal/delivery/api/router/handler"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/validation"
	mockUC "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type testServer struct {
	echo         *echo.Echo
	userUC       *mockUC.MockUserUsecase
	categoryUC   *mockUC.MockCategoryUsecase
	productUC    *mockUC.MockProductUsecase
	investmentUC *mockUC.MockInvestmentUsecase
}

func newTestServer(t *testing.T) testServer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true}}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	ts := testServer{
		userUC:       mockUC.NewMockUserUsecase(t),
		categoryUC:   mockUC.NewMockCategoryUsecase(t),
		productUC:    mockUC.NewMockProductUsecase(t),
		investmentUC: mockUC.NewMockInvestmentUsecase(t),
	}
	ts.echo = newEcho(ServerParams{
		Cfg:       cfg,
		Logger:    logger,
		Validator: validation.New(),
		RouterParams: router.RouterParams{
			UserHandler:       handler.NewUserHandler(handler.UserHandlerParams{UserUC: ts.userUC, Logger: logger}),
			CategoryHandler:   handler.NewCategoryHandler(handler.CategoryHandlerParams{CategoryUC: ts.categoryUC, Logger: logger}),
			ProductHandler:    handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: ts.productUC, Logger: logger}),
			InvestmentHandler: handler.NewInvestmentHandler(handler.InvestmentHandlerParams{InvestmentUC: ts.investmentUC, Logger: logger}),
		},
	})

	return ts
}

func (ts testServer) do(method, target string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_StatsRoutesAreNotIdentifiers(t *testing.T) {
	ts := newTestServer(t)

	ts.productUC.EXPECT().AveragePrice(mock.Anything).Return(10, nil)
	ts.productUC.EXPECT().SearchProducts(mock.Anything, "desk lamp").Return([]*entity.Product{}, nil)

	rec := ts.do(http.MethodGet, "/api/products/stats/average-price")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"averagePrice":10}`, rec.Body.String())

	rec = ts.do(http.MethodGet, "/api/products/search?query=desk+lamp")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_RequestIDPropagation(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/users/not-a-uuid", deliverycontext.HeaderXRequestID, "req-123")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"requestId":"req-123"`)
}

func TestServer_InternalErrorGoesThroughErrorHandler(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()

	ts.investmentUC.EXPECT().GetInvestment(mock.Anything, id).Return(nil, errors.New("dial tcp: timeout"))

	rec := ts.do(http.MethodGet, "/api/investments/"+id.String())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INTERNAL_ERROR"`)
	assert.NotContains(t, rec.Body.String(), "dial tcp")
}

func TestServer_HealthAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = ts.do(http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestServer_UnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodDelete, "/api/users/"+uuid.NewString())

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}

func TestServer_DeleteThenGetProduct(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()

	ts.productUC.EXPECT().DeleteProduct(mock.Anything, id).Return(nil).Once()
	ts.productUC.EXPECT().GetProduct(mock.Anything, id).Return(nil, domainerrors.ErrProductNotFound).Once()

	rec := ts.do(http.MethodDelete, "/api/products/"+id.String())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product deleted successfully")

	rec = ts.do(http.MethodGet, "/api/products/"+id.String())
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"PRODUCT_NOT_FOUND"`)
}
