package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	paymentapp "github.com/arash-96/payment-gateway-challenge/internal/application/payment"
	"github.com/arash-96/payment-gateway-challenge/internal/domain/acquirer"
	"github.com/arash-96/payment-gateway-challenge/internal/domain/service"
	"github.com/arash-96/payment-gateway-challenge/internal/infrastructure/config"
	otelinfra "github.com/arash-96/payment-gateway-challenge/internal/infrastructure/observability/otel"
	"github.com/arash-96/payment-gateway-challenge/internal/infrastructure/persistence/memory"
	"github.com/arash-96/payment-gateway-challenge/internal/presentation/rest/handler"
)

// MockAcquirerClient モック銀行承認クライアント
type MockAcquirerClient struct {
	mock.Mock
}

func (m *MockAcquirerClient) Authorize(ctx context.Context, req *acquirer.AuthorizationRequest) (*acquirer.AuthorizationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*acquirer.AuthorizationResult), args.Error(1)
}

// setupTestRouter テスト用のルーターをセットアップ
// リポジトリはインメモリ実装を使い、銀行クライアントのみモックする
func setupTestRouter(t *testing.T) (*Router, *MockAcquirerClient) {
	t.Helper()

	cfg := &config.Config{
		Acquirer: config.AcquirerConfig{
			BaseURL: "http://localhost:8080",
			Timeout: 5 * time.Second,
		},
	}

	tracer := noop.NewTracerProvider().Tracer("test")
	logger := otelinfra.NewLogger(tracer)
	metrics, err := otelinfra.NewMetrics("test")
	require.NoError(t, err)

	mockClient := new(MockAcquirerClient)
	repo := memory.NewPaymentRepository()
	validator := service.NewPaymentValidatorWithClock(func() time.Time {
		return time.Date(2025, time.April, 15, 12, 0, 0, 0, time.UTC)
	})

	paymentService := paymentapp.NewPaymentApplicationService(repo, mockClient, validator, logger, metrics)

	router, err := NewRouter(cfg, logger, metrics, paymentService)
	require.NoError(t, err)
	require.NotNil(t, router)

	return router, mockClient
}

func TestNewRouter(t *testing.T) {
	router, _ := setupTestRouter(t)

	assert.NotNil(t, router)
	assert.NotNil(t, router.echo)
	assert.NotNil(t, router.paymentHandler)
}

func TestRouter_HealthCheck(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	router.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]string
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "ok", response["status"])
}

func TestRouter_ProcessThenRetrievePayment(t *testing.T) {
	router, mockClient := setupTestRouter(t)

	mockClient.On("Authorize", mock.Anything, mock.Anything).Return(&acquirer.AuthorizationResult{
		Authorized:        true,
		AuthorizationCode: "auth-code-1",
	}, nil)

	// 決済を処理
	body, _ := json.Marshal(map[string]interface{}{
		"card_number":  "2222405343248112",
		"expiry_month": 4,
		"expiry_year":  2027,
		"currency":     "GBP",
		"amount":       100,
		"cvv":          "123",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/payments", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	router.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var postResp handler.PaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &postResp))
	require.NotEmpty(t, postResp.ID)
	assert.Equal(t, "Authorized", postResp.Status)
	assert.Equal(t, "8112", postResp.CardNumberLastFour)

	// 同じIDで取得できる
	getReq := httptest.NewRequest(http.MethodGet, "/api/payments/"+postResp.ID, nil)
	getRec := httptest.NewRecorder()

	router.echo.ServeHTTP(getRec, getReq)

	require.Equal(t, http.StatusOK, getRec.Code)

	var getResp handler.PaymentResponse
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &getResp))
	assert.Equal(t, postResp, getResp)
}

func TestRouter_RejectedPaymentNotRetrievable(t *testing.T) {
	router, mockClient := setupTestRouter(t)

	// バリデーション不合格のリクエスト
	body, _ := json.Marshal(map[string]interface{}{
		"card_number":  "2222405343248112",
		"expiry_month": 4,
		"expiry_year":  2020,
		"currency":     "GBP",
		"amount":       100,
		"cvv":          "123",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/payments", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	router.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "The expiry year is invalid")

	// 銀行には送信されない
	mockClient.AssertNotCalled(t, "Authorize")
}

func TestRouter_GetUnknownPayment(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/payments/unknown", nil)
	rec := httptest.NewRecorder()

	router.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_BankUnavailable(t *testing.T) {
	router, mockClient := setupTestRouter(t)

	mockClient.On("Authorize", mock.Anything, mock.Anything).Return(nil, acquirer.ErrBankUnavailable)

	body, _ := json.Marshal(map[string]interface{}{
		"card_number":  "2222405343248112",
		"expiry_month": 4,
		"expiry_year":  2027,
		"currency":     "GBP",
		"amount":       100,
		"cvv":          "123",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/payments", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	router.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestRouter_SwaggerEndpoints(t *testing.T) {
	router, _ := setupTestRouter(t)

	tests := []struct {
		name string
		path string
	}{
		{
			name: "OpenAPI仕様エンドポイント",
			path: "/openapi.yaml",
		},
		{
			name: "Swagger UIエンドポイント",
			path: "/swagger/index.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			router.echo.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code, "path: %s", tt.path)
		})
	}
}

func TestRouter_RouteRegistration(t *testing.T) {
	router, _ := setupTestRouter(t)

	routes := router.echo.Routes()

	foundEndpoints := make(map[string]bool)
	for _, route := range routes {
		foundEndpoints[route.Method+" "+route.Path] = true
	}

	assert.True(t, foundEndpoints["POST /api/payments"])
	assert.True(t, foundEndpoints["GET /api/payments/:id"])
	assert.True(t, foundEndpoints["GET /health"])
}

func TestRouter_StartShutdown(t *testing.T) {
	router, _ := setupTestRouter(t)

	// Startは実際にサーバーを起動するため、別のゴルーチンで行う
	go func() {
		err := router.Start(":0") // 利用可能なポートを使用
		_ = err
	}()

	// 少し待機してからグレースフルシャットダウン
	time.Sleep(100 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := router.Shutdown(ctx)
	assert.NoError(t, err)
}
