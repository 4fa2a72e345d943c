package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/arash-96/payment-gateway-challenge/internal/domain/acquirer"
	"github.com/arash-96/payment-gateway-challenge/internal/domain/payment"
	otelinfra "github.com/arash-96/payment-gateway-challenge/internal/infrastructure/observability/otel"
)

func newTestLogger() *otelinfra.Logger {
	tracer := noop.NewTracerProvider().Tracer("test")
	return otelinfra.NewLogger(tracer)
}

func runErrorHandler(t *testing.T, handlerErr error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	middleware := ErrorHandlerMiddleware(newTestLogger())
	handler := middleware(func(c echo.Context) error {
		return handlerErr
	})

	err := handler(c)
	require.NoError(t, err)
	return rec
}

func TestErrorHandlerMiddleware_NoError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	middleware := ErrorHandlerMiddleware(newTestLogger())
	handler := middleware(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	err := handler(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestErrorHandlerMiddleware_ValidationError(t *testing.T) {
	rec := runErrorHandler(t, payment.NewValidationError([]string{
		"The card number is invalid",
		"The currency is invalid",
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// 違反メッセージをそのままプレーンテキストで返す
	assert.Equal(t, "The card number is invalid\nThe currency is invalid", rec.Body.String())
}

func TestErrorHandlerMiddleware_PaymentNotFound(t *testing.T) {
	rec := runErrorHandler(t, payment.ErrPaymentNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErrorHandlerMiddleware_BankUnavailable(t *testing.T) {
	rec := runErrorHandler(t, acquirer.ErrBankUnavailable)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bank_unavailable", resp.Error)
}

func TestErrorHandlerMiddleware_WrappedBankUnavailable(t *testing.T) {
	// ErrBankUnavailableをラップしたエラーも同様に扱われる
	wrapped := errors.Join(errors.New("request failed"), acquirer.ErrBankUnavailable)
	rec := runErrorHandler(t, wrapped)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestErrorHandlerMiddleware_PaymentAlreadyExists(t *testing.T) {
	rec := runErrorHandler(t, payment.ErrPaymentAlreadyExists)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestErrorHandlerMiddleware_EchoHTTPError(t *testing.T) {
	rec := runErrorHandler(t, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid request body", resp.Message)
}

func TestErrorHandlerMiddleware_UnexpectedError(t *testing.T) {
	rec := runErrorHandler(t, errors.New("secret database dsn"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "internal_server_error", resp.Error)

	// 内部エラーの詳細は漏らさない
	assert.NotContains(t, rec.Body.String(), "secret database dsn")
}
