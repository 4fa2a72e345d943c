package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arash-96/payment-gateway-challenge/internal/domain/acquirer"
	"github.com/arash-96/payment-gateway-challenge/internal/domain/payment"
	otelinfra "github.com/arash-96/payment-gateway-challenge/internal/infrastructure/observability/otel"
)

// ErrorResponse エラーレスポンス
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorHandlerMiddleware エラーハンドリングミドルウェア
func ErrorHandlerMiddleware(logger *otelinfra.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			// エラーハンドリング
			return handleError(c, err, logger)
		}
	}
}

// handleError エラーを処理して適切なHTTPレスポンスを返す
func handleError(c echo.Context, err error, logger *otelinfra.Logger) error {
	ctx := c.Request().Context()

	// バリデーションエラーは400でメッセージをそのまま返す（プレーンテキスト）
	var validationErr *payment.ValidationError
	if errors.As(err, &validationErr) {
		logger.Warn(ctx, "Payment request validation failed", map[string]interface{}{
			"violations": validationErr.Violations,
		})
		return c.String(http.StatusBadRequest, validationErr.Error())
	}

	// 決済が見つからない場合は404で空ボディを返す
	if errors.Is(err, payment.ErrPaymentNotFound) {
		logger.Warn(ctx, "Payment not found", map[string]interface{}{
			"error": err.Error(),
		})
		return c.NoContent(http.StatusNotFound)
	}

	// 銀行障害は拒否と区別して502を返す
	if errors.Is(err, acquirer.ErrBankUnavailable) {
		logger.Error(ctx, "Acquiring bank unavailable", err, nil)
		return c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "bank_unavailable",
			Message: "The acquiring bank could not be reached",
		})
	}

	if errors.Is(err, payment.ErrPaymentAlreadyExists) {
		logger.Warn(ctx, "Duplicate payment id", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "payment_already_exists",
			Message: err.Error(),
		})
	}

	// EchoのHTTPエラー
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		logger.Warn(ctx, "HTTP error", map[string]interface{}{
			"status_code": httpErr.Code,
			"message":     httpErr.Message,
		})
		message := ""
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(httpErr.Code)
		}
		return c.JSON(httpErr.Code, ErrorResponse{
			Error:   http.StatusText(httpErr.Code),
			Message: message,
		})
	}

	// 予期しないエラー
	logger.Error(ctx, "Internal server error", err, map[string]interface{}{
		"path": c.Request().URL.Path,
	})
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_server_error",
		Message: "An unexpected error occurred",
	})
}
