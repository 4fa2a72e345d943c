package rest

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/arash-96/payment-gateway-challenge/internal/presentation/openapi"
)

// SetupSwagger Swagger UI統合を設定
func SetupSwagger(e *echo.Echo) {
	// OpenAPI仕様ファイルの配信
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(200, "application/x-yaml", openapi.Spec)
	})

	// Swagger UI（埋め込みのOpenAPI仕様ファイルを使用）
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/openapi.yaml"),
	))
}
