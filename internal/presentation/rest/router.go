package rest

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	paymentapp "github.com/arash-96/payment-gateway-challenge/internal/application/payment"
	"github.com/arash-96/payment-gateway-challenge/internal/infrastructure/config"
	otelinfra "github.com/arash-96/payment-gateway-challenge/internal/infrastructure/observability/otel"
	"github.com/arash-96/payment-gateway-challenge/internal/presentation/rest/handler"
	restmiddleware "github.com/arash-96/payment-gateway-challenge/internal/presentation/rest/middleware"
)

// Router REST APIルーター
type Router struct {
	echo           *echo.Echo
	paymentHandler *handler.PaymentHandler
}

// NewRouter 新しいRouterを作成
func NewRouter(
	cfg *config.Config,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
	paymentService *paymentapp.PaymentApplicationService,
) (*Router, error) {
	e := echo.New()
	e.HideBanner = true

	// Echoのデフォルトエラーハンドラーを無効化（カスタムエラーハンドラーを使用）
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		// エラーハンドリングミドルウェアで処理される
	}

	// ミドルウェアの設定
	setupMiddleware(e, cfg, logger, metrics)

	// ハンドラーの作成
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// ルーティングの設定
	setupRoutes(e, paymentHandler)

	// Swagger UI統合
	SetupSwagger(e)

	return &Router{
		echo:           e,
		paymentHandler: paymentHandler,
	}, nil
}

// setupMiddleware ミドルウェアを設定
func setupMiddleware(e *echo.Echo, cfg *config.Config, logger *otelinfra.Logger, metrics *otelinfra.Metrics) {
	// リカバリーミドルウェア
	e.Use(middleware.Recover())

	// CORS設定
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"}, // 本番環境では適切に設定
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// リクエストIDの設定
	e.Use(middleware.RequestID())

	// セキュリティヘッダー
	e.Use(restmiddleware.SecurityHeadersMiddleware())

	// トレーシングミドルウェア
	e.Use(restmiddleware.TracingMiddleware())

	// ログミドルウェア
	e.Use(restmiddleware.LoggingMiddleware(logger))

	// メトリクスミドルウェア
	e.Use(restmiddleware.MetricsMiddleware(metrics))

	// エラーハンドリングミドルウェア
	e.Use(restmiddleware.ErrorHandlerMiddleware(logger))
}

// setupRoutes ルーティングを設定
func setupRoutes(e *echo.Echo, paymentHandler *handler.PaymentHandler) {
	// 決済エンドポイント
	api := e.Group("/api")
	api.POST("/payments", paymentHandler.PostPayment)
	api.GET("/payments/:id", paymentHandler.GetPayment)

	// ヘルスチェックエンドポイント
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
}

// Echo 内部のechoインスタンスを返す（テスト用）
func (r *Router) Echo() *echo.Echo {
	return r.echo
}

// Start サーバーを起動
func (r *Router) Start(address string) error {
	return r.echo.Start(address)
}

// Shutdown 処理中のリクエストの完了を待ってサーバーをシャットダウン
func (r *Router) Shutdown(ctx context.Context) error {
	return r.echo.Shutdown(ctx)
}
