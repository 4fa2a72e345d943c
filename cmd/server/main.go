package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	paymentapp "github.com/arash-96/payment-gateway-challenge/internal/application/payment"
	"github.com/arash-96/payment-gateway-challenge/internal/domain/service"
	acquirerinfra "github.com/arash-96/payment-gateway-challenge/internal/infrastructure/acquirer"
	"github.com/arash-96/payment-gateway-challenge/internal/infrastructure/config"
	otelinfra "github.com/arash-96/payment-gateway-challenge/internal/infrastructure/observability/otel"
	"github.com/arash-96/payment-gateway-challenge/internal/infrastructure/persistence/memory"
	"github.com/arash-96/payment-gateway-challenge/internal/presentation/rest"
)

func main() {
	// 設定の読み込み
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// OpenTelemetryの初期化
	tracerShutdown, err := otelinfra.InitTracer(&cfg.OpenTelemetry)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerShutdown(ctx); err != nil {
			log.Printf("Failed to shutdown tracer: %v", err)
		}
	}()

	meterShutdown, err := otelinfra.InitMeter(&cfg.OpenTelemetry)
	if err != nil {
		log.Fatalf("Failed to initialize meter: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := meterShutdown(ctx); err != nil {
			log.Printf("Failed to shutdown meter: %v", err)
		}
	}()

	// ロガーとメトリクスの初期化
	tracer := otelinfra.Tracer("payment-gateway")
	logger := otelinfra.NewLogger(tracer)
	metrics, err := otelinfra.NewMetrics("payment-gateway")
	if err != nil {
		log.Fatalf("Failed to create metrics: %v", err)
	}

	// リポジトリの初期化（インメモリ）
	paymentRepo := memory.NewPaymentRepository()

	// 銀行承認クライアントの初期化
	acquirerClient := acquirerinfra.NewClient(&cfg.Acquirer)

	// ドメインサービスの初期化
	validator := service.NewPaymentValidator()

	// アプリケーションサービスの初期化
	paymentService := paymentapp.NewPaymentApplicationService(
		paymentRepo,
		acquirerClient,
		validator,
		logger,
		metrics,
	)

	// REST APIルーターの初期化
	router, err := rest.NewRouter(cfg, logger, metrics, paymentService)
	if err != nil {
		log.Fatalf("Failed to create router: %v", err)
	}

	// サーバーアドレスの設定
	address := fmt.Sprintf(":%d", cfg.Server.Port)

	// グレースフルシャットダウンの設定
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// REST APIサーバーを別ゴルーチンで起動
	go func() {
		log.Printf("Payment gateway starting on %s", address)
		if err := router.Start(address); err != nil {
			log.Printf("Payment gateway server error: %v", err)
		}
	}()

	// シグナルを待機
	<-quit
	log.Println("Shutting down server...")

	// グレースフルシャットダウン（処理中のリクエストの完了を待つ）
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := router.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Server stopped")
}
