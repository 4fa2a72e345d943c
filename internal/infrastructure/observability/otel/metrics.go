package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics メトリクス定義
type Metrics struct {
	// 処理済み決済数（ステータス別）
	PaymentCount metric.Int64Counter

	// 決済金額の分布（最小通貨単位）
	PaymentAmount metric.Int64Histogram

	// バリデーション不合格数
	ValidationFailureCount metric.Int64Counter

	// 銀行承認呼び出し数（結果別）
	BankAuthorizationCount metric.Int64Counter

	// リクエスト数
	RequestCount metric.Int64Counter

	// レスポンス時間
	ResponseTime metric.Float64Histogram

	// エラー率
	ErrorCount metric.Int64Counter
}

// NewMetrics 新しいMetricsを作成
func NewMetrics(meterName string) (*Metrics, error) {
	meter := otel.Meter(meterName)

	paymentCount, err := meter.Int64Counter(
		"payments_total",
		metric.WithDescription("Total number of processed payments"),
	)
	if err != nil {
		return nil, err
	}

	paymentAmount, err := meter.Int64Histogram(
		"payment_amount",
		metric.WithDescription("Payment amount in minor currency units"),
	)
	if err != nil {
		return nil, err
	}

	validationFailureCount, err := meter.Int64Counter(
		"validation_failures_total",
		metric.WithDescription("Total number of rejected payment requests"),
	)
	if err != nil {
		return nil, err
	}

	bankAuthorizationCount, err := meter.Int64Counter(
		"bank_authorizations_total",
		metric.WithDescription("Total number of acquiring bank authorization calls"),
	)
	if err != nil {
		return nil, err
	}

	requestCount, err := meter.Int64Counter(
		"requests_total",
		metric.WithDescription("Total number of requests"),
	)
	if err != nil {
		return nil, err
	}

	responseTime, err := meter.Float64Histogram(
		"response_time_seconds",
		metric.WithDescription("Response time in seconds"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"errors_total",
		metric.WithDescription("Total number of errors"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		PaymentCount:           paymentCount,
		PaymentAmount:          paymentAmount,
		ValidationFailureCount: validationFailureCount,
		BankAuthorizationCount: bankAuthorizationCount,
		RequestCount:           requestCount,
		ResponseTime:           responseTime,
		ErrorCount:             errorCount,
	}, nil
}

// RecordPayment 処理済み決済を記録
func (m *Metrics) RecordPayment(ctx context.Context, status string, currency string, amount int64) {
	m.PaymentCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("status", status),
			attribute.String("currency", currency),
		),
	)
	m.PaymentAmount.Record(ctx, amount,
		metric.WithAttributes(
			attribute.String("currency", currency),
		),
	)
}

// RecordValidationFailure バリデーション不合格を記録
func (m *Metrics) RecordValidationFailure(ctx context.Context, violationCount int) {
	m.ValidationFailureCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.Int("violation_count", violationCount),
		),
	)
}

// RecordBankAuthorization 銀行承認呼び出しを記録
func (m *Metrics) RecordBankAuthorization(ctx context.Context, outcome string) {
	m.BankAuthorizationCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("outcome", outcome),
		),
	)
}

// RecordRequest リクエストを記録
func (m *Metrics) RecordRequest(ctx context.Context, method, path string) {
	m.RequestCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
		),
	)
}

// RecordResponseTime レスポンス時間を記録
func (m *Metrics) RecordResponseTime(ctx context.Context, method, path string, duration float64) {
	m.ResponseTime.Record(ctx, duration,
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
		),
	)
}

// RecordError エラーを記録
func (m *Metrics) RecordError(ctx context.Context, errorType string) {
	m.ErrorCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("error_type", errorType),
		),
	)
}
