package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/arash-96/payment-gateway-challenge/internal/domain/acquirer"
	"github.com/arash-96/payment-gateway-challenge/internal/domain/payment"
	"github.com/arash-96/payment-gateway-challenge/internal/domain/service"
	otelinfra "github.com/arash-96/payment-gateway-challenge/internal/infrastructure/observability/otel"
)

// PaymentApplicationService 決済アプリケーションサービス
// バリデーション → 銀行承認 → 保存の順に処理を編成する
type PaymentApplicationService struct {
	paymentRepo    payment.PaymentRepository
	acquirerClient acquirer.AcquirerClient
	validator      *service.PaymentValidator
	logger         *otelinfra.Logger
	metrics        *otelinfra.Metrics
	tracer         trace.Tracer
}

// NewPaymentApplicationService 新しいPaymentApplicationServiceを作成
func NewPaymentApplicationService(
	paymentRepo payment.PaymentRepository,
	acquirerClient acquirer.AcquirerClient,
	validator *service.PaymentValidator,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *PaymentApplicationService {
	return &PaymentApplicationService{
		paymentRepo:    paymentRepo,
		acquirerClient: acquirerClient,
		validator:      validator,
		logger:         logger,
		metrics:        metrics,
		tracer:         otel.Tracer("payment-service"),
	}
}

// ProcessPayment 決済を処理
// バリデーション不合格の場合はValidationErrorを返し、銀行呼び出しも保存も行わない
// 銀行に到達できない場合はErrBankUnavailableを返し、保存は行わない
// それ以外は承認結果に応じたステータスでレコードを保存して返す
func (s *PaymentApplicationService) ProcessPayment(ctx context.Context, req *ProcessPaymentRequest) (*PaymentResult, error) {
	ctx, span := s.tracer.Start(ctx, "PaymentApplicationService.ProcessPayment")
	defer span.End()

	// どのステータスになるかに関わらず、先にIDを採番する
	paymentID := uuid.NewString()

	span.SetAttributes(
		attribute.String("payment_id", paymentID),
		attribute.String("currency", req.Currency),
		attribute.Int64("amount", req.Amount),
	)

	s.logger.Info(ctx, "Processing payment", map[string]interface{}{
		"payment_id": paymentID,
		"currency":   req.Currency,
		"amount":     req.Amount,
	})

	domainReq := &payment.PaymentRequest{
		CardNumber:  req.CardNumber,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		Currency:    req.Currency,
		Amount:      req.Amount,
		CVV:         req.CVV,
	}

	// バリデーション（全ルールを独立に評価）
	if violations := s.validator.Validate(domainReq); len(violations) > 0 {
		err := payment.NewValidationError(violations)
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Warn(ctx, "Payment request rejected", map[string]interface{}{
			"payment_id": paymentID,
			"violations": violations,
		})
		s.metrics.RecordValidationFailure(ctx, len(violations))
		// 不合格のリクエストはレコードを残さず、採番したIDも破棄する
		return nil, err
	}

	// 銀行承認
	authResult, err := s.acquirerClient.Authorize(ctx, &acquirer.AuthorizationRequest{
		CardNumber:  req.CardNumber,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		Currency:    req.Currency,
		Amount:      req.Amount,
		CVV:         req.CVV,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		if errors.Is(err, acquirer.ErrBankUnavailable) {
			// 銀行障害は拒否とは区別し、レコードを残さない
			s.logger.Error(ctx, "Acquiring bank unavailable", err, map[string]interface{}{
				"payment_id": paymentID,
			})
			s.metrics.RecordBankAuthorization(ctx, "unavailable")
			s.metrics.RecordError(ctx, "bank_unavailable")
			return nil, err
		}
		return nil, fmt.Errorf("failed to authorize payment: %w", err)
	}

	status := payment.PaymentStatusDeclined
	if authResult.Authorized {
		status = payment.PaymentStatusAuthorized
		s.metrics.RecordBankAuthorization(ctx, "authorized")
	} else {
		s.metrics.RecordBankAuthorization(ctx, "declined")
	}

	p := payment.NewPayment(
		paymentID,
		status,
		domainReq.CardNumberLastFour(),
		req.ExpiryMonth,
		req.ExpiryYear,
		req.Currency,
		req.Amount,
	)

	if err := s.paymentRepo.Add(ctx, p); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to store payment", err, map[string]interface{}{
			"payment_id": paymentID,
		})
		return nil, fmt.Errorf("failed to store payment: %w", err)
	}

	span.SetAttributes(attribute.String("payment_status", status.String()))
	s.logger.Info(ctx, "Payment processed", map[string]interface{}{
		"payment_id": paymentID,
		"status":     status.String(),
	})
	s.metrics.RecordPayment(ctx, status.String(), req.Currency, req.Amount)

	return toPaymentResult(p), nil
}

// GetPayment 決済IDで保存済み決済を取得
func (s *PaymentApplicationService) GetPayment(ctx context.Context, paymentID string) (*PaymentResult, error) {
	ctx, span := s.tracer.Start(ctx, "PaymentApplicationService.GetPayment")
	defer span.End()

	span.SetAttributes(attribute.String("payment_id", paymentID))

	p, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, payment.ErrPaymentNotFound) {
			s.logger.Warn(ctx, "Payment not found", map[string]interface{}{
				"payment_id": paymentID,
			})
			return nil, err
		}
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}

	return toPaymentResult(p), nil
}

// toPaymentResult PaymentエンティティをDTOに変換
func toPaymentResult(p *payment.Payment) *PaymentResult {
	return &PaymentResult{
		PaymentID:          p.PaymentID(),
		Status:             p.Status().String(),
		CardNumberLastFour: p.CardNumberLastFour(),
		ExpiryMonth:        p.ExpiryMonth(),
		ExpiryYear:         p.ExpiryYear(),
		Currency:           p.Currency(),
		Amount:             p.Amount(),
	}
}
