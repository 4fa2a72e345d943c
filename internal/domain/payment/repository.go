package payment

import (
	"context"
)

// PaymentRepository Paymentリポジトリインターフェース
type PaymentRepository interface {
	// Add Paymentを保存
	Add(ctx context.Context, payment *Payment) error

	// FindByID 決済IDでPaymentを取得
	FindByID(ctx context.Context, paymentID string) (*Payment, error)
}
