package memory

import (
	"context"
	"sync"

	"github.com/arash-96/payment-gateway-challenge/internal/domain/payment"
)

// PaymentRepository インメモリ実装のPaymentRepository
// 決済IDをキーとしたマップをRWMutexで保護し、並行なAdd/FindByIDに耐える
// レコードはプロセスの生存期間中保持され、削除されない
type PaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]*payment.Payment
}

// NewPaymentRepository 新しいPaymentRepositoryを作成
func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		payments: make(map[string]*payment.Payment),
	}
}

// Add Paymentを保存
// 決済IDが重複している場合はErrPaymentAlreadyExistsを返す
func (r *PaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.payments[p.PaymentID()]; exists {
		return payment.ErrPaymentAlreadyExists
	}

	r.payments[p.PaymentID()] = p
	return nil
}

// FindByID 決済IDでPaymentを取得
func (r *PaymentRepository) FindByID(ctx context.Context, paymentID string) (*payment.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.payments[paymentID]
	if !exists {
		return nil, payment.ErrPaymentNotFound
	}

	return p, nil
}

// Count 保存されている決済数を返す
func (r *PaymentRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.payments)
}
