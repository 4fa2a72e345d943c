package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/arash-96/payment-gateway-challenge/internal/domain/acquirer"
	"github.com/arash-96/payment-gateway-challenge/internal/domain/payment"
)

// MockPaymentRepository モック決済リポジトリ
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, paymentID string) (*payment.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

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
