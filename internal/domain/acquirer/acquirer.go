package acquirer

import (
	"context"
)

// AuthorizationRequest 銀行への承認リクエスト
type AuthorizationRequest struct {
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	Currency    string
	Amount      int64
	CVV         string
}

// AuthorizationResult 銀行からの承認結果
// 保存されることはなく、Authorizedフラグのみが決済ステータスに影響する
type AuthorizationResult struct {
	Authorized        bool
	AuthorizationCode string
}

// AcquirerClient 銀行承認クライアントインターフェース
type AcquirerClient interface {
	// Authorize 決済を銀行に承認依頼する
	Authorize(ctx context.Context, req *AuthorizationRequest) (*AuthorizationResult, error)
}
