package payment

import (
	"errors"
	"strings"
)

var (
	// ErrPaymentNotFound Paymentが見つからないエラー
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrPaymentAlreadyExists 決済IDが重複しているエラー
	ErrPaymentAlreadyExists = errors.New("payment already exists")
)

// ValidationError 決済リクエストのバリデーションエラー
// 違反したルールごとのメッセージを保持する
type ValidationError struct {
	Violations []string
}

// Error 違反メッセージを改行区切りで返す
func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "\n")
}

// NewValidationError 新しいValidationErrorを作成
func NewValidationError(violations []string) *ValidationError {
	return &ValidationError{Violations: violations}
}
