package payment

import (
	"fmt"
)

// PaymentStatus 決済ステータスを表す値オブジェクト
type PaymentStatus string

const (
	PaymentStatusAuthorized PaymentStatus = "Authorized" // 銀行承認済み
	PaymentStatusDeclined   PaymentStatus = "Declined"   // 銀行拒否
	PaymentStatusRejected   PaymentStatus = "Rejected"   // バリデーション不合格
)

// NewPaymentStatus 新しいPaymentStatusを作成
func NewPaymentStatus(s string) (PaymentStatus, error) {
	switch s {
	case "Authorized", "Declined", "Rejected":
		return PaymentStatus(s), nil
	default:
		return "", fmt.Errorf("invalid payment status: %s", s)
	}
}

// String 文字列表現を返す
func (ps PaymentStatus) String() string {
	return string(ps)
}

// Valid 有効な決済ステータスかどうかを返す
func (ps PaymentStatus) Valid() bool {
	switch ps {
	case PaymentStatusAuthorized, PaymentStatusDeclined, PaymentStatusRejected:
		return true
	default:
		return false
	}
}

// IsAuthorized 承認済み状態かどうかを返す
func (ps PaymentStatus) IsAuthorized() bool {
	return ps == PaymentStatusAuthorized
}

// IsDeclined 拒否状態かどうかを返す
func (ps PaymentStatus) IsDeclined() bool {
	return ps == PaymentStatusDeclined
}
