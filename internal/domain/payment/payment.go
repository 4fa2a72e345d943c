package payment

import (
	"time"
)

// Payment 処理済み決済エンティティ
// 作成後に変更されることはない（ステータスも含めて不変）
type Payment struct {
	paymentID          string
	status             PaymentStatus
	cardNumberLastFour string
	expiryMonth        int
	expiryYear         int
	currency           string
	amount             int64
	createdAt          time.Time
}

// NewPayment 新しいPaymentエンティティを作成
func NewPayment(
	paymentID string,
	status PaymentStatus,
	cardNumberLastFour string,
	expiryMonth int,
	expiryYear int,
	currency string,
	amount int64,
) *Payment {
	return &Payment{
		paymentID:          paymentID,
		status:             status,
		cardNumberLastFour: cardNumberLastFour,
		expiryMonth:        expiryMonth,
		expiryYear:         expiryYear,
		currency:           currency,
		amount:             amount,
		createdAt:          time.Now(),
	}
}

// PaymentID 決済IDを返す
func (p *Payment) PaymentID() string {
	return p.paymentID
}

// Status ステータスを返す
func (p *Payment) Status() PaymentStatus {
	return p.status
}

// CardNumberLastFour カード番号の下4桁を返す
func (p *Payment) CardNumberLastFour() string {
	return p.cardNumberLastFour
}

// ExpiryMonth 有効期限の月を返す
func (p *Payment) ExpiryMonth() int {
	return p.expiryMonth
}

// ExpiryYear 有効期限の年を返す
func (p *Payment) ExpiryYear() int {
	return p.expiryYear
}

// Currency 通貨コードを返す
func (p *Payment) Currency() string {
	return p.currency
}

// Amount 金額（最小通貨単位）を返す
func (p *Payment) Amount() int64 {
	return p.amount
}

// CreatedAt 作成日時を返す
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}
