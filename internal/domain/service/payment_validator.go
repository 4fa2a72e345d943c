package service

import (
	"strings"
	"time"

	"github.com/arash-96/payment-gateway-challenge/internal/domain/payment"
)

// バリデーション違反メッセージ
const (
	MsgInvalidCardNumber  = "The card number is invalid"
	MsgInvalidExpiryMonth = "The expiry month is invalid"
	MsgInvalidExpiryYear  = "The expiry year is invalid"
	MsgInvalidCurrency    = "The currency is invalid"
	MsgInvalidAmount      = "The amount is invalid"
	MsgInvalidCvv         = "The Cvv is invalid"
)

// 受け付ける通貨コード
var validCurrencyCodes = []string{"USD", "EUR", "GBP"}

// PaymentValidator 決済リクエストのバリデーションを行うドメインサービス
// 有効期限チェックのため現在時刻を注入できる
type PaymentValidator struct {
	now func() time.Time
}

// NewPaymentValidator 新しいPaymentValidatorを作成
func NewPaymentValidator() *PaymentValidator {
	return &PaymentValidator{
		now: time.Now,
	}
}

// NewPaymentValidatorWithClock 現在時刻を指定してPaymentValidatorを作成（テスト用）
func NewPaymentValidatorWithClock(now func() time.Time) *PaymentValidator {
	return &PaymentValidator{
		now: now,
	}
}

// Validate 決済リクエストを検証し、違反メッセージのリストを返す
// すべてのルールを独立に評価するため、複数の違反を一度に報告できる
// 違反がない場合は空のスライスを返す
func (v *PaymentValidator) Validate(req *payment.PaymentRequest) []string {
	var violations []string
	now := v.now()

	if !isValidCardNumber(req.CardNumber) {
		violations = append(violations, MsgInvalidCardNumber)
	}

	if req.ExpiryMonth < 1 || req.ExpiryMonth > 12 {
		violations = append(violations, MsgInvalidExpiryMonth)
	}

	// 有効期限が現在の年月より過去の場合は無効
	if req.ExpiryYear < now.Year() ||
		(req.ExpiryYear == now.Year() && req.ExpiryMonth < int(now.Month())) {
		violations = append(violations, MsgInvalidExpiryYear)
	}

	if !isValidCurrency(req.Currency) {
		violations = append(violations, MsgInvalidCurrency)
	}

	if req.Amount <= 0 {
		violations = append(violations, MsgInvalidAmount)
	}

	if !isValidCvv(req.CVV) {
		violations = append(violations, MsgInvalidCvv)
	}

	return violations
}

// isValidCardNumber カード番号が14〜19桁の数字であるかを返す
func isValidCardNumber(cardNumber string) bool {
	if len(cardNumber) < 14 || len(cardNumber) > 19 {
		return false
	}
	return isDigits(cardNumber)
}

// isValidCurrency 通貨コードが許可リストに含まれるかを返す（大文字小文字は区別しない）
func isValidCurrency(currency string) bool {
	if len(currency) != 3 {
		return false
	}
	upper := strings.ToUpper(currency)
	for _, code := range validCurrencyCodes {
		if upper == code {
			return true
		}
	}
	return false
}

// isValidCvv CVVが3〜4桁の数字であるかを返す
func isValidCvv(cvv string) bool {
	if len(cvv) < 3 || len(cvv) > 4 {
		return false
	}
	return isDigits(cvv)
}

// isDigits 文字列がASCII数字のみで構成されているかを返す
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
