package payment

// ProcessPaymentRequest 決済処理リクエスト
type ProcessPaymentRequest struct {
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	Currency    string
	Amount      int64
	CVV         string
}

// PaymentResult 決済処理・取得レスポンス
// カード番号は下4桁のみ保持する
type PaymentResult struct {
	PaymentID          string
	Status             string
	CardNumberLastFour string
	ExpiryMonth        int
	ExpiryYear         int
	Currency           string
	Amount             int64
}
