package payment

// PaymentRequest カード決済リクエストを表す値オブジェクト
// 保存されることはなく、バリデーションと銀行承認の入力にのみ使われる
type PaymentRequest struct {
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	Currency    string
	Amount      int64
	CVV         string
}

// CardNumberLastFour カード番号の下4桁を返す
// カード番号が4桁未満の場合は全桁を返す
func (r *PaymentRequest) CardNumberLastFour() string {
	if len(r.CardNumber) <= 4 {
		return r.CardNumber
	}
	return r.CardNumber[len(r.CardNumber)-4:]
}
