package handler

// PostPaymentRequest 決済処理リクエスト
// @Description カード決済処理リクエスト
type PostPaymentRequest struct {
	CardNumber  string `json:"card_number" example:"2222405343248112"`
	ExpiryMonth int    `json:"expiry_month" example:"12"`
	ExpiryYear  int    `json:"expiry_year" example:"2028"`
	Currency    string `json:"currency" example:"GBP"`
	Amount      int64  `json:"amount" example:"1000"`
	Cvv         string `json:"cvv" example:"123"`
}

// PaymentResponse 決済レスポンス
// @Description 保存された決済レコード。カード番号は下4桁のみ返す
type PaymentResponse struct {
	ID                 string `json:"id" example:"6f8a9a52-7c4e-4d39-9c12-a2d5e34b91d0"`
	Status             string `json:"status" example:"Authorized"`
	CardNumberLastFour string `json:"card_number_last_four" example:"8112"`
	ExpiryMonth        int    `json:"expiry_month" example:"12"`
	ExpiryYear         int    `json:"expiry_year" example:"2028"`
	Currency           string `json:"currency" example:"GBP"`
	Amount             int64  `json:"amount" example:"1000"`
}
