package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentRequest_CardNumberLastFour(t *testing.T) {
	tests := []struct {
		name       string
		cardNumber string
		want       string
	}{
		{
			name:       "正常系: 16桁のカード番号",
			cardNumber: "2222405343248112",
			want:       "8112",
		},
		{
			name:       "正常系: 下4桁の先頭が0",
			cardNumber: "2222405343240042",
			want:       "0042",
		},
		{
			name:       "正常系: 4桁以下はそのまま返す",
			cardNumber: "123",
			want:       "123",
		},
		{
			name:       "正常系: 空文字列",
			cardNumber: "",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &PaymentRequest{CardNumber: tt.cardNumber}
			assert.Equal(t, tt.want, req.CardNumberLastFour())
		})
	}
}
