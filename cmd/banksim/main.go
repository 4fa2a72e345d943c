package main

import (
	"log"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// authorizationRequest ゲートウェイから受け取る承認リクエスト
type authorizationRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	Cvv        string `json:"cvv"`
}

// authorizationResponse ゲートウェイへ返す承認結果
type authorizationResponse struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}

// ローカル開発用の銀行シミュレーター
// カード番号の末尾が奇数なら承認、偶数なら拒否する
func main() {
	port := os.Getenv("BANKSIM_PORT")
	if port == "" {
		port = "8080"
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.POST("/payments", func(c echo.Context) error {
		var req authorizationRequest
		if err := c.Bind(&req); err != nil {
			return c.NoContent(http.StatusBadRequest)
		}

		resp := authorizationResponse{}
		if authorizes(req.CardNumber) {
			resp.Authorized = true
			resp.AuthorizationCode = uuid.NewString()
		}

		log.Printf("authorization request: amount=%d currency=%s authorized=%t",
			req.Amount, req.Currency, resp.Authorized)

		return c.JSON(http.StatusOK, resp)
	})

	log.Printf("Bank simulator starting on :%s", port)
	if err := e.Start(":" + port); err != nil {
		log.Fatalf("Bank simulator error: %v", err)
	}
}

// authorizes カード番号の末尾が奇数かどうかで承認可否を決める
func authorizes(cardNumber string) bool {
	if cardNumber == "" {
		return false
	}
	last := cardNumber[len(cardNumber)-1]
	if last < '0' || last > '9' {
		return false
	}
	return (last-'0')%2 == 1
}
