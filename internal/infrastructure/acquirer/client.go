package acquirer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/arash-96/payment-gateway-challenge/internal/domain/acquirer"
	"github.com/arash-96/payment-gateway-challenge/internal/infrastructure/config"
)

// Client HTTP実装のAcquirerClient
// 設定されたベースURLの /payments に承認リクエストを送信する
// タイムアウトは設定で制御し、呼び出し元のコンテキストのキャンセルも伝播する
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient 新しいClientを作成
func NewClient(cfg *config.AcquirerConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// authorizationPayload 銀行へ送信するJSONペイロード
type authorizationPayload struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"` // "MM/YYYY"形式
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	Cvv        string `json:"cvv"`
}

// authorizationResponse 銀行からのJSONレスポンス
type authorizationResponse struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}

// Authorize 決済を銀行に承認依頼する
// ネットワーク障害、非2xx応答、不正なレスポンスボディはすべて
// ErrBankUnavailableとして呼び出し元に返す
func (c *Client) Authorize(ctx context.Context, req *acquirer.AuthorizationRequest) (*acquirer.AuthorizationResult, error) {
	payload := authorizationPayload{
		CardNumber: req.CardNumber,
		ExpiryDate: fmt.Sprintf("%02d/%d", req.ExpiryMonth, req.ExpiryYear),
		Currency:   req.Currency,
		Amount:     req.Amount,
		Cvv:        req.CVV,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal authorization payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create authorization request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", acquirer.ErrBankUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", acquirer.ErrBankUnavailable, resp.StatusCode)
	}

	var authResp authorizationResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		return nil, fmt.Errorf("%w: malformed response body: %v", acquirer.ErrBankUnavailable, err)
	}

	return &acquirer.AuthorizationResult{
		Authorized:        authResp.Authorized,
		AuthorizationCode: authResp.AuthorizationCode,
	}, nil
}
