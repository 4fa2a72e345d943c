package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	paymentapp "github.com/arash-96/payment-gateway-challenge/internal/application/payment"
)

// PaymentHandler 決済関連ハンドラー
type PaymentHandler struct {
	paymentService *paymentapp.PaymentApplicationService
}

// NewPaymentHandler 新しいPaymentHandlerを作成
func NewPaymentHandler(paymentService *paymentapp.PaymentApplicationService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// PostPayment 決済処理ハンドラー
// @Summary 決済を処理
// @Description カード決済リクエストを検証し、銀行承認を経て保存します
// @Tags payments
// @Accept json
// @Produce json
// @Param request body PostPaymentRequest true "決済処理リクエスト"
// @Success 200 {object} PaymentResponse "承認済みまたは拒否された決済レコード"
// @Failure 400 {string} string "バリデーション不合格"
// @Failure 502 {object} middleware.ErrorResponse "銀行に到達できない"
// @Router /api/payments [post]
func (h *PaymentHandler) PostPayment(c echo.Context) error {
	var reqBody PostPaymentRequest
	if err := c.Bind(&reqBody); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	req := &paymentapp.ProcessPaymentRequest{
		CardNumber:  reqBody.CardNumber,
		ExpiryMonth: reqBody.ExpiryMonth,
		ExpiryYear:  reqBody.ExpiryYear,
		Currency:    reqBody.Currency,
		Amount:      reqBody.Amount,
		CVV:         reqBody.Cvv,
	}

	result, err := h.paymentService.ProcessPayment(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPaymentResponse(result))
}

// GetPayment 決済取得ハンドラー
// @Summary 保存済み決済を取得
// @Description 決済IDで保存済みの決済レコードを取得します
// @Tags payments
// @Produce json
// @Param id path string true "決済ID"
// @Success 200 {object} PaymentResponse "決済レコード"
// @Failure 404 "決済が見つからない"
// @Router /api/payments/{id} [get]
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	paymentID := c.Param("id")

	result, err := h.paymentService.GetPayment(c.Request().Context(), paymentID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPaymentResponse(result))
}

// toPaymentResponse アプリケーションDTOをレスポンスモデルに変換
func toPaymentResponse(result *paymentapp.PaymentResult) PaymentResponse {
	return PaymentResponse{
		ID:                 result.PaymentID,
		Status:             result.Status,
		CardNumberLastFour: result.CardNumberLastFour,
		ExpiryMonth:        result.ExpiryMonth,
		ExpiryYear:         result.ExpiryYear,
		Currency:           result.Currency,
		Amount:             result.Amount,
	}
}
