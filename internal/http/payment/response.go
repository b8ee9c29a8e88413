package payment

import (
	"time"

	"pantrypay/internal/payment"
	"pantrypay/internal/razorpay"
)

// inspectResponse merges the stored receipt with the gateway's live view.
// Gateway fields sit under their own key so stored fields are never
// shadowed by whatever the gateway reports.
type inspectResponse struct {
	PaymentID  string            `json:"payment_id"`
	OrderID    string            `json:"order_id"`
	Amount     int64             `json:"amount"`
	Currency   string            `json:"currency"`
	Status     string            `json:"status"`
	VerifiedAt time.Time         `json:"verified_at"`
	Gateway    *razorpay.Payment `json:"gateway"`
}

func toInspectResponse(result *payment.InspectResult) inspectResponse {
	return inspectResponse{
		PaymentID:  result.Payment.GatewayPaymentID,
		OrderID:    result.Payment.GatewayOrderID,
		Amount:     result.Payment.Amount,
		Currency:   result.Payment.Currency,
		Status:     result.Payment.Status,
		VerifiedAt: result.Payment.VerifiedAt,
		Gateway:    result.Gateway,
	}
}
