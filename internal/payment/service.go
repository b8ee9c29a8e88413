package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/currency"

	"pantrypay/internal/razorpay"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=payment
type Repository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetOrderForUser(ctx context.Context, gatewayOrderID, userID string) (*Order, error)
	CompleteOrder(ctx context.Context, gatewayOrderID, userID, gatewayPaymentID, signature string, completedAt time.Time) (*Order, error)
	CreatePayment(ctx context.Context, payment *Payment) error
	GetPaymentForUser(ctx context.Context, gatewayPaymentID, userID string) (*Payment, error)
}

// Gateway is the slice of the payment provider the service needs.
// *razorpay.Client satisfies it.
type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*razorpay.Order, error)
	FetchPayment(ctx context.Context, paymentID string) (*razorpay.Payment, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type Service struct {
	repo    Repository
	gateway Gateway
}

func NewService(repo Repository, gateway Gateway) *Service {
	return &Service{repo: repo, gateway: gateway}
}

type IssueParams struct {
	UserID   string
	Amount   int64 // minor currency units
	Currency string
	Receipt  string
}

// IssueOrder creates a gateway order and records it locally with status
// created. The gateway call happens first; if the local insert then fails
// the whole operation fails, because an order with no local record could
// never pass the ownership check at verification time. The orphaned
// gateway order is logged for reconciliation and simply expires unpaid.
func (s *Service) IssueOrder(ctx context.Context, params IssueParams) (*razorpay.Order, error) {
	if params.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	code := strings.ToUpper(strings.TrimSpace(params.Currency))
	if _, err := currency.ParseISO(code); err != nil {
		return nil, ErrInvalidCurrency
	}

	if strings.TrimSpace(params.Receipt) == "" {
		return nil, fmt.Errorf("%w: receipt", ErrInvalidInput)
	}

	gwOrder, err := s.gateway.CreateOrder(ctx, params.Amount, code, params.Receipt)
	if err != nil {
		return nil, err
	}

	order := &Order{
		GatewayOrderID: gwOrder.ID,
		UserID:         params.UserID,
		Amount:         gwOrder.Amount,
		Currency:       gwOrder.Currency,
		Receipt:        params.Receipt,
		Status:         OrderStatusCreated,
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		slog.Error("gateway order created but local record failed",
			"gateway_order_id", gwOrder.ID, "user_id", params.UserID, "error", err)
		return nil, fmt.Errorf("recording order %s: %w", gwOrder.ID, err)
	}

	return gwOrder, nil
}

type VerifyParams struct {
	UserID           string
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
}

type VerifyResult struct {
	Verified bool
}

// VerifyPayment recomputes the checkout signature and, on a match,
// completes the order and records a payment receipt. A mismatch is a
// normal outcome, not an error: the result is false and nothing mutates.
//
// The completion and the payment insert are a primary/secondary pair: the
// signature check alone decides the verified result. A failed payment
// insert after a successful completion is logged and the caller still
// sees verified, since the payment row is reconciling bookkeeping. Both
// writes are idempotent, so resubmitting the same confirmation converges.
func (s *Service) VerifyPayment(ctx context.Context, params VerifyParams) (*VerifyResult, error) {
	if params.GatewayOrderID == "" || params.GatewayPaymentID == "" || params.Signature == "" {
		return nil, fmt.Errorf("%w: razorpay_order_id, razorpay_payment_id and razorpay_signature are required", ErrInvalidInput)
	}

	if !s.gateway.VerifySignature(params.GatewayOrderID, params.GatewayPaymentID, params.Signature) {
		return &VerifyResult{Verified: false}, nil
	}

	// Ownership check: a valid signature for someone else's order must
	// still fail as not-found.
	order, err := s.repo.GetOrderForUser(ctx, params.GatewayOrderID, params.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	order, err = s.repo.CompleteOrder(ctx, params.GatewayOrderID, params.UserID,
		params.GatewayPaymentID, params.Signature, now)
	if err != nil {
		return nil, fmt.Errorf("completing order %s: %w", params.GatewayOrderID, err)
	}

	receipt := &Payment{
		GatewayPaymentID: params.GatewayPaymentID,
		GatewayOrderID:   params.GatewayOrderID,
		UserID:           params.UserID,
		Amount:           order.Amount,
		Currency:         order.Currency,
		Status:           PaymentStatusCaptured,
		Signature:        params.Signature,
		VerifiedAt:       now,
	}

	if err := s.repo.CreatePayment(ctx, receipt); err != nil {
		slog.Error("order completed but payment receipt insert failed",
			"gateway_order_id", params.GatewayOrderID,
			"gateway_payment_id", params.GatewayPaymentID,
			"error", err)
	}

	return &VerifyResult{Verified: true}, nil
}

// InspectResult pairs the stored receipt with the gateway's live view.
// Gateway fields stay nested so stored fields are never overwritten.
type InspectResult struct {
	Payment *Payment
	Gateway *razorpay.Payment
}

// InspectPayment returns the caller's payment enriched with the gateway's
// live status. A payment owned by someone else is indistinguishable from
// one that does not exist.
func (s *Service) InspectPayment(ctx context.Context, userID, gatewayPaymentID string) (*InspectResult, error) {
	if gatewayPaymentID == "" {
		return nil, fmt.Errorf("%w: payment_id", ErrInvalidInput)
	}

	stored, err := s.repo.GetPaymentForUser(ctx, gatewayPaymentID, userID)
	if err != nil {
		return nil, err
	}

	live, err := s.gateway.FetchPayment(ctx, gatewayPaymentID)
	if err != nil {
		return nil, err
	}

	return &InspectResult{Payment: stored, Gateway: live}, nil
}
