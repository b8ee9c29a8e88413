package payment

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of a payment order.
type OrderStatus string

const (
	// OrderStatusCreated is the initial state; the order exists at the
	// gateway but no payment has been verified against it.
	OrderStatusCreated OrderStatus = "created"
	// OrderStatusCompleted is terminal and only ever reached through a
	// successful signature verification.
	OrderStatusCompleted OrderStatus = "completed"
)

// PaymentStatusCaptured is the only status a locally recorded payment can
// have; a Payment row exists only for verified, captured payments.
const PaymentStatusCaptured = "captured"

// Order is a requested gateway transaction. Orders are append-only: they
// are mutated exactly once, on verification, and never deleted.
type Order struct {
	ID               uuid.UUID
	GatewayOrderID   string
	UserID           string
	Amount           int64 // minor currency units
	Currency         string
	Receipt          string
	Status           OrderStatus
	GatewayPaymentID *string
	Signature        *string
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Payment is a locally recorded, signature-verified payment receipt.
// Amount and currency are copied from the Order at verification time,
// never taken from client input.
type Payment struct {
	ID               uuid.UUID
	GatewayPaymentID string
	GatewayOrderID   string
	UserID           string
	Amount           int64
	Currency         string
	Status           string
	Signature        string
	VerifiedAt       time.Time
	CreatedAt        time.Time
}
