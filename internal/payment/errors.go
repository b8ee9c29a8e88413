package payment

import "errors"

var (
	ErrInvalidAmount   = errors.New("amount must be a positive integer in minor units")
	ErrInvalidCurrency = errors.New("invalid currency code")
	ErrInvalidInput    = errors.New("missing required field")

	// ErrOrderNotFound also covers orders that exist but belong to a
	// different user; the two cases are deliberately indistinguishable.
	ErrOrderNotFound = errors.New("order not found")

	// ErrPaymentNotFound likewise hides whether the payment exists at all
	// or belongs to someone else.
	ErrPaymentNotFound = errors.New("payment not found")
)
