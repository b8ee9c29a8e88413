package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pantrypay/internal/database"
	"pantrypay/internal/payment"
)

type Store struct {
	db    *sql.DB
	hooks []database.Hook
}

func New(db *sql.DB, hooks ...database.Hook) *Store {
	return &Store{db: db, hooks: hooks}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectOrderColumns = `
	id, gateway_order_id, user_id, amount, currency, receipt, status,
	gateway_payment_id, signature, completed_at, created_at, updated_at
`

func scanOrder(s scanner) (*payment.Order, error) {
	var o payment.Order

	var statusStr string

	if err := s.Scan(
		&o.ID, &o.GatewayOrderID, &o.UserID, &o.Amount, &o.Currency, &o.Receipt, &statusStr,
		&o.GatewayPaymentID, &o.Signature, &o.CompletedAt,
		&o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}

	o.Status = payment.OrderStatus(statusStr)

	return &o, nil
}

func (s *Store) CreateOrder(ctx context.Context, order *payment.Order) error {
	return database.Observe(ctx, s.hooks, "payment_orders.insert", func(ctx context.Context) error {
		query := `
			INSERT INTO payment_orders (gateway_order_id, user_id, amount, currency, receipt, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			RETURNING id, created_at, updated_at
		`

		err := s.db.QueryRowContext(ctx, query,
			order.GatewayOrderID,
			order.UserID,
			order.Amount,
			order.Currency,
			order.Receipt,
			order.Status,
		).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return fmt.Errorf("creating order: %w", err)
		}

		return nil
	})
}

func (s *Store) GetOrderForUser(ctx context.Context, gatewayOrderID, userID string) (*payment.Order, error) {
	var order *payment.Order

	err := database.Observe(ctx, s.hooks, "payment_orders.get", func(ctx context.Context) error {
		query := `SELECT ` + selectOrderColumns + `
			FROM payment_orders
			WHERE gateway_order_id = $1 AND user_id = $2`

		var err error

		order, err = scanOrder(s.db.QueryRowContext(ctx, query, gatewayOrderID, userID))
		if err != nil {
			if err == sql.ErrNoRows {
				return payment.ErrOrderNotFound
			}

			return fmt.Errorf("getting order: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// CompleteOrder transitions the order to completed. The status guard makes
// retries converge: a re-submitted confirmation for an already-completed
// order matches the second branch and changes nothing.
func (s *Store) CompleteOrder(ctx context.Context, gatewayOrderID, userID, gatewayPaymentID, signature string, completedAt time.Time) (*payment.Order, error) {
	var order *payment.Order

	err := database.Observe(ctx, s.hooks, "payment_orders.complete", func(ctx context.Context) error {
		query := `
			UPDATE payment_orders
			SET status = 'completed', gateway_payment_id = $3, signature = $4, completed_at = $5, updated_at = NOW()
			WHERE gateway_order_id = $1 AND user_id = $2
			  AND (status = 'created' OR (status = 'completed' AND gateway_payment_id = $3))
			RETURNING ` + selectOrderColumns

		var err error

		order, err = scanOrder(s.db.QueryRowContext(ctx, query,
			gatewayOrderID, userID, gatewayPaymentID, signature, completedAt))
		if err != nil {
			if err == sql.ErrNoRows {
				return payment.ErrOrderNotFound
			}

			return fmt.Errorf("completing order: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// CreatePayment records a verified payment receipt. Inserting the same
// gateway payment id twice is a no-op.
func (s *Store) CreatePayment(ctx context.Context, p *payment.Payment) error {
	return database.Observe(ctx, s.hooks, "payments.insert", func(ctx context.Context) error {
		query := `
			INSERT INTO payments (gateway_payment_id, gateway_order_id, user_id, amount, currency, status, signature, verified_at, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
			ON CONFLICT (gateway_payment_id) DO NOTHING
		`

		_, err := s.db.ExecContext(ctx, query,
			p.GatewayPaymentID,
			p.GatewayOrderID,
			p.UserID,
			p.Amount,
			p.Currency,
			p.Status,
			p.Signature,
			p.VerifiedAt,
		)
		if err != nil {
			return fmt.Errorf("creating payment: %w", err)
		}

		return nil
	})
}

func (s *Store) GetPaymentForUser(ctx context.Context, gatewayPaymentID, userID string) (*payment.Payment, error) {
	var p payment.Payment

	err := database.Observe(ctx, s.hooks, "payments.get", func(ctx context.Context) error {
		query := `
			SELECT id, gateway_payment_id, gateway_order_id, user_id, amount, currency, status, signature, verified_at, created_at
			FROM payments
			WHERE gateway_payment_id = $1 AND user_id = $2
		`

		err := s.db.QueryRowContext(ctx, query, gatewayPaymentID, userID).Scan(
			&p.ID, &p.GatewayPaymentID, &p.GatewayOrderID, &p.UserID,
			&p.Amount, &p.Currency, &p.Status, &p.Signature,
			&p.VerifiedAt, &p.CreatedAt,
		)
		if err != nil {
			if err == sql.ErrNoRows {
				return payment.ErrPaymentNotFound
			}

			return fmt.Errorf("getting payment: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &p, nil
}
