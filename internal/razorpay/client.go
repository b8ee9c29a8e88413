package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

var (
	// ErrNotConfigured means the gateway credentials are missing; the
	// deployment cannot take payments at all.
	ErrNotConfigured = errors.New("razorpay credentials not configured")

	// ErrUnavailable covers transport failures and gateway-side errors.
	// The gateway's own error payload is logged, never returned.
	ErrUnavailable = errors.New("payment gateway unavailable")
)

// Order is the gateway's order object as returned by the orders API.
type Order struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

// Payment is the gateway's live payment object.
type Payment struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	Method    string `json:"method"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
	CreatedAt int64  `json:"created_at"`
}

type Client struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

func NewClient(keyID, keySecret, baseURL string) *Client {
	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) configured() bool {
	return c.keyID != "" && c.keySecret != ""
}

// CreateOrder creates a gateway order for the given amount in minor
// currency units.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*Order, error) {
	if !c.configured() {
		return nil, ErrNotConfigured
	}

	payload, err := json.Marshal(map[string]any{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	var order Order
	if err := c.do(req, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// FetchPayment retrieves the live payment object by gateway payment id.
func (c *Client) FetchPayment(ctx context.Context, paymentID string) (*Payment, error) {
	if !c.configured() {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/payments/"+paymentID, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.SetBasicAuth(c.keyID, c.keySecret)

	var payment Payment
	if err := c.do(req, &payment); err != nil {
		return nil, err
	}

	return &payment, nil
}

// VerifySignature checks the checkout callback signature: an HMAC-SHA256
// over "orderID|paymentID" keyed with the secret, hex encoded. Only the
// ids participate; amounts reported by the client are never trusted.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	if c.keySecret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		slog.Error("gateway request failed", "url", req.URL.Path, "error", err)
		return ErrUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		slog.Error("reading gateway response", "url", req.URL.Path, "error", err)
		return ErrUnavailable
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Error("gateway rejected request",
			"url", req.URL.Path, "status", resp.StatusCode, "body", string(body))
		return ErrUnavailable
	}

	if err := json.Unmarshal(body, out); err != nil {
		slog.Error("decoding gateway response", "url", req.URL.Path, "error", err)
		return ErrUnavailable
	}

	return nil
}
