// Package pix talks to the PayOnHub gateway that issues PIX QR codes.
package pix

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrNotConfigured is returned when the gateway keys are missing.
var ErrNotConfigured = errors.New("PayOnHub credentials are missing")

type Item struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	Description string `json:"description"`
	Tangible    bool   `json:"tangible"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Options struct {
	Expiration int `json:"expiration"`
}

// TransactionRequest is the body of POST /transactions. Amounts are in centavos.
type TransactionRequest struct {
	Amount        int64    `json:"amount"`
	PaymentMethod string   `json:"paymentMethod"`
	ReferenceID   string   `json:"referenceId"`
	Currency      string   `json:"currency"`
	Description   string   `json:"description"`
	Items         []Item   `json:"items"`
	Customer      Customer `json:"customer"`
	Pix           Options  `json:"pix"`
	PostbackURL   string   `json:"postbackUrl"`
	ExternalRef   string   `json:"externalRef"`
	IP            string   `json:"ip"`
}

type TransactionResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Pix    struct {
		QRCode         string `json:"qrcode"`
		ExpirationDate string `json:"expirationDate,omitempty"`
	} `json:"pix"`
}

// GatewayError is a non-2xx answer from the gateway. Details holds the decoded body.
type GatewayError struct {
	StatusCode int
	Message    string
	Details    any
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payonhub returned %d: %s", e.StatusCode, e.Message)
}

type Config struct {
	BaseURL   string
	PublicKey string
	SecretKey string
	Timeout   time.Duration
}

type Client struct {
	http       *resty.Client
	configured bool
}

func NewClient(cfg Config) *Client {
	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetBasicAuth(cfg.PublicKey, cfg.SecretKey).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:       rc,
		configured: cfg.PublicKey != "" && cfg.SecretKey != "",
	}
}

// CreateTransaction asks the gateway for a PIX charge. It is not retried.
func (c *Client) CreateTransaction(ctx context.Context, req TransactionRequest) (*TransactionResponse, error) {
	if !c.configured {
		return nil, ErrNotConfigured
	}

	var out TransactionResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/transactions")
	if err != nil {
		return nil, fmt.Errorf("calling payonhub: %w", err)
	}

	if resp.IsError() {
		return nil, newGatewayError(resp.StatusCode(), resp.Body())
	}
	return &out, nil
}

func newGatewayError(status int, body []byte) *GatewayError {
	gwErr := &GatewayError{StatusCode: status, Message: "Failed to create PIX transaction"}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		gwErr.Details = string(body)
		return gwErr
	}
	gwErr.Details = decoded
	if msg, ok := decoded["error"].(string); ok && msg != "" {
		gwErr.Message = msg
	} else if msg, ok := decoded["message"].(string); ok && msg != "" {
		gwErr.Message = msg
	}
	return gwErr
}
