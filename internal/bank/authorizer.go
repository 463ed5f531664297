// Package bank confirms a card payment with the customer's bank.
//
// There is no real bank integration yet. Stub stands in for one and is the
// only implementation wired in main.
package bank

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrRejected = errors.New("bank rejected the credentials")

// Confirmation is what the bank hands back. It never contains the password.
type Confirmation struct {
	Reference   string
	ConfirmedAt time.Time
}

// Authorizer verifies bank credentials for an order.
type Authorizer interface {
	Authorize(ctx context.Context, orderID, username, password string) (*Confirmation, error)
}

// Stub accepts any non-blank credentials and issues a random reference.
type Stub struct{}

func (Stub) Authorize(ctx context.Context, orderID, username, password string) (*Confirmation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, ErrRejected
	}
	return &Confirmation{
		Reference:   uuid.NewString(),
		ConfirmedAt: time.Now().UTC(),
	}, nil
}
