package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BankConfirmation records that the (stubbed) bank accepted a login for a
// credit-card payment. The password is never stored.
type BankConfirmation struct {
	Username    string    `json:"username" bson:"username"`
	Reference   string    `json:"reference" bson:"reference"`
	ConfirmedAt time.Time `json:"confirmedAt" bson:"confirmedAt"`
}

// Payment is one payment attempt for an order ('payments' collection).
// Only the last four card digits are kept; the CVV is discarded at the boundary.
type Payment struct {
	ID               primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	OrderID          string             `json:"orderId" bson:"orderId"`
	UserID           string             `json:"userId" bson:"userId"`
	PaymentMethod    string             `json:"paymentMethod" bson:"paymentMethod"`
	CardLast4        string             `json:"cardLast4,omitempty" bson:"cardLast4,omitempty"`
	CardHolder       string             `json:"cardHolder,omitempty" bson:"cardHolder,omitempty"`
	ExpiryDate       string             `json:"expiryDate,omitempty" bson:"expiryDate,omitempty"`
	CPF              string             `json:"cpf,omitempty" bson:"cpf,omitempty"`
	Installments     int                `json:"parcelas,omitempty" bson:"parcelas,omitempty"`
	Bank             string             `json:"bank,omitempty" bson:"bank,omitempty"`
	BankConfirmation *BankConfirmation  `json:"bankConfirmation,omitempty" bson:"bankConfirmation,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// LastFour returns the last four digits of a card number, ignoring spaces and dashes.
func LastFour(cardNumber string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cardNumber)
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
