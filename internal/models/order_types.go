package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment methods accepted at checkout.
const (
	PaymentMethodCreditCard = "creditCard"
	PaymentMethodPix        = "pix"
)

// Order statuses. pending is the only non-terminal one.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order is the 'orders' document. Items and Total are frozen at creation.
type Order struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID        string             `json:"userId" bson:"userId"`
	Items         []CartItem         `json:"items" bson:"items"`
	Total         float64            `json:"total" bson:"total"`
	PaymentMethod string             `json:"paymentMethod" bson:"paymentMethod"`
	PixKey        string             `json:"pixKey,omitempty" bson:"pixKey,omitempty"`
	Status        string             `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// NewOrder builds a pending order from a copy of the cart lines. The total is
// recomputed from the copy rather than trusted from the cart.
func NewOrder(userID string, items []CartItem, paymentMethod string) *Order {
	now := time.Now().UTC()
	copied := CopyItems(items)
	return &Order{
		UserID:        userID,
		Items:         copied,
		Total:         SumItems(copied),
		PaymentMethod: paymentMethod,
		Status:        OrderStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// OrderUpdate is a partial update. Nil fields are left alone.
type OrderUpdate struct {
	Status *string
	PixKey *string
}

// IsEmpty reports whether the update touches nothing.
func (u OrderUpdate) IsEmpty() bool {
	return u.Status == nil && u.PixKey == nil
}

func ValidPaymentMethod(method string) bool {
	return method == PaymentMethodCreditCard || method == PaymentMethodPix
}

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether the order may move to status.
// Setting the current status again is allowed; terminal states never change.
func (o *Order) CanTransition(status string) bool {
	if o.Status == status {
		return true
	}
	return o.Status == OrderStatusPending
}
