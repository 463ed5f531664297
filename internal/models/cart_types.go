package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxItemQuantity caps a single cart line.
const MaxItemQuantity = 999

// CartItem is one line of a cart (or of an order, which copies them).
// Price is the unit price at the time the line was added.
type CartItem struct {
	ProductID int64   `json:"productId" bson:"productId"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
}

// Cart is the 'carts' document. There is exactly one per user.
type Cart struct {
	ID        primitive.ObjectID `json:"_id,omitzero" bson:"_id,omitempty"`
	UserID    string             `json:"userId" bson:"userId"`
	Items     []CartItem         `json:"items" bson:"items"`
	Total     float64            `json:"total" bson:"total"`
	LastCart  []CartItem         `json:"lastCart" bson:"lastCart"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// NewCart returns an empty, unsaved cart for the user.
func NewCart(userID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		UserID:    userID,
		Items:     []CartItem{},
		LastCart:  []CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Normalize replaces nil slices so the cart always serialises items as [].
func (c *Cart) Normalize() {
	if c.Items == nil {
		c.Items = []CartItem{}
	}
	if c.LastCart == nil {
		c.LastCart = []CartItem{}
	}
}

// Recalculate recomputes the total from the current items and bumps UpdatedAt.
// Every mutation below ends with it.
func (c *Cart) Recalculate() {
	c.Normalize()
	c.Total = SumItems(c.Items)
	c.UpdatedAt = time.Now().UTC()
}

// AddItem increments the quantity of an existing line or appends a new one.
func (c *Cart) AddItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			c.Recalculate()
			return
		}
	}
	c.Items = append(c.Items, item)
	c.Recalculate()
}

// QuantityOf returns the quantity of productID in the cart, 0 if absent.
func (c *Cart) QuantityOf(productID int64) int {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}

// RemoveItem drops the line for productID. Removing an absent product leaves the items as they were.
func (c *Cart) RemoveItem(productID int64) {
	kept := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
	c.Recalculate()
}

// SetQuantity sets the quantity of an existing line. It reports false if the product is not in the cart.
func (c *Cart) SetQuantity(productID int64, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			c.Recalculate()
			return true
		}
	}
	return false
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// SnapshotAndClear copies the current items into LastCart and empties the cart.
// Used when the cart is turned into an order.
func (c *Cart) SnapshotAndClear() {
	c.LastCart = CopyItems(c.Items)
	c.Items = []CartItem{}
	c.Recalculate()
}

// RestoreSnapshot moves LastCart back into Items. It reports false when there is nothing to restore.
func (c *Cart) RestoreSnapshot() bool {
	if len(c.LastCart) == 0 {
		return false
	}
	c.Items = CopyItems(c.LastCart)
	c.LastCart = []CartItem{}
	c.Recalculate()
	return true
}

// CopyItems returns a deep copy of the slice (never nil).
func CopyItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	copy(out, items)
	return out
}
