package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorites is the 'favorites' document, one per user.
type Favorites struct {
	ID         primitive.ObjectID `json:"_id,omitzero" bson:"_id,omitempty"`
	UserID     string             `json:"userId" bson:"userId"`
	ProductIDs []int64            `json:"productIds" bson:"productIds"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func NewFavorites(userID string) *Favorites {
	now := time.Now().UTC()
	return &Favorites{
		UserID:     userID,
		ProductIDs: []int64{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Add inserts productID unless it is already present.
func (f *Favorites) Add(productID int64) {
	for _, id := range f.ProductIDs {
		if id == productID {
			return
		}
	}
	f.ProductIDs = append(f.ProductIDs, productID)
	f.UpdatedAt = time.Now().UTC()
}

// Remove filters productID out; absent ids are a no-op.
func (f *Favorites) Remove(productID int64) {
	kept := make([]int64, 0, len(f.ProductIDs))
	for _, id := range f.ProductIDs {
		if id != productID {
			kept = append(kept, id)
		}
	}
	f.ProductIDs = kept
	f.UpdatedAt = time.Now().UTC()
}
