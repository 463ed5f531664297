package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/01moynul/flordelima-golang/internal/models"
)

// CartRepository stores one cart document per user.
type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *DB) *CartRepository {
	return &CartRepository{coll: db.collection(CartsCollection)}
}

// FindByUser returns models.ErrNotFound when the user has never added anything.
func (r *CartRepository) FindByUser(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.coll.FindOne(ctx, cartFilter(userID)).Decode(&cart); err != nil {
		return nil, translate(err)
	}
	cart.Normalize()
	return &cart, nil
}

// Save replaces the user's cart, creating it on first use. Concurrent saves
// for the same user are last-write-wins.
func (r *CartRepository) Save(ctx context.Context, cart *models.Cart) error {
	cart.Normalize()
	res, err := r.coll.ReplaceOne(ctx, cartFilter(cart.UserID), cart, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("saving cart: %w", translate(err))
	}
	if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
		cart.ID = id
	}
	return nil
}

// cartFilter selects the single cart of a user; userId carries a unique index.
func cartFilter(userID string) bson.M {
	return bson.M{"userId": userID}
}
