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

type AddressRepository struct {
	coll *mongo.Collection
}

func NewAddressRepository(db *DB) *AddressRepository {
	return &AddressRepository{coll: db.collection(AddressesCollection)}
}

func (r *AddressRepository) FindByUser(ctx context.Context, userID string) (*models.Address, error) {
	var addr models.Address
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&addr); err != nil {
		return nil, translate(err)
	}
	return &addr, nil
}

// Save upserts the user's single delivery address.
func (r *AddressRepository) Save(ctx context.Context, addr *models.Address) error {
	res, err := r.coll.ReplaceOne(ctx,
		bson.M{"userId": addr.UserID},
		addr,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("saving address: %w", err)
	}
	if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
		addr.ID = id
	}
	return nil
}
