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

type FavoritesRepository struct {
	coll *mongo.Collection
}

func NewFavoritesRepository(db *DB) *FavoritesRepository {
	return &FavoritesRepository{coll: db.collection(FavoritesCollection)}
}

func (r *FavoritesRepository) FindByUser(ctx context.Context, userID string) (*models.Favorites, error) {
	var fav models.Favorites
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&fav); err != nil {
		return nil, translate(err)
	}
	if fav.ProductIDs == nil {
		fav.ProductIDs = []int64{}
	}
	return &fav, nil
}

func (r *FavoritesRepository) Save(ctx context.Context, fav *models.Favorites) error {
	res, err := r.coll.ReplaceOne(ctx,
		bson.M{"userId": fav.UserID},
		fav,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("saving favorites: %w", translate(err))
	}
	if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
		fav.ID = id
	}
	return nil
}
