package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/01moynul/flordelima-golang/internal/apperr"
	"github.com/01moynul/flordelima-golang/internal/models"
)

const (
	FavoriteAdd    = "add"
	FavoriteRemove = "remove"
)

type FavoritesService struct {
	favorites FavoritesStore
	log       *zap.Logger
}

func NewFavoritesService(favorites FavoritesStore, log *zap.Logger) *FavoritesService {
	return &FavoritesService{favorites: favorites, log: log}
}

// List returns the favorite product ids, [] when there are none.
func (s *FavoritesService) List(ctx context.Context, userID string) ([]int64, error) {
	fav, err := s.favorites.FindByUser(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return []int64{}, nil
	}
	if err != nil {
		return nil, apperr.Internal("Failed to fetch favorites", err)
	}
	return fav.ProductIDs, nil
}

// Toggle adds or removes productID and returns the resulting list.
func (s *FavoritesService) Toggle(ctx context.Context, userID string, productID int64, action string) ([]int64, error) {
	if productID <= 0 || (action != FavoriteAdd && action != FavoriteRemove) {
		return nil, apperr.Validation("Product ID and action (add/remove) are required")
	}

	fav, err := s.favorites.FindByUser(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		fav = models.NewFavorites(userID)
	} else if err != nil {
		return nil, apperr.Internal("Failed to update favorites", err)
	}

	if action == FavoriteAdd {
		fav.Add(productID)
	} else {
		fav.Remove(productID)
	}

	if err := s.favorites.Save(ctx, fav); err != nil {
		return nil, apperr.Internal("Failed to update favorites", err)
	}
	return fav.ProductIDs, nil
}
