package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/01moynul/flordelima-golang/internal/apperr"
	"github.com/01moynul/flordelima-golang/internal/models"
)

type AddressService struct {
	addresses AddressStore
	log       *zap.Logger
}

func NewAddressService(addresses AddressStore, log *zap.Logger) *AddressService {
	return &AddressService{addresses: addresses, log: log}
}

func (s *AddressService) Get(ctx context.Context, userID string) (*models.Address, error) {
	addr, err := s.addresses.FindByUser(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, apperr.NotFound("Address not found")
	}
	if err != nil {
		return nil, apperr.Internal("Failed to fetch address", err)
	}
	return addr, nil
}

// Save replaces the user's delivery address.
func (s *AddressService) Save(ctx context.Context, userID string, addr models.Address) (*models.Address, error) {
	trim(&addr.RecipientName, &addr.StreetType, &addr.StreetName, &addr.StreetNumber,
		&addr.Complement, &addr.Neighborhood, &addr.ZipCode, &addr.City, &addr.State)

	for _, required := range []string{addr.RecipientName, addr.StreetName, addr.StreetNumber,
		addr.Neighborhood, addr.ZipCode, addr.City, addr.State} {
		if required == "" {
			return nil, apperr.Validation("Missing required address fields")
		}
	}

	addr.UserID = userID
	addr.UpdatedAt = time.Now().UTC()
	if err := s.addresses.Save(ctx, &addr); err != nil {
		return nil, apperr.Internal("Failed to save address", err)
	}
	return &addr, nil
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
