// Package services holds the storefront's business rules. Handlers call
// services; services call stores. Every error returned is an *apperr.Error.
package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/01moynul/flordelima-golang/internal/models"
	"github.com/01moynul/flordelima-golang/internal/pix"
)

// Stores return models.ErrNotFound and models.ErrDuplicate for the obvious cases.

type CartStore interface {
	FindByUser(ctx context.Context, userID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
}

type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	FindOne(ctx context.Context, userID, orderID string) (*models.Order, error)
	Update(ctx context.Context, userID, orderID, expectedStatus string, upd models.OrderUpdate) (*models.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	CancelPendingBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type FavoritesStore interface {
	FindByUser(ctx context.Context, userID string) (*models.Favorites, error)
	Save(ctx context.Context, fav *models.Favorites) error
}

type PaymentStore interface {
	Insert(ctx context.Context, payment *models.Payment) error
	FindLatest(ctx context.Context, userID, orderID string) (*models.Payment, error)
	Update(ctx context.Context, payment *models.Payment) error
	ListByUser(ctx context.Context, userID string) ([]models.Payment, error)
}

type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type AddressStore interface {
	FindByUser(ctx context.Context, userID string) (*models.Address, error)
	Save(ctx context.Context, addr *models.Address) error
}

// TxRunner groups writes. When Atomic is false the writes inside fn are not
// rolled back on failure and callers must compensate themselves.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	Atomic() bool
}

// ProductLookup is the read side of the catalog.
type ProductLookup interface {
	Get(id int64) (models.Product, bool)
}

type PixGateway interface {
	CreateTransaction(ctx context.Context, req pix.TransactionRequest) (*pix.TransactionResponse, error)
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	GenerateToken(id, email, name string) (string, error)
}
