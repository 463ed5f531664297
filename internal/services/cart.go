package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/01moynul/flordelima-golang/internal/apperr"
	"github.com/01moynul/flordelima-golang/internal/models"
)

type CartService struct {
	carts    CartStore
	products ProductLookup
	log      *zap.Logger
}

func NewCartService(carts CartStore, products ProductLookup, log *zap.Logger) *CartService {
	return &CartService{carts: carts, products: products, log: log}
}

var quantityLimitMsg = fmt.Sprintf("Quantity cannot exceed %d per product", models.MaxItemQuantity)

// AddItemInput is a line the client wants in the cart. Name and Price are
// replaced by the catalog's values.
type AddItemInput struct {
	ProductID int64
	Quantity  int
	Name      string
	Price     float64
}

// Get returns the user's cart, or an empty unsaved one.
func (s *CartService) Get(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return models.NewCart(userID), nil
	}
	if err != nil {
		return nil, apperr.Internal("Failed to fetch cart", err)
	}
	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, userID string, in AddItemInput) (*models.Cart, error) {
	// 1. --- Validate against the catalog ---
	if in.ProductID <= 0 || in.Quantity < 1 {
		return nil, apperr.Validation("Product details are required")
	}
	if in.Quantity > models.MaxItemQuantity {
		return nil, apperr.Validation(quantityLimitMsg)
	}
	product, ok := s.products.Get(in.ProductID)
	if !ok {
		return nil, apperr.Validation("Unknown product")
	}

	// 2. --- Load or create ---
	cart, err := s.carts.FindByUser(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		cart = models.NewCart(userID)
	} else if err != nil {
		return nil, apperr.Internal("Failed to add to cart", err)
	}

	// 3. --- Mutate and save ---
	if in.Quantity > models.MaxItemQuantity-cart.QuantityOf(product.ID) {
		return nil, apperr.Validation(quantityLimitMsg)
	}
	cart.AddItem(models.CartItem{
		ProductID: product.ID,
		Quantity:  in.Quantity,
		Name:      product.Name,
		Price:     product.Price,
	})
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, apperr.Internal("Failed to add to cart", err)
	}

	s.log.Debug("cart item added",
		zap.String("user_id", userID),
		zap.Int64("product_id", product.ID),
		zap.Int("quantity", in.Quantity),
	)
	return cart, nil
}

// RemoveItem drops a line. An id that is not in the cart leaves it unchanged.
func (s *CartService) RemoveItem(ctx context.Context, userID string, productID int64) (*models.Cart, error) {
	if productID <= 0 {
		return nil, apperr.Validation("Product ID is required")
	}

	cart, err := s.load(ctx, userID, "Failed to remove from cart")
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(productID)
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, apperr.Internal("Failed to remove from cart", err)
	}
	return cart, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID string, productID int64, quantity int) (*models.Cart, error) {
	if productID <= 0 || quantity < 1 {
		return nil, apperr.Validation("Product ID and valid quantity are required")
	}
	if quantity > models.MaxItemQuantity {
		return nil, apperr.Validation(quantityLimitMsg)
	}

	cart, err := s.load(ctx, userID, "Failed to update cart quantity")
	if err != nil {
		return nil, err
	}

	if !cart.SetQuantity(productID, quantity) {
		return nil, apperr.NotFound("Item not found in cart")
	}
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, apperr.Internal("Failed to update cart quantity", err)
	}
	return cart, nil
}

// Restore puts the items of the last checkout back into the cart. A second
// call in a row fails because the snapshot is consumed by the first.
func (s *CartService) Restore(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.load(ctx, userID, "Failed to restore cart")
	if err != nil {
		return nil, err
	}

	if !cart.RestoreSnapshot() {
		return nil, apperr.Conflict("No previous cart to restore")
	}
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, apperr.Internal("Failed to restore cart", err)
	}

	s.log.Info("cart restored from snapshot", zap.String("user_id", userID), zap.Int("items", len(cart.Items)))
	return cart, nil
}

// load fetches an existing cart; a missing one is NotFound.
func (s *CartService) load(ctx context.Context, userID, failMsg string) (*models.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, apperr.NotFound("Cart not found")
	}
	if err != nil {
		return nil, apperr.Internal(failMsg, err)
	}
	return cart, nil
}
