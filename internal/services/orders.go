package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/01moynul/flordelima-golang/internal/apperr"
	"github.com/01moynul/flordelima-golang/internal/models"
	"github.com/01moynul/flordelima-golang/internal/telemetry"
)

var tracer = otel.Tracer("github.com/01moynul/flordelima-golang/internal/services")

type OrderService struct {
	orders  OrderStore
	carts   CartStore
	tx      TxRunner
	pixKey  string
	metrics *telemetry.Metrics
	log     *zap.Logger
}

func NewOrderService(orders OrderStore, carts CartStore, tx TxRunner, pixKey string, metrics *telemetry.Metrics, log *zap.Logger) *OrderService {
	return &OrderService{orders: orders, carts: carts, tx: tx, pixKey: pixKey, metrics: metrics, log: log}
}

// PixInfo is the static PIX payload shown next to a pix order.
type PixInfo struct {
	ChavePix string  `json:"chavePix"`
	Amount   float64 `json:"amount"`
}

type OrderDetails struct {
	Order *models.Order `json:"order"`
	Pix   *PixInfo      `json:"pix,omitempty"`
}

// Create turns the user's cart into a pending order and empties the cart,
// keeping a snapshot in lastCart. Either both writes happen or neither does.
func (s *OrderService) Create(ctx context.Context, userID, paymentMethod string) (*models.Order, error) {
	ctx, span := tracer.Start(ctx, "OrderService.Create")
	defer span.End()
	span.SetAttributes(attribute.String("order.payment_method", paymentMethod))

	if paymentMethod == "" {
		return nil, apperr.Validation("Payment method is required")
	}
	if !models.ValidPaymentMethod(paymentMethod) {
		return nil, apperr.Validation("Invalid payment method")
	}

	var order *models.Order
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		// 1. --- Load the cart ---
		cart, err := s.carts.FindByUser(ctx, userID)
		if errors.Is(err, models.ErrNotFound) || (err == nil && cart.IsEmpty()) {
			return apperr.Validation("Cart is empty")
		}
		if err != nil {
			return apperr.Internal("Failed to create order", err)
		}

		// 2. --- Insert the order ---
		order = models.NewOrder(userID, cart.Items, paymentMethod)
		if paymentMethod == models.PaymentMethodPix {
			order.PixKey = s.pixKey
		}
		if err := s.orders.Insert(ctx, order); err != nil {
			return apperr.Internal("Failed to create order", err)
		}

		// 3. --- Snapshot and clear the cart ---
		cart.SnapshotAndClear()
		if err := s.carts.Save(ctx, cart); err != nil {
			if !s.tx.Atomic() {
				s.compensate(ctx, order)
			}
			return apperr.Internal("Failed to create order", fmt.Errorf("clearing cart: %w", err))
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "order creation failed")
		if _, ok := apperr.As(err); !ok {
			err = apperr.Internal("Failed to create order", err)
		}
		return nil, err
	}

	span.SetAttributes(attribute.String("order.id", order.ID.Hex()))
	s.metrics.OrderCreated(ctx, paymentMethod)
	s.log.Info("order created",
		zap.String("order_id", order.ID.Hex()),
		zap.String("user_id", userID),
		zap.String("payment_method", paymentMethod),
		zap.Float64("total", order.Total),
	)
	return order, nil
}

// compensate removes an order whose cart could not be cleared.
func (s *OrderService) compensate(ctx context.Context, order *models.Order) {
	if err := s.orders.Delete(context.WithoutCancel(ctx), order.ID); err != nil {
		s.log.Error("failed to roll back order after cart write failed",
			zap.String("order_id", order.ID.Hex()),
			zap.Error(err),
		)
	}
}

func (s *OrderService) List(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch orders", err)
	}
	return orders, nil
}

// Get returns the order and, for pix orders, the key and amount to pay.
func (s *OrderService) Get(ctx context.Context, userID, orderID string) (*OrderDetails, error) {
	order, err := s.find(ctx, userID, orderID, "Failed to fetch order")
	if err != nil {
		return nil, err
	}

	details := &OrderDetails{Order: order}
	if order.PaymentMethod == models.PaymentMethodPix {
		key := order.PixKey
		if key == "" {
			key = s.pixKey
		}
		if key == "" {
			return nil, apperr.Internal("Failed to fetch order", errors.New("PIX_KEY is not configured"))
		}
		details.Pix = &PixInfo{ChavePix: key, Amount: order.Total}
	}
	return details, nil
}

// Update changes status and/or pixKey. Completed and cancelled orders keep
// their status; asking for the current status again is accepted.
func (s *OrderService) Update(ctx context.Context, userID, orderID string, upd models.OrderUpdate) (*models.Order, error) {
	if upd.Status != nil && !models.ValidOrderStatus(*upd.Status) {
		return nil, apperr.Validation("Invalid status")
	}
	if upd.IsEmpty() {
		return nil, apperr.Validation("No valid fields to update")
	}

	order, err := s.find(ctx, userID, orderID, "Failed to update order")
	if err != nil {
		return nil, err
	}
	if upd.Status != nil && !order.CanTransition(*upd.Status) {
		return nil, apperr.Conflict(fmt.Sprintf("Order is already %s", order.Status))
	}

	updated, err := s.orders.Update(ctx, userID, orderID, order.Status, upd)
	if errors.Is(err, models.ErrNotFound) {
		return nil, apperr.Conflict("Order was changed by another request")
	}
	if err != nil {
		return nil, apperr.Internal("Failed to update order", err)
	}

	if upd.Status != nil && *upd.Status != order.Status {
		s.log.Info("order status changed",
			zap.String("order_id", orderID),
			zap.String("from", order.Status),
			zap.String("to", *upd.Status),
		)
	}
	return updated, nil
}

// ExpireStale cancels pending orders older than maxAge.
func (s *OrderService) ExpireStale(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-maxAge)
	n, err := s.orders.CancelPendingBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("expiring stale orders: %w", err)
	}
	if n > 0 {
		s.log.Info("cancelled stale pending orders", zap.Int64("count", n), zap.Time("cutoff", cutoff))
	}
	return n, nil
}

// RunExpiry calls ExpireStale every interval until ctx is done.
func (s *OrderService) RunExpiry(ctx context.Context, maxAge, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.Info("order expiry worker started",
		zap.Duration("max_age", maxAge),
		zap.Duration("interval", interval),
	)
	for {
		select {
		case <-ctx.Done():
			s.log.Info("order expiry worker stopped")
			return
		case <-ticker.C:
			if _, err := s.ExpireStale(ctx, maxAge); err != nil {
				s.log.Error("order expiry run failed", zap.Error(err))
			}
		}
	}
}

func (s *OrderService) find(ctx context.Context, userID, orderID, failMsg string) (*models.Order, error) {
	order, err := s.orders.FindOne(ctx, userID, orderID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, apperr.NotFound("Order not found")
	}
	if err != nil {
		return nil, apperr.Internal(failMsg, err)
	}
	return order, nil
}
