package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/01moynul/flordelima-golang/internal/models"
)

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *DB) *OrderRepository {
	return &OrderRepository{coll: db.collection(OrdersCollection)}
}

func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("inserting order: %w", translate(err))
	}
	return nil
}

// ListByUser returns the user's orders, newest first.
func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decoding orders: %w", err)
	}
	return orders, nil
}

// FindOne loads an order owned by userID. A malformed id is reported as not found.
func (r *OrderRepository) FindOne(ctx context.Context, userID, orderID string) (*models.Order, error) {
	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, models.ErrNotFound
	}
	var order models.Order
	if err := r.coll.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&order); err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

// Update applies upd to the order only while it still has expectedStatus, so a
// concurrent transition is reported as models.ErrNotFound rather than overwritten.
func (r *OrderRepository) Update(ctx context.Context, userID, orderID, expectedStatus string, upd models.OrderUpdate) (*models.Order, error) {
	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, models.ErrNotFound
	}

	filter := orderUpdateFilter(id, userID, expectedStatus)
	update := orderUpdateDoc(upd, time.Now().UTC())
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order models.Order
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&order); err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

// orderUpdateFilter matches the user's order only while it is still in expectedStatus.
func orderUpdateFilter(id primitive.ObjectID, userID, expectedStatus string) bson.M {
	return bson.M{"_id": id, "userId": userID, "status": expectedStatus}
}

// orderUpdateDoc sets only the fields present in upd, plus updatedAt.
func orderUpdateDoc(upd models.OrderUpdate, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.PixKey != nil {
		set["pixKey"] = *upd.PixKey
	}
	return bson.M{"$set": set}
}

// Delete removes an order. Only used to undo a checkout whose cart write failed.
func (r *OrderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}
	return nil
}

// CancelPendingBefore cancels every pending order created before cutoff and
// returns how many were changed.
func (r *OrderRepository) CancelPendingBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	filter := bson.M{
		"status":    models.OrderStatusPending,
		"createdAt": bson.M{"$lt": cutoff},
	}
	update := bson.M{"$set": bson.M{
		"status":    models.OrderStatusCancelled,
		"updatedAt": time.Now().UTC(),
	}}
	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("cancelling stale orders: %w", err)
	}
	return res.ModifiedCount, nil
}
