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

type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{coll: db.collection(PaymentsCollection)}
}

func (r *PaymentRepository) Insert(ctx context.Context, payment *models.Payment) error {
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("inserting payment: %w", translate(err))
	}
	return nil
}

// FindLatest returns the most recent payment attempt for the order.
func (r *PaymentRepository) FindLatest(ctx context.Context, userID, orderID string) (*models.Payment, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	var payment models.Payment
	err := r.coll.FindOne(ctx, bson.M{"orderId": orderID, "userId": userID}, opts).Decode(&payment)
	if err != nil {
		return nil, translate(err)
	}
	return &payment, nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": payment.ID}, payment)
	if err != nil {
		return fmt.Errorf("updating payment: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *PaymentRepository) ListByUser(ctx context.Context, userID string) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decoding payments: %w", err)
	}
	return payments, nil
}
