package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Collection names.
const (
	CartsCollection     = "carts"
	OrdersCollection    = "orders"
	PaymentsCollection  = "payments"
	FavoritesCollection = "favorites"
	UsersCollection     = "users"
	AddressesCollection = "addresses"
)

// Options configures the connection.
type Options struct {
	URI      string
	Database string
	// Attempts and Backoff bound the initial connect only; queries are never retried.
	Attempts     int
	Backoff      time.Duration
	Transactions bool
}

// DB is the process-wide MongoDB handle. It is created once in main and
// passed to every repository.
type DB struct {
	client       *mongo.Client
	db           *mongo.Database
	transactions bool
	log          *zap.Logger
}

// Connect opens the client and pings the primary, retrying with a fixed backoff.
func Connect(ctx context.Context, opts Options, log *zap.Logger) (*DB, error) {
	var client *mongo.Client

	err := retry(ctx, opts.Attempts, opts.Backoff, log, func() error {
		// 1. --- Open ---
		c, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
		if err != nil {
			return err
		}

		// 2. --- Verify ---
		pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := c.Ping(pingCtx, readpref.Primary()); err != nil {
			_ = c.Disconnect(context.Background())
			return err
		}

		client = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	log.Info("MongoDB connection established", zap.String("database", opts.Database))
	return &DB{
		client:       client,
		db:           client.Database(opts.Database),
		transactions: opts.Transactions,
		log:          log,
	}, nil
}

// retry runs fn up to attempts times, sleeping backoff between failures.
func retry(ctx context.Context, attempts int, backoff time.Duration, log *zap.Logger, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 1; i <= attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		log.Warn("MongoDB connection attempt failed",
			zap.Int("attempt", i),
			zap.Int("of", attempts),
			zap.Error(err),
		)
		if i == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("giving up after %d attempts: %w", attempts, err)
}

func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// Ping is used by the health endpoint.
func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the indexes every collection relies on. It is idempotent.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	indexes := map[string][]mongo.IndexModel{
		CartsCollection:     {{Keys: bson.D{{Key: "userId", Value: 1}}, Options: unique}},
		FavoritesCollection: {{Keys: bson.D{{Key: "userId", Value: 1}}, Options: unique}},
		AddressesCollection: {{Keys: bson.D{{Key: "userId", Value: 1}}, Options: unique}},
		UsersCollection:     {{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique}},
		OrdersCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: 1}}},
		},
		PaymentsCollection: {{Keys: bson.D{{Key: "orderId", Value: 1}, {Key: "userId", Value: 1}}}},
	}

	for name, idx := range indexes {
		if _, err := d.db.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("creating indexes on %s: %w", name, err)
		}
	}
	return nil
}

// Atomic reports whether RunInTransaction really uses a transaction.
// Standalone servers do not support them, so it is opt-in.
func (d *DB) Atomic() bool {
	return d.transactions
}

// RunInTransaction runs fn inside a multi-document transaction when enabled,
// otherwise it just calls fn. Repositories must be called with the ctx fn receives.
func (d *DB) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !d.transactions {
		return fn(ctx)
	}

	session, err := d.client.StartSession()
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

func (d *DB) collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}
