package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes for every collection. Called once at
// startup; index builds are idempotent on the server side.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	seq := NewSequencer(db)

	if err := NewOrderRepository(db, seq).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("orders indexes: %w", err)
	}
	if err := NewCustomerRepository(db, seq).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("customers indexes: %w", err)
	}
	if err := NewProductRepository(db, seq).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("products indexes: %w", err)
	}
	if err := NewUserRepository(db, seq).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}
	return nil
}
