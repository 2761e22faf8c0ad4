package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionCounters = "counters"

// Sequencer hands out unique, strictly increasing int64 ids per named
// collection, backed by an atomic $inc on a counters document. Strict
// monotonicity is what the cursor pagination key relies on.
type Sequencer struct {
	col *mongo.Collection
}

func NewSequencer(db *mongo.Database) *Sequencer {
	return &Sequencer{col: db.Collection(collectionCounters)}
}

// Next allocates the next id for the named sequence, creating the counter on
// first use.
func (s *Sequencer) Next(ctx context.Context, name string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Value int64 `bson:"value"`
	}
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next sequence %q: %w", name, err)
	}
	return doc.Value, nil
}
