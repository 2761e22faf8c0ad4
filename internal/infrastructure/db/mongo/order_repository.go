package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/orderhub/order-api/internal/core/domain"
)

const (
	collectionOrders    = "orders"
	collectionCustomers = "customers"
)

type OrderRepository struct {
	col *mongo.Collection
	seq *Sequencer
}

func NewOrderRepository(db *mongo.Database, seq *Sequencer) *OrderRepository {
	return &OrderRepository{col: db.Collection(collectionOrders), seq: seq}
}

// Create allocates the next order id and inserts the document.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	id, err := r.seq.Next(ctx, collectionOrders)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	o.ID = id
	if _, err := r.col.InsertOne(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var o domain.Order
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

// ListAfter returns up to limit orders with id > afterID, ascending by id.
func (r *OrderRepository) ListAfter(ctx context.Context, afterID int64, limit int) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$gt": afterID}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var orders []*domain.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListPending returns all pending orders except excludeID, joined with their
// customer coordinates, ordered ascending by (created_at, _id). The sort runs
// before the lookup and the pipeline preserves it, so the merge scan sees a
// stable, reproducible order.
func (r *OrderRepository) ListPending(ctx context.Context, excludeID int64) ([]domain.PendingOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status": domain.StatusPending,
			"_id":    bson.M{"$ne": excludeID},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "created_at", Value: 1},
			{Key: "_id", Value: 1},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionCustomers,
			"localField":   "customer_id",
			"foreignField": "_id",
			"as":           "customer",
		}}},
		{{Key: "$unwind", Value: "$customer"}},
		{{Key: "$project", Value: bson.M{
			"_id":        1,
			"created_at": 1,
			"location":   "$customer.location",
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var pending []domain.PendingOrder
	if err := cur.All(ctx, &pending); err != nil {
		return nil, err
	}
	return pending, nil
}

// Replace overwrites the order's status and items.
func (r *OrderRepository) Replace(ctx context.Context, o *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": o.ID},
		bson.M{"$set": bson.M{"status": o.Status, "items": o.Items}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the orders collection.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
