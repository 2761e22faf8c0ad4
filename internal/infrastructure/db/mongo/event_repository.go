package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/orderhub/order-api/internal/core/domain"
)

const collectionOrderEvents = "order_events"

// EventRepository persists order status events and applies their status
// updates.
type EventRepository struct {
	orders *mongo.Collection
	events *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{
		orders: db.Collection(collectionOrders),
		events: db.Collection(collectionOrderEvents),
	}
}

// UpdateOrderStatus atomically sets the order's new status.
func (r *EventRepository) UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.orders.UpdateOne(ctx,
		bson.M{"_id": orderID},
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

type eventDoc struct {
	OrderID   int64              `bson:"order_id"`
	Status    domain.OrderStatus `bson:"status"`
	Timestamp int64              `bson:"timestamp"`
	Source    string             `bson:"source"`
	Location  *domain.Coordinate `bson:"location,omitempty"`
}

// InsertEvent persists an event to the order_events audit collection.
func (r *EventRepository) InsertEvent(ctx context.Context, event *domain.StatusEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.events.InsertOne(ctx, eventDoc{
		OrderID:   event.OrderID,
		Status:    event.Status,
		Timestamp: event.Timestamp.Unix(),
		Source:    event.Source,
		Location:  event.Location,
	})
	return err
}
