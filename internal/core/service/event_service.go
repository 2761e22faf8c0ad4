package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/orderhub/order-api/internal/api/metrics"
	"github.com/orderhub/order-api/internal/core/domain"
	"github.com/orderhub/order-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, orderID int64, status string, ts time.Time) (bool, error)
	Mark(ctx context.Context, orderID int64, status string, ts time.Time) error
}

type eventService struct {
	orders ports.OrderRepository
	events ports.EventRepository
	dedup  DedupChecker
	log    zerolog.Logger
}

// NewEventService returns an EventService implementation.
func NewEventService(
	orders ports.OrderRepository,
	events ports.EventRepository,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.EventService {
	return &eventService{orders: orders, events: events, dedup: dedup, log: log}
}

// Process validates, deduplicates, and persists a single order status event.
func (s *eventService) Process(ctx context.Context, in ports.StatusEventInput) error {
	started := time.Now()
	newStatus := domain.OrderStatus(in.Status)
	if !newStatus.IsValid() {
		metrics.EventsErrorsTotal.WithLabelValues("invalid_status").Inc()
		return fmt.Errorf("process event: %w: %q", domain.ErrInvalidStatus, in.Status)
	}

	// Idempotency check, duplicates are skipped silently.
	isDup, err := s.dedup.IsDuplicate(ctx, in.OrderID, in.Status, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Int64("order_id", in.OrderID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.EventsDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Int64("order_id", in.OrderID).Str("status", in.Status).Msg("duplicate event skipped")
		return nil
	}
	metrics.EventsDedupTotal.WithLabelValues("miss").Inc()

	order, err := s.orders.FindByID(ctx, in.OrderID)
	if err != nil {
		metrics.EventsErrorsTotal.WithLabelValues("order_not_found").Inc()
		return fmt.Errorf("process event: %w", err)
	}

	if !order.Status.CanTransitionTo(newStatus) {
		metrics.EventsErrorsTotal.WithLabelValues("invalid_transition").Inc()
		return fmt.Errorf("process event: %w (from %s to %s)", domain.ErrInvalidTransition, order.Status, newStatus)
	}

	// Mark as processed before writing (prevents duplicate processing on retry).
	if markErr := s.dedup.Mark(ctx, in.OrderID, in.Status, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Int64("order_id", in.OrderID).Msg("failed to set dedup key")
	}

	if err := s.events.UpdateOrderStatus(ctx, in.OrderID, newStatus); err != nil {
		metrics.EventsErrorsTotal.WithLabelValues("update_failed").Inc()
		metrics.EventProcessingDuration.WithLabelValues("error").Observe(time.Since(started).Seconds())
		return fmt.Errorf("process event: update status: %w", err)
	}

	// Audit trail insert is non-fatal.
	audit := &domain.StatusEvent{
		OrderID:   in.OrderID,
		Status:    newStatus,
		Timestamp: in.Timestamp,
		Source:    in.Source,
	}
	if in.Location != nil {
		audit.Location = &domain.Coordinate{Lat: in.Location.Lat, Lng: in.Location.Lng}
	}
	if err := s.events.InsertEvent(ctx, audit); err != nil {
		s.log.Warn().Err(err).Int64("order_id", in.OrderID).Msg("failed to insert audit event")
	}

	metrics.EventsProcessedTotal.WithLabelValues(in.Status, in.Source).Inc()
	metrics.EventProcessingDuration.WithLabelValues(in.Status).Observe(time.Since(started).Seconds())

	s.log.Info().
		Int64("order_id", in.OrderID).
		Str("status", in.Status).
		Str("source", in.Source).
		Msg("event processed")

	return nil
}
