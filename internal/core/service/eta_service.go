package service

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/orderhub/order-api/internal/api/metrics"
	"github.com/orderhub/order-api/internal/core/domain"
	"github.com/orderhub/order-api/internal/core/ports"
)

// DeliveryParams are the constants of the linear delivery model.
type DeliveryParams struct {
	Warehouse        domain.Coordinate
	AvgSpeedKmPerMin float64
	CO2PerKmGrams    float64
	MergeRadiusKm    float64
}

// ETAService computes delivery estimates and merge suggestions. It is a pure
// function of the repository contents: no side effects, and repeated calls
// with unchanged data return identical results.
type ETAService struct {
	orders    ports.OrderRepository
	customers ports.CustomerRepository
	params    DeliveryParams
	logger    zerolog.Logger
}

func NewETAService(orders ports.OrderRepository, customers ports.CustomerRepository, params DeliveryParams, logger zerolog.Logger) *ETAService {
	return &ETAService{orders: orders, customers: customers, params: params, logger: logger}
}

// EstimateOrder computes distance, travel time, and CO2 for the order's
// delivery, plus an opportunistic merge suggestion: the first pending order
// (in creation order) whose customer lies within MergeRadiusKm of the
// subject's customer. First-found wins, not nearest.
func (s *ETAService) EstimateOrder(ctx context.Context, orderID int64) (*ports.ETAResult, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	customer, err := s.customers.FindByID(ctx, order.CustomerID)
	if err != nil {
		return nil, err
	}

	distance := s.params.Warehouse.DistanceKm(customer.Location)

	result := &ports.ETAResult{
		OrderID:    orderID,
		DistanceKm: round2(distance),
		// Linear constant-speed model; no traffic or road-network data.
		EtaMinutes: round2(distance / s.params.AvgSpeedKmPerMin),
		CO2Grams:   round2(distance * s.params.CO2PerKmGrams),
	}

	pending, err := s.orders.ListPending(ctx, orderID)
	if err != nil {
		return nil, err
	}
	for _, candidate := range pending {
		if customer.Location.DistanceKm(candidate.Location) <= s.params.MergeRadiusKm {
			id := candidate.OrderID
			result.SuggestedMergeWith = &id
			break
		}
	}

	mergeLabel := "none"
	if result.SuggestedMergeWith != nil {
		mergeLabel = "found"
	}
	metrics.EtaComputedTotal.WithLabelValues(mergeLabel).Inc()

	s.logger.Debug().
		Int64("order_id", orderID).
		Float64("distance_km", result.DistanceKm).
		Str("merge", mergeLabel).
		Msg("eta computed")

	return result, nil
}

// round2 rounds to two decimal places, the precision of all reported metrics.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
