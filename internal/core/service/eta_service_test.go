package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/orderhub/order-api/internal/core/domain"
)

func TestETAService_CustomerAtWarehouseIsAllZeros(t *testing.T) {
	f := newOrderFixture()
	customer := f.seedCustomer(t, 50.4501, 30.5234) // exactly the warehouse
	order := f.seedOrder(t, customer.ID, domain.StatusNew)

	eta := NewETAService(f.orders, f.customers, testDeliveryParams(), discardLogger)
	result, err := eta.EstimateOrder(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DistanceKm != 0 {
		t.Errorf("expected zero distance, got %v", result.DistanceKm)
	}
	if result.EtaMinutes != 0 {
		t.Errorf("expected zero eta, got %v", result.EtaMinutes)
	}
	if result.CO2Grams != 0 {
		t.Errorf("expected zero co2, got %v", result.CO2Grams)
	}
	if result.SuggestedMergeWith != nil {
		t.Errorf("no pending orders: merge suggestion must be nil, got %d", *result.SuggestedMergeWith)
	}
}

func TestETAService_LinearModelNumbers(t *testing.T) {
	f := newOrderFixture()
	// One degree of latitude north of the warehouse: ~111.19 km.
	customer := f.seedCustomer(t, 51.4501, 30.5234)
	order := f.seedOrder(t, customer.ID, domain.StatusNew)

	eta := NewETAService(f.orders, f.customers, testDeliveryParams(), discardLogger)
	result, err := eta.EstimateOrder(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(result.DistanceKm-111.19) > 0.01 {
		t.Errorf("distance: expected ~111.19, got %v", result.DistanceKm)
	}
	// Travel time and emissions derive from the same distance: d/0.5 and d*121.
	if math.Abs(result.EtaMinutes-222.39) > 0.01 {
		t.Errorf("eta: expected ~222.39, got %v", result.EtaMinutes)
	}
	if math.Abs(result.CO2Grams-13454.59) > 0.02 {
		t.Errorf("co2: expected ~13454.59, got %v", result.CO2Grams)
	}
}

func TestETAService_ResultsRoundedToTwoDecimals(t *testing.T) {
	f := newOrderFixture()
	customer := f.seedCustomer(t, 50.4712, 30.5111)
	order := f.seedOrder(t, customer.ID, domain.StatusNew)

	eta := NewETAService(f.orders, f.customers, testDeliveryParams(), discardLogger)
	result, err := eta.EstimateOrder(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, v := range map[string]float64{
		"distance_km": result.DistanceKm,
		"eta_minutes": result.EtaMinutes,
		"co2_grams":   result.CO2Grams,
	} {
		if math.Round(v*100)/100 != v {
			t.Errorf("%s not rounded to 2 decimals: %v", name, v)
		}
	}
}

func TestETAService_OrderNotFound(t *testing.T) {
	f := newOrderFixture()
	eta := NewETAService(f.orders, f.customers, testDeliveryParams(), discardLogger)

	_, err := eta.EstimateOrder(context.Background(), 404)
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestETAService_CustomerNotFound(t *testing.T) {
	f := newOrderFixture()
	order := f.seedOrder(t, 999, domain.StatusNew) // dangling customer reference

	eta := NewETAService(f.orders, f.customers, testDeliveryParams(), discardLogger)
	_, err := eta.EstimateOrder(context.Background(), order.ID)
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Errorf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestETAService_MergePicksFirstInCreationOrderNotNearest(t *testing.T) {
	f := newOrderFixture()
	customer := f.seedCustomer(t, 50.45, 30.52)
	order := f.seedOrder(t, customer.ID, domain.StatusNew)

	now := time.Now().UTC()
	// Both candidates are within the 3 km radius. The older order (50) is
	// ~2.2 km away, the newer one (51) barely 70 m. The older one must still
	// win because the scan is by creation order, not proximity.
	f.orders.pending = []domain.PendingOrder{
		{OrderID: 50, Location: domain.Coordinate{Lat: 50.47, Lng: 30.52}, CreatedAt: now.Add(-2 * time.Hour)},
		{OrderID: 51, Location: domain.Coordinate{Lat: 50.4505, Lng: 30.5205}, CreatedAt: now.Add(-time.Hour)},
	}

	eta := NewETAService(f.orders, f.customers, testDeliveryParams(), discardLogger)
	result, err := eta.EstimateOrder(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.SuggestedMergeWith == nil {
		t.Fatal("expected a merge suggestion")
	}
	if *result.SuggestedMergeWith != 50 {
		t.Errorf("merge must pick the first candidate in creation order (50), got %d", *result.SuggestedMergeWith)
	}
}

func TestETAService_MergeSkipsCandidatesOutsideRadius(t *testing.T) {
	f := newOrderFixture()
	customer := f.seedCustomer(t, 50.45, 30.52)
	order := f.seedOrder(t, customer.ID, domain.StatusNew)

	// 60 is ~50 km out, 61 is ~1.1 km away.
	f.orders.pending = []domain.PendingOrder{
		{OrderID: 60, Location: domain.Coordinate{Lat: 50.90, Lng: 30.52}},
		{OrderID: 61, Location: domain.Coordinate{Lat: 50.4600, Lng: 30.52}},
	}

	eta := NewETAService(f.orders, f.customers, testDeliveryParams(), discardLogger)
	result, err := eta.EstimateOrder(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.SuggestedMergeWith == nil || *result.SuggestedMergeWith != 61 {
		t.Errorf("expected suggestion 61, got %v", result.SuggestedMergeWith)
	}
}

func TestETAService_MergeNeverSuggestsTheOrderItself(t *testing.T) {
	f := newOrderFixture()
	customer := f.seedCustomer(t, 50.45, 30.52)
	order := f.seedOrder(t, customer.ID, domain.StatusPending)

	// The subject order sits in the pending set too; the repository contract
	// excludes it, so no suggestion may come back.
	f.orders.pending = []domain.PendingOrder{
		{OrderID: order.ID, Location: customer.Location},
	}

	eta := NewETAService(f.orders, f.customers, testDeliveryParams(), discardLogger)
	result, err := eta.EstimateOrder(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SuggestedMergeWith != nil {
		t.Errorf("an order must never suggest merging with itself, got %d", *result.SuggestedMergeWith)
	}
}

func TestETAService_NoPendingOrdersMeansNoSuggestion(t *testing.T) {
	f := newOrderFixture()
	customer := f.seedCustomer(t, 50.46, 30.53)
	order := f.seedOrder(t, customer.ID, domain.StatusNew)

	eta := NewETAService(f.orders, f.customers, testDeliveryParams(), discardLogger)
	result, err := eta.EstimateOrder(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SuggestedMergeWith != nil {
		t.Errorf("expected nil suggestion, got %d", *result.SuggestedMergeWith)
	}
}

func TestETAService_DeterministicForUnchangedData(t *testing.T) {
	f := newOrderFixture()
	customer := f.seedCustomer(t, 50.48, 30.50)
	order := f.seedOrder(t, customer.ID, domain.StatusNew)

	eta := NewETAService(f.orders, f.customers, testDeliveryParams(), discardLogger)

	first, err := eta.EstimateOrder(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := eta.EstimateOrder(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.DistanceKm != second.DistanceKm || first.EtaMinutes != second.EtaMinutes || first.CO2Grams != second.CO2Grams {
		t.Errorf("repeated estimates differ: %+v vs %+v", first, second)
	}
}
