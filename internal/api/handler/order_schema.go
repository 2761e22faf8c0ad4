package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type orderItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity"   validate:"omitempty,gt=0"`
}

type createOrderRequest struct {
	CustomerID int64              `json:"customer_id" validate:"required,gt=0"`
	Items      []orderItemRequest `json:"items"       validate:"required,min=1,dive"`
}

type replaceOrderRequest struct {
	Status string             `json:"status" validate:"required"`
	Items  []orderItemRequest `json:"items"  validate:"required,min=1,dive"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type updateAddressRequest struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

// --- Response types ---
// Response-only types owned by the transport layer, kept separate from the
// domain so the JSON contract is not coupled to internal changes.

type orderItemResponse struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type orderResponse struct {
	ID         int64               `json:"id"`
	CustomerID int64               `json:"customer_id"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	Items      []orderItemResponse `json:"items"`
}

type listOrdersResponse struct {
	Data       []orderResponse `json:"data"`
	NextCursor *string         `json:"next_cursor"`
}

type etaResponse struct {
	OrderID            int64   `json:"order_id"`
	DistanceKm         float64 `json:"distance_km"`
	EtaMinutes         float64 `json:"eta_minutes"`
	CO2Grams           float64 `json:"co2_grams"`
	SuggestedMergeWith *int64  `json:"suggested_merge_with"`
}
