package handler

import "time"

type locationRequest struct {
	Lat float64 `json:"lat" validate:"required"`
	Lng float64 `json:"lng" validate:"required"`
}

type statusEventRequest struct {
	OrderID   int64            `json:"order_id"  validate:"required,gt=0"`
	Status    string           `json:"status"    validate:"required,oneof=new pending paid shipped delivered cancelled"`
	Timestamp time.Time        `json:"timestamp" validate:"required"`
	Source    string           `json:"source"    validate:"required"`
	Location  *locationRequest `json:"location"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
