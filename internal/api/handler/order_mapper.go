package handler

import (
	"github.com/orderhub/order-api/internal/core/domain"
	"github.com/orderhub/order-api/internal/core/ports"
)

// --- Request → Service input ---

func toItemInputs(items []orderItemRequest) []ports.OrderItemInput {
	inputs := make([]ports.OrderItemInput, 0, len(items))
	for _, it := range items {
		inputs = append(inputs, ports.OrderItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return inputs
}

// --- Service result → HTTP response ---

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemResponse{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return orderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt,
		Items:      items,
	}
}

func toListOrdersResponse(page *ports.OrderPage) listOrdersResponse {
	data := make([]orderResponse, 0, len(page.Items))
	for _, o := range page.Items {
		data = append(data, toOrderResponse(o))
	}
	return listOrdersResponse{Data: data, NextCursor: page.NextCursor}
}

func toEtaResponse(r *ports.ETAResult) etaResponse {
	return etaResponse{
		OrderID:            r.OrderID,
		DistanceKm:         r.DistanceKm,
		EtaMinutes:         r.EtaMinutes,
		CO2Grams:           r.CO2Grams,
		SuggestedMergeWith: r.SuggestedMergeWith,
	}
}
