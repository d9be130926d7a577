package http

import (
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/order"
)

// CreateOrderRequest is the intake payload for a new order.
// Dimensions are optional; a partial set is priced as if absent.
type CreateOrderRequest struct {
	UserID          *int64   `json:"user_id"`
	RecipientName   string   `json:"recipient_name"`
	RecipientPhone  string   `json:"recipient_phone"`
	DeliveryAddress string   `json:"delivery_address"`
	DeliveryType    string   `json:"delivery_type"`
	PickupPointID   *int64   `json:"pickup_point_id"`
	DeliveryPointID *int64   `json:"delivery_point_id"`
	Comment         string   `json:"comment"`
	Weight          float64  `json:"weight"`
	Length          *float64 `json:"length"`
	Width           *float64 `json:"width"`
	Height          *float64 `json:"height"`
}

// ChangeOrderStatusRequest carries the target status key for a transition.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// ErrorResponse is the error envelope shared by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// newOrderResponse renders an order aggregate in the same wire shape the
// read-side queries produce.
func newOrderResponse(aggregate *order.Order) queries.OrderResponse {
	var length, width, height *float64
	if dims := aggregate.Dimensions(); dims != nil {
		l, w, h := dims.Length(), dims.Width(), dims.Height()
		length, width, height = &l, &w, &h
	}

	return queries.OrderResponse{
		ID:              aggregate.ID(),
		Number:          aggregate.Number(),
		UserID:          aggregate.UserID(),
		RecipientName:   aggregate.RecipientName(),
		RecipientPhone:  aggregate.RecipientPhone(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		DeliveryType:    string(aggregate.DeliveryType()),
		PickupPointID:   aggregate.PickupPointID(),
		DeliveryPointID: aggregate.DeliveryPointID(),
		Comment:         aggregate.Comment(),
		Weight:          aggregate.Weight().Kg(),
		Length:          length,
		Width:           width,
		Height:          height,
		Price:           aggregate.Price(),
		Status:          string(aggregate.Status()),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}
