// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the
// order aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The store issues the numeric id on insert; the public order
// number is written in a second update within the same transaction.
type OrderDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	Number          string `gorm:"column:order_number;size:32;index"`
	UserID          *int64 `gorm:"index"`
	RecipientName   string
	RecipientPhone  string
	DeliveryAddress string
	DeliveryType    string `gorm:"size:16"`
	PickupPointID   *int64
	DeliveryPointID *int64
	Comment         string
	Weight          float64
	Length          *float64
	Width           *float64
	Height          *float64
	Price           float64
	Status          string `gorm:"size:32;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var length, width, height *float64
	if dims := aggregate.Dimensions(); dims != nil {
		l, w, h := dims.Length(), dims.Width(), dims.Height()
		length, width, height = &l, &w, &h
	}

	return OrderDTO{
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

// toDomain converts a database row to an order aggregate using RestoreOrder,
// so corrupt rows surface as errors rather than invalid aggregates.
func toDomain(dto OrderDTO) (*order.Order, error) {
	weight, err := kernel.NewWeight(dto.Weight)
	if err != nil {
		return nil, err
	}

	var dimensions *kernel.Dimensions
	if dto.Length != nil && dto.Width != nil && dto.Height != nil {
		dims, dimsErr := kernel.NewDimensions(*dto.Length, *dto.Width, *dto.Height)
		if dimsErr != nil {
			return nil, dimsErr
		}
		dimensions = &dims
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:        dto.ID,
		Number:    dto.Number,
		Status:    order.Status(dto.Status),
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
		NewOrderParams: order.NewOrderParams{
			UserID:          dto.UserID,
			RecipientName:   dto.RecipientName,
			RecipientPhone:  dto.RecipientPhone,
			DeliveryAddress: dto.DeliveryAddress,
			DeliveryType:    order.DeliveryType(dto.DeliveryType),
			PickupPointID:   dto.PickupPointID,
			DeliveryPointID: dto.DeliveryPointID,
			Comment:         dto.Comment,
			Weight:          weight,
			Dimensions:      dimensions,
			Price:           dto.Price,
		},
	})
}
