// Package queries contains read-only operations against the database.
// Implements the Query side of the CQRS architecture: handlers read
// directly through GORM and return wire-ready response structs, bypassing
// the aggregate model.
package queries

import "time"

// OrderResponse is the read model for a single order row.
// Field names follow the public API contract of the ordering service.
type OrderResponse struct {
	ID              int64     `gorm:"column:id"                json:"id"`
	Number          string    `gorm:"column:order_number"      json:"order_number"`
	UserID          *int64    `gorm:"column:user_id"           json:"user_id,omitempty"`
	RecipientName   string    `gorm:"column:recipient_name"    json:"recipient_name"`
	RecipientPhone  string    `gorm:"column:recipient_phone"   json:"recipient_phone"`
	DeliveryAddress string    `gorm:"column:delivery_address"  json:"delivery_address,omitempty"`
	DeliveryType    string    `gorm:"column:delivery_type"     json:"delivery_type"`
	PickupPointID   *int64    `gorm:"column:pickup_point_id"   json:"pickup_point_id,omitempty"`
	DeliveryPointID *int64    `gorm:"column:delivery_point_id" json:"delivery_point_id,omitempty"`
	Comment         string    `gorm:"column:comment"           json:"comment,omitempty"`
	Weight          float64   `gorm:"column:weight"            json:"weight"`
	Length          *float64  `gorm:"column:length"            json:"length,omitempty"`
	Width           *float64  `gorm:"column:width"             json:"width,omitempty"`
	Height          *float64  `gorm:"column:height"            json:"height,omitempty"`
	Price           float64   `gorm:"column:price"             json:"price"`
	Status          string    `gorm:"column:status"            json:"status"`
	CreatedAt       time.Time `gorm:"column:created_at"        json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"        json:"updated_at"`
}

const orderColumns = `
	id,
	order_number,
	user_id,
	recipient_name,
	recipient_phone,
	delivery_address,
	delivery_type,
	pickup_point_id,
	delivery_point_id,
	comment,
	weight,
	length,
	width,
	height,
	price,
	status,
	created_at,
	updated_at`
