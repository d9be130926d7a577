package postgres

import (
	"time"

	"parcelhub/internal/adapters/out/postgres/orderrepo"
	"parcelhub/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// PickupPointDTO represents one entry of the pickup point directory.
// Points are soft-deleted through the is_active flag so historical orders
// keep their references.
type PickupPointDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:255"`
	Address   string
	IsActive  bool `gorm:"default:true;index"`
	CreatedAt time.Time
}

// TableName overrides GORM's default naming convention.
func (PickupPointDTO) TableName() string {
	return "pickup_points"
}

// OrderStatusDTO represents one entry of the site-configurable status
// taxonomy: a machine key plus the label and badge color the tracking UI
// renders for it.
type OrderStatusDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Key   string `gorm:"column:status_key;size:32;uniqueIndex"`
	Label string `gorm:"size:128"`
	Color string `gorm:"size:16"`
}

// TableName overrides GORM's default naming convention.
func (OrderStatusDTO) TableName() string {
	return "order_statuses"
}

// Migrate creates or updates the schema for all persisted tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&PickupPointDTO{},
		&OrderStatusDTO{},
	)
}

// SeedOrderStatuses inserts the default status taxonomy, skipping keys that
// already exist so administrator customizations survive restarts.
func SeedOrderStatuses(db *gorm.DB) error {
	defaults := []OrderStatusDTO{
		{Key: order.StatusProcessing.String(), Label: "Processing", Color: "#F59E0B"},
		{Key: order.StatusCourier.String(), Label: "Handed to courier", Color: "#3B82F6"},
		{Key: order.StatusTransit.String(), Label: "In transit", Color: "#6366F1"},
		{Key: order.StatusReady.String(), Label: "Ready for pickup", Color: "#10B981"},
		{Key: order.StatusDelivered.String(), Label: "Delivered", Color: "#22C55E"},
	}

	for _, status := range defaults {
		err := db.Where(OrderStatusDTO{Key: status.Key}).
			FirstOrCreate(&status).Error
		if err != nil {
			return err
		}
	}

	return nil
}
