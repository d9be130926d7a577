package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrderStatusesQueryHandler reads the status taxonomy rows.
type ListOrderStatusesQueryHandler struct {
	db *gorm.DB
}

// NewListOrderStatusesQueryHandler creates a handler for taxonomy reads.
func NewListOrderStatusesQueryHandler(db *gorm.DB) ListOrderStatusesQueryHandler {
	return ListOrderStatusesQueryHandler{db: db}
}

// Handle returns the taxonomy in insertion order so seeded keys keep their
// customary sequence.
func (h ListOrderStatusesQueryHandler) Handle(
	ctx context.Context, query ListOrderStatusesQuery,
) ([]OrderStatusResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]OrderStatusResponse, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			status_key,
			label,
			color
		FROM order_statuses
		ORDER BY id
	`).Scan(&statuses).Error
	if err != nil {
		return nil, err
	}

	return statuses, nil
}
