package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersSummaryQueryHandler aggregates order counts per status.
type GetOrdersSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersSummaryQueryHandler creates a handler for summary reads.
func NewGetOrdersSummaryQueryHandler(db *gorm.DB) GetOrdersSummaryQueryHandler {
	return GetOrdersSummaryQueryHandler{db: db}
}

// Handle returns one row per status present in the orders table,
// sorted by status key for stable output.
func (h GetOrdersSummaryQueryHandler) Handle(
	ctx context.Context, query GetOrdersSummaryQuery,
) ([]OrdersSummaryRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows := make([]OrdersSummaryRow, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*) AS count
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
