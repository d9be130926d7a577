package queries

import (
	"context"

	"parcelhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order row from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order or errs.ObjectNotFoundError when no row matches.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows := make([]OrderResponse, 0, 1)
	err := h.db.WithContext(ctx).Raw(`
		SELECT`+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	return &rows[0], nil
}
