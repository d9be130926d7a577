package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order rows from the database.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	query, _ := NewListOrdersQuery(nil)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns orders sorted by creation time, newest first.
// When the query carries a user filter only that user's orders are returned.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows := make([]OrderResponse, 0)

	tx := h.db.WithContext(ctx)
	var err error
	if userID := query.UserID(); userID != nil {
		err = tx.Raw(`
			SELECT`+orderColumns+`
			FROM orders
			WHERE user_id = ?
			ORDER BY created_at DESC
		`, *userID).Scan(&rows).Error
	} else {
		err = tx.Raw(`
			SELECT` + orderColumns + `
			FROM orders
			ORDER BY created_at DESC
		`).Scan(&rows).Error
	}
	if err != nil {
		return nil, err
	}

	return rows, nil
}
