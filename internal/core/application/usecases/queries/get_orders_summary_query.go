package queries

import (
	"errors"

	"parcelhub/internal/pkg/guard"
)

var ErrGetOrdersSummaryQueryIsNotConstructed = errors.New(
	"GetOrdersSummaryQuery must be created via NewGetOrdersSummaryQuery constructor",
)

// GetOrdersSummaryQuery retrieves order counts grouped by status.
// Used by the admin surface and the hourly digest job.
type GetOrdersSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersSummaryQuery creates a parameterless summary query.
func NewGetOrdersSummaryQuery() GetOrdersSummaryQuery {
	return GetOrdersSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersSummaryQueryIsNotConstructed)
}

// OrdersSummaryRow holds the order count for one status key.
type OrdersSummaryRow struct {
	Status string `gorm:"column:status" json:"status"`
	Count  int64  `gorm:"column:count"  json:"count"`
}
