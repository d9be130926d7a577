package queries

import (
	"errors"

	"parcelhub/internal/pkg/guard"
)

var ErrListOrderStatusesQueryIsNotConstructed = errors.New(
	"ListOrderStatusesQuery must be created via NewListOrderStatusesQuery constructor",
)

// ListOrderStatusesQuery retrieves the site-configurable status taxonomy
// used by the tracking UI to render labels and badge colors.
type ListOrderStatusesQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrderStatusesQuery creates a parameterless taxonomy query.
func NewListOrderStatusesQuery() ListOrderStatusesQuery {
	return ListOrderStatusesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOrderStatusesQuery) Validate() error {
	return q.guard.Validate(ErrListOrderStatusesQueryIsNotConstructed)
}

// OrderStatusResponse represents one entry of the status taxonomy.
type OrderStatusResponse struct {
	Key   string `gorm:"column:status_key" json:"status_key"`
	Label string `gorm:"column:label"      json:"label"`
	Color string `gorm:"column:color"      json:"color"`
}
