package queries

import (
	"errors"

	"parcelhub/internal/pkg/guard"
)

var ErrListPickupPointsQueryIsNotConstructed = errors.New(
	"ListPickupPointsQuery must be created via NewListPickupPointsQuery constructor",
)

// ListPickupPointsQuery retrieves the active pickup point directory.
type ListPickupPointsQuery struct {
	guard guard.ConstructorGuard
}

// NewListPickupPointsQuery creates a parameterless directory query.
func NewListPickupPointsQuery() ListPickupPointsQuery {
	return ListPickupPointsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListPickupPointsQuery) Validate() error {
	return q.guard.Validate(ErrListPickupPointsQueryIsNotConstructed)
}

// PickupPointResponse represents one active point of the directory.
type PickupPointResponse struct {
	ID      int64  `gorm:"column:id"      json:"id"`
	Name    string `gorm:"column:name"    json:"name"`
	Address string `gorm:"column:address" json:"address"`
}
