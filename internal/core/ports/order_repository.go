// Package ports defines repository interfaces for the parcel domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate. The store assigns the numeric
	// identifier and attaches it to the aggregate before returning.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must already exist in the repository.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its numeric identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id int64) (*order.Order, error)
}
