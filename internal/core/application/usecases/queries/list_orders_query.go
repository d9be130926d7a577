package queries

import (
	"errors"

	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders, newest first, optionally scoped to
// one user's history.
type ListOrdersQuery struct {
	userID *int64

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query. A nil userID lists all orders.
func NewListOrdersQuery(userID *int64) (ListOrdersQuery, error) {
	if userID != nil && *userID <= 0 {
		return ListOrdersQuery{}, errs.NewValueIsInvalidError("user_id")
	}

	return ListOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// UserID returns the optional user filter.
func (q ListOrdersQuery) UserID() *int64 {
	return q.userID
}
