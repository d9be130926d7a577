package queries

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	pickupPointsCacheKey = "pickup-points:active"
	pickupPointsCacheTTL = time.Minute
)

// ListPickupPointsQueryHandler reads the active pickup point directory.
// The directory changes rarely and is requested on every order form load,
// so results are served from Redis when a client is configured. A nil
// client disables caching entirely.
type ListPickupPointsQueryHandler struct {
	db    *gorm.DB
	cache *redis.Client
}

// NewListPickupPointsQueryHandler creates a handler for directory reads.
// Pass a nil cache client to read straight from the database.
func NewListPickupPointsQueryHandler(db *gorm.DB, cache *redis.Client) ListPickupPointsQueryHandler {
	return ListPickupPointsQueryHandler{db: db, cache: cache}
}

// Handle returns active pickup points ordered by name.
func (h ListPickupPointsQueryHandler) Handle(
	ctx context.Context, query ListPickupPointsQuery,
) ([]PickupPointResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if h.cache != nil {
		cached, err := h.cache.Get(ctx, pickupPointsCacheKey).Result()
		if err == nil {
			points := make([]PickupPointResponse, 0)
			if err = json.Unmarshal([]byte(cached), &points); err == nil {
				return points, nil
			}
		}
	}

	points := make([]PickupPointResponse, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address
		FROM pickup_points
		WHERE is_active = TRUE
		ORDER BY name
	`).Scan(&points).Error
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		if data, err := json.Marshal(points); err == nil {
			h.cache.Set(ctx, pickupPointsCacheKey, data, pickupPointsCacheTTL)
		}
	}

	return points, nil
}
