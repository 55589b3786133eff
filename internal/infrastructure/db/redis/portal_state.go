package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/calmora/portal-system/internal/core/domain"
)

// lastPortalTTL bounds how long a portal preference is remembered.
const lastPortalTTL = 30 * 24 * time.Hour

// PortalStateStore remembers each user's last-entered portal in Redis.
// Key format: portal:last:<user_id> → portal name.
type PortalStateStore struct {
	client *redis.Client
}

// NewPortalStateStore creates a PortalStateStore wrapping the given Redis client.
func NewPortalStateStore(client *redis.Client) *PortalStateStore {
	return &PortalStateStore{client: client}
}

// Get returns the user's remembered portal, or "" when none is stored.
func (s *PortalStateStore) Get(ctx context.Context, userID string) (domain.Portal, error) {
	val, err := s.client.Get(ctx, s.key(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("get last portal: %w", err)
	}
	return domain.Portal(val), nil
}

// Set remembers the user's current portal.
func (s *PortalStateStore) Set(ctx context.Context, userID string, portal domain.Portal) error {
	if err := s.client.Set(ctx, s.key(userID), string(portal), lastPortalTTL).Err(); err != nil {
		return fmt.Errorf("set last portal: %w", err)
	}
	return nil
}

// Remove forgets the user's remembered portal. Idempotent.
func (s *PortalStateStore) Remove(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("remove last portal: %w", err)
	}
	return nil
}

func (s *PortalStateStore) key(userID string) string {
	return "portal:last:" + userID
}
