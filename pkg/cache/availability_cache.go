package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// AvailabilityCacheTTL bounds staleness even without invalidation events.
	AvailabilityCacheTTL = 5 * time.Minute

	availabilityKeyPrefix = "availability"
	availabilityVerPrefix = "availability:ver"
)

// AvailabilityCache stores serialized stock-engine outputs (effective-stock
// matrices, conflict analyses, suggestion lists) keyed by org, a per-org
// version counter, and a hash of the request (window + filters).
//
// Invalidation is O(1): any booking change bumps the org's version counter,
// which orphans every key written under the old version. Orphans expire via
// TTL, so no key scans are ever needed.
type AvailabilityCache struct {
	client *RedisClient
}

// NewAvailabilityCache creates an AvailabilityCache backed by the given RedisClient.
func NewAvailabilityCache(r *RedisClient) *AvailabilityCache {
	return &AvailabilityCache{client: r}
}

// Get unmarshals the cached value for (orgID, requestKey) into out.
// Returns (false, nil) on a miss.
func (c *AvailabilityCache) Get(ctx context.Context, orgID uuid.UUID, requestKey string, out any) (bool, error) {
	key, err := c.key(ctx, orgID, requestKey)
	if err != nil {
		return false, err
	}
	data, err := c.client.Client().Get(ctx, key).Bytes()
	if err != nil {
		if isRedisNil(err) {
			return false, nil
		}
		return false, fmt.Errorf("availability cache get: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("availability cache decode: %w", err)
	}
	return true, nil
}

// Set stores v as JSON for (orgID, requestKey) under the org's current version.
func (c *AvailabilityCache) Set(ctx context.Context, orgID uuid.UUID, requestKey string, v any) error {
	key, err := c.key(ctx, orgID, requestKey)
	if err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("availability cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, key, data, AvailabilityCacheTTL).Err(); err != nil {
		return fmt.Errorf("availability cache set: %w", err)
	}
	return nil
}

// Invalidate bumps the org's version counter, orphaning all cached results
// written under previous versions.
func (c *AvailabilityCache) Invalidate(ctx context.Context, orgID uuid.UUID) error {
	if err := c.client.Client().Incr(ctx, versionKey(orgID)).Err(); err != nil {
		return fmt.Errorf("availability cache invalidate: %w", err)
	}
	return nil
}

// RequestKey derives a stable key fragment from any serializable request
// shape (window bounds, filters, policy). Equal requests produce equal keys.
func RequestKey(req any) string {
	data, err := json.Marshal(req)
	if err != nil {
		// Marshal of plain request structs cannot fail; fall back to a
		// never-matching key rather than panicking in a cache path.
		return fmt.Sprintf("unhashable-%d", time.Now().UnixNano())
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:16])
}

// key resolves the full cache key including the org's current version.
func (c *AvailabilityCache) key(ctx context.Context, orgID uuid.UUID, requestKey string) (string, error) {
	ver, err := c.client.Client().Get(ctx, versionKey(orgID)).Int64()
	if err != nil {
		if !isRedisNil(err) {
			return "", fmt.Errorf("availability cache version: %w", err)
		}
		ver = 0
	}
	return fmt.Sprintf("%s:%s:%d:%s", availabilityKeyPrefix, orgID, ver, requestKey), nil
}

func versionKey(orgID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", availabilityVerPrefix, orgID)
}

func isRedisNil(err error) bool {
	return errors.Is(err, redis.Nil)
}
