package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// EquipmentCacheTTL is the time-to-live for cached equipment read models.
	EquipmentCacheTTL = 24 * time.Hour

	equipmentCacheKeyPrefix = "equipment"
)

// CachedEquipment is the denormalized read model stored in Redis.
// Fields are stored as a Redis hash. Additional fields from other aggregates
// can be added here for read optimization without touching the domain model.
type CachedEquipment struct {
	ID        uuid.UUID `json:"id"`
	OrgID     uuid.UUID `json:"org_id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	BaseStock int       `json:"base_stock"`
	CreatedAt time.Time `json:"created_at"`
}

// EquipmentCache provides structured read/write operations for equipment
// cache entries. Keys are scoped by orgID to prevent cross-tenant leakage.
// Key format: "equipment:{orgID}:{equipmentID}"
type EquipmentCache struct {
	client *RedisClient
}

// NewEquipmentCache creates an EquipmentCache backed by the given RedisClient.
func NewEquipmentCache(r *RedisClient) *EquipmentCache {
	return &EquipmentCache{client: r}
}

// Get retrieves a cached equipment item by org + equipment ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *EquipmentCache) Get(ctx context.Context, orgID, equipmentID uuid.UUID) (*CachedEquipment, error) {
	key := c.key(orgID, equipmentID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	oid, err := uuid.Parse(vals["org_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse org_id: %w", err)
	}
	baseStock, err := strconv.Atoi(vals["base_stock"])
	if err != nil {
		return nil, fmt.Errorf("cache parse base_stock: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}

	return &CachedEquipment{
		ID:        id,
		OrgID:     oid,
		Name:      vals["name"],
		Code:      vals["code"],
		BaseStock: baseStock,
		CreatedAt: createdAt,
	}, nil
}

// Set writes a cached equipment item as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *EquipmentCache) Set(ctx context.Context, eq *CachedEquipment) error {
	key := c.key(eq.OrgID, eq.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", eq.ID.String(),
		"org_id", eq.OrgID.String(),
		"name", eq.Name,
		"code", eq.Code,
		"base_stock", strconv.Itoa(eq.BaseStock),
		"created_at", eq.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, EquipmentCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached equipment item.
func (c *EquipmentCache) Delete(ctx context.Context, orgID, equipmentID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(orgID, equipmentID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "equipment:{orgID}:{equipmentID}"
func (c *EquipmentCache) key(orgID, equipmentID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", equipmentCacheKeyPrefix, orgID, equipmentID)
}
