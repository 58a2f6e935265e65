package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/opsdesk-inc/opsdesk/internal/domain/employee"
)

const defaultRedisKey = "opsdesk:directory:employees"

// SnapshotCache is a shared second-level cache for the employee list.
// Get returns (nil, nil) on a miss.
type SnapshotCache interface {
	Get(ctx context.Context) ([]employee.Employee, error)
	Set(ctx context.Context, employees []employee.Employee) error
}

// RedisSnapshotCache stores the employee list as one JSON value with a TTL.
type RedisSnapshotCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisSnapshotCache(client *redis.Client, key string, ttl time.Duration) *RedisSnapshotCache {
	if key == "" {
		key = defaultRedisKey
	}
	return &RedisSnapshotCache{client: client, key: key, ttl: ttl}
}

func (c *RedisSnapshotCache) Get(ctx context.Context) ([]employee.Employee, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employees from redis: %w", err)
	}

	var employees []employee.Employee
	if err := json.Unmarshal(data, &employees); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached employees: %w", err)
	}
	return employees, nil
}

func (c *RedisSnapshotCache) Set(ctx context.Context, employees []employee.Employee) error {
	data, err := json.Marshal(employees)
	if err != nil {
		return fmt.Errorf("failed to marshal employees: %w", err)
	}
	if err := c.client.Set(ctx, c.key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store employees in redis: %w", err)
	}
	return nil
}
