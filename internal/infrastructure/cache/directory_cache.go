package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heatseek/attendance-system/internal/core/domain"
)

const directoryKey = "directory:employees"
const directoryTTL = 5 * time.Minute

// DirectoryCache implements ports.DirectoryCache on Redis. The employee list
// changes rarely; a short TTL keeps the privileged selector snappy without
// staleness concerns.
type DirectoryCache struct {
	client *redis.Client
}

// NewDirectoryCache wraps the given Redis client.
func NewDirectoryCache(client *redis.Client) *DirectoryCache {
	return &DirectoryCache{client: client}
}

// Get returns the cached list, or (nil, nil) on a miss.
func (c *DirectoryCache) Get(ctx context.Context) ([]domain.Employee, error) {
	raw, err := c.client.Get(ctx, directoryKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("directory cache get: %w", err)
	}

	var employees []domain.Employee
	if err := json.Unmarshal(raw, &employees); err != nil {
		return nil, fmt.Errorf("directory cache decode: %w", err)
	}
	return employees, nil
}

// Set stores the list with the directory TTL.
func (c *DirectoryCache) Set(ctx context.Context, employees []domain.Employee) error {
	raw, err := json.Marshal(employees)
	if err != nil {
		return fmt.Errorf("directory cache encode: %w", err)
	}
	return c.client.Set(ctx, directoryKey, raw, directoryTTL).Err()
}
