package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"turnos-api/internal/delivery/dto"
	"turnos-api/internal/domain/entity"
	"turnos-api/internal/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefix for cached shift list pages
	RedisShiftListKeyPrefix = "shifts:list:"

	// Bumped on every write; readers only see entries of the current generation
	redisShiftListGenerationKey = "shifts:list:generation"

	// Timeout for individual Redis operations
	redisCacheTimeout = 500 * time.Millisecond
)

// ShiftListCache caches List results. Implementations never fail the caller:
// a broken cache behaves like an empty one.
//
// Get resolves the current generation once and returns the key it looked up.
// A result read from the database after a miss must be stored with Set under
// that same key, so a page computed before an Invalidate can never be filed
// under the newer generation. An empty key disables the Set.
type ShiftListCache interface {
	Get(ctx context.Context, filter *dto.ShiftFilterQuery) (result *dto.ShiftListResponse, key string, ok bool)
	Set(ctx context.Context, key string, result *dto.ShiftListResponse)
	Invalidate(ctx context.Context)
}

// NewShiftListCache returns a Redis-backed cache, or a no-op cache when
// redisClient is nil.
func NewShiftListCache(redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) ShiftListCache {
	if redisClient == nil {
		return noopShiftListCache{}
	}
	return &redisShiftListCache{
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

type redisShiftListCache struct {
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
}

func (c *redisShiftListCache) Get(ctx context.Context, filter *dto.ShiftFilterQuery) (*dto.ShiftListResponse, string, bool) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	key, err := c.key(ctx, filter)
	if err != nil {
		c.log.Warnf("Shift list cache unavailable: %+v", err)
		metrics.ShiftListCacheTotal.WithLabelValues("error").Inc()
		return nil, "", false
	}

	raw, err := c.redisClient.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.ShiftListCacheTotal.WithLabelValues("miss").Inc()
		return nil, key, false
	}
	if err != nil {
		c.log.Warnf("Failed to read shift list cache %s: %+v", key, err)
		metrics.ShiftListCacheTotal.WithLabelValues("error").Inc()
		return nil, key, false
	}

	var result dto.ShiftListResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		c.log.Warnf("Discarding corrupt shift list cache entry %s: %+v", key, err)
		metrics.ShiftListCacheTotal.WithLabelValues("error").Inc()
		return nil, key, false
	}

	metrics.ShiftListCacheTotal.WithLabelValues("hit").Inc()
	return &result, key, true
}

func (c *redisShiftListCache) Set(ctx context.Context, key string, result *dto.ShiftListResponse) {
	if key == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := json.Marshal(result)
	if err != nil {
		c.log.Warnf("Failed to encode shift list cache entry: %+v", err)
		return
	}

	if err := c.redisClient.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write shift list cache %s: %+v", key, err)
	}
}

func (c *redisShiftListCache) Invalidate(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := c.redisClient.Incr(ctx, redisShiftListGenerationKey).Err(); err != nil {
		c.log.Warnf("Failed to invalidate shift list cache: %+v", err)
	}
}

func (c *redisShiftListCache) key(ctx context.Context, filter *dto.ShiftFilterQuery) (string, error) {
	generation, err := c.redisClient.Get(ctx, redisShiftListGenerationKey).Result()
	if errors.Is(err, redis.Nil) {
		generation = "0"
	} else if err != nil {
		return "", err
	}
	return ShiftListCacheKey(generation, filter), nil
}

// ShiftListCacheKey renders a stable key for filter under the given generation.
func ShiftListCacheKey(generation string, filter *dto.ShiftFilterQuery) string {
	var b strings.Builder
	b.WriteString(RedisShiftListKeyPrefix)
	b.WriteString(generation)
	fmt.Fprintf(&b, ":analyst=%s", intOrDash(filter.AnalystID))
	fmt.Fprintf(&b, ":project=%s", intOrDash(filter.ProjectID))
	status := "-"
	if filter.Status != nil {
		status = string(*filter.Status)
	}
	fmt.Fprintf(&b, ":status=%s", status)
	fmt.Fprintf(&b, ":from=%s", dateOrDash(filter.DateFrom))
	fmt.Fprintf(&b, ":to=%s", dateOrDash(filter.DateTo))
	fmt.Fprintf(&b, ":page=%d:size=%d", filter.Page, filter.PageSize)
	return b.String()
}

func intOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}

func dateOrDash(v *time.Time) string {
	if v == nil {
		return "-"
	}
	return entity.DateOnly(*v).Format(entity.DateLayout)
}

type noopShiftListCache struct{}

func (noopShiftListCache) Get(context.Context, *dto.ShiftFilterQuery) (*dto.ShiftListResponse, string, bool) {
	return nil, "", false
}

func (noopShiftListCache) Set(context.Context, string, *dto.ShiftListResponse) {}

func (noopShiftListCache) Invalidate(context.Context) {}
