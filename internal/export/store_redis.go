package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/luminar-edu/studyplan/internal/platform/cache"
	"github.com/luminar-edu/studyplan/internal/schedule"
)

const (
	keyPrefix = "studyplan:schedule:"
	lastKey   = "studyplan:schedule:last"
	entryTTL  = 24 * time.Hour
	opTimeout = 3 * time.Second
)

// RedisStore is a Redis/Dragonfly-backed Store, used when STUDY_CACHE_URL
// is set so downloads survive instance restarts within the entry TTL.
type RedisStore struct {
	cache *cache.Cache
}

// NewRedisStore wraps an established cache client.
func NewRedisStore(c *cache.Cache) *RedisStore {
	return &RedisStore{cache: c}
}

func (s *RedisStore) Put(ctx context.Context, id string, res schedule.Result) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encoding schedule: %w", err)
	}

	pipe := s.cache.Client.TxPipeline()
	pipe.Set(ctx, keyPrefix+id, data, entryTTL)
	pipe.Set(ctx, lastKey, id, entryTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("storing schedule %s: %w", id, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (schedule.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	data, err := s.cache.Client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return schedule.Result{}, ErrNotFound
	}
	if err != nil {
		return schedule.Result{}, fmt.Errorf("fetching schedule %s: %w", id, err)
	}

	var res schedule.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return schedule.Result{}, fmt.Errorf("decoding schedule %s: %w", id, err)
	}
	return res, nil
}

func (s *RedisStore) Last(ctx context.Context) (schedule.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	id, err := s.cache.Client.Get(ctx, lastKey).Result()
	if errors.Is(err, redis.Nil) {
		return schedule.Result{}, ErrNotFound
	}
	if err != nil {
		return schedule.Result{}, fmt.Errorf("fetching last schedule id: %w", err)
	}
	return s.Get(ctx, id)
}
