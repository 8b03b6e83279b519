package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/homestay/internal/logger"
	"github.com/sbilibin2017/homestay/internal/models"
)

// ErrCacheMiss is returned when a key is in neither cache level.
var ErrCacheMiss = errors.New("cache miss")

const statesKey = "reference:states"

func citiesKey(stateID int64) string {
	return fmt.Sprintf("reference:cities:%d", stateID)
}

// ReferenceCacheRepository caches state and city reference data in process
// memory and, when a client is configured, in Redis.
type ReferenceCacheRepository struct {
	local  *cache.Cache
	client redis.Cmdable
	exp    time.Duration
}

// NewReferenceCacheRepository creates a cache with the given TTL. client may be nil.
func NewReferenceCacheRepository(client redis.Cmdable, expiration time.Duration) *ReferenceCacheRepository {
	return &ReferenceCacheRepository{
		local:  cache.New(expiration, 2*expiration),
		client: client,
		exp:    expiration,
	}
}

func (r *ReferenceCacheRepository) GetStates(ctx context.Context) ([]models.StateDB, error) {
	var states []models.StateDB
	if err := r.get(ctx, statesKey, &states); err != nil {
		return nil, err
	}
	return states, nil
}

func (r *ReferenceCacheRepository) SetStates(ctx context.Context, states []models.StateDB) error {
	return r.set(ctx, statesKey, states)
}

func (r *ReferenceCacheRepository) GetCities(ctx context.Context, stateID int64) ([]models.CityDB, error) {
	var cities []models.CityDB
	if err := r.get(ctx, citiesKey(stateID), &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *ReferenceCacheRepository) SetCities(ctx context.Context, stateID int64, cities []models.CityDB) error {
	return r.set(ctx, citiesKey(stateID), cities)
}

// get decodes the cached JSON for key into dst, checking memory first and
// promoting Redis hits into memory.
func (r *ReferenceCacheRepository) get(ctx context.Context, key string, dst any) error {
	log := logger.FromContext(ctx)

	if raw, ok := r.local.Get(key); ok {
		log.Debugw("cache hit", "key", key, "level", "local")
		return json.Unmarshal(raw.([]byte), dst)
	}

	if r.client == nil {
		return ErrCacheMiss
	}

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		log.Debugw("cache miss", "key", key)
		return ErrCacheMiss
	}
	if err != nil {
		log.Warnw("redis get failed", "key", key, "error", err)
		return err
	}

	if err := json.Unmarshal(val, dst); err != nil {
		return err
	}
	r.local.Set(key, val, r.exp)
	log.Debugw("cache hit", "key", key, "level", "redis")
	return nil
}

func (r *ReferenceCacheRepository) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	r.local.Set(key, data, r.exp)
	if r.client == nil {
		return nil
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.FromContext(ctx).Debugw("cache set", "key", key, "ttl", r.exp, "error", err)
	return err
}
