package store

import (
	"context"
	"errors"
	"time"

	"github.com/fakhrymubarak/sunny-weather/internal/model"
	"github.com/fakhrymubarak/sunny-weather/internal/redis"
	redisv9 "github.com/redis/go-redis/v9"
)

// RedisCommander is the subset of the Redis client the place store needs.
type RedisCommander interface {
	Get(ctx context.Context, key string) *redisv9.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redisv9.StatusCmd
	Exists(ctx context.Context, keys ...string) *redisv9.IntCmd
}

type redisPlaceStore struct {
	client RedisCommander
	key    string
}

// NewRedisPlaceStore keeps the place under "<namespace>:place" with no expiry.
func NewRedisPlaceStore(client RedisCommander, namespace string) PlaceStore {
	return &redisPlaceStore{
		client: client,
		key:    redis.Key(namespace, PlaceKey),
	}
}

func (s *redisPlaceStore) SavePlace(ctx context.Context, place model.Place) error {
	raw, err := encodePlace(place)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, raw, 0).Err()
}

func (s *redisPlaceStore) GetSavedPlace(ctx context.Context) (*model.Place, error) {
	raw, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redisv9.Nil) {
		return nil, ErrPlaceNotSaved
	}
	if err != nil {
		return nil, err
	}
	return decodePlace(raw)
}

func (s *redisPlaceStore) IsPlaceSaved(ctx context.Context) (bool, error) {
	n, err := s.client.Exists(ctx, s.key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close is a no-op; the Redis client is shared and closed by its owner.
func (s *redisPlaceStore) Close() error { return nil }
